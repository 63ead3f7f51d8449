package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Scalar is a type constraint for component types supported by the algebraic
// operator set. The canonical definition is in internal/scalar.
type Scalar = scalar.Scalar

// Float is a type constraint for component types supported by the
// floating-point function suite. The canonical definition is in internal/scalar.
type Float = scalar.Float
