// Package scalar defines the scalar type constraints used throughout the
// module, the shared mathematical constants, and the generic floating-point
// capability set the transcendental function suite is written against.
package scalar

import "golang.org/x/exp/constraints"

// Scalar is the type constraint for the component type of a complex value.
// Any signed built-in numeric type works: the algebraic operators only need
// negation, addition, subtraction, multiplication, and division.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Float is the type constraint for component types supported by the
// transcendental function suite and the polynomial root solvers.
type Float interface {
	constraints.Float
}
