// Package algocomplex implements complex numbers over a generic scalar
// component type.
//
// The value type Complex[T] carries the algebraic operator set (negation,
// conjugation, addition, subtraction, multiplication, division, and the
// compound-assignment forms) for any signed numeric component type. For
// floating-point components the package adds the transcendental suite:
// magnitude and argument, exponential and logarithm, real and complex
// powers, square and cube roots, the trigonometric and hyperbolic families,
// and closed-form quadratic and cubic root solvers with Newton polishing.
//
// All operations are pure functions over plain value types: no allocation,
// no shared state, safe for unrestricted concurrent use. Invalid arithmetic
// (division by the zero value, logarithm of zero) propagates IEEE 754
// special values instead of reporting errors; only the root solvers validate
// their inputs.
//
// The subpackages c64 and c128 instantiate the generic API for float32 and
// float64 components and carry the precision-specific constants I and
// CbrtUnity.
package algocomplex
