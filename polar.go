package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Abs returns the magnitude |z|. The two-argument hypotenuse form avoids
// overflow and underflow in the intermediate squares.
func Abs[T Float](z Complex[T]) T {
	return scalar.Hypot(z.Re, z.Im)
}

// Sign returns the unit-magnitude value in the same direction as z.
// Sign of the zero value has NaN components.
func Sign[T Float](z Complex[T]) Complex[T] {
	return z.DivReal(Abs(z))
}

// Angle returns the principal argument of z in (-π, π].
func Angle[T Float](z Complex[T]) T {
	return scalar.Atan2(z.Im, z.Re)
}

// Recip returns 1/z, the conjugate of z over its squared magnitude. Like Div
// it uses the textbook formula and can overflow for operands far from unit
// magnitude. Recip of the zero value has NaN components.
func Recip[T Float](z Complex[T]) Complex[T] {
	denom := z.Re*z.Re + z.Im*z.Im

	return Complex[T]{Re: z.Re / denom, Im: -z.Im / denom}
}

// Cis returns the point on the unit circle at angle theta,
// cos(theta) + i·sin(theta).
func Cis[T Float](theta T) Complex[T] {
	s, c := scalar.Sincos(theta)
	return Complex[T]{Re: c, Im: s}
}
