package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Circular trigonometric functions. Each primary decomposes into a pair of
// real functions, e.g. sin(x+iy) = sin(x)cosh(y) + i·cos(x)sinh(y); the
// reciprocal functions are Recip of the matching primary and share its
// numeric caveats near the primary's zeros.

// Sin returns the sine of z.
func Sin[T Float](z Complex[T]) Complex[T] {
	s, c := scalar.Sincos(z.Re)
	sh, ch := scalar.SinhCosh(z.Im)

	return Complex[T]{Re: s * ch, Im: c * sh}
}

// Cos returns the cosine of z.
func Cos[T Float](z Complex[T]) Complex[T] {
	s, c := scalar.Sincos(z.Re)
	sh, ch := scalar.SinhCosh(z.Im)

	return Complex[T]{Re: c * ch, Im: -s * sh}
}

// Tan returns the tangent of z, sin(z)/cos(z).
func Tan[T Float](z Complex[T]) Complex[T] {
	return Sin(z).Div(Cos(z))
}

// Sec returns the secant of z, 1/cos(z).
func Sec[T Float](z Complex[T]) Complex[T] {
	return Recip(Cos(z))
}

// Csc returns the cosecant of z, 1/sin(z).
func Csc[T Float](z Complex[T]) Complex[T] {
	return Recip(Sin(z))
}

// Cot returns the cotangent of z, 1/tan(z).
func Cot[T Float](z Complex[T]) Complex[T] {
	return Recip(Tan(z))
}
