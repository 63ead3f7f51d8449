package algocomplex

import "github.com/cwbudde/algo-complex/internal/scalar"

// Hyperbolic functions, decomposed like their circular counterparts:
// sinh(x+iy) = sinh(x)cos(y) + i·cosh(x)sin(y).

// Sinh returns the hyperbolic sine of z.
func Sinh[T Float](z Complex[T]) Complex[T] {
	s, c := scalar.Sincos(z.Im)
	sh, ch := scalar.SinhCosh(z.Re)

	return Complex[T]{Re: c * sh, Im: s * ch}
}

// Cosh returns the hyperbolic cosine of z.
func Cosh[T Float](z Complex[T]) Complex[T] {
	s, c := scalar.Sincos(z.Im)
	sh, ch := scalar.SinhCosh(z.Re)

	return Complex[T]{Re: c * ch, Im: s * sh}
}

// Tanh returns the hyperbolic tangent of z, sinh(z)/cosh(z).
func Tanh[T Float](z Complex[T]) Complex[T] {
	return Sinh(z).Div(Cosh(z))
}

// Sech returns the hyperbolic secant of z, 1/cosh(z).
func Sech[T Float](z Complex[T]) Complex[T] {
	return Recip(Cosh(z))
}

// Csch returns the hyperbolic cosecant of z, 1/sinh(z).
func Csch[T Float](z Complex[T]) Complex[T] {
	return Recip(Sinh(z))
}

// Coth returns the hyperbolic cotangent of z, 1/tanh(z).
func Coth[T Float](z Complex[T]) Complex[T] {
	return Recip(Tanh(z))
}
