package algocomplex

// Mixed scalar/complex arithmetic in both operand orders. A scalar x stands
// for the complex value x + 0·i; only division of a scalar by a complex
// value is specialized, multiplying the scalar by the conjugate of the
// divisor and dividing by its squared magnitude.

// AddReal returns z + x.
func (z Complex[T]) AddReal(x T) Complex[T] {
	return Complex[T]{Re: z.Re + x, Im: z.Im}
}

// SubReal returns z - x.
func (z Complex[T]) SubReal(x T) Complex[T] {
	return Complex[T]{Re: z.Re - x, Im: z.Im}
}

// MulReal returns z * x.
func (z Complex[T]) MulReal(x T) Complex[T] {
	return Complex[T]{Re: z.Re * x, Im: z.Im * x}
}

// DivReal returns z / x, dividing both components by x.
func (z Complex[T]) DivReal(x T) Complex[T] {
	return Complex[T]{Re: z.Re / x, Im: z.Im / x}
}

// RealAdd returns x + z.
func RealAdd[T Scalar](x T, z Complex[T]) Complex[T] {
	return Complex[T]{Re: x + z.Re, Im: z.Im}
}

// RealSub returns x - z.
func RealSub[T Scalar](x T, z Complex[T]) Complex[T] {
	return Complex[T]{Re: x - z.Re, Im: -z.Im}
}

// RealMul returns x * z.
func RealMul[T Scalar](x T, z Complex[T]) Complex[T] {
	return Complex[T]{Re: x * z.Re, Im: x * z.Im}
}

// RealDiv returns x / z.
func RealDiv[T Scalar](x T, z Complex[T]) Complex[T] {
	denom := z.Re*z.Re + z.Im*z.Im

	return Complex[T]{
		Re: x * z.Re / denom,
		Im: -x * z.Im / denom,
	}
}
