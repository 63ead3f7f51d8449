package algocomplex

// Complex is a complex number with components of scalar type T. The zero
// value is the complex zero. Complex is a plain value type: every operator
// returns a new value, never aliasing its operands, and two values compare
// equal with == exactly when their components do.
type Complex[T Scalar] struct {
	Re, Im T
}

// New returns the complex number re + im·i.
func New[T Scalar](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// FromReal returns the complex number x + 0·i.
func FromReal[T Scalar](x T) Complex[T] {
	return Complex[T]{Re: x}
}

// Parts returns the real and imaginary components of z.
func (z Complex[T]) Parts() (re, im T) {
	return z.Re, z.Im
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: z.Re, Im: -z.Im}
}

// Add returns the sum z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns the difference z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns the product z * w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns the quotient z / w using the textbook formula. Division by the
// zero value follows the component type's own division-by-zero behavior: NaN
// or infinite components for floating-point types. The squared-magnitude
// denominator can overflow or underflow for operands far from unit
// magnitude.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	denom := w.Re*w.Re + w.Im*w.Im

	return Complex[T]{
		Re: (z.Re*w.Re + z.Im*w.Im) / denom,
		Im: (z.Im*w.Re - z.Re*w.Im) / denom,
	}
}

// AddAssign sets z to z + w.
func (z *Complex[T]) AddAssign(w Complex[T]) {
	z.Re += w.Re
	z.Im += w.Im
}

// SubAssign sets z to z - w.
func (z *Complex[T]) SubAssign(w Complex[T]) {
	z.Re -= w.Re
	z.Im -= w.Im
}

// MulAssign sets z to z * w.
func (z *Complex[T]) MulAssign(w Complex[T]) {
	*z = z.Mul(w)
}

// DivAssign sets z to z / w.
func (z *Complex[T]) DivAssign(w Complex[T]) {
	*z = z.Div(w)
}
