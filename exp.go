package algocomplex

import (
	"math"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Exp returns e**z: the real exponential of Re scaled onto the unit-circle
// point at angle Im.
func Exp[T Float](z Complex[T]) Complex[T] {
	return Cis(z.Im).MulReal(scalar.Exp(z.Re))
}

// Log returns the principal branch of the natural logarithm of z,
// ln|z| + i·arg(z), with the imaginary part in (-π, π]. Log of the zero
// value has an infinite real component.
func Log[T Float](z Complex[T]) Complex[T] {
	return Complex[T]{Re: scalar.Log(Abs(z)), Im: Angle(z)}
}

// PowReal returns z**n for a real exponent n: |z|**n rotated to n times the
// argument of z.
func PowReal[T Float](z Complex[T], n T) Complex[T] {
	r := scalar.Pow(Abs(z), n)
	return Cis(n * Angle(z)).MulReal(r)
}

// Pow returns z**n for a complex exponent n, computed as exp(n·log z).
func Pow[T Float](z, n Complex[T]) Complex[T] {
	return Exp(n.Mul(Log(z)))
}

// RealLog returns the principal complex logarithm of the real value x. For
// negative x the result is ln(-x) + iπ.
func RealLog[T Float](x T) Complex[T] {
	if x >= 0 {
		return Complex[T]{Re: scalar.Log(x)}
	}

	return Complex[T]{Re: scalar.Log(-x), Im: T(math.Pi)}
}
