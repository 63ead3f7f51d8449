package algocomplex

import (
	"math"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Sqrt returns the principal square root of z, the root with non-negative
// real part. The branch cut runs along the negative real axis; a signed zero
// imaginary part selects the side of the cut, so approaching the cut from
// above and below stays continuous.
//
// Off the real axis the half-angle form is arranged around x_num = |z| + Re
// so the imaginary component comes from a division rather than the
// cancellation-prone √((|z|-Re)/2).
func Sqrt[T Float](z Complex[T]) Complex[T] {
	if z.Im == 0 {
		// Carry the sign of the zero imaginary part through.
		if z.Re < 0 {
			return Complex[T]{Re: 0, Im: scalar.Copysign(scalar.Sqrt(-z.Re), z.Im)}
		}

		return Complex[T]{Re: scalar.Sqrt(z.Re), Im: z.Im}
	}

	r := Abs(z)

	xnum := r + z.Re
	if xnum == 0 {
		// Rounding collapsed z onto the negative real axis: |Im| is
		// negligible next to Re < 0. Split the half-angle form around
		// √-Re instead.
		xrt := scalar.Sqrt(-z.Re)

		return Complex[T]{
			Re: scalar.Abs(z.Im) / (2 * xrt),
			Im: scalar.Copysign(xrt, z.Im),
		}
	}

	const invSqrt2 = 1 / math.Sqrt2

	xrt := scalar.Sqrt(xnum)

	return Complex[T]{Re: xrt, Im: z.Im / xrt}.MulReal(T(invSqrt2))
}

// Cbrt returns the principal cube root of z. The trigonometric estimate
// |z|^(1/3)·cis(arg(z)/3) is refined with one Newton step on w³ - z to
// remove the rounding accumulated through the polar round trip. The input
// is rescaled by a power of eight first, so the squared magnitudes inside
// the step stay clear of the overflow and underflow thresholds even for
// operands near the edges of the type's range. Cbrt of the zero value is
// exactly zero.
func Cbrt[T Float](z Complex[T]) Complex[T] {
	r := Abs(z)
	if r == 0 {
		return Complex[T]{}
	}

	// The scale factor is a power of two, so rescaling costs no precision
	// and unscaling the root is exact. Non-finite magnitudes skip the
	// rescale and propagate through the estimate.
	var e int
	if !scalar.IsInf(r) && !scalar.IsNaN(r) {
		e = scalar.Ilogb(r) / 3
		z = Complex[T]{Re: scalar.Ldexp(z.Re, -3*e), Im: scalar.Ldexp(z.Im, -3*e)}
		r = scalar.Ldexp(r, -3*e)
	}

	w := Cis(Angle(z) / 3).MulReal(scalar.Cbrt(r))

	// Newton step: w ← (2w + z/w²)/3.
	w = w.MulReal(2).Add(z.Div(w.Mul(w))).DivReal(3)

	return Complex[T]{Re: scalar.Ldexp(w.Re, e), Im: scalar.Ldexp(w.Im, e)}
}

// RealSqrt returns the principal complex square root of the real value x.
// For negative x the result is purely imaginary, i·√(-x).
func RealSqrt[T Float](x T) Complex[T] {
	if x >= 0 {
		return Complex[T]{Re: scalar.Sqrt(x)}
	}

	return Complex[T]{Im: scalar.Sqrt(-x)}
}
