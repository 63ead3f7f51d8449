// Package c128 instantiates the generic complex API for float64 components
// and carries the float64-precision constants.
package c128

import (
	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Complex is a complex number with float64 components.
type Complex = algocomplex.Complex[float64]

var (
	// I is the imaginary unit, 0 + 1·i.
	I = algocomplex.New[float64](0, 1)

	// CbrtUnity is the primitive complex cube root of unity, (-1 + i√3)/2.
	// Together with 1 and its reciprocal it enumerates the three cube roots
	// of one.
	CbrtUnity = algocomplex.New(-0.5, scalar.Sqrt3/2)
)

// New returns the complex number re + im·i.
func New(re, im float64) Complex {
	return algocomplex.New(re, im)
}

// FromReal returns the complex number x + 0·i.
func FromReal(x float64) Complex {
	return algocomplex.FromReal(x)
}

// Cis returns the point on the unit circle at angle theta.
func Cis(theta float64) Complex {
	return algocomplex.Cis(theta)
}

// Log returns the principal complex logarithm of the real value x. For
// negative x the result is ln(-x) + iπ.
func Log(x float64) Complex {
	return algocomplex.RealLog(x)
}

// Sqrt returns the principal complex square root of the real value x. For
// negative x the result is purely imaginary, i·√(-x).
func Sqrt(x float64) Complex {
	return algocomplex.RealSqrt(x)
}

// Quad solves a·x² + b·x + c = 0. It returns ErrInvalidCoefficients when a
// is zero or any coefficient is NaN.
func Quad(a, b, c float64) ([2]Complex, error) {
	return algocomplex.Quad(a, b, c)
}

// Cubic solves a·x³ + b·x² + c·x + d = 0. It returns ErrInvalidCoefficients
// when a is zero or any coefficient is NaN.
func Cubic(a, b, c, d float64) ([3]Complex, error) {
	return algocomplex.Cubic(a, b, c, d)
}
