package scalar

import "math"

// Generic wrappers over the standard math library. Each computes at float64
// precision and rounds the result back to T, so the function suite can be
// written once and instantiated for float32 and float64.

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[T Float](x T) T {
	return T(math.Cbrt(float64(x)))
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Hypot returns √(p²+q²), avoiding overflow and underflow in the
// intermediate squares.
func Hypot[T Float](p, q T) T {
	return T(math.Hypot(float64(p), float64(q)))
}

// Atan2 returns the arc tangent of y/x, using the signs of both arguments
// to determine the quadrant. The result is in (-π, π].
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Copysign returns a value with the magnitude of x and the sign of sign.
func Copysign[T Float](x, sign T) T {
	return T(math.Copysign(float64(x), float64(sign)))
}

// Ilogb returns the binary exponent of x. Subnormal inputs report their
// true exponent, not the clamped one of their representation.
func Ilogb[T Float](x T) int {
	return math.Ilogb(float64(x))
}

// Ldexp returns x · 2**exp.
func Ldexp[T Float](x T, exp int) T {
	return T(math.Ldexp(float64(x), exp))
}

// Sincos returns sin(x) and cos(x) in one call.
func Sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// SinhCosh returns sinh(x) and cosh(x) in one call. For |x| > 0.5 both are
// derived from a single exponential, the Cephes split used by the standard
// library's complex trigonometry.
func SinhCosh[T Float](x T) (sinh, cosh T) {
	v := float64(x)
	if math.Abs(v) <= 0.5 {
		return T(math.Sinh(v)), T(math.Cosh(v))
	}

	e := math.Exp(v)
	ei := 0.5 / e
	e *= 0.5

	return T(e - ei), T(e + ei)
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}
