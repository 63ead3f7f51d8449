package algocomplex

import (
	"math"
	"math/cmplx"
	"testing"
)

// TestSinCosFixedPoints pins the primaries at arguments with known values.
func TestSinCosFixedPoints(t *testing.T) {
	t.Parallel()

	if got, want := Sin(Complex[float64]{}), New(0.0, 0.0); got != want {
		t.Errorf("sin(0) = %v, want %v", got, want)
	}

	if got, want := Cos(Complex[float64]{}), New(1.0, 0.0); got != want {
		t.Errorf("cos(0) = %v, want %v", got, want)
	}

	assertApproxTolf(t, Sin(New(math.Pi/2, 0.0)), New(1.0, 0.0), 1e-15, "sin(π/2)")
	assertApproxTolf(t, Cos(New(math.Pi, 0.0)), New(-1.0, 0.0), 1e-15, "cos(π)")

	// Purely imaginary arguments: sin(iy) = i·sinh(y), cos(iy) = cosh(y).
	assertApproxTolf(t, Sin(New(0.0, 1.0)), New(0.0, math.Sinh(1)), 1e-15, "sin(i)")
	assertApproxTolf(t, Cos(New(0.0, 1.0)), New(math.Cosh(1), 0.0), 1e-15, "cos(i)")
}

// TestTrigMatchesReference cross-checks sin, cos, and tan against math/cmplx
// over random arguments.
func TestTrigMatchesReference(t *testing.T) {
	t.Parallel()

	for _, z := range randomComplexes[float64](48, 501) {
		w := toComplex128(z)

		assertClose128(t, toComplex128(Sin(z)), cmplx.Sin(w), 1e-13, "Sin(%v)", z)
		assertClose128(t, toComplex128(Cos(z)), cmplx.Cos(w), 1e-13, "Cos(%v)", z)

		if cmplx.Abs(cmplx.Cos(w)) < 0.05 {
			continue
		}

		assertClose128(t, toComplex128(Tan(z)), cmplx.Tan(w), 1e-12, "Tan(%v)", z)
	}
}

// TestPythagoreanIdentity verifies sin²z + cos²z ≈ 1. The squares grow like
// cosh²(Im), so the tolerance scales with the operand range.
func TestPythagoreanIdentity(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		testPythagoreanIdentity[float32](t)
	})
	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		testPythagoreanIdentity[float64](t)
	})
}

func testPythagoreanIdentity[T Float](t *testing.T) {
	t.Helper()

	tol := testTol[T]()

	for _, z := range randomComplexes[T](32, 502) {
		s, c := Sin(z), Cos(z)
		sum := s.Mul(s).Add(c.Mul(c))

		assertApproxTolf(t, sum, New[T](1, 0), 1000*tol, "sin²+cos² at %v", z)
	}
}

// TestTrigSymmetry verifies the parity of sine and cosine.
func TestTrigSymmetry(t *testing.T) {
	t.Parallel()

	for _, z := range randomComplexes[float64](24, 503) {
		assertApproxTolf(t, Sin(z.Neg()), Sin(z).Neg(), 1e-14, "sin(-z) at %v", z)
		assertApproxTolf(t, Cos(z.Neg()), Cos(z), 1e-14, "cos(-z) at %v", z)
	}
}

// TestReciprocalTrig verifies each reciprocal function against its primary,
// away from the primary's zeros where the product is ill-conditioned.
func TestReciprocalTrig(t *testing.T) {
	t.Parallel()

	one := New(1.0, 0.0)

	for _, z := range randomComplexes[float64](32, 504) {
		if Abs(Sin(z)) > 0.05 {
			assertApproxTolf(t, Csc(z).Mul(Sin(z)), one, 1e-12, "csc·sin at %v", z)
		}

		if Abs(Cos(z)) > 0.05 {
			assertApproxTolf(t, Sec(z).Mul(Cos(z)), one, 1e-12, "sec·cos at %v", z)
		}

		if tan := Tan(z); Abs(tan) > 0.05 && Abs(tan) < 20 {
			assertApproxTolf(t, Cot(z).Mul(tan), one, 1e-12, "cot·tan at %v", z)
		}
	}
}
