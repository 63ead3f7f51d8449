package algocomplex

import (
	"testing"
)

// TestRealOps pins the mixed scalar/complex operators on x = 2, z = 1+3i in
// both operand orders. All expected values are exact at both precisions.
func TestRealOps(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		t.Parallel()
		testRealOps[float32](t)
	})
	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		testRealOps[float64](t)
	})
}

func testRealOps[T Float](t *testing.T) {
	t.Helper()

	x := T(2)
	z := New[T](1, 3)

	if got, want := z.AddReal(x), New[T](3, 3); got != want {
		t.Errorf("(1+3i) + 2 = %v, want %v", got, want)
	}

	if got, want := RealAdd(x, z), New[T](3, 3); got != want {
		t.Errorf("2 + (1+3i) = %v, want %v", got, want)
	}

	if got, want := z.SubReal(x), New[T](-1, 3); got != want {
		t.Errorf("(1+3i) - 2 = %v, want %v", got, want)
	}

	if got, want := RealSub(x, z), New[T](1, -3); got != want {
		t.Errorf("2 - (1+3i) = %v, want %v", got, want)
	}

	if got, want := z.MulReal(x), New[T](2, 6); got != want {
		t.Errorf("(1+3i) * 2 = %v, want %v", got, want)
	}

	if got, want := RealMul(x, z), New[T](2, 6); got != want {
		t.Errorf("2 * (1+3i) = %v, want %v", got, want)
	}

	if got, want := z.DivReal(x), New[T](0.5, 1.5); got != want {
		t.Errorf("(1+3i) / 2 = %v, want %v", got, want)
	}

	if got, want := RealDiv(x, z), New[T](0.2, -0.6); got != want {
		t.Errorf("2 / (1+3i) = %v, want %v", got, want)
	}
}

// TestRealOpsCommute verifies the commutative operators agree between the
// scalar-first and complex-first forms for random operands, exactly.
func TestRealOpsCommute(t *testing.T) {
	t.Parallel()

	zs := randomComplexes[float64](32, 11)
	xs := randomReals[float64](32, 12)

	for i, z := range zs {
		x := xs[i]

		if got, want := RealAdd(x, z), z.AddReal(x); got != want {
			t.Errorf("RealAdd(%v, %v) = %v, AddReal gives %v", x, z, got, want)
		}

		if got, want := RealMul(x, z), z.MulReal(x); got != want {
			t.Errorf("RealMul(%v, %v) = %v, MulReal gives %v", x, z, got, want)
		}

		// Anticommutativity of subtraction: x - z == -(z - x).
		if got, want := RealSub(x, z), z.SubReal(x).Neg(); got != want {
			t.Errorf("RealSub(%v, %v) = %v, -(SubReal) gives %v", x, z, got, want)
		}
	}
}

// TestRealOpsMatchComplexOps verifies the specialized mixed operators agree
// with widening the scalar to a complex value and using the full operator.
func TestRealOpsMatchComplexOps(t *testing.T) {
	t.Parallel()

	zs := randomComplexes[float64](32, 21)
	xs := randomReals[float64](32, 22)

	for i, z := range zs {
		x := xs[i]

		if got, want := z.AddReal(x), z.Add(FromReal(x)); got != want {
			t.Errorf("AddReal(%v, %v) = %v, Add(FromReal) gives %v", z, x, got, want)
		}

		if got, want := z.SubReal(x), z.Sub(FromReal(x)); got != want {
			t.Errorf("SubReal(%v, %v) = %v, Sub(FromReal) gives %v", z, x, got, want)
		}

		if got, want := z.MulReal(x), z.Mul(FromReal(x)); got != want {
			t.Errorf("MulReal(%v, %v) = %v, Mul(FromReal) gives %v", z, x, got, want)
		}

		if got, want := RealSub(x, z), FromReal(x).Sub(z); got != want {
			t.Errorf("RealSub(%v, %v) = %v, FromReal.Sub gives %v", x, z, got, want)
		}

		if got, want := RealDiv(x, z), FromReal(x).Div(z); got != want {
			t.Errorf("RealDiv(%v, %v) = %v, FromReal.Div gives %v", x, z, got, want)
		}

		// DivReal divides componentwise while Div runs the full quotient
		// formula, so the two agree only up to rounding.
		if x != 0 {
			assertApproxTolf(t, z.DivReal(x), z.Div(FromReal(x)), 1e-14,
				"DivReal vs Div(FromReal) for z=%v x=%v", z, x)
		}
	}
}

// TestRealOpsInteger spot-checks the mixed operators on an integer
// instantiation.
func TestRealOpsInteger(t *testing.T) {
	t.Parallel()

	z := New(3, -4)

	if got, want := z.AddReal(2), New(5, -4); got != want {
		t.Errorf("(3-4i) + 2 = %v, want %v", got, want)
	}

	if got, want := z.MulReal(-3), New(-9, 12); got != want {
		t.Errorf("(3-4i) * -3 = %v, want %v", got, want)
	}

	if got, want := RealSub(1, z), New(-2, 4); got != want {
		t.Errorf("1 - (3-4i) = %v, want %v", got, want)
	}

	// Componentwise integer division truncates like the / operator.
	if got, want := z.DivReal(2), New(1, -2); got != want {
		t.Errorf("(3-4i) / 2 = %v, want %v", got, want)
	}
}
