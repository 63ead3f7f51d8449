package algocomplex

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Shared test helpers used across multiple test files.

// toComplex128 widens a Complex value to the built-in complex128 so results
// can be checked against the math/cmplx reference implementations.
func toComplex128[T Float](z Complex[T]) complex128 {
	return complex(float64(z.Re), float64(z.Im))
}

// testTol returns the comparison tolerance for the component type: float32
// instantiations run the same float64 math but round every result to 32
// bits.
func testTol[T Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 1e-5
	}

	return 1e-12
}

func assertApproxTolf[T Float](t *testing.T, got, want Complex[T], tol float64, format string, args ...any) {
	t.Helper()

	diff := cmplx.Abs(toComplex128(got) - toComplex128(want))
	if diff > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

// assertClose128 compares against a complex128 reference value componentwise,
// accepting either absolute or relative agreement within tol so large and
// near-zero components are both handled.
func assertClose128(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if !scalar.EqualWithinAbsOrRel(real(got), real(want), tol, tol) ||
		!scalar.EqualWithinAbsOrRel(imag(got), imag(want), tol, tol) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// randomComplexes returns n deterministic pseudo-random values with
// components in [-3, 3).
func randomComplexes[T Float](n int, seed int64) []Complex[T] {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]Complex[T], n)
	for i := range out {
		out[i] = New(T(rnd.Float64()*6-3), T(rnd.Float64()*6-3))
	}

	return out
}

// randomReals returns n deterministic pseudo-random scalars in [-3, 3).
func randomReals[T Float](n int, seed int64) []T {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]T, n)
	for i := range out {
		out[i] = T(rnd.Float64()*6 - 3)
	}

	return out
}
