package algocomplex

import (
	"fmt"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Closed-form polynomial root solvers. Both validate their coefficients
// eagerly: a zero leading coefficient or any NaN coefficient yields
// ErrInvalidCoefficients instead of roots that satisfy nothing.

// Quad solves a·x² + b·x + c = 0 and returns both roots. A negative
// discriminant produces a conjugate pair through the complex square root.
func Quad[T Float](a, b, c T) ([2]Complex[T], error) {
	if err := checkCoefficients(a, b, c); err != nil {
		return [2]Complex[T]{}, err
	}

	sqrtD := RealSqrt(b*b - 4*a*c)
	scale := 2 * a

	return [2]Complex[T]{
		sqrtD.AddReal(-b).DivReal(scale),
		sqrtD.Neg().AddReal(-b).DivReal(scale),
	}, nil
}

// Cubic solves a·x³ + b·x² + c·x + d = 0 and returns all three roots. The
// equation is depressed to t³ + p·t + q = 0, one Cardano root is taken
// through the complex cube root of whichever resolvent branch escapes
// cancellation, and the other two follow by rotating it through the
// nontrivial cube roots of unity. Each root gets one Newton polishing
// step, kept only when it shrinks the residual.
func Cubic[T Float](a, b, c, d T) ([3]Complex[T], error) {
	if err := checkCoefficients(a, b, c, d); err != nil {
		return [3]Complex[T]{}, err
	}

	// Depress via x = t - b/(3a).
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	shift := -b / (3 * a)

	disc := RealSqrt(q*q/4 + p*p*p/27)

	// Of the two Cardano branches -q/2 ± disc, use the one of larger
	// magnitude: when disc is real the smaller branch loses its leading
	// digits to cancellation for |p|³ ≪ q², and a cube root taken from a
	// cancelled branch is wrong by more than one polishing step can
	// recover. Either branch generates the same root set through
	// t = w - p/(3w).
	u := disc.AddReal(-q / 2)
	if alt := disc.Neg().AddReal(-q / 2); Abs(alt) > Abs(u) {
		u = alt
	}

	var roots [3]Complex[T]

	if u == (Complex[T]{}) {
		// Both branches vanish only for p = q = 0: a triple root.
		roots[0] = FromReal(shift)
		roots[1] = roots[0]
		roots[2] = roots[0]
	} else {
		w := Cbrt(u)
		unity := cbrtUnity[T]()

		for k, wk := range [3]Complex[T]{w, w.Mul(unity), w.Div(unity)} {
			// Back-substitute: t = w - p/(3w), x = t + shift.
			t := wk.Sub(RealDiv(p, wk.MulReal(3)))
			roots[k] = t.AddReal(shift)
		}
	}

	for k := range roots {
		roots[k] = polishCubicRoot(a, b, c, d, roots[k])
	}

	return roots, nil
}

// cbrtUnity returns the primitive complex cube root of unity, (-1 + i√3)/2.
func cbrtUnity[T Float]() Complex[T] {
	return Complex[T]{Re: -0.5, Im: scalar.Sqrt3 / 2}
}

// evalCubic evaluates a·x³ + b·x² + c·x + d at x using Horner's method.
func evalCubic[T Float](a, b, c, d T, x Complex[T]) Complex[T] {
	return FromReal(a).Mul(x).AddReal(b).Mul(x).AddReal(c).Mul(x).AddReal(d)
}

// polishCubicRoot applies one Newton step to an approximate root and keeps
// whichever candidate leaves the smaller residual. Roots where the
// polynomial or its derivative already vanish are returned unchanged.
func polishCubicRoot[T Float](a, b, c, d T, x Complex[T]) Complex[T] {
	residual := evalCubic(a, b, c, d, x)
	if residual == (Complex[T]{}) {
		return x
	}

	// f'(x) = 3a·x² + 2b·x + c.
	deriv := FromReal(3 * a).Mul(x).AddReal(2 * b).Mul(x).AddReal(c)
	if deriv == (Complex[T]{}) {
		return x
	}

	refined := x.Sub(residual.Div(deriv))
	if Abs(evalCubic(a, b, c, d, refined)) < Abs(residual) {
		return refined
	}

	return x
}

// checkCoefficients rejects a zero leading coefficient and NaN anywhere.
func checkCoefficients[T Float](lead T, rest ...T) error {
	if lead == 0 {
		return fmt.Errorf("leading coefficient is zero: %w", ErrInvalidCoefficients)
	}

	if scalar.IsNaN(lead) {
		return fmt.Errorf("leading coefficient is NaN: %w", ErrInvalidCoefficients)
	}

	for _, coeff := range rest {
		if scalar.IsNaN(coeff) {
			return fmt.Errorf("coefficient is NaN: %w", ErrInvalidCoefficients)
		}
	}

	return nil
}
