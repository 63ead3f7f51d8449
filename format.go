package algocomplex

import (
	"fmt"
	"strconv"
)

// String renders z in a compact human-readable form: "3", "i", "-i", "4*i",
// "3 + 4*i", "3 - 4*i". A zero imaginary part drops the imaginary term
// entirely, a unit imaginary coefficient collapses to a bare i, and the sign
// of a negative imaginary part folds into the connecting operator.
// Floating-point components use the shortest representation that round-trips
// at their own precision.
func (z Complex[T]) String() string {
	switch {
	case z.Im == 0:
		return formatComponent(z.Re)

	case z.Re == 0:
		switch z.Im {
		case 1:
			return "i"
		case -1:
			return "-i"
		default:
			return formatComponent(z.Im) + "*i"
		}

	case z.Im < 0:
		if z.Im == -1 {
			return formatComponent(z.Re) + " - i"
		}

		return formatComponent(z.Re) + " - " + formatComponent(-z.Im) + "*i"

	default:
		if z.Im == 1 {
			return formatComponent(z.Re) + " + i"
		}

		return formatComponent(z.Re) + " + " + formatComponent(z.Im) + "*i"
	}
}

// formatComponent renders one component at its own precision: float32 at
// 32-bit shortest form, float64 at 64-bit, integers via the default verb.
func formatComponent[T Scalar](x T) string {
	switch v := any(x).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
