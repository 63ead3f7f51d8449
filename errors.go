package algocomplex

import "errors"

// Sentinel errors returned by the polynomial root solvers.
var (
	// ErrInvalidCoefficients is returned when a solver is called with a zero
	// leading coefficient or a NaN coefficient. The solvers validate eagerly
	// rather than returning roots that silently satisfy nothing.
	ErrInvalidCoefficients = errors.New("algocomplex: invalid polynomial coefficients")
)
