package scalar

// Mathematical constants shared by the function suite and the per-precision
// packages.

// Sqrt3 is √3 with full float64 precision.
const Sqrt3 = 1.732050807568877293527446341505872367
