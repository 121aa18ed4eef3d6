package calculus

import "math"

// ValidateEpsilon checks a step size h for New and WithEpsilon.
func ValidateEpsilon(h float64) error {
	if !isPositiveFinite(h) {
		return newConfigError("epsilon", h, "epsilon must be a finite number greater than zero")
	}
	return nil
}

// ValidateSamples checks the sub-interval count n for Integral.
func ValidateSamples(n int) error {
	if n < 1 {
		return newConfigError("samples", n, "samples must be at least 1")
	}
	return nil
}

// ValidateRange checks the arguments of Points.
//
// start and end must be finite, and step must be a finite positive number
// large enough to move x away from start.
func ValidateRange(start, end, step float64) error {
	if !isPositiveFinite(step) {
		return newConfigError("step", step, "step must be a finite number greater than zero")
	}
	if !isFinite(start) {
		return newConfigError("start", start, "start must be a finite number")
	}
	if !isFinite(end) {
		return newConfigError("end", end, "end must be a finite number")
	}
	if start <= end && start+step == start {
		return newConfigError("step", step, "step is too small to advance from start")
	}
	return nil
}

// isPositiveFinite rejects zero, negatives, NaN and ±Inf.
func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
