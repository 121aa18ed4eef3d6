package calculus

import "math"

// TaylorTerms is the number of terms added after the leading one.
const TaylorTerms = 10

// Sin approximates sin(x) with a Taylor series around 0.
//
// Each term is derived from the previous one by multiplying with
// -x²/((2n+1)(2n)). No range reduction is performed, so accuracy degrades
// as |x| grows; use SinReduced for large arguments.
func Sin(x float64) float64 {
	term := x
	sum := x
	for n := 1; n <= TaylorTerms; n++ {
		k := float64(n)
		term *= -x * x / ((2*k + 1) * (2 * k))
		sum += term
	}
	return sum
}

// Cos approximates cos(x) with a Taylor series around 0.
//
// Each term is derived from the previous one by multiplying with
// -x²/((2n)(2n-1)). Like Sin, the argument is not reduced.
func Cos(x float64) float64 {
	term := 1.0
	sum := 1.0
	for n := 1; n <= TaylorTerms; n++ {
		k := float64(n)
		term *= -x * x / ((2 * k) * (2*k - 1))
		sum += term
	}
	return sum
}

// SinReduced wraps x into [-π, π] before evaluating the series.
// Results differ from Sin for |x| > π.
func SinReduced(x float64) float64 {
	return Sin(reduce(x))
}

// CosReduced wraps x into [-π, π] before evaluating the series.
// Results differ from Cos for |x| > π.
func CosReduced(x float64) float64 {
	return Cos(reduce(x))
}

// reduce maps x to the representative of x mod 2π closest to zero.
func reduce(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Remainder(x, 2*math.Pi)
}
