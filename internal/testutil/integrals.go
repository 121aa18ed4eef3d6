package testutil

import "math"

// Integral is a definite integral with a known value, used to check
// quadrature code against closed forms.
type Integral struct {
	Name  string
	A, B  float64
	F     func(float64) float64
	Value float64
}

// Integrals returns a fixed set of reference integrals.
//
// The order is stable so tests can index into the slice.
func Integrals() []Integral {
	return []Integral{
		{
			Name:  "identity_0_1",
			A:     0,
			B:     1,
			F:     func(x float64) float64 { return x },
			Value: 0.5,
		},
		{
			Name:  "square_0_1",
			A:     0,
			B:     1,
			F:     func(x float64) float64 { return x * x },
			Value: 1.0 / 3.0,
		},
		{
			Name:  "polynomial_0_1",
			A:     0,
			B:     1,
			F:     func(x float64) float64 { return x*x + 2*x + 1 },
			Value: 7.0 / 3.0,
		},
		{
			Name:  "sin_0_pi",
			A:     0,
			B:     math.Pi,
			F:     math.Sin,
			Value: 2,
		},
		{
			Name:  "exp_0_1",
			A:     0,
			B:     1,
			F:     math.Exp,
			Value: math.E - 1,
		},
	}
}

// InclusiveSum evaluates the n+1 point summation directly from its
// definition: w * Σ f(a + i*w) for i = 0..n.
func InclusiveSum(f func(float64) float64, a, b float64, n int) float64 {
	w := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i <= n; i++ {
		sum += f(a + float64(i)*w)
	}
	return sum * w
}
