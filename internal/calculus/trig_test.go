package calculus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSin_MatchesReferenceOnUnitInterval(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.01 {
		assert.True(t, scalar.EqualWithinAbs(math.Sin(x), Sin(x), 1e-6), "sin(%v) = %v, want %v", x, Sin(x), math.Sin(x))
	}
}

func TestCos_MatchesReferenceOnUnitInterval(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.01 {
		assert.True(t, scalar.EqualWithinAbs(math.Cos(x), Cos(x), 1e-6), "cos(%v) = %v, want %v", x, Cos(x), math.Cos(x))
	}
}

func TestTrig_Zero(t *testing.T) {
	assert.Equal(t, 0.0, Sin(0))
	assert.Equal(t, 1.0, Cos(0))
}

func TestTrig_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1, 2, 3} {
		assert.Equal(t, -Sin(x), Sin(-x), "sin is odd at %v", x)
		assert.Equal(t, Cos(x), Cos(-x), "cos is even at %v", x)
	}
}

func TestTrig_UnreducedDegradesForLargeArguments(t *testing.T) {
	// 10 terms are far from enough at x = 20; the reference behaviour keeps
	// the truncated value rather than reducing the argument.
	assert.Greater(t, math.Abs(Sin(20)-math.Sin(20)), 1.0)
	assert.Greater(t, math.Abs(Cos(20)-math.Cos(20)), 1.0)
}

func TestTrig_Reduced(t *testing.T) {
	tests := []float64{-100, -20, -7, -math.Pi, 0, 2, math.Pi, 7, 20, 100}

	for _, x := range tests {
		assert.InDelta(t, math.Sin(x), SinReduced(x), 1e-6, "SinReduced(%v)", x)
		assert.InDelta(t, math.Cos(x), CosReduced(x), 1e-6, "CosReduced(%v)", x)
	}
}

func TestTrig_ReducedMatchesUnreducedInsidePi(t *testing.T) {
	for _, x := range []float64{-3, -1, -0.25, 0, 0.25, 1, 3} {
		assert.Equal(t, Sin(x), SinReduced(x))
		assert.Equal(t, Cos(x), CosReduced(x))
	}
}

func TestTrig_NonFinitePassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(Sin(math.NaN())))
	assert.True(t, math.IsNaN(SinReduced(math.NaN())))
	assert.True(t, math.IsNaN(CosReduced(math.Inf(1))))
}
