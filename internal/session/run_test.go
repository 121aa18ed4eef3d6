package session

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calculus/internal/calculus"
)

func ptr[T any](v T) *T { return &v }

func TestRun_Derivatives(t *testing.T) {
	s := &Session{
		Name:        "derivs",
		Function:    "square",
		Derivatives: []float64{0, 1, 2},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator("run-1"))
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, calculus.DefaultEpsilon, report.Epsilon)
	require.Len(t, report.Derivatives, 3)
	for i, want := range []float64{0, 2, 4} {
		assert.Equal(t, s.Derivatives[i], report.Derivatives[i].X)
		assert.InDelta(t, want, report.Derivatives[i].Value, 1e-3)
	}
	assert.Nil(t, report.Integral)
	assert.Empty(t, report.Samples)
}

func TestRun_IntegralDefaults(t *testing.T) {
	s := &Session{
		Name:     "area",
		Function: "identity",
		Integral: &IntegralSpec{A: 0, B: 1},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator("run-1"))
	require.NoError(t, err)

	require.NotNil(t, report.Integral)
	assert.Equal(t, calculus.DefaultSamples, report.Integral.Samples)
	assert.Equal(t, "inclusive", report.Integral.Rule)
	assert.InDelta(t, 0.5005, report.Integral.Value, 1e-12)
}

func TestRun_IntegralDelayCancelled(t *testing.T) {
	s := &Session{
		Name:     "slow",
		Function: "identity",
		Integral: &IntegralSpec{A: 0, B: 1, DelayMS: int(time.Hour / time.Millisecond)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, s, NewFixedGenerator("run-1"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestRun_PointsWithSlopes(t *testing.T) {
	s := &Session{
		Name:     "pts",
		Function: "polynomial",
		Epsilon:  ptr(0.5),
		Points:   &PointsSpec{Start: 0, End: 1, Step: 0.5, Slopes: true},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator("run-1"))
	require.NoError(t, err)

	require.Len(t, report.Samples, 3)
	// polynomial(x) = (x+1)^2; forward difference with h=0.5 is 2x + 2.5
	wantY := []float64{1, 2.25, 4}
	wantSlope := []float64{2.5, 3.5, 4.5}
	for i, row := range report.Samples {
		assert.Equal(t, wantY[i], row.Y)
		require.NotNil(t, row.Slope)
		assert.Equal(t, wantSlope[i], *row.Slope)
	}
}

func TestRun_PointsWithoutSlopes(t *testing.T) {
	s := &Session{
		Name:     "pts",
		Function: "cube",
		Points:   &PointsSpec{Start: -1, End: 1, Step: 1},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator("run-1"))
	require.NoError(t, err)

	want := []SampleRow{{X: -1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, want, report.Samples)
}

func TestRun_InvalidSession(t *testing.T) {
	s := &Session{
		Name:     "bad",
		Function: "square",
		Epsilon:  ptr(-1.0),
		Points:   &PointsSpec{Start: 0, End: 1, Step: 0.5},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, calculus.IsInvalidConfiguration(err))
}

func TestValidate_AgreesWithFunctionContext(t *testing.T) {
	for _, eps := range []float64{math.Inf(1), math.NaN(), 0} {
		s := &Session{
			Name:        "eps",
			Function:    "square",
			Epsilon:     ptr(eps),
			Derivatives: []float64{1},
		}

		validateErr := Validate(s)
		require.Error(t, validateErr, "epsilon=%v", eps)

		_, newErr := calculus.New(func(x float64) float64 { return x }, calculus.WithEpsilon(eps))
		assert.Equal(t, newErr, validateErr, "epsilon=%v", eps)

		_, runErr := Run(context.Background(), s, NewFixedGenerator())
		var ce *calculus.ConfigError
		require.ErrorAs(t, runErr, &ce)
		assert.Equal(t, validateErr, ce)
	}
}

func TestRun_InfinitePointsEnd(t *testing.T) {
	s := &Session{
		Name:     "unbounded",
		Function: "square",
		Points:   &PointsSpec{Start: 0, End: math.Inf(1), Step: 1},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, calculus.IsInvalidConfiguration(err))
}

func TestRun_ComposedFunction(t *testing.T) {
	s := &Session{
		Name:        "composed",
		Function:    "square|polynomial",
		Derivatives: []float64{0},
	}

	report, err := Run(context.Background(), s, NewFixedGenerator("run-1"))
	require.NoError(t, err)
	// d/dx (x+1)^4 at 0 = 4
	assert.InDelta(t, 4.0, report.Derivatives[0].Value, 1e-2)
}

func TestReport_JSON(t *testing.T) {
	s, err := Load("testdata/sessions/square_session.yaml")
	require.NoError(t, err)

	report, err := Run(context.Background(), s, NewFixedGenerator("run-json"))
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-json", decoded["run_id"])
	assert.Equal(t, "square_session", decoded["name"])
	assert.Len(t, decoded["samples"], 5)

	integral, ok := decoded["integral"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.46875, integral["value"])
	assert.Equal(t, "inclusive", integral["rule"])
}

func TestReport_TextOmitsEmptySections(t *testing.T) {
	r := &Report{RunID: "r", Name: "n", Function: "square", Epsilon: 0.0001}

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Equal(t, "run: r\nsession: n\nfunction: square\nepsilon: 0.0001\n", buf.String())
	assert.Equal(t, buf.String(), r.String())
}
