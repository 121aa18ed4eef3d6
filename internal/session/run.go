package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/calculus/internal/calculus"
	"github.com/roach88/calculus/internal/catalog"
)

// Run executes every operation the session requests, in the order
// derivatives, integral, points, and returns the collected report.
//
// The first failing operation aborts the run; no partial report is returned.
func Run(ctx context.Context, s *Session, ids RunIDGenerator) (*Report, error) {
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	fn, err := catalog.Lookup(s.Function)
	if err != nil {
		return nil, err
	}

	var opts []calculus.Option
	if s.Epsilon != nil {
		opts = append(opts, calculus.WithEpsilon(*s.Epsilon))
	}
	fc, err := calculus.New(fn, opts...)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    ids.Generate(),
		Name:     s.Name,
		Function: s.Function,
		Epsilon:  fc.Epsilon(),
	}
	log := slog.With("run_id", report.RunID, "session", s.Name)
	log.Debug("session started", "function", s.Function, "epsilon", fc.Epsilon())

	for _, x := range s.Derivatives {
		report.Derivatives = append(report.Derivatives, Derivative{X: x, Value: fc.Derivative(x)})
	}
	if len(s.Derivatives) > 0 {
		log.Debug("derivatives computed", "count", len(s.Derivatives))
	}

	if in := s.Integral; in != nil {
		result, err := runIntegral(ctx, fc, in)
		if err != nil {
			return nil, fmt.Errorf("integral: %w", err)
		}
		report.Integral = result
		log.Debug("integral computed", "samples", result.Samples, "rule", result.Rule, "value", result.Value)
	}

	if p := s.Points; p != nil {
		rows, err := runPoints(fc, p)
		if err != nil {
			return nil, fmt.Errorf("points: %w", err)
		}
		report.Samples = rows
		log.Debug("points sampled", "count", len(rows))
	}

	return report, nil
}

func runIntegral(ctx context.Context, fc *calculus.FunctionContext, in *IntegralSpec) (*IntegralResult, error) {
	rule, err := calculus.ParseRule(in.Rule)
	if err != nil {
		return nil, err
	}

	samples := calculus.DefaultSamples
	if in.Samples != nil {
		samples = *in.Samples
	}

	value, err := fc.Integral(ctx, in.A, in.B,
		calculus.WithSamples(samples),
		calculus.WithRule(rule),
		calculus.WithDelay(time.Duration(in.DelayMS)*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}

	return &IntegralResult{
		A:       in.A,
		B:       in.B,
		Samples: samples,
		Rule:    string(rule),
		Value:   value,
	}, nil
}

func runPoints(fc *calculus.FunctionContext, p *PointsSpec) ([]SampleRow, error) {
	seq, err := fc.Points(p.Start, p.End, p.Step)
	if err != nil {
		return nil, err
	}

	var rows []SampleRow
	for s := range seq {
		row := SampleRow{X: s.X, Y: s.Y}
		if p.Slopes {
			slope := fc.Derivative(s.X)
			row.Slope = &slope
		}
		rows = append(rows, row)
	}
	return rows, nil
}
