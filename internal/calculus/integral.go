package calculus

import (
	"context"
	"fmt"
	"time"
)

// DefaultSamples is the number of sub-intervals used when WithSamples is not given.
const DefaultSamples = 1000

// Rule selects the summation used by Integral.
type Rule string

const (
	// RuleInclusive sums f at all n+1 grid points a + i*w, i = 0..n, and
	// multiplies by w. The right endpoint is counted in addition to the n
	// left endpoints, so the result carries one extra sample's weight
	// compared to a left Riemann sum. This is the default.
	RuleInclusive Rule = "inclusive"

	// RuleLeft is the standard left Riemann sum over i = 0..n-1.
	RuleLeft Rule = "left"
)

// Rules lists the accepted rule names.
var Rules = []Rule{RuleInclusive, RuleLeft}

// ParseRule converts a rule name into a Rule.
// The empty string selects RuleInclusive.
func ParseRule(name string) (Rule, error) {
	if name == "" {
		return RuleInclusive, nil
	}
	for _, r := range Rules {
		if string(r) == name {
			return r, nil
		}
	}
	return "", newConfigError("rule", name, fmt.Sprintf("rule must be one of %v", Rules))
}

type integralParams struct {
	samples int
	rule    Rule
	delay   time.Duration
}

// IntegralOption configures a single Integral call.
type IntegralOption func(*integralParams)

// WithSamples sets the number of sub-intervals n (must be >= 1).
func WithSamples(n int) IntegralOption {
	return func(p *integralParams) { p.samples = n }
}

// WithRule selects the summation rule.
func WithRule(r Rule) IntegralOption {
	return func(p *integralParams) { p.rule = r }
}

// WithDelay pauses for d before computing. The pause has no effect on the
// result; it only paces callers. Zero (the default) means no pause.
func WithDelay(d time.Duration) IntegralOption {
	return func(p *integralParams) { p.delay = d }
}

// Integral approximates the integral of f over [a, b].
//
// [a, b] is split into n sub-intervals of width w = (b - a) / n and the
// configured Rule is applied. a > b is not rejected; the formula is applied
// as written.
//
// Invalid samples or rule values are reported before the delay and before f
// is evaluated. If a delay is configured and ctx is cancelled while waiting,
// ctx.Err() is returned. A nil ctx is treated as context.Background().
// Panics raised by f are not recovered.
func (c *FunctionContext) Integral(ctx context.Context, a, b float64, opts ...IntegralOption) (float64, error) {
	p := integralParams{samples: DefaultSamples, rule: RuleInclusive}
	for _, opt := range opts {
		opt(&p)
	}

	if err := ValidateSamples(p.samples); err != nil {
		return 0, err
	}
	if _, err := ParseRule(string(p.rule)); err != nil {
		return 0, err
	}
	if p.delay < 0 {
		return 0, newConfigError("delay", p.delay, "delay must not be negative")
	}

	if err := pause(ctx, p.delay); err != nil {
		return 0, err
	}

	n := p.samples
	width := (b - a) / float64(n)

	last := n
	if p.rule == RuleLeft {
		last = n - 1
	}

	sum := 0.0
	for i := 0; i <= last; i++ {
		sum += c.fn(a + float64(i)*width)
	}
	return sum * width, nil
}

// pause blocks for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
