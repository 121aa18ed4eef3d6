package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/calculus"
)

// IntegrateOptions holds flags for the integrate command.
type IntegrateOptions struct {
	*RootOptions
	Samples int
	Rule    string
	Delay   time.Duration
}

// IntegralResult is the payload of the integrate command.
type IntegralResult struct {
	Function string  `json:"function"`
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	Samples  int     `json:"samples"`
	Rule     string  `json:"rule"`
	Value    float64 `json:"value"`
}

func (r IntegralResult) String() string {
	return fmt.Sprintf("integral of %s over [%g, %g] = %g (n=%d, rule=%s)",
		r.Function, r.A, r.B, r.Value, r.Samples, r.Rule)
}

// NewIntegrateCommand creates the integrate command.
func NewIntegrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IntegrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "integrate <function> <a> <b>",
		Short: "Riemann-sum integral of a function over [a, b]",
		Long: `Approximate the integral of a function over [a, b] with n sub-intervals.

Rules:
  inclusive  sum f at all n+1 grid points, times the width (default)
  left       standard left Riemann sum over n points

The inclusive rule counts the right endpoint in addition to the n left
endpoints, so it overshoots a left sum by f(b)*(b-a)/n.

Example:
  calculus integrate identity 0 1
  calculus integrate square 0 1 --samples 10000 --rule left
  calculus integrate polynomial 0 1 --delay 100ms`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntegrate(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Samples, "samples", "n", calculus.DefaultSamples, "number of sub-intervals (must be >= 1)")
	cmd.Flags().StringVar(&opts.Rule, "rule", string(calculus.RuleInclusive), "summation rule (inclusive|left)")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pacing delay before computing")

	return cmd
}

func runIntegrate(opts *IntegrateOptions, expr string, bounds []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	ab, err := parseNumbers([]string{"a", "b"}, bounds)
	if err != nil {
		return formatter.Fail(err)
	}

	rule, err := calculus.ParseRule(opts.Rule)
	if err != nil {
		return formatter.Fail(err)
	}

	fc, err := newFunctionContext(expr, calculus.DefaultEpsilon)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("integrate %s over [%g, %g] with n=%d rule=%s", expr, ab[0], ab[1], opts.Samples, rule)

	value, err := fc.Integral(commandContext(cmd), ab[0], ab[1],
		calculus.WithSamples(opts.Samples),
		calculus.WithRule(rule),
		calculus.WithDelay(opts.Delay),
	)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(IntegralResult{
		Function: expr,
		A:        ab[0],
		B:        ab[1],
		Samples:  opts.Samples,
		Rule:     string(rule),
		Value:    value,
	})
}
