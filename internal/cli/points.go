package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/calculus"
)

// PointsOptions holds flags for the points command.
type PointsOptions struct {
	*RootOptions
}

// PointsResult is the JSON payload of the points command.
type PointsResult struct {
	Function string            `json:"function"`
	Samples  []calculus.Sample `json:"samples"`
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PointsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "points <function> <start> <end> <step>",
		Short: "Sample a function at start, start+step, ... up to end",
		Long: `Sample a function at x = start, start+step, ... while x <= end.

The endpoint is included when reached. In text mode each sample is printed
as soon as it is computed.

Example:
  calculus points square 0 1 0.5
  calculus points "cos|identity" 0 3.2 0.1 --format json`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(opts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runPoints(opts *PointsOptions, expr string, rangeArgs []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	r, err := parseNumbers([]string{"start", "end", "step"}, rangeArgs)
	if err != nil {
		return formatter.Fail(err)
	}

	fc, err := newFunctionContext(expr, calculus.DefaultEpsilon)
	if err != nil {
		return formatter.Fail(err)
	}

	seq, err := fc.Points(r[0], r[1], r[2])
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.IsJSON() {
		result := PointsResult{Function: expr, Samples: []calculus.Sample{}}
		for s := range seq {
			result.Samples = append(result.Samples, s)
		}
		return formatter.Success(result)
	}

	count := 0
	for s := range seq {
		fmt.Fprintf(formatter.Writer, "x=%g y=%g\n", s.X, s.Y)
		count++
	}
	formatter.VerboseLog("%d sample(s)", count)
	return nil
}
