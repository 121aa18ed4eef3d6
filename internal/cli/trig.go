package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/calculus"
)

// TrigOptions holds flags for the sin and cos commands.
type TrigOptions struct {
	*RootOptions
	Reduce bool // wrap x into [-π, π] first
}

// TrigResult is the payload of the sin and cos commands.
type TrigResult struct {
	Function string  `json:"function"`
	X        float64 `json:"x"`
	Reduced  bool    `json:"reduced"`
	Value    float64 `json:"value"`
}

func (r TrigResult) String() string {
	return fmt.Sprintf("%s(%g) = %g", r.Function, r.X, r.Value)
}

// NewSinCommand creates the sin command.
func NewSinCommand(rootOpts *RootOptions) *cobra.Command {
	return newTrigCommand(rootOpts, "sin", calculus.Sin, calculus.SinReduced)
}

// NewCosCommand creates the cos command.
func NewCosCommand(rootOpts *RootOptions) *cobra.Command {
	return newTrigCommand(rootOpts, "cos", calculus.Cos, calculus.CosReduced)
}

func newTrigCommand(rootOpts *RootOptions, name string, plain, reduced calculus.Func) *cobra.Command {
	opts := &TrigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   name + " <x>",
		Short: fmt.Sprintf("Approximate %s(x) with a 10-term Taylor series", name),
		Long: fmt.Sprintf(`Approximate %s(x) with a 10-term Taylor series around 0.

The argument is not reduced by default, so results drift for |x| well
beyond π. Pass --reduce to wrap x into [-π, π] first.

Example:
  calculus %s 0.5
  calculus %s 20 --reduce`, name, name, name),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := plain
			if opts.Reduce {
				fn = reduced
			}
			return runTrig(opts, name, fn, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Reduce, "reduce", false, "wrap x into [-π, π] before expanding")

	return cmd
}

func runTrig(opts *TrigOptions, name string, fn calculus.Func, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	x, err := parseNumber("x", arg)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(TrigResult{
		Function: name,
		X:        x,
		Reduced:  opts.Reduce,
		Value:    fn(x),
	})
}
