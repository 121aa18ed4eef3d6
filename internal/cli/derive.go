package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/calculus"
	"github.com/roach88/calculus/internal/catalog"
)

// DeriveOptions holds flags for the derive command.
type DeriveOptions struct {
	*RootOptions
	Epsilon float64
}

// DerivativeResult is the payload of the derive command.
type DerivativeResult struct {
	Function string  `json:"function"`
	X        float64 `json:"x"`
	Epsilon  float64 `json:"epsilon"`
	Value    float64 `json:"value"`
}

func (r DerivativeResult) String() string {
	return fmt.Sprintf("d/dx %s at x=%g = %g (h=%g)", r.Function, r.X, r.Value, r.Epsilon)
}

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeriveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "derive <function> <x>",
		Short: "Forward-difference derivative of a function at x",
		Long: `Estimate f'(x) as (f(x+h) - f(x)) / h.

Example:
  calculus derive square 2
  calculus derive "sin|square" 0.5 --epsilon 1e-6`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Epsilon, "epsilon", calculus.DefaultEpsilon, "step size h (must be > 0)")

	return cmd
}

func runDerive(opts *DeriveOptions, expr, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	x, err := parseNumber("x", arg)
	if err != nil {
		return formatter.Fail(err)
	}

	fc, err := newFunctionContext(expr, opts.Epsilon)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("derive %s at x=%g with h=%g", expr, x, fc.Epsilon())

	return formatter.Success(DerivativeResult{
		Function: expr,
		X:        x,
		Epsilon:  fc.Epsilon(),
		Value:    fc.Derivative(x),
	})
}

// newFunctionContext resolves expr in the catalog and binds it to epsilon.
func newFunctionContext(expr string, epsilon float64) (*calculus.FunctionContext, error) {
	fn, err := catalog.Lookup(expr)
	if err != nil {
		return nil, err
	}
	return calculus.New(fn, calculus.WithEpsilon(epsilon))
}
