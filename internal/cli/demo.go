package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/session"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	RunOptions
	Delay time.Duration
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RunOptions: RunOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in polynomial demonstration",
		Long: `Analyse x^2 + 2x + 1: sample it on [0, 1] with step 0.1, take the
derivative at every sample, and integrate it over [0, 1].

Example:
  calculus demo
  calculus demo --delay 100ms --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pacing delay before the integral")

	return cmd
}

// DemoSession returns the demonstration session with the given pacing delay.
func DemoSession(delay time.Duration) *session.Session {
	return &session.Session{
		Name:        "demo",
		Description: "Samples, slopes and area of x^2 + 2x + 1 on [0, 1]",
		Function:    "polynomial",
		Integral: &session.IntegralSpec{
			A:       0,
			B:       1,
			DelayMS: int(delay / time.Millisecond),
		},
		Points: &session.PointsSpec{
			Start:  0,
			End:    1,
			Step:   0.1,
			Slopes: true,
		},
	}
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	return executeSession(&opts.RunOptions, DemoSession(opts.Delay), formatter, cmd)
}
