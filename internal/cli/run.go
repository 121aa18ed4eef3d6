package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/session"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs session.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <session-file>",
		Short: "Run an analysis session from a YAML or CUE file",
		Long: `Run every operation listed in a session file and print the report.

Session files name a function, an optional epsilon, and any of
derivatives, integral and points. The format is picked by extension:
.yaml/.yml or .cue.

Example:
  calculus run ./sessions/polynomial.yaml
  calculus run ./sessions/polynomial.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, args[0], cmd)
		},
	}

	return cmd
}

func runSession(opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	s, err := session.Load(path)
	if err != nil {
		return formatter.Fail(newCodedError(ExitCommandError, ErrCodeSessionLoad, "failed to load session", err))
	}
	formatter.VerboseLog("loaded session %q from %s", s.Name, path)

	return executeSession(opts, s, formatter, cmd)
}

// executeSession runs s and prints its report.
func executeSession(opts *RunOptions, s *session.Session, formatter *OutputFormatter, cmd *cobra.Command) error {
	ids := opts.RunIDs
	if ids == nil {
		ids = session.UUIDv7Generator{}
	}

	report, err := session.Run(commandContext(cmd), s, ids)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.IsJSON() {
		return formatter.Success(report)
	}
	if err := report.WriteText(formatter.Writer); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
