package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/calculus/internal/catalog"
)

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List catalog functions",
		Long: `List the named functions accepted by derive, integrate, points and
session files. Names can be composed with "|": "square|cos" is square(cos(x)).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctions(rootOpts, cmd)
		},
	}

	return cmd
}

func runFunctions(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	entries := catalog.Entries()

	if formatter.IsJSON() {
		return formatter.Success(entries)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
	}
	return tw.Flush()
}
