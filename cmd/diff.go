package cmd

import (
	"github.com/spf13/cobra"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const contextFlagName = "context"

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	var contextLines int

	cmd := &cobra.Command{
		Use:   "diff <old-report> <new-report>",
		Short: "Compare two statistics reports",
		Long:  "Print a unified diff of two reports written by scan, one line per asset record.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.Diff(ctx, domain.DiffArgs{
				Old:     m.Path(args[0]),
				New:     m.Path(args[1]),
				Context: contextLines,
			})
		},
	}

	cmd.Flags().IntVarP(&contextLines, contextFlagName, "U", 3, "lines of context around each change")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
