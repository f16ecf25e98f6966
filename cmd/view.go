package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const kindFlagName = "kind"

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a saved statistics report",
		Long: `Show a statistics report written by scan as one table per asset kind.
Without an argument the configured stats output, or <project>/ProjectStats.json,
is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseKinds(kinds)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.View(ctx, domain.ViewArgs{Report: reportPath(args), Kinds: filter})
		},
	}

	cmd.Flags().StringArrayVarP(&kinds, kindFlagName, "k", nil, "only show this asset kind (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func reportPath(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	if output := viper.GetString(statsOutputKey); output != "" {
		return m.Path(output)
	}

	return fsAdapter.JoinPath(string(projectRoot()), domain.DefaultReportName)
}

func parseKinds(names []string) ([]m.AssetKind, error) {
	var kinds []m.AssetKind

	for _, name := range names {
		kind, err := m.ParseAssetKind(name)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", kindFlagName, err)
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}
