package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	outputFlagName          = "output"
	buildTargetFlagName     = "build-target"
	releaseIntervalFlagName = "release-interval"
)

var scanOutputFlag string
var scanBuildTargetFlag string
var scanReleaseIntervalFlag int

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Write a statistics report of every asset in the project",
		Long: `Walk the Assets folder of the project and write a typed JSON report with one
record per file (textures, materials, meshes, animations, audio, prefabs,
scenes and plain files). The report goes to <project>/ProjectStats.json unless
--output is given.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.Scan(ctx, domain.StatsArgs{
				ScanOptions: domain.ScanOptions{
					Root:            projectRoot(),
					BuildTarget:     viper.GetString(scanBuildTargetKey),
					ReleaseInterval: viper.GetInt(scanReleaseIntervalKey),
				},
				Output: m.Path(viper.GetString(statsOutputKey)),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scanOutputFlag, outputFlagName, "o", viper.GetString(statsOutputKey), "report file (default <project>/"+domain.DefaultReportName+")")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), statsOutputKey)

	cmd.Flags().StringVar(&scanBuildTargetFlag, buildTargetFlagName, viper.GetString(scanBuildTargetKey), "platform whose audio import overrides are reported")
	bindFlagToConfig(cmd.Flags().Lookup(buildTargetFlagName), scanBuildTargetKey)

	cmd.Flags().IntVar(&scanReleaseIntervalFlag, releaseIntervalFlagName, viper.GetInt(scanReleaseIntervalKey), "files between releases of cached assets")
	bindFlagToConfig(cmd.Flags().Lookup(releaseIntervalFlagName), scanReleaseIntervalKey)
}
