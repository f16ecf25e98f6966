package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
)

const (
	overwriteFlagName  = "overwrite"
	fixedPointFlagName = "fixed-point"
	saveFlagName       = "save"
)

var buildOverwriteFlag string
var buildFixedPointFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	flags := &settingsFlags{}

	var save bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a minimal repro project",
		Long: `Copy the input items, everything they reference and the common project files
into a new project at <location>/<name>.

Values missing from the command line are taken from the saved settings file.
With --save the settings given on the command line are written back first.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, changed, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			if save && changed {
				if err := saveSettings(settings); err != nil {
					return err
				}
			}

			policy, err := domain.ParseOverwritePolicy(viper.GetString(buildOverwriteKey))
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.Build(ctx, domain.BuildArgs{
				Root:            projectRoot(),
				Target:          settings.TargetPath(),
				InputItems:      settings.InputItems,
				ProjectItems:    settings.ProjectItems,
				CommonPatterns:  viper.GetStringSlice(buildCommonPatternsKey),
				Scale:           settings.TextureScale,
				Overwrite:       policy,
				OpenAfterExport: settings.OpenAfterExport,
				FixedPoint:      viper.GetBool(closureFixedPointKey),
			})
		},
	}

	flags.register(cmd)
	configureBuildFlags(cmd, &save)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command, save *bool) {
	cmd.Flags().StringVar(&buildOverwriteFlag, overwriteFlagName, viper.GetString(buildOverwriteKey), "what to do with a non-empty target: ask, yes or no")
	bindFlagToConfig(cmd.Flags().Lookup(overwriteFlagName), buildOverwriteKey)

	cmd.Flags().BoolVar(&buildFixedPointFlag, fixedPointFlagName, viper.GetBool(closureFixedPointKey), "repeat the dependency pass until no new files appear")
	bindFlagToConfig(cmd.Flags().Lookup(fixedPointFlagName), closureFixedPointKey)

	cmd.Flags().BoolVar(save, saveFlagName, false, "write the settings given on the command line back to the settings file")
}
