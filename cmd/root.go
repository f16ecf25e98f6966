// Package cmd provides the root command and CLI setup for reprowiz.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	"reprowiz.dev/pkg/reprowiz/internal/adapter/assetdb"
	"reprowiz.dev/pkg/reprowiz/internal/controller"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var settingsStore adapter.SettingsStore
var imageCodec adapter.ImageCodec
var workflow domain.Workflow
var ui controller.UI

// projectRootFlag is the asset project every command works on.
var projectRootFlag string

// settingsFileFlag overrides <project>/ReproProjectSettings.yaml.
var settingsFileFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUIForMode(rootCmd, viper.GetString(uiModeKey), controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	settingsStore = adapter.NewSettingsStore(fsAdapter)
	imageCodec = adapter.NewLocalImageCodec()
	workflow = domain.NewWorkflowPipeline(
		fsAdapter,
		reportStore,
		imageCodec,
		configuredEditor{},
		ui,
		assetdb.NewFactory(imageCodec),
	)
}

const rootLongDescription = `Reprowiz builds minimal reproduction projects out of large asset projects.

Given a few root assets (scenes, prefabs or wildcards) it follows every
reference they make, copies just that subset plus the common project files
into a fresh project and can downscale textures on the way. It also writes a
typed statistics report of a whole project.

Input items are given as "kind:path" (scene, prefab, asset) or as a plain
path or glob:
  - scene:Assets/Scenes/Main.unity
  - prefab:Assets/Props/Crate.prefab
  - Assets/Levels/**/*.unity`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reprowiz",
		Short: "Minimal repro project builder and asset statistics tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, without any
// subcommands attached.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&projectRootFlag, projectFlagName, "p",
			viper.GetString(projectRootKey),
			"root directory of the asset project",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectRootKey)

	cmd.PersistentFlags().StringVar(&settingsFileFlag, settingsFlagName, viper.GetString(settingsFileKey), "repro settings file (default <project>/"+defaultSettingsName+")")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(settingsFlagName), settingsFileKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// commandContext is canceled on the first interrupt.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return signal.NotifyContext(ctx, os.Interrupt)
}

func projectRoot() m.Path {
	return m.Path(viper.GetString(projectRootKey))
}

// configuredEditor looks the editor up when a project is opened, so a value
// set by flag or environment after startup is used.
type configuredEditor struct{}

func (configuredEditor) Launch(ctx context.Context, project m.Path) error {
	return adapter.NewLocalEditorLauncher(viper.GetString(editorPathKey)).Launch(ctx, project)
}
