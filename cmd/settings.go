package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"reprowiz.dev/pkg/reprowiz/internal/controller"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	nameFlagName     = "name"
	locationFlagName = "location"
	inputFlagName    = "input"
	alwaysFlagName   = "always"
	scaleFlagName    = "scale"
	openFlagName     = "open"
)

// settingsFlags edit the persisted repro settings from the command line.
type settingsFlags struct {
	name     string
	location string
	inputs   []string
	always   []string
	scale    string
	open     bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, nameFlagName, "", "name of the repro project")
	cmd.Flags().StringVar(&f.location, locationFlagName, "", "directory the repro project is created in")
	cmd.Flags().StringArrayVarP(&f.inputs, inputFlagName, "i", nil, "input item as kind:path or a glob (can be repeated, replaces the saved list)")
	cmd.Flags().StringArrayVar(&f.always, alwaysFlagName, nil, "item always copied into the repro project (can be repeated, replaces the saved list)")
	cmd.Flags().StringVar(&f.scale, scaleFlagName, "", "texture scale: full, half, quarter, eighth, sixteenth or 1, 2, 4, 8, 16")
	cmd.Flags().BoolVar(&f.open, openFlagName, false, "open the repro project in the editor after export")
}

// apply writes every flag the user set into settings and reports whether
// anything changed.
func (f *settingsFlags) apply(cmd *cobra.Command, settings *m.Settings) (bool, error) {
	flags := cmd.Flags()
	changed := false

	if flags.Changed(nameFlagName) {
		settings.ProjectName = f.name
		changed = true
	}

	if flags.Changed(locationFlagName) {
		settings.SetTarget(f.location, func(path string) bool {
			return fsAdapter.IsProjectDir(m.Path(path))
		})

		changed = true
	}

	if flags.Changed(inputFlagName) {
		specs, err := parseSpecs(f.inputs)
		if err != nil {
			return false, err
		}

		settings.InputItems = specs
		changed = true
	}

	if flags.Changed(alwaysFlagName) {
		specs, err := parseSpecs(f.always)
		if err != nil {
			return false, err
		}

		settings.ProjectItems = specs
		changed = true
	}

	if flags.Changed(scaleFlagName) {
		scale, err := m.ParseTextureScale(f.scale)
		if err != nil {
			return false, err
		}

		settings.TextureScale = scale
		changed = true
	}

	if flags.Changed(openFlagName) {
		settings.OpenAfterExport = f.open
		changed = true
	}

	return changed, nil
}

func parseSpecs(args []string) ([]m.InputSpec, error) {
	specs := make([]m.InputSpec, 0, len(args))

	for _, arg := range args {
		spec, err := m.ParseInputSpec(arg)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", arg, err)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// loadSettings reads the settings file and applies the flags on top.
func loadSettings(cmd *cobra.Command, flags *settingsFlags) (m.Settings, bool, error) {
	path := m.Path(settingsPath())

	settings, err := settingsStore.LoadSettings(path)
	if err != nil {
		slog.Error("Failed to load settings", "path", path, "error", err)
		return settings, false, err
	}

	changed, err := flags.apply(cmd, &settings)
	if err != nil {
		return settings, false, err
	}

	return settings, changed, nil
}

func saveSettings(settings m.Settings) error {
	path := m.Path(settingsPath())

	if err := settingsStore.SaveSettings(path, settings); err != nil {
		slog.Error("Failed to save settings", "path", path, "error", err)
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// settingsCmd represents the settings command.
var settingsCmd = newSettingsCmd()

func newSettingsCmd() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or edit the saved repro settings",
		Long: `Show the repro settings stored in the project. Any settings flag given is
written back to the settings file before it is shown.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, changed, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			if changed {
				if err := saveSettings(settings); err != nil {
					return err
				}
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return showSettings(ctx, settings)
		},
	}

	flags.register(cmd)

	return cmd
}

func showSettings(ctx context.Context, settings m.Settings) error {
	if err := ui.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	ui.DisplaySettings(ctx, settings)
	ui.Wait(ctx)
	ui.Close(ctx)

	return nil
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
