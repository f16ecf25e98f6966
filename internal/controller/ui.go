// Package controller provides the terminal front ends of the reprowiz workflows.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeScan StartMode = iota
	ModeBuild
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithScanMode sets the UI to statistics scan mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithBuildMode sets the UI to repro build mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithViewMode sets the UI to report browsing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how workflows talk to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	Confirm(ctx context.Context, prompt string) (bool, error)
	DisplayProgress(ctx context.Context, progress m.Progress)
	DisplayScanSummary(ctx context.Context, report *m.Report, output m.Path)
	DisplayBuildSummary(ctx context.Context, result m.BuildResult)
	DisplayReport(ctx context.Context, report *m.Report, kinds []m.AssetKind) error
	DisplayDiff(ctx context.Context, diff string)
	DisplaySettings(ctx context.Context, settings m.Settings)
}

// UI modes accepted by NewUIForMode.
const (
	UIModeAuto   = "auto"
	UIModeSimple = "simple"
	UIModeTUI    = "tui"
)

// NewUI picks the TUI for terminals and the plain UI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd, false)
}

// NewUIForMode honors an explicit mode and falls back to NewUI for auto.
func NewUIForMode(cmd *cobra.Command, mode string, isTTY bool) UI {
	switch mode {
	case UIModeSimple:
		return NewSimpleUI(cmd, isTTY)
	case UIModeTUI:
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewUI(cmd, isTTY)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
