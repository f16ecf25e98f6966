package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

var errNoReport = errors.New("no report to display")

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd         *cobra.Command
	interactive bool
	lastTitle   string
}

// NewSimpleUI creates a new SimpleUI. Confirmations are only asked when
// interactive is set; otherwise they are declined.
func NewSimpleUI(cmd *cobra.Command, interactive bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, interactive: interactive}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.lastTitle = ""

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// Confirm asks a yes/no question on the command's input.
func (s *SimpleUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !s.interactive {
		s.printf("%s [y/N]: n (not interactive)\n", prompt)
		return false, nil
	}

	s.printf("%s [y/N]: ", prompt)

	line, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	return isYes(line), nil
}

// DisplayProgress prints each stage title once.
func (s *SimpleUI) DisplayProgress(ctx context.Context, progress m.Progress) {
	if err := ctx.Err(); err != nil {
		return
	}

	if progress.Title == s.lastTitle {
		return
	}

	s.lastTitle = progress.Title
	s.printf("==> %s\n", progress.Title)
}

// DisplayScanSummary prints per-kind totals of a finished scan.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, report *m.Report, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderScanSummary(report))
	s.printf("Report written to %s\n", output)
}

// DisplayBuildSummary prints what a build copied.
func (s *SimpleUI) DisplayBuildSummary(ctx context.Context, result m.BuildResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderBuildSummary(result))
}

// DisplayReport prints the records of a saved report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report *m.Report, kinds []m.AssetKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report == nil {
		return errNoReport
	}

	s.printf("%s", renderReport(report, kinds))

	return nil
}

// DisplayDiff prints a report diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("Reports are identical\n")
		return
	}

	s.printf("%s", diff)
}

// DisplaySettings prints the persisted wizard settings.
func (s *SimpleUI) DisplaySettings(ctx context.Context, settings m.Settings) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderSettings(settings))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	return false
}
