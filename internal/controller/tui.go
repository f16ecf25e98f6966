package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	maxBarWidth     = 60
	reservedRows    = 7
	defaultPageRows = 10
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	stageStyle  = lipgloss.NewStyle().Bold(true)
	infoStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output    io.Writer
	input     io.Reader
	program   *tea.Program
	group     *errgroup.Group
	done      chan struct{}
	interrupt func()
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input, interrupt: interruptSelf}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	opts := []tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithoutSignalHandler(),
	}
	if cfg.mode == ModeView {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(newTUIModel(cfg.mode), opts...)
	done := make(chan struct{})
	interrupt := t.interrupt

	group := new(errgroup.Group)
	group.Go(func() error {
		defer close(done)

		final, err := program.Run()
		if model, ok := final.(tuiModel); ok && model.interrupted && interrupt != nil {
			interrupt()
		}

		return err
	})

	t.program, t.group, t.done = program, group, done

	return nil
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Send(finishMsg{})

	if err := t.group.Wait(); err != nil {
		slog.Warn("Terminal UI stopped with error", "error", err)
	}

	t.program = nil
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Send(waitMsg{})

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

// Confirm shows a yes/no prompt and waits for the answer.
func (t *TUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.program == nil {
		return false, nil
	}

	reply := make(chan bool, 1)
	t.program.Send(confirmMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-t.done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// DisplayProgress updates the progress bar.
func (t *TUI) DisplayProgress(_ context.Context, p m.Progress) {
	t.send(progressMsg(p))
}

// DisplayScanSummary shows per-kind totals of a finished scan.
func (t *TUI) DisplayScanSummary(_ context.Context, report *m.Report, output m.Path) {
	t.send(outputMsg(renderScanSummary(report) + fmt.Sprintf("Report written to %s\n", output)))
}

// DisplayBuildSummary shows what a build copied.
func (t *TUI) DisplayBuildSummary(_ context.Context, result m.BuildResult) {
	t.send(outputMsg(renderBuildSummary(result)))
}

// DisplayReport shows the records of a saved report.
func (t *TUI) DisplayReport(_ context.Context, report *m.Report, kinds []m.AssetKind) error {
	if report == nil {
		return errNoReport
	}

	t.send(outputMsg(renderReport(report, kinds)))

	return nil
}

// DisplayDiff shows a report diff.
func (t *TUI) DisplayDiff(_ context.Context, diff string) {
	if diff == "" {
		diff = "Reports are identical\n"
	}

	t.send(outputMsg(diff))
}

// DisplaySettings shows the persisted wizard settings.
func (t *TUI) DisplaySettings(_ context.Context, settings m.Settings) {
	t.send(outputMsg(renderSettings(settings)))
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

// interruptSelf forwards a Ctrl+C typed into the raw-mode terminal to the
// process, so the command's signal context is cancelled.
func interruptSelf() {
	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}

	if err := proc.Signal(os.Interrupt); err != nil {
		slog.Warn("Failed to forward interrupt", "error", err)
	}
}

type (
	progressMsg m.Progress
	outputMsg   string
	waitMsg     struct{}
	finishMsg   struct{}
	confirmMsg  struct {
		prompt string
		reply  chan<- bool
	}
)

// tuiModel is the Bubble Tea model shared by every mode.
type tuiModel struct {
	mode        StartMode
	stage       m.Progress
	bar         progress.Model
	lines       []string
	prompt      string
	reply       chan<- bool
	waiting     bool
	interrupted bool
	height      int
	width       int
	offset      int
}

func newTUIModel(mode StartMode) tuiModel {
	return tuiModel{
		mode: mode,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
	}
}

func (tm tuiModel) Init() tea.Cmd {
	return nil
}

func (tm tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.width = msg.Width
		tm.bar.Width = max(min(msg.Width-4, maxBarWidth), 10)

		return tm, nil

	case progressMsg:
		tm.stage = m.Progress(msg)
		return tm, nil

	case outputMsg:
		tm.lines = append(tm.lines, strings.Split(strings.TrimRight(string(msg), "\n"), "\n")...)
		return tm, nil

	case confirmMsg:
		tm.prompt = msg.prompt
		tm.reply = msg.reply

		return tm, nil

	case waitMsg:
		tm.waiting = true
		return tm, nil

	case finishMsg:
		tm = tm.answer(false)
		return tm, tea.Quit

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

//nolint:exhaustive // Only a few keys are bound.
func (tm tuiModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		tm = tm.answer(false)
		tm.interrupted = true

		return tm, tea.Quit
	}

	if tm.reply != nil {
		switch strings.ToLower(msg.String()) {
		case "y":
			return tm.answer(true), nil
		case "n", "enter", "esc":
			return tm.answer(false), nil
		}

		return tm, nil
	}

	if !tm.waiting {
		return tm, nil
	}

	switch msg.String() {
	case "q", "esc":
		return tm, tea.Quit
	case "down", "j":
		tm.offset = min(tm.offset+1, tm.maxOffset())
	case "up", "k":
		tm.offset = max(tm.offset-1, 0)
	case "d", "pgdown":
		tm.offset = min(tm.offset+tm.pageRows(), tm.maxOffset())
	case "u", "pgup":
		tm.offset = max(tm.offset-tm.pageRows(), 0)
	case "g", "home":
		tm.offset = 0
	case "G", "end":
		tm.offset = tm.maxOffset()
	}

	return tm, nil
}

// answer resolves a pending confirmation.
func (tm tuiModel) answer(ok bool) tuiModel {
	if tm.reply != nil {
		tm.reply <- ok
	}

	tm.reply = nil
	tm.prompt = ""

	return tm
}

// pageRows is how many output lines fit on screen.
func (tm tuiModel) pageRows() int {
	if tm.height == 0 {
		return defaultPageRows
	}

	return max(tm.height-reservedRows, 1)
}

func (tm tuiModel) maxOffset() int {
	return max(len(tm.lines)-tm.pageRows(), 0)
}

func (tm tuiModel) paged() bool {
	return tm.waiting && tm.height > 0 && len(tm.lines) > tm.pageRows()
}

func (tm tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("reprowiz · "+tm.modeName()) + "\n\n")

	if tm.stage.Title != "" {
		fmt.Fprintf(&b, "%s %s\n", stageStyle.Render(tm.stage.Title), infoStyle.Render(tm.stage.Info))
		b.WriteString(tm.bar.ViewAs(tm.stage.Fraction) + "\n\n")
	}

	lines := tm.lines
	if tm.paged() {
		end := min(tm.offset+tm.pageRows(), len(lines))
		lines = lines[tm.offset:end]
	}

	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	if tm.reply != nil {
		b.WriteString("\n" + promptStyle.Render(tm.prompt+" [y/N]") + "\n")
	}

	if tm.waiting {
		help := "q: quit"
		if tm.paged() {
			help = fmt.Sprintf("%d-%d of %d | ↑/k ↓/j g G | q: quit",
				tm.offset+1, min(tm.offset+tm.pageRows(), len(tm.lines)), len(tm.lines))
		}

		b.WriteString("\n" + helpStyle.Render(help) + "\n")
	}

	return b.String()
}

func (tm tuiModel) modeName() string {
	switch tm.mode {
	case ModeBuild:
		return "repro build"
	case ModeView:
		return "report"
	}

	return "project statistics"
}
