package adapter

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// ErrNoEditor is returned when opening a project without a configured editor.
var ErrNoEditor = errors.New("no editor executable configured")

// EditorLauncher opens a finished repro project in the editor.
type EditorLauncher interface {
	// Launch starts the editor on project and returns without waiting for it to exit.
	Launch(ctx context.Context, project m.Path) error
}

// LocalEditorLauncher starts the editor as a detached child process.
type LocalEditorLauncher struct {
	executable string
	extraArgs  []string
}

// NewLocalEditorLauncher constructs a launcher for executable. extraArgs are
// appended after the project arguments.
func NewLocalEditorLauncher(executable string, extraArgs ...string) *LocalEditorLauncher {
	return &LocalEditorLauncher{
		executable: strings.TrimSpace(executable),
		extraArgs:  extraArgs,
	}
}

// Launch runs "<executable> -projectPath <project> [extra args]".
func (a *LocalEditorLauncher) Launch(ctx context.Context, project m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.executable == "" {
		return ErrNoEditor
	}

	args := append([]string{"-projectPath", string(project)}, a.extraArgs...)

	// The editor outlives the command, so it is not bound to ctx.
	// #nosec G204 - the executable comes from the user's own configuration
	cmd := exec.Command(a.executable, args...)

	if err := cmd.Start(); err != nil {
		return err
	}

	slog.Info("Editor started", "executable", a.executable, "project", project, "pid", cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("Editor exited with error", "executable", a.executable, "error", err)
		}
	}()

	return nil
}
