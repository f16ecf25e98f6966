package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// Expander turns a file path, a directory path or a file name pattern into
// the project files it names.
type Expander interface {
	// Expand adds every file p names under root to into and returns how many
	// paths were new. A pattern without matches is not an error.
	Expand(ctx context.Context, root m.Path, p m.Path, into *m.Manifest) (int, error)
}

type expander struct {
	adapter.SourceFSAdapter
}

// NewExpander creates an Expander reading the project through fsAdapter.
func NewExpander(fsAdapter adapter.SourceFSAdapter) Expander {
	return &expander{SourceFSAdapter: fsAdapter}
}

func (e *expander) Expand(ctx context.Context, root m.Path, p m.Path, into *m.Manifest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	rel := m.Path(strings.Trim(string(p.Normalize()), "/"))
	if rel == "" {
		return 0, nil
	}

	pattern := doublestar.EscapeMeta(string(rel)) + "/**"

	info, err := e.FileInfo(e.JoinPath(string(root), string(rel)))

	switch {
	case err == nil && info.Mode().IsRegular():
		if into.Add(rel) {
			return 1, nil
		}

		return 0, nil
	case err == nil && info.IsDir():
		// a directory stands for everything below it
	default:
		pattern = "**/" + rel.Base()
		if dir := rel.Dir(); dir != "." {
			pattern = e.literalDir(root, dir) + "/" + pattern
		}
	}

	matches, err := e.Glob(root, pattern)
	if err != nil {
		slog.Error("Failed to expand pattern", "pattern", rel, "error", err)
		return 0, fmt.Errorf("expand %s: %w", rel, err)
	}

	added := 0

	for _, match := range matches {
		// sidecars travel with their asset
		if match.IsMeta() && !rel.IsMeta() {
			continue
		}

		if into.Add(match) {
			added++
		}
	}

	slog.Debug("Expanded pattern", "pattern", rel, "matches", len(matches), "added", added)

	return added, nil
}

// literalDir escapes dir when it exists on disk so brackets in folder names
// are not read as pattern syntax.
func (e *expander) literalDir(root m.Path, dir m.Path) string {
	info, err := e.FileInfo(e.JoinPath(string(root), string(dir)))
	if err == nil && info.IsDir() {
		return doublestar.EscapeMeta(string(dir))
	}

	return string(dir)
}
