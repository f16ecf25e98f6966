package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// CopyArgs holds the inputs of a copy pass.
type CopyArgs struct {
	Source   m.Path
	Target   m.Path
	Scale    int
	Manifest *m.Manifest
}

// Copier writes manifest files from a source project into a target project.
type Copier interface {
	// Copy mirrors every manifest entry and its sidecar into the target. Files
	// already present in the target are left alone, so a copy can be resumed.
	// Textures that fail to decode are reported in the returned slice.
	Copy(ctx context.Context, args CopyArgs, progress ProgressFunc) (m.CopyStats, []m.DecodeError, error)
}

type copier struct {
	adapter.SourceFSAdapter
	Rescaler
}

// NewCopier creates a Copier.
func NewCopier(fsAdapter adapter.SourceFSAdapter, rescaler Rescaler) Copier {
	return &copier{SourceFSAdapter: fsAdapter, Rescaler: rescaler}
}

func (c *copier) Copy(ctx context.Context, args CopyArgs, progress ProgressFunc) (m.CopyStats, []m.DecodeError, error) {
	var (
		stats  m.CopyStats
		failed []m.DecodeError
	)

	stage := copyStage.with(progress)
	stage.begin("Directories")

	for _, dir := range args.Manifest.Dirs() {
		if err := c.MkdirAll(c.JoinPath(string(args.Target), string(dir))); err != nil {
			slog.Error("Failed to create directory", "dir", dir, "error", err)
			return stats, failed, fmt.Errorf("create %s: %w", dir, err)
		}

		stats.Directories++
	}

	files := args.Manifest.Sorted()

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return stats, failed, err
		}

		stage.step(rel.Base(), i, len(files))

		src := c.JoinPath(string(args.Source), string(rel))
		dst := c.JoinPath(string(args.Target), string(rel))

		err := c.copyPrimary(ctx, rel, src, dst, args.Scale, &stats)

		var decodeErr *m.DecodeError

		switch {
		case errors.As(err, &decodeErr):
			failed = append(failed, *decodeErr)
		case err != nil:
			return stats, failed, err
		}

		if err := c.copyMeta(src, dst, &stats); err != nil {
			slog.Error("Failed to copy sidecar", "path", rel.Meta(), "error", err)
			return stats, failed, fmt.Errorf("copy %s: %w", rel.Meta(), err)
		}
	}

	stage.done("")

	slog.Info("Copy finished",
		"copied", stats.Copied, "rescaled", stats.Rescaled, "skipped", stats.Skipped,
		"meta", stats.MetaCopied, "failed", len(failed))

	return stats, failed, nil
}

func (c *copier) copyPrimary(ctx context.Context, rel, src, dst m.Path, scale int, stats *m.CopyStats) error {
	if c.Exists(dst) {
		stats.Skipped++
		return nil
	}

	if _, err := c.FileInfo(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Error("Source file is missing", "path", rel)
			return &m.SourceMissingError{Path: rel, Err: err}
		}

		return fmt.Errorf("stat %s: %w", rel, err)
	}

	if scale > 1 && adapter.IsRescalable(rel.Ext()) {
		err := c.Rescale(ctx, src, dst, scale)
		if err == nil {
			stats.Rescaled++
			return nil
		}

		// no decoder for the container: keep the texture at full size
		if !errors.Is(err, adapter.ErrUnsupportedImage) {
			return err
		}

		slog.Warn("Copying texture without rescaling", "path", rel, "error", err)
	}

	if err := c.CopyFile(src, dst); err != nil {
		slog.Error("Failed to copy file", "path", rel, "error", err)
		return fmt.Errorf("copy %s: %w", rel, err)
	}

	stats.Copied++

	return nil
}

func (c *copier) copyMeta(src, dst m.Path, stats *m.CopyStats) error {
	if !c.Exists(src.Meta()) || c.Exists(dst.Meta()) {
		return nil
	}

	if err := c.CopyFile(src.Meta(), dst.Meta()); err != nil {
		return err
	}

	stats.MetaCopied++

	return nil
}
