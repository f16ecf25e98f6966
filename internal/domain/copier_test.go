package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func newCopier() domain.Copier {
	fs := adapter.NewLocalSourceFSAdapter()
	return domain.NewCopier(fs, domain.NewRescaler(fs, adapter.NewLocalImageCodec()))
}

func TestCopier_CopyIsIdempotent(t *testing.T) {
	p := chainProject(t)
	target := filepath.Join(t.TempDir(), "Repro")

	manifest := m.NewManifest(
		"Assets/Scenes/Main.unity",
		"Assets/Props/Crate.prefab",
		"Assets/Textures/crate.png",
		"ProjectSettings/ProjectVersion.txt",
	)

	args := domain.CopyArgs{Source: p.path(), Target: m.Path(target), Scale: 1, Manifest: manifest}

	var last m.Progress

	stats, failed, err := newCopier().Copy(context.Background(), args, func(pr m.Progress) {
		assert.Equal(t, "Copy", pr.Title)
		assert.GreaterOrEqual(t, pr.Fraction, 0.2)
		assert.LessOrEqual(t, pr.Fraction, 1.0)

		last = pr
	})
	require.NoError(t, err)
	assert.Empty(t, failed)
	assert.InDelta(t, 1.0, last.Fraction, 1e-9)
	assert.Equal(t, m.CopyStats{Copied: 4, MetaCopied: 3, Directories: 4}, stats)

	got := tree(t, target)
	want := tree(t, p.root)

	assert.Len(t, got, 7)

	for rel, content := range got {
		assert.Equal(t, want[rel], content, rel)
	}

	stats, failed, err = newCopier().Copy(context.Background(), args, nil)
	require.NoError(t, err)
	assert.Empty(t, failed)
	assert.Equal(t, m.CopyStats{Skipped: 4, Directories: 4}, stats)
	assert.Equal(t, got, tree(t, target))
}

func TestCopier_CopiesSidecarOfPresentFile(t *testing.T) {
	p := chainProject(t)
	target := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(target, "Assets", "Props"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "Assets", "Props", "Crate.mat"), []byte("kept"), 0o644))

	stats, _, err := newCopier().Copy(context.Background(), domain.CopyArgs{
		Source:   p.path(),
		Target:   m.Path(target),
		Scale:    1,
		Manifest: m.NewManifest("Assets/Props/Crate.mat"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.MetaCopied)

	got := tree(t, target)
	assert.Equal(t, "kept", got["Assets/Props/Crate.mat"])
	assert.Contains(t, got["Assets/Props/Crate.mat.meta"], guidMat)
}

func TestCopier_SourceMissing(t *testing.T) {
	p := chainProject(t)

	_, _, err := newCopier().Copy(context.Background(), domain.CopyArgs{
		Source:   p.path(),
		Target:   m.Path(t.TempDir()),
		Scale:    1,
		Manifest: m.NewManifest("Assets/Gone.prefab"),
	}, nil)
	require.Error(t, err)
	assert.True(t, m.IsSourceMissing(err))
}

func TestCopier_RescalesAndContinuesPastDecodeErrors(t *testing.T) {
	p := chainProject(t)
	p.asset("Assets/Textures/broken.png", guidOther, []byte("not a png"), "")
	target := t.TempDir()

	stats, failed, err := newCopier().Copy(context.Background(), domain.CopyArgs{
		Source: p.path(),
		Target: m.Path(target),
		Scale:  4,
		Manifest: m.NewManifest(
			"Assets/Textures/broken.png",
			"Assets/Textures/crate.png",
			"Assets/Unused/notes.txt",
		),
	}, nil)
	require.NoError(t, err)

	require.Len(t, failed, 1)
	assert.Equal(t, m.Path(filepath.Join(p.root, "Assets", "Textures", "broken.png")), failed[0].Path)
	assert.Equal(t, 1, stats.Rescaled)
	assert.Equal(t, 1, stats.Copied)
	assert.Equal(t, 3, stats.MetaCopied)

	assert.NoFileExists(t, filepath.Join(target, "Assets", "Textures", "broken.png"))

	cfg, err := adapter.NewLocalImageCodec().DecodeConfig(m.Path(filepath.Join(target, "Assets", "Textures", "crate.png")))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 150, cfg.Height)
}

func TestCopier_KeepsTexturesWithoutDecoderAtFullSize(t *testing.T) {
	p := chainProject(t)
	p.asset("Assets/Textures/old.iff", guidOther, []byte("FORM\x00\x00\x00\x04ILBM"), "")
	target := t.TempDir()

	stats, failed, err := newCopier().Copy(context.Background(), domain.CopyArgs{
		Source:   p.path(),
		Target:   m.Path(target),
		Scale:    2,
		Manifest: m.NewManifest("Assets/Textures/old.iff"),
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, failed)
	assert.Equal(t, 1, stats.Copied)
	assert.Equal(t, 0, stats.Rescaled)
	assert.Equal(t, 1, stats.MetaCopied)

	data, err := os.ReadFile(filepath.Join(target, "Assets", "Textures", "old.iff"))
	require.NoError(t, err)
	assert.Equal(t, "FORM\x00\x00\x00\x04ILBM", string(data))
	assert.FileExists(t, filepath.Join(target, "Assets", "Textures", "old.iff.meta"))
}

func TestCopier_Canceled(t *testing.T) {
	p := chainProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newCopier().Copy(ctx, domain.CopyArgs{
		Source:   p.path(),
		Target:   m.Path(t.TempDir()),
		Scale:    1,
		Manifest: m.NewManifest("Assets/Unused/notes.txt"),
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
