package domain

import (
	"context"
	"fmt"
	"log/slog"

	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// DefaultCommonPatterns are copied into every repro project: build
// configuration, shader includes, pipeline markers, native plugins, scripts,
// assembly and package descriptors.
var DefaultCommonPatterns = []string{
	"ProjectSettings/*.asset",
	"ProjectSettings/*.txt",
	"Assets/*.cginc",
	"Assets/*.hlsl",
	"Assets/*SRPMARKER",
	"Assets/*.dll",
	"Assets/*.cs",
	"Assets/*.rsp",
	"Assets/*.asmdef",
	"Packages/manifest.json",
	"Assets/*package.json",
}

// ManifestArgs describes what goes into a repro project.
type ManifestArgs struct {
	Root           m.Path
	CommonPatterns []string
	ProjectItems   []m.InputSpec
	InputItems     []m.InputSpec
}

// ManifestBuilder collects the files a repro project needs.
type ManifestBuilder interface {
	BuildManifest(ctx context.Context, args ManifestArgs, progress ProgressFunc) (*m.Manifest, error)
}

type manifestBuilder struct {
	adapter.SourceFSAdapter
	adapter.AssetResolver
	Expander
	ClosureEngine
}

// NewManifestBuilder creates a ManifestBuilder for one source project.
func NewManifestBuilder(
	fsAdapter adapter.SourceFSAdapter,
	resolver adapter.AssetResolver,
	expander Expander,
	closure ClosureEngine,
) ManifestBuilder {
	return &manifestBuilder{
		SourceFSAdapter: fsAdapter,
		AssetResolver:   resolver,
		Expander:        expander,
		ClosureEngine:   closure,
	}
}

// BuildManifest merges, in order, the common patterns, the graphics settings
// closure, the closure of the always-include items and the closure of the
// input items. Steps only ever add paths.
func (b *manifestBuilder) BuildManifest(ctx context.Context, args ManifestArgs, progress ProgressFunc) (*m.Manifest, error) {
	manifest := m.NewManifest()

	patterns := args.CommonPatterns
	if patterns == nil {
		patterns = DefaultCommonPatterns
	}

	find := findStage.with(progress)
	find.begin("Common Files")

	for _, pattern := range patterns {
		if _, err := b.Expand(ctx, args.Root, m.Path(pattern), manifest); err != nil {
			return nil, fmt.Errorf("common files: %w", err)
		}
	}

	find.step("Graphics Settings", 1, 2)

	if err := b.addGraphicsSettings(ctx, args.Root, manifest); err != nil {
		return nil, err
	}

	collect := collectStage.with(progress)
	collect.begin("Project Items")

	if err := b.addItems(ctx, args.Root, args.ProjectItems, manifest); err != nil {
		return nil, fmt.Errorf("project items: %w", err)
	}

	collect.step("Input Items", 1, 2)

	if err := b.addItems(ctx, args.Root, args.InputItems, manifest); err != nil {
		return nil, fmt.Errorf("input items: %w", err)
	}

	collect.done("")

	slog.Info("Manifest built", "root", args.Root, "files", manifest.Len())

	return manifest, nil
}

func (b *manifestBuilder) addGraphicsSettings(ctx context.Context, root m.Path, manifest *m.Manifest) error {
	settings, err := b.GraphicsSettings()
	if err != nil {
		slog.Error("Failed to read graphics settings", "error", err)
		return fmt.Errorf("graphics settings: %w", err)
	}

	seeds := m.NewManifest()

	candidates := append([]m.Path{settings.RenderPipeline}, settings.CustomShaders...)
	for _, p := range candidates {
		if p == "" || !b.Exists(b.JoinPath(string(root), string(p))) {
			continue
		}

		seeds.Add(p)
	}

	return b.mergeClosure(ctx, seeds, manifest)
}

// addItems expands specs, merges the raw expansion and then its closure.
func (b *manifestBuilder) addItems(ctx context.Context, root m.Path, specs []m.InputSpec, manifest *m.Manifest) error {
	expanded := m.NewManifest()

	for _, spec := range specs {
		if _, err := b.Expand(ctx, root, spec.Path, expanded); err != nil {
			return err
		}
	}

	manifest.Merge(expanded)

	return b.mergeClosure(ctx, expanded, manifest)
}

func (b *manifestBuilder) mergeClosure(ctx context.Context, seeds, manifest *m.Manifest) error {
	if seeds.Len() == 0 {
		return nil
	}

	closed, err := b.Closure(ctx, seeds)
	if err != nil {
		return err
	}

	added := manifest.Merge(closed)
	slog.Debug("Merged dependency closure", "seeds", seeds.Len(), "closure", closed.Len(), "added", added)

	return nil
}
