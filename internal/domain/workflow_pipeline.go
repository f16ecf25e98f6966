package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	"reprowiz.dev/pkg/reprowiz/internal/controller"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

type workflowPipeline struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.ImageCodec
	adapter.EditorLauncher
	controller.UI
	openResolver adapter.AssetResolverFactory
}

// NewWorkflowPipeline creates a new Workflow instance with the provided dependencies.
func NewWorkflowPipeline(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	codec adapter.ImageCodec,
	launcher adapter.EditorLauncher,
	ui controller.UI,
	resolvers adapter.AssetResolverFactory,
) Workflow {
	return &workflowPipeline{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		ImageCodec:      codec,
		EditorLauncher:  launcher,
		UI:              ui,
		openResolver:    resolvers,
	}
}

// Scan walks the project, writes the statistics report and shows a summary.
func (w *workflowPipeline) Scan(ctx context.Context, args StatsArgs) error {
	if !w.Exists(w.JoinPath(string(args.Root), "Assets")) {
		return &m.ConfigurationError{Field: "root", Reason: fmt.Sprintf("%s has no Assets folder", args.Root)}
	}

	output := args.Output
	if output == "" {
		output = w.JoinPath(string(args.Root), DefaultReportName)
	}

	resolver, err := w.openResolver(args.Root)
	if err != nil {
		slog.Error("Failed to open project", "root", args.Root, "error", err)
		return fmt.Errorf("open project: %w", err)
	}

	if err := w.Start(ctx, controller.WithScanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	report, err := NewScanner(w.SourceFSAdapter, resolver).Scan(ctx, args.ScanOptions, w.progress(ctx))
	if err != nil {
		slog.Error("Failed to scan project", "root", args.Root, "error", err)
		return fmt.Errorf("scan: %w", err)
	}

	if err := w.SaveReport(output, report); err != nil {
		slog.Error("Failed to save report", "output", output, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayScanSummary(ctx, report, output)

	return nil
}

// Build copies the closure of the input items into a fresh repro project.
func (w *workflowPipeline) Build(ctx context.Context, args BuildArgs) error {
	target := m.Path(args.Target)

	if err := w.validateBuild(args); err != nil {
		slog.Error("Invalid build configuration", "error", err)
		return err
	}

	resolver, err := w.openResolver(args.Root)
	if err != nil {
		slog.Error("Failed to open project", "root", args.Root, "error", err)
		return fmt.Errorf("open project: %w", err)
	}

	if err := w.validateTypedItems(resolver, args.ProjectItems, args.InputItems); err != nil {
		slog.Error("Invalid input item", "error", err)
		return err
	}

	if err := w.Start(ctx, controller.WithBuildMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	progress := w.progress(ctx)

	if err := w.prepareTarget(ctx, target, args.Overwrite, progress); err != nil {
		return err
	}

	builder := NewManifestBuilder(
		w.SourceFSAdapter,
		resolver,
		NewExpander(w.SourceFSAdapter),
		NewClosureEngine(resolver, args.FixedPoint),
	)

	manifest, err := builder.BuildManifest(ctx, ManifestArgs{
		Root:           args.Root,
		CommonPatterns: args.CommonPatterns,
		ProjectItems:   args.ProjectItems,
		InputItems:     args.InputItems,
	}, progress)
	if err != nil {
		slog.Error("Failed to build manifest", "error", err)
		return fmt.Errorf("manifest: %w", err)
	}

	copier := NewCopier(w.SourceFSAdapter, NewRescaler(w.SourceFSAdapter, w.ImageCodec))

	stats, failed, err := copier.Copy(ctx, CopyArgs{
		Source:   args.Root,
		Target:   target,
		Scale:    args.Scale,
		Manifest: manifest,
	}, progress)
	if err != nil {
		slog.Error("Failed to copy files", "target", target, "error", err)
		return fmt.Errorf("copy: %w", err)
	}

	w.DisplayBuildSummary(ctx, m.BuildResult{
		Target:   args.Target,
		Manifest: manifest.Len(),
		Stats:    stats,
		Failed:   failed,
	})

	if args.OpenAfterExport {
		if err := w.Launch(ctx, target); err != nil {
			slog.Error("Failed to open repro project", "target", target, "error", err)
			return fmt.Errorf("open project: %w", err)
		}
	}

	return nil
}

// View loads a saved report and shows it.
func (w *workflowPipeline) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report, args.Kinds); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Diff shows a unified diff between two saved reports.
func (w *workflowPipeline) Diff(ctx context.Context, args DiffArgs) error {
	before, err := w.LoadReport(args.Old)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Old, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	after, err := w.LoadReport(args.New)
	if err != nil {
		slog.Error("Failed to load report", "path", args.New, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	diff, err := DiffReports(before, after, string(args.Old), string(args.New), args.Context)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	w.DisplayDiff(ctx, diff)
	w.Close(ctx)

	return nil
}

func (w *workflowPipeline) progress(ctx context.Context) ProgressFunc {
	return func(p m.Progress) {
		w.DisplayProgress(ctx, p)
	}
}

// validateBuild rejects a build before anything on disk is touched.
func (w *workflowPipeline) validateBuild(args BuildArgs) error {
	target := strings.TrimSpace(args.Target)
	if target == "" {
		return &m.ConfigurationError{Field: "target", Reason: "project name and location are required"}
	}

	if !w.Exists(m.Path(target)) && !w.Exists(m.Path(filepath.Dir(target))) {
		return &m.ConfigurationError{Field: "target", Reason: fmt.Sprintf("neither %s nor its parent exists", target)}
	}

	if isWithin(string(args.Root), target) || isWithin(target, string(args.Root)) {
		return &m.ConfigurationError{Field: "target", Reason: "target overlaps the source project"}
	}

	if !m.HasPaths(args.InputItems) {
		return &m.ConfigurationError{Field: "inputs", Reason: "no input assets specified"}
	}

	if !m.ValidTextureScale(args.Scale) {
		return &m.ConfigurationError{Field: "texture_scale", Reason: fmt.Sprintf("unsupported scale %d", args.Scale)}
	}

	return nil
}

// validateTypedItems checks that scene, prefab and asset items name an asset
// of that type and records the resolved handle on the item.
func (w *workflowPipeline) validateTypedItems(resolver adapter.AssetResolver, lists ...[]m.InputSpec) error {
	for _, specs := range lists {
		for i := range specs {
			spec := &specs[i]
			if !spec.Typed() || spec.Path == "" {
				continue
			}

			handle, err := resolver.Resolve(spec.Path)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", spec.Path, err)
			}

			if !matchesKind(spec.Kind, handle) {
				return &m.ConfigurationError{
					Field:  "inputs",
					Reason: fmt.Sprintf("%s does not name %s %s", spec.Path, article(string(spec.Kind)), spec.Kind),
				}
			}

			spec.Handle = handle
		}
	}

	return nil
}

func matchesKind(kind m.InputKind, handle *m.Handle) bool {
	if handle == nil {
		return false
	}

	switch kind {
	case m.InputScene:
		return handle.Type == m.TypeScene
	case m.InputPrefab:
		return handle.Type == m.TypeGameObject
	}

	return true
}

// prepareTarget empties an existing target after the overwrite policy allows
// it, then makes sure the target directory exists.
func (w *workflowPipeline) prepareTarget(ctx context.Context, target m.Path, policy OverwritePolicy, progress ProgressFunc) error {
	occupied := false
	if w.Exists(target) {
		empty, err := w.IsEmptyDir(target)
		occupied = err != nil || !empty
	}

	if occupied {
		allowed, err := w.allowOverwrite(ctx, target, policy)
		if err != nil {
			return err
		}

		if !allowed {
			slog.Warn("Target exists and overwrite was declined", "target", target)
			return &m.ConflictError{Path: string(target)}
		}

		stage := cleanStage.with(progress)
		stage.begin(string(target))

		if err := w.RemoveAll(target); err != nil {
			slog.Error("Failed to clear target", "target", target, "error", err)
			return fmt.Errorf("clear target: %w", err)
		}

		stage.done(string(target))
	}

	if err := w.MkdirAll(target); err != nil {
		return fmt.Errorf("create target: %w", err)
	}

	return nil
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (w *workflowPipeline) allowOverwrite(ctx context.Context, target m.Path, policy OverwritePolicy) (bool, error) {
	switch policy {
	case OverwriteYes:
		return true, nil
	case OverwriteNo:
		return false, nil
	}

	prompt := fmt.Sprintf("%s already exists and is not empty. Delete it and continue?", target)

	ok, err := w.Confirm(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}

	return ok, nil
}

// article picks "a" or "an" for word.
func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}

	return "a"
}
