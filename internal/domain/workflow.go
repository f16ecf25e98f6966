package domain

import (
	"context"
	"fmt"
	"strings"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// DefaultReportName is the file a scan writes when no output is given.
const DefaultReportName = "ProjectStats.json"

// OverwritePolicy decides what happens to a non-empty target directory.
type OverwritePolicy string

// Overwrite policies.
const (
	OverwriteAsk OverwritePolicy = "ask"
	OverwriteYes OverwritePolicy = "yes"
	OverwriteNo  OverwritePolicy = "no"
)

// ParseOverwritePolicy parses ask, yes or no. An empty string means ask.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch policy := OverwritePolicy(strings.ToLower(strings.TrimSpace(s))); policy {
	case "":
		return OverwriteAsk, nil
	case OverwriteAsk, OverwriteYes, OverwriteNo:
		return policy, nil
	}

	return "", fmt.Errorf("unknown overwrite policy %q (want ask, yes or no)", s)
}

// StatsArgs contains the arguments of a statistics scan.
type StatsArgs struct {
	ScanOptions

	// Output is the report file. Empty means <root>/ProjectStats.json.
	Output m.Path
}

// BuildArgs contains the arguments of a repro build.
type BuildArgs struct {
	Root            m.Path
	Target          string
	InputItems      []m.InputSpec
	ProjectItems    []m.InputSpec
	CommonPatterns  []string
	Scale           int
	Overwrite       OverwritePolicy
	OpenAfterExport bool
	FixedPoint      bool
}

// ViewArgs contains the arguments for showing a saved report.
type ViewArgs struct {
	Report m.Path
	Kinds  []m.AssetKind
}

// DiffArgs contains the arguments for comparing two saved reports.
type DiffArgs struct {
	Old     m.Path
	New     m.Path
	Context int
}

// Workflow is the entry point of every command.
type Workflow interface {
	Scan(ctx context.Context, args StatsArgs) error
	Build(ctx context.Context, args BuildArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}
