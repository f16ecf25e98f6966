package domain

import (
	"context"
	"fmt"
	"log/slog"

	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// maxClosurePasses bounds the fixed-point mode against a resolver that keeps
// inventing paths.
const maxClosurePasses = 64

// ClosureEngine computes the dependency closure of a set of assets.
type ClosureEngine interface {
	// Closure returns seeds plus every asset the resolver reports for them.
	// The resolver is queried with the whole set at once.
	Closure(ctx context.Context, seeds *m.Manifest) (*m.Manifest, error)
}

type closureEngine struct {
	adapter.AssetResolver
	fixedPoint bool
}

// NewClosureEngine creates a single-pass ClosureEngine. With fixedPoint set
// the resolver is queried again with every newly found path until nothing new
// turns up, for resolvers that only report direct dependencies.
func NewClosureEngine(resolver adapter.AssetResolver, fixedPoint bool) ClosureEngine {
	return &closureEngine{AssetResolver: resolver, fixedPoint: fixedPoint}
}

func (c *closureEngine) Closure(ctx context.Context, seeds *m.Manifest) (*m.Manifest, error) {
	result := m.NewManifest(seeds.Sorted()...)
	frontier := result.Sorted()

	for pass := 0; len(frontier) > 0; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if pass == maxClosurePasses {
			slog.Warn("Dependency closure did not settle", "passes", pass, "pending", len(frontier))
			break
		}

		deps, err := c.DependenciesOf(frontier)
		if err != nil {
			slog.Error("Failed to query dependencies", "paths", len(frontier), "error", err)
			return nil, fmt.Errorf("dependencies: %w", err)
		}

		var found []m.Path

		for _, dep := range deps {
			if result.Add(dep) {
				found = append(found, dep.Normalize())
			}
		}

		slog.Debug("Dependency pass", "pass", pass, "queried", len(frontier), "new", len(found))

		if !c.fixedPoint {
			break
		}

		frontier = found
	}

	return result, nil
}
