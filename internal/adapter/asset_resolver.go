package adapter

import (
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// AssetResolver answers type and dependency queries about the assets of one
// project. All paths are project-relative and normalized.
type AssetResolver interface {
	// Resolve loads the main object of path. It returns a nil handle and no
	// error when path does not name an imported asset.
	Resolve(path m.Path) (*m.Handle, error)

	// DependenciesOf returns the assets the given paths depend on, including
	// the paths themselves. The whole set is queried in one call so shared
	// sub-dependencies are visited once.
	DependenciesOf(paths []m.Path) ([]m.Path, error)

	// LoadSubAssets returns every object stored in a compound container.
	LoadSubAssets(path m.Path) ([]m.SubAsset, error)

	// Unload drops a handle returned by Resolve.
	Unload(handle *m.Handle)

	// ReleaseUnused drops every cached object that is not referenced anymore.
	ReleaseUnused()

	// AudioImportSettings returns the import settings of an audio clip for a
	// build target, falling back to the clip's default settings.
	AudioImportSettings(path m.Path, buildTarget string) (m.AudioImportSettings, error)

	// GraphicsSettings reads the project-wide graphics configuration.
	GraphicsSettings() (m.GraphicsSettings, error)
}

// AssetResolverFactory opens a resolver for the project rooted at root.
type AssetResolverFactory func(root m.Path) (AssetResolver, error)
