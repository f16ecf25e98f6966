package model

import (
	"fmt"
	"strings"
)

// InputKind tells how an input item is matched against the project.
type InputKind string

const (
	// InputWildcard is a text path: an exact file, a directory or a glob.
	InputWildcard InputKind = "wildcard"
	// InputScene must resolve to exactly one scene.
	InputScene InputKind = "scene"
	// InputPrefab must resolve to exactly one prefab.
	InputPrefab InputKind = "prefab"
	// InputAsset must resolve to exactly one asset of any type.
	InputAsset InputKind = "asset"
)

// ParseInputKind parses a kind name, case-insensitively.
func ParseInputKind(s string) (InputKind, error) {
	switch InputKind(strings.ToLower(strings.TrimSpace(s))) {
	case InputWildcard, "":
		return InputWildcard, nil
	case InputScene:
		return InputScene, nil
	case InputPrefab:
		return InputPrefab, nil
	case InputAsset:
		return InputAsset, nil
	}

	return "", fmt.Errorf("unknown input kind %q", s)
}

// InputSpec is one entry of the input or always-include lists.
type InputSpec struct {
	Kind InputKind `yaml:"kind"`
	Path Path      `yaml:"path"`

	// Handle is the resolved asset of a typed spec. It is never persisted and
	// is re-resolved whenever settings are loaded.
	Handle *Handle `yaml:"-"`
}

// ParseInputSpec parses "kind:path" or a bare path (a wildcard). The prefix
// is only read as a kind when it names one, so a colon may appear in a path.
func ParseInputSpec(arg string) (InputSpec, error) {
	if prefix, rest, ok := strings.Cut(arg, ":"); ok && prefix != "" {
		if kind, err := ParseInputKind(prefix); err == nil {
			if strings.TrimSpace(rest) == "" {
				return InputSpec{}, fmt.Errorf("input %q has no path", arg)
			}

			return InputSpec{Kind: kind, Path: Path(rest).Normalize()}, nil
		}
	}

	return InputSpec{Kind: InputWildcard, Path: Path(arg).Normalize()}, nil
}

// String renders the spec in the form accepted by ParseInputSpec.
func (s InputSpec) String() string {
	if s.Kind == InputWildcard || s.Kind == "" {
		return string(s.Path)
	}

	return string(s.Kind) + ":" + string(s.Path)
}

// Typed reports whether the spec must resolve to a single asset.
func (s InputSpec) Typed() bool {
	return s.Kind != InputWildcard && s.Kind != ""
}

// HasPaths reports whether at least one spec carries a non-empty path.
func HasPaths(specs []InputSpec) bool {
	for _, spec := range specs {
		if strings.TrimSpace(string(spec.Path)) != "" {
			return true
		}
	}

	return false
}
