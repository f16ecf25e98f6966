// Package model defines the data structures shared by the repro and stats workflows.
package model

import (
	"path"
	"strings"
)

// Path represents a file system path. Project-relative paths are always kept
// in their normalized, forward-slash form.
type Path string

// MetaSuffix is appended to an asset's file name to form its sidecar metadata file.
const MetaSuffix = ".meta"

// NormalizePath converts every backslash to a forward slash and collapses
// doubled forward slashes. It is idempotent.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}

	return p
}

// Normalize returns the normalized form of p.
func (p Path) Normalize() Path {
	return Path(NormalizePath(string(p)))
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return string(p)
}

// Ext returns the lower-cased extension of p, including the leading dot.
func (p Path) Ext() string {
	return strings.ToLower(path.Ext(string(p.Normalize())))
}

// Dir returns the normalized parent directory of p ("." for top-level files).
func (p Path) Dir() Path {
	return Path(path.Dir(string(p.Normalize())))
}

// Base returns the last element of p.
func (p Path) Base() string {
	return path.Base(string(p.Normalize()))
}

// Meta returns the sidecar metadata path that belongs to p.
func (p Path) Meta() Path {
	return p + MetaSuffix
}

// IsMeta reports whether p names a sidecar metadata file.
func (p Path) IsMeta() bool {
	return strings.HasSuffix(strings.ToLower(string(p)), MetaSuffix)
}
