package model

import "sort"

// Manifest is a set of normalized, project-relative file paths.
type Manifest struct {
	paths map[Path]struct{}
}

// NewManifest returns a manifest holding paths.
func NewManifest(paths ...Path) *Manifest {
	mf := &Manifest{paths: make(map[Path]struct{}, len(paths))}
	for _, p := range paths {
		mf.Add(p)
	}

	return mf
}

// Add inserts the normalized form of p and reports whether it was new.
func (mf *Manifest) Add(p Path) bool {
	if mf.paths == nil {
		mf.paths = make(map[Path]struct{})
	}

	p = p.Normalize()
	if p == "" {
		return false
	}

	if _, ok := mf.paths[p]; ok {
		return false
	}

	mf.paths[p] = struct{}{}

	return true
}

// Merge adds every path of other and returns the number of new entries.
func (mf *Manifest) Merge(other *Manifest) int {
	if other == nil {
		return 0
	}

	added := 0

	for p := range other.paths {
		if mf.Add(p) {
			added++
		}
	}

	return added
}

// Contains reports whether p (normalized) is in the manifest.
func (mf *Manifest) Contains(p Path) bool {
	if mf == nil {
		return false
	}

	_, ok := mf.paths[p.Normalize()]

	return ok
}

// Len returns the number of paths.
func (mf *Manifest) Len() int {
	if mf == nil {
		return 0
	}

	return len(mf.paths)
}

// Sorted returns the paths in lexical order.
func (mf *Manifest) Sorted() []Path {
	if mf == nil {
		return []Path{}
	}

	out := make([]Path, 0, len(mf.paths))
	for p := range mf.paths {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Dirs returns the unique parent directories of the paths, sorted.
func (mf *Manifest) Dirs() []Path {
	seen := make(map[Path]struct{})
	for _, p := range mf.Sorted() {
		seen[p.Dir()] = struct{}{}
	}

	out := make([]Path, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
