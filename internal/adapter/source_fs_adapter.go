// Package adapter contains the infrastructure adapters used by the reprowiz workflows.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when reading a source project and writing a repro project. Paths passed
// in are host paths; Glob returns paths relative to its root.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root. When recursive is false only the direct children
	// of root are visited.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadDir lists a directory sorted by name.
	ReadDir(path m.Path) ([]fs.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists. Errors other than "not found" count
	// as existing so callers do not overwrite something they cannot stat.
	Exists(path m.Path) bool

	// IsEmptyDir reports whether path is a directory without entries.
	IsEmptyDir(path m.Path) (bool, error)

	// IsProjectDir reports whether path looks like an asset project root.
	IsProjectDir(path m.Path) bool

	// Glob matches a slash-separated doublestar pattern relative to root and
	// returns the matching regular files, relative to root, in slash form.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// CreateTempDir creates a scratch directory.
	CreateTempDir(pattern string) (m.Path, error)

	// MkdirAll creates a directory and its parents. Existing directories are fine.
	MkdirAll(path m.Path) error

	// RemoveAll removes a tree, clearing read-only bits that would block it.
	RemoveAll(path m.Path) error

	// Remove deletes a single file. A missing file is not an error.
	Remove(path m.Path) error

	// CopyFile copies src to dst and makes dst writable.
	CopyFile(src, dst m.Path) error

	// WriteFileAtomic writes content through a temp file and a rename.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

const (
	ownerWrite  os.FileMode = 0o200
	defaultPerm os.FileMode = 0o750
)

// LocalSourceFSAdapter backs SourceFSAdapter with the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadDir lists the entries of a directory sorted by file name.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]fs.DirEntry, error) {
	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading project files is the purpose of this adapter
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// IsEmptyDir reports whether path is a directory without entries.
func (a *LocalSourceFSAdapter) IsEmptyDir(path m.Path) (bool, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return false, err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}

// IsProjectDir reports whether path holds both Assets and ProjectSettings.
func (a *LocalSourceFSAdapter) IsProjectDir(path m.Path) bool {
	for _, sub := range []string{"Assets", "ProjectSettings"} {
		info, err := os.Stat(filepath.Join(string(path), sub))
		if err != nil || !info.IsDir() {
			return false
		}
	}

	return true
}

// Glob matches pattern against the tree under root. The pattern must already
// use forward slashes: a backslash escapes the next character.
func (a *LocalSourceFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	pattern = strings.TrimPrefix(strings.TrimPrefix(pattern, "./"), "/")
	if pattern == "" {
		return nil, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	sort.Strings(matches)

	out := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.Path(match).Normalize())
	}

	return out, nil
}

// CreateTempDir creates a scratch directory under the system temp dir.
func (a *LocalSourceFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// MkdirAll creates a directory and all missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), defaultPerm)
}

// RemoveAll removes a directory tree. Read-only entries are made writable
// first so the removal does not stop halfway.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	root := string(path)

	err := a.Walk(path, true, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		}

		if info.Mode().Perm()&ownerWrite == 0 {
			return os.Chmod(p, info.Mode().Perm()|ownerWrite)
		}

		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear read-only bits under %s: %w", root, err)
	}

	return os.RemoveAll(root)
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	err := os.Remove(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// CopyFile copies a single file. The copy is always owner-writable, even when
// the source is read-only.
func (a *LocalSourceFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src is a project file path resolved by the workflow
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	mode := info.Mode().Perm() | ownerWrite

	// #nosec G304 - dst is a path inside the chosen target project
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(string(dst), mode)
}

// WriteFileAtomic writes content to a sibling temp file and renames it over path.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, defaultPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		return err
	}

	committed = true

	return nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
