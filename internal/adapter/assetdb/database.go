// Package assetdb resolves the assets of a project on disk: it indexes the
// guid of every sidecar file and reads the text-serialized assets, sidecar
// importer settings and media headers needed for type, dependency and
// statistics queries.
package assetdb

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// Paths reported for objects that live in the editor's built-in resources.
const (
	BuiltinDefaultResources = m.Path("Library/unity default resources")
	BuiltinExtraResources   = m.Path("Resources/unity_builtin_extra")
)

var builtinGUIDs = map[string]m.Path{
	"0000000000000000e000000000000000": BuiltinDefaultResources,
	"0000000000000000f000000000000000": BuiltinExtraResources,
}

// indexedRoots are the top-level directories whose sidecars are indexed.
var indexedRoots = []string{"Assets", "Packages"}

var modelExts = map[string]struct{}{
	".fbx":   {},
	".obj":   {},
	".dae":   {},
	".3ds":   {},
	".gltf":  {},
	".glb":   {},
	".blend": {},
	".max":   {},
	".ma":    {},
	".mb":    {},
}

var audioExts = map[string]struct{}{
	".wav":  {},
	".mp3":  {},
	".ogg":  {},
	".aif":  {},
	".aiff": {},
	".flac": {},
	".mod":  {},
	".it":   {},
	".s3m":  {},
	".xm":   {},
}

var shaderExts = map[string]struct{}{
	".shader":      {},
	".shadergraph": {},
	".compute":     {},
}

// IsModelExt reports whether ext is imported as a compound model container.
func IsModelExt(ext string) bool {
	_, ok := modelExts[strings.ToLower(ext)]
	return ok
}

// IsAudioExt reports whether ext is imported as an audio clip.
func IsAudioExt(ext string) bool {
	_, ok := audioExts[strings.ToLower(ext)]
	return ok
}

// ImageInspector reads image headers.
type ImageInspector interface {
	DecodeConfig(path m.Path) (image.Config, error)
}

// Database is an AssetResolver over a project directory. It is not safe for
// concurrent use.
type Database struct {
	root   string
	images ImageInspector

	guids map[string]m.Path

	handles map[m.Path]*m.Handle
	docs    map[m.Path][]document
	metas   map[m.Path]*yaml.Node
}

var _ adapter.AssetResolver = (*Database)(nil)

// Open indexes the project rooted at root.
func Open(root string, images ImageInspector) (*Database, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("open project %s: not a directory", root)
	}

	db := &Database{
		root:    root,
		images:  images,
		guids:   make(map[string]m.Path),
		handles: make(map[m.Path]*m.Handle),
		docs:    make(map[m.Path][]document),
		metas:   make(map[m.Path]*yaml.Node),
	}

	if err := db.index(); err != nil {
		return nil, err
	}

	slog.Debug("Indexed asset project", "root", root, "assets", len(db.guids))

	return db, nil
}

// NewFactory returns an adapter.AssetResolverFactory opening databases that
// inspect images with images.
func NewFactory(images ImageInspector) adapter.AssetResolverFactory {
	return func(root m.Path) (adapter.AssetResolver, error) {
		return Open(string(root), images)
	}
}

func (db *Database) index() error {
	for _, top := range indexedRoots {
		dir := filepath.Join(db.root, top)
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !strings.HasSuffix(p, m.MetaSuffix) {
				return nil
			}

			guid, err := readGUID(p)
			if err != nil {
				slog.Warn("Skipping unreadable sidecar", "path", p, "error", err)
				return nil
			}

			if guid == "" {
				return nil
			}

			rel, err := filepath.Rel(db.root, strings.TrimSuffix(p, m.MetaSuffix))
			if err != nil {
				return err
			}

			db.guids[guid] = m.Path(filepath.ToSlash(rel)).Normalize()

			return nil
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", dir, err)
		}
	}

	return nil
}

func readGUID(metaPath string) (string, error) {
	// #nosec G304 - sidecar paths come from walking the project
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "guid:"); ok {
			return strings.ToLower(strings.TrimSpace(rest)), nil
		}
	}

	return "", nil
}

// PathOf maps a guid to its asset path.
func (db *Database) PathOf(guid string) (m.Path, bool) {
	guid = strings.ToLower(guid)
	if p, ok := builtinGUIDs[guid]; ok {
		return p, true
	}

	p, ok := db.guids[guid]

	return p, ok
}

func (db *Database) abs(p m.Path) string {
	return filepath.Join(db.root, filepath.FromSlash(string(p)))
}

func (db *Database) exists(p m.Path) bool {
	_, err := os.Stat(db.abs(p))
	return err == nil
}

// Resolve loads the main object of path.
func (db *Database) Resolve(path m.Path) (*m.Handle, error) {
	p := path.Normalize()
	if h, ok := db.handles[p]; ok {
		return h, nil
	}

	info, err := os.Stat(db.abs(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	if info.IsDir() || p.IsMeta() {
		return nil, nil
	}

	h, err := db.load(p)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", p, err)
	}

	if h != nil {
		db.handles[p] = h
	}

	return h, nil
}

func (db *Database) load(p m.Path) (*m.Handle, error) {
	ext := p.Ext()

	switch {
	case adapter.IsTextureExt(ext):
		tex, err := db.loadTexture(p)
		if err != nil {
			return nil, err
		}

		return &m.Handle{Path: p, Type: m.TypeTexture2D, Object: tex}, nil
	case ext == ".mat":
		mat, err := db.loadMaterial(p)
		if err != nil {
			return nil, err
		}

		return &m.Handle{Path: p, Type: m.TypeMaterial, Object: mat}, nil
	case IsModelExt(ext):
		return &m.Handle{Path: p, Type: m.TypeModel}, nil
	case ext == ".anim":
		clip, err := db.loadClip(p)
		if err != nil {
			return nil, err
		}

		return &m.Handle{Path: p, Type: m.TypeAnimationClip, Object: clip}, nil
	case IsAudioExt(ext):
		clip, err := db.loadAudio(p)
		if err != nil {
			return nil, err
		}

		return &m.Handle{Path: p, Type: m.TypeAudioClip, Object: clip}, nil
	case ext == ".prefab":
		root, err := db.loadPrefab(p, map[m.Path]bool{})
		if err != nil {
			return nil, err
		}

		return &m.Handle{Path: p, Type: m.TypeGameObject, Object: root}, nil
	case ext == ".unity":
		return &m.Handle{Path: p, Type: m.TypeScene}, nil
	}

	if _, ok := shaderExts[ext]; ok {
		return &m.Handle{Path: p, Type: m.TypeShader}, nil
	}

	if db.exists(p.Meta()) {
		return &m.Handle{Path: p, Type: m.TypeDefault}, nil
	}

	return nil, nil
}

// Unload drops a handle returned by Resolve.
func (db *Database) Unload(handle *m.Handle) {
	if handle == nil {
		return
	}

	p := handle.Path.Normalize()
	if db.handles[p] == handle {
		delete(db.handles, p)
	}
}

// ReleaseUnused drops the parsed documents and sidecars kept between queries.
func (db *Database) ReleaseUnused() {
	db.docs = make(map[m.Path][]document)
	db.metas = make(map[m.Path]*yaml.Node)

	slog.Debug("Released cached assets", "handles", len(db.handles))
}

// DependenciesOf returns paths and every asset they reference, transitively.
// References to built-in resources are not files and are left out.
func (db *Database) DependenciesOf(paths []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]bool, len(paths))
	queue := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		p = p.Normalize()
		if p == "" || seen[p] {
			continue
		}

		seen[p] = true
		queue = append(queue, p)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		refs, err := db.directReferences(p)
		if err != nil {
			return nil, fmt.Errorf("dependencies of %s: %w", p, err)
		}

		for _, ref := range refs {
			if !seen[ref] {
				seen[ref] = true
				queue = append(queue, ref)
			}
		}
	}

	out := make([]m.Path, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// directReferences lists the assets named by guid in a text asset and in its
// sidecar. Binary assets only contribute their sidecar references.
func (db *Database) directReferences(p m.Path) ([]m.Path, error) {
	var guids []string

	for _, file := range []m.Path{p, p.Meta()} {
		data, err := os.ReadFile(db.abs(file))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, err
		}

		if file == p && !isTextAsset(data) {
			continue
		}

		guids = append(guids, guidsIn(data)...)
	}

	out := make([]m.Path, 0, len(guids))

	for _, guid := range guids {
		if _, builtin := builtinGUIDs[guid]; builtin {
			continue
		}

		ref, ok := db.guids[guid]
		if !ok {
			slog.Debug("Dangling asset reference", "path", p, "guid", guid)
			continue
		}

		if ref != p {
			out = append(out, ref)
		}
	}

	return out, nil
}

// documents returns the parsed objects of a text asset.
func (db *Database) documents(p m.Path) ([]document, error) {
	if docs, ok := db.docs[p]; ok {
		return docs, nil
	}

	data, err := os.ReadFile(db.abs(p))
	if err != nil {
		return nil, err
	}

	if !isTextAsset(data) {
		return nil, fmt.Errorf("%s is not a text-serialized asset", p)
	}

	docs, err := parseDocuments(data)
	if err != nil {
		return nil, err
	}

	db.docs[p] = docs

	return docs, nil
}

// meta returns the parsed sidecar of p, or nil when there is none.
func (db *Database) meta(p m.Path) (*yaml.Node, error) {
	if n, ok := db.metas[p]; ok {
		return n, nil
	}

	data, err := os.ReadFile(db.abs(p.Meta()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			db.metas[p] = nil
			return nil, nil
		}

		return nil, err
	}

	n, err := parsePlain(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Meta(), err)
	}

	db.metas[p] = n

	return n, nil
}

// assetRef converts a serialized reference found in the file at owner.
func (db *Database) assetRef(owner m.Path, ref reference) (m.AssetRef, bool) {
	if ref.isNull() {
		return m.AssetRef{}, false
	}

	if ref.GUID == "" {
		return m.AssetRef{Path: owner, FileID: ref.FileID}, true
	}

	p, ok := db.PathOf(ref.GUID)
	if !ok {
		slog.Debug("Dangling asset reference", "path", owner, "guid", ref.GUID)
		return m.AssetRef{}, false
	}

	return m.AssetRef{Path: p, FileID: ref.FileID}, true
}
