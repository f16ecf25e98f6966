package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// DefaultReleaseInterval is how many files are scanned between two releases
// of unused cached assets.
const DefaultReleaseInterval = 1000

const scanTitle = "Collecting Project Statistics"

var meshBundleExts = map[string]struct{}{
	".fbx":  {},
	".obj":  {},
	".dae":  {},
	".3ds":  {},
	".gltf": {},
	".glb":  {},
}

// ScanOptions configures a statistics scan.
type ScanOptions struct {
	Root            m.Path
	BuildTarget     string
	ReleaseInterval int
}

// Scanner builds a statistics report of every file under a project's Assets folder.
type Scanner interface {
	Scan(ctx context.Context, args ScanOptions, progress ProgressFunc) (*m.Report, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	adapter.AssetResolver
	now func() time.Time
}

// NewScanner creates a Scanner for the project resolver belongs to.
func NewScanner(fsAdapter adapter.SourceFSAdapter, resolver adapter.AssetResolver) Scanner {
	return &scanner{
		SourceFSAdapter: fsAdapter,
		AssetResolver:   resolver,
		now:             time.Now,
	}
}

func (s *scanner) Scan(ctx context.Context, args ScanOptions, progress ProgressFunc) (*m.Report, error) {
	interval := args.ReleaseInterval
	if interval <= 0 {
		interval = DefaultReleaseInterval
	}

	files, err := s.listFiles(args.Root, "Assets")
	if err != nil {
		slog.Error("Failed to list project files", "root", args.Root, "error", err)
		return nil, fmt.Errorf("list files: %w", err)
	}

	stage := progressRange{report: progress, title: scanTitle, start: 0, end: 1}
	items := make(map[m.AssetKind][]m.AssetRecord, len(m.AssetKinds))

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stage.step(string(rel), i, len(files))

		record, err := s.record(args.Root, rel, args.BuildTarget)
		if err != nil {
			return nil, err
		}

		items[record.Kind] = append(items[record.Kind], record)

		if (i+1)%interval == 0 {
			s.ReleaseUnused()
		}
	}

	stage.done("")
	s.ReleaseUnused()

	report := m.NewReport(uuid.NewString(), args.Root, s.now(), items)
	slog.Info("Scan finished", "root", args.Root, "files", report.Len())

	return report, nil
}

// listFiles returns the files below dir, relative to root: the files of a
// directory first, then its subdirectories, both by name. Sidecars are skipped.
func (s *scanner) listFiles(root, dir m.Path) ([]m.Path, error) {
	entries, err := s.ReadDir(s.JoinPath(string(root), string(dir)))
	if err != nil {
		return nil, err
	}

	var (
		files   []m.Path
		subdirs []m.Path
	)

	for _, entry := range entries {
		rel := m.Path(string(dir) + "/" + entry.Name()).Normalize()

		switch {
		case entry.IsDir():
			subdirs = append(subdirs, rel)
		case !rel.IsMeta():
			files = append(files, rel)
		}
	}

	for _, sub := range subdirs {
		nested, err := s.listFiles(root, sub)
		if err != nil {
			return nil, err
		}

		files = append(files, nested...)
	}

	return files, nil
}

func (s *scanner) record(root, rel m.Path, buildTarget string) (m.AssetRecord, error) {
	info, err := s.FileInfo(s.JoinPath(string(root), string(rel)))
	if err != nil {
		return m.AssetRecord{}, fmt.Errorf("stat %s: %w", rel, err)
	}

	record := m.AssetRecord{Kind: m.KindFile, Path: rel, Size: info.Size()}

	handle, err := s.Resolve(rel)
	if err != nil {
		slog.Warn("Failed to resolve asset", "path", rel, "error", err)
		return record, nil
	}

	if handle == nil {
		return record, nil
	}

	defer s.Unload(handle)

	ext := rel.Ext()

	switch _, bundle := meshBundleExts[ext]; {
	case handle.Type == m.TypeTexture2D:
		if tex, ok := handle.Object.(*m.Texture); ok {
			record.Kind = m.KindTexture2D
			record.Texture = textureData(tex)
		}
	case ext == ".mat":
		if mat, ok := handle.Object.(*m.Material); ok {
			record.Kind = m.KindMaterial
			record.Material = materialData(mat)
		}
	case bundle:
		data, err := s.meshBundleData(rel)
		if err != nil {
			slog.Warn("Failed to load sub-assets", "path", rel, "error", err)
			return record, nil
		}

		record.Kind = m.KindMeshBundle
		record.MeshBundle = data
	case handle.Type == m.TypeAnimationClip:
		if clip, ok := handle.Object.(*m.AnimationClip); ok {
			record.Kind = m.KindAnimationClip
			record.AnimationClip = &m.AnimationClipData{
				FrameCount: frameCount(clip),
				Duration:   clip.Length,
			}
		}
	case handle.Type == m.TypeAudioClip:
		if clip, ok := handle.Object.(*m.AudioClip); ok {
			record.Kind = m.KindAudioClip
			record.AudioClip = s.audioClipData(rel, clip, buildTarget)
		}
	case ext == ".prefab":
		if root, ok := handle.Object.(*m.GameObject); ok {
			record.Kind = m.KindPrefab
			record.Prefab = prefabData(root)
		}
	case ext == ".unity":
		record.Kind = m.KindScene
	}

	return record, nil
}

func textureData(tex *m.Texture) *m.TextureData {
	return &m.TextureData{
		Width:     tex.Config.Width,
		Height:    tex.Config.Height,
		Format:    tex.Format,
		Dimension: tex.Dimension,
	}
}

func materialData(mat *m.Material) *m.MaterialData {
	var textures m.PathList
	for _, ref := range mat.Textures {
		textures.Add(ref.Path)
	}

	return &m.MaterialData{
		ShaderPath:   mat.Shader.Path,
		TexturePaths: textures.Paths(),
	}
}

func (s *scanner) meshBundleData(rel m.Path) (*m.MeshBundleData, error) {
	subs, err := s.LoadSubAssets(rel)
	if err != nil {
		return nil, err
	}

	data := &m.MeshBundleData{
		Meshes:     []m.MeshInfo{},
		Animations: []m.AnimationInfo{},
	}

	for _, sub := range subs {
		switch obj := sub.Object.(type) {
		case *m.Mesh:
			data.Meshes = append(data.Meshes, m.MeshInfo{
				Name:          obj.Name,
				SubMeshCount:  obj.SubMeshCount,
				VertexCount:   obj.VertexCount,
				TriangleCount: obj.TriangleCount,
			})
		case *m.AnimationClip:
			data.Animations = append(data.Animations, m.AnimationInfo{
				Name:       obj.Name,
				FrameCount: frameCount(obj),
				Duration:   obj.Length,
			})
		}
	}

	data.MeshCount = len(data.Meshes)
	data.AnimationCount = len(data.Animations)

	return data, nil
}

func (s *scanner) audioClipData(rel m.Path, clip *m.AudioClip, buildTarget string) *m.AudioClipData {
	data := &m.AudioClipData{
		Duration:    clip.Length,
		Channels:    clip.Channels,
		SampleRate:  clip.Frequency,
		SampleCount: clip.SampleCount,
	}

	settings, err := s.AudioImportSettings(rel, buildTarget)
	if err != nil {
		slog.Warn("Failed to read audio import settings", "path", rel, "error", err)
		return data
	}

	data.CompressionFormat = settings.CompressionFormat
	data.CompressionQuality = settings.Quality

	return data
}

// prefabData lists the meshes and materials of every renderer below root:
// filter meshes first, then skinned meshes; materials in renderer order.
// Particle renderers contribute materials only.
func prefabData(root *m.GameObject) *m.PrefabData {
	var meshes, materials m.PathList

	for _, r := range root.ComponentsInChildren("") {
		if r.Kind == m.RendererMesh && r.Mesh != nil {
			meshes.Add(r.Mesh.Path)
		}

		for _, mat := range r.Materials {
			materials.Add(mat.Path)
		}
	}

	for _, r := range root.ComponentsInChildren(m.RendererSkinned) {
		if r.Mesh != nil {
			meshes.Add(r.Mesh.Path)
		}
	}

	return &m.PrefabData{
		MeshPaths:     meshes.Paths(),
		MaterialPaths: materials.Paths(),
	}
}

func frameCount(clip *m.AnimationClip) int {
	return int(math.Round(clip.FrameRate * clip.Length))
}
