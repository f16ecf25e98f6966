package model

import (
	"fmt"
	"strings"
)

// AssetKind identifies the variant of an AssetRecord.
type AssetKind string

const (
	// KindTexture2D is an image file imported as a texture.
	KindTexture2D AssetKind = "texture2d"
	// KindMaterial is a material referencing a shader and textures.
	KindMaterial AssetKind = "material"
	// KindMeshBundle is an interchange file holding meshes and animations.
	KindMeshBundle AssetKind = "mesh_bundle"
	// KindAnimationClip is a standalone animation clip.
	KindAnimationClip AssetKind = "animation_clip"
	// KindAudioClip is an audio file imported as a clip.
	KindAudioClip AssetKind = "audio_clip"
	// KindPrefab is an instantiable object graph.
	KindPrefab AssetKind = "prefab"
	// KindScene is a scene file. Only common fields are recorded.
	KindScene AssetKind = "scene"
	// KindFile is any other file. Only common fields are recorded.
	KindFile AssetKind = "file"
)

// AssetKinds lists every kind in report order.
var AssetKinds = []AssetKind{
	KindTexture2D,
	KindMaterial,
	KindMeshBundle,
	KindAnimationClip,
	KindAudioClip,
	KindPrefab,
	KindScene,
	KindFile,
}

// ParseAssetKind parses a kind name, case-insensitively.
func ParseAssetKind(s string) (AssetKind, error) {
	kind := AssetKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range AssetKinds {
		if k == kind {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown asset kind %q", s)
}

// AssetRecord describes one file of a scanned project. Exactly one of the
// variant pointers is set, matching Kind; scenes and plain files set none.
type AssetRecord struct {
	Kind AssetKind `json:"kind"`
	Path Path      `json:"path"`
	Size int64     `json:"size"`

	Texture       *TextureData       `json:"texture,omitempty"`
	Material      *MaterialData      `json:"material,omitempty"`
	MeshBundle    *MeshBundleData    `json:"mesh_bundle,omitempty"`
	AnimationClip *AnimationClipData `json:"animation_clip,omitempty"`
	AudioClip     *AudioClipData     `json:"audio_clip,omitempty"`
	Prefab        *PrefabData        `json:"prefab,omitempty"`
}

// Valid reports whether the variant pointers agree with Kind.
func (r AssetRecord) Valid() bool {
	set := map[AssetKind]bool{
		KindTexture2D:     r.Texture != nil,
		KindMaterial:      r.Material != nil,
		KindMeshBundle:    r.MeshBundle != nil,
		KindAnimationClip: r.AnimationClip != nil,
		KindAudioClip:     r.AudioClip != nil,
		KindPrefab:        r.Prefab != nil,
	}

	for kind, present := range set {
		if present != (kind == r.Kind) {
			return false
		}
	}

	return r.Size >= 0
}

// TextureFormat is the pixel format a texture is imported with.
type TextureFormat string

// Texture formats reported by the resolver.
const (
	FormatUnknown      TextureFormat = "Unknown"
	FormatAlpha8       TextureFormat = "Alpha8"
	FormatARGB4444     TextureFormat = "ARGB4444"
	FormatRGB24        TextureFormat = "RGB24"
	FormatRGBA32       TextureFormat = "RGBA32"
	FormatARGB32       TextureFormat = "ARGB32"
	FormatRGB565       TextureFormat = "RGB565"
	FormatR16          TextureFormat = "R16"
	FormatDXT1         TextureFormat = "DXT1"
	FormatDXT5         TextureFormat = "DXT5"
	FormatRGBA4444     TextureFormat = "RGBA4444"
	FormatBGRA32       TextureFormat = "BGRA32"
	FormatRHalf        TextureFormat = "RHalf"
	FormatRGBAHalf     TextureFormat = "RGBAHalf"
	FormatRFloat       TextureFormat = "RFloat"
	FormatRGBAFloat    TextureFormat = "RGBAFloat"
	FormatBC6H         TextureFormat = "BC6H"
	FormatBC7          TextureFormat = "BC7"
	FormatBC4          TextureFormat = "BC4"
	FormatBC5          TextureFormat = "BC5"
	FormatDXT1Crunched TextureFormat = "DXT1Crunched"
	FormatDXT5Crunched TextureFormat = "DXT5Crunched"
	FormatETCRGB4      TextureFormat = "ETC_RGB4"
	FormatETC2RGB      TextureFormat = "ETC2_RGB"
	FormatETC2RGBA8    TextureFormat = "ETC2_RGBA8"
	FormatASTC4x4      TextureFormat = "ASTC_4x4"
	FormatASTC6x6      TextureFormat = "ASTC_6x6"
	FormatASTC8x8      TextureFormat = "ASTC_8x8"
)

// TextureDimension is the shape of a texture.
type TextureDimension string

// Texture dimensions.
const (
	DimensionTex2D      TextureDimension = "Tex2D"
	DimensionTex3D      TextureDimension = "Tex3D"
	DimensionCube       TextureDimension = "Cube"
	DimensionTex2DArray TextureDimension = "Tex2DArray"
)

// TextureData holds the structural metadata of a texture.
type TextureData struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Format    TextureFormat    `json:"format"`
	Dimension TextureDimension `json:"dimension"`
}

// MaterialData holds the shader and the unique textures a material references.
type MaterialData struct {
	ShaderPath   Path   `json:"shader_path"`
	TexturePaths []Path `json:"texture_paths"`
}

// MeshInfo describes one mesh inside a mesh bundle.
type MeshInfo struct {
	Name          string `json:"name"`
	SubMeshCount  int    `json:"submesh_count"`
	VertexCount   int    `json:"vertex_count"`
	TriangleCount int    `json:"triangle_count"`
}

// AnimationInfo describes one animation inside a mesh bundle.
type AnimationInfo struct {
	Name       string  `json:"name"`
	FrameCount int     `json:"frame_count"`
	Duration   float64 `json:"duration_seconds"`
}

// MeshBundleData holds the meshes and animations of a compound container.
type MeshBundleData struct {
	MeshCount      int             `json:"mesh_count"`
	Meshes         []MeshInfo      `json:"meshes"`
	AnimationCount int             `json:"animation_count"`
	Animations     []AnimationInfo `json:"animations"`
}

// AnimationClipData holds the length of a standalone clip.
type AnimationClipData struct {
	FrameCount int     `json:"frame_count"`
	Duration   float64 `json:"duration_seconds"`
}

// AudioCompressionFormat is the codec an audio clip is imported with.
type AudioCompressionFormat string

// Audio compression formats.
const (
	AudioPCM     AudioCompressionFormat = "PCM"
	AudioVorbis  AudioCompressionFormat = "Vorbis"
	AudioADPCM   AudioCompressionFormat = "ADPCM"
	AudioMP3     AudioCompressionFormat = "MP3"
	AudioVAG     AudioCompressionFormat = "VAG"
	AudioHEVAG   AudioCompressionFormat = "HEVAG"
	AudioXMA     AudioCompressionFormat = "XMA"
	AudioAAC     AudioCompressionFormat = "AAC"
	AudioGCADPCM AudioCompressionFormat = "GCADPCM"
	AudioATRAC9  AudioCompressionFormat = "ATRAC9"
)

// AudioClipData holds the decoded header fields and import settings of a clip.
type AudioClipData struct {
	Duration           float64                `json:"duration_seconds"`
	Channels           int                    `json:"channels"`
	SampleRate         int                    `json:"sample_rate"`
	SampleCount        int                    `json:"sample_count"`
	CompressionFormat  AudioCompressionFormat `json:"compression_format"`
	CompressionQuality float64                `json:"compression_quality"`
}

// PrefabData holds the unique meshes and materials used by a prefab's renderers.
type PrefabData struct {
	MeshPaths     []Path `json:"mesh_paths"`
	MaterialPaths []Path `json:"material_paths"`
}

// PathList accumulates paths in insertion order, ignoring repeats.
type PathList struct {
	seen  map[Path]struct{}
	paths []Path
}

// Add appends p unless it was added before. Empty paths are ignored.
func (l *PathList) Add(p Path) {
	if p == "" {
		return
	}

	if l.seen == nil {
		l.seen = make(map[Path]struct{})
	}

	if _, ok := l.seen[p]; ok {
		return
	}

	l.seen[p] = struct{}{}
	l.paths = append(l.paths, p)
}

// Paths returns the collected paths. The result is never nil.
func (l *PathList) Paths() []Path {
	out := make([]Path, len(l.paths))
	copy(out, l.paths)

	return out
}
