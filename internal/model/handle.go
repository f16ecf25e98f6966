package model

import (
	"image"
)

// AssetType is the type a resolver assigns to the main object of a file.
type AssetType string

// Asset types reported by resolvers.
const (
	TypeTexture2D     AssetType = "Texture2D"
	TypeMaterial      AssetType = "Material"
	TypeModel         AssetType = "Model"
	TypeMesh          AssetType = "Mesh"
	TypeAnimationClip AssetType = "AnimationClip"
	TypeAudioClip     AssetType = "AudioClip"
	TypeGameObject    AssetType = "GameObject"
	TypeScene         AssetType = "SceneAsset"
	TypeShader        AssetType = "Shader"
	TypeDefault       AssetType = "DefaultAsset"
)

// Handle is a loaded asset. Object holds one of the typed payloads below and
// stays valid until the handle is unloaded.
type Handle struct {
	Path   Path
	Type   AssetType
	Object any
}

// Texture is the payload of a texture handle.
type Texture struct {
	Config    image.Config
	Format    TextureFormat
	Dimension TextureDimension
}

// Material is the payload of a material handle. Textures are in property
// order and may repeat.
type Material struct {
	Shader   AssetRef
	Textures []AssetRef
}

// Mesh is a mesh sub-asset of a compound container.
type Mesh struct {
	Name          string
	SubMeshCount  int
	VertexCount   int
	TriangleCount int
}

// AnimationClip is the payload of an animation handle, standalone or nested.
type AnimationClip struct {
	Name      string
	FrameRate float64
	Length    float64
}

// AudioClip is the payload of an audio handle.
type AudioClip struct {
	Channels    int
	Frequency   int
	SampleCount int
	Length      float64
}

// AudioImportSettings are the importer settings of an audio clip for one
// build target.
type AudioImportSettings struct {
	CompressionFormat AudioCompressionFormat
	Quality           float64
}

// RendererKind classifies a renderer component.
type RendererKind string

// Renderer kinds found in object graphs.
const (
	RendererMesh     RendererKind = "MeshRenderer"
	RendererSkinned  RendererKind = "SkinnedMeshRenderer"
	RendererParticle RendererKind = "ParticleSystemRenderer"
	RendererOther    RendererKind = "Renderer"
)

// Renderer is a renderable component of a game object. For mesh renderers
// Mesh comes from the sibling mesh filter.
type Renderer struct {
	Kind      RendererKind
	Mesh      *AssetRef
	Materials []AssetRef
}

// GameObject is a node of an instantiated object graph.
type GameObject struct {
	Name      string
	Renderers []Renderer
	Children  []*GameObject
}

// ComponentsInChildren returns the renderers of g and all its descendants,
// depth first, that match kind. An empty kind matches every renderer.
func (g *GameObject) ComponentsInChildren(kind RendererKind) []Renderer {
	if g == nil {
		return nil
	}

	var out []Renderer

	for _, r := range g.Renderers {
		if kind == "" || r.Kind == kind {
			out = append(out, r)
		}
	}

	for _, child := range g.Children {
		out = append(out, child.ComponentsInChildren(kind)...)
	}

	return out
}

// AssetRef points at an object inside an asset file.
type AssetRef struct {
	Path   Path
	FileID int64
}

// SubAsset is one object of a compound container.
type SubAsset struct {
	Type   AssetType
	Object any
}

// GraphicsSettings lists the assets referenced by the project's graphics
// settings.
type GraphicsSettings struct {
	RenderPipeline Path
	CustomShaders  []Path
}
