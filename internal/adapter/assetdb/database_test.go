package assetdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func TestOpen_IndexesSidecarGUIDs(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Textures/a.png", guidTexA, pngBytes(t, 4, 4, false), "")
	p.asset("Packages/com.example/b.png", guidTexB, pngBytes(t, 4, 4, false), "")
	p.write("Assets/orphan.txt", []byte("no sidecar"))

	db := p.open()

	path, ok := db.PathOf(guidTexA)
	require.True(t, ok)
	assert.Equal(t, m.Path("Assets/Textures/a.png"), path)

	path, ok = db.PathOf(guidTexB)
	require.True(t, ok)
	assert.Equal(t, m.Path("Packages/com.example/b.png"), path)

	path, ok = db.PathOf("0000000000000000F000000000000000")
	require.True(t, ok)
	assert.Equal(t, BuiltinExtraResources, path)

	_, ok = db.PathOf("0123456789abcdef0123456789abcdef")
	assert.False(t, ok)
}

func TestOpen_RejectsMissingRoot(t *testing.T) {
	_, err := Open(t.TempDir()+"/missing", stubInspector{})
	require.Error(t, err)
}

func TestResolve_Texture(t *testing.T) {
	tests := []struct {
		name       string
		alpha      bool
		importer   string
		wantFormat m.TextureFormat
		wantDim    m.TextureDimension
	}{
		{
			name:       "compressed opaque defaults to DXT1",
			wantFormat: m.FormatDXT1,
			wantDim:    m.DimensionTex2D,
		},
		{
			name:       "compressed with alpha uses DXT5",
			alpha:      true,
			wantFormat: m.FormatDXT5,
			wantDim:    m.DimensionTex2D,
		},
		{
			name: "uncompressed opaque cube",
			importer: "TextureImporter:\n  textureShape: 2\n  platformSettings:\n" +
				"  - buildTarget: DefaultTexturePlatform\n    textureFormat: -1\n    textureCompression: 0\n",
			wantFormat: m.FormatRGB24,
			wantDim:    m.DimensionCube,
		},
		{
			name: "explicit platform format wins",
			importer: "TextureImporter:\n  platformSettings:\n" +
				"  - buildTarget: DefaultTexturePlatform\n    textureFormat: 25\n",
			wantFormat: m.FormatBC7,
			wantDim:    m.DimensionTex2D,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t)
			p.asset("Assets/tex.png", guidTexA, pngBytes(t, 800, 600, tt.alpha), tt.importer)

			h, err := p.open().Resolve("Assets/tex.png")
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, m.TypeTexture2D, h.Type)

			tex, ok := h.Object.(*m.Texture)
			require.True(t, ok)
			assert.Equal(t, 800, tex.Config.Width)
			assert.Equal(t, 600, tex.Config.Height)
			assert.Equal(t, tt.wantFormat, tex.Format)
			assert.Equal(t, tt.wantDim, tex.Dimension)
		})
	}
}

func TestResolve_Material(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/a.png", guidTexA, pngBytes(t, 2, 2, false), "")
	p.asset("Assets/b.png", guidTexB, pngBytes(t, 2, 2, false), "")
	p.asset("Assets/Mat.mat", guidMat, materialYAML(guidTexA, guidTexB, guidTexA), "")

	h, err := p.open().Resolve("Assets/Mat.mat")
	require.NoError(t, err)
	require.NotNil(t, h)

	mat, ok := h.Object.(*m.Material)
	require.True(t, ok)
	assert.Equal(t, BuiltinExtraResources, mat.Shader.Path)
	assert.Equal(t, int64(46), mat.Shader.FileID)
	require.Len(t, mat.Textures, 3)
	assert.Equal(t, m.Path("Assets/a.png"), mat.Textures[0].Path)
	assert.Equal(t, m.Path("Assets/b.png"), mat.Textures[1].Path)
}

func TestResolve_AnimationClip(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Walk.anim", guidMesh, []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!74 &7400000
AnimationClip:
  m_Name: Walk
  m_SampleRate: 60
  m_AnimationClipSettings:
    m_StartTime: 0.5
    m_StopTime: 2.5
`), "")

	h, err := p.open().Resolve("Assets/Walk.anim")
	require.NoError(t, err)
	require.NotNil(t, h)

	clip, ok := h.Object.(*m.AnimationClip)
	require.True(t, ok)
	assert.Equal(t, "Walk", clip.Name)
	assert.InDelta(t, 60.0, clip.FrameRate, 1e-9)
	assert.InDelta(t, 2.0, clip.Length, 1e-9)
}

func TestResolve_UnresolvedAndGenericFiles(t *testing.T) {
	p := newProject(t)
	p.write("Assets/loose.bin", []byte{1, 2, 3})
	p.asset("Assets/data.bytes", guidMesh, []byte{1}, "")
	p.asset("Assets/Main.unity", guidScene, sceneYAML(guidPrefab), "")

	db := p.open()

	h, err := db.Resolve("Assets/loose.bin")
	require.NoError(t, err)
	assert.Nil(t, h)

	h, err = db.Resolve("Assets/missing.png")
	require.NoError(t, err)
	assert.Nil(t, h)

	h, err = db.Resolve("Assets")
	require.NoError(t, err)
	assert.Nil(t, h)

	h, err = db.Resolve("Assets/data.bytes")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, m.TypeDefault, h.Type)

	h, err = db.Resolve(`Assets\\Main.unity`)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, m.TypeScene, h.Type)
	assert.Equal(t, m.Path("Assets/Main.unity"), h.Path)
}

func TestResolve_CachesUntilUnload(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/a.png", guidTexA, pngBytes(t, 2, 2, false), "")

	db := p.open()

	first, err := db.Resolve("Assets/a.png")
	require.NoError(t, err)

	second, err := db.Resolve("Assets/a.png")
	require.NoError(t, err)
	assert.Same(t, first, second)

	db.Unload(first)
	db.ReleaseUnused()

	third, err := db.Resolve("Assets/a.png")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestDependenciesOf_SceneChain(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Tex.png", guidTexA, pngBytes(t, 2, 2, false), "")
	p.asset("Assets/Mat.mat", guidMat, materialYAML(guidTexA), "")
	p.asset("Assets/Mesh.fbx", guidMesh, []byte("Kaydara FBX Binary"), "")
	p.asset("Assets/Crate.prefab", guidPrefab, prefabYAML(guidMesh, guidMat), "")
	p.asset("Assets/Main.unity", guidScene, sceneYAML(guidPrefab), "")
	p.asset("Assets/Unused.png", guidTexB, pngBytes(t, 2, 2, false), "")

	deps, err := p.open().DependenciesOf([]m.Path{"Assets/Main.unity"})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		"Assets/Crate.prefab",
		"Assets/Main.unity",
		"Assets/Mat.mat",
		"Assets/Mesh.fbx",
		"Assets/Tex.png",
	}, deps)
}

func TestDependenciesOf_BatchSharesVisitedAssets(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Tex.png", guidTexA, pngBytes(t, 2, 2, false), "")
	p.asset("Assets/Mat.mat", guidMat, materialYAML(guidTexA), "")
	p.asset("Assets/Other.mat", guidShader, materialYAML(guidTexA), "")

	deps, err := p.open().DependenciesOf([]m.Path{"Assets/Mat.mat", "Assets/Other.mat", "Assets/Mat.mat"})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"Assets/Mat.mat", "Assets/Other.mat", "Assets/Tex.png"}, deps)
}

func TestGraphicsSettings(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Pipeline.asset", guidPipe, []byte("%YAML 1.1\n--- !u!114 &11400000\nMonoBehaviour:\n  m_Name: Pipeline\n"), "")
	p.asset("Assets/Deferred.shader", guidShader, []byte("Shader \"Custom/Deferred\" {}"), "")
	p.write("ProjectSettings/GraphicsSettings.asset", []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!30 &1
GraphicsSettings:
  m_Deferred:
    m_Mode: 2
    m_Shader: {fileID: 4800000, guid: `+guidShader+`, type: 3}
  m_DeferredReflections:
    m_Mode: 1
    m_Shader: {fileID: 74, guid: 0000000000000000f000000000000000, type: 0}
  m_ScreenSpaceShadows:
    m_Mode: 2
    m_Shader: {fileID: 4800000, guid: 0123456789abcdef0123456789abcdef, type: 3}
  m_CustomRenderPipeline: {fileID: 11400000, guid: `+guidPipe+`, type: 2}
`))

	settings, err := p.open().GraphicsSettings()
	require.NoError(t, err)
	assert.Equal(t, m.Path("Assets/Pipeline.asset"), settings.RenderPipeline)
	assert.Equal(t, []m.Path{"Assets/Deferred.shader"}, settings.CustomShaders)
}

func TestGraphicsSettings_Missing(t *testing.T) {
	settings, err := newProject(t).open().GraphicsSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.RenderPipeline)
	assert.Empty(t, settings.CustomShaders)
}
