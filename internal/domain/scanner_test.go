package domain_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	adaptermocks "reprowiz.dev/pkg/reprowiz/internal/adapter/mocks"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const walkClip = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!74 &7400000
AnimationClip:
  m_Name: Walk
  m_SampleRate: 30
  m_AnimationClipSettings:
    m_StartTime: 0
    m_StopTime: 1.5
`

func monoWAV(sampleRate, frames int) []byte {
	var buf bytes.Buffer

	dataSize := frames * 2

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

func TestScanner_Scan(t *testing.T) {
	p := chainProject(t)
	p.asset("Assets/Anim/Walk.anim", "60000000000000000000000000000001", []byte(walkClip), "")
	p.asset("Assets/Audio/step.wav", "60000000000000000000000000000002", monoWAV(8000, 4000), "")

	var fractions []float64

	report, err := domain.NewScanner(adapter.NewLocalSourceFSAdapter(), p.resolver()).Scan(
		context.Background(),
		domain.ScanOptions{Root: p.path(), BuildTarget: "standalone"},
		func(pr m.Progress) { fractions = append(fractions, pr.Fraction) },
	)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, p.path(), report.Root)
	assert.Equal(t, 10, report.Len())
	assert.InDelta(t, 1.0, fractions[len(fractions)-1], 1e-9)

	textures := report.Records(m.KindTexture2D)
	require.Len(t, textures, 2)
	assert.Equal(t, m.Path("Assets/Textures/crate.png"), textures[0].Path)
	assert.Equal(t, 800, textures[0].Texture.Width)
	assert.Equal(t, 600, textures[0].Texture.Height)
	assert.Equal(t, m.DimensionTex2D, textures[0].Texture.Dimension)

	materials := report.Records(m.KindMaterial)
	require.Len(t, materials, 1)
	assert.Equal(t, &m.MaterialData{
		ShaderPath:   "Assets/Shaders/Crate.shader",
		TexturePaths: []m.Path{"Assets/Textures/crate.png", "Assets/Textures/crate_n.png"},
	}, materials[0].Material)

	bundles := report.Records(m.KindMeshBundle)
	require.Len(t, bundles, 1)
	assert.Equal(t, &m.MeshBundleData{
		MeshCount:  1,
		Meshes:     []m.MeshInfo{{Name: "Crate", SubMeshCount: 1, VertexCount: 4, TriangleCount: 2}},
		Animations: []m.AnimationInfo{},
	}, bundles[0].MeshBundle)

	prefabs := report.Records(m.KindPrefab)
	require.Len(t, prefabs, 1)
	assert.Equal(t, &m.PrefabData{
		MeshPaths:     []m.Path{"Assets/Props/Crate.obj"},
		MaterialPaths: []m.Path{"Assets/Props/Crate.mat"},
	}, prefabs[0].Prefab)

	clips := report.Records(m.KindAnimationClip)
	require.Len(t, clips, 1)
	assert.Equal(t, &m.AnimationClipData{FrameCount: 45, Duration: 1.5}, clips[0].AnimationClip)

	audio := report.Records(m.KindAudioClip)
	require.Len(t, audio, 1)
	assert.Equal(t, 1, audio[0].AudioClip.Channels)
	assert.Equal(t, 8000, audio[0].AudioClip.SampleRate)
	assert.Equal(t, 4000, audio[0].AudioClip.SampleCount)
	assert.InDelta(t, 0.5, audio[0].AudioClip.Duration, 1e-9)
	assert.Equal(t, m.AudioVorbis, audio[0].AudioClip.CompressionFormat)

	assert.Equal(t, []m.AssetRecord{{Kind: m.KindScene, Path: "Assets/Scenes/Main.unity", Size: int64(len(sceneYAML(guidPrefab)))}},
		report.Records(m.KindScene))

	var files []m.Path
	for _, record := range report.Records(m.KindFile) {
		files = append(files, record.Path)
	}

	assert.Equal(t, []m.Path{"Assets/Shaders/Crate.shader", "Assets/Unused/notes.txt"}, files)

	for _, kind := range m.AssetKinds {
		for _, record := range report.Records(kind) {
			assert.True(t, record.Valid(), record.Path)
			assert.False(t, record.Path.IsMeta())
		}
	}
}

func TestScanner_ParticleRendererMeshIsNotAPrefabMesh(t *testing.T) {
	p := chainProject(t)
	p.asset("Assets/Props/Spark.obj", "60000000000000000000000000000003", []byte(meshOBJ), "")
	p.asset("Assets/Props/Sparks.prefab", "60000000000000000000000000000004", []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &100
GameObject:
  m_Name: Sparks
--- !u!4 &400
Transform:
  m_GameObject: {fileID: 100}
  m_Father: {fileID: 0}
--- !u!199 &19900
ParticleSystemRenderer:
  m_GameObject: {fileID: 100}
  m_Mesh: {fileID: 4300000, guid: 60000000000000000000000000000003, type: 3}
  m_Materials:
  - {fileID: 2100000, guid: `+guidMat+`, type: 2}
`), "")

	report, err := domain.NewScanner(adapter.NewLocalSourceFSAdapter(), p.resolver()).Scan(
		context.Background(), domain.ScanOptions{Root: p.path(), BuildTarget: "standalone"}, nil)
	require.NoError(t, err)

	var sparks *m.PrefabData
	for _, record := range report.Records(m.KindPrefab) {
		if record.Path == "Assets/Props/Sparks.prefab" {
			sparks = record.Prefab
		}
	}

	require.NotNil(t, sparks)
	assert.Empty(t, sparks.MeshPaths)
	assert.Equal(t, []m.Path{"Assets/Props/Crate.mat"}, sparks.MaterialPaths)
}

func TestScanner_WalkOrderAndReleaseCadence(t *testing.T) {
	p := newProject(t)
	p.write("Assets/b.txt", []byte("b"))
	p.write("Assets/a.txt", []byte("a"))
	p.write("Assets/a.txt.meta", []byte("guid: 1"))
	p.write("Assets/A/z.txt", []byte("z"))
	p.write("Assets/A/B/y.txt", []byte("y"))
	p.write("Assets/C/x.txt", []byte("x"))

	resolver := adaptermocks.NewMockAssetResolver(t)
	resolver.EXPECT().Resolve(m.Path("Assets/A/B/y.txt")).Return(nil, errors.New("broken import")).Once()
	resolver.EXPECT().Resolve(mock.Anything).Return(nil, nil).Times(4)
	resolver.EXPECT().ReleaseUnused().Return().Times(3)

	report, err := domain.NewScanner(adapter.NewLocalSourceFSAdapter(), resolver).Scan(
		context.Background(),
		domain.ScanOptions{Root: p.path(), ReleaseInterval: 2},
		nil,
	)
	require.NoError(t, err)

	var order []m.Path
	for _, record := range report.Records(m.KindFile) {
		order = append(order, record.Path)
	}

	assert.Equal(t, []m.Path{"Assets/a.txt", "Assets/b.txt", "Assets/A/z.txt", "Assets/A/B/y.txt", "Assets/C/x.txt"}, order)
	assert.Equal(t, 5, report.Len())
}

func TestScanner_Canceled(t *testing.T) {
	p := chainProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := domain.NewScanner(adapter.NewLocalSourceFSAdapter(), p.resolver()).Scan(ctx, domain.ScanOptions{Root: p.path()}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
