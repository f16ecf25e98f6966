package assetdb

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const gltfFixture = `{
  "asset": {"version": "2.0"},
  "meshes": [
    {"name": "Hull", "primitives": [
      {"attributes": {"POSITION": 0}, "indices": 1},
      {"attributes": {"POSITION": 2}, "mode": 5}
    ]},
    {"primitives": [{"attributes": {"POSITION": 2}}]}
  ],
  "accessors": [
    {"count": 24},
    {"count": 36},
    {"count": 6},
    {"count": 3, "max": [1.5]},
    {"count": 3, "max": [2.25]}
  ],
  "animations": [
    {"name": "Spin", "samplers": [{"input": 3}, {"input": 4}]}
  ]
}`

func glbBytes(json string) []byte {
	// chunks are padded to four bytes
	for len(json)%4 != 0 {
		json += " "
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(glbMagic))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(glbHeaderLength+glbChunkHeadSize+len(json)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(json)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(glbJSONChunkType))
	buf.WriteString(json)

	return buf.Bytes()
}

func meshes(t *testing.T, subs []m.SubAsset) []*m.Mesh {
	t.Helper()

	var out []*m.Mesh
	for _, sub := range subs {
		if sub.Type == m.TypeMesh {
			out = append(out, sub.Object.(*m.Mesh))
		}
	}

	return out
}

func clips(t *testing.T, subs []m.SubAsset) []*m.AnimationClip {
	t.Helper()

	var out []*m.AnimationClip
	for _, sub := range subs {
		if sub.Type == m.TypeAnimationClip {
			out = append(out, sub.Object.(*m.AnimationClip))
		}
	}

	return out
}

func TestLoadSubAssets_GLTF(t *testing.T) {
	for _, name := range []string{"Assets/Ship.gltf", "Assets/Ship.glb"} {
		t.Run(name, func(t *testing.T) {
			p := newProject(t)

			data := []byte(gltfFixture)
			if m.Path(name).Ext() == ".glb" {
				data = glbBytes(gltfFixture)
			}

			p.asset(name, guidMesh, data, "")

			subs, err := p.open().LoadSubAssets(m.Path(name))
			require.NoError(t, err)

			ms := meshes(t, subs)
			require.Len(t, ms, 2)
			assert.Equal(t, &m.Mesh{Name: "Hull", SubMeshCount: 2, VertexCount: 30, TriangleCount: 16}, ms[0])
			assert.Equal(t, &m.Mesh{Name: "Mesh1", SubMeshCount: 1, VertexCount: 6, TriangleCount: 2}, ms[1])

			cs := clips(t, subs)
			require.Len(t, cs, 1)
			assert.Equal(t, "Spin", cs[0].Name)
			assert.InDelta(t, 2.25, cs[0].Length, 1e-9)
			assert.InDelta(t, float64(defaultClipFrameRate), cs[0].FrameRate, 1e-9)
		})
	}
}

func TestParseGLBChunks_Rejects(t *testing.T) {
	valid := glbBytes(`{}`)

	badMagic := append([]byte(nil), valid...)
	badMagic[0] = 'x'

	badVersion := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badVersion[4:8], 1)

	truncated := valid[:len(valid)-2]

	for name, data := range map[string][]byte{
		"short":     valid[:10],
		"magic":     badMagic,
		"version":   badVersion,
		"truncated": truncated,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseGLBChunks(data)
			assert.Error(t, err)
		})
	}
}

func TestLoadSubAssets_OBJ(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Props.obj", guidMesh, []byte(`# two objects
mtllib props.mtl
o Barrel
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
usemtl wood
f 1 2 3 4
usemtl metal
f 1 2 3
o Plank
v 0 0 1
v 1 0 1
v 1 1 1
f 5 6 7
`), "")

	subs, err := p.open().LoadSubAssets("Assets/Props.obj")
	require.NoError(t, err)

	assert.Equal(t, []*m.Mesh{
		{Name: "Barrel", SubMeshCount: 2, VertexCount: 4, TriangleCount: 3},
		{Name: "Plank", SubMeshCount: 1, VertexCount: 3, TriangleCount: 1},
	}, meshes(t, subs))
	assert.Empty(t, clips(t, subs))
}

func TestLoadSubAssets_OBJWithoutObjects(t *testing.T) {
	p := newProject(t)
	p.asset("Assets/Tri.obj", guidMesh, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "")

	subs, err := p.open().LoadSubAssets("Assets/Tri.obj")
	require.NoError(t, err)

	assert.Equal(t, []*m.Mesh{{Name: "Tri", SubMeshCount: 1, VertexCount: 3, TriangleCount: 1}}, meshes(t, subs))
}

func TestLoadSubAssets_ImporterTable(t *testing.T) {
	tests := []struct {
		name      string
		importer  string
		wantMesh  []string
		wantClips map[string]float64
	}{
		{
			name: "internal id table",
			importer: `ModelImporter:
  internalIDToNameTable:
  - first:
      43: -2530358137346785040
    second: Body
  - first:
      74: 1827226128182048838
    second: Take 001
  - first:
      1: 919132149155446097
    second: Root
`,
			wantMesh:  []string{"Body"},
			wantClips: map[string]float64{"Take 001": 0},
		},
		{
			name: "legacy recycle names",
			importer: `ModelImporter:
  fileIDToRecycleName:
    100000: Root
    4300000: Body
    4300002: Wheel
    7400000: Drive
`,
			wantMesh:  []string{"Body", "Wheel"},
			wantClips: map[string]float64{"Drive": 0},
		},
		{
			name: "clip definitions replace takes",
			importer: `ModelImporter:
  fileIDToRecycleName:
    4300000: Body
    7400000: Take 001
  animations:
    clipAnimations:
    - name: Idle
      firstFrame: 0
      lastFrame: 60
    - name: Run
      firstFrame: 60
      lastFrame: 75
`,
			wantMesh:  []string{"Body"},
			wantClips: map[string]float64{"Idle": 2, "Run": 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t)
			p.asset("Assets/Car.fbx", guidMesh, []byte("Kaydara FBX Binary"), tt.importer)

			subs, err := p.open().LoadSubAssets("Assets/Car.fbx")
			require.NoError(t, err)

			var names []string
			for _, mesh := range meshes(t, subs) {
				names = append(names, mesh.Name)
			}

			assert.Equal(t, tt.wantMesh, names)

			got := map[string]float64{}
			for _, clip := range clips(t, subs) {
				got[clip.Name] = clip.Length
			}

			assert.Equal(t, tt.wantClips, got)
		})
	}
}

func TestLoadSubAssets_MissingFile(t *testing.T) {
	_, err := newProject(t).open().LoadSubAssets("Assets/None.fbx")
	assert.Error(t, err)
}
