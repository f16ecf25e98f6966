package assetdb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	guidTexA   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa1"
	guidTexB   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa2"
	guidMat    = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb1"
	guidMesh   = "ccccccccccccccccccccccccccccccc1"
	guidPrefab = "ddddddddddddddddddddddddddddddd1"
	guidOuter  = "ddddddddddddddddddddddddddddddd2"
	guidScene  = "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeee1"
	guidPipe   = "fffffffffffffffffffffffffffffff1"
	guidShader = "fffffffffffffffffffffffffffffff2"
	guidAudio  = "99999999999999999999999999999991"
)

type stubInspector struct{}

func (stubInspector) DecodeConfig(path m.Path) (image.Config, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	return png.DecodeConfig(f)
}

// project is a scratch asset project.
type project struct {
	t    *testing.T
	root string
}

func newProject(t *testing.T) *project {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ProjectSettings"), 0o755))

	return &project{t: t, root: root}
}

func (p *project) write(rel string, data []byte) {
	p.t.Helper()

	full := filepath.Join(p.root, filepath.FromSlash(rel))
	require.NoError(p.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(p.t, os.WriteFile(full, data, 0o644))
}

// asset writes a file and its sidecar carrying guid plus extra importer text.
func (p *project) asset(rel, guid string, data []byte, importer string) {
	p.t.Helper()

	p.write(rel, data)
	p.write(rel+".meta", []byte(fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n%s", guid, importer)))
}

func (p *project) open() *Database {
	p.t.Helper()

	db, err := Open(p.root, stubInspector{})
	require.NoError(p.t, err)

	return db
}

func pngBytes(t *testing.T, w, h int, alpha bool) []byte {
	t.Helper()

	var img image.Image
	if alpha {
		rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
		rgba.Set(0, 0, color.NRGBA{R: 255, A: 10})
		img = rgba
	} else {
		gray := image.NewGray(image.Rect(0, 0, w, h))
		img = gray
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func materialYAML(textureGUIDs ...string) []byte {
	var envs bytes.Buffer
	for i, guid := range textureGUIDs {
		fmt.Fprintf(&envs, "    - _Tex%d:\n        m_Texture: {fileID: 2800000, guid: %s, type: 3}\n        m_Scale: {x: 1, y: 1}\n", i, guid)
	}

	envs.WriteString("    - _Empty:\n        m_Texture: {fileID: 0}\n")

	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!21 &2100000
Material:
  serializedVersion: 6
  m_Name: Mat
  m_Shader: {fileID: 46, guid: 0000000000000000f000000000000000, type: 0}
  m_SavedProperties:
    serializedVersion: 3
    m_TexEnvs:
` + envs.String() + `    m_Floats:
    - _Glossiness: 0.5
`)
}

func prefabYAML(meshGUID, materialGUID string) []byte {
	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &100
GameObject:
  m_Name: Crate
  m_Component:
  - component: {fileID: 400}
  - component: {fileID: 3300}
  - component: {fileID: 2300}
--- !u!4 &400
Transform:
  m_GameObject: {fileID: 100}
  m_Children:
  - {fileID: 401}
  m_Father: {fileID: 0}
--- !u!33 &3300
MeshFilter:
  m_GameObject: {fileID: 100}
  m_Mesh: {fileID: 4300000, guid: ` + meshGUID + `, type: 3}
--- !u!23 &2300
MeshRenderer:
  m_GameObject: {fileID: 100}
  m_Materials:
  - {fileID: 2100000, guid: ` + materialGUID + `, type: 2}
--- !u!1 &101
GameObject:
  m_Name: Lid
--- !u!4 &401
Transform:
  m_GameObject: {fileID: 101}
  m_Father: {fileID: 400}
--- !u!23 &2301
MeshRenderer:
  m_GameObject: {fileID: 101}
  m_Materials:
  - {fileID: 2100000, guid: ` + materialGUID + `, type: 2}
  - {fileID: 0}
`)
}

func outerPrefabYAML(nestedGUID string) []byte {
	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &10
GameObject:
  m_Name: Shelf
--- !u!4 &40
Transform:
  m_GameObject: {fileID: 10}
  m_Father: {fileID: 0}
--- !u!1001 &500
PrefabInstance:
  m_Modification:
    m_TransformParent: {fileID: 40}
  m_SourcePrefab: {fileID: 100100000, guid: ` + nestedGUID + `, type: 3}
--- !u!4 &501 stripped
Transform:
  m_CorrespondingSourceObject: {fileID: 400, guid: ` + nestedGUID + `, type: 3}
  m_PrefabInstance: {fileID: 500}
`)
}

func sceneYAML(prefabGUID string) []byte {
	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!29 &1
OcclusionCullingSettings:
  m_ObjectHideFlags: 0
--- !u!1001 &700
PrefabInstance:
  m_Modification:
    m_TransformParent: {fileID: 0}
  m_SourcePrefab: {fileID: 100100000, guid: ` + prefabGUID + `, type: 3}
`)
}

func wavBytes(channels, sampleRate, bitsPerSample, frames int) []byte {
	blockAlign := channels * bitsPerSample / 8
	dataSize := frames * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}
