package domain_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	"reprowiz.dev/pkg/reprowiz/internal/adapter/assetdb"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	guidTexA   = "a0000000000000000000000000000001"
	guidTexB   = "a0000000000000000000000000000002"
	guidShader = "b0000000000000000000000000000001"
	guidMat    = "c0000000000000000000000000000001"
	guidMesh   = "d0000000000000000000000000000001"
	guidPrefab = "e0000000000000000000000000000001"
	guidScene  = "f0000000000000000000000000000001"
	guidOther  = "90000000000000000000000000000001"
)

// project is a scratch asset project on disk.
type project struct {
	t    *testing.T
	root string
}

func newProject(t *testing.T) *project {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Game")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ProjectSettings"), 0o755))

	return &project{t: t, root: root}
}

func (p *project) path() m.Path {
	return m.Path(p.root)
}

func (p *project) abs(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p *project) write(rel string, data []byte) {
	p.t.Helper()

	full := p.abs(rel)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(p.t, os.WriteFile(full, data, 0o644))
}

// asset writes a file and a sidecar carrying guid plus extra importer text.
func (p *project) asset(rel, guid string, data []byte, importer string) {
	p.t.Helper()

	p.write(rel, data)
	p.write(rel+".meta", []byte(fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n%s", guid, importer)))
}

func (p *project) resolver() adapter.AssetResolver {
	p.t.Helper()

	db, err := assetdb.Open(p.root, adapter.NewLocalImageCodec())
	require.NoError(p.t, err)

	return db
}

// tree returns every file below dir with its content, keyed by slash path.
func tree(t *testing.T, dir string) map[string]string {
	t.Helper()

	out := map[string]string{}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		out[filepath.ToSlash(rel)] = string(data)

		return nil
	})
	require.NoError(t, err)

	return out
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 100, A: 255})
		}
	}

	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func materialYAML(shaderGUID string, textureGUIDs ...string) []byte {
	var envs bytes.Buffer
	for i, guid := range textureGUIDs {
		fmt.Fprintf(&envs, "    - _Tex%d:\n        m_Texture: {fileID: 2800000, guid: %s, type: 3}\n", i, guid)
	}

	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!21 &2100000
Material:
  m_Name: Mat
  m_Shader: {fileID: 4800000, guid: ` + shaderGUID + `, type: 3}
  m_SavedProperties:
    m_TexEnvs:
` + envs.String())
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
`)
}

func sceneYAML(prefabGUID string) []byte {
	return []byte(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1001 &700
PrefabInstance:
  m_Modification:
    m_TransformParent: {fileID: 0}
  m_SourcePrefab: {fileID: 100100000, guid: ` + prefabGUID + `, type: 3}
`)
}

const meshOBJ = "o Crate\nv 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"

// chainProject holds Main.unity -> Crate.prefab -> Crate.mat -> two textures,
// plus the prefab's mesh and files nothing references.
func chainProject(t *testing.T) *project {
	t.Helper()

	p := newProject(t)
	p.asset("Assets/Scenes/Main.unity", guidScene, sceneYAML(guidPrefab), "")
	p.asset("Assets/Props/Crate.prefab", guidPrefab, prefabYAML(guidMesh, guidMat), "")
	p.asset("Assets/Props/Crate.mat", guidMat, materialYAML(guidShader, guidTexA, guidTexB, guidTexA), "")
	p.asset("Assets/Props/Crate.obj", guidMesh, []byte(meshOBJ), "")
	p.asset("Assets/Shaders/Crate.shader", guidShader, []byte("Shader \"Crate\" {}\n"), "")
	p.asset("Assets/Textures/crate.png", guidTexA, pngBytes(t, gradient(800, 600)), "")
	p.asset("Assets/Textures/crate_n.png", guidTexB, pngBytes(t, gradient(16, 16)), "")
	p.asset("Assets/Unused/notes.txt", guidOther, []byte("unused"), "")
	p.write("ProjectSettings/ProjectVersion.txt", []byte("m_EditorVersion: 2022.3.0f1\n"))
	p.write("ProjectSettings/TagManager.asset", []byte("%YAML 1.1\n"))

	return p
}
