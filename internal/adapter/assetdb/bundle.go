package assetdb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	glbMagic          = 0x46546C67
	glbJSONChunkType  = 0x4E4F534A
	glbHeaderLength   = 12
	glbChunkHeadSize  = 8
	glbMinValidLength = glbHeaderLength + glbChunkHeadSize

	gltfTriangles     = 4
	gltfTriangleStrip = 5
	gltfTriangleFan   = 6

	// defaultClipFrameRate is used for clips whose container stores no rate.
	defaultClipFrameRate = 30
)

type gltfDocument struct {
	Meshes []struct {
		Name       string `json:"name"`
		Primitives []struct {
			Attributes map[string]int `json:"attributes"`
			Indices    *int           `json:"indices"`
			Mode       *int           `json:"mode"`
		} `json:"primitives"`
	} `json:"meshes"`
	Accessors []struct {
		Count int       `json:"count"`
		Max   []float64 `json:"max"`
	} `json:"accessors"`
	Animations []struct {
		Name     string `json:"name"`
		Samplers []struct {
			Input int `json:"input"`
		} `json:"samplers"`
	} `json:"animations"`
}

// LoadSubAssets returns the meshes and animation clips stored in a model file.
func (db *Database) LoadSubAssets(path m.Path) ([]m.SubAsset, error) {
	p := path.Normalize()

	// #nosec G304 - project asset path
	data, err := os.ReadFile(db.abs(p))
	if err != nil {
		return nil, err
	}

	switch p.Ext() {
	case ".gltf":
		return gltfSubAssets(data)
	case ".glb":
		jsonChunk, err := parseGLBChunks(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}

		return gltfSubAssets(jsonChunk)
	case ".obj":
		return objSubAssets(data, strings.TrimSuffix(p.Base(), p.Ext()))
	}

	meta, err := db.meta(p)
	if err != nil {
		return nil, err
	}

	return importedSubAssets(child(meta, "ModelImporter")), nil
}

// parseGLBChunks returns the JSON chunk of a binary glTF container.
func parseGLBChunks(data []byte) ([]byte, error) {
	if len(data) < glbMinValidLength {
		return nil, errors.New("glb header is truncated")
	}

	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return nil, errors.New("bad glb magic")
	}

	if binary.LittleEndian.Uint32(data[4:8]) != 2 {
		return nil, errors.New("unsupported glb version")
	}

	totalLength := int(binary.LittleEndian.Uint32(data[8:12]))
	if totalLength <= 0 || totalLength > len(data) {
		return nil, errors.New("bad glb length")
	}

	offset := glbHeaderLength
	for offset+glbChunkHeadSize <= totalLength {
		chunkLength := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		chunkStart := offset + glbChunkHeadSize

		chunkEnd := chunkStart + chunkLength
		if chunkEnd > totalLength {
			return nil, errors.New("bad glb chunk length")
		}

		if chunkType == glbJSONChunkType {
			return data[chunkStart:chunkEnd], nil
		}

		offset = chunkEnd
	}

	return nil, errors.New("glb has no json chunk")
}

func gltfSubAssets(data []byte) ([]m.SubAsset, error) {
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse gltf: %w", err)
	}

	accessorCount := func(i int) int {
		if i < 0 || i >= len(doc.Accessors) {
			return 0
		}

		return doc.Accessors[i].Count
	}

	var out []m.SubAsset

	for i, mesh := range doc.Meshes {
		info := &m.Mesh{Name: mesh.Name, SubMeshCount: len(mesh.Primitives)}
		if info.Name == "" {
			info.Name = "Mesh" + strconv.Itoa(i)
		}

		for _, prim := range mesh.Primitives {
			vertices := 0
			if pos, ok := prim.Attributes["POSITION"]; ok {
				vertices = accessorCount(pos)
			}

			info.VertexCount += vertices

			elements := vertices
			if prim.Indices != nil {
				elements = accessorCount(*prim.Indices)
			}

			mode := gltfTriangles
			if prim.Mode != nil {
				mode = *prim.Mode
			}

			switch mode {
			case gltfTriangles:
				info.TriangleCount += elements / 3
			case gltfTriangleStrip, gltfTriangleFan:
				if elements > 2 {
					info.TriangleCount += elements - 2
				}
			}
		}

		out = append(out, m.SubAsset{Type: m.TypeMesh, Object: info})
	}

	for i, anim := range doc.Animations {
		clip := &m.AnimationClip{Name: anim.Name, FrameRate: defaultClipFrameRate}
		if clip.Name == "" {
			clip.Name = "Animation" + strconv.Itoa(i)
		}

		for _, sampler := range anim.Samplers {
			if sampler.Input < 0 || sampler.Input >= len(doc.Accessors) {
				continue
			}

			if maxTimes := doc.Accessors[sampler.Input].Max; len(maxTimes) > 0 && maxTimes[0] > clip.Length {
				clip.Length = maxTimes[0]
			}
		}

		out = append(out, m.SubAsset{Type: m.TypeAnimationClip, Object: clip})
	}

	return out, nil
}

// objSubAssets splits a Wavefront file into one mesh per object. Every
// distinct material within an object becomes a sub-mesh.
func objSubAssets(data []byte, fallbackName string) ([]m.SubAsset, error) {
	type objMesh struct {
		mesh      *m.Mesh
		materials map[string]struct{}
	}

	var (
		meshes  []*objMesh
		current *objMesh
		seenO   bool
	)

	start := func(name string) {
		current = &objMesh{mesh: &m.Mesh{Name: name}, materials: map[string]struct{}{}}
		meshes = append(meshes, current)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			seenO = true

			start(strings.Join(fields[1:], " "))
		case "g":
			if !seenO && (current == nil || current.mesh.VertexCount > 0 || current.mesh.TriangleCount > 0) {
				start(strings.Join(fields[1:], " "))
			}
		case "v":
			if current == nil {
				start(fallbackName)
			}

			current.mesh.VertexCount++
		case "f":
			if current == nil {
				start(fallbackName)
			}

			if n := len(fields) - 1; n >= 3 {
				current.mesh.TriangleCount += n - 2
			}
		case "usemtl":
			if current == nil {
				start(fallbackName)
			}

			current.materials[strings.Join(fields[1:], " ")] = struct{}{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse obj: %w", err)
	}

	out := make([]m.SubAsset, 0, len(meshes))

	for _, om := range meshes {
		if om.mesh.VertexCount == 0 && om.mesh.TriangleCount == 0 {
			continue
		}

		om.mesh.SubMeshCount = max(1, len(om.materials))
		if om.mesh.Name == "" {
			om.mesh.Name = fallbackName
		}

		out = append(out, m.SubAsset{Type: m.TypeMesh, Object: om.mesh})
	}

	return out, nil
}

// importedSubAssets lists the objects an importer recorded for a binary
// model file. Geometry counts are not stored there and stay zero.
func importedSubAssets(importer *yaml.Node) []m.SubAsset {
	var (
		out   []m.SubAsset
		clips []m.SubAsset
	)

	addNamed := func(classID int64, name string) {
		switch classID {
		case classMesh:
			out = append(out, m.SubAsset{Type: m.TypeMesh, Object: &m.Mesh{Name: name}})
		case classAnimationClip:
			clips = append(clips, m.SubAsset{
				Type:   m.TypeAnimationClip,
				Object: &m.AnimationClip{Name: name, FrameRate: defaultClipFrameRate},
			})
		}
	}

	for _, entry := range items(child(importer, "internalIDToNameTable")) {
		first := child(entry, "first")
		if first == nil || len(first.Content) < 2 {
			continue
		}

		classID, err := strconv.ParseInt(first.Content[0].Value, 10, 64)
		if err != nil {
			continue
		}

		addNamed(classID, str(child(entry, "second")))
	}

	if legacy := child(importer, "fileIDToRecycleName"); len(out) == 0 && len(clips) == 0 && legacy != nil {
		for i := 0; i+1 < len(legacy.Content); i += 2 {
			fileID, err := strconv.ParseInt(legacy.Content[i].Value, 10, 64)
			if err != nil {
				continue
			}

			addNamed(fileID/100000, legacy.Content[i+1].Value)
		}
	}

	// explicit clip definitions replace the takes found in the file
	if defs := items(lookup(importer, "animations", "clipAnimations")); len(defs) > 0 {
		clips = clips[:0]

		for _, def := range defs {
			frames := float(child(def, "lastFrame")) - float(child(def, "firstFrame"))
			if frames < 0 {
				frames = 0
			}

			clips = append(clips, m.SubAsset{
				Type: m.TypeAnimationClip,
				Object: &m.AnimationClip{
					Name:      str(child(def, "name")),
					FrameRate: defaultClipFrameRate,
					Length:    frames / defaultClipFrameRate,
				},
			})
		}
	}

	return append(out, clips...)
}
