package assetdb

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Object class ids used in serialized assets.
const (
	classGameObject             = 1
	classTransform              = 4
	classMeshRenderer           = 23
	classMeshFilter             = 33
	classMesh                   = 43
	classAnimationClip          = 74
	classSkinnedMeshRenderer    = 137
	classParticleSystemRenderer = 199
	classRectTransform          = 224
	classPrefabInstance         = 1001
)

var (
	documentHeader = regexp.MustCompile(`^--- !u!(\d+) &(-?\d+)( stripped)?`)
	guidReference  = regexp.MustCompile(`guid: ([0-9a-fA-F]{32})`)
)

// document is one object of a text-serialized asset file.
type document struct {
	ClassID  int
	FileID   int64
	Stripped bool
	Type     string
	Body     *yaml.Node
}

// reference is a {fileID, guid} pointer. An empty GUID points into the same file.
type reference struct {
	FileID int64
	GUID   string
}

func (r reference) isNull() bool {
	return r.FileID == 0 && r.GUID == ""
}

// isTextAsset reports whether data is a text-serialized asset.
func isTextAsset(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%YAML"))
}

// parseDocuments splits a text-serialized asset into its objects. The custom
// tags of the headers are dropped before each object is decoded.
func parseDocuments(data []byte) ([]document, error) {
	var (
		docs    []document
		current *document
		body    bytes.Buffer
	)

	flush := func() error {
		if current == nil {
			return nil
		}

		var root yaml.Node
		if err := yaml.Unmarshal(body.Bytes(), &root); err != nil {
			return fmt.Errorf("object &%d: %w", current.FileID, err)
		}

		top := unwrap(&root)
		if top != nil && top.Kind == yaml.MappingNode && len(top.Content) >= 2 {
			current.Type = top.Content[0].Value
			current.Body = top.Content[1]
		}

		docs = append(docs, *current)
		current = nil

		body.Reset()

		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "%") {
			continue
		}

		if match := documentHeader.FindStringSubmatch(line); match != nil {
			if err := flush(); err != nil {
				return nil, err
			}

			classID, _ := strconv.Atoi(match[1])
			fileID, _ := strconv.ParseInt(match[2], 10, 64)
			current = &document{ClassID: classID, FileID: fileID, Stripped: match[3] != ""}

			continue
		}

		if current != nil {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return docs, nil
}

// parsePlain decodes a plain YAML document such as a sidecar file.
func parsePlain(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return unwrap(&root), nil
}

func unwrap(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}

		return n.Content[0]
	}

	return n
}

// child returns the value stored under key in a mapping node, or nil.
func child(n *yaml.Node, key string) *yaml.Node {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}

	return nil
}

// lookup walks nested mapping keys.
func lookup(n *yaml.Node, keys ...string) *yaml.Node {
	for _, key := range keys {
		n = child(n, key)
		if n == nil {
			return nil
		}
	}

	return n
}

func items(n *yaml.Node) []*yaml.Node {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}

	return n.Content
}

func str(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}

	return n.Value
}

func integer(n *yaml.Node) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(str(n)), 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func float(n *yaml.Node) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(str(n)), 64)
	if err != nil {
		return 0
	}

	return v
}

func refOf(n *yaml.Node) reference {
	return reference{
		FileID: integer(child(n, "fileID")),
		GUID:   strings.ToLower(str(child(n, "guid"))),
	}
}

// guidsIn returns every guid referenced in a text asset, in order of appearance.
func guidsIn(data []byte) []string {
	matches := guidReference.FindAllSubmatch(data, -1)

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, strings.ToLower(string(match[1])))
	}

	return out
}
