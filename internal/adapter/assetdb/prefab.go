package assetdb

import (
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// prefabGraph collects the objects of one prefab file before they are linked.
type prefabGraph struct {
	path m.Path

	objects map[int64]*m.GameObject
	order   []int64

	// transform file id -> owning game object file id
	owners map[int64]int64
	// game object file id -> parent transform file id
	fathers map[int64]int64

	meshFilters map[int64]reference
	renderers   []pendingRenderer
	instances   []document
}

type pendingRenderer struct {
	owner    int64
	renderer m.Renderer
}

// loadPrefab instantiates the object graph of a prefab file. Nested prefab
// instances are expanded in place; visiting guards against instance cycles.
func (db *Database) loadPrefab(p m.Path, visiting map[m.Path]bool) (*m.GameObject, error) {
	if visiting[p] {
		slog.Warn("Prefab instantiates itself", "path", p)
		return &m.GameObject{Name: strings.TrimSuffix(p.Base(), p.Ext())}, nil
	}

	visiting[p] = true
	defer delete(visiting, p)

	docs, err := db.documents(p)
	if err != nil {
		return nil, err
	}

	g := &prefabGraph{
		path:        p,
		objects:     make(map[int64]*m.GameObject),
		owners:      make(map[int64]int64),
		fathers:     make(map[int64]int64),
		meshFilters: make(map[int64]reference),
	}

	for _, doc := range docs {
		g.collect(db, doc)
	}

	for _, inst := range g.instances {
		db.attachInstance(g, inst, visiting)
	}

	for _, pending := range g.renderers {
		ownerID := pending.owner
		if target, ok := g.owners[-ownerID]; ok {
			// component added to an object of a nested instance
			ownerID = target
		}

		owner, ok := g.objects[ownerID]
		if !ok {
			continue
		}

		r := pending.renderer
		if r.Kind == m.RendererMesh {
			if ref, ok := db.assetRef(p, g.meshFilters[pending.owner]); ok {
				r.Mesh = &ref
			}
		}

		owner.Renderers = append(owner.Renderers, r)
	}

	return g.link(), nil
}

func (g *prefabGraph) collect(db *Database, doc document) {
	if doc.Stripped {
		// stripped objects stand in for objects of a nested instance
		instance := -refOf(child(doc.Body, "m_PrefabInstance")).FileID

		switch doc.ClassID {
		case classTransform, classRectTransform:
			g.owners[doc.FileID] = instance
		case classGameObject:
			g.owners[-doc.FileID] = instance
		}

		return
	}

	owner := refOf(child(doc.Body, "m_GameObject")).FileID

	switch doc.ClassID {
	case classGameObject:
		g.objects[doc.FileID] = &m.GameObject{Name: str(child(doc.Body, "m_Name"))}
		g.order = append(g.order, doc.FileID)
	case classTransform, classRectTransform:
		g.owners[doc.FileID] = owner
		g.fathers[owner] = refOf(child(doc.Body, "m_Father")).FileID
	case classMeshFilter:
		g.meshFilters[owner] = refOf(child(doc.Body, "m_Mesh"))
	case classMeshRenderer:
		g.addRenderer(db, owner, m.RendererMesh, doc.Body, nil)
	case classSkinnedMeshRenderer:
		g.addRenderer(db, owner, m.RendererSkinned, doc.Body, child(doc.Body, "m_Mesh"))
	case classParticleSystemRenderer:
		g.addRenderer(db, owner, m.RendererParticle, doc.Body, child(doc.Body, "m_Mesh"))
	case classPrefabInstance:
		g.instances = append(g.instances, doc)
	}
}

func (g *prefabGraph) addRenderer(db *Database, owner int64, kind m.RendererKind, body, mesh *yaml.Node) {
	r := m.Renderer{Kind: kind}

	if mesh != nil {
		if ref, ok := db.assetRef(g.path, refOf(mesh)); ok {
			r.Mesh = &ref
		}
	}

	for _, item := range items(child(body, "m_Materials")) {
		if ref, ok := db.assetRef(g.path, refOf(item)); ok {
			r.Materials = append(r.Materials, ref)
		}
	}

	g.renderers = append(g.renderers, pendingRenderer{owner: owner, renderer: r})
}

// attachInstance loads the source prefab of a nested instance and registers
// its root under a synthetic id, the negated instance file id.
func (db *Database) attachInstance(g *prefabGraph, inst document, visiting map[m.Path]bool) {
	id := -inst.FileID

	root := &m.GameObject{Name: "Prefab Instance"}

	source := refOf(child(inst.Body, "m_SourcePrefab"))
	if sourcePath, ok := db.PathOf(source.GUID); ok && source.GUID != "" {
		nested, err := db.loadPrefab(sourcePath, visiting)
		if err != nil {
			slog.Warn("Could not load nested prefab", "path", g.path, "source", sourcePath, "error", err)
		} else {
			root = nested
		}
	}

	g.objects[id] = root
	g.order = append(g.order, id)
	g.fathers[id] = refOf(lookup(inst.Body, "m_Modification", "m_TransformParent")).FileID
}

// link builds the hierarchy and returns its root. Several top-level objects
// are grouped under a root named after the file.
func (g *prefabGraph) link() *m.GameObject {
	var tops []*m.GameObject

	for _, id := range g.order {
		obj := g.objects[id]

		parentID, ok := g.owners[g.fathers[id]]
		parent := g.objects[parentID]

		if g.fathers[id] == 0 || !ok || parent == nil || parent == obj {
			tops = append(tops, obj)
			continue
		}

		parent.Children = append(parent.Children, obj)
	}

	if len(tops) == 1 {
		return tops[0]
	}

	return &m.GameObject{
		Name:     strings.TrimSuffix(g.path.Base(), g.path.Ext()),
		Children: tops,
	}
}
