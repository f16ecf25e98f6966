package assetdb

import (
	"fmt"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

func (db *Database) loadMaterial(p m.Path) (*m.Material, error) {
	docs, err := db.documents(p)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Type != "Material" {
			continue
		}

		mat := &m.Material{}

		if shader, ok := db.assetRef(p, refOf(child(doc.Body, "m_Shader"))); ok {
			mat.Shader = shader
		}

		for _, env := range items(lookup(doc.Body, "m_SavedProperties", "m_TexEnvs")) {
			// each entry is a single-key mapping: {_MainTex: {m_Texture: ...}}
			if len(env.Content) < 2 {
				continue
			}

			if tex, ok := db.assetRef(p, refOf(child(env.Content[1], "m_Texture"))); ok {
				mat.Textures = append(mat.Textures, tex)
			}
		}

		return mat, nil
	}

	return nil, fmt.Errorf("no material object in %s", p)
}

func (db *Database) loadClip(p m.Path) (*m.AnimationClip, error) {
	docs, err := db.documents(p)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.ClassID != classAnimationClip {
			continue
		}

		settings := child(doc.Body, "m_AnimationClipSettings")
		length := float(child(settings, "m_StopTime")) - float(child(settings, "m_StartTime"))

		if length < 0 {
			length = 0
		}

		return &m.AnimationClip{
			Name:      str(child(doc.Body, "m_Name")),
			FrameRate: float(child(doc.Body, "m_SampleRate")),
			Length:    length,
		}, nil
	}

	return nil, fmt.Errorf("no animation clip in %s", p)
}
