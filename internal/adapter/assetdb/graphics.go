package assetdb

import (
	"errors"
	"io/fs"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const (
	graphicsSettingsPath = m.Path("ProjectSettings/GraphicsSettings.asset")

	shaderModeCustom = 2
)

// builtinShaderSettings are the overridable built-in shader slots.
var builtinShaderSettings = []string{
	"m_Deferred",
	"m_DeferredReflections",
	"m_ScreenSpaceShadows",
	"m_LegacyDeferred",
	"m_DepthNormals",
	"m_MotionVectors",
	"m_LightHalo",
	"m_LensFlare",
}

// GraphicsSettings reads the render pipeline asset and the custom built-in
// shader overrides that exist on disk. A project without graphics settings
// yields an empty result.
func (db *Database) GraphicsSettings() (m.GraphicsSettings, error) {
	var settings m.GraphicsSettings

	docs, err := db.documents(graphicsSettingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return settings, err
	}

	for _, doc := range docs {
		if doc.Type != "GraphicsSettings" {
			continue
		}

		if ref, ok := db.assetRef(graphicsSettingsPath, refOf(child(doc.Body, "m_CustomRenderPipeline"))); ok && db.exists(ref.Path) {
			settings.RenderPipeline = ref.Path
		}

		for _, key := range builtinShaderSettings {
			slot := child(doc.Body, key)
			if integer(child(slot, "m_Mode")) != shaderModeCustom {
				continue
			}

			ref, ok := db.assetRef(graphicsSettingsPath, refOf(child(slot, "m_Shader")))
			if ok && ref.Path != graphicsSettingsPath && db.exists(ref.Path) {
				settings.CustomShaders = append(settings.CustomShaders, ref.Path)
			}
		}
	}

	return settings, nil
}
