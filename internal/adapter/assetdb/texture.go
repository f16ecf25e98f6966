package assetdb

import (
	"image"
	"log/slog"

	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// textureFormats maps serialized texture format ids.
var textureFormats = map[int64]m.TextureFormat{
	1:  m.FormatAlpha8,
	2:  m.FormatARGB4444,
	3:  m.FormatRGB24,
	4:  m.FormatRGBA32,
	5:  m.FormatARGB32,
	7:  m.FormatRGB565,
	9:  m.FormatR16,
	10: m.FormatDXT1,
	12: m.FormatDXT5,
	13: m.FormatRGBA4444,
	14: m.FormatBGRA32,
	15: m.FormatRHalf,
	17: m.FormatRGBAHalf,
	18: m.FormatRFloat,
	20: m.FormatRGBAFloat,
	24: m.FormatBC6H,
	25: m.FormatBC7,
	26: m.FormatBC4,
	27: m.FormatBC5,
	28: m.FormatDXT1Crunched,
	29: m.FormatDXT5Crunched,
	34: m.FormatETCRGB4,
	45: m.FormatETC2RGB,
	47: m.FormatETC2RGBA8,
	48: m.FormatASTC4x4,
	50: m.FormatASTC6x6,
	51: m.FormatASTC8x8,
}

var textureShapes = map[int64]m.TextureDimension{
	1: m.DimensionTex2D,
	2: m.DimensionCube,
	4: m.DimensionTex2DArray,
	8: m.DimensionTex3D,
}

const defaultTexturePlatform = "DefaultTexturePlatform"

func (db *Database) loadTexture(p m.Path) (*m.Texture, error) {
	tex := &m.Texture{Format: m.FormatUnknown, Dimension: m.DimensionTex2D}

	cfg, err := db.images.DecodeConfig(m.Path(db.abs(p)))
	if err != nil {
		slog.Warn("Could not read texture header", "path", p, "error", err)
	} else {
		tex.Config = cfg
	}

	meta, err := db.meta(p)
	if err != nil {
		return nil, err
	}

	importer := child(meta, "TextureImporter")

	if shape, ok := textureShapes[integer(child(importer, "textureShape"))]; ok {
		tex.Dimension = shape
	}

	tex.Format = textureFormat(importer, cfg)

	return tex, nil
}

// textureFormat picks the explicit format of the default platform settings,
// or derives the automatic format from compression and alpha.
func textureFormat(importer *yaml.Node, cfg image.Config) m.TextureFormat {
	compressed := true

	if n := child(importer, "textureCompression"); n != nil {
		compressed = integer(n) != 0
	}

	for _, platform := range items(child(importer, "platformSettings")) {
		if str(child(platform, "buildTarget")) != defaultTexturePlatform {
			continue
		}

		if format, ok := textureFormats[integer(child(platform, "textureFormat"))]; ok {
			return format
		}

		if n := child(platform, "textureCompression"); n != nil {
			compressed = integer(n) != 0
		}
	}

	alpha := modelHasAlpha(cfg)
	if n := child(importer, "alphaSource"); n != nil && integer(n) == 0 {
		alpha = false
	}

	switch {
	case !compressed && alpha:
		return m.FormatRGBA32
	case !compressed:
		return m.FormatRGB24
	case alpha:
		return m.FormatDXT5
	default:
		return m.FormatDXT1
	}
}

func modelHasAlpha(cfg image.Config) bool {
	if cfg.ColorModel == nil {
		return false
	}

	_, _, _, a := cfg.ColorModel.Convert(transparent{}).RGBA()

	return a < 0xffff
}

type transparent struct{}

func (transparent) RGBA() (r, g, b, a uint32) { return 0, 0, 0, 0 }
