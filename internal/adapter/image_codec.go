package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// ErrUnsupportedImage is returned for image containers no decoder is wired for.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ErrNotReadable is returned when pixels are requested through import
// settings that keep the texture compressed or unreadable.
var ErrNotReadable = errors.New("texture import settings are not readable and uncompressed")

var directImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

var importImageExts = map[string]struct{}{
	".psd":  {},
	".tif":  {},
	".tiff": {},
	".tga":  {},
	".gif":  {},
	".bmp":  {},
	".iff":  {},
	".pict": {},
}

var textureExts = map[string]struct{}{
	".exr":  {},
	".hdr":  {},
	".webp": {},
}

// IsDirectImage reports whether ext decodes in-process without an import pass.
func IsDirectImage(ext string) bool {
	_, ok := directImageExts[strings.ToLower(ext)]
	return ok
}

// IsImportImage reports whether ext needs a staged import round trip.
func IsImportImage(ext string) bool {
	_, ok := importImageExts[strings.ToLower(ext)]
	return ok
}

// IsRescalable reports whether the copier may downscale a file with ext.
func IsRescalable(ext string) bool {
	return IsDirectImage(ext) || IsImportImage(ext)
}

// IsTextureExt reports whether ext is imported as a texture.
func IsTextureExt(ext string) bool {
	if IsRescalable(ext) {
		return true
	}

	_, ok := textureExts[strings.ToLower(ext)]

	return ok
}

// ImportSettings is the importer configuration materialized for an imported
// texture by the first import pass.
type ImportSettings struct {
	Readable    bool
	Compression string
}

// Uncompressed reports whether pixels can be read back losslessly.
func (s ImportSettings) Uncompressed() bool {
	return s.Compression == "" || s.Compression == CompressionNone
}

// CompressionNone is the compression value of an uncompressed import.
const CompressionNone = "none"

// ImageCodec decodes and encodes texture files.
type ImageCodec interface {
	// DecodeConfig reads the dimensions of any supported texture file.
	DecodeConfig(path m.Path) (image.Config, error)
	// Decode decodes a directly decodable file (png, jpg).
	Decode(path m.Path) (image.Image, error)
	// Inspect runs the first import pass over a staged file and returns the
	// importer settings found in its sidecar, or defaults.
	Inspect(path m.Path) (ImportSettings, error)
	// Import runs the second import pass. It only yields pixels when settings
	// are readable and uncompressed.
	Import(path m.Path, settings ImportSettings) (image.Image, error)
	// EncodePNG writes img losslessly to path.
	EncodePNG(path m.Path, img image.Image) error
}

// LocalImageCodec implements ImageCodec with the standard and x/image decoders.
type LocalImageCodec struct{}

// NewLocalImageCodec returns a LocalImageCodec.
func NewLocalImageCodec() *LocalImageCodec {
	return &LocalImageCodec{}
}

// DecodeConfig reads the image header. The container is detected from the
// file content, so a png written under another extension still reads.
func (c *LocalImageCodec) DecodeConfig(path m.Path) (image.Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return image.Config{}, err
	}

	format, err := sniffFormat(path, data)
	if err != nil {
		return image.Config{}, err
	}

	return format.decodeConfig(bytes.NewReader(data))
}

// Decode decodes a png or jpg file.
func (c *LocalImageCodec) Decode(path m.Path) (image.Image, error) {
	if !IsDirectImage(path.Ext()) {
		return nil, fmt.Errorf("%w: %s needs an import pass", ErrUnsupportedImage, path.Ext())
	}

	return c.decodeAny(path)
}

// Inspect reads the staged file's header and its importer settings.
func (c *LocalImageCodec) Inspect(path m.Path) (ImportSettings, error) {
	if _, err := c.DecodeConfig(path); err != nil {
		return ImportSettings{}, err
	}

	settings := ImportSettings{Compression: "normal"}

	meta, err := os.ReadFile(string(path.Meta()))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}

		return settings, err
	}

	var doc struct {
		TextureImporter struct {
			IsReadable         int  `yaml:"isReadable"`
			TextureCompression *int `yaml:"textureCompression"`
		} `yaml:"TextureImporter"`
	}

	if err := yaml.Unmarshal(meta, &doc); err != nil {
		return settings, fmt.Errorf("parse import settings %s: %w", path.Meta(), err)
	}

	settings.Readable = doc.TextureImporter.IsReadable != 0
	if doc.TextureImporter.TextureCompression != nil && *doc.TextureImporter.TextureCompression == 0 {
		settings.Compression = CompressionNone
	}

	return settings, nil
}

// Import decodes the staged file into an RGBA buffer.
func (c *LocalImageCodec) Import(path m.Path, settings ImportSettings) (image.Image, error) {
	if !settings.Readable || !settings.Uncompressed() {
		return nil, ErrNotReadable
	}

	img, err := c.decodeAny(path)
	if err != nil {
		return nil, err
	}

	return toRGBA(img), nil
}

// EncodePNG writes img as a png file, replacing any existing file.
func (c *LocalImageCodec) EncodePNG(path m.Path, img image.Image) error {
	// #nosec G304 - path is inside the chosen target project
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFilePerm)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)

	if err := png.Encode(w, img); err != nil {
		_ = f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (c *LocalImageCodec) decodeAny(path m.Path) (image.Image, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	format, err := sniffFormat(path, data)
	if err != nil {
		return nil, err
	}

	return format.decode(bytes.NewReader(data))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	return out
}
