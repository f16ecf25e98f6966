package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"github.com/oov/psd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

type imageFormat struct {
	name         string
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

var (
	formatPNG  = imageFormat{name: "png", decode: png.Decode, decodeConfig: png.DecodeConfig}
	formatJPEG = imageFormat{name: "jpeg", decode: jpeg.Decode, decodeConfig: jpeg.DecodeConfig}
	formatGIF  = imageFormat{name: "gif", decode: gif.Decode, decodeConfig: gif.DecodeConfig}
	formatBMP  = imageFormat{name: "bmp", decode: bmp.Decode, decodeConfig: bmp.DecodeConfig}
	formatTIFF = imageFormat{name: "tiff", decode: tiff.Decode, decodeConfig: tiff.DecodeConfig}
	formatWebP = imageFormat{name: "webp", decode: webp.Decode, decodeConfig: webp.DecodeConfig}
	formatPSD  = imageFormat{name: "psd", decode: decodePSD, decodeConfig: decodePSDConfig}
	formatTGA  = imageFormat{name: "tga", decode: tga.Decode, decodeConfig: tga.DecodeConfig}
)

// Magic numbers in match order. tga has none and is only picked by extension.
var imageMagics = []struct {
	magic  string
	format imageFormat
}{
	{magic: "\x89PNG\r\n\x1a\n", format: formatPNG},
	{magic: "\xff\xd8\xff", format: formatJPEG},
	{magic: "GIF87a", format: formatGIF},
	{magic: "GIF89a", format: formatGIF},
	{magic: "BM", format: formatBMP},
	{magic: "II*\x00", format: formatTIFF},
	{magic: "MM\x00*", format: formatTIFF},
	{magic: "8BPS", format: formatPSD},
}

// sniffFormat picks a decoder from the leading bytes of data and falls back
// to the extension of path for containers without a signature.
func sniffFormat(path m.Path, data []byte) (imageFormat, error) {
	for _, candidate := range imageMagics {
		if bytes.HasPrefix(data, []byte(candidate.magic)) {
			return candidate.format, nil
		}
	}

	if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return formatWebP, nil
	}

	if path.Ext() == ".tga" {
		return formatTGA, nil
	}

	return imageFormat{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, path.Ext())
}

// decodePSD returns the merged composite of a Photoshop document.
func decodePSD(r io.Reader) (image.Image, error) {
	doc, _, err := psd.Decode(r, &psd.DecodeOptions{SkipLayerImage: true})
	if err != nil {
		return nil, err
	}

	if doc.Picker == nil {
		return nil, errors.New("psd has no merged image")
	}

	return doc.Picker, nil
}

func decodePSDConfig(r io.Reader) (image.Config, error) {
	doc, _, err := psd.Decode(r, &psd.DecodeOptions{SkipLayerImage: true, SkipMergedImage: true})
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      doc.Config.Rect.Dx(),
		Height:     doc.Config.Rect.Dy(),
	}, nil
}
