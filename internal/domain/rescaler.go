package domain

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"reprowiz.dev/pkg/reprowiz/internal/adapter"
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const importScratchPattern = "reprowiz-import-*"

// Rescaler writes a downscaled copy of a texture.
type Rescaler interface {
	// Rescale decodes src, shrinks it by factor along both axes and writes a
	// png to dst. Decoding failures are returned as *model.DecodeError and
	// leave no file at dst.
	Rescale(ctx context.Context, src, dst m.Path, factor int) error
}

type rescaler struct {
	adapter.SourceFSAdapter
	adapter.ImageCodec
}

// NewRescaler creates a Rescaler.
func NewRescaler(fsAdapter adapter.SourceFSAdapter, codec adapter.ImageCodec) Rescaler {
	return &rescaler{SourceFSAdapter: fsAdapter, ImageCodec: codec}
}

func (r *rescaler) Rescale(ctx context.Context, src, dst m.Path, factor int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if factor < 1 {
		return fmt.Errorf("invalid scale factor %d", factor)
	}

	pixels, err := r.load(src)
	if err != nil {
		slog.Warn("Failed to decode texture", "path", src, "error", err)
		return &m.DecodeError{Path: src, Err: err}
	}

	scaled := ScaleBilinear(pixels, factor)

	if err := r.EncodePNG(dst, scaled); err != nil {
		_ = r.Remove(dst)

		slog.Error("Failed to write texture", "path", dst, "error", err)

		return fmt.Errorf("encode %s: %w", dst, err)
	}

	slog.Debug("Texture rescaled", "path", src, "from", pixels.Bounds().Size(), "to", scaled.Bounds().Size())

	return nil
}

func (r *rescaler) load(src m.Path) (image.Image, error) {
	ext := src.Ext()

	switch {
	case adapter.IsDirectImage(ext):
		return r.Decode(src)
	case adapter.IsImportImage(ext):
		return r.importStaged(src)
	}

	return nil, fmt.Errorf("%w: %s", adapter.ErrUnsupportedImage, ext)
}

// importStaged runs the two-pass import on a scratch copy of src. The copy
// and its sidecar are removed on every path.
func (r *rescaler) importStaged(src m.Path) (image.Image, error) {
	scratch, err := r.CreateTempDir(importScratchPattern)
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	staged := r.JoinPath(string(scratch), uuid.NewString()+src.Ext())

	defer func() {
		_ = r.Remove(staged)
		_ = r.Remove(staged.Meta())
		_ = r.RemoveAll(scratch)
	}()

	if err := r.CopyFile(src, staged); err != nil {
		return nil, fmt.Errorf("stage %s: %w", src, err)
	}

	settings, err := r.Inspect(staged)
	if err != nil {
		return nil, err
	}

	settings.Readable = true
	settings.Compression = adapter.CompressionNone

	return r.Import(staged, settings)
}

// ScaleBilinear shrinks img to floor(size/factor) pixels per axis, at least
// one. Destination pixel (x, y) samples the source at (x/(dw-1), y/(dh-1))
// of its extent, so corners map onto corners; a one pixel axis samples at 0.
// A factor of 1 returns the pixels unchanged.
func ScaleBilinear(img image.Image, factor int) *image.NRGBA {
	bounds := img.Bounds()

	src := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(src, src.Bounds(), img, bounds.Min, draw.Src)

	if factor <= 1 {
		return src
	}

	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dw, dh := max(sw/factor, 1), max(sh/factor, 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))

	for y := 0; y < dh; y++ {
		sy := sampleCoord(y, dh, sh)

		for x := 0; x < dw; x++ {
			sx := sampleCoord(x, dw, sw)
			copy(dst.Pix[dst.PixOffset(x, y):], bilinear(src, sx, sy))
		}
	}

	return dst
}

func sampleCoord(i, dstSize, srcSize int) float64 {
	if dstSize <= 1 || srcSize <= 1 {
		return 0
	}

	return float64(i) / float64(dstSize-1) * float64(srcSize-1)
}

func bilinear(src *image.NRGBA, x, y float64) []uint8 {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := min(x0+1, src.Rect.Dx()-1), min(y0+1, src.Rect.Dy()-1)
	tx, ty := x-float64(x0), y-float64(y0)

	p00 := src.Pix[src.PixOffset(x0, y0):]
	p10 := src.Pix[src.PixOffset(x1, y0):]
	p01 := src.Pix[src.PixOffset(x0, y1):]
	p11 := src.Pix[src.PixOffset(x1, y1):]

	out := make([]uint8, 4)
	for c := range out {
		top := float64(p00[c])*(1-tx) + float64(p10[c])*tx
		bottom := float64(p01[c])*(1-tx) + float64(p11[c])*tx
		out[c] = uint8(math.Round(top*(1-ty) + bottom*ty))
	}

	return out
}
