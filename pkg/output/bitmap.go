// Package output holds the in-memory image handed to the renderer and the
// encoders used to write it to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned when the file extension has no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// encoders maps lower-case file extensions to image encoders
var encoders = map[string]func(io.Writer, image.Image) error{
	".bmp": bmp.Encode,
	".png": png.Encode,
}

// Bitmap is an RGB image backed by image.RGBA
type Bitmap struct {
	img *image.RGBA
}

// Ensure Bitmap implements core.Image
var _ core.Image = (*Bitmap)(nil)

// New creates a black, opaque bitmap. It has the core.ImageFactory signature.
func New(width, height int) core.Image {
	return NewBitmap(width, height)
}

// NewBitmap creates a black, opaque bitmap
func NewBitmap(width, height int) *Bitmap {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &Bitmap{img: img}
}

// SetPixel stores one pixel. Channel values are clamped to [0,255] and
// coordinates outside the image are ignored.
func (b *Bitmap) SetPixel(x, y, r, g, bl int) {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return
	}
	b.img.SetRGBA(x, y, color.RGBA{R: channel(r), G: channel(g), B: channel(bl), A: 0xff})
}

// Image returns the underlying image
func (b *Bitmap) Image() *image.RGBA {
	return b.img
}

// Save encodes the bitmap by file extension (.bmp or .png). The file is
// written next to its destination and renamed into place, so readers never
// see a partial image. Missing parent directories are created.
func (b *Bitmap) Save(path string) error {
	encode, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".partial-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, b.img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move image into place: %w", err)
	}
	return nil
}

func channel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
