// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/engine/tilemap"
	"tuberoad/pkg/game/tiles"
)

var colorBackdrop = color.RGBA{15, 15, 26, 255}

// RGBASink rasterises draw calls onto an in-memory image
type RGBASink struct {
	Dst *image.RGBA

	// Interp picks the sampling filter; nil means nearest neighbour.
	Interp draw.Transformer
}

// NewRGBASink returns a sink over a w x h image filled with the backdrop colour
func NewRGBASink(w, h int) *RGBASink {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorBackdrop), image.Point{}, draw.Src)
	return &RGBASink{Dst: dst}
}

// DrawImage draws the src region of img through t. t is relative to the
// top-left of src; parts landing outside Dst are clipped by the transformer.
func (s *RGBASink) DrawImage(img image.Image, src image.Rectangle, t scroll.Transform) {
	interp := s.Interp
	if interp == nil {
		interp = draw.NearestNeighbor
	}
	interp.Transform(s.Dst, aff3(t, src.Min), img, src, draw.Over, nil)
}

// aff3 converts t into the source-to-destination matrix x/image/draw expects,
// which is in the source image's own coordinate space.
func aff3(t scroll.Transform, origin image.Point) f64.Aff3 {
	ox, oy := float64(origin.X), float64(origin.Y)
	return f64.Aff3{
		t.A, t.B, t.TX - t.A*ox - t.B*oy,
		t.C, t.D, t.TY - t.C*ox - t.D*oy,
	}
}

// Palette returns the built-in tile artwork as a palette of image.Image
func Palette() []image.Image {
	imgs := tiles.Images()
	p := make([]image.Image, len(imgs))
	for i, img := range imgs {
		p[i] = img
	}
	return p
}

// Screenshot renders one w x h frame of m at offset. Missing tiles are
// reported in err but the rest of the frame is still returned.
func Screenshot(m *tilemap.TileMap, offset float64, w, h int) (*image.RGBA, error) {
	r, err := scroll.NewFromMap(m, Palette(), float64(w), float64(h), offset)
	if err != nil {
		return nil, err
	}
	sink := NewRGBASink(w, h)
	return sink.Dst, r.Render(sink)
}

// SaveScreenshotPNG renders one frame and writes it to dir as a timestamped
// PNG. It returns the path written.
func SaveScreenshotPNG(dir string, m *tilemap.TileMap, offset float64, w, h int) (string, error) {
	img, renderErr := Screenshot(m, offset, w, h)
	if img == nil {
		return "", renderErr
	}

	timestamp := time.Now().Format("20060102-150405.000")
	path := filepath.Join(dir, fmt.Sprintf("tuberoad-%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, renderErr
}
