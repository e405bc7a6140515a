package scroll

import (
	"image"
	"reflect"
	"slices"

	"tuberoad/pkg/engine/tilemap"
)

// Image is anything with pixel bounds. *ebiten.Image and image.Image both qualify.
type Image interface {
	Bounds() image.Rectangle
}

// Transform is a 2D affine transform in the same element order as ebiten.GeoM:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Transform struct {
	A, B, TX float64
	C, D, TY float64
}

// ScaleTranslate returns a transform that scales by (sx, sy) and then moves to (tx, ty)
func ScaleTranslate(sx, sy, tx, ty float64) Transform {
	return Transform{A: sx, D: sy, TX: tx, TY: ty}
}

// Apply maps a source-space point into destination space
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.TX, t.C*x + t.D*y + t.TY
}

// Sink is the host's blit primitive. DrawImage draws the src region of img
// through t. Destinations may lie partly or fully outside the surface; the
// sink is responsible for clipping.
type Sink[I Image] interface {
	DrawImage(img I, src image.Rectangle, t Transform)
}

// Palette maps tile ids to images
type Palette[I Image] []I

// Resolve returns the image for id. Entries that are nil or have an empty
// size count as missing.
func (p Palette[I]) Resolve(id int) (I, bool) {
	var zero I
	if id < 0 || id >= len(p) {
		return zero, false
	}
	img := p[id]
	if isNil(img) {
		return zero, false
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return zero, false
	}
	return img, true
}

// MissingIDs returns the sorted ids in ids that the palette cannot resolve
func MissingIDs[I Image](p Palette[I], ids tilemap.IDSet) []int {
	var missing []int
	ids.Each(func(id int) {
		if _, ok := p.Resolve(id); !ok {
			missing = append(missing, id)
		}
	})
	slices.Sort(missing)
	return missing
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
