// Package scroll renders an endless vertical scroll over a finite tile map.
//
// Only one scalar, the scroll offset, drives the output: each frame the
// offset is reduced modulo the map height in pixels, the rows that intersect
// the viewport are walked bottom to top, and one draw call is emitted per
// tile. Memory stays at the size of the map and per-frame work at the number
// of visible tiles, however far the offset has travelled.
package scroll

import (
	"errors"
	"fmt"
	"math"

	"tuberoad/pkg/engine/tilemap"
)

// Viewport is the destination drawing area in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// ScrollState holds the cumulative vertical scroll distance in destination pixels.
// It may grow without bound in either direction.
type ScrollState struct {
	OffsetPixels float64
}

// Row is one row of tiles placed on the destination surface
type Row struct {
	Y      float64 // destination y of the row's top edge
	Source int     // map row drawn here
}

// Renderer is the tile scroll renderer. It is not safe for concurrent use;
// offset updates and Render must be serialised by the host.
type Renderer[I Image] struct {
	tiles    *tilemap.TileMap
	palette  Palette[I]
	viewport Viewport
	state    ScrollState
	tileSize float64
}

// New builds a renderer from a flat row-major cell buffer and a column count
func New[I Image](cells []int, mapWidth int, palette []I, viewportWidth, viewportHeight, initialOffset float64) (*Renderer[I], error) {
	tiles, err := tilemap.New(cells, mapWidth)
	if err != nil {
		return nil, err
	}
	return NewFromMap(tiles, palette, viewportWidth, viewportHeight, initialOffset)
}

// NewFromMap builds a renderer over an already validated map
func NewFromMap[I Image](tiles *tilemap.TileMap, palette []I, viewportWidth, viewportHeight, initialOffset float64) (*Renderer[I], error) {
	if tiles == nil {
		return nil, fmt.Errorf("%w: nil map", ErrInvalidMapShape)
	}
	if !(viewportWidth > 0) || math.IsInf(viewportWidth, 0) {
		return nil, fmt.Errorf("%w: width %v", ErrInvalidViewport, viewportWidth)
	}
	if !(viewportHeight > 0) || math.IsInf(viewportHeight, 0) {
		return nil, fmt.Errorf("%w: height %v", ErrInvalidViewport, viewportHeight)
	}

	return &Renderer[I]{
		tiles:    tiles,
		palette:  Palette[I](palette),
		viewport: Viewport{Width: viewportWidth, Height: viewportHeight},
		state:    ScrollState{OffsetPixels: initialOffset},
		tileSize: viewportWidth / float64(tiles.Width()),
	}, nil
}

// Map returns the tile map
func (r *Renderer[I]) Map() *tilemap.TileMap {
	return r.tiles
}

// Viewport returns the destination area
func (r *Renderer[I]) Viewport() Viewport {
	return r.viewport
}

// TileSize returns the edge length of a destination cell.
// Cells are square: the height follows the width even if that does not
// tile the viewport height evenly.
func (r *Renderer[I]) TileSize() float64 {
	return r.tileSize
}

// Offset returns the current scroll offset
func (r *Renderer[I]) Offset() float64 {
	return r.state.OffsetPixels
}

// SetOffset replaces the scroll offset
func (r *Renderer[I]) SetOffset(offset float64) {
	r.state.OffsetPixels = offset
}

// ScrollBy adds delta to the scroll offset
func (r *Renderer[I]) ScrollBy(delta float64) {
	r.state.OffsetPixels += delta
}

// RowPosition returns the scroll offset in map-row units, in [0, mapHeight)
func (r *Renderer[I]) RowPosition() float64 {
	return RowPosition(r.state.OffsetPixels, r.tileSize, r.tiles.Height())
}

// Rows returns the rows the next Render would draw, bottom row first.
// The bottom row may start at or below the viewport's lower edge and the
// last row may start above its top edge; both are still returned.
func (r *Renderer[I]) Rows() []Row {
	if !finite(r.state.OffsetPixels) {
		return nil
	}

	height := r.tiles.Height()
	rowPos := r.RowPosition()
	rowIndex := int(math.Floor(rowPos))
	frac := rowPos - float64(rowIndex)

	y0 := r.viewport.Height - r.tileSize*frac
	rows := make([]Row, 0, int(r.viewport.Height/r.tileSize)+2)
	for k := 0; ; k++ {
		y := y0 - float64(k)*r.tileSize
		if y <= -r.tileSize {
			break
		}
		rows = append(rows, Row{Y: y, Source: rowIndex})
		rowIndex = tilemap.Mod(rowIndex-1, height)
	}
	return rows
}

// Render issues one draw call per tile of every row returned by Rows.
// Each palette image is stretched to exactly fill its square cell.
//
// A tile id without a palette entry is reported as a *MissingTileError for
// every cell it occurs in; the other tiles of the frame are still drawn and
// all such errors are joined in the result.
func (r *Renderer[I]) Render(sink Sink[I]) error {
	if !finite(r.state.OffsetPixels) {
		return fmt.Errorf("%w: %v", ErrInvalidOffset, r.state.OffsetPixels)
	}

	width := r.tiles.Width()
	size := r.tileSize

	var errs []error
	for _, row := range r.Rows() {
		for i := 0; i < width; i++ {
			// Flat wrap guards against a declared height that does not match the buffer.
			id := r.tiles.Flat(row.Source*width + i)

			img, ok := r.palette.Resolve(id)
			if !ok {
				errs = append(errs, &MissingTileError{TileID: id, Row: row.Source, Col: i})
				continue
			}

			src := img.Bounds()
			t := ScaleTranslate(
				size/float64(src.Dx()),
				size/float64(src.Dy()),
				float64(i)*size,
				row.Y,
			)
			sink.DrawImage(img, src, t)
		}
	}
	return errors.Join(errs...)
}

// RowPosition reduces offset (pixels) to map-row units modulo mapHeight.
// The result is always in [0, mapHeight), for negative offsets too.
func RowPosition(offset, tileSize float64, mapHeight int) float64 {
	h := float64(mapHeight)
	pos := math.Mod(offset/tileSize, h)
	if pos < 0 {
		pos += h
	}
	// -tiny + h can round up to h
	if pos >= h {
		pos = 0
	}
	return pos
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
