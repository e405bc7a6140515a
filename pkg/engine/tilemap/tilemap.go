// Package tilemap provides the rectangular tile grid consumed by the scroll renderer.
// Cells are stored flat, row-major: row 0 first, each row left to right.
package tilemap

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidMapShape is returned when the cell count is not a positive
// multiple of the declared width, or when a cell holds a negative tile id.
var ErrInvalidMapShape = errors.New("invalid map shape")

// IDSet is a set of tile ids
type IDSet = mapset.Set[int]

// TileMap is an immutable grid of tile ids
type TileMap struct {
	cells  []int
	width  int
	height int
}

// New validates cells against width and returns a map holding a copy of cells
func New(cells []int, width int) (*TileMap, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", ErrInvalidMapShape, width)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidMapShape)
	}
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not divide into rows of %d", ErrInvalidMapShape, len(cells), width)
	}
	for i, id := range cells {
		if id < 0 {
			return nil, fmt.Errorf("%w: negative tile id %d at index %d", ErrInvalidMapShape, id, i)
		}
	}

	owned := make([]int, len(cells))
	copy(owned, cells)

	return &TileMap{
		cells:  owned,
		width:  width,
		height: len(cells) / width,
	}, nil
}

// Width returns the number of columns
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *TileMap) Height() int {
	return m.height
}

// Len returns the total number of cells
func (m *TileMap) Len() int {
	return len(m.cells)
}

// At returns the tile id at (row, col), or false when out of bounds
func (m *TileMap) At(row, col int) (int, bool) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return 0, false
	}
	return m.cells[row*m.width+col], true
}

// Flat returns the tile id at flat index i, wrapped over the whole buffer.
// Any integer index is accepted, including negative ones.
func (m *TileMap) Flat(i int) int {
	return m.cells[Mod(i, len(m.cells))]
}

// Row returns a copy of one row of tile ids
func (m *TileMap) Row(row int) []int {
	if row < 0 || row >= m.height {
		return nil
	}
	out := make([]int, m.width)
	copy(out, m.cells[row*m.width:(row+1)*m.width])
	return out
}

// Cells returns a copy of the flat cell buffer
func (m *TileMap) Cells() []int {
	out := make([]int, len(m.cells))
	copy(out, m.cells)
	return out
}

// IDs returns the distinct tile ids used by the map
func (m *TileMap) IDs() IDSet {
	ids := mapset.New[int]()
	for _, id := range m.cells {
		ids.Put(id)
	}
	return ids
}

// Mod returns a mod n in [0, n) for n > 0, regardless of the sign of a
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
