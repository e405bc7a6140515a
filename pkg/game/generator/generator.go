// Package generator builds random courses for the road to scroll over.
package generator

import (
	"fmt"
	"math/rand"

	"tuberoad/pkg/engine/tilemap"
	"tuberoad/pkg/game/course"
)

// CourseGenerator is an interface for course generation algorithms
type CourseGenerator interface {
	Generate(seed int64, rows int) (*tilemap.TileMap, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	Segments   = &SegmentGenerator{}
)

// DefaultGenerator is the default course generator
var DefaultGenerator CourseGenerator = LineWalker

// ByName returns the generator with the given short name
func ByName(name string) (CourseGenerator, error) {
	switch name {
	case "walker", "":
		return LineWalker, nil
	case "segments":
		return Segments, nil
	}
	return nil, fmt.Errorf("unknown generator %q (want walker or segments)", name)
}

const (
	// gradationRows lead every course, as in the built-in tube
	gradationRows = 4

	// MinRows is the shortest course a generator accepts
	MinRows = gradationRows + 8

	width = course.TubeWidth

	// Road spans stay inside the block border
	minCol = 1
	maxCol = width - 2
)

// span is the inclusive column range of road on one row
type span struct {
	left, right int
}

func (s span) width() int {
	return s.right - s.left + 1
}

func (s span) overlaps(o span) bool {
	return s.left <= o.right && o.left <= s.right
}

// canvas is a course being built, row-major like tilemap cells
type canvas struct {
	cells []int
	rows  int
}

func newCanvas(rows int) *canvas {
	c := &canvas{cells: make([]int, rows*width), rows: rows}
	for i := range c.cells {
		c.cells[i] = course.TileBlock
		if i < gradationRows*width {
			c.cells[i] = course.TileGradation
		}
	}
	return c
}

func (c *canvas) carve(row int, s span) {
	for col := max(minCol, s.left); col <= min(maxCol, s.right); col++ {
		c.cells[row*width+col] = course.TileRoad
	}
}

func (c *canvas) fill(row, col, id int) {
	if col >= minCol && col <= maxCol {
		c.cells[row*width+col] = id
	}
}

func (c *canvas) tileMap() (*tilemap.TileMap, error) {
	return tilemap.New(c.cells, width)
}

func checkRows(rows int) error {
	if rows < MinRows {
		return fmt.Errorf("course needs at least %d rows, got %d", MinRows, rows)
	}
	return nil
}

// clampSpan keeps s inside the border and at least minWidth wide
func clampSpan(s span, minWidth int) span {
	if s.width() < minWidth {
		s.right = s.left + minWidth - 1
	}
	if s.left < minCol {
		s.right += minCol - s.left
		s.left = minCol
	}
	if s.right > maxCol {
		s.left -= s.right - maxCol
		s.right = maxCol
	}
	return s
}

// joinSpans returns the span covering both, for transition rows
func joinSpans(a, b span) span {
	return span{left: min(a.left, b.left), right: max(a.right, b.right)}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
