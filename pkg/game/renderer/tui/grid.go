package tui

import (
	"image"
	"math"
	"strings"

	"github.com/gookit/color"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/game/tiles"
)

// cellAspect is how many viewport units one character row spans. Terminal
// cells are about twice as tall as wide, so this keeps tiles square.
const cellAspect = 2

// glyphTile is a palette entry for the terminal: a tile id with a unit-sized image
type glyphTile int

func (g glyphTile) Bounds() image.Rectangle {
	return image.Rect(0, 0, 1, 1)
}

// palette returns one glyph tile per tile id
func palette(n int) []glyphTile {
	p := make([]glyphTile, n)
	for i := range p {
		p[i] = glyphTile(i)
	}
	return p
}

// Grid is a character framebuffer holding a tile id per cell, -1 for empty
type Grid struct {
	Cols, Rows int
	Cells      []int
}

// NewGrid returns an empty cols x rows grid
func NewGrid(cols, rows int) *Grid {
	g := &Grid{Cols: cols, Rows: rows, Cells: make([]int, cols*rows)}
	g.Clear()
	return g
}

// Clear empties every cell
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = -1
	}
}

// At returns the tile id at (col, row), or -1 outside the grid
func (g *Grid) At(col, row int) int {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return -1
	}
	return g.Cells[row*g.Cols+col]
}

// ViewportSize is the grid's extent in viewport units
func (g *Grid) ViewportSize() (width, height float64) {
	return float64(g.Cols), float64(g.Rows * cellAspect)
}

// DrawImage fills every cell whose centre lies inside the destination
// rectangle. Parts outside the grid, such as rows above the top edge, are clipped.
func (g *Grid) DrawImage(img glyphTile, src image.Rectangle, t scroll.Transform) {
	x0, y0 := t.Apply(0, 0)
	x1, y1 := t.Apply(float64(src.Dx()), float64(src.Dy()))

	colStart := max(0, int(math.Ceil(x0-0.5)))
	colEnd := min(g.Cols, int(math.Ceil(x1-0.5)))
	rowStart := max(0, int(math.Ceil(y0/cellAspect-0.5)))
	rowEnd := min(g.Rows, int(math.Ceil(y1/cellAspect-0.5)))

	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			g.Cells[row*g.Cols+col] = int(img)
		}
	}
}

// Styler turns tile ids into coloured glyphs
type Styler struct {
	glyphs []tiles.Glyph
	styles []*color.RGBStyle
}

// NewStyler builds one truecolor style per glyph
func NewStyler(glyphs []tiles.Glyph) *Styler {
	s := &Styler{glyphs: glyphs, styles: make([]*color.RGBStyle, len(glyphs))}
	for i, g := range glyphs {
		s.styles[i] = color.NewRGBStyle(
			color.RGB(g.FG.R, g.FG.G, g.FG.B),
			color.RGB(g.BG.R, g.BG.G, g.BG.B, true),
		)
	}
	return s
}

// Render writes the grid as text, one line per row. Runs of the same tile
// share one style escape. Lines end with \r\n so output stays aligned in raw mode.
func (s *Styler) Render(sb *strings.Builder, g *Grid) {
	for row := 0; row < g.Rows; row++ {
		runStart := 0
		for col := 1; col <= g.Cols; col++ {
			if col < g.Cols && g.At(col, row) == g.At(runStart, row) {
				continue
			}
			s.writeRun(sb, g.At(runStart, row), col-runStart)
			runStart = col
		}
		sb.WriteString("\r\n")
	}
}

func (s *Styler) writeRun(sb *strings.Builder, id, n int) {
	if id < 0 || id >= len(s.glyphs) {
		sb.WriteString(strings.Repeat(" ", n))
		return
	}
	sb.WriteString(s.styles[id].Sprint(strings.Repeat(string(s.glyphs[id].Rune), n)))
}
