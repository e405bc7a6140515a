// Package tiles paints the artwork for the built-in course's tile ids.
// Every backend builds its palette from here so the windowed, terminal and
// screenshot renderings agree.
package tiles

import (
	"image"
	"image/color"

	"tuberoad/pkg/game/course"
)

// Native sizes. They differ on purpose; the renderer stretches each image to its cell.
const (
	BlockSize          = 32
	RoadSize           = 32
	GradationWidth     = 8
	GradationHeight    = 64
	roadDashLength     = 12
	roadShoulderWidth  = 3
	blockMortarPattern = 8

	VehicleSize = 16
)

var (
	colorBlock       = color.RGBA{96, 72, 120, 255}
	colorBlockMortar = color.RGBA{48, 36, 64, 255}
	colorRoad        = color.RGBA{56, 56, 64, 255}
	colorRoadLine    = color.RGBA{230, 220, 120, 255}
	colorShoulder    = color.RGBA{200, 200, 210, 255}
	colorHorizon     = color.RGBA{26, 26, 46, 255}
	colorSky         = color.RGBA{120, 90, 200, 255}
	colorKart        = color.RGBA{220, 60, 50, 255}
	colorKartGlass   = color.RGBA{140, 200, 240, 255}
	colorTyre        = color.RGBA{20, 20, 24, 255}
)

// Glyph is the terminal rendering of a tile
type Glyph struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Images returns a fresh palette indexed by tile id
func Images() []*image.RGBA {
	p := make([]*image.RGBA, 3)
	p[course.TileBlock] = Block()
	p[course.TileRoad] = Road()
	p[course.TileGradation] = Gradation()
	return p
}

// Glyphs returns the terminal palette indexed by tile id
func Glyphs() []Glyph {
	g := make([]Glyph, 3)
	g[course.TileBlock] = Glyph{Rune: '▓', FG: colorBlock, BG: colorBlockMortar}
	g[course.TileRoad] = Glyph{Rune: '░', FG: colorRoadLine, BG: colorRoad}
	g[course.TileGradation] = Glyph{Rune: '▒', FG: colorSky, BG: colorHorizon}
	return g
}

// VehicleGlyph is the terminal rendering of the vehicle
func VehicleGlyph() Glyph {
	return Glyph{Rune: '▲', FG: colorKart, BG: colorRoad}
}

// Vehicle paints the kart seen from behind: four tyres, a body and a
// windscreen, on a transparent background.
func Vehicle() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, VehicleSize, VehicleSize))
	for y := 0; y < VehicleSize; y++ {
		for x := 0; x < VehicleSize; x++ {
			side := x < 3 || x >= VehicleSize-3
			switch {
			case side && (y >= 2 && y < 6 || y >= 10 && y < 14):
				img.SetRGBA(x, y, colorTyre)
			case side:
			case y >= 3 && y < 6 && x >= 5 && x < VehicleSize-5:
				img.SetRGBA(x, y, colorKartGlass)
			case y >= 1 && y < 15:
				img.SetRGBA(x, y, colorKart)
			}
		}
	}
	return img
}

// Block paints a brick tile
func Block() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BlockSize, BlockSize))
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			c := colorBlock
			// Offset every other course of bricks by half a brick
			shift := 0
			if (y/blockMortarPattern)%2 == 1 {
				shift = blockMortarPattern
			}
			if y%blockMortarPattern == 0 || (x+shift)%(2*blockMortarPattern) == 0 {
				c = colorBlockMortar
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Road paints asphalt with a dashed centre line and light shoulders
func Road() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, RoadSize, RoadSize))
	mid := RoadSize / 2
	for y := 0; y < RoadSize; y++ {
		for x := 0; x < RoadSize; x++ {
			c := colorRoad
			switch {
			case x < roadShoulderWidth || x >= RoadSize-roadShoulderWidth:
				c = colorShoulder
			case (x == mid-1 || x == mid) && y < roadDashLength:
				c = colorRoadLine
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Gradation paints a vertical fade from sky at the top to the horizon colour
func Gradation() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, GradationWidth, GradationHeight))
	for y := 0; y < GradationHeight; y++ {
		c := Lerp(colorSky, colorHorizon, float64(y)/float64(GradationHeight-1))
		for x := 0; x < GradationWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Lerp blends a towards b by t in [0, 1]
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
