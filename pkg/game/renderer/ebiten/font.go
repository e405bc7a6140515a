package ebiten

import (
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// hudFace returns the HUD font. bitmapfont covers Latin and CJK, so every
// embedded translation renders without loading font files.
func hudFace() text.Face {
	return text.NewGoXFace(bitmapfont.Face)
}
