// Package ebiten provides an Ebiten-based 2D graphical renderer for Tube Road.
package ebiten

import "image/color"

// Color palette for the window chrome. Tile artwork comes from the tiles package.
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Behind the course while the first frame loads
	colorPanel      = color.RGBA{30, 30, 50, 200}    // Semi-transparent HUD strip
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorPaused     = color.RGBA{255, 200, 100, 255} // Orange
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Help line
)

const (
	// Logical window size
	windowWidth  = 640
	windowHeight = 480

	// Key repeat timing (milliseconds) for speed keys
	keyRepeatInitialDelay = 300
	keyRepeatInterval     = 80

	hudPadding    = 6
	hudLineHeight = 16
)
