package ebiten

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/game/locale"
	"tuberoad/pkg/game/renderer"
	"tuberoad/pkg/game/tiles"
)

// EbitenRenderer shows the scrolling course in a window
type EbitenRenderer struct {
	scene   *renderer.Scene
	palette []*ebiten.Image
	road    *scroll.Renderer[*ebiten.Image]
	vehicle *ebiten.Image
	errs    *renderer.ErrorLog
	hudFace text.Face

	ctx context.Context

	windowWidth  int
	windowHeight int

	mouse dragTracker
	touch dragTracker

	keyRepeatState      map[ebiten.Key]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	windowOpenedLogged bool
}

type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// New creates the window renderer for scene. The palette is uploaded from
// the tiles package.
func New(scene *renderer.Scene) (*EbitenRenderer, error) {
	src := tiles.Images()
	palette := make([]*ebiten.Image, len(src))
	for i, img := range src {
		palette[i] = ebiten.NewImageFromImage(img)
	}

	e := &EbitenRenderer{
		scene:          scene,
		palette:        palette,
		vehicle:        ebiten.NewImageFromImage(tiles.Vehicle()),
		errs:           renderer.NewErrorLog(),
		hudFace:        hudFace(),
		windowWidth:    windowWidth,
		windowHeight:   windowHeight,
		keyRepeatState: make(map[ebiten.Key]keyRepeatInfo),
	}
	if err := e.rebuild(); err != nil {
		return nil, err
	}
	return e, nil
}

// Name implements renderer.Renderer
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// rebuild recreates the scroll renderer for the current window size. Tile
// size follows the window width, so this runs on every resize.
func (e *EbitenRenderer) rebuild() error {
	offset := renderer.ScaleOffset(e.scene.Driver.Offset(), float64(e.windowWidth))
	road, err := scroll.NewFromMap(e.scene.Map, e.palette, float64(e.windowWidth), float64(e.windowHeight), offset)
	if err != nil {
		return fmt.Errorf("window %dx%d: %w", e.windowWidth, e.windowHeight, err)
	}
	e.road = road
	e.scene.Driver.Invalidate()
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return e.windowWidth, e.windowHeight
	}
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		prevW, prevH := e.windowWidth, e.windowHeight
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		if err := e.rebuild(); err != nil {
			log.Printf("Resize ignored: %v", err)
			e.windowWidth, e.windowHeight = prevW, prevH
		}
	}
	return e.windowWidth, e.windowHeight
}

// Run opens the window and blocks until it closes or ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(locale.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Frames without a redraw keep the previous picture
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("Opening %dx%d window", windowWidth, windowHeight)
	return ebiten.RunGame(e)
}

// viewportSize returns the size screenshots are taken at
func (e *EbitenRenderer) viewportSize() image.Point {
	return image.Pt(e.windowWidth, e.windowHeight)
}
