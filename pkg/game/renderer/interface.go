// Package renderer defines the frame-loop backends that put the scrolling
// course on an output, and the state they share.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"sync/atomic"

	"github.com/zyedidia/generic/mapset"

	"tuberoad/pkg/engine/input"
	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/engine/tilemap"
	"tuberoad/pkg/game/config"
	"tuberoad/pkg/game/devtools"
	"tuberoad/pkg/game/driver"
	"tuberoad/pkg/game/locale"
)

// ErrNoRenderer is returned by Run when no backend has been set
var ErrNoRenderer = errors.New("no renderer set")

// ReferenceWidth is the viewport width driver offsets are measured at.
// Backends of other widths scale offsets so that they all show the same rows.
const ReferenceWidth = float64(config.DefaultWidth)

// ScaleOffset converts a driver offset to a viewport of the given width
func ScaleOffset(offset, viewportWidth float64) float64 {
	return offset * viewportWidth / ReferenceWidth
}

// Vehicle placement at the reference width: the sprite is drawn at twice its
// size, centred, with its top edge vehicleLift pixels above the bottom edge.
const (
	vehicleScale = 2.0
	vehicleLift  = 128.0
)

// VehicleTransform places a vehicle sprite of the given source size on a
// vw x vh viewport, bobbed by dy reference pixels.
func VehicleTransform(src image.Rectangle, vw, vh, dy float64) scroll.Transform {
	s := vw / ReferenceWidth
	scale := vehicleScale * s
	width := float64(src.Dx()) * scale
	return scroll.ScaleTranslate(scale, scale, vw/2-width/2, vh-(vehicleLift-dy)*s)
}

// PaletteError lists the tile ids of a course that have no built-in artwork
type PaletteError struct {
	IDs []int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("no tile image for ids %v", e.IDs)
}

func (e *PaletteError) Unwrap() error {
	return scroll.ErrMissingTile
}

// CheckPalette returns a *PaletteError when m uses tile ids the backends
// cannot draw. Such a course would render with holes in every frame.
func CheckPalette(m *tilemap.TileMap) error {
	missing := scroll.MissingIDs(scroll.Palette[image.Image](devtools.Palette()), m.IDs())
	if len(missing) == 0 {
		return nil
	}
	return &PaletteError{IDs: missing}
}

// Scene is what every backend draws: one course and the driver scrolling it
type Scene struct {
	Map    *tilemap.TileMap
	Driver *driver.Driver
	Config *config.Config

	// ScreenshotDir is where screenshot intents write PNGs. Empty means the working directory.
	ScreenshotDir string

	hud atomic.Bool
}

// NewScene ties a course and driver to the user's preferences. Speed
// changes made through the driver are saved to cfg.
func NewScene(m *tilemap.TileMap, d *driver.Driver, cfg *config.Config) *Scene {
	s := &Scene{Map: m, Driver: d, Config: cfg}
	s.hud.Store(cfg.ShowHUD)
	d.OnSpeedChange = func(speed float64) {
		if err := cfg.SetScrollSpeed(speed); err != nil {
			log.Printf("Warning: failed to save scroll speed: %v", err)
		}
	}
	return s
}

// HUDVisible reports whether backends should draw the status line
func (s *Scene) HUDVisible() bool {
	return s.hud.Load()
}

// Drag queues a drag of dy pixels measured on a viewport of the given width
func (s *Scene) Drag(dy, viewportWidth float64) {
	if viewportWidth <= 0 {
		return
	}
	s.Driver.Drag(dy * ReferenceWidth / viewportWidth)
}

// HandleIntent routes one input intent. Scroll intents go to the driver;
// screenshots are written at width x height. It reports whether the user
// asked to quit.
func (s *Scene) HandleIntent(intent input.Intent, width, height int) bool {
	switch intent.Action {
	case input.ActionNone:
	case input.ActionQuit:
		return true
	case input.ActionToggleHUD:
		show := !s.hud.Load()
		s.hud.Store(show)
		s.Driver.Invalidate()
		if err := s.Config.SetShowHUD(show); err != nil {
			log.Printf("Warning: failed to save HUD preference: %v", err)
		}
	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotPNG(s.ScreenshotDir, s.Map, ScaleOffset(s.Driver.Offset(), float64(width)), width, height)
		if path == "" {
			log.Printf("Screenshot failed: %v", err)
			break
		}
		log.Print(locale.Getf("SCREENSHOT_SAVED", path))
	default:
		s.Driver.Apply(intent)
	}
	return false
}

// Renderer is a frame-loop backend. Run blocks until the user quits or ctx is cancelled.
type Renderer interface {
	Name() string
	Run(ctx context.Context) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run runs the current renderer
func Run(ctx context.Context) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run(ctx)
}

// ErrorLog logs each distinct error message once. Render errors repeat every
// frame; the first occurrence is enough.
type ErrorLog struct {
	mu   sync.Mutex
	seen mapset.Set[string]
}

// NewErrorLog returns an empty ErrorLog
func NewErrorLog() *ErrorLog {
	return &ErrorLog{seen: mapset.New[string]()}
}

// Report logs err unless an error with the same message was already logged.
// It reports whether err was logged.
func (l *ErrorLog) Report(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	l.mu.Lock()
	if l.seen.Has(msg) {
		l.mu.Unlock()
		return false
	}
	l.seen.Put(msg)
	l.mu.Unlock()

	log.Print(locale.Getf("RENDER_FAILED", err))
	return true
}
