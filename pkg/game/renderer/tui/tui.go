// Package tui renders the scrolling course as coloured block characters in a terminal.
package tui

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"tuberoad/pkg/engine/input"
	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/engine/terminal"
	"tuberoad/pkg/game/locale"
	"tuberoad/pkg/game/renderer"
	"tuberoad/pkg/game/tiles"
)

// Terminal control sequences
const (
	escHome        = "\033[H"
	escClearScreen = "\033[2J"
	escAltScreen   = "\033[?1049h"
	escMainScreen  = "\033[?1049l"
	escHideCursor  = "\033[?25l"
	escShowCursor  = "\033[?25h"
)

// DefaultFrameInterval is the tick rate, matching a 60Hz display
const DefaultFrameInterval = time.Second / 60

// Options configures a TUIRenderer
type Options struct {
	// Frames stops the loop after this many frames; 0 runs until quit.
	Frames int

	// Out receives frames; nil means stdout.
	Out io.Writer

	// Interval between ticks; 0 means DefaultFrameInterval.
	Interval time.Duration

	// Size reports the terminal size in cells; nil means terminal.GetSize.
	Size func() (cols, rows int)

	// Keys enables raw-mode keyboard input when stdin is a terminal.
	Keys bool

	// Events, when set, supplies key events instead of the terminal reader.
	Events <-chan input.RawInput
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	scene  *renderer.Scene
	opts   Options
	styler *Styler
	errs   *renderer.ErrorLog

	grid *Grid
	road *scroll.Renderer[glyphTile]

	// vehicle is the styler index of the vehicle glyph, past the tile ids
	vehicle glyphTile

	colorHUD    color.Style
	colorPaused color.Style
	colorSubtle color.Style
}

// New creates a new TUI renderer for scene
func New(scene *renderer.Scene, opts Options) *TUIRenderer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultFrameInterval
	}
	if opts.Size == nil {
		opts.Size = terminal.GetSize
	}
	return &TUIRenderer{
		scene:       scene,
		opts:        opts,
		styler:      NewStyler(append(tiles.Glyphs(), tiles.VehicleGlyph())),
		vehicle:     glyphTile(len(tiles.Glyphs())),
		errs:        renderer.NewErrorLog(),
		colorHUD:    color.Style{color.FgLightWhite, color.BgBlack},
		colorPaused: color.Style{color.FgYellow, color.BgBlack, color.OpBold},
		colorSubtle: color.Style{color.FgGray},
	}
}

// Name implements renderer.Renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Run draws frames until the user quits, ctx is cancelled or the frame limit is reached
func (t *TUIRenderer) Run(ctx context.Context) error {
	keys := t.opts.Events
	if keys == nil && t.opts.Keys {
		kr, err := input.NewKeyReader()
		if err != nil {
			log.Printf("Keyboard disabled: %v", err)
		} else {
			defer kr.Close()
			keyCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go kr.Run(keyCtx)
			keys = kr.Events()
		}
	}

	fmt.Fprint(t.opts.Out, escAltScreen+escHideCursor+escClearScreen)
	defer fmt.Fprint(t.opts.Out, escShowCursor+escMainScreen)

	ticker := time.NewTicker(t.opts.Interval)
	defer ticker.Stop()

	// Only ticker wakeups advance the scroll and count as frames.
	for frame := 0; t.opts.Frames == 0 || frame < t.opts.Frames; {
		if err := t.drawFrame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case ev := <-keys:
			cols, rows := t.opts.Size()
			if t.scene.HandleIntent(input.Resolve(ev), cols, rows) {
				return nil
			}
			continue
		case <-ticker.C:
		}
		t.scene.Driver.Tick()
		frame++
	}
	return nil
}

// drawFrame redraws the terminal if the driver or terminal size changed
func (t *TUIRenderer) drawFrame() error {
	cols, rows := t.opts.Size()
	if t.scene.HUDVisible() && rows > 1 {
		rows--
	}
	if t.grid == nil || t.grid.Cols != cols || t.grid.Rows != rows {
		if err := t.resize(cols, rows); err != nil {
			return err
		}
	}

	snap := t.scene.Driver.Snapshot()
	if !snap.NeedsRedraw {
		return nil
	}

	vw, vh := t.grid.ViewportSize()
	t.grid.Clear()
	t.road.SetOffset(renderer.ScaleOffset(snap.Offset, vw))
	if err := t.road.Render(t.grid); err != nil {
		t.errs.Report(err)
	}
	sprite := image.Rect(0, 0, tiles.VehicleSize, tiles.VehicleSize)
	t.grid.DrawImage(t.vehicle, sprite, renderer.VehicleTransform(sprite, vw, vh, snap.VehicleDY))

	var sb strings.Builder
	sb.WriteString(escHome)
	t.styler.Render(&sb, t.grid)
	if t.scene.HUDVisible() {
		t.writeHUD(&sb, snap.Offset, snap.Speed, snap.Paused)
	}
	_, err := io.WriteString(t.opts.Out, sb.String())
	return err
}

func (t *TUIRenderer) resize(cols, rows int) error {
	grid := NewGrid(cols, rows)
	vw, vh := grid.ViewportSize()
	road, err := scroll.NewFromMap(t.scene.Map, palette(len(tiles.Glyphs())), vw, vh, 0)
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}
	t.grid, t.road = grid, road
	t.scene.Driver.Invalidate()
	return nil
}

// writeHUD writes the status line, dropping the help text and then
// truncating the status so the line never wraps. Widths are in terminal
// columns; CJK translations take two per rune.
func (t *TUIRenderer) writeHUD(sb *strings.Builder, offset, speed float64, paused bool) {
	width := t.grid.Cols

	status := fmt.Sprintf(" %s: %.0f  %s: %.2f  %s: %.0f ",
		locale.Get("HUD_OFFSET"), offset,
		locale.Get("HUD_ROW"), t.road.RowPosition(),
		locale.Get("HUD_SPEED"), speed)
	var pausedLabel string
	if paused {
		pausedLabel = " " + locale.Get("HUD_PAUSED") + " "
	}
	help := " " + locale.Get("HUD_HELP")

	used := runewidth.StringWidth(status) + runewidth.StringWidth(pausedLabel)
	if used > width {
		status = runewidth.Truncate(status, max(0, width-runewidth.StringWidth(pausedLabel)), "")
		if runewidth.StringWidth(pausedLabel) > width {
			pausedLabel = ""
			status = runewidth.Truncate(status, width, "")
		}
		help = ""
	} else if used+runewidth.StringWidth(help) > width {
		help = runewidth.Truncate(help, width-used, "")
	}

	sb.WriteString(t.colorHUD.Sprint(status))
	if pausedLabel != "" {
		sb.WriteString(t.colorPaused.Sprint(pausedLabel))
	}
	if help != "" {
		sb.WriteString(t.colorSubtle.Sprint(help))
	}
	// Erase what a longer previous line left behind
	sb.WriteString("\033[K")
}
