package tui

import (
	"bytes"
	"context"
	"image"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"tuberoad/pkg/engine/input"
	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/game/config"
	"tuberoad/pkg/game/course"
	"tuberoad/pkg/game/driver"
	"tuberoad/pkg/game/locale"
	"tuberoad/pkg/game/renderer"
	"tuberoad/pkg/game/tiles"
)

var unit = image.Rect(0, 0, 1, 1)

func TestGrid_DrawImageClips(t *testing.T) {
	tests := []struct {
		name string
		t    scroll.Transform
		want []int
	}{
		{"inside", scroll.ScaleTranslate(2, 2, 1, 0), []int{-1, 2, 2, -1, -1, -1, -1, -1}},
		{"above top edge", scroll.ScaleTranslate(2, 2, 0, -2), []int{-1, -1, -1, -1, -1, -1, -1, -1}},
		{"straddles top edge", scroll.ScaleTranslate(2, 4, 1, -2), []int{-1, 2, 2, -1, -1, -1, -1, -1}},
		{"past right edge", scroll.ScaleTranslate(8, 4, 3, 0), []int{-1, -1, -1, 2, -1, -1, -1, 2}},
		{"below bottom", scroll.ScaleTranslate(4, 2, 0, 4), []int{-1, -1, -1, -1, -1, -1, -1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4, 2)
			g.DrawImage(glyphTile(2), unit, tt.t)
			if !reflect.DeepEqual(g.Cells, tt.want) {
				t.Errorf("cells = %v, want %v", g.Cells, tt.want)
			}
		})
	}
}

func TestGrid_RendersScrolledCourse(t *testing.T) {
	tests := []struct {
		offset float64
		want   []int
	}{
		{0, []int{0, 0, 1, 1, 1, 1, 0, 0}},
		// half a tile: the top row is clipped away and the rows move down
		{1, []int{1, 1, 0, 0, 0, 0, 1, 1}},
	}
	for _, tt := range tests {
		g := NewGrid(4, 2)
		vw, vh := g.ViewportSize()
		r, err := scroll.New([]int{0, 1, 1, 0}, 2, palette(2), vw, vh, tt.offset)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := r.Render(g); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !reflect.DeepEqual(g.Cells, tt.want) {
			t.Errorf("offset %v: cells = %v, want %v", tt.offset, g.Cells, tt.want)
		}
	}
}

func TestStyler_Render(t *testing.T) {
	g := NewGrid(3, 2)
	g.Cells = []int{0, 0, -1, 1, 2, 2}

	var sb strings.Builder
	NewStyler(tiles.Glyphs()).Render(&sb, g)

	if got, want := color.ClearCode(sb.String()), "▓▓ \r\n░▒▒\r\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRun_FrameLimit(t *testing.T) {
	if err := locale.Set("en"); err != nil {
		t.Fatal(err)
	}
	m := course.Tube()
	d := driver.New(course.StartOffset(m, renderer.ReferenceWidth), 16)
	scene := renderer.NewScene(m, d, config.Default())

	var out bytes.Buffer
	r := New(scene, Options{
		Frames:   3,
		Out:      &out,
		Interval: time.Millisecond,
		Size:     func() (int, int) { return 40, 12 },
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got, want := d.Offset(), course.StartOffset(m, renderer.ReferenceWidth)-3*16; got != want {
		t.Errorf("offset after 3 frames = %v, want %v", got, want)
	}

	text := color.ClearCode(out.String())
	for _, want := range []string{escAltScreen, "▓", "▲", "Offset", escShowCursor} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(text, escHome); n != 3 {
		t.Errorf("frames drawn = %d, want 3", n)
	}
}

func TestRun_KeysDoNotAdvanceScroll(t *testing.T) {
	m := course.Tube()
	start := course.StartOffset(m, renderer.ReferenceWidth)
	d := driver.New(start, 16)
	scene := renderer.NewScene(m, d, config.Default())

	events := make(chan input.RawInput)
	r := New(scene, Options{
		Out:      &bytes.Buffer{},
		Interval: time.Hour,
		Size:     func() (int, int) { return 20, 10 },
		Events:   events,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for _, code := range []string{"k", "k", "x"} {
			events <- input.RawInput{Device: input.DeviceTerminal, Code: code}
		}
		cancel()
	}()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	snap := d.Snapshot()
	if snap.Offset != start {
		t.Errorf("offset after key presses = %v, want %v", snap.Offset, start)
	}
	if want := 16 + 2*driver.SpeedStep; snap.Speed != want {
		t.Errorf("speed = %v, want %v", snap.Speed, want)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	m := course.Tube()
	scene := renderer.NewScene(m, driver.New(0, 16), config.Default())
	r := New(scene, Options{
		Out:      &bytes.Buffer{},
		Interval: time.Hour,
		Size:     func() (int, int) { return 20, 10 },
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != nil {
		t.Errorf("Run: %v", err)
	}
}
