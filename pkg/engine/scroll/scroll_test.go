package scroll

import (
	"errors"
	"image"
	"math"
	"reflect"
	"testing"

	"tuberoad/pkg/engine/tilemap"
)

// testTile is a palette image of arbitrary native size
type testTile struct {
	id   int
	w, h int
}

func (t testTile) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

func squarePalette(n, size int) []testTile {
	p := make([]testTile, n)
	for i := range p {
		p[i] = testTile{id: i, w: size, h: size}
	}
	return p
}

type placed struct {
	id   int
	x, y float64
}

func render(t *testing.T, r *Renderer[testTile]) []placed {
	t.Helper()
	var rec Recorder[testTile]
	if err := r.Render(&rec); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := make([]placed, len(rec.Calls))
	for i, c := range rec.Calls {
		out[i] = placed{id: c.Image.id, x: c.Transform.TX, y: c.Transform.TY}
	}
	return out
}

func TestRender_CanonicalTwoByTwo(t *testing.T) {
	r, err := New([]int{0, 1, 2, 3}, 2, squarePalette(4, 32), 64, 64, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.TileSize() != 32 {
		t.Fatalf("TileSize = %v, want 32", r.TileSize())
	}

	got := render(t, r)
	want := []placed{
		// rowIndex 0 starts at the viewport's bottom edge, entirely below it
		{0, 0, 64}, {1, 32, 64},
		// wrapped to the last map row
		{2, 0, 32}, {3, 32, 32},
		{0, 0, 0}, {1, 32, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("draw calls = %v, want %v", got, want)
	}

	visible := 0
	for _, row := range r.Rows() {
		if row.Y < 64 && row.Y+32 > 0 {
			visible++
		}
	}
	if visible != 2 {
		t.Errorf("visible rows = %d, want 2", visible)
	}
}

func TestRowPosition_AlwaysInRange(t *testing.T) {
	offsets := []float64{
		0, 1, -1, 31.999, -31.999, 64, -64, 1e9, -1e9, 123456.789, -987654.321,
		math.MaxInt32, -math.MaxInt32, 1e15, -1e15, -1e-300,
	}
	for _, height := range []int{1, 2, 7, 89} {
		for _, off := range offsets {
			pos := RowPosition(off, 32, height)
			if pos < 0 || pos >= float64(height) {
				t.Errorf("RowPosition(%v, 32, %d) = %v, want in [0, %d)", off, height, pos, height)
			}
		}
	}
}

func TestRender_NegativeOffsetWraps(t *testing.T) {
	r, err := New([]int{0, 1, 2, 3}, 2, squarePalette(4, 32), 64, 64, -1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rows := r.Rows()
	want := []Row{{Y: 33, Source: 1}, {Y: 1, Source: 0}, {Y: -31, Source: 1}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Rows() = %v, want %v", rows, want)
	}
}

func TestRender_Periodic(t *testing.T) {
	cells := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	const tileSize = 32.0
	mapPeriod := 3 * tileSize

	for _, off := range []float64{0, 5, 17.5, -40, 1000.25, -3000.75} {
		r, err := New(cells, 3, squarePalette(9, 16), 96, 100, off)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		base := render(t, r)

		for _, k := range []float64{-5, -1, 1, 2, 11} {
			r.SetOffset(off + k*mapPeriod)
			if got := render(t, r); !reflect.DeepEqual(got, base) {
				t.Errorf("offset %v vs %v+%v*period: draw calls differ\n got %v\nwant %v", off+k*mapPeriod, off, k, got, base)
			}
		}
	}
}

func TestRender_AlignedOffsetHasNoPartialRows(t *testing.T) {
	r, err := New([]int{0, 1, 2, 3, 4, 5}, 2, squarePalette(6, 8), 64, 100, 5*32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, row := range r.Rows() {
		d := (100 - row.Y) / 32
		if d != math.Trunc(d) {
			t.Errorf("row at y=%v is not a whole number of tiles from the bottom edge", row.Y)
		}
	}
}

func TestRender_ScrollByOneTile(t *testing.T) {
	r, err := New(make([]int, 3*5), 3, squarePalette(1, 32), 96, 100, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := r.Rows()
	posBefore := r.RowPosition()

	r.ScrollBy(r.TileSize())
	after := r.Rows()
	posAfter := r.RowPosition()

	if got := tilemap.Mod(int(math.Floor(posAfter))-int(math.Floor(posBefore)), 5); got != 1 {
		t.Errorf("row index advanced by %d, want 1", got)
	}
	if math.Abs((posAfter-math.Floor(posAfter))-(posBefore-math.Floor(posBefore))) > 1e-9 {
		t.Errorf("fractional part changed: %v -> %v", posBefore, posAfter)
	}

	// Every source row moves up by exactly one tile.
	for i := 0; i+1 < len(after) && i < len(before); i++ {
		if after[i+1].Source != before[i].Source {
			t.Fatalf("after[%d].Source = %d, want %d", i+1, after[i+1].Source, before[i].Source)
		}
		if after[i+1].Y != before[i].Y-r.TileSize() {
			t.Errorf("source row %d moved from y=%v to y=%v, want %v", before[i].Source, before[i].Y, after[i+1].Y, before[i].Y-r.TileSize())
		}
	}
}

func TestRender_NonSquareViewport(t *testing.T) {
	cells := make([]int, 10*89)
	r, err := New(cells, 10, squarePalette(1, 20), 640, 480, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rows := r.Rows()
	if len(rows) != 9 {
		t.Fatalf("len(Rows()) = %d, want 9", len(rows))
	}
	if rows[0].Y != 480 || rows[len(rows)-1].Y != -32 {
		t.Errorf("rows span y=%v..%v, want 480..-32", rows[0].Y, rows[len(rows)-1].Y)
	}
	if rows[1].Source != 88 {
		t.Errorf("second row source = %d, want 88", rows[1].Source)
	}
}

func TestRender_StretchesImagesToCell(t *testing.T) {
	palette := []testTile{{id: 0, w: 16, h: 8}, {id: 1, w: 64, h: 128}}
	r, err := New([]int{0, 1}, 2, palette, 64, 32, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var rec Recorder[testTile]
	if err := r.Render(&rec); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, c := range rec.Calls {
		w, h := c.Image.w, c.Image.h
		if c.Src != image.Rect(0, 0, w, h) {
			t.Errorf("src = %v, want full image %dx%d", c.Src, w, h)
		}
		if got := c.Transform.A * float64(w); got != 32 {
			t.Errorf("tile %d: scaled width = %v, want 32", c.Image.id, got)
		}
		if got := c.Transform.D * float64(h); got != 32 {
			t.Errorf("tile %d: scaled height = %v, want 32", c.Image.id, got)
		}
		if c.Transform.B != 0 || c.Transform.C != 0 {
			t.Errorf("tile %d: unexpected shear %+v", c.Image.id, c.Transform)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	r, err := New([]int{0, 1, 2, 3, 4, 5}, 3, squarePalette(6, 10), 90, 75, -47.25)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := render(t, r)
	second := render(t, r)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Render differs:\n%v\n%v", first, second)
	}
	if r.Offset() != -47.25 {
		t.Errorf("Render changed offset to %v", r.Offset())
	}
}

func TestNew_InvalidMapShape(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		width int
	}{
		{"not divisible", []int{0, 1, 2, 3, 4}, 2},
		{"zero width", []int{0, 1}, 0},
		{"negative width", []int{0, 1}, -2},
		{"no cells", nil, 3},
		{"negative id", []int{0, -1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.cells, tt.width, squarePalette(2, 8), 64, 64, 0)
			if !errors.Is(err, ErrInvalidMapShape) {
				t.Errorf("New error = %v, want ErrInvalidMapShape", err)
			}
			if r != nil {
				t.Error("New returned a renderer alongside the error")
			}
		})
	}
}

func TestNew_InvalidViewport(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 64},
		{"negative width", -64, 64},
		{"NaN width", math.NaN(), 64},
		{"infinite width", math.Inf(1), 64},
		{"zero height", 64, 0},
		{"negative height", 64, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]int{0, 1}, 2, squarePalette(2, 8), tt.w, tt.h, 0)
			if !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("New error = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestRender_MissingTileReportedPerTile(t *testing.T) {
	// id 5 appears once per map row; three rows are drawn
	r, err := New([]int{0, 5, 5, 1}, 2, squarePalette(2, 8), 64, 64, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var rec Recorder[testTile]
	err = r.Render(&rec)
	if !errors.Is(err, ErrMissingTile) {
		t.Fatalf("Render error = %v, want ErrMissingTile", err)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Render error %T does not carry individual failures", err)
	}
	errs := joined.Unwrap()
	if len(errs) != 3 {
		t.Errorf("got %d missing-tile errors, want 3", len(errs))
	}
	for _, e := range errs {
		var mt *MissingTileError
		if !errors.As(e, &mt) {
			t.Fatalf("error %v is not a *MissingTileError", e)
		}
		if mt.TileID != 5 {
			t.Errorf("TileID = %d, want 5", mt.TileID)
		}
	}

	// the resolvable half of every row is still drawn
	if len(rec.Calls) != 3 {
		t.Errorf("drew %d tiles, want 3", len(rec.Calls))
	}
}

func TestRender_NilPaletteEntryIsMissing(t *testing.T) {
	palette := []*testTile{{id: 0, w: 8, h: 8}, nil}
	r, err := New([]int{0, 1}, 2, palette, 64, 32, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var rec Recorder[*testTile]
	if err := r.Render(&rec); !errors.Is(err, ErrMissingTile) {
		t.Errorf("Render error = %v, want ErrMissingTile", err)
	}
}

func TestRender_NonFiniteOffset(t *testing.T) {
	r, err := New([]int{0, 1}, 2, squarePalette(2, 8), 64, 64, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, off := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		r.SetOffset(off)
		var rec Recorder[testTile]
		if err := r.Render(&rec); !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("Render(offset=%v) error = %v, want ErrInvalidOffset", off, err)
		}
		if len(rec.Calls) != 0 {
			t.Errorf("Render(offset=%v) drew %d tiles", off, len(rec.Calls))
		}
	}
}

func TestMissingIDs(t *testing.T) {
	m, err := tilemap.New([]int{0, 3, 1, 7, 3, 0}, 3)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	got := MissingIDs(Palette[testTile](squarePalette(2, 8)), m.IDs())
	if want := []int{3, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("MissingIDs = %v, want %v", got, want)
	}
}
