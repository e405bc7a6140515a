package devtools

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/engine/tilemap"
)

const frameDumpFilename = "frame.txt"

// DumpDrawCalls writes a human-readable dump of one frame: metadata, the
// visible rows and every recorded draw call.
func DumpDrawCalls[I scroll.Image](w io.Writer, r *scroll.Renderer[I], calls []scroll.DrawCall[I]) error {
	vp := r.Viewport()
	m := r.Map()

	fmt.Fprintln(w, "=== FRAME DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "viewport: %gx%g\n", vp.Width, vp.Height)
	fmt.Fprintf(w, "map: %dx%d\n", m.Width(), m.Height())
	fmt.Fprintf(w, "tile_size: %g\n", r.TileSize())
	fmt.Fprintf(w, "offset: %g\n", r.Offset())
	fmt.Fprintf(w, "row_position: %g\n", r.RowPosition())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rows (top of screen last) ---")
	for _, row := range r.Rows() {
		fmt.Fprintf(w, "y=%-10g source=%-4d %v\n", row.Y, row.Source, m.Row(row.Source))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "--- Draw calls (%d) ---\n", len(calls))
	for i, c := range calls {
		t := c.Transform
		b := c.Image.Bounds()
		fmt.Fprintf(w, "%4d: image=%dx%d src=%v scale=(%g,%g) dst=(%g,%g)\n",
			i, b.Dx(), b.Dy(), c.Src, t.A, t.D, t.TX, t.TY)
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// DumpFrameToFile records one frame of m at offset and writes its dump to
// frame.txt in dir. It returns the absolute path written.
func DumpFrameToFile(dir string, m *tilemap.TileMap, offset float64, w, h int) (string, error) {
	r, err := scroll.NewFromMap(m, Palette(), float64(w), float64(h), offset)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filepath.Join(dir, frameDumpFilename))
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rec := &scroll.Recorder[image.Image]{}
	renderErr := r.Render(rec)
	if err := DumpDrawCalls(f, r, rec.Calls); err != nil {
		return "", err
	}
	return absPath, renderErr
}
