// Package course provides the tile maps the road scrolls over: the built-in
// tube course and a plain-text loader for custom courses.
package course

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tuberoad/pkg/engine/tilemap"
)

// ErrRaggedRow is returned when a course file's rows differ in length
var ErrRaggedRow = errors.New("ragged course row")

// Tube returns the built-in course
func Tube() *tilemap.TileMap {
	m, err := tilemap.New(tubeCells, TubeWidth)
	if err != nil {
		panic(fmt.Sprintf("built-in course is malformed: %v", err))
	}
	return m
}

// StartOffset returns the scroll offset that shows the course from its top:
// one full map height in pixels for tiles of viewportWidth/mapWidth.
func StartOffset(m *tilemap.TileMap, viewportWidth float64) float64 {
	return float64(m.Height()) * (viewportWidth / float64(m.Width()))
}

// Parse reads a course: one map row per line, tile ids separated by commas
// and/or whitespace. Blank lines and text after '#' are ignored.
func Parse(r io.Reader) (*tilemap.TileMap, error) {
	var cells []int
	width := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("line %d: %w: %d tiles, want %d", lineNo, ErrRaggedRow, len(fields), width)
		}

		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad tile id %q: %w", lineNo, f, err)
			}
			cells = append(cells, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read course: %w", err)
	}

	return tilemap.New(cells, width)
}

// LoadFile parses the course at path
func LoadFile(path string) (*tilemap.TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Format writes m in the format Parse reads
func Format(w io.Writer, m *tilemap.TileMap) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < m.Height(); row++ {
		ids := m.Row(row)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
