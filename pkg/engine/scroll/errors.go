package scroll

import (
	"errors"
	"fmt"

	"tuberoad/pkg/engine/tilemap"
)

var (
	// ErrInvalidMapShape is returned by New when the cells do not form a rectangular grid.
	ErrInvalidMapShape = tilemap.ErrInvalidMapShape

	// ErrInvalidViewport is returned by New for a non-positive or non-finite viewport.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrMissingTile matches every MissingTileError.
	ErrMissingTile = errors.New("missing tile")

	// ErrInvalidOffset is returned by Render when the scroll offset is NaN or infinite.
	ErrInvalidOffset = errors.New("invalid scroll offset")
)

// MissingTileError reports one map cell whose tile id has no palette entry
type MissingTileError struct {
	TileID int
	Row    int // source map row
	Col    int
}

func (e *MissingTileError) Error() string {
	return fmt.Sprintf("missing tile: id %d at row %d, col %d", e.TileID, e.Row, e.Col)
}

func (e *MissingTileError) Unwrap() error {
	return ErrMissingTile
}
