package course

// Tile ids used by the built-in course
const (
	TileBlock     = 0
	TileRoad      = 1
	TileGradation = 2
)

// TubeWidth is the column count of the built-in course
const TubeWidth = 10

// tubeCells is the built-in course, row-major. The first four rows are
// gradation, which the scroll wraps into after the last chicane.
var tubeCells = []int{
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	0, 0, 1, 1, 1, 1, 1, 1, 0, 0,
	0, 0, 0, 1, 1, 1, 1, 0, 0, 0,
	0, 0, 0, 0, 1, 1, 0, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 1, 0, 0, 0,

	0, 1, 1, 1, 0, 0, 1, 0, 0, 0,
	0, 1, 1, 1, 0, 0, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 0, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 0, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0, 0, 0,
	0, 1, 1, 0, 1, 1, 0, 0, 0, 0,
	0, 1, 1, 0, 1, 1, 0, 0, 0, 0,
	0, 1, 1, 0, 1, 1, 0, 0, 0, 0,
	0, 1, 1, 0, 1, 1, 1, 0, 0, 0,

	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,

	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,

	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,

	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,

	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,

	1, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	0, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 0, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 0,
}
