package generator

import (
	"math/rand"

	"tuberoad/pkg/engine/tilemap"
	"tuberoad/pkg/game/course"
)

// LineWalkerGenerator walks the road down the course one row at a time,
// drifting and changing width at random, with occasional medians that fork
// the road in two
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

const (
	walkerMinWidth    = 2
	walkerMaxWidth    = 6
	branchProb        = 0.08
	medianMinLength   = 2
	medianMaxLength   = 5
	medianRoadMinimum = 5
)

// Generate creates a course of the given row count
func (g *LineWalkerGenerator) Generate(seed int64, rows int) (*tilemap.TileMap, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	rng := newRand(seed)
	c := newCanvas(rows)

	cur := span{left: 3, right: 6}
	median := 0
	for row := gradationRows; row < rows; row++ {
		if median > 0 {
			// The span holds while a median splits it so both lanes stay open
			c.carve(row, cur)
			c.fill(row, (cur.left+cur.right)/2, course.TileBlock)
			median--
			continue
		}

		next := g.step(rng, cur)
		if !next.overlaps(cur) {
			next = cur
		}
		c.carve(row, next)
		cur = next

		if next.width() >= medianRoadMinimum && rng.Float32() < branchProb {
			median = medianMinLength + rng.Intn(medianMaxLength-medianMinLength+1)
		}
	}
	return c.tileMap()
}

// step drifts the span by at most one column and grows or shrinks it by one
func (g *LineWalkerGenerator) step(rng *rand.Rand, s span) span {
	drift := rng.Intn(3) - 1
	s.left += drift
	s.right += drift

	switch rng.Intn(4) {
	case 0:
		if s.width() < walkerMaxWidth {
			s.right++
		}
	case 1:
		if s.width() > walkerMinWidth {
			s.left++
		}
	}
	return clampSpan(s, walkerMinWidth)
}
