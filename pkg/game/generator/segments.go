package generator

import (
	"math/rand"

	"tuberoad/pkg/engine/tilemap"
)

// SegmentGenerator splits the course length recursively, like a one
// dimensional BSP tree, and gives each leaf segment its own road shape.
// Neighbouring segments are joined by a transition row.
type SegmentGenerator struct{}

// Name returns the name of this generator
func (g *SegmentGenerator) Name() string {
	return "Segments"
}

// segmentNode is a node in the split tree covering rows [start, end)
type segmentNode struct {
	start, end  int
	left, right *segmentNode
}

const (
	minSegmentLength = 4
	maxSegmentLength = 12
)

type segmentShape int

const (
	shapeStraight segmentShape = iota
	shapeNarrow
	shapeChicane
	shapeWide
	shapeCount
)

// Generate creates a course of the given row count
func (g *SegmentGenerator) Generate(seed int64, rows int) (*tilemap.TileMap, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	rng := newRand(seed)
	c := newCanvas(rows)

	root := &segmentNode{start: gradationRows, end: rows}
	splitSegments(rng, root)

	var prev *span
	for _, leaf := range collectLeaves(root) {
		last := carveSegment(rng, c, leaf, prev)
		prev = &last
	}
	return c.tileMap()
}

// splitSegments splits n until every leaf is at most maxSegmentLength rows
func splitSegments(rng *rand.Rand, n *segmentNode) {
	length := n.end - n.start
	if length <= maxSegmentLength || length < 2*minSegmentLength {
		return
	}
	at := n.start + minSegmentLength + rng.Intn(length-2*minSegmentLength+1)
	n.left = &segmentNode{start: n.start, end: at}
	n.right = &segmentNode{start: at, end: n.end}
	splitSegments(rng, n.left)
	splitSegments(rng, n.right)
}

// collectLeaves returns the leaves in row order
func collectLeaves(n *segmentNode) []*segmentNode {
	if n.left == nil {
		return []*segmentNode{n}
	}
	return append(collectLeaves(n.left), collectLeaves(n.right)...)
}

// carveSegment draws one leaf and returns the span of its last row. When
// prev is set the first row is widened to reach it.
func carveSegment(rng *rand.Rand, c *canvas, n *segmentNode, prev *span) span {
	shape := segmentShape(rng.Intn(int(shapeCount)))

	var s span
	switch shape {
	case shapeNarrow:
		left := minCol + rng.Intn(maxCol-minCol)
		s = clampSpan(span{left: left, right: left + 1}, 2)
	case shapeWide:
		s = span{left: minCol + rng.Intn(2), right: maxCol - rng.Intn(2)}
	default:
		left := minCol + rng.Intn(4)
		s = clampSpan(span{left: left, right: left + 2 + rng.Intn(3)}, 2)
	}

	dir := 1
	if rng.Intn(2) == 0 {
		dir = -1
	}
	for row := n.start; row < n.end; row++ {
		cur := s
		if row == n.start && prev != nil {
			cur = joinSpans(cur, *prev)
		}
		c.carve(row, cur)

		if shape == shapeChicane {
			// Slide one column per row, bouncing off the border
			next := span{left: s.left + dir, right: s.right + dir}
			if next.left < minCol || next.right > maxCol {
				dir = -dir
				next = span{left: s.left + dir, right: s.right + dir}
			}
			s = next
		}
	}

	// The last row carved is the span before the final slide
	if shape == shapeChicane {
		return span{left: s.left - dir, right: s.right - dir}
	}
	return s
}
