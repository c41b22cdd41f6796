// Package spatial buckets items by their footprint on the ground plane so collision
// queries only visit nearby candidates.
package spatial

import (
	"fmt"
	"math"

	"solidworld/internal/physics"
)

// CellKey identifies a grid cell by integer coordinates.
type CellKey struct {
	X, Y int
}

// Grid is a dense uniform grid of CellsPerAxis x CellsPerAxis cells centred on the
// origin. Coordinates past the edge clamp into the border cells, so far-away items
// still index and query consistently (border cells just hold more false positives).
type Grid[T comparable] struct {
	CellSize     float32
	CellsPerAxis int
	cells        [][]T // 1D array: index = y*CellsPerAxis + x
	half         int
}

// NewGrid creates a grid. cellSize and cellsPerAxis must be positive.
func NewGrid[T comparable](cellSize float32, cellsPerAxis int) *Grid[T] {
	if cellSize <= 0 || cellsPerAxis <= 0 {
		panic(fmt.Sprintf("spatial: invalid grid %v x %d", cellSize, cellsPerAxis))
	}
	return &Grid[T]{
		CellSize:     cellSize,
		CellsPerAxis: cellsPerAxis,
		cells:        make([][]T, cellsPerAxis*cellsPerAxis),
		half:         cellsPerAxis / 2,
	}
}

// CellAt returns the clamped cell containing the point (x, y). NaN maps to cell 0.
func (g *Grid[T]) CellAt(x, y float32) CellKey {
	return CellKey{X: g.coord(x, 0), Y: g.coord(y, 0)}
}

// coord clamps in float64 before converting, so huge or infinite values land in a
// border cell instead of overflowing int. NaN yields nan.
func (g *Grid[T]) coord(v float32, nan int) int {
	c := math.Floor(float64(v)/float64(g.CellSize)) + float64(g.half)
	switch {
	case math.IsNaN(c):
		return nan
	case c < 0:
		return 0
	case c >= float64(g.CellsPerAxis):
		return g.CellsPerAxis - 1
	}
	return int(c)
}

// span returns the inclusive cell range covered by r. A NaN edge widens the range
// to the border on that side.
func (g *Grid[T]) span(r physics.Rect) (lo, hi CellKey) {
	last := g.CellsPerAxis - 1
	lo = CellKey{X: g.coord(r.Min.X, 0), Y: g.coord(r.Min.Y, 0)}
	hi = CellKey{X: g.coord(r.Max.X, last), Y: g.coord(r.Max.Y, last)}
	return lo, hi
}

// Insert adds item to every cell overlapped by bounds.
func (g *Grid[T]) Insert(item T, bounds physics.Rect) {
	lo, hi := g.span(bounds)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			idx := y*g.CellsPerAxis + x
			g.cells[idx] = append(g.cells[idx], item)
		}
	}
}

// Remove takes item out of every cell overlapped by bounds. bounds must be the value
// the item was inserted with; a cell that does not hold the item is a caller bug and
// panics.
func (g *Grid[T]) Remove(item T, bounds physics.Rect) {
	lo, hi := g.span(bounds)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			idx := y*g.CellsPerAxis + x
			if !g.removeFrom(idx, item) {
				panic(fmt.Sprintf("spatial: item %v not indexed in cell (%d, %d); removed with stale bounds?", item, x, y))
			}
		}
	}
}

// removeFrom swap-removes one occurrence of item from a cell.
func (g *Grid[T]) removeFrom(idx int, item T) bool {
	cell := g.cells[idx]
	for i, it := range cell {
		if it == item {
			last := len(cell) - 1
			cell[i] = cell[last]
			var zero T
			cell[last] = zero // drop the reference
			g.cells[idx] = cell[:last]
			return true
		}
	}
	return false
}

// Query appends every item in the cells overlapped by bounds to dst and returns it.
// An item spanning several cells is appended once per cell.
func (g *Grid[T]) Query(dst []T, bounds physics.Rect) []T {
	lo, hi := g.span(bounds)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			dst = append(dst, g.cells[y*g.CellsPerAxis+x]...)
		}
	}
	return dst
}
