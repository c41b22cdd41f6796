package spatial

import (
	"solidworld/internal/physics"
)

// Index wraps a Grid and remembers the bounds each item was indexed with, so moving
// an item is a single Update instead of a remove/insert pair the caller must keep in
// sync.
type Index[T comparable] struct {
	grid    *Grid[T]
	entries map[T]physics.Rect
}

func NewIndex[T comparable](cellSize float32, cellsPerAxis int) *Index[T] {
	return &Index[T]{
		grid:    NewGrid[T](cellSize, cellsPerAxis),
		entries: make(map[T]physics.Rect),
	}
}

// Update indexes item under bounds, first removing it from the cells of the bounds it
// was last indexed with.
func (idx *Index[T]) Update(item T, bounds physics.Rect) {
	if old, ok := idx.entries[item]; ok {
		idx.grid.Remove(item, old)
	}
	idx.grid.Insert(item, bounds)
	idx.entries[item] = bounds
}

// Delete removes item using its last-indexed bounds. Unknown items are ignored.
func (idx *Index[T]) Delete(item T) {
	old, ok := idx.entries[item]
	if !ok {
		return
	}
	idx.grid.Remove(item, old)
	delete(idx.entries, item)
}

// Bounds returns the bounds item is currently indexed with.
func (idx *Index[T]) Bounds(item T) (physics.Rect, bool) {
	r, ok := idx.entries[item]
	return r, ok
}

func (idx *Index[T]) Query(dst []T, bounds physics.Rect) []T {
	return idx.grid.Query(dst, bounds)
}

func (idx *Index[T]) Len() int {
	return len(idx.entries)
}
