package spatial

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidworld/internal/physics"
)

func contains(items []int, want int) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

func TestGridInsertQueryRemove(t *testing.T) {
	g := NewGrid[int](10, 8)

	a := physics.NewRect(-5, -5, 10, 10) // spans four cells around the origin
	b := physics.NewRect(25, 25, 2, 2)

	g.Insert(1, a)
	g.Insert(2, b)

	got := g.Query(nil, physics.NewRect(-1, -1, 2, 2))
	assert.True(t, contains(got, 1))
	assert.False(t, contains(got, 2))
	assert.Len(t, got, 4, "item in four cells is reported once per cell")

	got = g.Query(nil, b)
	assert.Equal(t, []int{2}, got)

	g.Remove(1, a)
	assert.Empty(t, g.Query(nil, physics.NewRect(-1, -1, 2, 2)))
	assert.Equal(t, []int{2}, g.Query(nil, b))
}

func TestGridClampsOutOfRange(t *testing.T) {
	g := NewGrid[int](10, 4) // covers [-20, 20) per axis

	far := physics.NewRect(1000, -1000, 1, 1)
	g.Insert(7, far)

	assert.Equal(t, CellKey{X: 3, Y: 0}, g.CellAt(1000, -1000))
	assert.Equal(t, []int{7}, g.Query(nil, physics.NewRect(15, -19, 1, 1)))

	// any query touching the border cell sees the item
	assert.True(t, contains(g.Query(nil, physics.NewRect(15, -19, 1, 1)), 7))
	assert.False(t, contains(g.Query(nil, physics.NewRect(-19, 15, 1, 1)), 7))

	g.Remove(7, far)
	assert.Empty(t, g.Query(nil, physics.NewRect(15, -19, 1, 1)))
}

func TestGridExtremeCoordinates(t *testing.T) {
	g := NewGrid[int](10, 4)
	g.Insert(1, physics.NewRect(-5, -5, 1, 1))

	assert.Equal(t, CellKey{X: 3, Y: 0}, g.CellAt(math.MaxFloat32, -math.MaxFloat32))
	assert.Equal(t, CellKey{X: 3, Y: 3}, g.CellAt(float32(math.Inf(1)), 1e30))
	assert.Equal(t, CellKey{X: 0, Y: 0}, g.CellAt(float32(math.NaN()), float32(math.Inf(-1))))

	huge := physics.Rect{Min: rl.Vector2{X: -5, Y: -5}, Max: rl.Vector2{X: 1e30, Y: -4}}
	assert.Equal(t, []int{1}, g.Query(nil, huge))

	nan := float32(math.NaN())
	spanNaN := physics.Rect{Min: rl.Vector2{X: -5, Y: nan}, Max: rl.Vector2{X: -4, Y: nan}}
	assert.Equal(t, []int{1}, g.Query(nil, spanNaN), "a NaN edge widens to the border")
}

func TestGridRemoveStaleBoundsPanics(t *testing.T) {
	g := NewGrid[int](10, 8)
	g.Insert(1, physics.NewRect(0, 0, 1, 1))

	assert.Panics(t, func() {
		g.Remove(1, physics.NewRect(30, 30, 1, 1))
	})
}

func TestGridDisjointQuery(t *testing.T) {
	g := NewGrid[int](10, 16)
	for i := 0; i < 5; i++ {
		g.Insert(i, physics.NewRect(float32(i*20-50), 0, 5, 5))
	}

	got := g.Query(nil, physics.NewRect(-50, 0, 5, 5))
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0])

	// appends to the caller's buffer
	buf := []int{99}
	buf = g.Query(buf, physics.NewRect(30, 0, 1, 1))
	assert.Equal(t, []int{99, 4}, buf)
}

func TestNewGridRejectsInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewGrid[int](0, 10) })
	assert.Panics(t, func() { NewGrid[int](10, 0) })
}

func TestIndexUpdate(t *testing.T) {
	idx := NewIndex[string](10, 8)

	start := physics.NewRect(-15, -15, 2, 2)
	idx.Update("crate", start)
	assert.Equal(t, []string{"crate"}, idx.Query(nil, start))

	moved := physics.NewRect(12, 12, 2, 2)
	idx.Update("crate", moved)
	assert.Empty(t, idx.Query(nil, start), "old cells are cleared using remembered bounds")
	assert.Equal(t, []string{"crate"}, idx.Query(nil, moved))

	r, ok := idx.Bounds("crate")
	require.True(t, ok)
	assert.Equal(t, moved, r)
	assert.Equal(t, 1, idx.Len())

	idx.Delete("crate")
	idx.Delete("crate")
	assert.Empty(t, idx.Query(nil, moved))
	assert.Equal(t, 0, idx.Len())
}
