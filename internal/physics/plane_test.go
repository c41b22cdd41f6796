package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneFromVertices(t *testing.T) {
	p := NewPlaneFromVertices(
		rl.Vector3{X: -1, Y: -1, Z: 2},
		rl.Vector3{X: 1, Y: -1, Z: 2},
		rl.Vector3{X: 1, Y: 1, Z: 2},
	)
	assert.InDelta(t, 1, p.Normal.Z, 1e-6)
	assert.InDelta(t, 3, p.Distance(rl.Vector3{Z: 5}), 1e-6)
	assert.InDelta(t, -2, p.Distance(rl.Vector3{}), 1e-6)

	degenerate := NewPlaneFromVertices(rl.Vector3{}, rl.Vector3{}, rl.Vector3{X: 1})
	assert.True(t, degenerate.Degenerate())
}

func TestPlaneTransform(t *testing.T) {
	floor := NewPlane(rl.Vector3{Z: 1}, rl.Vector3{})

	m := ComposeTransform(
		rl.Vector3{Z: 4},
		rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/2),
		rl.Vector3{X: 1, Y: 1, Z: 1},
	)
	wall := floor.Transform(m)

	// +Z rotated a quarter turn about X points along -Y
	assert.InDelta(t, -1, wall.Normal.Y, 1e-5)
	assert.InDelta(t, 0, wall.Distance(rl.Vector3{X: 7, Z: 4}), 1e-5)

	t.Run("NonUniformScale", func(t *testing.T) {
		slope := NewPlaneFromVertices(rl.Vector3{}, rl.Vector3{X: 1, Z: 1}, rl.Vector3{Y: 1})
		stretch := ComposeTransform(rl.Vector3{}, rl.QuaternionIdentity(), rl.Vector3{X: 2, Y: 1, Z: 1})
		out := slope.Transform(stretch)

		// the transformed plane still contains the transformed vertices
		for _, v := range []rl.Vector3{{}, {X: 1, Z: 1}, {Y: 1}} {
			assert.InDelta(t, 0, out.Distance(rl.Vector3Transform(v, stretch)), 1e-5)
		}
		assert.InDelta(t, 1, rl.Vector3Length(out.Normal), 1e-5)
	})
}

func TestPlaneTriangleIntersection(t *testing.T) {
	ground := NewPlane(rl.Vector3{Z: 1}, rl.Vector3{Z: 1})

	t.Run("Crossing", func(t *testing.T) {
		p0, p1, n := PlaneTriangleIntersection(ground,
			rl.Vector3{X: 0, Y: -1, Z: 0},
			rl.Vector3{X: 0, Y: 1, Z: 0},
			rl.Vector3{X: 0, Y: 0, Z: 2},
		)
		require.Equal(t, 2, n)
		assert.InDelta(t, 1, p0.Z, 1e-6)
		assert.InDelta(t, 1, p1.Z, 1e-6)
		assert.InDelta(t, 1, absf(p0.Y-p1.Y), 1e-5)
	})

	t.Run("Miss", func(t *testing.T) {
		_, _, n := PlaneTriangleIntersection(ground,
			rl.Vector3{Z: 3}, rl.Vector3{X: 1, Z: 3}, rl.Vector3{Y: 1, Z: 4})
		assert.Equal(t, 0, n)
	})

	t.Run("VertexTouch", func(t *testing.T) {
		p0, _, n := PlaneTriangleIntersection(ground,
			rl.Vector3{Z: 1}, rl.Vector3{X: 1, Z: 3}, rl.Vector3{Y: 1, Z: 4})
		require.Equal(t, 1, n)
		assert.InDelta(t, 1, p0.Z, 1e-6)
	})

	t.Run("Coplanar", func(t *testing.T) {
		_, _, n := PlaneTriangleIntersection(ground,
			rl.Vector3{Z: 1}, rl.Vector3{X: 1, Z: 1}, rl.Vector3{Y: 1, Z: 1})
		assert.Equal(t, 0, n)
	})
}

func TestLine2ClosestPoint(t *testing.T) {
	l := Line2{From: rl.Vector2{X: 0, Y: -5}, To: rl.Vector2{X: 0, Y: 5}}

	mid := l.ClosestPoint(rl.Vector2{X: 3, Y: 2})
	assert.InDelta(t, 0, mid.X, 1e-6)
	assert.InDelta(t, 2, mid.Y, 1e-5)
	assert.Equal(t, rl.Vector2{X: 0, Y: 5}, l.ClosestPoint(rl.Vector2{X: 1, Y: 9}))

	point := Line2{From: rl.Vector2{X: 1, Y: 1}, To: rl.Vector2{X: 1, Y: 1}}
	assert.Equal(t, rl.Vector2{X: 1, Y: 1}, point.ClosestPoint(rl.Vector2{X: 4, Y: 4}))
}
