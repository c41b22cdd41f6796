package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func lookDownY() Frustum {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Y: 10},
		Up:         rl.Vector3{Z: 1},
		Fovy:       90,
		Projection: rl.CameraPerspective,
	}
	return CameraFrustum(camera, 1, 1, 100)
}

func TestFrustumContains(t *testing.T) {
	f := lookDownY()

	assert.True(t, f.ContainsSphere(rl.Vector3{Y: 10}, 0))
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: -10}, 0), "behind the camera")
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: 10, Z: 20}, 0), "above the top plane")
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: 200}, 0), "past the far plane")

	assert.True(t, f.ContainsSphere(rl.Vector3{Y: -1}, 3))
	assert.False(t, f.ContainsSphere(rl.Vector3{Y: -10}, 3))

	assert.True(t, f.IntersectsAABB(NewAABBFromCenter(rl.Vector3{Y: 50}, rl.Vector3{X: 4, Y: 4, Z: 4})))
	assert.False(t, f.IntersectsAABB(NewAABBFromCenter(rl.Vector3{Y: -50}, rl.Vector3{X: 4, Y: 4, Z: 4})))
}

func TestFrustumBounds(t *testing.T) {
	f := lookDownY()
	b := f.Bounds()

	assert.InDelta(t, 1, b.Min.Y, 1e-2)
	assert.InDelta(t, 100, b.Max.Y, 1e-1)
	assert.InDelta(t, -100, b.Min.X, 1e-1)
	assert.InDelta(t, 100, b.Max.Z, 1e-1)
}

func TestCameraFrustumFollowsView(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 50, Z: 10},
		Target:     rl.Vector3{Z: 10},
		Up:         rl.Vector3{Z: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := CameraFrustum(camera, 16.0/9, 0.5, 200)

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 10}, 0), "target is in view")
	assert.False(t, f.ContainsSphere(rl.Vector3{X: 100, Z: 10}, 0), "behind the camera")
	assert.True(t, f.IntersectsAABB(NewAABBFromCenter(rl.Vector3{X: -100, Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2})))

	b := f.Bounds()
	assert.InDelta(t, 49.5, b.Max.X, 1e-3)
	assert.InDelta(t, -150, b.Min.X, 1e-2)

	t.Run("Orthographic", func(t *testing.T) {
		camera.Projection = rl.CameraOrthographic
		camera.Fovy = 20
		f := CameraFrustum(camera, 1, 0.5, 200)
		assert.True(t, f.ContainsSphere(rl.Vector3{X: -100, Y: 9, Z: 19}, 0))
		assert.False(t, f.ContainsSphere(rl.Vector3{X: -100, Y: 11, Z: 10}, 0))

		b := f.Bounds()
		assert.InDelta(t, 20, b.Max.Z, 1e-4)
		assert.InDelta(t, 0, b.Min.Z, 1e-4)
	})
}
