// Package camera is the free-fly debug camera used by the viewer. Z is up.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees around Z, 0 looks along +X
	Pitch     float32 // degrees above the horizon
	MoveSpeed float32
	LookSpeed float32
	Fovy      float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       135.0,
		Pitch:     -30.0,
		MoveSpeed: 120.0, // units per second
		LookSpeed: 0.15,
		Fovy:      60,
	}
}

// LookAt points the camera at target.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	d := rl.Vector3Subtract(target, c.Position)
	if rl.Vector3LengthSqr(d) == 0 {
		return
	}
	d = rl.Vector3Normalize(d)
	c.Yaw = float32(math.Atan2(float64(d.Y), float64(d.X))) * rl.Rad2deg
	c.Pitch = float32(math.Asin(float64(d.Z))) * rl.Rad2deg
}

// Look turns the camera by a mouse delta in pixels.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw -= dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move flies along the view direction. forward, right and up are in [-1, 1].
func (c *FlyCamera) Move(forward, right, up, deltaTime float32) {
	fwd, rgt := c.Directions()
	dir := rl.Vector3Add(rl.Vector3Scale(fwd, forward), rl.Vector3Scale(rgt, right))
	dir.Z += up

	// Normalize diagonal movement so you don't go faster diagonally
	if l := rl.Vector3Length(dir); l > 1 {
		dir = rl.Vector3Scale(dir, 1/l)
	}
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.MoveSpeed*deltaTime))
}

// Update applies mouse look while the right button is held and WASD/QE movement.
func (c *FlyCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		c.Look(d.X, d.Y)
	}

	var forward, right, up float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		right--
	}
	if rl.IsKeyDown(rl.KeyE) {
		up++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		up--
	}
	c.Move(forward, right, up, deltaTime)
}

// Directions returns the view direction and the horizontal right vector.
func (c *FlyCamera) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
		Z: float32(math.Sin(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: float32(-math.Cos(yawRad)),
	}
	return
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	forward, _ := c.Directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{Z: 1},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
