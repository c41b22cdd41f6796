// Package actors holds the stock actor types that scene files can place by name.
package actors

import (
	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner is a box solid that turns around the world Z axis.
type Spinner struct {
	world.Solid
	Speed float32 // degrees per second

	angle float32
	base  rl.Quaternion
}

func NewSpinner(size rl.Vector3, speed float32) *Spinner {
	s := &Spinner{Speed: speed}
	s.Collidable = true
	s.Climbable = true
	verts, faces, _ := world.BuildMesh(world.BoxPolygons(size))
	s.SetMesh(verts, faces)
	return s
}

func (s *Spinner) Added() {
	s.base = s.Rotation()
}

func (s *Spinner) Update(dt float32) {
	s.Solid.Update(dt)

	s.angle += s.Speed * dt
	if s.angle > 360 {
		s.angle -= 360
	} else if s.angle < -360 {
		s.angle += 360
	}
	spin := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, s.angle*rl.Deg2rad)
	s.SetRotation(rl.QuaternionMultiply(spin, s.base))
}

func init() {
	world.RegisterActor("Spinner", spinnerFactory, spinnerSerializer)
}

func spinnerFactory(props map[string]any) world.Actor {
	size := world.PropVector(props, "size", [3]float32{10, 10, 10})
	return NewSpinner(rl.Vector3{X: size[0], Y: size[1], Z: size[2]}, world.PropFloat(props, "speed", 90))
}

func spinnerSerializer(a world.Actor) map[string]any {
	s, ok := a.(*Spinner)
	if !ok {
		return nil
	}
	size := s.LocalBounds().Size()
	return map[string]any{
		"size":  [3]float32{size.X, size.Y, size.Z},
		"speed": s.Speed,
	}
}
