package actors

import (
	"math"

	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Oscillator is a moving platform that swings back and forth along Axis around the
// position it was added at. Riders are carried through Solid.MoveTo.
type Oscillator struct {
	world.Solid
	Axis      rl.Vector3
	Amplitude float32
	Speed     float32 // radians per second
	Phase     float32

	origin rl.Vector3
	time   float32
}

func NewOscillator(size, axis rl.Vector3, amplitude, speed, phase float32) *Oscillator {
	o := &Oscillator{
		Axis:      axis,
		Amplitude: amplitude,
		Speed:     speed,
		Phase:     phase,
	}
	o.Collidable = true
	o.Climbable = true
	verts, faces, _ := world.BuildMesh(world.BoxPolygons(size))
	o.SetMesh(verts, faces)
	return o
}

func (o *Oscillator) Added() {
	o.origin = o.Position()
	o.time = 0
}

// Origin is the centre of the swing.
func (o *Oscillator) Origin() rl.Vector3 {
	return o.origin
}

// Update replaces Solid.Update: the platform is driven by its phase, and Velocity is
// derived from the step so riders inherit it.
func (o *Oscillator) Update(dt float32) {
	o.time += dt

	t := float64(o.time*o.Speed + o.Phase)
	offset := rl.Vector3Scale(o.Axis, float32(math.Sin(t))*o.Amplitude)
	target := rl.Vector3Add(o.origin, offset)

	if dt > 0 {
		o.Velocity = rl.Vector3Scale(rl.Vector3Subtract(target, o.Position()), 1/dt)
	}
	o.MoveTo(target)
}

func init() {
	world.RegisterActor("Oscillator", oscillatorFactory, oscillatorSerializer)
}

func oscillatorFactory(props map[string]any) world.Actor {
	size := world.PropVector(props, "size", [3]float32{20, 20, 2})
	axis := world.PropVector(props, "axis", [3]float32{1, 0, 0})
	return NewOscillator(
		rl.Vector3{X: size[0], Y: size[1], Z: size[2]},
		rl.Vector3{X: axis[0], Y: axis[1], Z: axis[2]},
		world.PropFloat(props, "amplitude", 10),
		world.PropFloat(props, "speed", 1),
		world.PropFloat(props, "phase", 0),
	)
}

func oscillatorSerializer(a world.Actor) map[string]any {
	o, ok := a.(*Oscillator)
	if !ok {
		return nil
	}
	size := o.LocalBounds().Size()
	return map[string]any{
		"size":      [3]float32{size.X, size.Y, size.Z},
		"axis":      [3]float32{o.Axis.X, o.Axis.Y, o.Axis.Z},
		"amplitude": o.Amplitude,
		"speed":     o.Speed,
		"phase":     o.Phase,
	}
}
