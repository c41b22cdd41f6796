package actors

import (
	"solidworld/internal/physics"
	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	groundSnap      = 0.5
	minGroundNormal = 0.7
	maxPushouts     = 4
)

// Walker is a simple character: a vertical cylinder of Radius and Height standing on
// its position. It falls under gravity, lands on solids found by a downward ray, is
// pushed out of walls by wall checks, and rides moving platforms.
type Walker struct {
	world.ActorBase
	Radius  float32
	Height  float32
	Speed   float32
	Gravity float32

	// Move is the desired horizontal direction, usually unit length.
	Move     rl.Vector2
	Velocity rl.Vector3
	Grounded bool

	ground           world.Actor
	platformVelocity rl.Vector3
}

func NewWalker(radius, height float32) *Walker {
	w := &Walker{
		Radius:  radius,
		Height:  height,
		Speed:   64,
		Gravity: 300,
	}
	w.UpdateOffScreen = true
	w.SetLocalBounds(physics.AABB{
		Min: rl.Vector3{X: -radius, Y: -radius},
		Max: rl.Vector3{X: radius, Y: radius, Z: height},
	})
	return w
}

// Ground is the actor the walker is standing on, if any.
func (w *Walker) Ground() world.Actor {
	return w.ground
}

func (w *Walker) Update(dt float32) {
	w.Velocity.X = w.Move.X * w.Speed
	w.Velocity.Y = w.Move.Y * w.Speed
	if !w.Grounded {
		w.Velocity.Z -= w.Gravity * dt
	}

	w.Translate(rl.Vector3{X: w.Velocity.X * dt, Y: w.Velocity.Y * dt})
	w.pushOut()
	w.moveVertical(w.Velocity.Z * dt)
}

// pushOut resolves wall overlaps at mid height, strongest wall first.
func (w *Walker) pushOut() {
	for range maxPushouts {
		center := rl.Vector3Add(w.Position(), rl.Vector3{Z: w.Height / 2})
		hit, ok := w.World().SolidWallCheckNearest(center, w.Radius, nil)
		if !ok || rl.Vector3LengthSqr(hit.Pushout) < 1e-6 {
			return
		}
		w.Translate(hit.Pushout)
	}
}

func (w *Walker) moveVertical(dz float32) {
	if dz > 0 {
		w.Grounded = false
		w.ground = nil
		w.Translate(rl.Vector3{Z: dz})
		return
	}

	fall := -dz
	if w.Grounded {
		fall = max(fall, groundSnap)
	}
	pos := w.Position()
	origin := rl.Vector3Add(pos, rl.Vector3{Z: w.Radius})
	hit, ok := w.World().SolidRayCast(origin, rl.Vector3{Z: -1}, w.Radius+fall, true, false)
	if ok && hit.Normal.Z >= minGroundNormal {
		w.SetPosition(rl.Vector3{X: pos.X, Y: pos.Y, Z: hit.Point.Z})
		w.Velocity.Z = 0
		w.Grounded = true
		w.ground = hit.Actor
		return
	}

	w.Grounded = false
	w.ground = nil
	w.Translate(rl.Vector3{Z: dz})
}

func (w *Walker) RidingPlatformCheck(platform *world.Solid) bool {
	return w.Grounded && w.ground != nil && w.ground == platform.Self()
}

func (w *Walker) RidingPlatformSetVelocity(v rl.Vector3) {
	w.platformVelocity = v
}

// PlatformVelocity is the velocity of the last platform that carried the walker.
func (w *Walker) PlatformVelocity() rl.Vector3 {
	return w.platformVelocity
}

func (w *Walker) RidingPlatformMoved(delta rl.Vector3) {
	w.Translate(delta)
	w.pushOut()
}

func init() {
	world.RegisterActor("Walker", walkerFactory, walkerSerializer)
}

func walkerFactory(props map[string]any) world.Actor {
	w := NewWalker(world.PropFloat(props, "radius", 4), world.PropFloat(props, "height", 12))
	w.Speed = world.PropFloat(props, "speed", w.Speed)
	w.Gravity = world.PropFloat(props, "gravity", w.Gravity)
	return w
}

func walkerSerializer(a world.Actor) map[string]any {
	w, ok := a.(*Walker)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":  w.Radius,
		"height":  w.Height,
		"speed":   w.Speed,
		"gravity": w.Gravity,
	}
}
