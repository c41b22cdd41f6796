package actors

import (
	"solidworld/internal/engine"
	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const projectileRadius = 0.5

// Projectile flies in a straight line until it hits a solid or another actor, or its
// Life runs out. Instances are pooled: use Fire rather than constructing them.
type Projectile struct {
	world.ActorBase
	Velocity rl.Vector3
	Life     float32
	// Radius is the sphere tested against other actors' bounds after each move.
	Radius float32

	// OnImpact fires with the surface hit, just before the projectile is destroyed.
	OnImpact engine.EventWithArg[world.RayHit]
}

// Fire takes a projectile from the world's pool and launches it from origin.
func Fire(w *world.World, origin, velocity rl.Vector3, life float32) *Projectile {
	p := world.Request[Projectile](w)
	p.UpdateOffScreen = true
	p.Velocity = velocity
	p.Life = life
	p.Radius = projectileRadius
	p.SetPosition(origin)
	return p
}

func (p *Projectile) Update(dt float32) {
	if p.Destroying {
		return
	}

	step := rl.Vector3Scale(p.Velocity, dt)
	if dist := rl.Vector3Length(step); dist > 0 {
		if hit, ok := p.World().SolidRayCast(p.Position(), step, dist, true, false); ok {
			p.SetPosition(hit.Point)
			p.OnImpact.Invoke(hit)
			p.World().Destroy(p)
			return
		}
		p.Translate(step)
		if target, ok := p.World().SphereOverlap(p.Position(), p.Radius, notProjectile); ok {
			p.impactActor(target)
			return
		}
	}

	p.Life -= dt
	if p.Life <= 0 {
		p.World().Destroy(p)
	}
}

func notProjectile(a world.Actor) bool {
	_, ok := a.(*Projectile)
	return !ok
}

// impactActor reports a hit on the nearest surface point of target's bounds.
func (p *Projectile) impactActor(target world.Actor) {
	box := target.Base().WorldOBB()
	point := box.ClosestPoint(p.Position())
	p.OnImpact.Invoke(world.RayHit{
		Point:         point,
		Normal:        box.SurfaceNormal(point),
		Distance:      rl.Vector3Distance(p.Position(), point),
		Actor:         target,
		Intersections: 1,
	})
	p.World().Destroy(p)
}

// Pooled clears per-shot state before the instance is queued for reuse.
func (p *Projectile) Pooled() {
	p.Velocity = rl.Vector3{}
	p.Life = 0
	p.Radius = 0
	p.OnImpact.RemoveAllListeners()
}
