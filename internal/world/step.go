package world

import (
	"solidworld/internal/physics"
)

// WorldFreezer actors can stop the rest of the world, e.g. a cutscene or a dying
// player. While one reports FreezesWorld, Step updates only that actor.
type WorldFreezer interface {
	Actor
	FreezesWorld() bool
}

// SetView sets the region the camera can see. Step only updates actors whose world
// bounds touch it (inflated by Config.UpdateMargin) unless they UpdateOffScreen.
func (w *World) SetView(view physics.AABB) {
	w.view = view
	w.hasView = true
}

// ClearView makes Step update every actor.
func (w *World) ClearView() {
	w.hasView = false
}

// Step advances the world by dt seconds. Additions and removals queued by the
// previous step are resolved before any Update runs.
func (w *World) Step(dt float32) {
	if w.Paused {
		return
	}

	w.RealDelta = dt
	dt *= w.TimeScale

	if f, ok := GetWhere(w, func(f WorldFreezer) bool { return f.Base().Alive() && f.FreezesWorld() }); ok {
		f.Update(dt)
		f.LateUpdate(dt)
		w.ResolveChanges()
		return
	}

	if w.HitStun > 0 {
		w.HitStun -= dt
		return
	}

	w.GeneralTimer += dt
	w.RealTimer += w.RealDelta

	w.ResolveChanges()

	// actors added during Update wait for the next step
	live := w.actors
	view := w.view.Inflate(w.Config.UpdateMargin)
	for _, a := range live {
		if w.shouldUpdate(a, view) {
			a.Update(dt)
		}
	}
	for _, a := range live {
		if w.shouldUpdate(a, view) {
			a.LateUpdate(dt)
		}
	}
}

func (w *World) shouldUpdate(a Actor, view physics.AABB) bool {
	b := a.Base()
	return !w.hasView || b.UpdateOffScreen || b.WorldBounds().Intersects(view)
}

// VisibleActors appends every live actor whose world bounds touch the frustum.
func (w *World) VisibleActors(dst []Actor, f *physics.Frustum) []Actor {
	for _, a := range w.actors {
		if f.IntersectsAABB(a.Base().WorldBounds()) {
			dst = append(dst, a)
		}
	}
	return dst
}
