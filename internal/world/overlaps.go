package world

import (
	"reflect"

	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var solidActorType = reflect.TypeFor[SolidActor]()

// OverlapsFirst returns the first live actor of type T whose world bounds contain
// point and that satisfies pred (when non-nil). Solid types are looked up through
// the broad phase; everything else scans the tracked list for T.
func OverlapsFirst[T Actor](w *World, point rl.Vector3, pred func(T) bool) (T, bool) {
	var zero T
	if reflect.TypeFor[T]().Implements(solidActorType) {
		solids := w.solidLists.Get()
		solids = w.querySolids(solids, physics.NewRect(point.X-1, point.Y-1, 2, 2))
		defer func() { w.solidLists.Put(solids) }()

		for _, s := range solids {
			t, ok := s.actor().(T)
			if !ok || !s.Alive() {
				continue
			}
			if s.WorldBounds().Contains(point) && (pred == nil || pred(t)) {
				return t, true
			}
		}
		return zero, false
	}

	for _, a := range All[T](w) {
		t := a.(T)
		if a.Base().WorldBounds().Contains(point) && (pred == nil || pred(t)) {
			return t, true
		}
	}
	return zero, false
}

// Overlaps reports whether any actor of type T contains point.
func Overlaps[T Actor](w *World, point rl.Vector3, pred func(T) bool) bool {
	_, ok := OverlapsFirst(w, point, pred)
	return ok
}

// SphereOverlap returns the first live non-solid actor whose oriented bounds touch the
// sphere and that satisfies pred (when non-nil). Actors without local bounds have no
// extent and are skipped.
func (w *World) SphereOverlap(center rl.Vector3, radius float32, pred func(Actor) bool) (Actor, bool) {
	for _, a := range w.actors {
		b := a.Base()
		if b.Destroying || b.LocalBounds() == (physics.AABB{}) {
			continue
		}
		if _, solid := a.(SolidActor); solid {
			continue
		}
		if pred != nil && !pred(a) {
			continue
		}
		if b.WorldOBB().IntersectsSphere(center, radius) {
			return a, true
		}
	}
	return nil, false
}
