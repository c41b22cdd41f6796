package world

import "reflect"

// Poolable actors are queued for reuse when destroyed instead of being dropped.
// Pooled runs once the instance is detached and should reset per-life state.
type Poolable interface {
	Actor
	Pooled()
}

// Request returns a recycled *E if one is queued, otherwise a fresh one, and adds
// it to the world either way.
//
//	bullet := world.Request[Bullet](w)
func Request[E any, P interface {
	*E
	Poolable
}](w *World) P {
	key := reflect.TypeFor[P]()
	if queue := w.recycled[key]; len(queue) > 0 {
		a := queue[0]
		queue[0] = nil
		w.recycled[key] = queue[1:]
		return Add(w, a.(P))
	}
	return Add(w, P(new(E)))
}

// Recycled reports how many instances of P are waiting for reuse.
func Recycled[P Poolable](w *World) int {
	return len(w.recycled[reflect.TypeFor[P]()])
}
