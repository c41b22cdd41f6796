// Package world owns the live actor set, the solid broad phase and the collision
// queries that run against it. Everything here is single-threaded: structural changes
// are queued by Add and Destroy and only applied by ResolveChanges.
package world

import (
	"fmt"
	"log"
	"reflect"
	"slices"

	"solidworld/internal/engine"
	"solidworld/internal/physics"
	"solidworld/internal/pool"
	"solidworld/internal/spatial"
)

type World struct {
	Config Config

	// Solids indexes every alive solid by the XY footprint of its world bounds.
	Solids *spatial.Index[*Solid]

	actors     []Actor
	byUID      map[uint64]Actor
	adding     []Actor
	destroying []Actor

	tracked  map[reflect.Type]*trackedList
	recycled map[reflect.Type][]Actor

	solidLists pool.Lists[*Solid]
	queryStamp uint64

	// Paused stops Step entirely.
	Paused bool
	// HitStun skips whole steps while it counts down.
	HitStun float32
	// TimeScale multiplies the step delta handed to actors.
	TimeScale    float32
	GeneralTimer float32
	RealTimer    float32
	RealDelta    float32

	view    physics.AABB
	hasView bool

	// Observer hooks for tools watching the world.
	OnActorCreated   engine.EventWithArg[Actor]
	OnActorAdded     engine.EventWithArg[Actor]
	OnActorDestroyed engine.EventWithArg[Actor]
}

func New(cfg Config) *World {
	cfg.Validate()
	return &World{
		Config:    cfg,
		Solids:    spatial.NewIndex[*Solid](cfg.CellSize, cfg.CellsPerAxis),
		byUID:     make(map[uint64]Actor),
		tracked:   make(map[reflect.Type]*trackedList),
		recycled:  make(map[reflect.Type][]Actor),
		TimeScale: 1,
	}
}

// Add registers an actor. It is queued until the next ResolveChanges, but is stamped
// with the world and receives Created immediately.
func (w *World) Add(a Actor) Actor {
	if a == nil {
		panic("world: Add(nil)")
	}
	w.adding = append(w.adding, a)
	a.Base().attach(w, a)
	a.Created()
	w.OnActorCreated.Invoke(a)
	return a
}

// Add is World.Add returning the concrete type for chaining.
func Add[T Actor](w *World, a T) T {
	w.Add(a)
	return a
}

// Destroy queues a for removal. The actor stays visible (flagged Destroying) until
// the next ResolveChanges. Destroying an actor owned by another world, or one that is
// already being destroyed, is a bug and panics.
func (w *World) Destroy(a Actor) {
	b := a.Base()
	if b.world != w {
		panic(fmt.Sprintf("world: Destroy(%T uid=%d) on a world that does not own it", a, b.uid))
	}
	if b.Destroying {
		panic(fmt.Sprintf("world: Destroy(%T uid=%d) called twice", a, b.uid))
	}
	b.Destroying = true
	w.destroying = append(w.destroying, a)
}

// ResolveChanges applies queued additions and removals until none are left. Each
// round commits every pending addition and fires its Added hook before any removal's
// Destroyed hook runs. Hooks may Add or Destroy; those land in the next round, and an
// actor both added and destroyed by hooks still receives Added before Destroyed.
func (w *World) ResolveChanges() {
	for len(w.adding) > 0 || len(w.destroying) > 0 {
		batch := w.adding
		w.adding = nil

		for _, a := range batch {
			for _, tl := range w.tracked {
				if tl.match(a) {
					tl.actors = append(tl.actors, a)
				}
			}
			w.actors = append(w.actors, a)
			w.byUID[a.Base().uid] = a
		}
		for _, a := range batch {
			a.Added()
			w.OnActorAdded.Invoke(a)
		}

		removing := w.destroying
		w.destroying = nil

		var deferred []Actor
		for _, a := range removing {
			// added and destroyed by hooks in the same round: commit it first
			if slices.Contains(w.adding, a) {
				deferred = append(deferred, a)
				continue
			}
			a.Destroyed()
			w.OnActorDestroyed.Invoke(a)

			for _, tl := range w.tracked {
				tl.remove(a)
			}
			if i := slices.Index(w.actors, a); i >= 0 {
				w.actors = slices.Delete(w.actors, i, i+1)
			}
			delete(w.byUID, a.Base().uid)
			a.Base().world = nil

			if p, ok := a.(Poolable); ok {
				p.Pooled()
				t := reflect.TypeOf(a)
				w.recycled[t] = append(w.recycled[t], a)
			}
		}
		w.destroying = append(deferred, w.destroying...)
	}
}

// Find returns the live actor with the given UID.
func (w *World) Find(uid uint64) (Actor, bool) {
	a, ok := w.byUID[uid]
	return a, ok
}

// Actors is the live set in insertion order. The slice is owned by the world and
// must not be modified or kept across ResolveChanges.
func (w *World) Actors() []Actor {
	return w.actors
}

// Pending reports how many additions and removals are queued.
func (w *World) Pending() (adding, destroying int) {
	return len(w.adding), len(w.destroying)
}

// Dispose destroys every actor, including any spawned by Destroyed hooks, until the
// world is empty.
func (w *World) Dispose() {
	w.Paused = false
	w.ResolveChanges()

	count := 0
	for len(w.actors) > 0 {
		for _, a := range w.actors {
			if !a.Base().Destroying {
				w.Destroy(a)
				count++
			}
		}
		w.ResolveChanges()
	}
	clear(w.recycled)
	log.Printf("World: disposed %d actors", count)
}

// querySolids appends each solid indexed under r to dst once, however many cells it
// spans.
func (w *World) querySolids(dst []*Solid, r physics.Rect) []*Solid {
	start := len(dst)
	all := w.Solids.Query(dst, r)
	w.queryStamp++
	out := all[:start]
	for _, s := range all[start:] {
		if s.queryStamp == w.queryStamp {
			continue
		}
		s.queryStamp = w.queryStamp
		out = append(out, s)
	}
	clear(all[len(out):])
	return out
}
