package world

import (
	"reflect"
	"slices"
)

// trackedList is the cached set of live actors assignable to one queried type.
// Once created it is kept current by ResolveChanges for the life of the world.
type trackedList struct {
	match  func(Actor) bool
	actors []Actor
}

func (tl *trackedList) remove(a Actor) {
	if i := slices.Index(tl.actors, a); i >= 0 {
		tl.actors = slices.Delete(tl.actors, i, i+1)
	}
}

// typesOf returns the tracked list for T, building it from the live set on first use.
func typesOf[T any](w *World) *trackedList {
	key := reflect.TypeFor[T]()
	if tl, ok := w.tracked[key]; ok {
		return tl
	}
	tl := &trackedList{match: func(a Actor) bool {
		_, ok := a.(T)
		return ok
	}}
	for _, a := range w.actors {
		if tl.match(a) {
			tl.actors = append(tl.actors, a)
		}
	}
	w.tracked[key] = tl
	return tl
}

// Get returns the first live actor assignable to T. T may be a concrete pointer type
// or an interface describing a capability.
func Get[T any](w *World) (T, bool) {
	tl := typesOf[T](w)
	if len(tl.actors) > 0 {
		return tl.actors[0].(T), true
	}
	var zero T
	return zero, false
}

// GetWhere returns the first live actor assignable to T for which pred is true.
func GetWhere[T any](w *World, pred func(T) bool) (T, bool) {
	for _, a := range typesOf[T](w).actors {
		if t := a.(T); pred(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// All returns every live actor assignable to T. The slice is the world's cache: do
// not modify it, and do not hold it across ResolveChanges.
func All[T any](w *World) []Actor {
	return typesOf[T](w).actors
}

// Each calls fn for every live actor assignable to T.
func Each[T any](w *World, fn func(T)) {
	for _, a := range typesOf[T](w).actors {
		fn(a.(T))
	}
}
