// Package engine holds small building blocks shared by the world and its tools.
package engine

// ListenerID identifies a registered listener so it can be removed later.
// The zero value never refers to a listener.
type ListenerID uint32

type listener[F any] struct {
	id ListenerID
	fn F
}

// Event is a Unity-style multi-cast event.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	listeners []listener[func()]
	nextID    ListenerID
}

// AddListener adds a callback to be invoked when the event fires. A nil callback is
// ignored and yields the zero ID.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[func()]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener removes the listener registered under id. Returns false if no
// such listener exists.
func (e *Event) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in registration order. Listeners added or
// removed from inside a callback take effect on the next Invoke.
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.fn()
	}
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[func(T)]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[func(T)]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

// removeListener copies on write so an Invoke already ranging over the old slice is
// unaffected.
func removeListener[F any](ls []listener[F], id ListenerID) ([]listener[F], bool) {
	if id == 0 {
		return ls, false
	}
	for i, l := range ls {
		if l.id == id {
			out := make([]listener[F], 0, len(ls)-1)
			out = append(out, ls[:i]...)
			out = append(out, ls[i+1:]...)
			return out, true
		}
	}
	return ls, false
}
