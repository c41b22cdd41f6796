package world

import (
	"fmt"
	"slices"
)

// ActorFactory creates an actor from scene-file props.
type ActorFactory func(props map[string]any) Actor

// ActorSerializer converts an actor back to props for saving. It returns nil for
// actors it does not recognise.
type ActorSerializer func(a Actor) map[string]any

type actorEntry struct {
	factory    ActorFactory
	serializer ActorSerializer
}

var actorRegistry = map[string]actorEntry{}

// RegisterActor registers a named actor type for scene files. The serializer is used
// when saving a world back to JSON and may be nil.
func RegisterActor(name string, factory ActorFactory, serializer ActorSerializer) {
	if _, exists := actorRegistry[name]; exists {
		panic(fmt.Sprintf("actor type %q already registered", name))
	}
	actorRegistry[name] = actorEntry{factory: factory, serializer: serializer}
}

// CreateActor builds a registered actor type, or returns nil if name is unknown.
func CreateActor(name string, props map[string]any) Actor {
	entry, ok := actorRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(props)
}

// SerializeActor finds the registered type that recognises a.
func SerializeActor(a Actor) (string, map[string]any, bool) {
	for _, name := range RegisteredActors() {
		entry := actorRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(a); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredActors returns the registered type names in sorted order.
func RegisteredActors() []string {
	names := make([]string, 0, len(actorRegistry))
	for name := range actorRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PropFloat reads a numeric prop as decoded by encoding/json.
func PropFloat(props map[string]any, key string, fallback float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	}
	return fallback
}

// PropVector reads a three-element numeric array prop.
func PropVector(props map[string]any, key string, fallback [3]float32) [3]float32 {
	switch v := props[key].(type) {
	case []any:
		if len(v) != 3 {
			return fallback
		}
		var out [3]float32
		for i, e := range v {
			f, ok := e.(float64)
			if !ok {
				return fallback
			}
			out[i] = float32(f)
		}
		return out
	case [3]float32:
		return v
	}
	return fallback
}

// PropBool reads a boolean prop.
func PropBool(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}
