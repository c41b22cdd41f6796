package world

import (
	"sync/atomic"

	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actor is anything that lives in a World. Concrete actors embed ActorBase, which
// supplies Base and no-op hooks; a type overrides the hooks it cares about.
//
// When a type embeds another actor (for example a Solid) and overrides one of its
// hooks, the override must call the embedded hook itself.
type Actor interface {
	Base() *ActorBase

	// Created runs synchronously inside Add, before the actor is visible to queries.
	Created()
	// Added runs during ResolveChanges once the actor is in the live set.
	Added()
	Update(dt float32)
	LateUpdate(dt float32)
	// Destroyed runs during ResolveChanges before the actor is detached.
	Destroyed()
	// Transformed runs after every position, rotation or scale change.
	Transformed()
}

// ActorBase holds the identity, transform and lifecycle state shared by all actors.
// The zero value is ready to use: rotation defaults to identity and scale to one.
type ActorBase struct {
	// UpdateOffScreen keeps the actor updating when it is outside the world's view.
	UpdateOffScreen bool
	// Destroying is set by World.Destroy and cleared by World.Add.
	Destroying bool

	uid         uint64
	position    rl.Vector3
	rotation    rl.Quaternion
	scale       rl.Vector3
	localBounds physics.AABB

	matrix      rl.Matrix
	worldBounds physics.AABB
	dirty       bool
	ready       bool

	world *World
	self  Actor
}

func (a *ActorBase) Base() *ActorBase { return a }

func (a *ActorBase) Created()              {}
func (a *ActorBase) Added()                {}
func (a *ActorBase) Update(dt float32)     {}
func (a *ActorBase) LateUpdate(dt float32) {}
func (a *ActorBase) Destroyed()            {}
func (a *ActorBase) Transformed()          {}

func (a *ActorBase) ensure() {
	if a.ready {
		return
	}
	a.rotation = rl.QuaternionIdentity()
	a.scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	a.dirty = true
	a.ready = true
}

var lastUID atomic.Uint64

// UID is assigned the first time the actor is added to a World and never changes.
func (a *ActorBase) UID() uint64 { return a.uid }

// World returns the owning world, or nil when the actor is not registered.
func (a *ActorBase) World() *World { return a.world }

// Self returns the outer actor this base is embedded in, once it has been added.
func (a *ActorBase) Self() Actor { return a.self }

// Alive reports whether the actor is registered and not being destroyed.
func (a *ActorBase) Alive() bool {
	return a.world != nil && !a.Destroying
}

func (a *ActorBase) Position() rl.Vector3 {
	a.ensure()
	return a.position
}

func (a *ActorBase) Rotation() rl.Quaternion {
	a.ensure()
	return a.rotation
}

func (a *ActorBase) Scale() rl.Vector3 {
	a.ensure()
	return a.scale
}

func (a *ActorBase) SetPosition(p rl.Vector3) {
	a.ensure()
	if p == a.position {
		return
	}
	a.position = p
	a.changed()
}

func (a *ActorBase) SetRotation(q rl.Quaternion) {
	a.ensure()
	if q == a.rotation {
		return
	}
	a.rotation = q
	a.changed()
}

func (a *ActorBase) SetScale(s rl.Vector3) {
	a.ensure()
	if s == a.scale {
		return
	}
	a.scale = s
	a.changed()
}

// SetTransform replaces position, rotation and scale with a single Transformed call.
func (a *ActorBase) SetTransform(position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3) {
	a.ensure()
	a.position, a.rotation, a.scale = position, rotation, scale
	a.changed()
}

// Translate moves the actor by delta.
func (a *ActorBase) Translate(delta rl.Vector3) {
	a.SetPosition(rl.Vector3Add(a.Position(), delta))
}

func (a *ActorBase) changed() {
	a.dirty = true
	if a.self != nil {
		a.self.Transformed()
	}
}

// Matrix returns the cached world transform (scale, then rotation, then translation).
func (a *ActorBase) Matrix() rl.Matrix {
	a.ensure()
	if a.dirty {
		a.matrix = physics.ComposeTransform(a.position, a.rotation, a.scale)
		a.worldBounds = a.localBounds.Transform(a.matrix)
		a.dirty = false
	}
	return a.matrix
}

func (a *ActorBase) LocalBounds() physics.AABB { return a.localBounds }

func (a *ActorBase) SetLocalBounds(b physics.AABB) {
	a.ensure()
	a.localBounds = b
	a.dirty = true
}

// WorldBounds is the axis-aligned box around the eight transformed local corners.
func (a *ActorBase) WorldBounds() physics.AABB {
	a.Matrix()
	return a.worldBounds
}

// WorldOBB returns the tight oriented box of the local bounds.
func (a *ActorBase) WorldOBB() physics.OBB {
	return physics.NewOBB(a.localBounds, a.Matrix())
}

// attach is called by World.Add.
func (a *ActorBase) attach(w *World, self Actor) {
	a.ensure()
	a.world = w
	a.self = self
	a.Destroying = false
	if a.uid == 0 {
		a.uid = lastUID.Add(1)
	}
}
