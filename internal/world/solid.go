package world

import (
	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face is a convex polygon of a Solid: its plane and a run of vertices. Collision
// treats it as the triangle fan (0, i+1, i+2).
type Face struct {
	Plane       physics.Plane
	VertexStart int
	VertexCount int
}

// Triangles is the number of triangles in the face's fan.
func (f Face) Triangles() int {
	return max(f.VertexCount-2, 0)
}

// Triangle returns the i-th fan triangle from verts.
func (f Face) Triangle(verts []rl.Vector3, i int) (a, b, c rl.Vector3) {
	return verts[f.VertexStart], verts[f.VertexStart+i+1], verts[f.VertexStart+i+2]
}

// Solid is static or moving collision geometry made of convex faces. The local
// arrays are fixed at construction; the world-space copies are rebuilt on every
// Transformed and are read-only to queries.
type Solid struct {
	ActorBase

	LocalVertices []rl.Vector3
	LocalFaces    []Face

	// Collidable solids take part in ray casts, wall checks and platform riding.
	Collidable bool
	// Transparent solids can be skipped by ray casts that ask for it (camera rays).
	Transparent bool
	Climbable   bool
	// Velocity moves the solid every Update, carrying any riders along.
	Velocity rl.Vector3

	worldVertices []rl.Vector3
	worldFaces    []Face
	initialized   bool
	queryStamp    uint64
}

// NewSolid builds a collidable, climbable solid. Its local bounds enclose vertices.
func NewSolid(vertices []rl.Vector3, faces []Face) *Solid {
	s := &Solid{Collidable: true, Climbable: true}
	s.SetMesh(vertices, faces)
	return s
}

// SolidBase lets queries reach the Solid inside any actor that embeds one.
func (s *Solid) SolidBase() *Solid { return s }

// SolidActor is satisfied by *Solid and by every type embedding Solid.
type SolidActor interface {
	Actor
	SolidBase() *Solid
}

// actor returns the outer actor for query results.
func (s *Solid) actor() Actor {
	if s.self != nil {
		return s.self
	}
	return s
}

// WorldVertices returns the world-space vertex cache.
func (s *Solid) WorldVertices() []rl.Vector3 {
	return s.worldVertices
}

// WorldFaces returns faces with world-space planes, indexing into WorldVertices.
func (s *Solid) WorldFaces() []Face {
	return s.worldFaces
}

func (s *Solid) Created() {
	s.worldVertices = make([]rl.Vector3, len(s.LocalVertices))
	s.worldFaces = make([]Face, len(s.LocalFaces))
	s.initialized = true
	s.Transformed()
}

// Transformed rebuilds the world-space cache and re-indexes the solid using the
// bounds it was last indexed with.
func (s *Solid) Transformed() {
	if !s.initialized {
		return
	}
	m := s.Matrix()
	for i, v := range s.LocalVertices {
		s.worldVertices[i] = rl.Vector3Transform(v, m)
	}
	for i, f := range s.LocalFaces {
		s.worldFaces[i] = f
		s.worldFaces[i].Plane = f.Plane.Transform(m)
	}
	if s.Alive() {
		s.world.Solids.Update(s, s.WorldBounds().XY())
	}
}

func (s *Solid) Destroyed() {
	s.world.Solids.Delete(s)
}

// Update moves the solid by its velocity.
func (s *Solid) Update(dt float32) {
	if lengthSq(s.Velocity) > platformEpsilon {
		s.MoveTo(rl.Vector3Add(s.Position(), rl.Vector3Scale(s.Velocity, dt)))
	}
}

const platformEpsilon = 0.001

// PlatformRider is implemented by actors that can stand on moving solids.
type PlatformRider interface {
	Actor
	// RidingPlatformCheck reports whether the rider is currently carried by platform.
	RidingPlatformCheck(platform *Solid) bool
	RidingPlatformSetVelocity(v rl.Vector3)
	RidingPlatformMoved(delta rl.Vector3)
}

// MoveTo moves a collidable solid to target, first carrying every rider standing on
// it. The solid is non-collidable while riders move so they do not collide with it.
func (s *Solid) MoveTo(target rl.Vector3) {
	delta := rl.Vector3Subtract(target, s.Position())
	if s.Collidable && s.world != nil && lengthSq(delta) > platformEpsilon*platformEpsilon {
		self := s.actor()
		for _, a := range All[PlatformRider](s.world) {
			if a == self {
				continue
			}
			rider := a.(PlatformRider)
			if rider.RidingPlatformCheck(s) {
				s.Collidable = false
				rider.RidingPlatformSetVelocity(s.Velocity)
				rider.RidingPlatformMoved(delta)
				s.Collidable = true
			}
		}
	}
	s.SetPosition(target)
}

// HasRider reports whether any PlatformRider is standing on the solid.
func (s *Solid) HasRider() bool {
	if s.world == nil {
		return false
	}
	_, ok := GetWhere(s.world, func(r PlatformRider) bool {
		return r.RidingPlatformCheck(s)
	})
	return ok
}

func lengthSq(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
