package world

import (
	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayHit describes the closest surface found by a ray cast.
type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Actor    Actor
	// Intersections counts every in-range triangle hit seen, closest or not.
	Intersections int
}

// maxQueryReach caps how far the broad-phase box of a ray cast extends.
const maxQueryReach = 1e30

// SolidRayCast finds the closest solid surface along the ray within maxDistance.
// With ignoreBackfaces, faces whose normal does not oppose the ray are skipped; with
// ignoreTransparent, Transparent solids are skipped. A zero direction never hits.
func (w *World) SolidRayCast(origin, direction rl.Vector3, maxDistance float32, ignoreBackfaces, ignoreTransparent bool) (RayHit, bool) {
	var hit RayHit
	if lengthSq(direction) == 0 || !(maxDistance > 0) {
		return hit, false
	}
	dir := rl.Vector3Normalize(direction)

	// the swept box only needs to reach past the grid; an infinite reach would put
	// NaN into the axes the direction does not move along
	end := rl.Vector3Add(origin, rl.Vector3Scale(dir, min(maxDistance, maxQueryReach)))
	box := physics.NewAABBFromPoints([]rl.Vector3{origin, end}).Inflate(w.Config.RayCastMargin)

	solids := w.solidLists.Get()
	solids = w.querySolids(solids, box.XY())
	defer func() { w.solidLists.Put(solids) }()

	found := false
	var closest float32
	for _, s := range solids {
		if !s.Collidable || s.Destroying {
			continue
		}
		if s.Transparent && ignoreTransparent {
			continue
		}
		if !s.WorldBounds().Intersects(box) {
			continue
		}

		verts := s.worldVertices
		for _, face := range s.worldFaces {
			if ignoreBackfaces && rl.Vector3DotProduct(face.Plane.Normal, dir) >= 0 {
				continue
			}
			if face.Plane.Distance(origin) > maxDistance {
				continue
			}

			for i := 0; i < face.Triangles(); i++ {
				a, b, c := face.Triangle(verts, i)
				dist, ok := physics.RayIntersectsTriangle(origin, dir, a, b, c)
				if !ok || dist > maxDistance {
					continue
				}
				hit.Intersections++

				// ties keep the earlier hit
				if found && dist >= closest {
					continue
				}
				found = true
				closest = dist
				hit.Point = rl.Vector3Add(origin, rl.Vector3Scale(dir, dist))
				hit.Normal = face.Plane.Normal
				hit.Distance = dist
				hit.Actor = s.actor()
				break
			}
		}
	}
	return hit, found
}

// ActorRayCast picks the closest actor along the ray. Solids are tested against
// their faces (both sides), every other actor against the oriented box of its local
// bounds. pred, if non-nil, filters candidates.
func (w *World) ActorRayCast(origin, direction rl.Vector3, maxDistance float32, pred func(Actor) bool) (RayHit, bool) {
	var hit RayHit
	if lengthSq(direction) == 0 || !(maxDistance > 0) {
		return hit, false
	}
	dir := rl.Vector3Normalize(direction)

	found := false
	for _, a := range w.actors {
		b := a.Base()
		if b.Destroying || (pred != nil && !pred(a)) {
			continue
		}

		if sa, ok := a.(SolidActor); ok {
			s := sa.SolidBase()
			dist, normal, ok := s.rayCastFaces(origin, dir, maxDistance)
			if !ok {
				continue
			}
			hit.Intersections++
			if !found || dist < hit.Distance {
				found = true
				hit.Point = rl.Vector3Add(origin, rl.Vector3Scale(dir, dist))
				hit.Normal = normal
				hit.Distance = dist
				hit.Actor = a
			}
			continue
		}

		dist, ok := physics.RayIntersectsOBB(origin, dir, b.LocalBounds(), b.Matrix())
		if !ok || dist <= 0 || dist > maxDistance {
			continue
		}
		hit.Intersections++
		if found && dist >= hit.Distance {
			continue
		}
		found = true
		hit.Point = rl.Vector3Add(origin, rl.Vector3Scale(dir, dist))
		hit.Normal = b.WorldOBB().SurfaceNormal(hit.Point)
		hit.Distance = dist
		hit.Actor = a
	}
	return hit, found
}

// rayCastFaces tests every fan triangle of the solid regardless of facing.
func (s *Solid) rayCastFaces(origin, dir rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	var (
		best   float32
		normal rl.Vector3
		found  bool
	)
	for _, face := range s.worldFaces {
		for i := 0; i < face.Triangles(); i++ {
			a, b, c := face.Triangle(s.worldVertices, i)
			dist, ok := physics.RayIntersectsTriangle(origin, dir, a, b, c)
			if !ok || dist > maxDistance || (found && dist >= best) {
				continue
			}
			best, normal, found = dist, face.Plane.Normal, true
		}
	}
	return best, normal, found
}
