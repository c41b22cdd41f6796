package world

import (
	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxWallHits caps a single wall check. Scanning stops once it is reached.
const MaxWallHits = 8

// WallHit is one wall pushing a point out. Adding Pushout to the query point moves
// it exactly radius away from the wall.
type WallHit struct {
	Pushout rl.Vector3
	Point   rl.Vector3
	Normal  rl.Vector3
	Actor   Actor
}

// WallHits is a fixed-capacity result list that lives on the stack.
type WallHits struct {
	hits [MaxWallHits]WallHit
	n    int
}

func (h *WallHits) Len() int         { return h.n }
func (h *WallHits) At(i int) WallHit { return h.hits[:h.n][i] }
func (h *WallHits) Slice() []WallHit { return h.hits[:h.n] }
func (h *WallHits) Full() bool       { return h.n >= MaxWallHits }

func (h *WallHits) add(hit WallHit) {
	h.hits[h.n] = hit
	h.n++
}

// SolidWallCheck finds walls within radius of point on the horizontal plane through
// it. Faces that are nearly flat (floors and ceilings), facing away, or farther than
// radius are ignored. Each face contributes at most its strongest pushout. pred, if
// non-nil, filters solids.
func (w *World) SolidWallCheck(point rl.Vector3, radius float32, pred func(*Solid) bool) WallHits {
	var hits WallHits
	if !(radius > 0) {
		return hits
	}
	radiusSq := radius * radius
	flat := physics.NewPlane(rl.Vector3{Z: 1}, point)
	flatPoint := rl.Vector2{X: point.X, Y: point.Y}

	solids := w.solidLists.Get()
	solids = w.querySolids(solids, physics.NewRect(point.X-radius, point.Y-radius, radius*2, radius*2))
	defer func() { w.solidLists.Put(solids) }()

	for _, s := range solids {
		if !s.Collidable || s.Destroying {
			continue
		}
		if !s.WorldBounds().Inflate(radius).Contains(point) {
			continue
		}
		if pred != nil && !pred(s) {
			continue
		}

		verts := s.worldVertices
		for _, face := range s.worldFaces {
			n := face.Plane.Normal
			if n.Z >= w.Config.FlatNormalZ || n.Z <= -w.Config.FlatNormalZ {
				continue
			}
			dist := face.Plane.Distance(point)
			if dist < 0 || dist > radius {
				continue
			}

			var best WallHit
			found := false
			for i := 0; i < face.Triangles(); i++ {
				a, b, c := face.Triangle(verts, i)
				p0, p1, count := physics.PlaneTriangleIntersection(flat, a, b, c)
				if count == 0 {
					continue
				}
				if count == 1 {
					p1 = p0
				}

				line := physics.Line2{From: rl.Vector2{X: p0.X, Y: p0.Y}, To: rl.Vector2{X: p1.X, Y: p1.Y}}
				closest := line.ClosestPoint(flatPoint)
				next := rl.Vector3{X: closest.X, Y: closest.Y, Z: point.Z}
				diff := rl.Vector3Subtract(point, next)
				dSq := lengthSq(diff)
				if dSq > radiusSq {
					continue
				}

				var pushout rl.Vector3
				if d := rl.Vector3Length(diff); d > 0 {
					pushout = rl.Vector3Scale(diff, (radius-d)/d)
				} else {
					// on the wall: push out along its normal
					pushout = rl.Vector3Scale(n, radius)
				}
				if found && lengthSq(pushout) < lengthSq(best.Pushout) {
					continue
				}
				best = WallHit{Pushout: pushout, Point: next, Normal: n, Actor: s.actor()}
				found = true
			}

			if found {
				hits.add(best)
				if hits.Full() {
					return hits
				}
			}
		}
	}
	return hits
}

// SolidWallCheckNearest returns the hit with the largest pushout.
func (w *World) SolidWallCheckNearest(point rl.Vector3, radius float32, pred func(*Solid) bool) (WallHit, bool) {
	hits := w.SolidWallCheck(point, radius, pred)
	if hits.Len() == 0 {
		return WallHit{}, false
	}
	best := hits.At(0)
	for _, h := range hits.Slice()[1:] {
		if lengthSq(h.Pushout) > lengthSq(best.Pushout) {
			best = h
		}
	}
	return best, true
}

// SolidWallCheckClosestToNormal returns the hit whose normal is most aligned with
// normal, e.g. the wall most opposed to the current movement.
func (w *World) SolidWallCheckClosestToNormal(point rl.Vector3, radius float32, normal rl.Vector3, pred func(*Solid) bool) (WallHit, bool) {
	hits := w.SolidWallCheck(point, radius, pred)
	if hits.Len() == 0 {
		return WallHit{}, false
	}
	best := hits.At(0)
	for _, h := range hits.Slice()[1:] {
		if rl.Vector3DotProduct(h.Normal, normal) > rl.Vector3DotProduct(best.Normal, normal) {
			best = h
		}
	}
	return best, true
}
