package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxInvDir clamps 1/direction so axis-parallel rays stay finite.
const maxInvDir = 1 << 24

func invDir(d float32) float32 {
	if d == 0 {
		return maxInvDir
	}
	return clampf(1/d, -maxInvDir, maxInvDir)
}

// RayIntersectsAABB runs the slab test and returns the entry and exit parameters along
// direction. ok is false when the slabs do not overlap. tEnter may be negative when the
// origin is inside the box; callers clamp to their own range.
func RayIntersectsAABB(origin, direction rl.Vector3, box AABB) (tEnter, tExit float32, ok bool) {
	inv := rl.Vector3{X: invDir(direction.X), Y: invDir(direction.Y), Z: invDir(direction.Z)}

	t0 := vmul(rl.Vector3Subtract(box.Min, origin), inv)
	t1 := vmul(rl.Vector3Subtract(box.Max, origin), inv)

	enter := vmin(t0, t1)
	exit := vmax(t0, t1)

	tEnter = max(enter.X, enter.Y, enter.Z)
	tExit = min(exit.X, exit.Y, exit.Z)
	return tEnter, tExit, tEnter < tExit
}

// RayIntersectsOBB tests a ray against box-local bounds placed by transform. The ray is
// taken into the box's space with the inverse transform, then each pair of
// perpendicular planes narrows [tNear, tMax]; an empty interval rejects immediately.
// The returned distance is measured in units of the world-space direction.
func RayIntersectsOBB(origin, direction rl.Vector3, local AABB, transform rl.Matrix) (float32, bool) {
	if lengthSq(direction) < epsilon*epsilon {
		return 0, false
	}
	inv := rl.MatrixInvert(transform)
	o := rl.Vector3Transform(origin, inv)
	d := TransformDirection(direction, inv)

	tNear := float32(-math.MaxFloat32)
	tMax := float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		oi, di := axis(o, i), axis(d, i)
		lo, hi := axis(local.Min, i), axis(local.Max, i)

		if absf(di) < epsilon {
			if oi < lo || oi > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - oi) / di
		t2 := (hi - oi) / di
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = max(tNear, t1)
		tMax = min(tMax, t2)
		if tNear > tMax || tMax < 0 {
			return 0, false
		}
	}

	t := tMax
	if tNear > 0 {
		t = tNear
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// RayIntersectsTriangle is the Möller–Trumbore test. Both windings are accepted;
// degenerate triangles and hits at or behind the origin report false.
func RayIntersectsTriangle(origin, direction, a, b, c rl.Vector3) (float32, bool) {
	edge1 := rl.Vector3Subtract(b, a)
	edge2 := rl.Vector3Subtract(c, a)

	pvec := rl.Vector3CrossProduct(direction, edge2)
	det := rl.Vector3DotProduct(edge1, pvec)
	if absf(det) < epsilon {
		return 0, false
	}
	invDet := 1 / det

	tvec := rl.Vector3Subtract(origin, a)
	u := rl.Vector3DotProduct(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := rl.Vector3CrossProduct(tvec, edge1)
	v := rl.Vector3DotProduct(direction, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := rl.Vector3DotProduct(edge2, qvec) * invDet
	if t <= epsilon || !finite(t) {
		return 0, false
	}
	return t, true
}
