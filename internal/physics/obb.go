package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (unit length)
}

// NewOBB places local bounds in world space through an affine transform.
// Scale is folded into the half-extents so Axes stay unit length.
func NewOBB(local AABB, transform rl.Matrix) OBB {
	columns := [3]rl.Vector3{
		{X: transform.M0, Y: transform.M1, Z: transform.M2},
		{X: transform.M4, Y: transform.M5, Z: transform.M6},
		{X: transform.M8, Y: transform.M9, Z: transform.M10},
	}
	half := rl.Vector3Scale(local.Size(), 0.5)

	var o OBB
	o.Center = rl.Vector3Transform(local.Center(), transform)
	scaled := [3]float32{}
	for i, c := range columns {
		length := rl.Vector3Length(c)
		scaled[i] = axis(half, i) * length
		if length > epsilon {
			o.Axes[i] = rl.Vector3Scale(c, 1/length)
		}
	}
	o.HalfSize = rl.Vector3{X: scaled[0], Y: scaled[1], Z: scaled[2]}
	return o
}

// RayIntersect projects the ray onto each box axis and clips [tNear, tFar] against
// the slab on that axis. Returns the entry distance, or the exit distance when the
// origin is inside.
func (o OBB) RayIntersect(origin, direction rl.Vector3) (float32, bool) {
	if lengthSq(direction) < epsilon*epsilon {
		return 0, false
	}
	tNear := float32(-math.MaxFloat32)
	tFar := float32(math.MaxFloat32)
	delta := rl.Vector3Subtract(o.Center, origin)

	for i := 0; i < 3; i++ {
		ax := o.Axes[i]
		e := rl.Vector3DotProduct(ax, delta)
		f := rl.Vector3DotProduct(ax, direction)
		h := axis(o.HalfSize, i)

		if absf(f) > epsilon {
			t1 := (e + h) / f
			t2 := (e - h) / f
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tNear = max(tNear, t1)
			tFar = min(tFar, t2)
			if tNear > tFar || tFar < 0 {
				return 0, false
			}
		} else if -e-h > 0 || -e+h < 0 {
			// parallel to this slab and outside it
			return 0, false
		}
	}

	t := tFar
	if tNear > 0 {
		t = tNear
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// ClosestPoint returns the closest point on or inside the OBB to the given point
func (o OBB) ClosestPoint(point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, o.Center)
	result := o.Center
	for i := 0; i < 3; i++ {
		h := axis(o.HalfSize, i)
		d := clampf(rl.Vector3DotProduct(local, o.Axes[i]), -h, h)
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], d))
	}
	return result
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	diff := rl.Vector3Subtract(center, o.ClosestPoint(center))
	return lengthSq(diff) <= radius*radius
}

// SurfaceNormal returns the outward normal of the face nearest to a point on the
// box surface.
func (o OBB) SurfaceNormal(point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, o.Center)
	best, bestAxis, sign := float32(-1), 0, float32(1)
	for i := 0; i < 3; i++ {
		h := axis(o.HalfSize, i)
		if h <= epsilon {
			continue
		}
		d := rl.Vector3DotProduct(local, o.Axes[i]) / h
		if absf(d) > best {
			best, bestAxis = absf(d), i
			sign = 1
			if d < 0 {
				sign = -1
			}
		}
	}
	return rl.Vector3Scale(o.Axes[bestAxis], sign)
}
