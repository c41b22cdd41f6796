package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromPoints returns the smallest box enclosing every point.
// An empty slice yields the zero box.
func NewAABBFromPoints(points []rl.Vector3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = vmin(box.Min, p)
		box.Max = vmax(box.Max, p)
	}
	return box
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside the box, faces included.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Inflate grows the box by amount on every side.
func (a AABB) Inflate(amount float32) AABB {
	d := rl.Vector3{X: amount, Y: amount, Z: amount}
	return AABB{Min: rl.Vector3Subtract(a.Min, d), Max: rl.Vector3Add(a.Max, d)}
}

// Transform returns the axis-aligned box enclosing the eight transformed corners.
func (a AABB) Transform(m rl.Matrix) AABB {
	corners := [8]rl.Vector3{
		{X: a.Min.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Max.Z},
	}
	first := rl.Vector3Transform(corners[0], m)
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := rl.Vector3Transform(c, m)
		out.Min = vmin(out.Min, p)
		out.Max = vmax(out.Max, p)
	}
	return out
}

// XY projects the box onto the ground plane.
func (a AABB) XY() Rect {
	return Rect{
		Min: rl.Vector2{X: a.Min.X, Y: a.Min.Y},
		Max: rl.Vector2{X: a.Max.X, Y: a.Max.Y},
	}
}
