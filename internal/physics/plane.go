package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane represents a plane in 3D space (Normal·p + D = 0)
type Plane struct {
	Normal rl.Vector3
	D      float32
}

// NewPlane builds the plane with the given normal passing through point.
func NewPlane(normal, point rl.Vector3) Plane {
	n := rl.Vector3Normalize(normal)
	return Plane{Normal: n, D: -rl.Vector3DotProduct(n, point)}
}

// NewPlaneFromVertices builds the plane through a, b, c with counter-clockwise winding.
// Coincident or collinear vertices give a zero normal, which every query treats as a miss.
func NewPlaneFromVertices(a, b, c rl.Vector3) Plane {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
	if lengthSq(n) < epsilon*epsilon {
		return Plane{}
	}
	n = rl.Vector3Normalize(n)
	return Plane{Normal: n, D: -rl.Vector3DotProduct(n, a)}
}

// Distance returns the signed distance from p; positive on the side the normal faces.
func (p Plane) Distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, point) + p.D
}

// Degenerate reports whether the plane has no usable normal.
func (p Plane) Degenerate() bool {
	return lengthSq(p.Normal) < epsilon
}

// Transform maps the plane through m. Normals use the inverse transpose so
// non-uniform scale keeps them perpendicular to the surface.
func (p Plane) Transform(m rl.Matrix) Plane {
	if p.Degenerate() {
		return p
	}
	inv := rl.MatrixInvert(m)
	n := rl.Vector3{
		X: inv.M0*p.Normal.X + inv.M1*p.Normal.Y + inv.M2*p.Normal.Z,
		Y: inv.M4*p.Normal.X + inv.M5*p.Normal.Y + inv.M6*p.Normal.Z,
		Z: inv.M8*p.Normal.X + inv.M9*p.Normal.Y + inv.M10*p.Normal.Z,
	}
	if lengthSq(n) < epsilon*epsilon {
		return Plane{}
	}
	onPlane := rl.Vector3Transform(rl.Vector3Scale(p.Normal, -p.D), m)
	return NewPlane(n, onPlane)
}

// PlaneTriangleIntersection returns the points where triangle abc crosses the plane.
// count is 2 for a proper crossing, 1 when the triangle only touches the plane at a
// vertex, and 0 when it misses or lies inside the plane.
func PlaneTriangleIntersection(plane Plane, a, b, c rl.Vector3) (p0, p1 rl.Vector3, count int) {
	verts := [3]rl.Vector3{a, b, c}
	dists := [3]float32{plane.Distance(a), plane.Distance(b), plane.Distance(c)}

	if absf(dists[0]) < epsilon && absf(dists[1]) < epsilon && absf(dists[2]) < epsilon {
		return p0, p1, 0
	}

	var points [2]rl.Vector3
	add := func(p rl.Vector3) {
		for i := 0; i < count; i++ {
			if lengthSq(rl.Vector3Subtract(points[i], p)) < epsilon*epsilon {
				return
			}
		}
		if count < 2 {
			points[count] = p
			count++
		}
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		di, dj := dists[i], dists[j]
		if absf(di) < epsilon {
			add(verts[i])
			continue
		}
		if (di < 0 && dj > epsilon) || (di > 0 && dj < -epsilon) {
			t := di / (di - dj)
			add(rl.Vector3Lerp(verts[i], verts[j], t))
		}
	}

	return points[0], points[1], count
}
