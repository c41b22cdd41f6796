package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the 6 planes of a view frustum for culling, normals pointing inward.
type Frustum struct {
	planes  [6]Plane // left, right, bottom, top, near, far
	corners [8]rl.Vector3
}

// Corner order in Frustum.corners: index = depth*4 + vertical*2 + horizontal, where
// depth is 0 for near and 1 for far, vertical 0 for bottom and horizontal 0 for left.
var frustumFaces = [6][3]int{
	{0, 2, 4}, // left
	{1, 3, 5}, // right
	{0, 1, 4}, // bottom
	{2, 3, 6}, // top
	{0, 1, 2}, // near
	{4, 5, 6}, // far
}

// NewFrustum builds the planes through the eight corners, each oriented so the
// frustum's centroid is on its positive side.
func NewFrustum(corners [8]rl.Vector3) Frustum {
	f := Frustum{corners: corners}
	var centroid rl.Vector3
	for _, c := range corners {
		centroid = rl.Vector3Add(centroid, c)
	}
	centroid = rl.Vector3Scale(centroid, 1.0/8)

	for i, face := range frustumFaces {
		p := NewPlaneFromVertices(corners[face[0]], corners[face[1]], corners[face[2]])
		if p.Distance(centroid) < 0 {
			p = Plane{Normal: rl.Vector3Negate(p.Normal), D: -p.D}
		}
		f.planes[i] = p
	}
	return f
}

// CameraFrustum builds the frustum for a raylib camera with the given aspect ratio
// and clip distances. Orthographic cameras use Fovy as the view height.
func CameraFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, camera.Up))
	up := rl.Vector3CrossProduct(right, forward)

	tanHalf := float32(math.Tan(float64(camera.Fovy*rl.Deg2rad) / 2))

	var corners [8]rl.Vector3
	n := 0
	for _, depth := range []float32{near, far} {
		halfH := camera.Fovy / 2
		if camera.Projection == rl.CameraPerspective {
			halfH = depth * tanHalf
		}
		halfW := halfH * aspect
		center := rl.Vector3Add(camera.Position, rl.Vector3Scale(forward, depth))
		for _, v := range []float32{-1, 1} {
			for _, h := range []float32{-1, 1} {
				offset := rl.Vector3Add(rl.Vector3Scale(right, h*halfW), rl.Vector3Scale(up, v*halfH))
				corners[n] = rl.Vector3Add(center, offset)
				n++
			}
		}
	}
	return NewFrustum(corners)
}

// ContainsSphere tests if a sphere is inside or intersects the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		if f.planes[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectsAABB is conservative: it may accept a box near a frustum corner that is
// actually outside, but never rejects a visible one.
func (f *Frustum) IntersectsAABB(box AABB) bool {
	for i := range f.planes {
		n := f.planes[i].Normal
		// corner farthest along the inward normal
		p := rl.Vector3{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z}
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if f.planes[i].Distance(p) < 0 {
			return false
		}
	}
	return true
}

// Bounds is the axis-aligned box around the frustum's corners.
func (f *Frustum) Bounds() AABB {
	return NewAABBFromPoints(f.corners[:])
}
