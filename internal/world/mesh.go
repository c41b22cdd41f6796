package world

import (
	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BuildMesh packs convex polygons into a shared vertex array, recentred so the
// bounds centre sits at the origin. Each face plane comes from its first three
// vertices (counter-clockwise seen from the front). Polygons with fewer than three
// vertices are skipped. center is the offset that was subtracted.
func BuildMesh(polygons [][]rl.Vector3) (vertices []rl.Vector3, faces []Face, center rl.Vector3) {
	var all []rl.Vector3
	for _, poly := range polygons {
		if len(poly) >= 3 {
			all = append(all, poly...)
		}
	}
	if len(all) == 0 {
		return nil, nil, rl.Vector3{}
	}
	center = physics.NewAABBFromPoints(all).Center()

	vertices = make([]rl.Vector3, 0, len(all))
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		start := len(vertices)
		for _, v := range poly {
			vertices = append(vertices, rl.Vector3Subtract(v, center))
		}
		local := vertices[start:]
		faces = append(faces, Face{
			Plane:       physics.NewPlaneFromVertices(local[0], local[1], local[2]),
			VertexStart: start,
			VertexCount: len(poly),
		})
	}
	return vertices, faces, center
}

// BoxPolygons returns the six outward-facing quads of a box centred on the origin.
func BoxPolygons(size rl.Vector3) [][]rl.Vector3 {
	x, y, z := size.X/2, size.Y/2, size.Z/2
	return [][]rl.Vector3{
		{{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z}},     // top
		{{X: -x, Y: -y, Z: -z}, {X: -x, Y: y, Z: -z}, {X: x, Y: y, Z: -z}, {X: x, Y: -y, Z: -z}}, // bottom
		{{X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: x, Y: y, Z: z}, {X: x, Y: -y, Z: z}},     // +x
		{{X: -x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: z}, {X: -x, Y: y, Z: z}, {X: -x, Y: y, Z: -z}}, // -x
		{{X: -x, Y: y, Z: -z}, {X: -x, Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y, Z: -z}},     // +y
		{{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: -y, Z: z}, {X: -x, Y: -y, Z: z}}, // -y
	}
}

// NewBoxSolid builds a box solid of the given size centred on position.
func NewBoxSolid(position, size rl.Vector3) *Solid {
	verts, faces, _ := BuildMesh(BoxPolygons(size))
	s := NewSolid(verts, faces)
	s.SetPosition(position)
	return s
}

// NewQuadSolid builds a single upward-facing horizontal quad centred on position.
func NewQuadSolid(position rl.Vector3, width, depth float32) *Solid {
	x, y := width/2, depth/2
	verts, faces, _ := BuildMesh([][]rl.Vector3{{
		{X: -x, Y: -y}, {X: x, Y: -y}, {X: x, Y: y}, {X: -x, Y: y},
	}})
	s := NewSolid(verts, faces)
	s.SetPosition(position)
	return s
}

// SetMesh replaces the local geometry. On an added solid the world cache and the
// broad phase are rebuilt immediately.
func (s *Solid) SetMesh(vertices []rl.Vector3, faces []Face) {
	s.LocalVertices = vertices
	s.LocalFaces = faces
	if len(vertices) > 0 {
		s.SetLocalBounds(physics.NewAABBFromPoints(vertices))
	}
	if s.initialized {
		s.worldVertices = make([]rl.Vector3, len(vertices))
		s.worldFaces = make([]Face, len(faces))
		s.Transformed()
	}
}
