// Stress test comparing grid broad-phase queries against a brute-force scan
package main

import (
	"fmt"
	"math/rand"
	"time"

	"solidworld/internal/physics"
	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := world.DefaultConfig()
	fmt.Printf("Grid: %d x %d cells of %.0f units\n\n", cfg.CellsPerAxis, cfg.CellsPerAxis, cfg.CellSize)

	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}
	for _, count := range testCounts {
		testQueries(cfg, count)
	}
}

func testQueries(cfg world.Config, count int) {
	rng := rand.New(rand.NewSource(42)) // consistent results

	// spread boxes over a square that grows with count to keep density constant
	spawnSize := float32(2000) + float32(count)*2

	w := world.New(cfg)
	w.Add(world.NewQuadSolid(rl.Vector3{}, spawnSize, spawnSize))
	for range count {
		pos := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32() * 20,
		}
		size := rl.Vector3{X: 4 + rng.Float32()*16, Y: 4 + rng.Float32()*16, Z: 4 + rng.Float32()*40}
		w.Add(world.NewBoxSolid(pos, size))
	}
	w.ResolveChanges()

	const queries = 2000
	origins := make([]rl.Vector3, queries)
	dirs := make([]rl.Vector3, queries)
	for i := range origins {
		origins[i] = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: 10 + rng.Float32()*50,
		}
		dirs[i] = rl.Vector3Normalize(rl.Vector3{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1, Z: -rng.Float32()})
	}

	// Time grid ray casts
	gridStart := time.Now()
	gridHits := 0
	for i := range origins {
		if _, ok := w.SolidRayCast(origins[i], dirs[i], 100, true, false); ok {
			gridHits++
		}
	}
	gridTime := time.Since(gridStart) / queries

	// Time brute force over every solid
	bruteStart := time.Now()
	bruteHits := 0
	solids := world.All[*world.Solid](w)
	for i := range origins {
		if bruteRayCast(solids, origins[i], dirs[i], 100) {
			bruteHits++
		}
	}
	bruteTime := time.Since(bruteStart) / queries

	// Time wall checks
	wallStart := time.Now()
	wallHits := 0
	for i := range origins {
		hits := w.SolidWallCheck(origins[i], 8, nil)
		wallHits += hits.Len()
	}
	wallTime := time.Since(wallStart) / queries

	speedup := float64(bruteTime) / float64(gridTime)

	fmt.Printf("%5d solids: ray %8v (%4d hits) | brute %9v (%4d hits) | %.1fx | wall %8v (%4d hits)\n",
		count, gridTime, gridHits, bruteTime, bruteHits, speedup, wallTime, wallHits)

	w.Dispose()
}

// bruteRayCast tests every fan triangle of every solid.
func bruteRayCast(solids []world.Actor, origin, dir rl.Vector3, maxDistance float32) bool {
	found := false
	for _, a := range solids {
		s := a.(*world.Solid)
		verts := s.WorldVertices()
		for _, face := range s.WorldFaces() {
			if rl.Vector3DotProduct(face.Plane.Normal, dir) >= 0 {
				continue
			}
			for i := 0; i < face.Triangles(); i++ {
				v0, v1, v2 := face.Triangle(verts, i)
				if dist, ok := physics.RayIntersectsTriangle(origin, dir, v0, v1, v2); ok && dist <= maxDistance {
					found = true
				}
			}
		}
	}
	return found
}
