// Debug viewer: loads a scene file, runs the world, and visualises ray casts and
// wall checks under the mouse.
package main

import (
	"fmt"
	"log"
	"os"

	"solidworld/internal/actors"
	"solidworld/internal/camera"
	"solidworld/internal/physics"
	"solidworld/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultScene  = "assets/scenes/demo.json"
	configPath    = "solidworld.json"
	pickDistance  = 2000
	farClip       = 3000
	panelWidth    = 240
	projectileSpd = 400
)

type viewer struct {
	w      *world.World
	camera *camera.FlyCamera

	sphereRadius       float32
	ignoreBackfaces   bool
	ignoreTransparent bool

	hit     world.RayHit
	hasHit  bool
	walls   world.WallHits
	sphereAt rl.Vector3

	selected world.Actor
	frustum  physics.Frustum
	visible  []world.Actor
	impacts  []rl.Vector3
}

func main() {
	scenePath := defaultScene
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}

	cfg, err := world.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("solidview: %v", err)
	}

	v := &viewer{
		w:               world.New(cfg),
		sphereRadius:     8,
		ignoreBackfaces: true,
		camera:          camera.New(rl.Vector3{X: 160, Y: -160, Z: 120}),
	}
	v.camera.LookAt(rl.Vector3{})
	if err := v.w.LoadScene(scenePath); err != nil {
		log.Fatalf("solidview: %v", err)
	}
	v.w.ResolveChanges()

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(1280, 720, "solidview - "+scenePath)
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}

	v.w.Dispose()
}

func (v *viewer) update() {
	dt := rl.GetFrameTime()
	v.camera.Update(dt)
	cam := v.camera.GetRaylibCamera()

	if rl.IsKeyPressed(rl.KeyP) {
		v.w.Paused = !v.w.Paused
	}
	v.w.Step(dt)

	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	v.frustum = physics.CameraFrustum(cam, aspect, 0.1, farClip)
	v.w.SetView(v.frustum.Bounds())
	v.visible = v.w.VisibleActors(v.visible[:0], &v.frustum)

	mouse := rl.GetMousePosition()
	if mouse.X < panelWidth {
		return
	}
	ray := rl.GetScreenToWorldRay(mouse, cam)

	v.hit, v.hasHit = v.w.SolidRayCast(ray.Position, ray.Direction, pickDistance, v.ignoreBackfaces, v.ignoreTransparent)
	v.walls = world.WallHits{}
	if v.hasHit {
		// sphere just off the surface, at the height of the hit
		v.sphereAt = rl.Vector3Add(v.hit.Point, rl.Vector3Scale(v.hit.Normal, v.sphereRadius*0.5))
		v.walls = v.w.SolidWallCheck(v.sphereAt, v.sphereRadius, nil)
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if hit, ok := v.w.ActorRayCast(ray.Position, ray.Direction, pickDistance, nil); ok {
			v.selected = hit.Actor
		} else {
			v.selected = nil
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		p := actors.Fire(v.w, ray.Position, rl.Vector3Scale(ray.Direction, projectileSpd), 3)
		p.OnImpact.AddListener(func(hit world.RayHit) {
			v.impacts = append(v.impacts, hit.Point)
			if len(v.impacts) > 32 {
				v.impacts = v.impacts[1:]
			}
		})
	}

	if v.selected != nil && !v.selected.Base().Alive() {
		v.selected = nil
	}
}

func (v *viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 24, 32, 255))

	rl.BeginMode3D(v.camera.GetRaylibCamera())
	for _, a := range v.visible {
		v.drawActor(a)
	}
	for _, p := range v.impacts {
		if v.frustum.ContainsSphere(p, 1) {
			rl.DrawSphere(p, 1, rl.Orange)
		}
	}
	if v.hasHit {
		rl.DrawSphere(v.hit.Point, 1.5, rl.Yellow)
		rl.DrawLine3D(v.hit.Point, rl.Vector3Add(v.hit.Point, rl.Vector3Scale(v.hit.Normal, 10)), rl.Yellow)

		rl.DrawSphereWires(v.sphereAt, v.sphereRadius, 8, 12, rl.SkyBlue)
		for _, h := range v.walls.Slice() {
			rl.DrawSphere(h.Point, 0.75, rl.Red)
			rl.DrawLine3D(v.sphereAt, rl.Vector3Add(v.sphereAt, h.Pushout), rl.Red)
		}
	}
	rl.EndMode3D()

	v.drawPanel()
	rl.EndDrawing()
}

func (v *viewer) drawActor(a world.Actor) {
	selected := a == v.selected
	sa, ok := a.(world.SolidActor)
	if !ok {
		b := a.Base().WorldBounds()
		color := rl.Green
		if selected {
			color = rl.Yellow
		}
		rl.DrawBoundingBox(rl.BoundingBox{Min: b.Min, Max: b.Max}, color)
		return
	}

	s := sa.SolidBase()
	fill := rl.NewColor(90, 110, 140, 255)
	switch {
	case selected:
		fill = rl.NewColor(200, 170, 60, 255)
	case s.Transparent:
		fill = rl.NewColor(90, 160, 200, 90)
	case !s.Collidable:
		fill = rl.NewColor(90, 90, 90, 120)
	}
	edge := rl.NewColor(20, 20, 28, 255)

	verts := s.WorldVertices()
	for _, face := range s.WorldFaces() {
		shade := 0.6 + 0.4*face.Plane.Normal.Z*face.Plane.Normal.Z
		c := rl.NewColor(uint8(float32(fill.R)*shade), uint8(float32(fill.G)*shade), uint8(float32(fill.B)*shade), fill.A)
		for i := 0; i < face.Triangles(); i++ {
			p0, p1, p2 := face.Triangle(verts, i)
			rl.DrawTriangle3D(p0, p1, p2, c)
		}
		for i := 0; i < face.VertexCount; i++ {
			from := verts[face.VertexStart+i]
			to := verts[face.VertexStart+(i+1)%face.VertexCount]
			rl.DrawLine3D(from, to, edge)
		}
	}
}

func (v *viewer) drawPanel() {
	rl.DrawRectangle(0, 0, panelWidth, int32(rl.GetScreenHeight()), rl.NewColor(32, 32, 44, 230))

	y := float32(12)
	v.sphereRadius = gui.Slider(rl.NewRectangle(70, y, 120, 18), "Radius", fmt.Sprintf("%.1f", v.sphereRadius), v.sphereRadius, 1, 64)
	y += 28
	v.ignoreBackfaces = gui.CheckBox(rl.NewRectangle(12, y, 18, 18), "Ignore backfaces", v.ignoreBackfaces)
	y += 28
	v.ignoreTransparent = gui.CheckBox(rl.NewRectangle(12, y, 18, 18), "Ignore transparent", v.ignoreTransparent)
	y += 28
	v.w.Paused = gui.CheckBox(rl.NewRectangle(12, y, 18, 18), "Paused (P)", v.w.Paused)
	y += 36

	lines := []string{
		fmt.Sprintf("Actors: %d  visible: %d", len(v.w.Actors()), len(v.visible)),
		fmt.Sprintf("Solids indexed: %d", v.w.Solids.Len()),
		fmt.Sprintf("Time: %.1fs", v.w.GeneralTimer),
	}
	if v.hasHit {
		lines = append(lines,
			fmt.Sprintf("Hit: %.1f %.1f %.1f", v.hit.Point.X, v.hit.Point.Y, v.hit.Point.Z),
			fmt.Sprintf("Distance: %.2f (%d tris)", v.hit.Distance, v.hit.Intersections),
			fmt.Sprintf("Normal: %.2f %.2f %.2f", v.hit.Normal.X, v.hit.Normal.Y, v.hit.Normal.Z),
			fmt.Sprintf("Walls: %d", v.walls.Len()),
		)
	}
	if v.selected != nil {
		lines = append(lines, fmt.Sprintf("Selected: %T #%d", v.selected, v.selected.Base().UID()))
	}
	lines = append(lines, "", "RMB drag: look  WASD/QE: fly", "LMB: select", "Space: fire")

	for _, line := range lines {
		rl.DrawText(line, 12, int32(y), 14, rl.RayWhite)
		y += 18
	}
	rl.DrawFPS(12, int32(rl.GetScreenHeight())-24)
}
