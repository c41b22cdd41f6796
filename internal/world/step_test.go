package world

import (
	"testing"

	"solidworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type freezer struct {
	recorder
	frozen bool
}

func (f *freezer) FreezesWorld() bool { return f.frozen }

func unitBounds() physics.AABB {
	return physics.AABB{Min: rl.Vector3{X: -1, Y: -1, Z: -1}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

func TestStepUpdatesAndTimers(t *testing.T) {
	w := newTestWorld()
	p := Add(w, newRecorder("p", nil))

	w.Step(0.5)
	assert.Equal(t, 1, p.updates, "pending additions resolve before updates")
	assert.Equal(t, 1, p.lateUpdates)
	assert.Equal(t, float32(0.5), w.GeneralTimer)
	assert.Equal(t, float32(0.5), w.RealTimer)

	w.TimeScale = 0.5
	w.Step(0.5)
	assert.Equal(t, float32(0.25), p.lastDt)
	assert.Equal(t, float32(0.75), w.GeneralTimer)
	assert.Equal(t, float32(1), w.RealTimer)
	assert.Equal(t, float32(0.5), w.RealDelta)
}

func TestStepSpawnWaitsForNextStep(t *testing.T) {
	w := newTestWorld()
	var child *recorder
	spawner := &spawnOnUpdate{spawn: func() { child = Add(w, newRecorder("child", nil)) }}
	Add(w, spawner)

	w.Step(0.1)
	assert.Zero(t, child.updates)
	_, live := w.Find(child.UID())
	assert.False(t, live)

	w.Step(0.1)
	assert.Equal(t, 1, child.updates)
}

type spawnOnUpdate struct {
	ActorBase
	spawn func()
	done  bool
}

func (s *spawnOnUpdate) Update(dt float32) {
	if !s.done {
		s.spawn()
		s.done = true
	}
}

func TestStepPausedAndHitStun(t *testing.T) {
	w := newTestWorld()
	p := Add(w, newRecorder("p", nil))

	w.Paused = true
	w.Step(1)
	assert.Zero(t, p.updates)
	assert.Zero(t, w.RealTimer)

	w.Paused = false
	w.HitStun = 0.15
	w.Step(0.1)
	w.Step(0.1)
	assert.Zero(t, p.updates)
	assert.Zero(t, w.GeneralTimer)

	w.Step(0.1)
	assert.Equal(t, 1, p.updates)
}

func TestStepFreezer(t *testing.T) {
	w := newTestWorld()
	p := Add(w, newRecorder("p", nil))
	f := Add(w, &freezer{frozen: true})
	w.ResolveChanges()

	w.Step(0.1)
	assert.Zero(t, p.updates)
	assert.Equal(t, 1, f.updates)
	assert.Equal(t, 1, f.lateUpdates)
	assert.Zero(t, w.GeneralTimer)

	f.frozen = false
	w.Step(0.1)
	assert.Equal(t, 1, p.updates)
	assert.Equal(t, 2, f.updates)

	f.frozen = true
	w.Destroy(f)
	w.Step(0.1)
	assert.Equal(t, 2, p.updates, "destroying freezers do not freeze")
}

func TestStepViewCulling(t *testing.T) {
	w := newTestWorld()

	near := newRecorder("near", nil)
	near.SetLocalBounds(unitBounds())
	near.SetPosition(rl.Vector3{X: 5})

	edge := newRecorder("edge", nil)
	edge.SetLocalBounds(unitBounds())
	edge.SetPosition(rl.Vector3{X: 25}) // within UpdateMargin of the view

	far := newRecorder("far", nil)
	far.SetLocalBounds(unitBounds())
	far.SetPosition(rl.Vector3{X: 500})

	always := newRecorder("always", nil)
	always.SetPosition(rl.Vector3{X: 500})
	always.UpdateOffScreen = true

	for _, p := range []*recorder{near, edge, far, always} {
		Add(w, p)
	}

	w.SetView(physics.AABB{Min: rl.Vector3{X: -15, Y: -15, Z: -15}, Max: rl.Vector3{X: 15, Y: 15, Z: 15}})
	w.Step(0.1)
	assert.Equal(t, 1, near.updates)
	assert.Equal(t, 1, edge.updates)
	assert.Zero(t, far.updates)
	assert.Zero(t, far.lateUpdates)
	assert.Equal(t, 1, always.updates)

	w.ClearView()
	w.Step(0.1)
	assert.Equal(t, 1, far.updates)
}

func TestVisibleActors(t *testing.T) {
	w := newTestWorld()
	front := Add(w, NewBoxSolid(rl.Vector3{Y: 20}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	Add(w, NewBoxSolid(rl.Vector3{Y: -20}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	w.ResolveChanges()

	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Y: 1},
		Up:         rl.Vector3{Z: 1},
		Fovy:       90,
		Projection: rl.CameraPerspective,
	}
	f := physics.CameraFrustum(camera, 1, 1, 100)

	visible := w.VisibleActors(nil, &f)
	assert.Equal(t, []Actor{front}, visible)
}

func TestStepCullsWithCameraView(t *testing.T) {
	w := newTestWorld()

	ahead := newRecorder("ahead", nil)
	ahead.SetLocalBounds(unitBounds())
	ahead.SetPosition(rl.Vector3{Y: 50})

	behind := newRecorder("behind", nil)
	behind.SetLocalBounds(unitBounds())
	behind.SetPosition(rl.Vector3{Y: -50})

	Add(w, ahead)
	Add(w, behind)

	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Y: 1},
		Up:         rl.Vector3{Z: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := physics.CameraFrustum(camera, 1, 1, 100)
	w.SetView(f.Bounds())
	w.Step(0.1)

	assert.Equal(t, 1, ahead.updates)
	assert.Zero(t, behind.updates)
}
