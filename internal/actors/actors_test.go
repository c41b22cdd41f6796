package actors

import (
	"math"
	"testing"

	"solidworld/internal/physics"
	"solidworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-3

func newWorld() *world.World {
	return world.New(world.DefaultConfig())
}

func TestSpinnerRotatesCollision(t *testing.T) {
	w := newWorld()
	world.Add(w, NewSpinner(rl.Vector3{X: 20, Y: 2, Z: 10}, 90))
	w.ResolveChanges()

	origin := rl.Vector3{X: 20}
	dir := rl.Vector3{X: -1}

	hit, ok := w.SolidRayCast(origin, dir, 100, true, false)
	require.True(t, ok)
	assert.InDelta(t, 10, hit.Distance, tolerance)

	w.Step(1)

	hit, ok = w.SolidRayCast(origin, dir, 100, true, false)
	require.True(t, ok)
	assert.InDelta(t, 19, hit.Distance, tolerance)
	assert.InDelta(t, 1, hit.Normal.X, tolerance)
}

func TestOscillatorFollowsPhase(t *testing.T) {
	w := newWorld()
	o := NewOscillator(rl.Vector3{X: 20, Y: 20, Z: 2}, rl.Vector3{X: 1}, 10, math.Pi/2, 0)
	o.SetPosition(rl.Vector3{Y: 5})
	world.Add(w, o)
	w.ResolveChanges()

	assert.Equal(t, rl.Vector3{Y: 5}, o.Origin())

	w.Step(1)
	assert.InDelta(t, 10, o.Position().X, tolerance)
	assert.InDelta(t, 5, o.Position().Y, tolerance)
	assert.InDelta(t, 10, o.Velocity.X, tolerance)
}

func TestWalkerLandsAndRidesPlatform(t *testing.T) {
	w := newWorld()
	floor := world.NewQuadSolid(rl.Vector3{}, 100, 100)
	floor.Velocity = rl.Vector3{X: 10}
	world.Add(w, floor)
	walker := world.Add(w, NewWalker(4, 12))

	w.Step(0.1)
	require.True(t, walker.Grounded)
	assert.Equal(t, world.Actor(floor), walker.Ground())
	assert.InDelta(t, 0, walker.Position().X, tolerance)
	assert.InDelta(t, 0, walker.Position().Z, tolerance)
	assert.True(t, floor.HasRider())

	w.Step(0.1)
	assert.InDelta(t, 2, floor.Position().X, tolerance)
	assert.InDelta(t, 1, walker.Position().X, tolerance)
	assert.Equal(t, rl.Vector3{X: 10}, walker.PlatformVelocity())
}

func TestWalkerPushedOutOfWall(t *testing.T) {
	w := newWorld()
	world.Add(w, world.NewQuadSolid(rl.Vector3{}, 1000, 1000))
	world.Add(w, world.NewBoxSolid(rl.Vector3{X: 11}, rl.Vector3{X: 2, Y: 100, Z: 100}))

	walker := NewWalker(4, 12)
	walker.Speed = 50
	walker.Move = rl.Vector2{X: 1}
	walker.SetPosition(rl.Vector3{X: 3})
	world.Add(w, walker)

	w.Step(0.1)
	assert.InDelta(t, 6, walker.Position().X, tolerance)
	assert.True(t, walker.Grounded)

	w.Step(0.05)
	assert.InDelta(t, 6, walker.Position().X, tolerance)
}

func TestWalkerFallsWithoutGround(t *testing.T) {
	w := newWorld()
	walker := world.Add(w, NewWalker(4, 12))
	walker.SetPosition(rl.Vector3{Z: 100})

	w.Step(0.1)
	assert.False(t, walker.Grounded)
	assert.Nil(t, walker.Ground())
	assert.Less(t, walker.Position().Z, float32(100))
}

func TestProjectileImpactAndReuse(t *testing.T) {
	w := newWorld()
	world.Add(w, world.NewBoxSolid(rl.Vector3{X: 11}, rl.Vector3{X: 2, Y: 100, Z: 100}))

	p := Fire(w, rl.Vector3{}, rl.Vector3{X: 100}, 5)
	var impact world.RayHit
	impacts := 0
	p.OnImpact.AddListener(func(hit world.RayHit) {
		impact = hit
		impacts++
	})

	w.Step(0.2)
	require.Equal(t, 1, impacts)
	assert.InDelta(t, 10, impact.Point.X, tolerance)
	assert.InDelta(t, -1, impact.Normal.X, tolerance)
	assert.True(t, p.Destroying)

	w.ResolveChanges()
	assert.Equal(t, 1, world.Recycled[*Projectile](w))
	assert.Equal(t, 0, p.OnImpact.GetListenerCount())
	assert.Nil(t, p.World())

	again := Fire(w, rl.Vector3{Y: 10}, rl.Vector3{Y: 1}, 1)
	assert.Same(t, p, again)
	assert.Equal(t, 0, world.Recycled[*Projectile](w))
	assert.True(t, again.Alive())
	assert.Equal(t, float32(1), again.Life)
}

type dummy struct {
	world.ActorBase
}

func TestProjectileHitsActorBounds(t *testing.T) {
	w := newWorld()
	tg := &dummy{}
	tg.SetLocalBounds(physics.AABB{Min: rl.Vector3{X: -1, Y: -1, Z: -1}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}})
	tg.SetPosition(rl.Vector3{X: 10})
	world.Add(w, tg)
	world.Add(w, NewCutscene(0)) // no bounds, never hit

	p := Fire(w, rl.Vector3{}, rl.Vector3{X: 100}, 5)
	var impact world.RayHit
	p.OnImpact.AddListener(func(hit world.RayHit) { impact = hit })

	w.Step(0.05)
	assert.False(t, p.Destroying, "still 3.5 units short")

	w.Step(0.036) // ends 0.4 short of the face, inside the radius
	require.True(t, p.Destroying)
	assert.Same(t, tg, impact.Actor)
	assert.InDelta(t, 9, impact.Point.X, tolerance)
	assert.InDelta(t, -1, impact.Normal.X, tolerance)
}

func TestProjectileExpires(t *testing.T) {
	w := newWorld()
	p := Fire(w, rl.Vector3{}, rl.Vector3{Z: 1}, 0.5)

	w.Step(0.25)
	assert.False(t, p.Destroying)
	assert.InDelta(t, 0.25, p.Position().Z, tolerance)

	w.Step(0.25)
	assert.True(t, p.Destroying)
}

func TestCutsceneFreezesWorld(t *testing.T) {
	w := newWorld()
	o := world.Add(w, NewOscillator(rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{X: 1}, 10, math.Pi/2, 0))
	cut := world.Add(w, NewCutscene(0.5))
	finished := 0
	cut.OnFinished.AddListener(func() { finished++ })
	w.ResolveChanges()

	w.Step(0.25)
	assert.Zero(t, finished)
	w.Step(0.25)
	assert.Equal(t, 1, finished)
	assert.Equal(t, rl.Vector3{}, o.Position())
	assert.Nil(t, cut.World())
	assert.Zero(t, w.GeneralTimer)

	w.Step(1)
	assert.InDelta(t, 10, o.Position().X, tolerance)
	assert.InDelta(t, 1, w.GeneralTimer, tolerance)
}

func TestSceneRoundTripThroughRegistry(t *testing.T) {
	sf, err := world.ParseSceneFile([]byte(`{
		"solids": [],
		"actors": [
			{"type": "Spinner", "position": [0, 0, 5], "props": {"size": [4, 4, 4], "speed": 45}},
			{"type": "Walker", "position": [10, 0, 0]},
			{"type": "Missing", "position": [0, 0, 0]}
		]
	}`))
	require.NoError(t, err)

	w := newWorld()
	solids, added := w.AddScene(sf)
	assert.Equal(t, 0, solids)
	assert.Equal(t, 2, added)
	w.ResolveChanges()

	s, ok := world.Get[*Spinner](w)
	require.True(t, ok)
	assert.Equal(t, float32(45), s.Speed)
	assert.InDelta(t, 4, s.LocalBounds().Size().X, tolerance)
	assert.Equal(t, rl.Vector3{Z: 5}, s.Position())

	walker, ok := world.Get[*Walker](w)
	require.True(t, ok)
	assert.Equal(t, float32(4), walker.Radius)

	out := w.Scene()
	require.Len(t, out.Actors, 2)
	assert.Equal(t, "Spinner", out.Actors[0].Type)
	assert.Equal(t, float32(45), out.Actors[0].Props["speed"])
	assert.Equal(t, "Walker", out.Actors[1].Type)
	assert.Empty(t, out.Solids)
}
