package actors

import (
	"solidworld/internal/engine"
	"solidworld/internal/world"
)

// Cutscene freezes the rest of the world for Duration seconds, then removes itself.
type Cutscene struct {
	world.ActorBase
	Duration float32
	// OnFinished fires once when the freeze ends.
	OnFinished engine.Event

	elapsed float32
}

func NewCutscene(duration float32) *Cutscene {
	c := &Cutscene{Duration: duration}
	c.UpdateOffScreen = true
	return c
}

func (c *Cutscene) FreezesWorld() bool {
	return c.elapsed < c.Duration
}

func (c *Cutscene) Update(dt float32) {
	c.elapsed += dt
	if !c.FreezesWorld() && !c.Destroying {
		c.OnFinished.Invoke()
		c.World().Destroy(c)
	}
}

func init() {
	world.RegisterActor("Cutscene", func(props map[string]any) world.Actor {
		return NewCutscene(world.PropFloat(props, "duration", 1))
	}, func(a world.Actor) map[string]any {
		c, ok := a.(*Cutscene)
		if !ok {
			return nil
		}
		return map[string]any{"duration": c.Duration}
	})
}
