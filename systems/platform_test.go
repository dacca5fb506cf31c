package systems

import (
	"testing"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func platformStep(e *ecs.ECS) {
	c := clock(e.World)
	c.ElapsedMS = testStepMS
	c.Tick++
	UpdateFloatingPlatforms(e)
	UpdateGravity(e)
	UpdatePhysics(e)
}

func topOf(e *donburi.Entry) float64 {
	m := components.Motion.Get(e)
	return m.Position.Y - m.Size().Y/2
}

func TestFloatingPlatform_CarriesBody(t *testing.T) {
	e := newTestECS()
	platform := factory.CreateFloatingPlatform(e, 0, 200, 200, 16, 64, 4)
	body := newBody(e, bodyOpts{x: 0, y: 100, w: 40, h: 40, gravity: true})

	landed := false
	lowest, highest := topOf(platform), topOf(platform)
	// 240 steps cover a full rise and fall.
	for i := 0; i < 240; i++ {
		platformStep(e)
		top := topOf(platform)
		lowest, highest = max(lowest, top), min(highest, top)

		if !landed {
			landed = !components.Physics.Get(body).InAir
			continue
		}
		require.False(t, components.Physics.Get(body).InAir, "step %d", i)
		assert.InDelta(t, top, pos(body).Y+20, cfg.Physics.LandingProbe, "step %d", i)
	}

	require.True(t, landed)
	assert.Greater(t, lowest-highest, 50.0, "the platform moved")
}

func TestRidersOf(t *testing.T) {
	e := newTestECS()
	platform := factory.CreateFloatingPlatform(e, 0, 200, 200, 16, 64, 4)
	resting := newBody(e, bodyOpts{x: 0, y: 171, w: 40, h: 40})
	newBody(e, bodyOpts{x: 50, y: 171, w: 40, h: 40, vel: components.Vector{Y: -600}})
	// Center below the top face: the one-way platform lets it through.
	newBody(e, bodyOpts{x: -50, y: 180, w: 40, h: 40})
	newBody(e, bodyOpts{x: 0, y: 100, w: 40, h: 40})

	assert.Equal(t, []donburi.Entity{resting.Entity()}, ridersOf(e.World, platform))
}
