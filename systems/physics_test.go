package systems

import (
	"math"
	"testing"

	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testStepMS = 16.6

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGameState(e)
	return e
}

// step runs the physics-related systems in their production order.
func step(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		c := clock(e.World)
		c.ElapsedMS = testStepMS
		c.Tick++
		UpdateGravity(e)
		UpdatePhysics(e)
		UpdateBreakables(e)
		UpdateCollisionLog(e)
		UpdateProjectiles(e)
	}
}

type bodyOpts struct {
	x, y, w, h float64
	vel        components.Vector
	gravity    bool
	elasticity float64
	rampSpeed  float64
}

func newBody(e *ecs.ECS, o bodyOpts, extra ...donburi.IComponentType) *donburi.Entry {
	cs := []donburi.IComponentType{components.Motion, components.Collider, components.Physics}
	if o.gravity {
		cs = append(cs, components.Gravity)
	}
	entry := e.World.Entry(e.World.Create(append(cs, extra...)...))

	components.Motion.SetValue(entry, components.MotionData{
		Position: components.Vector{X: o.x, Y: o.y},
		Scale:    components.Vector{X: o.w, Y: o.h},
	})
	components.Collider.SetValue(entry, components.ColliderData{Hull: gamemath.SquareHull()})

	phys := factory.DefaultPhysics()
	phys.Velocity = o.vel
	phys.TargetVelocity = o.vel
	phys.Elasticity = o.elasticity
	phys.RampSpeed = o.rampSpeed
	components.Physics.SetValue(entry, phys)

	if o.gravity {
		components.Gravity.SetValue(entry, components.GravityData{Magnitude: 2508.8, TerminalVelocity: 2400})
	}
	return entry
}

func pos(e *donburi.Entry) components.Vector {
	return components.Motion.Get(e).Position
}

func TestGrounding_SquareOnFloor(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 150, 200, 20)
	body := newBody(e, bodyOpts{x: 0, y: 0, w: 84, h: 84, gravity: true})

	step(e, 120)

	phys := components.Physics.Get(body)
	assert.False(t, phys.InAir)
	y := pos(body).Y
	assert.InDelta(t, 98, y, 1, "rests on the floor's top edge")

	// It stays put.
	for i := 0; i < 60; i++ {
		step(e, 1)
		require.Equal(t, y, pos(body).Y)
		require.False(t, components.Physics.Get(body).InAir)
	}
	assert.Equal(t, 0.0, pos(body).X)
}

func TestGrounding_Bounce(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 60, 200, 20)
	body := newBody(e, bodyOpts{w: 20, h: 20, vel: components.Vector{Y: 600}, elasticity: 0.5})

	step(e, 5)

	phys := components.Physics.Get(body)
	assert.InDelta(t, -300, phys.Velocity.Y, 1e-9)
	assert.InDelta(t, -300, phys.TargetVelocity.Y, 1e-9)
	assert.Equal(t, 39.0, pos(body).Y, "closest free integer position above the floor")
}

func TestOneWay_PassesFromBelow(t *testing.T) {
	e := newTestECS()
	factory.CreateOneWayPlatform(e, 0, 0, 200, 20)
	body := newBody(e, bodyOpts{x: 0, y: 100, w: 40, h: 40, vel: components.Vector{Y: -1200}})

	step(e, 12)

	assert.Less(t, pos(body).Y, -100.0)
	assert.Equal(t, -1200.0, components.Physics.Get(body).Velocity.Y)
}

func TestOneWay_LandsFromAbove(t *testing.T) {
	e := newTestECS()
	factory.CreateOneWayPlatform(e, 0, 0, 200, 20)
	body := newBody(e, bodyOpts{x: 0, y: -100, w: 40, h: 40, vel: components.Vector{Y: 600}})

	step(e, 15)

	assert.False(t, components.Physics.Get(body).InAir)
	assert.Equal(t, -31.0, pos(body).Y)
}

func TestOneWay_PlayerDropsThrough(t *testing.T) {
	e := newTestECS()
	factory.CreateOneWayPlatform(e, 0, 0, 200, 20)
	body := newBody(e, bodyOpts{x: 0, y: -100, w: 40, h: 40, vel: components.Vector{Y: 600}}, components.Player)
	components.Player.SetValue(body, components.PlayerData{KeyDown: true})

	step(e, 20)

	assert.Greater(t, pos(body).Y, 20.0)
}

func TestRamp_WithinToleranceKeepsSpeed(t *testing.T) {
	e := newTestECS()
	factory.CreateSlope(e, 100, 0, 64, 64, 1)
	body := newBody(e, bodyOpts{x: 40, y: 21, w: 20, h: 20, vel: components.Vector{X: 300}, rampSpeed: 1})

	step(e, 40)

	phys := components.Physics.Get(body)
	assert.Equal(t, 300.0, phys.Velocity.X)
	assert.Equal(t, 200.0, pos(body).X)
	assert.Less(t, pos(body).Y, -40.0, "climbed over the top of the ramp")
}

func TestRamp_BeyondToleranceStops(t *testing.T) {
	e := newTestECS()
	factory.CreateSlope(e, 100, 0, 64, 64, 1)
	body := newBody(e, bodyOpts{x: 40, y: 21, w: 20, h: 20, vel: components.Vector{X: 300}, rampSpeed: 0.1})

	step(e, 40)

	phys := components.Physics.Get(body)
	assert.Equal(t, 0.0, phys.Velocity.X)
	assert.Equal(t, 0.0, phys.TargetVelocity.X)
	assert.LessOrEqual(t, pos(body).X, 60.0)
	assert.Equal(t, 21.0, pos(body).Y)
}

func TestWall_StopsAtClosestInteger(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 100, 0, 20, 200)
	body := newBody(e, bodyOpts{x: 40, y: 0, w: 20, h: 20, vel: components.Vector{X: 300}, rampSpeed: 1})

	step(e, 20)

	assert.Equal(t, 79.0, pos(body).X)
	assert.Equal(t, 0.0, components.Physics.Get(body).Velocity.X)
}

func TestGravity_TerminalVelocity(t *testing.T) {
	e := newTestECS()
	body := newBody(e, bodyOpts{w: 20, h: 20, gravity: true})

	for i := 0; i < 600; i++ {
		step(e, 1)
		phys := components.Physics.Get(body)
		require.LessOrEqual(t, math.Abs(phys.Velocity.Y), 2400.0)
		require.LessOrEqual(t, math.Abs(phys.TargetVelocity.Y), 2400.0)
	}
	assert.Equal(t, 2400.0, components.Physics.Get(body).Velocity.Y)
}

func TestGravity_PlayerFlags(t *testing.T) {
	e := newTestECS()
	body := newBody(e, bodyOpts{w: 20, h: 20, gravity: true, vel: components.Vector{Y: -100}}, components.Player)
	components.Player.SetValue(body, components.PlayerData{Hurt: true})

	step(e, 1)
	assert.False(t, components.Player.Get(body).Hurt, "rising clears hurt")
	assert.False(t, components.Player.Get(body).JumpSound)

	components.Physics.Get(body).Velocity.Y = 800
	components.Physics.Get(body).TargetVelocity.Y = 800
	step(e, 1)
	assert.True(t, components.Player.Get(body).JumpSound)
}

func TestBreakable_Toggle(t *testing.T) {
	e := newTestECS()
	floor := factory.CreateWall(e, 0, 100, 200, 20)
	crate := factory.CreateBreakable(e, 0, 0, 40, 40)

	step(e, 1)
	assert.True(t, crate.HasComponent(components.Gravity), "airborne crates fall")
	assert.False(t, crate.HasComponent(components.Solid))

	step(e, 60)
	assert.True(t, crate.HasComponent(components.Solid), "resting crates are solid")
	assert.False(t, crate.HasComponent(components.Gravity))
	assert.Equal(t, 69.0, pos(crate).Y)

	// It stays solid while supported.
	step(e, 10)
	assert.True(t, crate.HasComponent(components.Solid))

	e.World.Remove(floor.Entity())
	step(e, 1)
	assert.False(t, crate.HasComponent(components.Solid))
	assert.True(t, crate.HasComponent(components.Gravity))
}

func TestBreakable_CarriesBody(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 100, 400, 20)
	crate := factory.CreateBreakable(e, 0, 60, 40, 40)
	step(e, 10)
	require.True(t, crate.HasComponent(components.Solid))

	body := newBody(e, bodyOpts{x: 0, y: -60, w: 20, h: 20, gravity: true})
	step(e, 60)

	assert.False(t, components.Physics.Get(body).InAir)
	top := pos(crate).Y - 20
	assert.InDelta(t, top-10, pos(body).Y, 1.5, "stands on the crate")
}

func TestCollisionLog(t *testing.T) {
	e := newTestECS()
	hitbox := factory.CreateHitbox(e, 0, 0, 40, 40)
	body := newBody(e, bodyOpts{x: 10, y: 0, w: 20, h: 20})
	w1 := factory.CreateWall(e, 200, 0, 40, 40)
	w2 := factory.CreateWall(e, 210, 0, 40, 40)
	far := newBody(e, bodyOpts{x: 1000, y: 0, w: 20, h: 20})

	UpdateCollisionLog(e)
	log := collisionLog(e.World)

	assert.Equal(t, []donburi.Entity{body.Entity()}, log.With(hitbox.Entity()))
	assert.Equal(t, []donburi.Entity{hitbox.Entity()}, log.With(body.Entity()))
	assert.False(t, log.Has(w1.Entity()), "solid pairs are not logged")
	assert.False(t, log.Has(w2.Entity()))
	assert.False(t, log.Has(far.Entity()))
	assert.Len(t, log.Events, 2)

	// The engine never clears the log.
	UpdateCollisionLog(e)
	assert.Len(t, log.Events, 4)

	log.Clear()
	assert.Empty(t, log.Events)
}

func stepUntilLanded(t *testing.T, e *ecs.ECS, p *donburi.Entry) {
	t.Helper()
	for i := 0; i < 200; i++ {
		step(e, 1)
		if components.Projectile.Get(p).Landed {
			return
		}
	}
	t.Fatal("projectile never landed")
}

func TestProjectile_DecoyLanding(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 100, 200, 20)
	p := factory.CreateProjectile(e, factory.ProjectileOptions{
		Position: components.Vector{X: 0, Y: 0},
		Size:     16,
		Type:     components.ProjectileDecoy,
	})

	stepUntilLanded(t, e, p)

	proj := components.Projectile.Get(p)
	assert.Greater(t, proj.Timer, 1900.0)
	assert.LessOrEqual(t, proj.Timer, 2000.0)

	gs := gameState(e.World)
	assert.Greater(t, gs.DecoyTimer, 5900.0)
	assert.Equal(t, 0.0, gs.DecoyPosition.X)

	id := p.Entity()
	step(e, 200)
	assert.False(t, e.World.Valid(id), "landed projectiles expire")
	assert.Greater(t, gs.DecoyTimer, 0.0)
}

func TestProjectile_HeartLastsLonger(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 100, 200, 20)
	p := factory.CreateProjectile(e, factory.ProjectileOptions{
		Size: 16,
		Type: components.ProjectileHeart,
	})

	stepUntilLanded(t, e, p)

	assert.Greater(t, components.Projectile.Get(p).Timer, 3900.0)
	assert.Zero(t, gameState(e.World).DecoyTimer)
}

func TestResolve_DeterministicOrder(t *testing.T) {
	run := func() []components.Vector {
		e := newTestECS()
		factory.CreateWall(e, 0, 200, 800, 20)
		factory.CreateSlope(e, 200, 158, 64, 64, 1)
		var bodies []*donburi.Entry
		for i := 0; i < 8; i++ {
			bodies = append(bodies, newBody(e, bodyOpts{
				x: float64(i * 30), y: float64(-i * 10), w: 24, h: 24,
				vel: components.Vector{X: 120}, gravity: true, rampSpeed: 1,
			}))
		}
		var out []components.Vector
		for i := 0; i < 120; i++ {
			step(e, 1)
			for _, b := range bodies {
				out = append(out, pos(b))
			}
		}
		return out
	}

	assert.Equal(t, run(), run())
}
