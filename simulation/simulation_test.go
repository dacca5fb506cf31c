package simulation

import (
	"testing"
	"time"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/systems"
	"github.com/automoto/ascension/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const frame = 16600 * time.Microsecond

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(frame)
	}
}

func TestStep_ClampsElapsed(t *testing.T) {
	w := New(Options{})

	w.Step(100 * time.Millisecond)
	assert.InDelta(t, cfg.MaxStepMS(), w.Clock().ElapsedMS, 1e-9)

	w.Step(5 * time.Millisecond)
	assert.InDelta(t, 5, w.Clock().ElapsedMS, 1e-9)

	w.Step(-time.Second)
	assert.Zero(t, w.Clock().ElapsedMS)

	assert.Equal(t, uint64(3), w.Clock().Tick)
}

func TestStep_SlowFrameDoesNotTunnel(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 200, 20)
	p := w.SpawnPlayer(0, 0)

	for i := 0; i < 120; i++ {
		w.Step(250 * time.Millisecond)
	}

	assert.False(t, components.Physics.Get(p).InAir)
	assert.InDelta(t, 98, components.Motion.Get(p).Position.Y, 1)
}

func TestPause_SkipsStep(t *testing.T) {
	w := New(Options{})
	p := w.SpawnPlayer(0, 0)

	w.GameState().State = components.GameStatePause
	stepN(w, 10)
	assert.Equal(t, components.Vector{}, components.Motion.Get(p).Position)

	w.GameState().State = components.GameStateMenu
	stepN(w, 10)
	assert.Equal(t, components.Vector{}, components.Motion.Get(p).Position)

	w.GameState().State = components.GameStatePlay
	stepN(w, 10)
	assert.Greater(t, components.Motion.Get(p).Position.Y, 0.0)
}

func TestDialogue_FreezesPlayerIntent(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 2000, 20)
	p := w.SpawnPlayer(0, 0)
	stepN(w, 60)

	w.GameState().State = components.GameStateDialogue
	components.Player.Get(p).KeyRight = true
	stepN(w, 30)

	assert.Zero(t, components.Physics.Get(p).TargetVelocity.X)
	assert.Equal(t, 0.0, components.Motion.Get(p).Position.X)
}

func TestPlayer_WalksAndJumps(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 4000, 20)
	p := w.SpawnPlayer(0, 0)
	stepN(w, 60)
	require.False(t, components.Physics.Get(p).InAir)

	player := components.Player.Get(p)
	player.KeyLeft = true
	stepN(w, 30)

	motion := components.Motion.Get(p)
	assert.Less(t, motion.Position.X, 0.0)
	assert.Equal(t, -1.0, motion.Facing(), "facing follows input")
	assert.True(t, player.IsRunning)

	player.KeyLeft = false
	player.KeyJump = true
	stepN(w, 1)
	assert.True(t, components.Physics.Get(p).InAir)
	assert.Less(t, components.Physics.Get(p).Velocity.Y, 0.0)
	player.KeyJump = false

	stepN(w, 120)
	assert.False(t, components.Physics.Get(p).InAir, "lands again")
	assert.InDelta(t, 98, motion.Position.Y, 1)
}

func TestPlayer_Dash(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 4000, 20)
	p := w.SpawnPlayer(0, 0)
	stepN(w, 60)

	components.Player.Get(p).DashTimer = cfg.Player.DashTime
	w.Step(frame)

	want := cfg.Player.MoveSpeed * cfg.Player.DashFactor
	assert.InDelta(t, want, components.Physics.Get(p).TargetVelocity.X, 1e-9)

	stepN(w, 30)
	assert.Zero(t, components.Player.Get(p).DashTimer)
}

func TestRespawn_KillPlane(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 200, 20)
	w.AddKillPlane(4000, 200)
	p := w.SpawnPlayer(0, 0)

	stepN(w, 90)
	player := components.Player.Get(p)
	require.Equal(t, components.Vector{X: 0, Y: 97}, player.SavedPosition)

	components.Motion.Get(p).Position = components.Vector{X: 0, Y: 600}
	w.Step(frame)

	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(p).Current)
	assert.Equal(t, components.Vector{X: 0, Y: 97}, components.Motion.Get(p).Position)
	assert.Equal(t, components.Vector{}, components.Physics.Get(p).Velocity)
	assert.True(t, p.HasComponent(components.Invincible))

	stepN(w, 60)
	assert.False(t, p.HasComponent(components.Invincible), "invulnerability wears off")
	assert.False(t, player.Dead)
}

func TestRespawn_LastLifeDies(t *testing.T) {
	w := New(Options{})
	w.AddKillPlane(4000, 200)
	p := w.SpawnPlayer(0, 600)
	components.Health.Get(p).Current = 1

	w.Step(frame)

	assert.True(t, components.Player.Get(p).Dead)
	assert.Zero(t, components.Health.Get(p).Current)
}

func TestSummon_PlaceAndDecay(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 2000, 20)
	p := w.SpawnPlayer(0, 0)
	stepN(w, 60)

	systems.ToggleSummon(w.ECS())
	require.True(t, components.Player.Get(p).IsSummoning)

	rock, ok := components.Summonable.First(w.ECS().World)
	require.True(t, ok)
	id := rock.Entity()
	stepN(w, 60)

	// The rock hovers above and in front of the player.
	pm := components.Motion.Get(p)
	rm := components.Motion.Get(w.Entry(id))
	assert.InDelta(t, pm.Position.X+0.5*cfg.Summonable.MaxOffset, rm.Position.X, 1)
	assert.InDelta(t, pm.Position.Y-cfg.Summonable.MaxOffset, rm.Position.Y, 1)

	systems.ToggleSummon(w.ECS())
	rockEntry := w.Entry(id)
	require.NotNil(t, rockEntry)
	assert.False(t, components.Player.Get(p).IsSummoning)
	assert.True(t, rockEntry.HasComponent(components.Solid))
	assert.True(t, components.Solid.Get(rockEntry).TopFaceOnly)

	ms := int(cfg.Summonable.PlatformHP/16.6) + 2
	stepN(w, ms)
	assert.Nil(t, w.Entry(id), "placed rocks decay")
}

func TestSummon_Throw(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 4000, 20)
	p := w.SpawnPlayer(0, 0)
	stepN(w, 60)

	systems.ToggleSummon(w.ECS())
	stepN(w, 30)
	rock, ok := components.Summonable.First(w.ECS().World)
	require.True(t, ok)
	id := rock.Entity()

	systems.ThrowSummoned(w.ECS())
	assert.False(t, components.Player.Get(p).IsSummoning)
	rockEntry := w.Entry(id)
	require.True(t, rockEntry.HasComponent(components.Physics))
	assert.Less(t, components.Physics.Get(rockEntry).Velocity.Y, 0.0, "thrown upward")

	stepN(w, 400)
	assert.Nil(t, w.Entry(id), "thrown rocks break on landing")
}

func TestEnemies_ChaseDecoy(t *testing.T) {
	w := New(Options{})
	factory.CreateWall(w.ECS(), 0, 150, 4000, 20)
	slime, err := factory.CreateEnemy(w.ECS(), 0, 100, "Slime")
	require.NoError(t, err)

	w.GameState().DecoyPosition = components.Vector{X: 200, Y: 100}
	w.GameState().DecoyTimer = 1000
	stepN(w, 30)

	assert.Greater(t, components.Motion.Get(slime).Position.X, 0.0)
	assert.Equal(t, 1.0, components.Motion.Get(slime).Facing())
}

var moving = donburi.NewQuery(filter.Contains(components.Motion, components.Physics))

func TestDemo_Deterministic(t *testing.T) {
	run := func() []components.Vector {
		w := NewDemo()
		p, ok := w.Player()
		require.True(t, ok)
		player := components.Player.Get(p)

		var out []components.Vector
		for i := 0; i < 400; i++ {
			player.KeyRight = i%120 < 80
			player.KeyJump = i%90 == 0
			w.Step(frame)
			moving.Each(w.ECS().World, func(e *donburi.Entry) {
				out = append(out, components.Motion.Get(e).Position)
			})
			w.CollisionLog().Clear()
		}
		return out
	}

	assert.Equal(t, run(), run())
}
