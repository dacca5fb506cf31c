package systems

import (
	"math"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var players = donburi.NewQuery(filter.Contains(
	components.Player, components.Mob, components.Motion, components.Physics,
))

// UpdatePlayer turns the player's input flags into velocity and target
// velocity writes ahead of the generic integrators.
func UpdatePlayer(ecs *ecs.ECS) {
	w := ecs.World
	elapsed := clock(w).ElapsedMS
	gs := gameState(w)

	for _, id := range snapshot(w, players) {
		e := w.Entry(id)
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)
		physics := components.Physics.Get(e)
		mob := components.Mob.Get(e)

		if gs != nil && gs.State == components.GameStateDialogue {
			physics.TargetVelocity = components.Vector{}
			continue
		}

		if player.Dead {
			physics.TargetVelocity = components.Vector{}
			physics.Velocity = components.Vector{}
		} else {
			movePlayer(player, motion, physics, mob)
		}

		player.IsRunning = !physics.InAir && math.Abs(physics.Velocity.X) > cfg.Player.RunningSpeed

		if player.DashTimer > 0 {
			player.DashTimer = math.Max(0, player.DashTimer-elapsed)
		}
	}
}

func movePlayer(player *components.PlayerData, motion *components.MotionData, physics *components.PhysicsData, mob *components.MobData) {
	hdir := 0.0
	if player.KeyRight {
		hdir++
	}
	if player.KeyLeft {
		hdir--
	}
	if player.Attacking || player.DashTimer > 0 {
		hdir = 0
	}
	motion.SetFacing(hdir)

	if player.DashTimer > 0 {
		dash := motion.Facing() * mob.MoveSpeed * cfg.Player.DashFactor
		physics.TargetVelocity.X = dash
		physics.Velocity.X = dash
		return
	}

	physics.TargetVelocity.X = mob.MoveSpeed * hdir * cfg.Player.RunFactor

	if player.KeyJump && !physics.InAir {
		physics.Velocity.X *= cfg.Player.RunFactor
		physics.Velocity.Y = mob.JumpSpeed
		physics.TargetVelocity.Y = mob.JumpSpeed
	}
	if player.Hurt && !physics.InAir {
		physics.Velocity.Y = mob.HurtSpeed
		physics.TargetVelocity.Y = mob.HurtSpeed
	}
}

// firstPlayer returns the first player entity, if any.
func firstPlayer(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}
