package systems

import (
	"math"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var gravityBodies = donburi.NewQuery(filter.Contains(components.Gravity, components.Physics))

// UpdateGravity accelerates both velocity.y and targetVelocity.y while
// neither exceeds the terminal velocity, and never past it.
func UpdateGravity(ecs *ecs.ECS) {
	dt := clock(ecs.World).StepSeconds()

	for _, id := range snapshot(ecs.World, gravityBodies) {
		e := ecs.World.Entry(id)
		grav := components.Gravity.Get(e)
		physics := components.Physics.Get(e)

		if math.Abs(physics.TargetVelocity.Y) <= grav.TerminalVelocity &&
			math.Abs(physics.Velocity.Y) <= grav.TerminalVelocity {
			physics.TargetVelocity.Y = gamemath.ClampSpeed(physics.TargetVelocity.Y+dt*grav.Magnitude, grav.TerminalVelocity)
			physics.Velocity.Y = gamemath.ClampSpeed(physics.Velocity.Y+dt*grav.Magnitude, grav.TerminalVelocity)
		}

		if !e.HasComponent(components.Player) {
			continue
		}
		player := components.Player.Get(e)
		// Rising or resting ends the knockback hop.
		if physics.Velocity.Y <= 0 {
			player.Hurt = false
		}
		if physics.Velocity.Y > cfg.Physics.LandingSoundSpeed {
			player.JumpSound = true
		}
	}
}
