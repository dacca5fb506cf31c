package factory

import (
	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	pos := components.Vector{X: x, Y: y}
	w, h := cfg.Player.Width, cfg.Player.Height

	components.Motion.SetValue(player, components.MotionData{
		Position: pos,
		Scale:    components.Vector{X: w, Y: h},
	})
	components.Collider.SetValue(player, components.ColliderData{Hull: gamemath.SquareHull()})
	components.Physics.SetValue(player, DefaultPhysics())
	components.Gravity.SetValue(player, DefaultGravity())
	components.Player.SetValue(player, components.PlayerData{
		LastPosition:  pos,
		SavedPosition: pos,
	})
	components.Mob.SetValue(player, components.MobData{
		MoveSpeed: cfg.Player.MoveSpeed,
		JumpSpeed: cfg.Player.JumpSpeed,
		HurtSpeed: cfg.Player.HurtSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}

// DefaultPhysics returns a Physics component with the configured body tuning.
func DefaultPhysics() components.PhysicsData {
	return components.PhysicsData{
		Elasticity: cfg.Body.Elasticity,
		AirDrag:    cfg.Body.AirDrag,
		GroundDrag: cfg.Body.GroundDrag,
		RampSpeed:  cfg.Body.RampSpeed,
		InAir:      true,
	}
}

// DefaultGravity returns a Gravity component with the configured tuning.
func DefaultGravity() components.GravityData {
	return components.GravityData{
		Magnitude:        cfg.Body.Gravity,
		TerminalVelocity: cfg.Body.TerminalVelocity,
	}
}
