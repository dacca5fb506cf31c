package factory

import (
	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileOptions describes a projectile launched from a position.
type ProjectileOptions struct {
	Position components.Vector
	Velocity components.Vector
	Size     float64
	Type     components.ProjectileType
	Enemy    bool
}

// CreateProjectile spawns a falling projectile. Decoys publish their
// resting position to the game state once they land.
func CreateProjectile(ecs *ecs.ECS, opts ProjectileOptions) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := opts.Size
	if size == 0 {
		size = 16
	}
	scale := components.Vector{X: size, Y: size}
	if opts.Velocity.X < 0 {
		scale.X = -scale.X
	}

	components.Motion.SetValue(p, components.MotionData{
		Position: opts.Position,
		Scale:    scale,
	})
	components.Collider.SetValue(p, components.ColliderData{Hull: gamemath.SquareHull()})

	phys := DefaultPhysics()
	phys.Velocity = opts.Velocity
	phys.TargetVelocity = components.Vector{Y: opts.Velocity.Y}
	components.Physics.SetValue(p, phys)
	components.Gravity.SetValue(p, DefaultGravity())

	components.Projectile.SetValue(p, components.ProjectileData{
		Type:  opts.Type,
		Enemy: opts.Enemy,
		Decoy: opts.Type == components.ProjectileDecoy,
	})

	return p
}
