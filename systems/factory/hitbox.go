package factory

import (
	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns a static damage area. It has no physics and no
// owner; it only shows up in the collision log.
func CreateHitbox(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hb := archetypes.Hitbox.Spawn(ecs)
	components.Motion.SetValue(hb, components.MotionData{
		Position: components.Vector{X: x, Y: y},
		Scale:    components.Vector{X: w, Y: h},
	})
	components.Collider.SetValue(hb, components.ColliderData{Hull: gamemath.SquareHull()})
	return hb
}

// CreateAttackHitbox spawns a melee swing in front of owner.
func CreateAttackHitbox(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	hb := CreateHitbox(ecs, 0, 0, cfg.Combat.HitboxWidth, cfg.Combat.HitboxHeight)
	components.Hitbox.SetValue(hb, components.HitboxData{
		Owner:  owner.Entity(),
		Damage: cfg.Combat.PlayerDamage,
		Timer:  cfg.Combat.HitboxLifetime,
		Hit:    make(map[donburi.Entity]bool),
	})
	PlaceHitbox(components.Motion.Get(hb), components.Motion.Get(owner))
	return hb
}

// PlaceHitbox puts a hitbox beside its owner on the side the owner faces,
// vertically centered.
func PlaceHitbox(hb, owner *components.MotionData) {
	facing := owner.Facing()
	hb.Position = components.Vector{
		X: owner.Position.X + facing*(owner.Size().X+hb.Size().X)/2,
		Y: owner.Position.Y,
	}
	hb.SetFacing(facing)
}
