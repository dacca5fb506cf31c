package archetypes

import (
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Motion,
		components.Collider,
		components.Solid,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		tags.FloatingPlatform,
		components.Motion,
		components.Collider,
		components.Solid,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Mob,
		components.Motion,
		components.Collider,
		components.Physics,
		components.Gravity,
		components.Health,
		components.Object,
		components.MeleeAttack,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Motion,
		components.Collider,
		components.Physics,
		components.Health,
	)
	Projectile = newArchetype(
		components.Projectile,
		components.Motion,
		components.Collider,
		components.Physics,
		components.Gravity,
	)
	Breakable = newArchetype(
		components.Breakable,
		components.Motion,
		components.Collider,
		components.Physics,
	)
	Summonable = newArchetype(
		components.Summonable,
		components.Motion,
		components.Collider,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Motion,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
		components.Clock,
		components.CollisionLog,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
