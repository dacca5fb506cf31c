package factory

import (
	"math"

	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBreakable spawns a crate that falls while airborne and becomes
// solid ground once it rests.
func CreateBreakable(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	b := archetypes.Breakable.Spawn(ecs)

	components.Motion.SetValue(b, components.MotionData{
		Position: components.Vector{X: x, Y: y},
		Scale:    components.Vector{X: w, Y: h},
	})
	components.Collider.SetValue(b, components.ColliderData{Hull: gamemath.SquareHull()})
	components.Physics.SetValue(b, DefaultPhysics())

	return b
}

// CreateSummonable conjures a rock next to the player. It follows the
// player until it is placed or thrown.
func CreateSummonable(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	s := archetypes.Summonable.Spawn(ecs)
	size := cfg.Summonable.Size

	components.Motion.SetValue(s, components.MotionData{
		Position: components.Vector{X: x, Y: y},
		Scale:    components.Vector{X: size, Y: size},
	})
	components.Collider.SetValue(s, components.ColliderData{Hull: gamemath.SquareHull()})
	components.Summonable.SetValue(s, components.SummonableData{
		Active:    true,
		Speed:     cfg.Summonable.Speed,
		MaxOffset: cfg.Summonable.MaxOffset,
	})

	return s
}

// PlaceSummonable turns an active summonable into a one-way stone platform
// that decays after cfg.Summonable.PlatformHP milliseconds.
func PlaceSummonable(s *donburi.Entry) {
	components.Summonable.Get(s).Active = false

	s.AddComponent(components.Solid)
	components.Solid.SetValue(s, components.SolidData{
		TopFaceOnly: true,
		Material:    components.MaterialStone,
	})
	s.AddComponent(components.Breakable)
	components.Breakable.SetValue(s, components.BreakableData{HP: cfg.Summonable.PlatformHP})
}

// ThrowSummonable launches an active summonable in an arc toward the side
// the player stands on. It is destroyed when it lands.
func ThrowSummonable(s *donburi.Entry, from components.Vector) {
	components.Summonable.Get(s).Active = false
	pos := components.Motion.Get(s).Position

	diff := from.X - pos.X
	angle := math.Atan2(-1000, 10*diff)
	speed := cfg.Summonable.ThrowSpeed

	phys := DefaultPhysics()
	phys.Velocity = components.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	s.AddComponent(components.Physics)
	components.Physics.SetValue(s, phys)
	s.AddComponent(components.Gravity)
	components.Gravity.SetValue(s, DefaultGravity())
	s.AddComponent(components.Projectile)
	components.Projectile.SetValue(s, components.ProjectileData{Type: components.ProjectileRock})
}
