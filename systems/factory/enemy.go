package factory

import (
	"fmt"

	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/systems/behavior"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the configured kind centered on (x, y).
// Flying kinds get no Gravity component.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, ok := cfg.Enemy.Types[enemyTypeName]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", enemyTypeName)
	}

	pos := components.Vector{X: x, Y: y}
	b, err := behavior.FromConfig(enemyType, pos)
	if err != nil {
		return nil, err
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Motion.SetValue(enemy, components.MotionData{
		Position: pos,
		// Start facing left.
		Scale: components.Vector{X: -enemyType.Width, Y: enemyType.Height},
	})
	components.Collider.SetValue(enemy, components.ColliderData{Hull: gamemath.SquareHull()})
	components.Physics.SetValue(enemy, DefaultPhysics())
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:     enemyTypeName,
		Behavior: b,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	if !enemyType.Flying {
		enemy.AddComponent(components.Gravity)
		components.Gravity.SetValue(enemy, DefaultGravity())
	}

	return enemy, nil
}
