package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var enemies = donburi.NewQuery(filter.Contains(components.Enemy, components.Motion, components.Physics))

// UpdateEnemies asks each enemy's behavior for a target velocity. Enemies
// under gravity only steer horizontally. An active decoy takes priority
// over the player as the target.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	target, hasTarget := enemyTarget(w)
	elapsed := clock(w).ElapsedMS

	for _, id := range snapshot(w, enemies) {
		e := w.Entry(id)
		enemy := components.Enemy.Get(e)
		if enemy.Behavior == nil {
			continue
		}
		motion := components.Motion.Get(e)
		physics := components.Physics.Get(e)

		v := enemy.Behavior.Decide(components.BehaviorContext{
			Motion:    motion,
			Physics:   physics,
			Target:    target,
			HasTarget: hasTarget,
			ElapsedMS: elapsed,
		})

		if e.HasComponent(components.Gravity) {
			physics.TargetVelocity.X = v.X
		} else {
			physics.TargetVelocity = v
		}

		motion.SetFacing(physics.Velocity.X)
	}
}

func enemyTarget(w donburi.World) (components.Vector, bool) {
	if gs := gameState(w); gs != nil && gs.DecoyTimer > 0 {
		return gs.DecoyPosition, true
	}
	if pe, ok := firstPlayer(w); ok && !components.Player.Get(pe).Dead {
		return components.Motion.Get(pe).Position, true
	}
	return components.Vector{}, false
}
