package components

import "github.com/yohamta/donburi"

// BehaviorContext is what an enemy behaviour sees when deciding how to move.
type BehaviorContext struct {
	Motion  *MotionData
	Physics *PhysicsData
	// Target is the point the enemy is interested in: the decoy while one
	// is active, otherwise the player.
	Target    Vector
	HasTarget bool
	ElapsedMS float64
}

// EnemyBehavior returns the velocity an enemy wants to reach this step.
type EnemyBehavior interface {
	Decide(ctx BehaviorContext) Vector
}

type EnemyData struct {
	Kind     string
	Behavior EnemyBehavior
}

var Enemy = donburi.NewComponentType[EnemyData]()
