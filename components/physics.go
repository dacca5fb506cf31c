package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity       Vector
	TargetVelocity Vector
	InAir          bool
	// Unspawnable is false while the entity rests on ground that was not
	// conjured by the player, i.e. a safe place to respawn.
	Unspawnable bool

	Elasticity float64 // 0..1, fraction of speed kept on a bounce
	AirDrag    float64 // 0..1, fraction of the velocity gap closed per step
	GroundDrag float64
	RampSpeed  float64 // 0..1, max climb per step as a fraction of horizontal speed

	// GroundMaterial is the material of the last surface this entity stood on.
	GroundMaterial Material
}

var Physics = donburi.NewComponentType[PhysicsData]()
