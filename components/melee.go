package components

import "github.com/yohamta/donburi"

type MeleeAttackData struct {
	Cooldown float64        // ms until the next swing is allowed
	Hitbox   donburi.Entity // the swing in progress, if any
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
