package components

import (
	"github.com/yohamta/donburi"
)

// HitboxData is a damage area. Hitboxes with an owner follow it and expire;
// ownerless ones are static triggers that only show up in the contact log.
type HitboxData struct {
	Owner  donburi.Entity
	Damage int
	Timer  float64 // ms left
	// Hit keeps a target from taking damage twice from one swing.
	Hit map[donburi.Entity]bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
