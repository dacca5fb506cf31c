package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity during a step and applied once at
// the end of it. Hits landing in the same step add up.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
