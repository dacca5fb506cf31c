package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// InvincibleData suppresses health loss until Timer (ms) runs out.
type InvincibleData struct {
	Timer float64
}

var (
	Health     = donburi.NewComponentType[HealthData]()
	Invincible = donburi.NewComponentType[InvincibleData]()
)
