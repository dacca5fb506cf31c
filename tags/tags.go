package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Hitbox           = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for trigger sensing
const (
	ResolvPlayer   = "Player"
	ResolvDeadZone = "deadzone"
)
