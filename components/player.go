package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Input, written by the input layer before each step.
	KeyLeft, KeyRight bool
	KeyJump, KeyDown  bool
	KeyAttack         bool

	Attacking   bool
	IsSummoning bool
	Hurt        bool
	Dead        bool
	DashTimer   float64 // ms

	// Flags read by the audio layer.
	JumpSound bool
	IsRunning bool

	// Respawn tracking.
	LastPosition  Vector
	SavedPosition Vector
	LandTime      float64
}

// MobData holds per-character movement tuning.
type MobData struct {
	MoveSpeed float64
	JumpSpeed float64 // negative, Y grows downward
	HurtSpeed float64
}

var (
	Player = donburi.NewComponentType[PlayerData]()
	Mob    = donburi.NewComponentType[MobData]()
)
