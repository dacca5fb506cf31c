package components

import "github.com/yohamta/donburi"

type GameStateID int

const (
	GameStatePlay GameStateID = iota
	GameStatePause
	GameStateMenu
	GameStateDialogue
)

// GameStateData is the singleton shared between physics and game logic.
type GameStateData struct {
	State GameStateID

	DecoyPosition Vector
	DecoyTimer    float64 // ms, a decoy is active while positive

	// Bounds is the bottom-right corner of the level in world units.
	Bounds Vector

	Debug bool
}

// ClockData holds the elapsed time of the step in progress, already clamped.
type ClockData struct {
	ElapsedMS float64
	Tick      uint64
}

// StepSeconds returns the step length in seconds.
func (c *ClockData) StepSeconds() float64 {
	return c.ElapsedMS / 1000
}

var (
	GameState = donburi.NewComponentType[GameStateData]()
	Clock     = donburi.NewComponentType[ClockData]()
)
