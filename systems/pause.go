package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/yohamta/donburi/ecs"
)

// IsPaused reports whether the step should be skipped. Dialogue keeps the
// world running; only pause and menu freeze it.
func IsPaused(e *ecs.ECS) bool {
	gs := gameState(e.World)
	if gs == nil {
		return false
	}
	return gs.State == components.GameStatePause || gs.State == components.GameStateMenu
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// TogglePause flips between play and pause. Other states are left alone.
func TogglePause(e *ecs.ECS) {
	gs := gameState(e.World)
	if gs == nil {
		return
	}
	switch gs.State {
	case components.GameStatePlay:
		gs.State = components.GameStatePause
	case components.GameStatePause:
		gs.State = components.GameStatePlay
	}
}
