package factory

import (
	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameState creates the singleton holding game state, the step clock
// and the collision log.
func CreateGameState(ecs *ecs.ECS) *donburi.Entry {
	state := archetypes.GameState.Spawn(ecs)
	components.GameState.SetValue(state, components.GameStateData{
		State: components.GameStatePlay,
	})
	return state
}
