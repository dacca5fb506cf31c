// Package simulation owns the entity world and runs the fixed-order
// physics step.
package simulation

import (
	"math"
	"time"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/systems"
	"github.com/automoto/ascension/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options sizes the trigger space. Zero values fall back to defaults.
type Options struct {
	Width, Height int
	CellSize      int
}

const (
	defaultSpaceSize = 4096
	defaultCellSize  = 32
)

// World is the simulation context. Everything the step touches lives in
// its ECS; there is no package-level entity state.
type World struct {
	ecs *ecs.ECS
}

// New creates an empty world with the game state singleton, the trigger
// space and the systems registered in step order.
func New(opts Options) *World {
	if opts.Width <= 0 {
		opts.Width = defaultSpaceSize
	}
	if opts.Height <= 0 {
		opts.Height = defaultSpaceSize
	}
	if opts.CellSize <= 0 {
		opts.CellSize = defaultCellSize
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGameState(e)
	factory.CreateSpace(e, opts.Width, opts.Height, opts.CellSize, opts.CellSize)

	// Order matters: intent, then gravity, then integration and
	// resolution, then the state that depends on resolved positions.
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFloatingPlatforms))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSummonables))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateGravity))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBreakables))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateHitboxes))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisionLog))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDamage))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateRespawn))

	return &World{ecs: e}
}

// ECS exposes the underlying ECS for spawning entities and adding
// renderers.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Step advances the world once. elapsed is clamped to the configured
// maximum step; the excess is dropped, not carried over.
func (w *World) Step(elapsed time.Duration) {
	c := w.Clock()
	c.ElapsedMS = math.Min(math.Max(0, float64(elapsed)/float64(time.Millisecond)), cfg.MaxStepMS())
	c.Tick++
	w.ecs.Update()
}

// Clock returns the step clock.
func (w *World) Clock() *components.ClockData {
	e, _ := components.Clock.First(w.ecs.World)
	return components.Clock.Get(e)
}

// GameState returns the shared game state.
func (w *World) GameState() *components.GameStateData {
	e, _ := components.GameState.First(w.ecs.World)
	return components.GameState.Get(e)
}

// CollisionLog returns the contact log. Callers clear it once they have
// read it.
func (w *World) CollisionLog() *components.CollisionLogData {
	e, _ := components.CollisionLog.First(w.ecs.World)
	return components.CollisionLog.Get(e)
}

// Player returns the first player entity.
func (w *World) Player() (*donburi.Entry, bool) {
	return components.Player.First(w.ecs.World)
}

// Entry returns the entry for e, or nil once e has been removed.
func (w *World) Entry(e donburi.Entity) *donburi.Entry {
	if !w.ecs.World.Valid(e) {
		return nil
	}
	return w.ecs.World.Entry(e)
}
