package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/simulation"
	"github.com/automoto/ascension/systems"
	"github.com/automoto/ascension/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldBuilder creates a fresh world. It is called again when the player
// restarts after dying.
type WorldBuilder func() (*simulation.World, error)

// SandboxScene runs the simulation at the ebiten tick rate and draws its
// collision hulls.
type SandboxScene struct {
	build WorldBuilder
	level string
	world *simulation.World
	once  sync.Once
}

// NewSandboxScene creates a scene for the world produced by build. level
// names the world for saved respawn points.
func NewSandboxScene(level string, build WorldBuilder) *SandboxScene {
	return &SandboxScene{build: build, level: level}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	if s.world == nil {
		return
	}
	e := s.world.ECS()

	// Input runs outside the world step so pause can be toggled while
	// paused.
	systems.UpdateInput(e)
	systems.ApplyPlayerInput(e)

	input, _ := components.Input.First(e.World)
	actions := components.Input.Get(input)
	if systems.GetAction(actions, cfg.ActionDebug).JustPressed {
		gs := s.world.GameState()
		gs.Debug = !gs.Debug
	}

	if p, ok := s.world.Player(); ok && components.Player.Get(p).Dead {
		if systems.GetAction(actions, cfg.ActionJump).JustPressed {
			s.restart()
		}
		return
	}

	// The overlay drew last tick's contacts; start this tick empty.
	s.world.CollisionLog().Clear()
	s.world.Step(time.Second / time.Duration(ebiten.TPS()))

	systems.UpdateCamera(e)
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.world == nil {
		return
	}
	e := s.world.ECS()

	if s.world.GameState().Debug {
		systems.DrawDebug(e, screen)
		return
	}
	off := systems.CameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	systems.DrawHulls(e.World, screen, off)
}

// Save stores the player's respawn point for this level.
func (s *SandboxScene) Save() {
	if s.world == nil {
		return
	}
	p, ok := s.world.Player()
	if !ok {
		return
	}
	if err := systems.SaveRespawnPoint(s.level, components.Player.Get(p)); err != nil {
		log.Printf("Warning: Could not save respawn point: %v", err)
	}
}

func (s *SandboxScene) configure() {
	w, err := s.build()
	if err != nil {
		log.Printf("Warning: Could not build world: %v", err)
		return
	}
	s.setWorld(w)

	if p, ok := w.Player(); ok {
		if err := systems.RestoreRespawnPoint(p, s.level); err != nil {
			log.Printf("Warning: Could not restore respawn point: %v", err)
		}
	}
}

func (s *SandboxScene) restart() {
	w, err := s.build()
	if err != nil {
		log.Printf("Warning: Could not rebuild world: %v", err)
		return
	}
	s.setWorld(w)
}

func (s *SandboxScene) setWorld(w *simulation.World) {
	factory.CreateCamera(w.ECS())
	w.GameState().Debug = cfg.Display.DebugStart
	s.world = w
}
