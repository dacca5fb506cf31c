package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/ascension/config"
	"github.com/automoto/ascension/scenes"
	"github.com/automoto/ascension/simulation"
	"github.com/automoto/ascension/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.SandboxScene
}

func NewGame(levelPath string) *Game {
	name := "demo"
	build := func() (*simulation.World, error) {
		return simulation.NewDemo(), nil
	}
	if levelPath != "" {
		name = strings.TrimSuffix(filepath.Base(levelPath), filepath.Ext(levelPath))
		build = func() (*simulation.World, error) {
			return simulation.NewFromFile(levelPath)
		}
	}
	return &Game{scene: scenes.NewSandboxScene(name, build)}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Save()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Display.Width, config.Display.Height
}

func main() {
	levelPath := flag.String("level", "", "TMX level to load (empty = built-in demo)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ebiten.SetWindowSize(config.Display.Width, config.Display.Height)
	ebiten.SetWindowTitle("Ascension")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	// Saved respawn points are optional; the game runs without them.
	if err := systems.InitPersistence("ascension"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*levelPath)); err != nil {
		log.Fatal(err)
	}
}
