package simulation

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/leveldata"
	"github.com/automoto/ascension/systems/factory"
	"github.com/yohamta/donburi"
)

// NewFromLevel builds a world sized to lvl and populated from it. The
// player is placed on the first spawn point, if any.
func NewFromLevel(lvl *leveldata.Level) (*World, error) {
	w := New(Options{
		Width:  lvl.MapWidth,
		Height: lvl.MapHeight + int(cfg.Physics.KillPlaneMargin+cfg.Physics.KillPlaneThickness),
	})
	if err := w.Populate(lvl); err != nil {
		return nil, err
	}
	return w, nil
}

// NewFromFile loads the TMX level at path and builds a world from it.
// Tilesets are resolved relative to the level's directory.
func NewFromFile(path string) (*World, error) {
	lvl, err := leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return NewFromLevel(lvl)
}

// Populate creates the solids, platforms, breakables, enemies, player and
// kill plane described by lvl.
func (w *World) Populate(lvl *leveldata.Level) error {
	e := w.ecs
	w.GameState().Bounds = components.Vector{X: float64(lvl.MapWidth), Y: float64(lvl.MapHeight)}

	for _, s := range lvl.Solids {
		factory.CreateSolid(e, factory.SolidOptions{
			X:        s.X + s.W/2,
			Y:        s.Y + s.H/2,
			W:        s.W,
			H:        s.H,
			OneWay:   s.OneWay,
			Slope:    s.Slope,
			Material: parseMaterial(s.Material),
		})
	}
	for _, p := range lvl.Platforms {
		factory.CreateFloatingPlatform(e, p.X+p.W/2, p.Y+p.H/2, p.W, p.H, p.Rise, p.Period)
	}
	for _, b := range lvl.Breakables {
		factory.CreateBreakable(e, b.X+b.W/2, b.Y+b.H/2, b.W, b.H)
	}
	for _, en := range lvl.Enemies {
		if _, err := factory.CreateEnemy(e, en.X, en.Y, en.Kind); err != nil {
			return err
		}
	}
	if len(lvl.SpawnPoints) > 0 {
		sp := lvl.SpawnPoints[0]
		factory.CreatePlayer(e, sp.X, sp.Y)
	}

	w.AddKillPlane(float64(lvl.MapWidth), float64(lvl.MapHeight))

	log.Printf("Loaded level %q: %d solids, %d enemies, %d breakables",
		lvl.Name, len(lvl.Solids), len(lvl.Enemies), len(lvl.Breakables))
	return nil
}

// AddKillPlane places a dead zone spanning width, KillPlaneMargin below
// bottom.
func (w *World) AddKillPlane(width, bottom float64) {
	factory.CreateDeadZone(w.ecs, 0, bottom+cfg.Physics.KillPlaneMargin, width, cfg.Physics.KillPlaneThickness)
}

func parseMaterial(s string) components.Material {
	if s == "grassy" {
		return components.MaterialGrassy
	}
	return components.MaterialStone
}

// SpawnPlayer is a convenience for callers building levels by hand.
func (w *World) SpawnPlayer(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(w.ecs, x, y)
}
