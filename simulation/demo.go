package simulation

import (
	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/systems/factory"
)

// Demo level size.
const (
	DemoWidth  = 2048
	DemoHeight = 768
)

// NewDemo builds a small hand-made level exercising floors, walls, a ramp,
// one-way and floating platforms, a crate and each enemy kind.
func NewDemo() *World {
	w := New(Options{Width: DemoWidth, Height: DemoHeight + 1024})
	e := w.ECS()
	w.GameState().Bounds = components.Vector{X: DemoWidth, Y: DemoHeight}

	// Ground with a gap.
	factory.CreateSolid(e, factory.SolidOptions{X: 400, Y: 720, W: 800, H: 64, Material: components.MaterialGrassy})
	factory.CreateSolid(e, factory.SolidOptions{X: 1500, Y: 720, W: 1000, H: 64})

	// Walls.
	factory.CreateWall(e, 16, 400, 32, 576)
	factory.CreateWall(e, DemoWidth-16, 400, 32, 576)

	// A 45 degree ramp up onto a ledge.
	factory.CreateSlope(e, 1164, 656, 64, 64, 1)
	factory.CreateWall(e, 1324, 656, 256, 64)

	factory.CreateOneWayPlatform(e, 400, 560, 192, 16)
	factory.CreateFloatingPlatform(e, 900, 520, 128, 16, 96, 4)

	factory.CreateBreakable(e, 600, 400, 48, 48)

	for _, en := range []struct {
		x, y float64
		kind string
	}{
		{1500, 600, "Tree"},
		{1800, 600, "Slime"},
		{1700, 300, "Birdo"},
	} {
		// Config kinds are fixed, so errors cannot happen here.
		_, _ = factory.CreateEnemy(e, en.x, en.y, en.kind)
	}

	w.SpawnPlayer(200, 600)
	w.AddKillPlane(DemoWidth, DemoHeight)
	return w
}
