package factory

import (
	"github.com/automoto/ascension/archetypes"
	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SolidOptions describes a piece of level geometry centered on (X, Y).
type SolidOptions struct {
	X, Y, W, H float64
	OneWay     bool
	// Slope is 0 for a box, >0 for a ramp rising to the right and <0 for one
	// rising to the left.
	Slope    int
	Material components.Material
}

func CreateSolid(ecs *ecs.ECS, opts SolidOptions) *donburi.Entry {
	solid := archetypes.Platform.Spawn(ecs)
	setupSolid(solid, opts)
	return solid
}

// CreateWall creates a plain box solid.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return CreateSolid(ecs, SolidOptions{X: x, Y: y, W: w, H: h})
}

// CreateOneWayPlatform creates a solid that only blocks from above.
func CreateOneWayPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return CreateSolid(ecs, SolidOptions{X: x, Y: y, W: w, H: h, OneWay: true})
}

// CreateSlope creates a ramp tile.
func CreateSlope(ecs *ecs.ECS, x, y, w, h float64, direction int) *donburi.Entry {
	return CreateSolid(ecs, SolidOptions{X: x, Y: y, W: w, H: h, Slope: direction})
}

// CreateFloatingPlatform creates a one-way platform that moves up by rise
// and back over period seconds, forever.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, rise, period float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	setupSolid(platform, SolidOptions{X: x, Y: y, W: w, H: h, OneWay: true})

	half := float32(period / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-rise), half, ease.Linear),
		gween.New(float32(y-rise), float32(y), half, ease.Linear),
	)
	components.Tween.SetValue(platform, components.TweenData{Sequence: tw})

	return platform
}

func setupSolid(e *donburi.Entry, opts SolidOptions) {
	scale := components.Vector{X: opts.W, Y: opts.H}
	hull := gamemath.SquareHull()
	if opts.Slope != 0 {
		hull = gamemath.SlopeHull(opts.Slope)
		if opts.Slope < 0 {
			scale.X = -scale.X
		}
	}

	components.Motion.SetValue(e, components.MotionData{
		Position: components.Vector{X: opts.X, Y: opts.Y},
		Scale:    scale,
	})
	components.Collider.SetValue(e, components.ColliderData{Hull: hull})
	components.Solid.SetValue(e, components.SolidData{
		TopFaceOnly: opts.OneWay,
		Material:    opts.Material,
	})
}
