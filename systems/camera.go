package systems

import (
	"math"

	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping it inside the
// level bounds when they are known.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := firstPlayer(e.World)
	if !ok {
		return
	}
	target := components.Motion.Get(playerEntry).Position

	if gs := gameState(e.World); gs != nil && gs.Bounds.X > 0 && gs.Bounds.Y > 0 {
		halfW := float64(config.Display.Width) / 2
		halfH := float64(config.Display.Height) / 2
		target.X = clampCenter(target.X, halfW, gs.Bounds.X)
		target.Y = clampCenter(target.Y, halfH, gs.Bounds.Y)
	}

	camera.Position.X += (target.X - camera.Position.X) * config.Display.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Display.FollowSmoothing
}

// clampCenter keeps a view of half-size half centered on v inside [0, size].
// Levels smaller than the view are centered.
func clampCenter(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// CameraOffset returns the translation from world to screen coordinates.
func CameraOffset(e *ecs.ECS, screenW, screenH int) components.Vector {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return components.Vector{}
	}
	camera := components.Camera.Get(cameraEntry)
	return components.Vector{
		X: float64(screenW)/2 - camera.Position.X,
		Y: float64(screenH)/2 - camera.Position.Y,
	}
}
