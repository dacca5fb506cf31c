package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorGrounded = color.RGBA{255, 255, 255, 255}
	colorAirborne = color.RGBA{255, 255, 0, 255}
	colorEnemy    = color.RGBA{255, 0, 0, 255}
	colorSolid    = color.RGBA{255, 140, 0, 255}
	colorTouched  = color.RGBA{0, 255, 0, 255}
	colorOther    = color.RGBA{0, 255, 255, 255}
	colorDeadZone = color.RGBA{160, 0, 200, 255}
	colorHitbox   = color.RGBA{255, 0, 255, 255}
)

// DrawDebug outlines every collision hull and the dead zones, and prints
// the player's physics state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	gs := gameState(ecs.World)
	if gs == nil || !gs.Debug {
		return
	}
	off := CameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	DrawHulls(ecs.World, screen, off)
	drawDeadZones(ecs.World, screen, off)
	drawStatus(ecs.World, screen)
}

// DrawHulls strokes each transformed hull translated by off.
func DrawHulls(w donburi.World, screen *ebiten.Image, off components.Vector) {
	log := collisionLog(w)

	for _, id := range snapshot(w, colliders) {
		e := w.Entry(id)
		hull := gamemath.TransformHull(components.Collider.Get(e).Hull, components.Motion.Get(e).Transform(), off)
		c := hullColor(e, log)
		for i := range hull {
			p1, p2 := hull[i], hull[(i+1)%len(hull)]
			vector.StrokeLine(screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, c, false)
		}
	}
}

func hullColor(e *donburi.Entry, log *components.CollisionLogData) color.Color {
	switch {
	case e.HasComponent(components.Player):
		if components.Physics.Get(e).InAir {
			return colorAirborne
		}
		return colorGrounded
	case e.HasComponent(tags.Enemy):
		return colorEnemy
	case e.HasComponent(components.Hitbox):
		return colorHitbox
	case e.HasComponent(components.Solid):
		if log != nil && log.Has(e.Entity()) {
			return colorTouched
		}
		return colorSolid
	}
	return colorOther
}

func drawDeadZones(w donburi.World, screen *ebiten.Image, off components.Vector) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if !obj.HasTags(tags.ResolvDeadZone) {
			continue
		}
		x, y := float32(obj.X+off.X), float32(obj.Y+off.Y)
		vector.FillRect(screen, x, y, float32(obj.W), 1, colorDeadZone, false)                  // Top
		vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, colorDeadZone, false) // Bottom
		vector.FillRect(screen, x, y, 1, float32(obj.H), colorDeadZone, false)                  // Left
		vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), colorDeadZone, false) // Right
	}
}

func drawStatus(w donburi.World, screen *ebiten.Image) {
	pe, ok := firstPlayer(w)
	if !ok {
		return
	}
	m := components.Motion.Get(pe)
	p := components.Physics.Get(pe)
	msg := fmt.Sprintf("pos %.0f,%.0f  vel %.1f,%.1f  inAir %v  ground %s",
		m.Position.X, m.Position.Y, p.Velocity.X, p.Velocity.Y, p.InAir, p.GroundMaterial)
	if pe.HasComponent(components.Health) {
		h := components.Health.Get(pe)
		msg += fmt.Sprintf("  hp %d/%d", h.Current, h.Max)
	}
	ebitenutil.DebugPrint(screen, msg)
}
