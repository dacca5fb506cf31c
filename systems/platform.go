package systems

import (
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var platforms = donburi.NewQuery(filter.Contains(tags.FloatingPlatform, components.Tween, components.Motion))

// UpdateFloatingPlatforms advances each floating platform's tween and
// restarts it when it ends. Bodies standing on a platform move with it,
// so the one-way test in the physics pass still sees them on top.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	w := ecs.World
	dt := float32(clock(w).StepSeconds())

	for _, id := range snapshot(w, platforms) {
		e := w.Entry(id)
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			continue
		}
		riders := ridersOf(w, e)

		y, _, done := tw.Sequence.Update(dt)
		m := components.Motion.Get(e)
		dy := float64(y) - m.Position.Y
		m.Position.Y = float64(y)
		if done {
			tw.Sequence.Reset()
		}

		for _, r := range riders {
			components.Motion.Get(w.Entry(r)).Position.Y += dy
		}
	}
}

// ridersOf returns the bodies resting on top of platform: not rising, above
// its top face and within the landing probe of it.
func ridersOf(w donburi.World, platform *donburi.Entry) []donburi.Entity {
	pm := components.Motion.Get(platform)
	solid := components.Solid.Get(platform)

	var riders []donburi.Entity
	for _, id := range snapshot(w, bodies) {
		if id == platform.Entity() {
			continue
		}
		e := w.Entry(id)
		if !e.HasComponent(components.Collider) || components.Physics.Get(e).Velocity.Y < 0 {
			continue
		}
		m := components.Motion.Get(e)
		if outsideSolidWindow(m, pm, cfg.Physics.SolidWindow) || passesThrough(m, pm, solid) {
			continue
		}
		if collidesAt(e, platform, components.Vector{Y: cfg.Physics.LandingProbe}) {
			riders = append(riders, id)
		}
	}
	return riders
}
