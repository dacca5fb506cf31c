package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var breakables = donburi.NewQuery(filter.And(
	filter.Contains(components.Breakable, components.Physics),
	filter.Not(filter.Contains(components.Summonable)),
))

// UpdateBreakables makes airborne breakables fall and resting ones solid.
// Membership changes are collected first and applied after the walk.
func UpdateBreakables(ecs *ecs.ECS) {
	w := ecs.World

	var fall, rest []donburi.Entity
	for _, id := range snapshot(w, breakables) {
		if components.Physics.Get(w.Entry(id)).InAir {
			fall = append(fall, id)
		} else {
			rest = append(rest, id)
		}
	}

	for _, id := range fall {
		e := w.Entry(id)
		if e.HasComponent(components.Solid) {
			e.RemoveComponent(components.Solid)
		}
		if !e.HasComponent(components.Gravity) {
			g := factory.DefaultGravity()
			donburi.Add(e, components.Gravity, &g)
		}
	}
	for _, id := range rest {
		e := w.Entry(id)
		if e.HasComponent(components.Gravity) {
			e.RemoveComponent(components.Gravity)
		}
		if !e.HasComponent(components.Solid) {
			donburi.Add(e, components.Solid, &components.SolidData{})
		}
	}
}
