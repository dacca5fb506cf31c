package systems

import (
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisionLog appends every overlapping collider pair, in both
// orders, to the collision log. Pairs of two solids are skipped. The log
// is never cleared here.
func UpdateCollisionLog(ecs *ecs.ECS) {
	w := ecs.World
	log := collisionLog(w)
	if log == nil {
		return
	}
	log.StepStart = len(log.Events)

	ids := snapshot(w, colliders)
	for i, a := range ids {
		ea := w.Entry(a)
		ma := components.Motion.Get(ea)
		for _, b := range ids[i+1:] {
			eb := w.Entry(b)
			if outsideWindow(ma, components.Motion.Get(eb), cfg.Physics.DynamicWindow) {
				continue
			}
			if ea.HasComponent(components.Solid) && eb.HasComponent(components.Solid) {
				continue
			}
			if collidesAt(ea, eb, components.Vector{}) {
				log.Add(a, b)
			}
		}
	}
}
