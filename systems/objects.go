package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every resolv proxy onto its entity's current
// bounding box.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Motion) {
			m := components.Motion.Get(e)
			size := m.Size()
			obj.X = m.Position.X - size.X/2
			obj.Y = m.Position.Y - size.Y/2
			obj.W, obj.H = size.X, size.Y
		}
		obj.Update()
	}
}
