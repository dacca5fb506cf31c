package factory

import (
	"github.com/automoto/ascension/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible rectangle (top-left x, y) that kills
// players touching it.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	addToSpace(ecs, obj)
	return obj
}
