package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var projectiles = donburi.NewQuery(filter.Contains(components.Projectile))

// UpdateProjectiles expires landed projectiles and the decoy.
func UpdateProjectiles(ecs *ecs.ECS) {
	w := ecs.World
	elapsed := clock(w).ElapsedMS

	var expired []donburi.Entity
	for _, id := range snapshot(w, projectiles) {
		p := components.Projectile.Get(w.Entry(id))
		if !p.Landed {
			continue
		}
		p.Timer -= elapsed
		if p.Timer <= 0 {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		w.Remove(id)
	}

	if gs := gameState(w); gs != nil && gs.DecoyTimer > 0 {
		gs.DecoyTimer -= elapsed
		if gs.DecoyTimer <= 0 {
			gs.DecoyTimer = 0
			gs.DecoyPosition = components.Vector{}
		}
	}
}
