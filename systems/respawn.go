package systems

import (
	"log"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn tracks the player's last safe position and sends players
// that fall into a dead zone or below the level back to it.
func UpdateRespawn(ecs *ecs.ECS) {
	w := ecs.World
	elapsed := clock(w).ElapsedMS
	gs := gameState(w)

	for _, id := range snapshot(w, players) {
		e := w.Entry(id)
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)
		physics := components.Physics.Get(e)

		trackSafePosition(player, motion, physics, elapsed)

		if player.Dead {
			continue
		}
		if belowKillPlane(gs, motion) || inDeadZone(e) {
			killPlayer(e)
		}
	}
}

// belowKillPlane reports whether the player fell KillPlaneMargin past the
// bottom of the level, wherever they are horizontally. Worlds without
// bounds rely on dead zones alone.
func belowKillPlane(gs *components.GameStateData, motion *components.MotionData) bool {
	if gs == nil || gs.Bounds.Y <= 0 {
		return false
	}
	return motion.Position.Y > gs.Bounds.Y+cfg.Physics.KillPlaneMargin
}

func inDeadZone(e *donburi.Entry) bool {
	if !e.HasComponent(components.Object) {
		return false
	}
	return components.Object.Get(e).Check(0, 0, tags.ResolvDeadZone) != nil
}

// trackSafePosition keeps two samples of where the player stood on real
// ground. The older one is used for respawning so the player never lands
// right back at the edge they fell from.
func trackSafePosition(player *components.PlayerData, motion *components.MotionData, physics *components.PhysicsData, elapsed float64) {
	if physics.Unspawnable {
		player.LandTime = 0
		return
	}
	player.LandTime += elapsed
	if player.LandTime >= cfg.Physics.LandTimer {
		player.SavedPosition = player.LastPosition
		player.LastPosition = motion.Position
		player.LandTime = 0
	}
}

func killPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	motion := components.Motion.Get(e)
	physics := components.Physics.Get(e)

	if e.HasComponent(components.Health) && !e.HasComponent(components.Invincible) {
		health := components.Health.Get(e)
		health.Current--
		if health.Current <= 0 {
			health.Current = 0
			player.Dead = true
			physics.Velocity = components.Vector{}
			physics.TargetVelocity = components.Vector{}
			log.Printf("Player %d died in a dead zone", e.Entity().Id())
			return
		}
	}

	motion.Position = player.SavedPosition
	player.LastPosition = player.SavedPosition
	player.LandTime = 0
	physics.Velocity = components.Vector{}
	physics.TargetVelocity = components.Vector{}

	if !e.HasComponent(components.Invincible) {
		donburi.Add(e, components.Invincible, &components.InvincibleData{Timer: cfg.Physics.RespawnInvulnTimer})
	}
	log.Printf("Player respawned at (%.0f, %.0f)", motion.Position.X, motion.Position.Y)
}
