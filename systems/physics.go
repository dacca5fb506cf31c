package systems

import (
	"math"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics blends every body's velocity toward its target, then moves
// it by velocity*dt, resolving the move against nearby solids one axis at
// a time. The committed displacement is truncated to whole units.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World
	dt := clock(w).StepSeconds()
	gs := gameState(w)
	others := snapshot(w, colliders)

	for _, id := range snapshot(w, bodies) {
		if !w.Valid(id) {
			continue
		}
		e := w.Entry(id)
		physics := components.Physics.Get(e)

		drag := physics.AirDrag
		if !physics.InAir || physics.TargetVelocity.X != 0 {
			drag = physics.GroundDrag
		}
		physics.Velocity = gamemath.Approach(physics.Velocity, physics.TargetVelocity, drag)

		switch {
		case !e.HasComponent(components.Collider):
			commit(e, physics.Velocity.Scale(dt))
		case e.HasComponent(components.Solid):
			settle(w, e, others, physics.Velocity.Scale(dt))
		default:
			resolve(w, e, others, physics.Velocity.Scale(dt), gs)
		}
	}
}

func commit(e *donburi.Entry, move components.Vector) {
	m := components.Motion.Get(e)
	m.Position = m.Position.Add(gamemath.Truncate(move))
}

// passesThrough reports whether a one-way solid lets the body through
// because the body's center is below the highest resting position on it.
func passesThrough(body, other *components.MotionData, solid *components.SolidData) bool {
	if !solid.TopFaceOnly {
		return false
	}
	top := other.Position.Y - other.Size().Y/2
	return body.Position.Y > top-body.Size().Y/2
}

// dropsThrough reports whether a player is holding down to fall through a
// one-way solid.
func dropsThrough(e *donburi.Entry, solid *components.SolidData) bool {
	if !solid.TopFaceOnly || !e.HasComponent(components.Player) {
		return false
	}
	p := components.Player.Get(e)
	return p.KeyDown && !p.IsSummoning
}

// nearbySolid returns the entry for id when it is a solid within the
// pre-filter window of body, or nil.
func nearbySolid(w donburi.World, self *donburi.Entry, id donburi.Entity) *donburi.Entry {
	if id == self.Entity() || !w.Valid(id) {
		return nil
	}
	o := w.Entry(id)
	if !o.HasComponent(components.Solid) {
		return nil
	}
	if outsideSolidWindow(components.Motion.Get(self), components.Motion.Get(o), cfg.Physics.SolidWindow) {
		return nil
	}
	return o
}

func resolve(w donburi.World, e *donburi.Entry, others []donburi.Entity, move components.Vector, gs *components.GameStateData) {
	motion := components.Motion.Get(e)
	physics := components.Physics.Get(e)

	start := motion.Position
	hsp, vsp := move.X, move.Y
	shsp, svsp := gamemath.Sign(hsp), gamemath.Sign(vsp)

	physics.InAir = true
	physics.Unspawnable = true

	for _, id := range others {
		o := nearbySolid(w, e, id)
		if o == nil {
			continue
		}
		solid := components.Solid.Get(o)
		passable := passesThrough(motion, components.Motion.Get(o), solid)

		// Ground check.
		if vsp >= 0 && !passable && collidesAt(e, o, components.Vector{Y: cfg.Physics.LandingProbe}) {
			physics.InAir = false
			landProjectile(e, gs)
			if !o.HasComponent(components.Summonable) {
				physics.Unspawnable = false
			}
		}

		// Vertical.
		if !passable && !dropsThrough(e, solid) && collidesAt(e, o, components.Vector{Y: vsp}) {
			motion.Position = start
			physics.TargetVelocity.Y = -physics.Elasticity * physics.TargetVelocity.Y
			physics.Velocity.Y = -physics.Elasticity * physics.Velocity.Y

			for i := 0; float64(i) < 2*math.Abs(vsp); i++ {
				if collidesAt(e, o, components.Vector{Y: svsp}) {
					break
				}
				motion.Position.Y += svsp
			}
			vsp = 0
			physics.GroundMaterial = solid.Material
		}

		// Horizontal, climbing ramps within tolerance.
		if solid.TopFaceOnly || !collidesAt(e, o, components.Vector{X: hsp}) {
			continue
		}
		yplus := 0.0
		limit := math.Abs(physics.RampSpeed * hsp)
		for collidesAt(e, o, components.Vector{X: hsp, Y: -yplus}) && yplus <= limit {
			yplus++
		}
		if !collidesAt(e, o, components.Vector{X: hsp, Y: -yplus}) {
			motion.Position.Y -= yplus
			continue
		}

		motion.Position.X = start.X
		physics.TargetVelocity.X = -physics.Elasticity * physics.TargetVelocity.X
		physics.Velocity.X = -physics.Elasticity * physics.Velocity.X

		for i := 0; float64(i) < 2*math.Abs(hsp); i++ {
			if collidesAt(e, o, components.Vector{X: shsp}) {
				break
			}
			motion.Position.X += shsp
		}
		hsp = 0
	}

	commit(e, components.Vector{X: hsp, Y: vsp})
}

// settle handles a body that is currently solid itself, i.e. a resting
// breakable. It is not resolved, only checked for support so the
// breakable toggle sees a fresh inAir flag.
func settle(w donburi.World, e *donburi.Entry, others []donburi.Entity, move components.Vector) {
	motion := components.Motion.Get(e)
	physics := components.Physics.Get(e)

	physics.InAir = true
	physics.Unspawnable = true

	for _, id := range others {
		o := nearbySolid(w, e, id)
		if o == nil {
			continue
		}
		if passesThrough(motion, components.Motion.Get(o), components.Solid.Get(o)) {
			continue
		}
		if move.Y >= 0 && collidesAt(e, o, components.Vector{Y: cfg.Physics.LandingProbe}) {
			physics.InAir = false
			if !o.HasComponent(components.Summonable) {
				physics.Unspawnable = false
			}
		}
	}

	commit(e, move)
}

func landProjectile(e *donburi.Entry, gs *components.GameStateData) {
	if !e.HasComponent(components.Projectile) {
		return
	}
	p := components.Projectile.Get(e)
	if p.Landed {
		return
	}
	p.Timer = cfg.Physics.ProjectileLandTimer
	if p.Type == components.ProjectileHeart {
		p.Timer += cfg.Physics.HeartBonusTimer
	}
	p.Landed = true

	if p.Decoy && gs != nil {
		gs.DecoyPosition = components.Motion.Get(e).Position
		gs.DecoyTimer = cfg.Physics.DecoyTimer
	}
}
