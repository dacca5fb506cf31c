package systems

import (
	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var summonables = donburi.NewQuery(filter.Contains(components.Summonable, components.Motion))

// UpdateSummonables moves active rocks toward their anchor beside the
// player and decays released ones.
func UpdateSummonables(ecs *ecs.ECS) {
	w := ecs.World
	c := clock(w)

	var expired []donburi.Entity
	for _, id := range snapshot(w, summonables) {
		e := w.Entry(id)
		s := components.Summonable.Get(e)

		if !s.Active {
			if decayed(e, c.ElapsedMS) {
				expired = append(expired, id)
			}
			continue
		}

		pe, ok := firstPlayer(w)
		if !ok {
			continue
		}
		follow(components.Motion.Get(e), s, components.Motion.Get(pe), components.Player.Get(pe), c.StepSeconds())
	}

	for _, id := range expired {
		w.Remove(id)
	}
}

func follow(m *components.MotionData, s *components.SummonableData, pm *components.MotionData, p *components.PlayerData, dt float64) {
	facing := pm.Facing()
	anchor := components.Vector{X: facing * 0.5 * s.MaxOffset, Y: -s.MaxOffset}
	if p.IsSummoning && p.KeyDown {
		anchor = components.Vector{X: facing * 3.5 * s.MaxOffset, Y: -0.2 * s.MaxOffset}
	}

	d := pm.Position.Add(anchor).Sub(m.Position)
	step := s.Speed * dt
	if d.Length() <= step {
		m.Position = m.Position.Add(d)
		return
	}
	m.Position = m.Position.Add(gamemath.Normalize(d).Scale(step))
}

// decayed counts down a placed rock's lifetime. Thrown rocks break as soon
// as they touch the ground.
func decayed(e *donburi.Entry, elapsed float64) bool {
	if e.HasComponent(components.Breakable) {
		b := components.Breakable.Get(e)
		b.HP -= elapsed
		if b.HP <= 0 {
			return true
		}
	}
	if e.HasComponent(components.Physics) && e.HasComponent(components.Projectile) {
		return !components.Physics.Get(e).InAir
	}
	return false
}

func activeSummonables(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	for _, id := range snapshot(w, summonables) {
		e := w.Entry(id)
		if components.Summonable.Get(e).Active {
			out = append(out, e)
		}
	}
	return out
}

// ToggleSummon conjures a rock below the player, or places the rocks
// following the player as one-way platforms. It only works on the ground.
func ToggleSummon(ecs *ecs.ECS) {
	pe, ok := firstPlayer(ecs.World)
	if !ok || components.Physics.Get(pe).InAir {
		return
	}
	player := components.Player.Get(pe)

	if !player.IsSummoning {
		pos := components.Motion.Get(pe).Position
		factory.CreateSummonable(ecs, pos.X, pos.Y+32)
	} else {
		for _, e := range activeSummonables(ecs.World) {
			factory.PlaceSummonable(e)
		}
	}

	player.IsSummoning = !player.IsSummoning
	player.KeyDown = false
}

// ThrowSummoned launches the rocks following the player.
func ThrowSummoned(ecs *ecs.ECS) {
	pe, ok := firstPlayer(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	if !player.IsSummoning {
		return
	}

	from := components.Motion.Get(pe).Position
	for _, e := range activeSummonables(ecs.World) {
		factory.ThrowSummonable(e, from)
	}
	player.IsSummoning = false
}
