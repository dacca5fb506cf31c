package systems

import (
	"math"
	"sort"

	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	colliders = donburi.NewQuery(filter.Contains(components.Motion, components.Collider))
	bodies    = donburi.NewQuery(filter.Contains(components.Motion, components.Physics))
)

// snapshot returns the entities matching q ordered by id, so that
// component changes made while walking the list cannot disturb it and
// every run visits entities in the same order.
func snapshot(w donburi.World, q *donburi.Query) []donburi.Entity {
	var ids []donburi.Entity
	q.Each(w, func(e *donburi.Entry) {
		ids = append(ids, e.Entity())
	})
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Id() < ids[j].Id()
	})
	return ids
}

// collidesAt tests a's hull moved by offset against b's hull in place.
func collidesAt(a, b *donburi.Entry, offset components.Vector) bool {
	ma, mb := components.Motion.Get(a), components.Motion.Get(b)
	ca, cb := components.Collider.Get(a), components.Collider.Get(b)
	return gamemath.CollidesAt(ca.Hull, ma.Transform(), cb.Hull, mb.Transform(), offset)
}

// outsideSolidWindow is the cheap rejection run before testing a body
// against a solid. The horizontal bound accounts for the solid's width so
// long floors are never skipped.
func outsideSolidWindow(body, other *components.MotionData, window float64) bool {
	half := other.Size().X / 2
	return math.Abs(other.Position.Y-body.Position.Y) >= window ||
		other.Position.X+half <= body.Position.X-window ||
		other.Position.X-half >= body.Position.X+window
}

// outsideWindow is the square rejection used for the pairwise scan.
func outsideWindow(a, b *components.MotionData, window float64) bool {
	return math.Abs(b.Position.X-a.Position.X) >= window ||
		math.Abs(b.Position.Y-a.Position.Y) >= window
}

func gameState(w donburi.World) *components.GameStateData {
	if e, ok := components.GameState.First(w); ok {
		return components.GameState.Get(e)
	}
	return nil
}

func clock(w donburi.World) *components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e)
	}
	return &components.ClockData{}
}

func collisionLog(w donburi.World) *components.CollisionLogData {
	if e, ok := components.CollisionLog.First(w); ok {
		return components.CollisionLog.Get(e)
	}
	return nil
}
