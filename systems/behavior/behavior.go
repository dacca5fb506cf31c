// Package behavior holds the enemy movement policies. Each policy only
// proposes a target velocity; the physics step does the rest.
package behavior

import (
	"fmt"
	"math"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
)

// Patrol walks back and forth around Origin, turning at the edge of Range
// or when a wall stops it.
type Patrol struct {
	Origin float64
	Range  float64
	Speed  float64

	dir float64
}

func (p *Patrol) Decide(ctx components.BehaviorContext) components.Vector {
	if p.dir == 0 {
		p.dir = ctx.Motion.Facing()
	}
	x := ctx.Motion.Position.X
	switch {
	case x >= p.Origin+p.Range:
		p.dir = -1
	case x <= p.Origin-p.Range:
		p.dir = 1
	case !ctx.Physics.InAir && ctx.Physics.TargetVelocity.X != 0 && ctx.Physics.Velocity.X == 0:
		p.dir = -p.dir
	}
	return components.Vector{X: p.dir * p.Speed}
}

// Chase runs along the ground toward the target once it is within
// AggroDistance horizontally.
type Chase struct {
	Speed         float64
	AggroDistance float64
}

func (c *Chase) Decide(ctx components.BehaviorContext) components.Vector {
	if !ctx.HasTarget {
		return components.Vector{}
	}
	dx := ctx.Target.X - ctx.Motion.Position.X
	if math.Abs(dx) > c.AggroDistance || math.Abs(dx) < 1 {
		return components.Vector{}
	}
	return components.Vector{X: gamemath.Sign(dx) * c.Speed}
}

// Hover flies straight at the target. It is meant for entities without
// gravity.
type Hover struct {
	Speed         float64
	AggroDistance float64
}

func (h *Hover) Decide(ctx components.BehaviorContext) components.Vector {
	if !ctx.HasTarget {
		return components.Vector{}
	}
	d := ctx.Target.Sub(ctx.Motion.Position)
	if d.Length() > h.AggroDistance {
		return components.Vector{}
	}
	return gamemath.Normalize(d).Scale(h.Speed)
}

// FromConfig builds the policy named by t.Behavior for an enemy spawned at
// origin.
func FromConfig(t cfg.EnemyTypeConfig, origin components.Vector) (components.EnemyBehavior, error) {
	switch t.Behavior {
	case "patrol":
		return &Patrol{Origin: origin.X, Range: t.PatrolRange, Speed: t.Speed}, nil
	case "chase":
		return &Chase{Speed: t.Speed, AggroDistance: t.AggroDistance}, nil
	case "hover":
		return &Hover{Speed: t.Speed, AggroDistance: t.AggroDistance}, nil
	}
	return nil, fmt.Errorf("unknown enemy behavior %q for %s", t.Behavior, t.Name)
}
