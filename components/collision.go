package components

import "github.com/yohamta/donburi"

// CollisionEvent records that Entity overlapped Other during the last step.
type CollisionEvent struct {
	Entity donburi.Entity
	Other  donburi.Entity
}

// CollisionLogData is the per-step contact log. The physics step only
// appends; whoever consumes it is responsible for calling Clear.
type CollisionLogData struct {
	Events []CollisionEvent

	// StepStart is the index of the first event appended by the current
	// step.
	StepStart int
}

// Add records the pair in both orderings. Duplicates are kept.
func (c *CollisionLogData) Add(a, b donburi.Entity) {
	c.Events = append(c.Events,
		CollisionEvent{Entity: a, Other: b},
		CollisionEvent{Entity: b, Other: a},
	)
}

// With returns every entity recorded as touching e.
func (c *CollisionLogData) With(e donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	for _, ev := range c.Events {
		if ev.Entity == e {
			out = append(out, ev.Other)
		}
	}
	return out
}

// Has reports whether e appears in any event.
func (c *CollisionLogData) Has(e donburi.Entity) bool {
	for _, ev := range c.Events {
		if ev.Entity == e {
			return true
		}
	}
	return false
}

// Recent returns the events appended by the most recent step, whether or
// not older events have been cleared.
func (c *CollisionLogData) Recent() []CollisionEvent {
	return c.Events[c.StepStart:]
}

func (c *CollisionLogData) Clear() {
	c.Events = c.Events[:0]
	c.StepStart = 0
}

var CollisionLog = donburi.NewComponentType[CollisionLogData]()
