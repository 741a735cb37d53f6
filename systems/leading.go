package systems

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
)

// Leading returns the car closest to the exit, nil when there are none
// Ties keep collection order: the earliest spawned of equal positions wins
func Leading(entities []*engine.Entity) *engine.Entity {
	var lead *engine.Entity
	for _, e := range entities {
		if lead == nil || e.Position < lead.Position {
			lead = e
		}
	}
	return lead
}

// RecomputeLeading refreshes gs.Leading and emits LeadingChanged when it moved
// Returns true if the leading car changed
func RecomputeLeading(ctx *engine.GameContext, gs *engine.GameState) bool {
	prev := gs.Leading
	next := Leading(gs.Entities)
	gs.Leading = next
	if prev == next {
		return false
	}

	ctx.Emit(events.EventLeadingChanged, events.LeadingChangedPayload{
		Previous: entityID(prev),
		Current:  entityID(next),
	})
	return true
}

func entityID(e *engine.Entity) uuid.UUID {
	if e == nil {
		return uuid.Nil
	}
	return e.ID
}
