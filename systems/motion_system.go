package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
)

// MotionSystem advances every car toward the exit on the motion trigger
type MotionSystem struct {
	ctx *engine.GameContext

	statTicks  *atomic.Int64
	statExited *atomic.Int64
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(ctx *engine.GameContext) *MotionSystem {
	return &MotionSystem{
		ctx:        ctx,
		statTicks:  ctx.Metrics.Ints.Get(status.MotionTicks),
		statExited: ctx.Metrics.Ints.Get(status.CarsExited),
	}
}

// Tick moves all cars by gs.Speed and removes those past the exit threshold
// Returns the number of cars removed
func (s *MotionSystem) Tick(gs *engine.GameState) int {
	s.statTicks.Add(1)
	if gs.Count() == 0 {
		return 0
	}

	prevLeader := gs.Leading
	threshold := s.ctx.Config.ExitThreshold
	var exited []*engine.Entity
	kept := gs.Entities[:0]
	for _, e := range gs.Entities {
		e.Position -= gs.Speed
		if e.Position < threshold {
			exited = append(exited, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(gs.Entities[len(kept):])
	gs.Entities = kept

	positions := make([]events.EntityPosition, len(kept))
	for i, e := range kept {
		positions[i] = events.EntityPosition{ID: e.ID, Position: e.Position}
	}
	s.ctx.Emit(events.EventEntityMoved, events.EntityMovedPayload{Positions: positions})

	for _, e := range exited {
		s.statExited.Add(1)
		s.ctx.Emit(events.EventEntityRemoved, events.EntityRemovedPayload{
			ID:     e.ID,
			Word:   e.Word,
			Reason: events.RemovalExited,
		})
	}

	gs.Leading = Leading(gs.Entities)
	if gs.Leading != prevLeader {
		s.ctx.Emit(events.EventLeadingChanged, events.LeadingChangedPayload{
			Previous: entityID(prevLeader),
			Current:  entityID(gs.Leading),
		})
	}
	return len(exited)
}
