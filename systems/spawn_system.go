package systems

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
)

// SpawnSystem creates cars on the spawn trigger
// Respects the on-screen cap and keeps slots apart on a best-effort basis
type SpawnSystem struct {
	ctx *engine.GameContext

	// Cached metric pointers
	statTicks       *atomic.Int64
	statCreated     *atomic.Int64
	statSkippedCap  *atomic.Int64
	statOverlapping *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{
		ctx:             ctx,
		statTicks:       ctx.Metrics.Ints.Get(status.SpawnTicks),
		statCreated:     ctx.Metrics.Ints.Get(status.SpawnCreated),
		statSkippedCap:  ctx.Metrics.Ints.Get(status.SpawnSkippedCap),
		statOverlapping: ctx.Metrics.Ints.Get(status.SpawnOverlapping),
	}
}

// MaybeSpawn adds one car unless the cap is reached
// The car enters at the far edge of the travel axis with a word for the current level
func (s *SpawnSystem) MaybeSpawn(gs *engine.GameState) (*engine.Entity, bool) {
	s.statTicks.Add(1)
	cfg := s.ctx.Config

	if gs.Count() >= cfg.MaxEntities {
		s.statSkippedCap.Add(1)
		return nil, false
	}

	word := s.ctx.Words.WordFor(gs.Level)
	slot, overlapping := s.placeSlot(gs.Entities)

	e := engine.NewEntity(word, cfg.FieldWidth, slot)
	gs.Add(e)
	s.statCreated.Add(1)
	if overlapping {
		s.statOverlapping.Add(1)
		s.ctx.Logger.Debug().Float64("slot", slot).Int("cars", gs.Count()).Msg("placement gave up, accepting overlap")
	}

	s.ctx.Emit(events.EventEntitySpawned, events.EntitySpawnedPayload{
		ID:          e.ID,
		Word:        e.Word,
		Position:    e.Position,
		Slot:        e.Slot,
		Overlapping: overlapping,
	})
	RecomputeLeading(s.ctx, gs)

	return e, true
}

// placeSlot samples integer slots in [0, SlotRange) until one is at least
// CarHeight from every existing slot; after PlacementAttempts the last sample is kept
func (s *SpawnSystem) placeSlot(entities []*engine.Entity) (float64, bool) {
	cfg := s.ctx.Config
	span := int(cfg.SlotRange())
	if span < 1 {
		span = 1
	}

	var slot float64
	for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
		slot = float64(s.ctx.Rand.Intn(span))
		if slotClear(entities, slot, cfg.CarHeight) {
			return slot, false
		}
	}
	return slot, true
}

// slotClear reports whether slot keeps minGap distance from every car
func slotClear(entities []*engine.Entity, slot, minGap float64) bool {
	for _, e := range entities {
		if math.Abs(e.Slot-slot) < minGap {
			return false
		}
	}
	return true
}
