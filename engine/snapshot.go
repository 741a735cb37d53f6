package engine

import (
	"time"

	"github.com/google/uuid"
)

// EntityView is a read-only copy of a car
type EntityView struct {
	ID       uuid.UUID `json:"id"`
	Word     string    `json:"word"`
	Position float64   `json:"position"`
	Slot     float64   `json:"slot"`
	Leading  bool      `json:"leading"`
}

// FieldView carries the play field geometry renderers scale against
type FieldView struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	CarHeight float64 `json:"car_height"`
}

// Snapshot is an immutable copy of GameState published after every handler
// Safe to share across goroutines; never mutate a published snapshot
type Snapshot struct {
	Version       uint64        `json:"version"`
	Running       bool          `json:"running"`
	Score         int           `json:"score"`
	Level         int           `json:"level"`
	SpawnInterval time.Duration `json:"spawn_interval"`
	Speed         float64       `json:"speed"`
	Entities      []EntityView  `json:"entities"`
	LeadingID     uuid.UUID     `json:"leading_id"`
	InputBuffer   string        `json:"input"`
	ShakeUntil    time.Time     `json:"shake_until"`
	Field         FieldView     `json:"field"`
}

// NewSnapshot copies gs
func NewSnapshot(gs *GameState, cfg Config, version uint64) *Snapshot {
	s := &Snapshot{
		Version:       version,
		Running:       gs.Running,
		Score:         gs.Score,
		Level:         gs.Level,
		SpawnInterval: gs.SpawnInterval,
		Speed:         gs.Speed,
		Entities:      make([]EntityView, len(gs.Entities)),
		InputBuffer:   gs.InputBuffer,
		ShakeUntil:    gs.ShakeUntil,
		Field: FieldView{
			Width:     cfg.FieldWidth,
			Height:    cfg.FieldHeight,
			CarHeight: cfg.CarHeight,
		},
	}
	if gs.Leading != nil {
		s.LeadingID = gs.Leading.ID
	}
	for i, e := range gs.Entities {
		s.Entities[i] = EntityView{
			ID:       e.ID,
			Word:     e.Word,
			Position: e.Position,
			Slot:     e.Slot,
			Leading:  e == gs.Leading,
		}
	}
	return s
}

// Leading returns the leading car view
func (s *Snapshot) Leading() (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Leading {
			return e, true
		}
	}
	return EntityView{}, false
}

// Shaking reports whether the error shake window is open at now
func (s *Snapshot) Shaking(now time.Time) bool {
	return !s.ShakeUntil.IsZero() && now.Before(s.ShakeUntil)
}
