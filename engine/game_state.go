package engine

import (
	"time"

	"github.com/google/uuid"
)

// GameState is the single mutable state of a running session
// Owned by the game loop goroutine: only spawn tick, motion tick and input
// handlers mutate it, serialized by the Scheduler, so it carries no locks
type GameState struct {
	// Counters
	Score int
	Level int

	// Difficulty
	SpawnInterval time.Duration
	Speed         float64

	// Cars in spawn order; Leading points into this slice or is nil
	Entities []*Entity
	Leading  *Entity

	// Control surface echo
	InputBuffer string
	ShakeUntil  time.Time // Error shake window end

	// Lifecycle
	Running bool
}

// NewGameState creates a state at initial values
func NewGameState(cfg Config) *GameState {
	gs := &GameState{}
	gs.Reset(cfg)
	return gs
}

// Reset restores initial values and wipes all cars
func (gs *GameState) Reset(cfg Config) {
	gs.Score = 0
	gs.Level = 1
	gs.SpawnInterval = cfg.InitialSpawnInterval
	gs.Speed = cfg.InitialSpeed
	clear(gs.Entities)
	gs.Entities = gs.Entities[:0]
	gs.Leading = nil
	gs.InputBuffer = ""
	gs.ShakeUntil = time.Time{}
	gs.Running = false
}

// Count returns the number of cars present
func (gs *GameState) Count() int {
	return len(gs.Entities)
}

// Add appends a car
func (gs *GameState) Add(e *Entity) {
	gs.Entities = append(gs.Entities, e)
}

// Find returns the car with id, or nil
func (gs *GameState) Find(id uuid.UUID) *Entity {
	for _, e := range gs.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Remove deletes the car with id preserving order
// Leading is cleared if it was the removed car; callers recompute it
func (gs *GameState) Remove(id uuid.UUID) (*Entity, bool) {
	for i, e := range gs.Entities {
		if e.ID != id {
			continue
		}
		copy(gs.Entities[i:], gs.Entities[i+1:])
		gs.Entities[len(gs.Entities)-1] = nil
		gs.Entities = gs.Entities[:len(gs.Entities)-1]
		if gs.Leading == e {
			gs.Leading = nil
		}
		return e, true
	}
	return nil, false
}

// LeadingWord returns the leading car's word, or "" when no car leads
func (gs *GameState) LeadingWord() string {
	if gs.Leading == nil {
		return ""
	}
	return gs.Leading.Word
}
