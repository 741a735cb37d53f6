package events

import (
	"time"

	"github.com/google/uuid"
)

// RemovalReason tells why a car left the collection
type RemovalReason string

const (
	RemovalExited  RemovalReason = "exited"
	RemovalMatched RemovalReason = "matched"
)

// ErrorReason tells which check rejected the typed buffer
type ErrorReason string

const (
	ErrorTooLong   ErrorReason = "too_long"
	ErrorNotPrefix ErrorReason = "not_prefix"
)

// EntitySpawnedPayload describes a new car
type EntitySpawnedPayload struct {
	ID       uuid.UUID `json:"id"`
	Word     string    `json:"word"`
	Position float64   `json:"position"`
	Slot     float64   `json:"slot"`
	// Overlapping is set when placement gave up and accepted a colliding slot
	Overlapping bool `json:"overlapping,omitempty"`
}

// EntityPosition is one car's travel-axis offset
type EntityPosition struct {
	ID       uuid.UUID `json:"id"`
	Position float64   `json:"position"`
}

// EntityMovedPayload lists every car position after a motion tick
type EntityMovedPayload struct {
	Positions []EntityPosition `json:"positions"`
}

// EntityRemovedPayload identifies a removed car
type EntityRemovedPayload struct {
	ID     uuid.UUID     `json:"id"`
	Word   string        `json:"word"`
	Reason RemovalReason `json:"reason"`
}

// LeadingChangedPayload carries the previous and current leading car, uuid.Nil for none
type LeadingChangedPayload struct {
	Previous uuid.UUID `json:"previous"`
	Current  uuid.UUID `json:"current"`
}

// InputErrorPayload describes a rejected buffer
type InputErrorPayload struct {
	Typed    string        `json:"typed"`
	Expected string        `json:"expected"`
	Reason   ErrorReason   `json:"reason"`
	Shake    time.Duration `json:"shake"`
}

// InputSuccessPayload identifies the destroyed car
type InputSuccessPayload struct {
	ID   uuid.UUID `json:"id"`
	Word string    `json:"word"`
}

// ScoreChangedPayload carries the score counter
type ScoreChangedPayload struct {
	Score int `json:"score"`
}

// LevelUpPayload carries the new difficulty parameters
type LevelUpPayload struct {
	Level         int           `json:"level"`
	SpawnInterval time.Duration `json:"spawn_interval"`
	Speed         float64       `json:"speed"`
}

// SpawnRescheduledPayload carries the new spawn trigger period
type SpawnRescheduledPayload struct {
	Interval time.Duration `json:"interval"`
}
