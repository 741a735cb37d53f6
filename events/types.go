package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted signals a fresh session began
	// Trigger: Session.Start after reset | Payload: nil
	EventGameStarted EventType = iota

	// EventGameReset signals all cars and counters were wiped
	// Trigger: Session.Reset, Session.Start | Payload: nil
	EventGameReset

	// EventEntitySpawned signals a new car entered at the far edge
	// Trigger: SpawnSystem | Consumer: renderers, websocket hub
	// Payload: EntitySpawnedPayload
	EventEntitySpawned

	// EventEntityMoved carries all car positions after a motion tick
	// Trigger: MotionSystem | Payload: EntityMovedPayload
	EventEntityMoved

	// EventEntityRemoved signals a car left the road or was typed
	// Trigger: MotionSystem (exited), MatchSystem (matched)
	// Payload: EntityRemovedPayload
	EventEntityRemoved

	// EventLeadingChanged signals the highlighted car changed
	// Trigger: any system after leading recomputation | Payload: LeadingChangedPayload
	EventLeadingChanged

	// EventInputError signals a mistyped buffer, the buffer was cleared
	// Trigger: MatchSystem | Consumer: SoundManager (buzz), input renderer (shake)
	// Payload: InputErrorPayload
	EventInputError

	// EventInputSuccess signals a fully typed word
	// Trigger: MatchSystem | Consumer: SoundManager (rev) | Payload: InputSuccessPayload
	EventInputSuccess

	// EventScoreChanged carries the new score counter
	// Trigger: MatchSystem | Payload: ScoreChangedPayload
	EventScoreChanged

	// EventLevelUp carries the new difficulty parameters
	// Trigger: ProgressionSystem | Consumer: SoundManager (chime) | Payload: LevelUpPayload
	EventLevelUp

	// EventSpawnRescheduled signals the spawn trigger was reinstalled
	// Trigger: Session after level up | Payload: SpawnRescheduledPayload
	EventSpawnRescheduled

	eventTypeCount
)

// GameEvent is a single output of a core handler
type GameEvent struct {
	Type      EventType `json:"type"`
	Payload   any       `json:"payload,omitempty"`
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"time"`
}
