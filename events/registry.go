package events

import (
	"fmt"
)

var typeNames = [eventTypeCount]string{
	EventGameStarted:      "game_started",
	EventGameReset:        "game_reset",
	EventEntitySpawned:    "entity_spawned",
	EventEntityMoved:      "entity_moved",
	EventEntityRemoved:    "entity_removed",
	EventLeadingChanged:   "leading_changed",
	EventInputError:       "input_error",
	EventInputSuccess:     "input_success",
	EventScoreChanged:     "score_changed",
	EventLevelUp:          "level_up",
	EventSpawnRescheduled: "spawn_rescheduled",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeNames))
	for i, name := range typeNames {
		m[name] = EventType(i)
	}
	return m
}()

// String returns the wire name of the event type
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return fmt.Sprintf("event(%d)", int(t))
	}
	return typeNames[t]
}

// ParseEventType returns the EventType for a wire name
func ParseEventType(name string) (EventType, bool) {
	t, ok := nameToType[name]
	return t, ok
}

// MarshalText encodes the type as its wire name
func (t EventType) MarshalText() ([]byte, error) {
	if t < 0 || t >= eventTypeCount {
		return nil, fmt.Errorf("unknown event type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText decodes a wire name
func (t *EventType) UnmarshalText(b []byte) error {
	v, ok := nameToType[string(b)]
	if !ok {
		return fmt.Errorf("unknown event type %q", string(b))
	}
	*t = v
	return nil
}

// AllTypes returns every known event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, eventTypeCount)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}
