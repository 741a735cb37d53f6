package session

import (
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/rs/zerolog"
)

// EventLogger writes every dispatched event to the debug log
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an event logger writing under the "events" component
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "events").Logger()}
}

// HandleEvent logs ev with the snapshot version it was dispatched under
func (l *EventLogger) HandleEvent(snap *engine.Snapshot, ev events.GameEvent) {
	e := l.logger.Debug().
		Stringer("type", ev.Type).
		Uint64("seq", ev.Seq).
		Interface("payload", ev.Payload)
	if snap != nil {
		e = e.Uint64("version", snap.Version)
	}
	e.Msg("event")
}

// EventTypes subscribes to every event
func (l *EventLogger) EventTypes() []events.EventType {
	return events.AllTypes()
}
