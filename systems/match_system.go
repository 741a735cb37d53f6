package systems

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
)

// MatchResult classifies one typed buffer against the leading word
type MatchResult int

const (
	MatchNoOp MatchResult = iota
	MatchError
	MatchPartial
	MatchSuccess
)

func (r MatchResult) String() string {
	switch r {
	case MatchNoOp:
		return "noop"
	case MatchError:
		return "error"
	case MatchPartial:
		return "partial"
	case MatchSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MarshalText encodes the result by name for JSON responses
func (r MatchResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// MatchSystem checks the player's buffer against the leading car
type MatchSystem struct {
	ctx         *engine.GameContext
	progression *ProgressionSystem

	statNoOps   *atomic.Int64
	statErrors  *atomic.Int64
	statPartial *atomic.Int64
	statMatches *atomic.Int64
}

// NewMatchSystem creates a new match system reporting successes to progression
func NewMatchSystem(ctx *engine.GameContext, progression *ProgressionSystem) *MatchSystem {
	return &MatchSystem{
		ctx:         ctx,
		progression: progression,
		statNoOps:   ctx.Metrics.Ints.Get(status.InputNoOps),
		statErrors:  ctx.Metrics.Ints.Get(status.InputErrors),
		statPartial: ctx.Metrics.Ints.Get(status.InputPartial),
		statMatches: ctx.Metrics.Ints.Get(status.InputMatches),
	}
}

// HandleInput classifies typed against the leading word
// Checks run in fixed order: empty or no leader, too long, not a prefix, exact, partial
// The second return is true when a level up requires the spawn trigger to be reinstalled
func (m *MatchSystem) HandleInput(gs *engine.GameState, typed string) (MatchResult, bool) {
	lead := gs.Leading
	if lead == nil || typed == "" {
		m.statNoOps.Add(1)
		return MatchNoOp, false
	}

	word := lead.Word
	if utf8.RuneCountInString(typed) > utf8.RuneCountInString(word) {
		m.reject(gs, typed, word, events.ErrorTooLong)
		return MatchError, false
	}
	if !strings.HasPrefix(word, typed) {
		m.reject(gs, typed, word, events.ErrorNotPrefix)
		return MatchError, false
	}
	if typed != word {
		m.statPartial.Add(1)
		return MatchPartial, false
	}

	gs.Remove(lead.ID)
	gs.Score++
	gs.InputBuffer = ""
	m.statMatches.Add(1)

	m.ctx.Emit(events.EventInputSuccess, events.InputSuccessPayload{ID: lead.ID, Word: word})
	m.ctx.Emit(events.EventEntityRemoved, events.EntityRemovedPayload{
		ID:     lead.ID,
		Word:   word,
		Reason: events.RemovalMatched,
	})
	m.ctx.Emit(events.EventScoreChanged, events.ScoreChangedPayload{Score: gs.Score})

	reschedule := m.progression.OnSuccess(gs)

	// Remove cleared gs.Leading, so emit the transition from the matched car explicitly
	gs.Leading = Leading(gs.Entities)
	m.ctx.Emit(events.EventLeadingChanged, events.LeadingChangedPayload{
		Previous: lead.ID,
		Current:  entityID(gs.Leading),
	})

	return MatchSuccess, reschedule
}

// reject clears the buffer and opens the shake window
func (m *MatchSystem) reject(gs *engine.GameState, typed, word string, reason events.ErrorReason) {
	shake := m.ctx.Config.ErrorShake
	gs.InputBuffer = ""
	gs.ShakeUntil = m.ctx.Time.Now().Add(shake)
	m.statErrors.Add(1)

	m.ctx.Emit(events.EventInputError, events.InputErrorPayload{
		Typed:    typed,
		Expected: word,
		Reason:   reason,
		Shake:    shake,
	})
}
