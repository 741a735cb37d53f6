package engine

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
	"github.com/lixenwraith/word-traffic/wordbank"
	"github.com/rs/zerolog"
)

// GameContextOptions carries optional collaborators; zero values get defaults
type GameContextOptions struct {
	Rand    *rand.Rand
	Time    TimeProvider
	Metrics *status.Registry
	Logger  zerolog.Logger
}

// GameContext holds the game state and every collaborator the systems need
type GameContext struct {
	// ===== Immutable After Init =====
	// Set once during NewGameContext, safe for concurrent read.

	Config    Config
	Words     *wordbank.Bank
	Scheduler Scheduler
	Time      TimeProvider
	Metrics   *status.Registry
	Logger    zerolog.Logger

	// ===== Loop Exclusive =====
	// Accessed only from tasks running on the Scheduler loop.

	State  *GameState
	Events *events.EventQueue
	Rand   *rand.Rand

	// ===== Atomic (Self-Synchronized) =====
	// Readers on other goroutines (renderer, http) use Snapshot.

	snapshot atomic.Pointer[Snapshot]
	version  atomic.Uint64
}

// NewGameContext validates cfg and builds a context with a fresh state
func NewGameContext(cfg Config, words *wordbank.Bank, sched Scheduler, opts GameContextOptions) (*GameContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if words == nil {
		return nil, fmt.Errorf("%w: word bank is required", ErrInvalidConfig)
	}
	if sched == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfig)
	}

	ctx := &GameContext{
		Config:    cfg,
		Words:     words,
		Scheduler: sched,
		Time:      opts.Time,
		Metrics:   opts.Metrics,
		Logger:    opts.Logger,
		State:     NewGameState(cfg),
		Events:    events.NewEventQueue(),
		Rand:      opts.Rand,
	}
	if ctx.Time == nil {
		ctx.Time = NewMonotonicTimeProvider()
	}
	if ctx.Metrics == nil {
		ctx.Metrics = status.NewRegistry()
	}
	if ctx.Rand == nil {
		ctx.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx.Publish()
	return ctx, nil
}

// Emit queues a game event stamped with the current time
func (ctx *GameContext) Emit(t events.EventType, payload any) {
	ctx.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: ctx.Time.Now(),
	})
}

// Publish copies the state into a new snapshot visible to other goroutines
// Must be called from the loop
func (ctx *GameContext) Publish() *Snapshot {
	s := NewSnapshot(ctx.State, ctx.Config, ctx.version.Add(1))
	ctx.snapshot.Store(s)
	return s
}

// Snapshot returns the latest published snapshot, safe from any goroutine
func (ctx *GameContext) Snapshot() *Snapshot {
	return ctx.snapshot.Load()
}
