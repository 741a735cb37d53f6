// Package session runs one game: it owns the periodic triggers, routes
// player input into the match system and fans game events out to presentation.
package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
	"github.com/lixenwraith/word-traffic/systems"
)

// ErrNotRunning is returned by Submit when no game is in progress
var ErrNotRunning = errors.New("game is not running")

// Handler is a presentation collaborator fed with the snapshot published after each task
type Handler = events.Handler[*engine.Snapshot]

// Session serializes every state mutation onto the scheduler loop
//
// Thread-Safety:
//   - Start, Reset, Input, Type, Backspace and Submit are safe from any goroutine
//   - Subscribe must be called before the scheduler loop runs
//   - Snapshot is lock-free
type Session struct {
	ctx    *engine.GameContext
	router *events.Router[*engine.Snapshot]

	spawn       *systems.SpawnSystem
	motion      *systems.MotionSystem
	match       *systems.MatchSystem
	progression *systems.ProgressionSystem

	// Loop exclusive
	spawnTimer  engine.Timer
	motionTimer engine.Timer

	statStarted    *atomic.Int64
	statDispatched *atomic.Int64
}

// New creates a session over ctx; nothing runs until Start
func New(ctx *engine.GameContext) *Session {
	progression := systems.NewProgressionSystem(ctx)
	return &Session{
		ctx:            ctx,
		router:         events.NewRouter[*engine.Snapshot](ctx.Events),
		spawn:          systems.NewSpawnSystem(ctx),
		motion:         systems.NewMotionSystem(ctx),
		match:          systems.NewMatchSystem(ctx, progression),
		progression:    progression,
		statStarted:    ctx.Metrics.Ints.Get(status.SessionsStarted),
		statDispatched: ctx.Metrics.Ints.Get(status.EventsDispatched),
	}
}

// Context returns the game context
func (s *Session) Context() *engine.GameContext {
	return s.ctx
}

// Subscribe registers a presentation handler
func (s *Session) Subscribe(h Handler) {
	s.router.Register(h)
}

// Snapshot returns the latest published state
func (s *Session) Snapshot() *engine.Snapshot {
	return s.ctx.Snapshot()
}

// Start resets the game and installs the spawn and motion triggers
func (s *Session) Start() {
	s.ctx.Scheduler.Post(func() {
		s.reset()
		gs := s.ctx.State
		gs.Running = true
		s.spawnTimer = s.ctx.Scheduler.Every(gs.SpawnInterval, s.onSpawnTick)
		s.motionTimer = s.ctx.Scheduler.Every(s.ctx.Config.MotionInterval, s.onMotionTick)
		s.statStarted.Add(1)

		s.ctx.Logger.Info().
			Dur("spawn_interval", gs.SpawnInterval).
			Dur("motion_interval", s.ctx.Config.MotionInterval).
			Msg("session started")
		s.ctx.Emit(events.EventGameStarted, nil)
		s.flush()
	})
}

// Reset cancels all triggers and returns the game to its initial state
func (s *Session) Reset() {
	s.ctx.Scheduler.Post(func() {
		s.reset()
		s.flush()
	})
}

// Input delivers the player's full typed buffer
func (s *Session) Input(text string) {
	s.ctx.Scheduler.Post(func() {
		s.input(text)
		s.flush()
	})
}

// Type appends r to the current buffer and delivers the result
func (s *Session) Type(r rune) {
	s.ctx.Scheduler.Post(func() {
		s.input(s.ctx.State.InputBuffer + string(r))
		s.flush()
	})
}

// Backspace drops the last rune of the current buffer
// Only the buffer changes; an empty or shortened buffer is never an error
func (s *Session) Backspace() {
	s.ctx.Scheduler.Post(func() {
		buf := []rune(s.ctx.State.InputBuffer)
		if len(buf) == 0 {
			return
		}
		s.input(string(buf[:len(buf)-1]))
		s.flush()
	})
}

// Submit delivers text like Input and waits for its classification
// Returns ErrNotRunning if no game is in progress when the task runs
func (s *Session) Submit(ctx context.Context, text string) (systems.MatchResult, error) {
	type outcome struct {
		res systems.MatchResult
		err error
	}
	done := make(chan outcome, 1)
	s.ctx.Scheduler.Post(func() {
		if !s.ctx.State.Running {
			done <- outcome{res: systems.MatchNoOp, err: ErrNotRunning}
			return
		}
		res := s.input(text)
		s.flush()
		done <- outcome{res: res}
	})

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		return systems.MatchNoOp, ctx.Err()
	}
}

// Stop cancels both triggers without touching state
func (s *Session) Stop() {
	s.ctx.Scheduler.Post(s.stopTimers)
}

// reset stops triggers before reinitialising so no stale tick touches the new state
func (s *Session) reset() {
	s.stopTimers()
	s.ctx.State.Reset(s.ctx.Config)
	s.progression.Sync(s.ctx.State)
	s.ctx.Emit(events.EventGameReset, nil)
}

func (s *Session) stopTimers() {
	if s.spawnTimer != nil {
		s.spawnTimer.Stop()
		s.spawnTimer = nil
	}
	if s.motionTimer != nil {
		s.motionTimer.Stop()
		s.motionTimer = nil
	}
}

// input records the buffer then classifies it
func (s *Session) input(text string) systems.MatchResult {
	gs := s.ctx.State
	if !gs.Running {
		return systems.MatchNoOp
	}

	gs.InputBuffer = text
	res, reschedule := s.match.HandleInput(gs, text)
	if reschedule {
		s.rescheduleSpawn()
	}
	return res
}

// rescheduleSpawn replaces the spawn trigger at the current interval
func (s *Session) rescheduleSpawn() {
	if s.spawnTimer != nil {
		s.spawnTimer.Stop()
	}
	s.spawnTimer = s.ctx.Scheduler.Every(s.ctx.State.SpawnInterval, s.onSpawnTick)
	s.ctx.Logger.Debug().Dur("interval", s.ctx.State.SpawnInterval).Msg("spawn trigger rescheduled")
}

func (s *Session) onSpawnTick() {
	if !s.ctx.State.Running {
		return
	}
	s.spawn.MaybeSpawn(s.ctx.State)
	s.flush()
}

func (s *Session) onMotionTick() {
	if !s.ctx.State.Running {
		return
	}
	s.motion.Tick(s.ctx.State)
	s.flush()
}

// flush publishes the post-task snapshot and routes pending events against it
func (s *Session) flush() {
	snap := s.ctx.Publish()
	dispatched := s.router.DispatchAll(snap)
	s.statDispatched.Add(int64(len(dispatched)))
}
