package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/word-traffic/core"
	"github.com/rs/zerolog"
)

// LoopScheduler serializes periodic triggers and posted tasks onto a single run loop
// Ticker goroutines only enqueue; all task bodies execute inside Run
type LoopScheduler struct {
	tasks  chan func()
	logger zerolog.Logger

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Tick coalescing counter
	skippedTicks atomic.Uint64
}

// NewLoopScheduler creates a scheduler with a task buffer of the given size
func NewLoopScheduler(buffer int, logger zerolog.Logger) *LoopScheduler {
	if buffer < 1 {
		buffer = 1
	}
	return &LoopScheduler{
		tasks:    make(chan func(), buffer),
		logger:   logger.With().Str("component", "scheduler").Logger(),
		stopChan: make(chan struct{}),
	}
}

// Post queues task, blocking while the buffer is full; dropped after Stop
func (s *LoopScheduler) Post(task func()) {
	select {
	case s.tasks <- task:
	case <-s.stopChan:
	}
}

// Every starts a ticker goroutine that posts task each interval
// A tick is skipped while the previous one from the same timer is still queued
func (s *LoopScheduler) Every(interval time.Duration, task func()) Timer {
	t := &loopTimer{done: make(chan struct{})}
	if interval <= 0 {
		s.logger.Warn().Dur("interval", interval).Msg("non-positive interval, timer not started")
		t.Stop()
		return t
	}

	core.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.done:
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				if !t.pending.CompareAndSwap(false, true) {
					s.skippedTicks.Add(1)
					continue
				}
				s.Post(func() {
					t.pending.Store(false)
					if t.stopped.Load() {
						return
					}
					task()
				})
			}
		}
	})
	return t
}

// Run executes tasks until ctx is cancelled or Stop is called
func (s *LoopScheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-s.stopChan:
			return nil
		case task := <-s.tasks:
			task()
		}
	}
}

// Stop halts the loop and every ticker goroutine
func (s *LoopScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// SkippedTicks returns how many ticks were coalesced because the loop was busy
func (s *LoopScheduler) SkippedTicks() uint64 {
	return s.skippedTicks.Load()
}

// loopTimer is a LoopScheduler periodic trigger
type loopTimer struct {
	stopped  atomic.Bool
	pending  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

func (t *loopTimer) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.done)
	})
}
