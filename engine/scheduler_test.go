package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerOrdering(t *testing.T) {
	m := NewManualScheduler()
	var log []string

	m.Every(50*time.Millisecond, func() { log = append(log, "motion") })
	m.Every(100*time.Millisecond, func() { log = append(log, "spawn") })

	m.Advance(99 * time.Millisecond)
	assert.Equal(t, []string{"motion"}, log)

	m.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"motion", "motion", "spawn"}, log)
	assert.Equal(t, 100*time.Millisecond, m.Elapsed())
	assert.Equal(t, 2, m.Active())
}

func TestManualSchedulerStopInsideTask(t *testing.T) {
	m := NewManualScheduler()
	fired := 0
	var timer Timer
	timer = m.Every(10*time.Millisecond, func() {
		fired++
		if fired == 3 {
			timer.Stop()
		}
	})

	m.Advance(time.Second)
	assert.Equal(t, 3, fired)
	assert.Equal(t, 0, m.Active())
}

func TestManualSchedulerReschedule(t *testing.T) {
	m := NewManualScheduler()
	var spawns []time.Duration
	var spawn Timer

	spawn = m.Every(400*time.Millisecond, func() {
		spawns = append(spawns, m.Elapsed())
		if len(spawns) == 1 {
			spawn.Stop()
			spawn = m.Every(300*time.Millisecond, func() { spawns = append(spawns, m.Elapsed()) })
		}
	})

	m.Advance(time.Second)
	assert.Equal(t, []time.Duration{400 * time.Millisecond, 700 * time.Millisecond, 1000 * time.Millisecond}, spawns)
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, m.Intervals())
}

func TestManualSchedulerPostRunsInline(t *testing.T) {
	m := NewManualScheduler()
	ran := false
	m.Post(func() { ran = true })
	assert.True(t, ran)

	timer := m.Every(0, func() { t.Fatal("zero interval must never fire") })
	m.Advance(time.Second)
	timer.Stop()
	assert.Equal(t, 0, m.Active())
}

func TestLoopSchedulerSerializesTasks(t *testing.T) {
	s := NewLoopScheduler(16, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var active, maxActive atomic.Int32
	var wg sync.WaitGroup
	work := func() {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		wg.Done()
	}

	wg.Add(40)
	t1 := s.Every(2*time.Millisecond, func() {})
	defer t1.Stop()
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 10; j++ {
				s.Post(work)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoopSchedulerStoppedTimerDiscardsQueuedTick(t *testing.T) {
	s := NewLoopScheduler(4, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	timer := s.Every(time.Millisecond, func() { fired.Add(1) })

	// Let ticks queue up while the loop is not running
	time.Sleep(10 * time.Millisecond)
	timer.Stop()
	timer.Stop()

	go s.Run(ctx)

	// The marker posted after Stop runs after any stale tick
	marker := make(chan struct{})
	s.Post(func() { close(marker) })
	select {
	case <-marker:
	case <-time.After(time.Second):
		t.Fatal("marker task never ran")
	}
	assert.Equal(t, int32(0), fired.Load())
}

func TestLoopSchedulerPeriodicFires(t *testing.T) {
	s := NewLoopScheduler(4, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	ticks := make(chan struct{}, 8)
	timer := s.Every(2*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer timer.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatalf("tick %d never fired", i)
		}
	}
}

func TestLoopSchedulerPostAfterStopDoesNotBlock(t *testing.T) {
	s := NewLoopScheduler(1, zerolog.Nop())
	s.Stop()

	done := make(chan struct{})
	go func() {
		s.Post(func() {})
		s.Post(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Post blocked after Stop")
	}
	require.NoError(t, s.Run(context.Background()))
}
