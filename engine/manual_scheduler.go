package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler for tests
// Time only moves through Advance; posted tasks run inline on the caller
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	nextID int
}

// NewManualScheduler creates a scheduler at elapsed time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Post runs task immediately
func (m *ManualScheduler) Post(task func()) {
	task()
}

// Every registers a trigger firing first at now+interval
func (m *ManualScheduler) Every(interval time.Duration, task func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		id:       m.nextID,
		interval: interval,
		next:     m.now + interval,
		task:     task,
	}
	m.nextID++
	if interval <= 0 {
		t.stopped = true
		return t
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing due triggers in chronological order
// Ties fire in registration order; triggers installed during Advance may fire in the same call
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var due *manualTimer
		for _, t := range m.timers {
			if t.isStopped() || t.next > target {
				continue
			}
			if due == nil || t.next < due.next || (t.next == due.next && t.id < due.id) {
				due = t
			}
		}
		if due == nil {
			m.now = target
			m.prune()
			m.mu.Unlock()
			return
		}
		m.now = due.next
		due.next += due.interval
		m.mu.Unlock()

		due.task()
	}
}

// Elapsed returns the total advanced time
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active returns the number of triggers not yet stopped
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

// Intervals returns the periods of active triggers in registration order
func (m *ManualScheduler) Intervals() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Duration
	for _, t := range m.timers {
		if !t.isStopped() {
			out = append(out, t.interval)
		}
	}
	return out
}

// prune drops stopped timers, caller holds mu
func (m *ManualScheduler) prune() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.isStopped() {
			kept = append(kept, t)
		}
	}
	clear(m.timers[len(kept):])
	m.timers = kept
}

type manualTimer struct {
	mu       sync.Mutex
	id       int
	interval time.Duration
	next     time.Duration
	stopped  bool
	task     func()
}

func (t *manualTimer) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTimer) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
