package events

import (
	"github.com/lixenwraith/word-traffic/constants"
)

// EventQueue is a FIFO ring buffer for game events
// Thread-Safety: none, owned by the game loop goroutine (push and consume)
//
// Overflow: oldest events overwritten when full, counted in Dropped
type EventQueue struct {
	events  [constants.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	seq     uint64
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, stamping its sequence number
func (eq *EventQueue) Push(event GameEvent) {
	eq.seq++
	event.Seq = eq.seq
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++

	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & constants.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
