package engine

import "time"

// Timer is a periodic trigger installed by Scheduler.Every
type Timer interface {
	// Stop cancels the trigger; a tick already queued but not yet run is discarded
	// Safe to call more than once
	Stop()
}

// Scheduler is the only timing capability the game core depends on
// Every task, periodic or posted, runs on one logical thread: no two tasks overlap
type Scheduler interface {
	// Every runs task each interval until the returned Timer is stopped
	Every(interval time.Duration, task func()) Timer

	// Post queues task to run on the loop
	Post(task func())
}
