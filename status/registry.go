package status

import "sync/atomic"

// Metric keys written by the game loop
const (
	MotionTicks       = "motion.ticks"
	SpawnTicks        = "spawn.ticks"
	SpawnCreated      = "spawn.created"
	SpawnSkippedCap   = "spawn.skipped_cap"
	SpawnOverlapping  = "spawn.overlapping"
	CarsExited        = "cars.exited"
	InputPartial      = "input.partial"
	InputErrors       = "input.errors"
	InputMatches      = "input.matches"
	InputNoOps        = "input.noop"
	LevelUps          = "progression.level_ups"
	SessionsStarted   = "session.started"
	EventsDispatched  = "events.dispatched"
	GaugeSpeed        = "progression.speed"
	GaugeSpawnSeconds = "progression.spawn_interval_s"
)

// Registry is the central metrics facade
// Systems cache pointers during init; handlers write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Export copies every metric into a plain map for encoding
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Floats.Range(func(key string, v *Gauge) {
		out[key] = v.Get()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
