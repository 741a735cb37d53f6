package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
)

// ProgressionSystem raises difficulty every CarsPerLevel successes
type ProgressionSystem struct {
	ctx *engine.GameContext

	statLevelUps *atomic.Int64
	gaugeSpeed   *status.Gauge
	gaugeSpawn   *status.Gauge
}

// NewProgressionSystem creates a new progression system
func NewProgressionSystem(ctx *engine.GameContext) *ProgressionSystem {
	p := &ProgressionSystem{
		ctx:          ctx,
		statLevelUps: ctx.Metrics.Ints.Get(status.LevelUps),
		gaugeSpeed:   ctx.Metrics.Floats.Get(status.GaugeSpeed),
		gaugeSpawn:   ctx.Metrics.Floats.Get(status.GaugeSpawnSeconds),
	}
	p.Sync(ctx.State)
	return p
}

// OnSuccess runs once per matched word, after the score increment
// Returns true when the spawn trigger must be reinstalled at gs.SpawnInterval
func (p *ProgressionSystem) OnSuccess(gs *engine.GameState) bool {
	cfg := p.ctx.Config
	if gs.Score == 0 || gs.Score%cfg.CarsPerLevel != 0 {
		return false
	}

	gs.Level++
	gs.SpawnInterval = max(cfg.MinSpawnInterval, gs.SpawnInterval-cfg.SpawnIntervalStep)
	gs.Speed += cfg.SpeedStep

	p.statLevelUps.Add(1)
	p.Sync(gs)

	p.ctx.Logger.Info().
		Int("level", gs.Level).
		Dur("spawn_interval", gs.SpawnInterval).
		Float64("speed", gs.Speed).
		Msg("level up")

	p.ctx.Emit(events.EventLevelUp, events.LevelUpPayload{
		Level:         gs.Level,
		SpawnInterval: gs.SpawnInterval,
		Speed:         gs.Speed,
	})
	p.ctx.Emit(events.EventSpawnRescheduled, events.SpawnRescheduledPayload{
		Interval: gs.SpawnInterval,
	})
	return true
}

// Sync copies the difficulty parameters into the gauges
func (p *ProgressionSystem) Sync(gs *engine.GameState) {
	p.gaugeSpeed.Set(gs.Speed)
	p.gaugeSpawn.Set(gs.SpawnInterval.Seconds())
}
