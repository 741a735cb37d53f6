package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionLevelUpAtBoundary(t *testing.T) {
	ctx := newTestContext(t, engine.DefaultConfig(), nil)
	prog := NewProgressionSystem(ctx)
	gs := ctx.State

	gs.Score = 9
	assert.False(t, prog.OnSuccess(gs))
	assert.Equal(t, 1, gs.Level)
	assert.Empty(t, ctx.Events.Consume())

	gs.Score = 10
	assert.True(t, prog.OnSuccess(gs))
	assert.Equal(t, 2, gs.Level)
	assert.Equal(t, 3500*time.Millisecond, gs.SpawnInterval)
	assert.Equal(t, 3.0, gs.Speed)

	evs := ctx.Events.Consume()
	require.Equal(t, []events.EventType{events.EventLevelUp, events.EventSpawnRescheduled}, eventTypes(evs))
	assert.Equal(t, events.LevelUpPayload{Level: 2, SpawnInterval: 3500 * time.Millisecond, Speed: 3}, evs[0].Payload)
	assert.Equal(t, events.SpawnRescheduledPayload{Interval: 3500 * time.Millisecond}, evs[1].Payload)

	assert.Equal(t, int64(1), ctx.Metrics.Ints.Get(status.LevelUps).Load())
	assert.Equal(t, 3.0, ctx.Metrics.Floats.Get(status.GaugeSpeed).Get())
	assert.Equal(t, 3.5, ctx.Metrics.Floats.Get(status.GaugeSpawnSeconds).Get())
}

func TestProgressionSpawnIntervalFloor(t *testing.T) {
	ctx := newTestContext(t, engine.DefaultConfig(), nil)
	prog := NewProgressionSystem(ctx)
	gs := ctx.State

	for i := 1; i <= 20; i++ {
		gs.Score = i * 10
		prevSpeed := gs.Speed
		require.True(t, prog.OnSuccess(gs))
		assert.GreaterOrEqual(t, gs.SpawnInterval, 1500*time.Millisecond)
		assert.Greater(t, gs.Speed, prevSpeed)
	}

	assert.Equal(t, 21, gs.Level)
	assert.Equal(t, 1500*time.Millisecond, gs.SpawnInterval)
	assert.Equal(t, 22.0, gs.Speed)
}

func TestProgressionZeroScore(t *testing.T) {
	ctx := newTestContext(t, engine.DefaultConfig(), nil)
	prog := NewProgressionSystem(ctx)

	assert.False(t, prog.OnSuccess(ctx.State))
	assert.Equal(t, 1, ctx.State.Level)
}
