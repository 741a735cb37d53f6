package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGameStateInitialization verifies GameState starts at initial values
func TestGameStateInitialization(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg)

	assert.Equal(t, 0, gs.Score)
	assert.Equal(t, 1, gs.Level)
	assert.Equal(t, 4000*time.Millisecond, gs.SpawnInterval)
	assert.Equal(t, 2.0, gs.Speed)
	assert.Empty(t, gs.Entities)
	assert.Nil(t, gs.Leading)
	assert.Empty(t, gs.InputBuffer)
	assert.False(t, gs.Running)
	assert.Equal(t, "", gs.LeadingWord())
}

// TestGameStateReset verifies Reset wipes cars and counters
func TestGameStateReset(t *testing.T) {
	cfg := DefaultConfig()
	gs := NewGameState(cfg)

	e := NewEntity("asd", 100, 0)
	gs.Add(e)
	gs.Add(NewEntity("sgf", 300, 200))
	gs.Leading = e
	gs.Score = 17
	gs.Level = 2
	gs.SpawnInterval = 3500 * time.Millisecond
	gs.Speed = 3
	gs.InputBuffer = "as"
	gs.ShakeUntil = time.Now()
	gs.Running = true

	gs.Reset(cfg)

	assert.Equal(t, 0, gs.Score)
	assert.Equal(t, 1, gs.Level)
	assert.Equal(t, cfg.InitialSpawnInterval, gs.SpawnInterval)
	assert.Equal(t, cfg.InitialSpeed, gs.Speed)
	assert.Equal(t, 0, gs.Count())
	assert.Nil(t, gs.Leading)
	assert.Empty(t, gs.InputBuffer)
	assert.True(t, gs.ShakeUntil.IsZero())
	assert.False(t, gs.Running)
}

// TestGameStateRemove verifies removal keeps order and clears leading
func TestGameStateRemove(t *testing.T) {
	gs := NewGameState(DefaultConfig())
	a := NewEntity("a", 10, 0)
	b := NewEntity("s", 20, 130)
	c := NewEntity("d", 30, 260)
	gs.Add(a)
	gs.Add(b)
	gs.Add(c)
	gs.Leading = b

	removed, ok := gs.Remove(b.ID)
	require.True(t, ok)
	assert.Same(t, b, removed)
	assert.Equal(t, []*Entity{a, c}, gs.Entities)
	assert.Nil(t, gs.Leading)

	_, ok = gs.Remove(b.ID)
	assert.False(t, ok)

	assert.Same(t, c, gs.Find(c.ID))
	assert.Nil(t, gs.Find(b.ID))
}

// TestNewEntityUniqueIDs verifies every car gets its own id
func TestNewEntityUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := NewEntity("a", 0, 0)
		require.False(t, seen[e.ID.String()])
		seen[e.ID.String()] = true
	}
}
