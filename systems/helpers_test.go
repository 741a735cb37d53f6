package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/lixenwraith/word-traffic/wordbank"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestContext builds a context over table, or the default levels when nil
func newTestContext(t *testing.T, cfg engine.Config, table wordbank.Table) *engine.GameContext {
	t.Helper()
	rng := rand.New(rand.NewSource(42))

	var words *wordbank.Bank
	var err error
	if table == nil {
		words, err = wordbank.Default(rng)
	} else {
		words, err = wordbank.New(table, rng)
	}
	require.NoError(t, err)

	ctx, err := engine.NewGameContext(cfg, words, engine.NewManualScheduler(), engine.GameContextOptions{
		Rand: rng,
		Time: engine.NewMockTimeProvider(testEpoch),
	})
	require.NoError(t, err)
	return ctx
}

// addCar places a car directly and refreshes the leader, dropping the emitted events
func addCar(ctx *engine.GameContext, word string, position, slot float64) *engine.Entity {
	e := engine.NewEntity(word, position, slot)
	ctx.State.Add(e)
	RecomputeLeading(ctx, ctx.State)
	ctx.Events.Consume()
	return e
}

func eventTypes(evs []events.GameEvent) []events.EventType {
	out := make([]events.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}
