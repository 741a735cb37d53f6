package events

import (
	"encoding/json"
	"testing"

	"github.com/lixenwraith/word-traffic/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	types   []EventType
	seen    []GameEvent
	ctxs    []string
	batches []int
}

func (h *recordingHandler) HandleEvent(ctx string, ev GameEvent) {
	h.seen = append(h.seen, ev)
	h.ctxs = append(h.ctxs, ctx)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) EndBatch(ctx string, count int) {
	h.batches = append(h.batches, count)
}

// TestQueueFIFO verifies events come out in push order with sequence numbers
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventEntitySpawned})
	q.Push(GameEvent{Type: EventLeadingChanged})
	q.Push(GameEvent{Type: EventEntityMoved})
	assert.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventEntitySpawned, got[0].Type)
	assert.Equal(t, EventLeadingChanged, got[1].Type)
	assert.Equal(t, EventEntityMoved, got[2].Type)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{got[0].Seq, got[1].Seq, got[2].Seq})
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

// TestQueueOverflowDropsOldest verifies the ring keeps the newest events
func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEntityMoved})
	}

	got := q.Consume()
	require.Len(t, got, constants.EventQueueSize)
	assert.Equal(t, uint64(11), got[0].Seq)
	assert.Equal(t, uint64(total), got[len(got)-1].Seq)
	assert.Equal(t, uint64(10), q.Dropped())
}

// TestRouterDispatch verifies routing by type, registration order and batch callbacks
func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[string](q)

	first := &recordingHandler{types: []EventType{EventInputError, EventInputSuccess}}
	second := &recordingHandler{types: []EventType{EventInputSuccess}}
	r.Register(first)
	r.Register(second)

	assert.True(t, r.HasHandlers(EventInputSuccess))
	assert.Equal(t, 2, r.HandlerCount(EventInputSuccess))
	assert.False(t, r.HasHandlers(EventLevelUp))

	q.Push(GameEvent{Type: EventInputError})
	q.Push(GameEvent{Type: EventLevelUp})
	q.Push(GameEvent{Type: EventInputSuccess})

	dispatched := r.DispatchAll("snap")
	assert.Len(t, dispatched, 3)

	require.Len(t, first.seen, 2)
	assert.Equal(t, EventInputError, first.seen[0].Type)
	assert.Equal(t, EventInputSuccess, first.seen[1].Type)
	assert.Equal(t, []string{"snap", "snap"}, first.ctxs)

	require.Len(t, second.seen, 1)
	assert.Equal(t, []int{3}, first.batches)
	assert.Equal(t, []int{3}, second.batches)

	// Empty dispatch does not notify observers
	r.DispatchAll("snap")
	assert.Equal(t, []int{3}, first.batches)
}

// TestEventTypeNames verifies every type round-trips through its wire name
func TestEventTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		name := et.String()
		parsed, ok := ParseEventType(name)
		require.True(t, ok, name)
		assert.Equal(t, et, parsed)
	}
	assert.Equal(t, "event(99)", EventType(99).String())

	_, ok := ParseEventType("nope")
	assert.False(t, ok)
}

// TestGameEventJSON verifies the websocket encoding uses wire names
func TestGameEventJSON(t *testing.T) {
	b, err := json.Marshal(GameEvent{Type: EventScoreChanged, Payload: &ScoreChangedPayload{Score: 7}, Seq: 4})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"score_changed"`)
	assert.Contains(t, string(b), `"score":7`)

	var decoded struct {
		Type EventType `json:"type"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, EventScoreChanged, decoded.Type)

	_, err = json.Marshal(GameEvent{Type: EventType(-1)})
	assert.Error(t, err)
}
