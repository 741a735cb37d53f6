package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/word-traffic/core"
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Message types
const (
	MessageHello  = "hello"
	MessageUpdate = "update"
	MessageError  = "error"

	ClientStart = "start"
	ClientInput = "input"
)

const (
	clientBufferSize = 64
	writeTimeout     = 5 * time.Second
)

// ServerMessage is pushed to websocket clients
type ServerMessage struct {
	Type   string             `json:"type"`
	Client string             `json:"client,omitempty"`
	Events []events.GameEvent `json:"events,omitempty"`
	State  *engine.Snapshot   `json:"state,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// ClientMessage is read from websocket clients
type ClientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type client struct {
	id      uuid.UUID
	send    chan ServerMessage
	done    chan struct{}
	closeMu sync.Once
}

func (c *client) close() {
	c.closeMu.Do(func() { close(c.done) })
}

// Hub fans game events out to websocket clients and feeds their input back to the game
// HandleEvent and EndBatch run on the game loop and never block
type Hub struct {
	game   Game
	logger zerolog.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]*client

	// Loop exclusive batch of events awaiting EndBatch
	pending []events.GameEvent

	dropped atomic.Int64
}

// NewHub creates a hub relaying to game
func NewHub(game Game, logger zerolog.Logger) *Hub {
	return &Hub{
		game:    game,
		logger:  logger.With().Str("component", "hub").Logger(),
		clients: make(map[uuid.UUID]*client),
	}
}

// HandleEvent buffers ev until the end of the dispatch batch
func (h *Hub) HandleEvent(_ *engine.Snapshot, ev events.GameEvent) {
	h.pending = append(h.pending, ev)
}

// EventTypes subscribes to every event
func (h *Hub) EventTypes() []events.EventType {
	return events.AllTypes()
}

// EndBatch broadcasts the batch with the snapshot it produced
func (h *Hub) EndBatch(snap *engine.Snapshot, _ int) {
	batch := h.pending
	h.pending = nil
	h.broadcast(ServerMessage{Type: MessageUpdate, Events: batch, State: snap})
}

// broadcast queues msg for every client; a client with a full buffer misses it
func (h *Hub) broadcast(msg ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.dropped.Add(1)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns how many messages were skipped for slow clients
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		c.close()
		delete(h.clients, id)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	c.close()
}

// Serve runs one websocket connection until it closes
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	c := &client{
		id:   uuid.New(),
		send: make(chan ServerMessage, clientBufferSize),
		done: make(chan struct{}),
	}
	logger := h.logger.With().Str("client", c.id.String()).Logger()

	c.send <- ServerMessage{Type: MessageHello, Client: c.id.String(), State: h.game.Snapshot()}
	h.register(c)
	logger.Info().Int("clients", h.ClientCount()).Msg("client connected")

	ctx, cancel := context.WithCancel(ctx)
	core.Go(func() {
		defer cancel()
		h.writeLoop(ctx, conn, c, logger)
	})

	h.readLoop(ctx, conn, c, logger)
	h.unregister(c)
	cancel()
	logger.Info().Msg("client disconnected")
}

func (h *Hub) writeLoop(ctx context.Context, conn *websocket.Conn, c *client, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, msg)
			cancel()
			if err != nil {
				logger.Debug().Err(err).Msg("write failed")
				conn.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}

func (h *Hub) readLoop(ctx context.Context, conn *websocket.Conn, c *client, logger zerolog.Logger) {
	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				logger.Debug().Err(err).Msg("read failed")
			}
			return
		}

		switch msg.Type {
		case ClientStart:
			h.game.Start()
		case ClientInput:
			h.game.Input(msg.Text)
		default:
			select {
			case c.send <- ServerMessage{Type: MessageError, Error: "unknown message type " + msg.Type}:
			default:
				h.dropped.Add(1)
			}
		}
	}
}
