// Package server exposes a running game over HTTP and websockets
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/session"
	"github.com/lixenwraith/word-traffic/systems"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
)

// Game is the session surface the server drives
type Game interface {
	Start()
	Input(text string)
	Submit(ctx context.Context, text string) (systems.MatchResult, error)
	Snapshot() *engine.Snapshot
}

// Exporter supplies the metrics served on /api/stats
type Exporter interface {
	Export() map[string]any
}

// Options configures a Server
type Options struct {
	Addr string
	// OriginPatterns are passed to the websocket handshake; empty allows same-origin only
	OriginPatterns []string
	Logger         zerolog.Logger
}

// InputRequest is the body of POST /api/input
type InputRequest struct {
	Text string `json:"text"`
}

// InputResponse reports the outcome of one submission
type InputResponse struct {
	Result systems.MatchResult `json:"result"`
	State  *engine.Snapshot    `json:"state"`
}

const submitTimeout = 2 * time.Second

// Server serves the game state, input endpoints and the event stream
type Server struct {
	game    Game
	hub     *Hub
	metrics Exporter
	opts    Options
	logger  zerolog.Logger

	router *mux.Router
	http   *http.Server
}

// New creates a server; hub must already be subscribed to the session
func New(game Game, hub *Hub, metrics Exporter, opts Options) *Server {
	s := &Server{
		game:    game,
		hub:     hub,
		metrics: metrics,
		opts:    opts,
		logger:  opts.Logger.With().Str("component", "server").Logger(),
		router:  mux.NewRouter(),
	}
	s.routes()
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/start", s.handleStart).Methods(http.MethodPost)
	api.HandleFunc("/input", s.handleInput).Methods(http.MethodPost)
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Stop; a clean shutdown returns nil
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.opts.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop disconnects websocket clients and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	s.hub.Close()
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.game.Snapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats := s.metrics.Export()
	stats["ws.clients"] = s.hub.ClientCount()
	stats["ws.dropped"] = s.hub.Dropped()
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStart(w http.ResponseWriter, _ *http.Request) {
	s.game.Start()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	result, err := s.game.Submit(ctx, req.Text)
	if errors.Is(err, session.ErrNotRunning) {
		writeJSON(w, http.StatusConflict, InputResponse{Result: result, State: s.game.Snapshot()})
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("input submission failed")
		writeError(w, http.StatusServiceUnavailable, "game loop unavailable")
		return
	}
	writeJSON(w, http.StatusOK, InputResponse{Result: result, State: s.game.Snapshot()})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket handshake failed")
		return
	}
	s.hub.Serve(r.Context(), conn)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
