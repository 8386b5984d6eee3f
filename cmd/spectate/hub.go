package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pebblegreen/stealth-golf/internal/game"
)

const tickInterval = time.Second / 60

// Hub owns the live world and every connected spectator. The world is only
// ever stepped by Run's ticker goroutine; commands from sockets are applied
// under the same lock, so each tick sees a consistent state.
type Hub struct {
	mu    sync.Mutex
	world *game.World
	subs  map[*subscriber]struct{}
	log   *zap.Logger
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex // serialises writes; gorilla allows one concurrent writer
}

// command is an inbound control message from a spectator.
type command struct {
	Type     string  `json:"type"` // shot, smoke, conceal, reset
	IX       float64 `json:"ix"`
	IY       float64 `json:"iy"`
	Duration float64 `json:"duration"`
}

// envelope wraps every outbound message with a type tag.
type envelope struct {
	Type  string `json:"type"` // static, snapshot
	Level any    `json:"level,omitempty"`
	State any    `json:"state,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Spectator tool; any origin may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

func newHub(world *game.World, log *zap.Logger) *Hub {
	return &Hub{
		world: world,
		subs:  make(map[*subscriber]struct{}),
		log:   log,
	}
}

// Run steps the world at 60 Hz and broadcasts a snapshot each tick until
// the context is done.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.mu.Lock()
			h.world.Step(1.0 / 60.0)
			snap := h.world.Snapshot()
			h.mu.Unlock()
			h.broadcast(envelope{Type: "snapshot", State: snap})
		}
	}
}

// handleWS upgrades the connection, sends the static level geometry, then
// reads commands until the socket closes.
func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	static := h.world.StaticState()
	h.subs[sub] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()
	h.log.Info("spectator joined", zap.String("remote", conn.RemoteAddr().String()), zap.Int("spectators", n))

	if err := sub.send(envelope{Type: "static", Level: static}); err != nil {
		h.drop(sub)
		return
	}

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			h.drop(sub)
			return
		}
		h.apply(cmd)
	}
}

// apply executes one spectator command against the world.
func (h *Hub) apply(cmd command) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch cmd.Type {
	case "shot":
		h.world.ApplyShot(cmd.IX, cmd.IY, false)
	case "smoke":
		h.world.ApplyShot(cmd.IX, cmd.IY, true)
	case "conceal":
		h.world.SetConcealed(cmd.Duration)
	case "reset":
		h.world.Reset()
	default:
		h.log.Debug("unknown command", zap.String("type", cmd.Type))
	}
}

// broadcast sends an envelope to every subscriber, dropping any whose
// socket errors.
func (h *Hub) broadcast(env envelope) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		if err := s.send(env); err != nil {
			h.drop(s)
		}
	}
}

func (h *Hub) drop(s *subscriber) {
	h.mu.Lock()
	_, ok := h.subs[s]
	delete(h.subs, s)
	n := len(h.subs)
	h.mu.Unlock()
	if ok {
		s.conn.Close()
		h.log.Info("spectator left", zap.Int("spectators", n))
	}
}

func (s *subscriber) send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}
