// Package telemetry broadcasts live search progress over WebSocket for
// external observability: depth reached, nodes/sec, TT hit rate, current
// best move and score. It has no bearing on FindBestMove's result and is
// off unless a caller starts the server; an ambient diagnostics surface
// grounded on the teacher's hub/analytics-websocket machinery, turned
// toward the search engine's own internals instead of game state.
package telemetry

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ProgressEvent is one snapshot of a running search, broadcast to every
// connected client as it happens.
type ProgressEvent struct {
	Depth       int     `json:"depth"`
	Nodes       uint64  `json:"nodes"`
	NodesPerSec float64 `json:"nodes_per_sec"`
	TTHitRate   float64 `json:"tt_hit_rate"`
	BestRow     int     `json:"best_row"`
	BestCol     int     `json:"best_col"`
	Score       float64 `json:"score"`
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client is one connected WebSocket subscriber.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// Hub fans ProgressEvents out to every connected WebSocket client.
type Hub struct {
	mu        sync.Mutex
	clients   map[*Client]struct{}
	broadcast chan ProgressEvent
}

// NewHub creates a Hub; call Run in its own goroutine to start the
// broadcast loop.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan ProgressEvent, 64),
	}
}

// Publish enqueues a progress event for broadcast. It never blocks the
// search: if the buffer is full the event is dropped.
func (h *Hub) Publish(e ProgressEvent) {
	select {
	case h.broadcast <- e:
	default:
	}
}

// Run drains the broadcast channel and fans each event out to every
// registered client until done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case e := <-h.broadcast:
			h.mu.Lock()
			if len(h.clients) == 0 {
				h.mu.Unlock()
				continue
			}
			for c := range h.clients {
				c.sendJSON(wsMessage{Type: "progress", Payload: mustMarshal(e)})
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return data
}

const wsIdlePingInterval = 30 * time.Second

func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	ping := mustMarshal(nil)

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, mustMarshal(wsMessage{Type: "ping", Payload: ping})); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
