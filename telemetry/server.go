package telemetry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes a Hub over HTTP: a health endpoint and a WebSocket
// stream of ProgressEvents, routed the way the teacher wires its API
// surface with chi middleware.
type Server struct {
	hub    *Hub
	router chi.Router
}

// NewServer builds a Server. Call Handler() to get an http.Handler to
// pass to http.ListenAndServe, and run hub.Run in its own goroutine.
func NewServer(hub *Hub) *Server {
	s := &Server{hub: hub, router: chi.NewRouter()}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	s.router.Get("/ws/progress", s.serveWS)
	return s
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: s.hub, conn: conn, send: make(chan []byte, 16)}
	s.hub.register(client)

	go func() {
		defer conn.Close()
		if err := writeWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.hub.unregister(client)
			return
		}
	}
}
