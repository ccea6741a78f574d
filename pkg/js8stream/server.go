// Package js8stream fans decode events out to websocket clients as
// newline-free JSON text frames, one frame per event.
package js8stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cwsl/js8core/pkg/js8"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 8192,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wireEvent is the JSON-serialisable projection of a js8.DecodeEvent.
type wireEvent struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

func toWireEvent(e js8.DecodeEvent) wireEvent {
	switch e.Kind {
	case js8.EventSyncStart:
		return wireEvent{"sync_start", e.SyncStart}
	case js8.EventSyncState:
		return wireEvent{"sync_state", e.SyncState}
	case js8.EventDecoded:
		return wireEvent{"decoded", e.Decoded}
	case js8.EventDecodeStarted:
		return wireEvent{"decode_started", e.DecodeStarted}
	case js8.EventDecodeFinished:
		return wireEvent{"decode_finished", e.DecodeFinished}
	default:
		return wireEvent{"unknown", nil}
	}
}

// conn wraps one client's websocket with a write mutex, since EventSink.Emit
// may be called from the decode worker while a ping/close races it.
type conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (c *conn) send(e js8.DecodeEvent) {
	data, err := json.Marshal(toWireEvent(e))
	if err != nil {
		log.Printf("[js8stream] marshal failed: %v", err)
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[js8stream] write failed, dropping client: %v", err)
	}
}

// Server fans out every js8.DecodeEvent it receives to all connected
// websocket clients. It implements js8.EventSink.
type Server struct {
	mu    sync.RWMutex
	conns map[*conn]struct{}
}

// NewServer returns an empty fanout server.
func NewServer() *Server {
	return &Server{conns: make(map[*conn]struct{})}
}

// Emit implements js8.EventSink, broadcasting e to every connected client.
// Each client is written to synchronously, one after another, so Emit
// returns only after every write has finished or hit its 10 s deadline.
func (s *Server) Emit(e js8.DecodeEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.conns {
		c.send(e)
	}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection for broadcast until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[js8stream] upgrade failed: %v", err)
		return
	}
	c := &conn{ws: ws}

	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, c)
		s.mu.Unlock()
		ws.Close()
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
