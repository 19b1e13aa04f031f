package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"majasdoc/internal/nav"
	"majasdoc/internal/search"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format. It carries both
// the live search input and the cache control messages a service
// worker would receive.
type wsRequest struct {
	Type  string `json:"type"` // "search", "skipWaiting", "clearCache"
	Query string `json:"query,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type        string              `json:"type"` // "suggestions", "ack", "error"
	Query       string              `json:"query,omitempty"`
	Suggestions []search.Suggestion `json:"suggestions,omitempty"`
	Message     string              `json:"message,omitempty"`
}

// wsConn serializes writes; the debounced search reply runs on a
// timer goroutine concurrently with read-loop acks.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(resp wsResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

// handleWebSocket runs the live channel. Search input is debounced by
// the navigation quiescence window, so a burst of keystrokes produces
// exactly one suggestion evaluation, for the last query.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	c := &wsConn{conn: conn}
	debouncer := nav.NewDebouncer(nav.SearchDebounce)
	defer debouncer.Stop()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			c.send(wsResponse{Type: "error", Message: "invalid message format"})
			continue
		}

		switch req.Type {
		case "search":
			query := req.Query
			debouncer.Call(func() {
				suggestions := search.Suggest(s.doc, s.tagIndex, query)
				c.send(wsResponse{Type: "suggestions", Query: query, Suggestions: suggestions})
			})

		case "skipWaiting":
			s.cache.SkipWaiting()
			c.send(wsResponse{Type: "ack", Message: "skipWaiting"})

		case "clearCache":
			s.cache.ClearCache()
			c.send(wsResponse{Type: "ack", Message: "clearCache"})

		default:
			c.send(wsResponse{Type: "error", Message: "unknown message type: " + req.Type})
		}
	}
}
