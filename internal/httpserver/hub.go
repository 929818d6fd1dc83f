// internal/httpserver/hub.go
//
// Websocket fan-out for live frames.
// Clients join a room named after their game ID. Every game event publishes
// the new state to the room; sends never block the event path, so a slow
// client only ever loses frames (the next frame supersedes them anyway).

package httpserver

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
)

// wsClient is a single websocket connection registered to a room.
type wsClient struct {
	conn *websocket.Conn
	room string
	send chan []byte

	closeOnce sync.Once
}

func newWSClient(conn *websocket.Conn, room string) *wsClient {
	return &wsClient{conn: conn, room: room, send: make(chan []byte, sendBuffer)}
}

// close shuts the send channel; writePump then sends a close frame and exits.
func (c *wsClient) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// hub tracks clients per room.
type hub struct {
	mu    sync.Mutex
	rooms map[string]map[*wsClient]struct{}
}

func newHub() *hub {
	return &hub{rooms: make(map[string]map[*wsClient]struct{})}
}

func (h *hub) join(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.room]
	if !ok {
		room = make(map[*wsClient]struct{})
		h.rooms[c.room] = room
	}
	room[c] = struct{}{}
}

func (h *hub) leave(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.rooms[c.room]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.room)
		}
	}
	c.close()
}

// broadcast queues msg for every client in room, dropping it for clients
// whose buffer is full.
func (h *hub) broadcast(room string, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- msg:
		default:
			log.Warn().Str("gameId", room).Msg("ws client lagging, frame dropped")
		}
	}
}

func (h *hub) count(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

func (h *hub) closeRoom(room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[room] {
		c.close()
	}
	delete(h.rooms, room)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		for c := range room {
			c.close()
		}
		delete(h.rooms, id)
	}
}

// wsState is the outbound state message.
type wsState struct {
	Type string `json:"type"` // "state"
	stateRes
}

// publish pushes a state view to every client watching the game.
func (s *Server) publish(v stateRes) {
	if s.hub.count(v.GameID) == 0 {
		return
	}
	msg, err := json.Marshal(wsState{Type: "state", stateRes: v})
	if err != nil {
		log.Error().Err(err).Str("gameId", v.GameID).Msg("marshal frame")
		return
	}
	s.hub.broadcast(v.GameID, msg)
}
