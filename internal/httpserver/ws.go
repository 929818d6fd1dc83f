// internal/httpserver/ws.go
//
// GET /game/ws: live connection for the browser client.
// Outbound: {"type":"state", ...stateRes} after connect and after every event.
// Inbound:  {"type":"click","x":..,"y":..,"button":".."} | {"type":"key","key":".."}
//           | {"type":"reset"}. Anything else is ignored.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/concentration/apps/go-server/internal/game"
	"github.com/robalobadob/concentration/apps/go-server/internal/store"
)

// wsIn is an inbound input event.
type wsIn struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button"`
	Key    string `json:"key"`
}

// checkOrigin allows non-browser clients, the configured client origin and
// same-host pages (the embedded client).
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.cfg.ClientOrigin {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := gameIDFrom(r.Context())
	if err := s.store.View(r.Context(), id, func(*game.Game) error { return nil }); err != nil {
		writeStoreError(w, err)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Warn().Err(err).Str("gameId", id).Msg("ws upgrade")
		return
	}
	c := newWSClient(conn, id)

	// Snapshot and join under the store lock so no event slips in between.
	err = s.store.View(context.Background(), id, func(g *game.Game) error {
		msg, err := json.Marshal(wsState{Type: "state", stateRes: viewOf(g)})
		if err != nil {
			return err
		}
		c.send <- msg
		s.hub.join(c)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", id).Msg("ws join")
		_ = conn.Close()
		return
	}
	log.Debug().Str("gameId", id).Msg("ws connected")

	go c.writePump()
	s.readPump(c)
}

// readPump applies inbound events until the connection closes or the game
// disappears.
func (s *Server) readPump(c *wsClient) {
	defer func() {
		s.hub.leave(c)
		_ = c.conn.Close()
		log.Debug().Str("gameId", c.room).Msg("ws disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var in wsIn
		if err := json.Unmarshal(data, &in); err != nil {
			log.Debug().Err(err).Str("gameId", c.room).Msg("ws bad message")
			continue
		}
		if err := s.applyWS(c.room, in); errors.Is(err, store.ErrNotFound) {
			return
		} else if err != nil {
			log.Warn().Err(err).Str("gameId", c.room).Str("type", in.Type).Msg("ws event")
		}
	}
}

func (s *Server) applyWS(id string, in wsIn) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RequestTimeout)
	defer cancel()
	var err error
	switch in.Type {
	case "click":
		_, err = s.applyClick(ctx, id, clickReq{X: in.X, Y: in.Y, Button: in.Button})
	case "key":
		_, err = s.applyKey(ctx, id, in.Key)
	case "reset":
		_, err = s.applyKey(ctx, id, game.ResetKey)
	}
	return err
}

// writePump drains the send channel and keeps the connection alive with pings.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("gameId", c.room).Msg("ws ping")
				return
			}
		}
	}
}
