// internal/httpserver/game_routes.go
//
// Game endpoints. Each handler turns a request into one game event:
//   - POST /game/new    → create a game, issue a session token
//   - GET  /game/state  → current state + render frame
//   - POST /game/click  → {x, y, button} click event
//   - POST /game/key    → {key} key event ("r" resets)
//   - POST /game/reset  → reset without going through the key mapping
//   - DELETE /game      → drop the game and its live sockets

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/concentration/apps/go-server/internal/game"
	"github.com/robalobadob/concentration/apps/go-server/internal/render"
	"github.com/robalobadob/concentration/apps/go-server/internal/store"
)

// stateRes is the shared view of a game returned by every game endpoint and
// pushed to websocket clients.
type stateRes struct {
	GameID string       `json:"gameId"`
	Score  int          `json:"score"`
	State  string       `json:"state"` // "playing" | "won"
	FaceUp []int        `json:"faceUp"`
	Found  int          `json:"found"`
	Resets int          `json:"resets"`
	Frame  render.Scene `json:"frame"`
}

func viewOf(g *game.Game) stateRes {
	return stateRes{
		GameID: g.ID,
		Score:  g.Score,
		State:  g.State(),
		FaceUp: g.FaceUpIndices(),
		Found:  g.FoundCount(),
		Resets: g.Resets,
		Frame:  render.Frame(g),
	}
}

// newGameRes is returned by POST /game/new.
type newGameRes struct {
	stateRes
	Token string `json:"token"`
}

// clickReq/Res payloads for POST /game/click.
type clickReq struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button"` // "LeftButton" | "left" | "primary" | anything else
}

type resolutionRes struct {
	First   int  `json:"first"`
	Second  int  `json:"second"`
	Matched bool `json:"matched"`
}

type clickRes struct {
	stateRes
	Flipped    int            `json:"flipped"` // deck index, -1 for a no-op
	Resolution *resolutionRes `json:"resolution,omitempty"`
	Won        bool           `json:"won"` // true only on the winning click
}

// keyReq/Res payloads for POST /game/key.
type keyReq struct {
	Key string `json:"key"`
}

type keyRes struct {
	stateRes
	Reset bool `json:"reset"`
}

// handleNewGame creates a game, stores it, and returns its session token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := s.newGame()
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signSession(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Info().Str("gameId", g.ID).Msg("game created")

	var res newGameRes
	_ = s.store.View(r.Context(), g.ID, func(g *game.Game) error {
		res.stateRes = viewOf(g)
		return nil
	})
	res.Token = tok
	writeJSON(w, http.StatusCreated, res)
}

// handleState returns the current view of the session's game.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var res stateRes
	err := s.store.View(r.Context(), gameIDFrom(r.Context()), func(g *game.Game) error {
		res = viewOf(g)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleClick applies a click event.
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, err := s.applyClick(r.Context(), gameIDFrom(r.Context()), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleKey applies a key event.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, err := s.applyKey(r.Context(), gameIDFrom(r.Context()), req.Key)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleReset resets the game directly.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	res, err := s.applyKey(r.Context(), gameIDFrom(r.Context()), game.ResetKey)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleDelete drops the game, closes its sockets and clears the cookie.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := gameIDFrom(r.Context())
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	s.hub.closeRoom(id)
	s.clearSessionCookie(w)
	log.Info().Str("gameId", id).Msg("game deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ------------------------------ events --------------------------------------

// applyClick runs one click event against the stored game and publishes the
// resulting frame.
func (s *Server) applyClick(ctx context.Context, id string, req clickReq) (clickRes, error) {
	var res clickRes
	err := s.store.Update(ctx, id, func(g *game.Game) error {
		out := g.HandleClick(game.Point{X: req.X, Y: req.Y}, game.ParseButton(req.Button))
		res.Flipped = out.Index
		res.Won = out.Won
		if rs := out.Resolution; rs != nil {
			res.Resolution = &resolutionRes{
				First:   g.Deck.IndexOf(rs.First),
				Second:  g.Deck.IndexOf(rs.Second),
				Matched: rs.Matched,
			}
			log.Debug().Str("gameId", id).Bool("matched", rs.Matched).
				Str("first", rs.First.String()).Str("second", rs.Second.String()).
				Int("score", g.Score).Msg("resolved")
		}
		if out.Won {
			log.Info().Str("gameId", id).Int("resets", g.Resets).Msg("game won")
		}
		res.stateRes = viewOf(g)
		s.publish(res.stateRes)
		return nil
	})
	return res, err
}

// applyKey runs one key event against the stored game and publishes the
// resulting frame.
func (s *Server) applyKey(ctx context.Context, id, key string) (keyRes, error) {
	var res keyRes
	err := s.store.Update(ctx, id, func(g *game.Game) error {
		res.Reset = g.HandleKey(key)
		if res.Reset {
			log.Info().Str("gameId", id).Int("found", g.FoundCount()).Msg("game reset")
		}
		res.stateRes = viewOf(g)
		s.publish(res.stateRes)
		return nil
	})
	return res, err
}

// writeStoreError maps store errors onto JSON error responses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "game_not_found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("game store")
		writeError(w, http.StatusInternalServerError, "store_failed")
	}
}
