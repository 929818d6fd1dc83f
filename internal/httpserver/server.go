// internal/httpserver/server.go
//
// HTTP server wiring for the Concentration backend.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, access log, CORS,
//     timeouts, JSON responses).
//   - Public endpoints: "/" (browser client), "/health", "/api".
//   - Game endpoints: POST /game/new, then session-gated
//     GET /game/state, POST /game/click, POST /game/key, POST /game/reset,
//     DELETE /game and the live GET /game/ws socket.
//
// Notes:
//   - Every game event runs inside store.Update, so events for one game are
//     applied strictly one after another.
//   - The websocket route is mounted outside the handler timeout.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/concentration/apps/go-server/assets"
	"github.com/robalobadob/concentration/apps/go-server/internal/config"
	"github.com/robalobadob/concentration/apps/go-server/internal/game"
	"github.com/robalobadob/concentration/apps/go-server/internal/store"
)

// Server bundles router, game store, live-update hub and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	hub   *hub
	cfg   config.Config

	newGame func() *game.Game
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg config.Config) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		hub:     newHub(),
		cfg:     cfg,
		newGame: func() *game.Game { return game.New() },
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)        // add X-Request-ID
	s.r.Use(chimw.RealIP)           // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)        // recover from panics
	s.r.Use(requestLogger)          // zerolog access log
	s.r.Use(cors(cfg.ClientOrigin)) // credentials-friendly CORS

	// --- browser client ---
	s.r.Get("/", s.handleIndex)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
		r.Use(jsonContentType)                   // default JSON responses

		// --- diagnostics ---
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.store.Len()})
		})
		r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"service": "concentration-go",
				"endpoints": []string{
					"/health", "POST /game/new", "GET /game/state", "POST /game/click",
					"POST /game/key", "POST /game/reset", "DELETE /game", "GET /game/ws",
				},
			})
		})

		r.Post("/game/new", s.handleNewGame)

		r.Group(func(r chi.Router) {
			r.Use(s.requireGame)
			r.Get("/game/state", s.handleState)
			r.Post("/game/click", s.handleClick)
			r.Post("/game/key", s.handleKey)
			r.Post("/game/reset", s.handleReset)
			r.Delete("/game", s.handleDelete)
		})
	})

	// live frames; no handler timeout for long-lived sockets
	s.r.With(s.requireGame).Get("/game/ws", s.handleWS)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests and http.Server wiring).
func (s *Server) Router() chi.Router { return s.r }

// Close disconnects every live websocket client.
func (s *Server) Close() { s.hub.closeAll() }

// handleIndex serves the embedded browser client.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.Index()
	if err != nil {
		log.Error().Err(err).Msg("read index.html")
		writeError(w, http.StatusInternalServerError, "asset_missing")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
