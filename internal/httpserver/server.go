// internal/httpserver/server.go
//
// HTTP server wiring for the alpagoteam scoring backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request logs).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Stateless scoring: POST /score.
//   - Team boards and standings: mounted under /teams and /standings (routes_teams.go).
//
// Notes:
//   - Every error body is {"error":"<code>"} with a matching status.
//   - Request payloads are checked with go-playground/validator before use.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/1970jjh/alpagoteam/internal/game"
	"github.com/1970jjh/alpagoteam/internal/store"
)

// Config carries the server settings read from the environment.
type Config struct {
	ClientOrigin string        // CORS origin (CLIENT_ORIGIN)
	Timeout      time.Duration // per-request handler budget (REQUEST_TIMEOUT)
}

// Server bundles router and team store.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// validate checks decoded request payloads.
var validate = validator.New()

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "http://localhost:5173"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)            // add X-Request-ID
	s.r.Use(chimw.RealIP)               // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)              // debug log per request
	s.r.Use(chimw.Recoverer)            // recover from panics
	s.r.Use(chimw.Timeout(cfg.Timeout)) // bound handler time
	s.r.Use(jsonContentType)            // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"alpagoteam","endpoints":["/health","/metrics","POST /score","POST /teams","GET /teams/{id}","POST /teams/{id}/place","GET /standings"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Scoring
	s.r.Post("/score", s.handleScore)

	// Teams + standings
	s.mountTeams(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Run serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ SCORE --------------------------------------

// scoreReq/Res payloads for POST /score.
type scoreReq struct {
	Board *game.Board `json:"board" validate:"required"`
}
type scoreRes struct {
	Board game.Board `json:"board"`
	game.Result
}

// handleScore scores a board sent by the caller without storing anything.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if !decode(w, r, &req) {
		return
	}
	res := evaluate("score", *req.Board)
	writeJSON(w, http.StatusOK, scoreRes{Board: *req.Board, Result: res})
}

// evaluate scores b and records metrics for route.
func evaluate(route string, b game.Board) game.Result {
	start := time.Now()
	res := game.Evaluate(b)
	evaluationDuration.Observe(time.Since(start).Seconds())
	evaluationsTotal.WithLabelValues(route).Inc()
	boardScores.Observe(float64(res.Score))
	return res
}

// ------------------------------- util --------------------------------------

// decode reads and validates a JSON body into dst.
// On failure it writes the error response and returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		switch {
		case errors.Is(err, game.ErrBoardLength):
			writeError(w, http.StatusBadRequest, "invalid_board_length")
		case errors.Is(err, game.ErrInvalidCell):
			writeError(w, http.StatusBadRequest, "invalid_cell")
		default:
			writeError(w, http.StatusBadRequest, "bad_json")
		}
		return false
	}
	if err := validate.Struct(dst); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("invalid request")
		writeError(w, http.StatusBadRequest, "invalid_request")
		return false
	}
	return true
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error":code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
