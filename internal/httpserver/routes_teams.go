// internal/httpserver/routes_teams.go
//
// HTTP routes for team boards and standings.
//   - POST /teams                → create a team with an empty board
//   - GET  /teams/{id}           → board plus score, groups and runs
//   - POST /teams/{id}/place     → place one token into an empty cell
//   - GET  /standings            → all teams ranked by score
//
// Boards live in the in-memory store; placements go through Store.Update so
// two requests for the same team cannot overwrite each other.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/1970jjh/alpagoteam/internal/game"
	"github.com/1970jjh/alpagoteam/internal/store"
)

// mountTeams registers /teams and /standings.
func (s *Server) mountTeams(r chi.Router) {
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", s.handleNewTeam)
		r.Get("/{id}", s.handleGetTeam)
		r.Post("/{id}/place", s.handlePlace)
	})
	r.Get("/standings", s.handleStandings)
}

// teamRes is returned by every /teams route.
type teamRes struct {
	*game.Team
	game.Result
}

// -----------------------------------------------------------------------------
// POST /teams

type newTeamReq struct {
	Name string `json:"name" validate:"required,max=40"`
}

func (s *Server) handleNewTeam(w http.ResponseWriter, r *http.Request) {
	var req newTeamReq
	if !decode(w, r, &req) {
		return
	}
	t := game.NewTeam(req.Name)
	if err := s.store.Save(r.Context(), t); err != nil {
		log.Error().Err(err).Msg("save team")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("teamId", t.ID).Str("name", t.Name).Msg("team created")
	writeJSON(w, http.StatusCreated, teamRes{Team: t, Result: evaluate("team", t.Board)})
}

// -----------------------------------------------------------------------------
// GET /teams/{id}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamRes{Team: t, Result: evaluate("team", t.Board)})
}

// -----------------------------------------------------------------------------
// POST /teams/{id}/place

type placeReq struct {
	Index *int      `json:"index" validate:"required,min=0,max=19"`
	Token game.Cell `json:"token"`
}

// handlePlace applies a single placement to the team's board.
// - 400 for a bad index or an empty token.
// - 409 when the cell is already filled.
func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeReq
	if !decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")

	t, err := s.store.Update(r.Context(), id, func(t *game.Team) error {
		return t.Place(*req.Index, req.Token)
	})
	switch {
	case err == nil:
		placementsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, game.ErrCellOccupied):
		placementsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusConflict, "cell_occupied")
		return
	case errors.Is(err, game.ErrIndexOutOfRange):
		placementsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "index_out_of_range")
		return
	case errors.Is(err, game.ErrInvalidCell):
		placementsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "invalid_token")
		return
	default:
		s.storeError(w, err)
		return
	}

	log.Debug().Str("teamId", id).Int("index", *req.Index).Str("token", req.Token.String()).Msg("token placed")
	writeJSON(w, http.StatusOK, teamRes{Team: t, Result: evaluate("team", t.Board)})
}

// -----------------------------------------------------------------------------
// GET /standings

type standingsRes struct {
	Standings []game.Standing `json:"standings"`
	Finished  bool            `json:"finished"`
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	teams, err := s.store.List(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, standingsRes{
		Standings: game.Rank(teams),
		Finished:  game.AllFull(teams),
	})
}

// storeError maps store failures to responses.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("store")
	writeError(w, http.StatusInternalServerError, "store_error")
}
