// internal/httpserver/routes_daily.go
//
// HTTP route for the daily puzzle.
//   - POST /daily/new → start today's game.
//
// The session generator is seeded from daily.Seed(today, salt), and the
// word length is drawn from the dictionary's length distribution under the
// same seed, so every player gets the same puzzle per UTC date.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vancezuo/adversary-hangman/internal/daily"
	"github.com/vancezuo/adversary-hangman/internal/game"
	"github.com/vancezuo/adversary-hangman/internal/randutil"
)

type dailyReq struct {
	Mode  string `json:"mode"`
	Lives int    `json:"lives"`
}

type dailyRes struct {
	Date string `json:"date"`
	game.Snapshot
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	mode, lives, err := s.resolve(req.Mode, req.Lives)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	now := s.opts.Clock.Now()
	rng := randutil.New(daily.Seed(now, s.opts.DailySalt))
	length, err := s.dict.RandomLength(rng)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	g, err := game.NewSession(s.dict, mode, length, lives, rng)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save daily game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	date := daily.DateKey(now)
	log.Info().Str("gameId", g.ID).Str("date", date).Int("length", length).Msg("new daily game")

	writeJSON(w, http.StatusOK, dailyRes{Date: date, Snapshot: g.Snapshot()})
}
