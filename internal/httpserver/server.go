// internal/httpserver/server.go
//
// HTTP server wiring for the hangman engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/modes", "/words/stats".
//   - Game endpoints: POST /game/new, GET /game/{id}, POST /game/{id}.
//   - Daily puzzle endpoint: mounted under /daily.
//
// Notes:
//   - Sessions live in a store.Store; every guess runs inside store.Update so
//     concurrent requests for one game are applied one at a time.
//   - Each new session gets its own generator derived from the server's
//     master generator.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	rand "math/rand/v2"
	"net"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vancezuo/adversary-hangman/internal/game"
	"github.com/vancezuo/adversary-hangman/internal/randutil"
	"github.com/vancezuo/adversary-hangman/internal/store"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

// Options are the game defaults and limits applied to incoming requests.
type Options struct {
	DefaultMode   game.Mode
	DefaultLength int
	DefaultLives  int
	MaxLives      int
	RandomLength  bool // choose a weighted random length when none is given
	DailySalt     string
	ClientOrigin  string
	Clock         quartz.Clock
}

// Server bundles router, session store, and dictionary.
type Server struct {
	r     *chi.Mux
	http  *http.Server
	store store.Store
	dict  *words.Dictionary
	opts  Options

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, rng *rand.Rand, opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, opts: opts, rng: rng}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "hangman-go",
			"endpoints": []string{"/health", "/modes", "/words/stats", "POST /game/new", "POST /game/{id}", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/modes", s.handleModes)
	s.r.Get("/words/stats", s.handleWordStats)

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Post("/game/{id}", s.handleAction)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	return s
}

// Start begins serving HTTP on addr. It returns http.ErrServerClosed after
// Shutdown, including when Shutdown ran first.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.http.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ META ---------------------------------------

type modeRes struct {
	Mode        game.Mode `json:"mode"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	out := []modeRes{}
	for _, m := range game.Modes() {
		out = append(out, modeRes{Mode: m, Name: m.String(), Description: m.Description()})
	}
	writeJSON(w, http.StatusOK, out)
}

type wordStatsRes struct {
	Total     int                 `json:"total"`
	MinLength int                 `json:"minLength"`
	MaxLength int                 `json:"maxLength"`
	Lengths   []words.LengthCount `json:"lengths"`
}

func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wordStatsRes{
		Total:     s.dict.TotalWordCount(),
		MinLength: s.dict.MinLength(),
		MaxLength: s.dict.MaxLength(),
		Lengths:   s.dict.Stats(),
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq: every field is optional and falls back to Options.
type newGameReq struct {
	Mode   string `json:"mode"`
	Length int    `json:"length"`
	Lives  int    `json:"lives"`
}

// handleNewGame creates a session and stores it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
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

	rng := s.childRNG()
	length := req.Length
	if length == 0 {
		length = s.opts.DefaultLength
		if s.opts.RandomLength {
			if length, err = s.dict.RandomLength(rng); err != nil {
				writeEngineError(w, err)
				return
			}
		}
	}

	g, err := game.NewSession(s.dict, mode, length, lives, rng)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Str("mode", string(mode)).Int("length", length).Int("lives", lives).Msg("new game")

	writeJSON(w, http.StatusOK, g.Snapshot())
}

// resolve applies defaults and the MaxLives cap to request fields.
func (s *Server) resolve(modeName string, lives int) (game.Mode, int, error) {
	mode := s.opts.DefaultMode
	if modeName != "" {
		m, err := game.ParseMode(modeName)
		if err != nil {
			return "", 0, err
		}
		mode = m
	}
	if lives == 0 {
		lives = s.opts.DefaultLives
	}
	if s.opts.MaxLives > 0 && lives > s.opts.MaxLives {
		return "", 0, game.ErrInvalidLifeCount
	}
	return mode, lives, nil
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// actionReq is one turn: {"action":"guess","letter":"e"} or {"action":"surrender"}.
type actionReq struct {
	Action string `json:"action"`
	Letter string `json:"letter"`
}

// actionRes is the snapshot after the turn plus whether a guess hit.
type actionRes struct {
	Hit bool `json:"hit"`
	game.Snapshot
}

// handleAction applies a guess or surrender to a stored session.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id := chi.URLParam(r, "id")

	var res actionRes
	err := s.store.Update(r.Context(), id, func(g *game.Session) error {
		switch req.Action {
		case "guess":
			ch, size := utf8.DecodeRuneInString(req.Letter)
			if size == 0 || size != len(req.Letter) {
				return game.ErrNotALetter
			}
			hit, err := g.PlayLetter(ch)
			if err != nil {
				return err
			}
			res.Hit = hit
		case "surrender":
			if err := g.Surrender(); err != nil {
				return err
			}
		default:
			return errBadAction
		}
		res.Snapshot = g.Snapshot()
		return nil
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if res.GameOver {
		log.Info().Str("gameId", id).Bool("won", res.Won).Int("lives", res.LivesRemaining).Msg("game over")
	}
	writeJSON(w, http.StatusOK, res)
}

// childRNG derives a per-session generator from the master one.
func (s *Server) childRNG() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return randutil.Child(s.rng)
}

// ------------------------------ ERRORS -------------------------------------

var errBadAction = errors.New("unknown action")

// writeEngineError maps engine and store errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrGameAlreadyOver):
		writeError(w, http.StatusConflict, "game_over")
	case errors.Is(err, game.ErrNotALetter):
		writeError(w, http.StatusBadRequest, "not_a_letter")
	case errors.Is(err, game.ErrInvalidWordLength):
		writeError(w, http.StatusBadRequest, "invalid_word_length")
	case errors.Is(err, game.ErrInvalidLifeCount):
		writeError(w, http.StatusBadRequest, "invalid_life_count")
	case errors.Is(err, game.ErrUnknownMode):
		writeError(w, http.StatusBadRequest, "unknown_mode")
	case errors.Is(err, words.ErrNoWordsOfLength):
		writeError(w, http.StatusBadRequest, "no_words_of_length")
	case errors.Is(err, errBadAction):
		writeError(w, http.StatusBadRequest, "bad_action")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("unhandled engine error")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
