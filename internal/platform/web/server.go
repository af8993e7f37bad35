// Package web serves the read-only leaderboard over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Leaderboard is the read side of the score store.
type Leaderboard interface {
	TopScores(character string, limit int) ([]storage.ScoreEntry, error)
	ReadBestScore() (int, error)
	Stats() ([]storage.CharacterStats, error)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ScoresResponse lists ranked runs.
type ScoresResponse struct {
	Character string               `json:"character,omitempty"`
	Scores    []storage.ScoreEntry `json:"scores"`
}

// BestResponse carries the persisted best score.
type BestResponse struct {
	Best int `json:"best"`
}

// StatsResponse carries per-character aggregates.
type StatsResponse struct {
	Characters []storage.CharacterStats `json:"characters"`
}

// Server handles leaderboard HTTP requests.
type Server struct {
	board     Leaderboard
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates a leaderboard server. A nil logger discards output.
func NewServer(board Leaderboard, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		board:     board,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scores", s.handleScores)
		r.Get("/best", s.handleBest)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	character := strings.TrimSpace(r.URL.Query().Get("character"))
	if character != "" {
		a, ok := dino.ParseArchetype(character)
		if !ok {
			s.writeError(w, r, http.StatusBadRequest, errors.New("unknown character: "+character))
			return
		}
		character = a.String()
	}

	scores, err := s.board.TopScores(character, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	s.writeJSON(w, http.StatusOK, ScoresResponse{Character: character, Scores: scores})
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	best, err := s.board.ReadBestScore()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, BestResponse{Best: best})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.board.Stats()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if stats == nil {
		stats = []storage.CharacterStats{}
	}
	s.writeJSON(w, http.StatusOK, StatsResponse{Characters: stats})
}

// parseLimit accepts an empty value or an integer in [1, maxLimit].
func parseLimit(v string) (int, error) {
	if v == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxLimit {
		return 0, errors.New("limit must be an integer between 1 and " + strconv.Itoa(maxLimit))
	}
	return n, nil
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

// writeError writes an ErrorResponse. Server errors are logged, client
// errors are not.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	reqID := middleware.GetReqID(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", reqID)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: reqID})
}

// ListenAndServe serves the routes on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
