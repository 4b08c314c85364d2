// Package server exposes keyword extraction and match scoring over a JSON
// HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/ingest"
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/relevance"
)

const (
	maxBodyBytes    = 1 << 20
	maxPoolLimit    = 50
	maxSelected     = maxPoolLimit
	shutdownTimeout = 5 * time.Second
)

// Config holds the server settings.
type Config struct {
	Listen         string
	Token          string
	MaxInputLength int
	PoolLimit      int
	RateLimit      RateLimit
}

// RateLimit allows Requests per Window for every client address. A zero
// Requests value disables limiting.
type RateLimit struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Server handles HTTP requests.
type Server struct {
	cfg     Config
	scorer  *relevance.Scorer
	logger  *zap.Logger
	limiter *clientLimiter
}

// New creates a server. A nil scorer uses the default tuning.
func New(cfg Config, scorer *relevance.Scorer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scorer == nil {
		scorer = relevance.NewScorer(relevance.DefaultTuning(), logger)
	}
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = ingest.DefaultMaxInputLength
	}
	if cfg.PoolLimit <= 0 {
		cfg.PoolLimit = keywords.DefaultPoolLimit
	}

	return &Server{
		cfg:     cfg,
		scorer:  scorer,
		logger:  logger.With(zap.String("component", "server")),
		limiter: newClientLimiter(cfg.RateLimit),
	}
}

// Router returns the HTTP handler with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/keywords", s.handleKeywords)
	api.HandleFunc("POST /api/match", s.handleMatch)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/api/", s.rateLimitMiddleware(s.authMiddleware(api)))

	return s.loggingMiddleware(mux)
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Listen), zap.Bool("auth", s.cfg.Token != ""))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
