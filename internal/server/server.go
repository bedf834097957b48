// Package server provides the HTTP REST API for the resume scorer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server/middleware"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

// Server is the HTTP server. Scoring is always available; persistence
// and auth routes are registered only when a database is configured.
type Server struct {
	httpServer       *http.Server
	db               *db.DB
	engine           *scoring.Engine
	scoringCfg       *config.ScoringConfig
	rateLimiter      *ratelimit.Limiter
	jwtService       *JWTService
	userService      *UserService
	authHandler      *AuthHandler
	log              *zap.Logger
	fetchWithBrowser bool
}

// Config holds server configuration.
type Config struct {
	Port              int
	DatabaseURL       string // empty runs the server in stateless mode
	ScoringConfigPath string // empty uses the built-in defaults
	FetchWithBrowser  bool   // render fetched job postings with headless Chrome
}

// New creates a server instance.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	scoringCfg, err := loadScoringConfig(cfg.ScoringConfigPath)
	if err != nil {
		return nil, err
	}

	engine, err := scoring.NewEngine(scoringCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}

	s := &Server{
		engine:           engine,
		scoringCfg:       scoringCfg,
		log:              logger,
		fetchWithBrowser: cfg.FetchWithBrowser,
	}
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("GET /health", s.handleHealth)

	if cfg.DatabaseURL != "" {
		if err := s.setupPersistence(cfg.DatabaseURL, mux); err != nil {
			return nil, err
		}
	} else {
		logger.Info("no database configured, running stateless")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // job posting fetches can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func loadScoringConfig(path string) (*config.ScoringConfig, error) {
	if path == "" {
		return config.DefaultScoringConfig()
	}
	return config.LoadScoringConfig(path)
}

// setupPersistence connects the database and registers the auth and
// resume routes.
func (s *Server) setupPersistence(databaseURL string, mux *http.ServeMux) error {
	database, err := db.Connect(context.Background(), databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return err
	}
	s.db = database

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	s.userService = NewUserService(database, passwordConfig)
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /resumes", authed(http.HandlerFunc(s.handleSaveResume)))
	mux.Handle("GET /resumes", authed(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /resumes/{id}", authed(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("DELETE /resumes/{id}", authed(http.HandlerFunc(s.handleDeleteResume)))
	mux.Handle("POST /resumes/{id}/score", authed(http.HandlerFunc(s.handleRescoreResume)))
	mux.Handle("GET /resumes/{id}/reports", authed(http.HandlerFunc(s.handleListReports)))
	mux.Handle("GET /reports/{id}", authed(http.HandlerFunc(s.handleGetReport)))

	return nil
}

// Start begins listening and blocks until an interrupt or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.db != nil {
		s.db.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client rate limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies the client by IP for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
