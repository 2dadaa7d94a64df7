package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Exporter produces PDFs; *export.Exporter is the production implementation
type Exporter interface {
	Export(ctx context.Context, doc types.ResumeData, tmpl types.Template, lang types.Language) (*export.Result, error)
	Busy() bool
}

// Config holds server configuration
type Config struct {
	Port int

	// Language and Template apply when a request names neither
	Language types.Language
	Template types.Template

	// RateLimit throttles expensive routes; the zero value disables it
	RateLimit ratelimit.Config
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	exporter   Exporter
	limiter    *ratelimit.Limiter
	log        *logrus.Entry
	language   types.Language
	template   types.Template
}

// New creates a new server instance around an existing store and exporter
func New(cfg Config, st *store.Store, exp Exporter, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if cfg.Template == "" {
		cfg.Template = types.TemplateVisual
	}
	s := &Server{
		store:    st,
		exporter: exp,
		limiter:  ratelimit.NewLimiter(cfg.RateLimit),
		log:      logger.WithField("component", "server"),
		language: cfg.Language,
		template: cfg.Template,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // exports drive a browser
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handleReplaceResume)
	mux.HandleFunc("PUT /resume/sections/{section}", s.handleUpdateSection)
	mux.HandleFunc("PATCH /resume/personal-info", s.handleSetPersonalField)
	mux.HandleFunc("PATCH /resume/summary", s.handleSetSummary)
	mux.HandleFunc("POST /resume/avatar", s.handleUploadAvatar)

	// List items
	mux.HandleFunc("POST /resume/lists/{list}", s.handleAddItem)
	mux.HandleFunc("PATCH /resume/lists/{list}/{index}", s.handleSetItemField)
	mux.HandleFunc("DELETE /resume/lists/{list}/{index}", s.handleRemoveItem)

	// Persistence
	mux.HandleFunc("POST /resume/save", s.handleSave)
	mux.HandleFunc("POST /resume/load", s.handleLoad)
	mux.HandleFunc("POST /resume/reset", s.handleReset)

	// Output
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /export/status", s.handleExportStatus)

	return s.withLogging(s.withRateLimit(s.withCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully and flushes any pending save
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	defer s.Close()

	g.Go(func() error {
		s.log.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.store.Flush(shutdownCtx)
		s.log.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// Close stops the rate limiter's background cleanup. Run calls it on exit;
// callers that only mount Handler must call it themselves. It is safe to call more than once.
func (s *Server) Close() {
	s.limiter.Stop()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests over their route's limit with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.limiter.Allow(clientID(r), r.Method, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if !allowed {
			retry := int(info.RetryAfter.Seconds() + 0.5)
			w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
			s.log.WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"client": clientID(r),
			}).Warn("rate limit exceeded")
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID is the remote IP without its port
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		entry := s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
			"remote":   r.RemoteAddr,
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request completed")
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail writes err with the status HTTPStatus picks for it
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	s.errorResponse(w, status, err.Error())
}
