package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nao1215/passcheck/internal/evaluator"
)

//go:embed templates/index.html
var content embed.FS

const (
	// DefaultReadTimeout bounds how long a request may take to arrive.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds how long a response may take to drain.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout bounds how long keep-alive connections linger.
	DefaultIdleTimeout = 120 * time.Second

	// shutdownTimeout bounds graceful shutdown once the context is done.
	shutdownTimeout = 10 * time.Second
)

// Server is the passcheck web server.
//
// Design decision: We hold the evaluator rather than constructing one per
// request because:
// 1. The reference data is immutable, so one engine serves all requests
// 2. Evaluation keeps no per-call state, making the engine safe to share
// 3. Handlers stay trivial to test with a stub-free setup
type Server struct {
	// addr is the listen address, for example ":5000".
	addr string

	// eval is the shared password evaluation engine.
	eval *evaluator.PasswordEvaluator

	// logger records request activity. Passwords never reach it.
	logger *slog.Logger

	// readTimeout, writeTimeout, and idleTimeout configure the underlying
	// http.Server.
	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration

	// httpServer is the running server, set by ListenAndServe.
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTimeouts overrides the read, write, and idle timeouts.
func WithTimeouts(read, write, idle time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
		s.idleTimeout = idle
	}
}

// New creates a web server listening on addr backed by the given engine.
func New(addr string, eval *evaluator.PasswordEvaluator, opts ...Option) *Server {
	s := &Server{
		addr:         addr,
		eval:         eval,
		logger:       slog.Default(),
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
		idleTimeout:  DefaultIdleTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the routed HTTP handler with request logging attached.
// Method mismatches on registered paths return 405 via the mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return s.logRequests(mux)
}

// ListenAndServe runs the server until the context is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown that lets
// in-flight requests finish.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("web server started", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down web server: %w", err)
		}

		s.logger.Info("web server stopped")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	}
}
