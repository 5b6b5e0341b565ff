// Package server exposes the request engine over HTTP. The transport carries
// no business logic: it decodes one query, delegates to the engine, and maps
// error kinds to statuses.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	logx "github.com/shopassist-poc/server/pkg/logger"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "127.0.0.1:8080"

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout bounds header reads to avoid slow-client stalls.
	ReadHeaderTimeout = 10 * time.Second
	ReadTimeout       = 30 * time.Second
	WriteTimeout      = 60 * time.Second
	IdleTimeout       = 120 * time.Second
)

// Responder handles one query and returns one answer or one error.
type Responder interface {
	Respond(ctx context.Context, query string) (string, error)
}

// Server is the HTTP boundary of the assistant.
type Server struct {
	mux    *http.ServeMux
	engine Responder
}

// New creates the server with all routes registered.
func New(engine Responder) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		engine: engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

// Handler returns the HTTP handler with middleware applied.
// Middleware order: recovery, then request logging.
func (s *Server) Handler() http.Handler {
	return chain(s.mux, loggingMiddleware, recoveryMiddleware)
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", addr).Msg("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
