package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrNilHandler is returned by [New] when no handler is given.
var ErrNilHandler = errors.New("nil handler")

// Server runs an [http.Server] until its context ends, then drains
// in-flight requests.
//
// Create instances with [New] or [Config.NewServer].
type Server struct {
	httpServer      *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New creates a [Server] serving handler with the settings in cfg. A nil
// logger discards logs.
func New(cfg Config, handler http.Handler, logger *slog.Logger) (*Server, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Pprof {
		r := chi.NewRouter()
		r.Mount("/debug", middleware.Profiler())
		r.Mount("/", handler)
		handler = r
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler returns the root handler, including the profiling routes when
// enabled.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout. It returns nil after a clean
// shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	s.logger.InfoContext(ctx, "listening", slog.String("address", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)

	case <-ctx.Done():
	}

	s.logger.InfoContext(ctx, "shutting down", slog.Duration("timeout", s.shutdownTimeout))

	shutdownCtx := context.WithoutCancel(ctx)
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc

		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	err := s.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		closeErr := s.httpServer.Close()

		return errors.Join(fmt.Errorf("shutdown: %w", err), closeErr)
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	s.logger.InfoContext(ctx, "stopped")

	return nil
}
