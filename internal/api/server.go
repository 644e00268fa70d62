package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/logging"
)

type Server struct {
	router *http.ServeMux
	addr   string
	logger *zap.Logger
}

func NewServer(store Store, addr string, logger *zap.Logger) *Server {
	s := &Server{
		router: http.NewServeMux(),
		addr:   addr,
		logger: logging.OrNop(logger),
	}
	s.setupRoutes(store)
	return s
}

func (s *Server) setupRoutes(store Store) {
	h := NewHandlers(store, s.logger)

	withLogging := Logging(s.logger)
	withCORS := CORS
	withJSON := JSON

	s.router.HandleFunc("GET /api/health", withLogging(withJSON(h.Health)))

	s.router.HandleFunc("GET /api/users/{userSeq}/conversations", withLogging(withCORS(withJSON(h.ListConversationsByDate))))
	s.router.HandleFunc("GET /api/users/{userSeq}/weekly-stats", withLogging(withCORS(withJSON(h.GetWeeklyStats))))
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}
