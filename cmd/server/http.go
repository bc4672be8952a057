package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/pkg/lifecycle"
)

const readHeaderTimeout = 10 * time.Second

// httpServer binds the listener eagerly so a taken port fails Start instead
// of surfacing later from the serve goroutine.
type httpServer struct {
	srv             *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) *httpServer {
	logger = logger.With("system", "http")

	return &httpServer{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: min(readHeaderTimeout, cfg.ReadTimeoutDuration()),
			ReadTimeout:       cfg.ReadTimeoutDuration(),
			WriteTimeout:      cfg.WriteTimeoutDuration(),
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	s.logger.Info("server listening", "addr", ln.Addr().String())

	go func() {
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped unexpectedly", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.stop()
	})

	return nil
}

func (s *httpServer) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("draining connections", "timeout", s.shutdownTimeout)
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown incomplete", "error", err)
		return
	}
	s.logger.Info("server shutdown complete")
}
