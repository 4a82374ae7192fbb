package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nkiryanov/cardcheck/internal/handlers"
	"github.com/nkiryanov/cardcheck/internal/logger"
	"github.com/nkiryanov/cardcheck/internal/service/validate"
)

type ServerApp struct {
	ListenAddr      string
	ShutdownTimeout time.Duration
	Handler         http.Handler
	Logger          logger.Logger
}

func NewServerApp(c *Config) (*ServerApp, error) {
	// Initialize logger
	l, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	validateService := validate.NewService(l.WithGroup("validate"))
	mux := handlers.NewRouter(validateService, l, c.MaxBodyBytes)

	return &ServerApp{
		ListenAddr:      c.ListenAddr,
		ShutdownTimeout: c.ShutdownTimeout,
		Handler:         mux,
		Logger:          l,
	}, nil
}

// Run starts http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.ListenAddr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); errors.Is(err, context.DeadlineExceeded) {
			s.Logger.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		s.Logger.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until context is cancelled; then close gracefully connections
	s.Logger.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	return err
}
