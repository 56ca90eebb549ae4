package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"shootbook/internal/infrastructure/config"

	"go.uber.org/zap"
)

const (
	healthInterval  = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Run wires the application and serves it until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	h, monitor, closeFn, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()
	router, err := NewRouter(cfg, logger, h)
	if err != nil {
		return err
	}
	monitor.Start(ctx, healthInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end with ctx so event streams close on shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
