package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type snapshotter interface {
	Snapshot() entity.Snapshot
}

func NewRouter(logger *slog.Logger, session snapshotter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", NewPingHandler(logger).PingHandler)
	mux.HandleFunc("GET /session", NewSessionHandler(logger, session).SessionHandler)

	return mux
}

// Start serves the status endpoints until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, session snapshotter) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, session),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
