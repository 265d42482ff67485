package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tui"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/rest"
)

// RunApp - runs the game window until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionID := uuid.NewString()
	log = log.With("session_id", sessionID)

	sounds := sound.NewPlayer(logger, conf.Sound.Dir, conf.Sound.Timeout, !conf.Sound.Mute)
	defer sounds.Wait()

	var publisher repository.OutcomePublisher
	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		redisStorage, err := storage.NewRedisStorage(ctx, addr)
		if err != nil {
			log.Warn("outcome publishing disabled", "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			publisher = repository.NewOutcomePublisher(redisStorage, conf.Redis.Channel, sessionID)
			log.Info("publishing outcomes", "addr", addr, "channel", conf.Redis.Channel)
		}
	}

	gameManager := usecase.NewGameManager(logger, sounds, publisher, conf.DarkMode)
	defer gameManager.Wait()

	// run HTTP status server
	if conf.HTTPPort != "" {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			if err := rest.Start(ctx, logger, conf.HTTPPort, gameManager); err != nil {
				log.Error("HTTP server error", "error", err)
			}
		}()
	}

	log.Info("Opening game window")

	if err := tui.Run(ctx, gameManager); err != nil {
		return err
	}

	log.Info("Game window closed")

	return nil
}
