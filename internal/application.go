package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/XirdneL/Connect-4/internal/apperror"
	"github.com/XirdneL/Connect-4/internal/config"
	"github.com/XirdneL/Connect-4/internal/repository"
	"github.com/XirdneL/Connect-4/internal/repository/storage"
	"github.com/XirdneL/Connect-4/internal/transport/console"
	"github.com/XirdneL/Connect-4/internal/usecase"
)

// RunApp - runs one game on the terminal.
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

	resultRepo, closeStorage, err := newResultRepository(ctx, log, conf)
	if err != nil {
		return fmt.Errorf("could not create results storage: %w", err)
	}

	defer closeStorage()

	gameManager := usecase.NewGameManager(logger, resultRepo)

	consoleErrCh := make(chan error, 1)
	go func() {
		log.Debug("Starting console game", "storage", conf.Results.Storage)
		consoleErrCh <- console.New(logger, os.Stdin, os.Stdout, gameManager).Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	switch conf.Results.Storage {
	case config.StorageMemory, "":
		return repository.NewMemoryResultRepository(), func() {}, nil
	case config.StorageRedis:
		redisStorage, err := storage.New(ctx, conf.Results.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewResultRepository(redisStorage), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStorage, conf.Results.Storage)
	}
}
