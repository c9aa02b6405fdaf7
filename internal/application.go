package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/config"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/lobby"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/repository"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/service"
	"github.com/rocketscienceinc/infinity-tictactoe/transport/rest"
	"github.com/rocketscienceinc/infinity-tictactoe/transport/websocket"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	matchRepo, statsRepo, closeStorage, err := openRepositories(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	results := service.NewResultService(logger, matchRepo, statsRepo)
	auth := service.NewAuthService(conf.JWTSecretKey)

	manager := lobby.NewManager(logger)
	session := lobby.NewSession(logger, manager, results, lobby.Options{
		PingInterval:   conf.Session.PingInterval,
		PingTimeout:    conf.Session.PingTimeout,
		FinishGrace:    conf.Session.FinishGrace,
		PersistTimeout: conf.Session.PersistTimeout,
	})

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger, manager, results, auth, conf.Lobby.FeedInterval)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, session, auth)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// openRepositories - connects the configured storage driver and builds the result repositories on top of it.
func openRepositories(ctx context.Context, conf *config.Config) (repository.MatchRepository, repository.StatsRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLMatchRepository(sqliteStorage.Connection),
			repository.NewSQLStatsRepository(sqliteStorage.Connection),
			sqliteStorage.Close,
			nil
	default:
		redisStorage, err := storage.NewRedisStorage(ctx, &redis.Options{
			Addr:     conf.Redis.GetRedisAddr(),
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewMatchRepository(redisStorage.Connection),
			repository.NewStatsRepository(redisStorage.Connection),
			redisStorage.Close,
			nil
	}
}
