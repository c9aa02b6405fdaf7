package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/infinity-tictactoe/internal"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/config"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/service"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env: %w", err))
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newCommand() *cli.Command {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Value: "config.yml",
		Usage: "path to the yaml config file",
	}

	return &cli.Command{
		Name:  "infinity-tictactoe",
		Usage: "two-player Infinity Tic-Tac-Toe server",
		Flags: []cli.Flag{
			configFlag,
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "overrides log-level from the config (debug, info, warn, error)",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:  "token",
				Usage: "prints a signed identity token for local testing",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: "id", Required: true, Usage: "user id"},
					&cli.StringFlag{Name: "name", Required: true, Usage: "username"},
				},
				Action: printToken,
			},
		},
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	conf := config.MustLoad(cmd.String("config"))
	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	return app.RunApp(ctx, initLogger(conf), conf)
}

func printToken(_ context.Context, cmd *cli.Command) error {
	conf := config.MustLoad(cmd.String("config"))

	token, err := service.NewAuthService(conf.JWTSecretKey).GenerateToken(entity.User{
		ID:       cmd.String("id"),
		Username: cmd.String("name"),
	})
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, token)

	return err
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
