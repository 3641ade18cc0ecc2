package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"yatube/config"
	pgstore "yatube/internal/adapter/out/storage/postgres"
	"yatube/internal/app"
	"yatube/pkg/logger"
)

const usage = `usage: yatube [command]

commands:
  serve                          run the HTTP API (default)
  migrate up|down                apply or roll back postgres migrations
  createuser <username> <pass>   create an account
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadConfig(os.Getenv("YATUBE_CONFIG_DIR"))
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		a, err := app.NewApp(ctx, cfg)
		if err != nil {
			return err
		}
		return a.Run(ctx)

	case "migrate":
		return migrate(ctx, cfg, args)

	case "createuser":
		if len(args) != 2 {
			return errors.New(usage)
		}
		a, err := app.NewApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.CreateUser(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		log.Info("user created", "id", u.ID, "username", u.Username)
		if cfg.StorageType == config.StorageMemory {
			log.Warn("memory storage is not persisted; use bootstrap_users for a running server")
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func migrate(ctx context.Context, cfg config.Config, args []string) error {
	if cfg.StorageType != config.StoragePostgres {
		return errors.New("migrations need storage_type=postgres")
	}
	if len(args) != 1 {
		return errors.New(usage)
	}

	dsn := cfg.Postgres.GetDSN()
	switch args[0] {
	case "up":
		return pgstore.MigrateUp(ctx, dsn)
	case "down":
		return pgstore.MigrateDown(ctx, dsn)
	default:
		return fmt.Errorf("unknown migrate direction %q", args[0])
	}
}
