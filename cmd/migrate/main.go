package main

import (
	"context"
	"flag"
	stdlog "log"
	"os/signal"
	"syscall"

	"settlement/internal/pkg/config"
	"settlement/internal/pkg/dotenv"
	"settlement/internal/pkg/postgres"
	"settlement/migrations"
	"settlement/pkg/logger"
	"settlement/pkg/logger/zap_adapter"
)

func main() {
	down := flag.Bool("down", false, "roll back the last migration instead of applying all")

	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		zapLogger.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	if *down {
		err = migrations.Down(ctx, pool)
	} else {
		err = migrations.Up(ctx, pool)
	}
	if err != nil {
		zapLogger.Error("migrate", logger.NewField("error", err), logger.NewField("down", *down))
		return
	}

	zapLogger.Info("migrations applied", logger.NewField("down", *down))
}
