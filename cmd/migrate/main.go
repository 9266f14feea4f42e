package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/dotenv"
	"shipment-service/internal/pkg/migrations"
	"shipment-service/internal/pkg/postgres"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/logger/zap_adapter"
)

func main() {
	flag.Usage = func() {
		stdlog.Printf("usage: migrate [%s]", strings.Join(migrations.Commands(), "|"))
	}

	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	command := flag.Arg(0)
	if command == "" {
		command = migrations.CommandUp
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Service: "migrate",
		Level:   cfg.Log.Level,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		stop()
		os.Exit(1)
	}
	defer pool.Close()

	if err := migrations.Run(ctx, log, pool, command); err != nil {
		log.Error("migrate failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		pool.Close()
		stop()
		os.Exit(1)
	}
}
