package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/dotenv"
	"shipment-service/internal/pkg/kafka"
	"shipment-service/internal/pkg/replay"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/logger/zap_adapter"
	"shipment-service/pkg/retrier/backoff_adapter"
)

const (
	targetHTTP  = "http"
	targetKafka = "kafka"

	httpClientTimeout = 10 * time.Second
)

var errUnknownTarget = errors.New("unknown target")

func main() {
	file := flag.String("file", "messages.json", "JSON array of ORGANIZATION/SHIPMENT events")
	target := flag.String("target", targetHTTP, "where to send events: http or kafka")
	addr := flag.String("addr", "http://localhost:3000", "service address for -target http")

	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Service: "send-events",
		Level:   os.Getenv("LOG_LEVEL"),
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, appLogger, *file, *target, *addr); err != nil {
		appLogger.Error("send-events failed", logger.NewField("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, file, target, addr string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	messages, err := replay.Read(f)
	if err != nil {
		return err
	}

	publisher, closePublisher, err := newPublisher(ctx, log, target, addr)
	if err != nil {
		return err
	}
	defer closePublisher()

	runLog := log.With(
		logger.NewField("target", target),
		logger.NewField("messages", len(messages)),
	)
	runLog.Info("sending events")

	res := replay.Replay(ctx, runLog, messages, publisher)
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d messages failed", res.Failed, len(messages))
	}
	return nil
}

func newPublisher(ctx context.Context, log logger.Logger, target, addr string) (replay.Publisher, func(), error) {
	switch target {
	case targetHTTP:
		client := &http.Client{Timeout: httpClientTimeout}
		return replay.NewHTTPPublisher(client, addr, backoff_adapter.New(replay.HTTPRetryConfig())), func() {}, nil

	case targetKafka:
		cfg, err := config.LoadProducer()
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}

		producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}
		closeProducer := func() {
			if err := producer.Close(); err != nil {
				log.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}
		return replay.NewKafkaPublisher(producer), closeProducer, nil

	default:
		return nil, nil, fmt.Errorf("%w %q, expected %s or %s", errUnknownTarget, target, targetHTTP, targetKafka)
	}
}
