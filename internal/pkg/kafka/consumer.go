package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/internal/pkg/config"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/retrier"
	"shipment-service/pkg/retrier/backoff_adapter"
)

const pingInitialInterval = 1 * time.Second

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := SplitBrokers(cfg.Brokers)
	topics := []string{cfg.Topic}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	err = Ping(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start запускает consumer (блокирующий вызов). Consume возвращается при
// каждом ребалансе, поэтому крутимся в цикле до отмены ctx.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// Ping ждет, пока брокеры начнут отдавать метаданные.
func Ping(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryConfig := retrier.ConnectDefaults(pingInitialInterval)
	retryConfig.Notify = func(err error, next time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		).Warn("kafka is not ready")
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("kafka connection failed after retries")
		return fmt.Errorf("failed to connect to kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("kafka connection established")
	return nil
}
