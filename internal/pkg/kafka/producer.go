package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"shipment-service/internal/pkg/config"
	"shipment-service/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := SplitBrokers(cfg.Brokers)

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = Ping(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerFromSync(kafkaLog, producer, cfg.Topic), nil
}

func NewProducerFromSync(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Send публикует сообщение с ключом key, одинаковый ключ попадает в одну партицию.
func (p *Producer) Send(_ context.Context, key string, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send message %q: %w", key, err)
	}

	p.log.With(
		logger.NewField("key", key),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("message published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
