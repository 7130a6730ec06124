package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"settlement/internal/pkg/config"
	"settlement/pkg/logger"
	"settlement/pkg/retrier"
	"settlement/pkg/retrier/backoff_adapter"
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}

	return cfg, nil
}

// Brokers разбирает KAFKA_BROKERS вида "host1:9092,host2:9092".
func Brokers(cfg *config.Kafka) []string {
	var brokers []string
	for _, b := range strings.Split(cfg.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewConsumer собирает consumer group на топик из конфига и дожидается доступности брокеров.
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

	brokers := Brokers(cfg)
	topics := []string{cfg.Topic}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
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

// Start блокирует до отмены ctx. Consume возвращается на каждом ребалансе, поэтому крутим в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
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

// pingKafka ждёт, пока брокер отдаст метаданные. Продюсер и consumer стартуют
// вместе с kafka в compose, брокер поднимается дольше базы.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryCfg := retrier.Broker()
	retryCfg.OnRetry = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", wait.String()),
		).Warn("kafka is not ready")
	}

	err := backoff_adapter.New(retryCfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.With(logger.NewField("error", err)).Error("failed to close kafka connection")
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("kafka connection failed after retries")
		return fmt.Errorf("failed to connect to kafka: %w", err)
	}

	log.Info("kafka connection established")
	return nil
}
