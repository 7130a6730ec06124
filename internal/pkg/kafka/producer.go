package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"settlement/internal/entities"
	"settlement/internal/pkg/config"
	"settlement/pkg/logger"
)

// StatusChangedEvent формат сообщения о смене статуса заказа.
type StatusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

// NewProducer дожидается брокеров так же, как consumer, и поднимает синхронного продюсера.
func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := Brokers(cfg)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerWith(kafkaLog, producer, cfg.Topic), nil
}

func NewProducerWith(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChange ключ сообщения = id заказа, события одного заказа попадают в одну партицию.
func (p *Producer) PublishStatusChange(change entities.OrderStatusChange) error {
	payload, err := json.Marshal(StatusChangedEvent{
		OrderID: change.OrderID,
		Status:  change.Status.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(change.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	p.log.With(
		logger.NewField("order_id", change.OrderID),
		logger.NewField("status", change.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("status change published")

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
