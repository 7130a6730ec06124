package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os/signal"
	"syscall"

	"settlement/internal/entities"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/dotenv"
	"settlement/internal/pkg/kafka"
	"settlement/pkg/logger"
	"settlement/pkg/logger/zap_adapter"
)

// Публикует смену статуса заказа в топик, который читает worker-order-status-changed.
// Пример: status-event-producer -order 42 -status delivered
func main() {
	orderID := flag.Int64("order", 0, "order id")
	status := flag.String("status", "", "new order status: "+
		"new, assigned, picked_up, delivered, returned, cancelled")

	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.LoadProducer()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	change, err := parseChange(*orderID, *status)
	if err != nil {
		stdlog.Fatalf("arguments: %v", err)
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

	producer, err := kafka.NewProducer(ctx, zapLogger, &cfg.Kafka)
	if err != nil {
		zapLogger.Error("kafka producer", logger.NewField("error", err))
		return
	}
	defer func() {
		if err := producer.Close(); err != nil {
			zapLogger.Error("close producer", logger.NewField("error", err))
		}
	}()

	if err := producer.PublishStatusChange(change); err != nil {
		zapLogger.Error("publish", logger.NewField("error", err))
	}
}

func parseChange(orderID int64, status string) (entities.OrderStatusChange, error) {
	if orderID <= 0 {
		return entities.OrderStatusChange{}, fmt.Errorf("order id must be positive, got %d", orderID)
	}
	s := entities.OrderStatusType(status)
	if !s.IsValid() {
		return entities.OrderStatusChange{}, fmt.Errorf("unknown status %q", status)
	}
	return entities.OrderStatusChange{OrderID: orderID, Status: s}, nil
}
