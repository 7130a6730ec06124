package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"settlement/internal/app"
	orderstatushandler "settlement/internal/handlers/kafka-consumer/order_status_changed"
	"settlement/internal/handlers/rest/healthcheck_head"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/dotenv"
	"settlement/internal/pkg/kafka"
	"settlement/internal/pkg/metrics"
	"settlement/internal/pkg/postgres"
	"settlement/pkg/logger"
	"settlement/pkg/logger/zap_adapter"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	appLogger.Info("starting order status worker")

	if err := run(context.Background(), appLogger, cfg); err != nil {
		appLogger.With(logger.NewField("error", err)).Error("status worker failed")
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx наследуются от context.Background() намеренно
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "status-worker"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	workerApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("settlement engine: %w", err)
	}

	metrics.StartSystemMetricsCollector(ctx)
	metrics.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool)

	// ongoingCtx переживает SIGTERM: in-flight события дообрабатываются до Close.
	ongoingCtx, stopOngoing := context.WithCancel(context.Background())
	defer stopOngoing()

	healthServer, healthErr := serveHealthcheck(ongoingCtx, runLog, cfg.Kafka.PortHealthcheck, initHealthcheckRouter(&isShuttingDown, pool))

	statusHandler := orderstatushandler.New(log, workerApp.OrderService, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)
	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, statusHandler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	consumerErr := consume(ongoingCtx, runLog.With(
		logger.NewField("brokers", kafka.Brokers(&cfg.Kafka)),
		logger.NewField("topic", cfg.Kafka.Topic),
		logger.NewField("group", cfg.Kafka.ConsumerGroup),
	), consumer)

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-healthErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	time.Sleep(readinessDrainDelay)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		runLog.Warn("healthcheck shutdown timed out, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// после отмены ongoingCtx сессия группы завершается, незакоммиченные retry-события перечитает следующий воркер
	stopOngoing()

	if err := consumer.Close(); err != nil {
		runLog.With(logger.NewField("error", err)).Error("failed to close kafka consumer")
	}

	runLog.Info("status worker stopped")
	return nil
}

func serveHealthcheck(baseCtx context.Context, log logger.Logger, port string, handler http.Handler) (*http.Server, <-chan error) {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return baseCtx
		},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		log.With(logger.NewField("port", port)).Info("healthcheck server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	return server, errs
}

func consume(ctx context.Context, log logger.Logger, consumer *kafka.Consumer) <-chan error {
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		log.Info("status consumer starting")

		err := consumer.Start(ctx)
		switch {
		case err == nil, errors.Is(err, context.Canceled), errors.Is(err, sarama.ErrClosedConsumerGroup):
			log.Info("status consumer stopped")
		default:
			errs <- err
		}
	}()
	return errs
}

// initHealthcheckRouter воркер без REST: проба и /metrics с исходами событий и ретраями транзакций.
func initHealthcheckRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}
