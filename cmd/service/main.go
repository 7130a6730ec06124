package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "settlement/internal/app"
	"settlement/internal/handlers/rest/accounting_record_post"
	"settlement/internal/handlers/rest/balance_get"
	"settlement/internal/handlers/rest/cashbox_get"
	"settlement/internal/handlers/rest/driver_collection_post"
	"settlement/internal/handlers/rest/healthcheck_head"
	"settlement/internal/handlers/rest/ledger_correction_post"
	"settlement/internal/handlers/rest/order_delete"
	"settlement/internal/handlers/rest/order_due_get"
	"settlement/internal/handlers/rest/order_get"
	"settlement/internal/handlers/rest/order_post"
	"settlement/internal/handlers/rest/order_put"
	"settlement/internal/handlers/rest/order_reversal_post"
	"settlement/internal/handlers/rest/ping_get"
	"settlement/internal/handlers/rest/statement_get"
	"settlement/internal/handlers/rest/statement_pay_post"
	"settlement/internal/handlers/rest/statement_post"
	"settlement/internal/handlers/rest/third_party_payout_post"
	"settlement/internal/handlers/rest/third_party_remittance_post"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/dotenv"
	metrics_system "settlement/internal/pkg/metrics"
	"settlement/internal/pkg/middlewares/graceful_shutdown"
	"settlement/internal/pkg/middlewares/metrics"
	"settlement/internal/pkg/middlewares/rate_limiter"
	"settlement/internal/pkg/middlewares/timeout"
	"settlement/internal/pkg/postgres"
	"settlement/pkg/logger"
	"settlement/pkg/logger/zap_adapter"
	"settlement/pkg/token_bucket"
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
	mainLog := appLogger.With()

	mainLog.Info("starting settlement application",
		logger.NewField("timezone", cfg.Business.Timezone),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)
	metrics_system.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout, cfg.WriteTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, app.BusinessDay)).Methods("GET")

	router.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")
	router.Handle("/orders/{id}/due", order_due_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}/reversal", order_reversal_post.New(log, app.ServiceReversal)).Methods("POST")

	router.Handle("/drivers/{id}/collections", driver_collection_post.New(log, app.ServiceRemittance)).Methods("POST")
	router.Handle("/third-parties/{id}/remittances", third_party_remittance_post.New(log, app.ServiceRemittance)).Methods("POST")
	router.Handle("/third-parties/{id}/payouts", third_party_payout_post.New(log, app.ServiceRemittance)).Methods("POST")

	router.Handle("/statements", statement_post.New(log, app.ServiceStatement)).Methods("POST")
	router.Handle("/statements/{id}", statement_get.New(log, app.ServiceStatement)).Methods("GET")
	router.Handle("/statements/{id}/pay", statement_pay_post.New(log, app.ServiceStatement)).Methods("POST")

	router.Handle("/balances/{party}/{id}", balance_get.New(log, app.ServiceLedger)).Methods("GET")
	router.Handle("/ledger/corrections", ledger_correction_post.New(log, app.ServiceLedger)).Methods("POST")
	router.Handle("/ledger/accounting", accounting_record_post.New(log, app.ServiceLedger)).Methods("POST")

	router.Handle("/cashbox/{date}", cashbox_get.New(log, app.ServiceCashbox)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
