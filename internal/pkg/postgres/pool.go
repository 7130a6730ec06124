package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"settlement/internal/pkg/config"
	"settlement/pkg/logger"
	"settlement/pkg/retrier"
	"settlement/pkg/retrier/backoff_adapter"
)

const (
	maxConns        = 10
	minConns        = 2
	maxConnLifetime = time.Hour
	applicationName = "settlement"
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MinConns = minConns

	// кассовые дни лежат в DATE и пишутся как полночь UTC, сессия не должна их сдвигать
	poolCfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	err = pingDatabase(ctx, dbLog, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDsn пароль экранируется, в нём бывают @ и /.
func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	cfg := retrier.Ping()
	// все ошибки ретраим
	cfg.OnRetry = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", wait.String()),
		).Warn("database is not ready")
	}

	err := backoff_adapter.New(cfg).ExecuteWithContext(ctx, pool.Ping)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return nil
}
