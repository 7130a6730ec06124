// Package integration_test общий стенд для интеграционных тестов репозиториев
// (запускаются с тегом integration).
//
// База берётся из POSTGRES_* (так делает Makefile), а если POSTGRES_HOST не задан,
// поднимается одноразовый контейнер postgres через testcontainers. Миграции
// накатываются один раз на процесс.
package integration_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/postgres"
	"settlement/migrations"
	"settlement/pkg/logger/zap_adapter"
	"settlement/pkg/querier"
)

const (
	containerImage = "postgres:16-alpine"
	containerDB    = "settlement"
	containerUser  = "settlement"
	containerPass  = "settlement"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

func setup() {
	ctx := context.Background()

	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	if cfg.Host == "" {
		var err error
		cfg, err = startContainer(ctx)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}
	}

	connPool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err = migrations.Up(ctx, connPool); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	poolInstance = connPool
	querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
}

// контейнер живёт до конца процесса go test, ryuk его прибирает
func startContainer(ctx context.Context) (*config.Database, error) {
	container, err := tcpostgres.Run(ctx,
		containerImage,
		tcpostgres.WithDatabase(containerDB),
		tcpostgres.WithUsername(containerUser),
		tcpostgres.WithPassword(containerPass),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		return nil, fmt.Errorf("run container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     containerUser,
		Password: containerPass,
		DBName:   containerDB,
		SSLMode:  "disable",
	}, nil
}

func GetQuerier() *querier.Querier {
	suiteOnce.Do(setup)
	return querierInstance
}

// GetPool нужен тестам, которые гоняют сервисы поверх tx.Manager.
func GetPool() *pgxpool.Pool {
	suiteOnce.Do(setup)
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE settlement_postings, statement_orders, statements, cashbox_days,
			driver_wallets, ledger_entries, orders RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
