package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	retrierconfig "settlement/pkg/retrier"
	"settlement/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

const (
	initialInterval = 20 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2
	maxRetries      = 8
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Manager инкапсулирует логику управления транзакциями.
//
// Все проводки выполняются на уровне Serializable. Если postgres откатил транзакцию
// из-за конфликта сериализации или дедлока, вся функция fn выполняется заново целиком,
// поэтому fn не должна иметь побочных эффектов вне базы.
type Manager struct {
	internal *manager.Manager
	retrier  retrier
}

type Option func(*retrierconfig.Config)

// WithRetryObserver fn вызывается на каждый повтор транзакции (для метрик).
func WithRetryObserver(fn func(err error)) Option {
	return func(cfg *retrierconfig.Config) {
		cfg.OnRetry = func(err error, _ time.Duration) {
			fn(err)
		}
	}
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	cfg := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     IsRetryable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  backoff_adapter.New(cfg),
	}
}

// Do выполняет fn в serializable транзакции. Вложенный Do (из сервиса, вызванного внутри
// другого Do) присоединяется к внешней транзакции и не ретраится отдельно.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if pgxv5.DefaultCtxGetter.DefaultTrOrDB(ctx, nil) != nil {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// RetryReason код SQLSTATE повторяемой ошибки, пустая строка для остальных.
func RetryReason(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

// IsRetryable true для ошибок, после которых транзакцию безопасно повторить с начала.
func IsRetryable(err error) bool {
	code := RetryReason(err)
	return code == pgErrSerializationFailure || code == pgErrDeadlockDetected
}
