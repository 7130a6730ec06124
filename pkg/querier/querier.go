package querier

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier выполняет запросы в транзакции из контекста (если tx.Manager её открыл),
// иначе напрямую через пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.executor(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.executor(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

// SendBatch отправляет пачку запросов одним round trip, в той же транзакции что и остальные вызовы.
func (q *Querier) SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults {
	return q.executor(ctx).SendBatch(ctx, batch)
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}
