// Package migrations схема базы, встроенная в бинарник. Применяется cmd/migrate и
// интеграционными тестами репозиториев.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up накатывает все миграции на базу пула.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return run(ctx, db, func(provider *goose.Provider) error {
		_, err := provider.Up(ctx)
		return err
	})
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return run(ctx, db, func(provider *goose.Provider) error {
		_, err := provider.Down(ctx)
		return err
	})
}

func run(_ context.Context, db *sql.DB, fn func(provider *goose.Provider) error) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if err = fn(provider); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	return nil
}
