package posting

import (
	"context"
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/repository"
)

const postingColumns = `order_id, kind, class, driver_id, wallet_usd, wallet_lbp, cashbox_day,
	cash_in_usd, cash_in_lbp, cash_out_usd, cash_out_lbp, entry_ids, statement_id, created_at`

// Repository след проводок по заказу. Откат читает только его и не пересчитывает суммы.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, p entities.Posting) error {
	postingDB := FromDomain(&p)
	query := `INSERT INTO settlement_postings (` + postingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11, $12, $13, COALESCE($14, NOW()))`

	var createdAt any
	if !postingDB.CreatedAt.IsZero() {
		createdAt = postingDB.CreatedAt
	}

	_, err := r.querier.Exec(
		ctx,
		query,
		postingDB.OrderID,
		postingDB.Kind,
		postingDB.Class,
		postingDB.DriverID,
		postingDB.WalletUSD,
		postingDB.WalletLBP,
		postingDB.CashboxDay,
		postingDB.CashInUSD,
		postingDB.CashInLBP,
		postingDB.CashOutUSD,
		postingDB.CashOutLBP,
		postingDB.EntryIDs,
		postingDB.StatementID,
		createdAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("%w: %s posting for order %d already exists", entities.ErrConflict, p.Kind, p.OrderID)
		}
		return fmt.Errorf("%w: posting repository create: %w", entities.ErrPersistence, err)
	}
	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]entities.Posting, error) {
	rows, err := r.querier.Query(ctx, `SELECT `+postingColumns+` FROM settlement_postings WHERE order_id = $1 ORDER BY created_at, kind`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: posting repository list: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	postings := make([]entities.Posting, 0, 2)
	for rows.Next() {
		var postingDB PostingDB
		if err = rows.Scan(postingDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: posting repository list: %w", entities.ErrPersistence, err)
		}
		postings = append(postings, *ToDomain(&postingDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: posting repository list: %w", entities.ErrPersistence, err)
	}
	return postings, nil
}

func (r *Repository) Delete(ctx context.Context, orderID int64, kind entities.PostingKind) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM settlement_postings WHERE order_id = $1 AND kind = $2`, orderID, string(kind))
	if err != nil {
		return fmt.Errorf("%w: posting repository delete: %w", entities.ErrPersistence, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s posting for order %d: %w", kind, orderID, entities.ErrNotFound)
	}
	return nil
}
