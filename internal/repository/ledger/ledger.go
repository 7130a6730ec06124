package ledger

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"settlement/internal/entities"
	"settlement/internal/service/ledger"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = `id, kind, party_id, category, direction, amount_usd, amount_lbp, order_id, memo, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) InsertEntry(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error) {
	entryDB := FromDomain(&entry)
	query := `INSERT INTO ledger_entries (kind, party_id, category, direction, amount_usd, amount_lbp, order_id, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + entryColumns

	var inserted EntryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entryDB.Kind,
		entryDB.PartyID,
		entryDB.Category,
		entryDB.Direction,
		entryDB.AmountUSD,
		entryDB.AmountLBP,
		entryDB.OrderID,
		entryDB.Memo,
	).Scan(inserted.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger repository insert: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&inserted), nil
}

// DeleteEntry удаляет запись и возвращает её, чтобы откатить кошелёк ровно на её сумму.
func (r *Repository) DeleteEntry(ctx context.Context, id int64) (*entities.LedgerEntry, error) {
	query := `DELETE FROM ledger_entries WHERE id = $1 RETURNING ` + entryColumns

	var deleted EntryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(deleted.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ledger.ErrEntryNotFound, id)
		}
		return nil, fmt.Errorf("%w: ledger repository delete: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&deleted), nil
}

// AdjustWallet сдвигает кэш кошелька на delta одним upsert и возвращает новый баланс.
func (r *Repository) AdjustWallet(ctx context.Context, driverID int64, delta entities.Money) (entities.Money, error) {
	query := `INSERT INTO driver_wallets (driver_id, balance_usd, balance_lbp)
		VALUES ($1, $2, $3)
		ON CONFLICT (driver_id) DO UPDATE
		SET balance_usd = driver_wallets.balance_usd + EXCLUDED.balance_usd,
			balance_lbp = driver_wallets.balance_lbp + EXCLUDED.balance_lbp,
			updated_at = NOW()
		RETURNING balance_usd, balance_lbp`

	var (
		usd decimal.Decimal
		lbp int64
	)
	err := r.querier.QueryRow(ctx, query, driverID, delta.USD, delta.LBP).Scan(&usd, &lbp)
	if err != nil {
		return entities.Money{}, fmt.Errorf("%w: ledger repository adjust wallet: %w", entities.ErrPersistence, err)
	}
	return entities.NewMoney(usd, lbp), nil
}

// GetWallet баланс водителя. Водитель без записей имеет нулевой кошелёк.
func (r *Repository) GetWallet(ctx context.Context, driverID int64) (entities.Money, error) {
	query := `SELECT balance_usd, balance_lbp FROM driver_wallets WHERE driver_id = $1`

	var (
		usd decimal.Decimal
		lbp int64
	)
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&usd, &lbp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Money{}, nil
		}
		return entities.Money{}, fmt.Errorf("%w: ledger repository get wallet: %w", entities.ErrPersistence, err)
	}
	return entities.NewMoney(usd, lbp), nil
}

// SumByDirection суммы записей контрагента по направлениям.
func (r *Repository) SumByDirection(ctx context.Context, party entities.Party) (map[entities.Direction]entities.Money, error) {
	return r.sumByDirection(ctx, partyFilter(party))
}

// SumUnlinkedByDirection то же, но только записи без заказа: выплаты и ручные корректировки.
func (r *Repository) SumUnlinkedByDirection(ctx context.Context, party entities.Party) (map[entities.Direction]entities.Money, error) {
	return r.sumByDirection(ctx, sq.And{partyFilter(party), sq.Eq{"order_id": nil}})
}

func partyFilter(party entities.Party) sq.Eq {
	return sq.Eq{
		"kind":     entities.EntryKindOf(party.Kind).String(),
		"party_id": party.ID,
	}
}

func (r *Repository) sumByDirection(ctx context.Context, filter sq.Sqlizer) (map[entities.Direction]entities.Money, error) {
	query, args, err := qb.
		Select("direction", "COALESCE(SUM(amount_usd), 0)", "COALESCE(SUM(amount_lbp), 0)").
		From("ledger_entries").
		Where(filter).
		GroupBy("direction").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository sum error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger repository sum: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	sums := make(map[entities.Direction]entities.Money, 2)
	for rows.Next() {
		var (
			direction string
			usd       decimal.Decimal
			lbp       int64
		)
		if err = rows.Scan(&direction, &usd, &lbp); err != nil {
			return nil, fmt.Errorf("%w: ledger repository sum: %w", entities.ErrPersistence, err)
		}
		sums[entities.Direction(direction)] = entities.NewMoney(usd, lbp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ledger repository sum: %w", entities.ErrPersistence, err)
	}
	return sums, nil
}

// ListWalletDrifts водители, у которых кэш кошелька разошёлся с суммой их записей.
func (r *Repository) ListWalletDrifts(ctx context.Context) ([]entities.WalletDrift, error) {
	query := `
	WITH sums AS (
		SELECT party_id AS driver_id,
			SUM(CASE WHEN direction = 'credit' THEN amount_usd ELSE -amount_usd END) AS usd,
			SUM(CASE WHEN direction = 'credit' THEN amount_lbp ELSE -amount_lbp END) AS lbp
		FROM ledger_entries
		WHERE kind = 'driver'
		GROUP BY party_id
	)
	SELECT COALESCE(w.driver_id, s.driver_id),
		COALESCE(w.balance_usd, 0), COALESCE(w.balance_lbp, 0),
		COALESCE(s.usd, 0), COALESCE(s.lbp, 0)
	FROM driver_wallets w
	FULL OUTER JOIN sums s ON s.driver_id = w.driver_id
	WHERE COALESCE(w.balance_usd, 0) <> COALESCE(s.usd, 0)
		OR COALESCE(w.balance_lbp, 0) <> COALESCE(s.lbp, 0)
	ORDER BY 1`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger repository wallet drifts: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	drifts := make([]entities.WalletDrift, 0)
	for rows.Next() {
		var (
			driverID             int64
			walletUSD, ledgerUSD decimal.Decimal
			walletLBP, ledgerLBP int64
		)
		if err = rows.Scan(&driverID, &walletUSD, &walletLBP, &ledgerUSD, &ledgerLBP); err != nil {
			return nil, fmt.Errorf("%w: ledger repository wallet drifts: %w", entities.ErrPersistence, err)
		}
		drifts = append(drifts, entities.WalletDrift{
			DriverID: driverID,
			Wallet:   entities.NewMoney(walletUSD, walletLBP),
			Ledger:   entities.NewMoney(ledgerUSD, ledgerLBP),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ledger repository wallet drifts: %w", entities.ErrPersistence, err)
	}
	return drifts, nil
}
