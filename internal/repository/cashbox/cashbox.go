package cashbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
	"settlement/internal/repository"
	"settlement/internal/service/cashbox"
)

const dayColumns = `day, opening_usd, opening_lbp, cash_in_usd, cash_in_lbp, cash_out_usd, cash_out_lbp, closing_usd, closing_lbp`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Increment прибавляет приход и расход к дню. Новый день открывается остатком
// последнего предыдущего дня. Уход прихода или расхода в минус ловит CHECK таблицы.
func (r *Repository) Increment(ctx context.Context, day time.Time, cashIn, cashOut entities.Money) (*entities.CashboxDay, error) {
	query := `INSERT INTO cashbox_days (day, opening_usd, opening_lbp, cash_in_usd, cash_in_lbp, cash_out_usd, cash_out_lbp)
		SELECT $1::date,
			COALESCE(prev.closing_usd, 0), COALESCE(prev.closing_lbp, 0),
			$2, $3, $4, $5
		FROM (SELECT 1) AS one
		LEFT JOIN LATERAL (
			SELECT closing_usd, closing_lbp FROM cashbox_days WHERE day < $1::date ORDER BY day DESC LIMIT 1
		) AS prev ON TRUE
		ON CONFLICT (day) DO UPDATE
		SET cash_in_usd = cashbox_days.cash_in_usd + EXCLUDED.cash_in_usd,
			cash_in_lbp = cashbox_days.cash_in_lbp + EXCLUDED.cash_in_lbp,
			cash_out_usd = cashbox_days.cash_out_usd + EXCLUDED.cash_out_usd,
			cash_out_lbp = cashbox_days.cash_out_lbp + EXCLUDED.cash_out_lbp
		RETURNING ` + dayColumns

	var dayDB DayDB
	err := r.querier.QueryRow(ctx, query, day, cashIn.USD, cashIn.LBP, cashOut.USD, cashOut.LBP).Scan(dayDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %s", cashbox.ErrNegativeCashFlow, day.Format(time.DateOnly))
		}
		return nil, fmt.Errorf("%w: cashbox repository increment: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&dayDB), nil
}

// ShiftOpenings сдвигает opening всех дней после after на delta.
func (r *Repository) ShiftOpenings(ctx context.Context, after time.Time, delta entities.Money) (int64, error) {
	query := `UPDATE cashbox_days
		SET opening_usd = opening_usd + $2, opening_lbp = opening_lbp + $3
		WHERE day > $1::date`

	result, err := r.querier.Exec(ctx, query, after, delta.USD, delta.LBP)
	if err != nil {
		return 0, fmt.Errorf("%w: cashbox repository shift openings: %w", entities.ErrPersistence, err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) GetDay(ctx context.Context, day time.Time) (*entities.CashboxDay, error) {
	query := `SELECT ` + dayColumns + ` FROM cashbox_days WHERE day = $1::date`
	return r.getOne(ctx, query, day)
}

// LatestBefore последний день с движениями раньше day.
func (r *Repository) LatestBefore(ctx context.Context, day time.Time) (*entities.CashboxDay, error) {
	query := `SELECT ` + dayColumns + ` FROM cashbox_days WHERE day < $1::date ORDER BY day DESC LIMIT 1`
	return r.getOne(ctx, query, day)
}

func (r *Repository) getOne(ctx context.Context, query string, day time.Time) (*entities.CashboxDay, error) {
	var dayDB DayDB
	err := r.querier.QueryRow(ctx, query, day).Scan(dayDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cashbox.ErrDayNotFound
		}
		return nil, fmt.Errorf("%w: cashbox repository get: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&dayDB), nil
}
