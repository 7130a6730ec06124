package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "type", "status",
	"amount_usd", "amount_lbp", "fee_usd", "fee_lbp",
	"fee_payer", "fee_client_share_usd", "fee_client_share_lbp",
	"driver_advanced_for_client", "company_prepaid",
	"driver_remit_status", "third_party_remit_status",
	"driver_id", "client_id", "third_party_id",
	"third_party_fee_usd", "third_party_fee_lbp",
	"delivered_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(orderColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, newOrder entities.Order) (*entities.Order, error) {
	query, args, err := qb.
		Insert("orders").
		SetMap(map[string]any{
			"type":                       newOrder.Type.String(),
			"status":                     newOrder.Status.String(),
			"amount_usd":                 newOrder.Amount.USD,
			"amount_lbp":                 newOrder.Amount.LBP,
			"fee_usd":                    newOrder.Fee.USD,
			"fee_lbp":                    newOrder.Fee.LBP,
			"fee_payer":                  newOrder.FeePayer.Rule.String(),
			"fee_client_share_usd":       newOrder.FeePayer.ClientShare.USD,
			"fee_client_share_lbp":       newOrder.FeePayer.ClientShare.LBP,
			"driver_advanced_for_client": newOrder.DriverAdvancedForClient,
			"company_prepaid":            newOrder.CompanyPrepaid,
			"driver_remit_status":        string(newOrder.DriverRemitStatus),
			"third_party_remit_status":   string(newOrder.ThirdPartyRemitStatus),
			"driver_id":                  newOrder.DriverID,
			"client_id":                  newOrder.ClientID,
			"third_party_id":             newOrder.ThirdPartyID,
			"third_party_fee_usd":        newOrder.ThirdPartyFee.USD,
			"third_party_fee_lbp":        newOrder.ThirdPartyFee.LBP,
		}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	var orderDB OrderDB
	if err = r.querier.QueryRow(ctx, query, args...).Scan(orderDB.scanTargets()...); err != nil {
		return nil, fmt.Errorf("%w: order repository create: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getOne(ctx, qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}), id)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getOne(ctx, qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder, id int64) (*entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, entities.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: order repository get: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&orderDB), nil
}

// GetByIDs заказы в порядке id. Отсутствующие id просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": ids}).OrderBy("id"))
}

// GetByIDsForUpdate блокирует строки в порядке id, чтобы параллельные сборы не ловили дедлок.
func (r *Repository) GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": ids}).OrderBy("id").Suffix("FOR UPDATE"))
}

// ListPendingThirdParty доставленные заказы третьей стороны, перевод по которым ещё не получен.
func (r *Repository) ListPendingThirdParty(ctx context.Context, thirdPartyID int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{
			"third_party_id":           thirdPartyID,
			"status":                   entities.OrderDelivered.String(),
			"third_party_remit_status": string(entities.ThirdPartyRemitPending),
		}).
		OrderBy("id"))
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: order repository list: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		if err = rows.Scan(orderDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: order repository list: %w", entities.ErrPersistence, err)
		}
		orderModels = append(orderModels, orderDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: order repository list: %w", entities.ErrPersistence, err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, fmt.Errorf("%w: order id is required", entities.ErrValidation)
	}

	builder := qb.
		Update("orders").
		SetMap(modifyColumns(orderModify)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *orderModify.ID}).
		Suffix(returning)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", *orderModify.ID, entities.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: order repository update: %w", entities.ErrPersistence, err)
	}
	return ToDomain(&orderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: order repository delete: %w", entities.ErrPersistence, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, entities.ErrNotFound)
	}
	return nil
}
