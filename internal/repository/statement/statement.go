package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"settlement/internal/entities"
	"settlement/internal/repository"
	"settlement/internal/service/statement"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	statementColumns = `id, reference, entity_type, entity_id, period_from, period_to, status,
		collected_usd, collected_lbp, due_usd, due_lbp, fees_usd, fees_lbp,
		refunds_usd, refunds_lbp, net_usd, net_lbp,
		paid_at, payment_method, notes, created_at, revised_at`
	lineColumns = `order_id, class, collected_usd, collected_lbp, due_usd, due_lbp, fee_usd, fee_lbp, refund_usd, refund_lbp`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// LockEntity сериализует выпуск выписок одной сущности до конца транзакции.
func (r *Repository) LockEntity(ctx context.Context, entityType entities.StatementEntityType, entityID int64) error {
	key := fmt.Sprintf("statement:%s:%d", entityType, entityID)
	if _, err := r.querier.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("%w: statement repository lock: %w", entities.ErrPersistence, err)
	}
	return nil
}

// ClaimedOrderIDs какие из заказов уже включены в выписку этого типа сущности.
func (r *Repository) ClaimedOrderIDs(ctx context.Context, entityType entities.StatementEntityType, orderIDs []int64) ([]int64, error) {
	query, args, err := qb.
		Select("order_id").
		From("statement_orders").
		Where(sq.Eq{"entity_type": string(entityType), "order_id": orderIDs}).
		OrderBy("order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected statement repository claimed error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: statement repository claimed: %w", entities.ErrPersistence, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("%w: statement repository claimed: %w", entities.ErrPersistence, err)
	}
	return ids, nil
}

// Create сохраняет выписку и её строки. Строки уходят одним батчем.
func (r *Repository) Create(ctx context.Context, st entities.Statement) (*entities.Statement, error) {
	query := `INSERT INTO statements (reference, entity_type, entity_id, period_from, period_to, status,
			collected_usd, collected_lbp, due_usd, due_lbp, fees_usd, fees_lbp,
			refunds_usd, refunds_lbp, net_usd, net_lbp,
			paid_at, payment_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`

	args := []any{st.Reference, string(st.EntityType), st.EntityID, st.Period.From, st.Period.To, string(st.Status)}
	args = append(args, totalsArgs(st.Totals)...)
	args = append(args, st.PaidAt, st.PaymentMethod, st.Notes, st.CreatedAt)

	if err := r.querier.QueryRow(ctx, query, args...).Scan(&st.ID); err != nil {
		return nil, fmt.Errorf("%w: statement repository create: %w", entities.ErrPersistence, err)
	}

	batch := &pgx.Batch{}
	for _, line := range st.Lines {
		batch.Queue(`INSERT INTO statement_orders (statement_id, entity_type, `+lineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			st.ID, string(st.EntityType), line.OrderID, line.Class.String(),
			line.Collected.USD, line.Collected.LBP,
			line.Due.USD, line.Due.LBP,
			line.Fee.USD, line.Fee.LBP,
			line.Refund.USD, line.Refund.LBP,
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	for range st.Lines {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return nil, statement.ErrOrderAlreadyClaimed
			}
			return nil, fmt.Errorf("%w: statement repository create lines: %w", entities.ErrPersistence, err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("%w: statement repository create lines: %w", entities.ErrPersistence, err)
	}

	return &st, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Statement, error) {
	return r.get(ctx, `SELECT `+statementColumns+` FROM statements WHERE id = $1`, id)
}

// GetForUpdate блокирует строку выписки до конца транзакции.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Statement, error) {
	return r.get(ctx, `SELECT `+statementColumns+` FROM statements WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*entities.Statement, error) {
	var statementDB StatementDB
	err := r.querier.QueryRow(ctx, query, id).Scan(statementDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", statement.ErrStatementNotFound, id)
		}
		return nil, fmt.Errorf("%w: statement repository get: %w", entities.ErrPersistence, err)
	}

	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDomain(&statementDB, lines), nil
}

func (r *Repository) lines(ctx context.Context, statementID int64) ([]LineDB, error) {
	rows, err := r.querier.Query(ctx, `SELECT `+lineColumns+` FROM statement_orders WHERE statement_id = $1 ORDER BY order_id`, statementID)
	if err != nil {
		return nil, fmt.Errorf("%w: statement repository lines: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	lines := make([]LineDB, 0, 8)
	for rows.Next() {
		var line LineDB
		if err = rows.Scan(line.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: statement repository lines: %w", entities.ErrPersistence, err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: statement repository lines: %w", entities.ErrPersistence, err)
	}
	return lines, nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int64, method string, notes *string, paidAt time.Time) (*entities.Statement, error) {
	query := `UPDATE statements
		SET status = $2, payment_method = $3, notes = COALESCE($4, notes), paid_at = $5
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, string(entities.StatementPaid), method, notes, paidAt)
	if err != nil {
		return nil, fmt.Errorf("%w: statement repository mark paid: %w", entities.ErrPersistence, err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: %d", statement.ErrStatementNotFound, id)
	}
	return r.GetByID(ctx, id)
}

// ClaimsByOrder выписки, в которые включён заказ.
func (r *Repository) ClaimsByOrder(ctx context.Context, orderID int64) ([]entities.StatementClaim, error) {
	query := `SELECT so.statement_id, s.entity_type, s.status
		FROM statement_orders so
		JOIN statements s ON s.id = so.statement_id
		WHERE so.order_id = $1
		ORDER BY so.statement_id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: statement repository claims: %w", entities.ErrPersistence, err)
	}
	defer rows.Close()

	claims := make([]entities.StatementClaim, 0, 2)
	for rows.Next() {
		var (
			claim      entities.StatementClaim
			entityType string
			status     string
		)
		if err = rows.Scan(&claim.StatementID, &entityType, &status); err != nil {
			return nil, fmt.Errorf("%w: statement repository claims: %w", entities.ErrPersistence, err)
		}
		claim.EntityType = entities.StatementEntityType(entityType)
		claim.Status = entities.StatementStatus(status)
		claims = append(claims, claim)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: statement repository claims: %w", entities.ErrPersistence, err)
	}
	return claims, nil
}

func (r *Repository) RemoveLine(ctx context.Context, statementID, orderID int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM statement_orders WHERE statement_id = $1 AND order_id = $2`, statementID, orderID)
	if err != nil {
		return fmt.Errorf("%w: statement repository remove line: %w", entities.ErrPersistence, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: statement %d, order %d", statement.ErrOrderNotInStatement, statementID, orderID)
	}
	return nil
}

func (r *Repository) UpdateTotals(ctx context.Context, statementID int64, totals entities.StatementTotals, revisedAt time.Time) error {
	query := `UPDATE statements
		SET collected_usd = $2, collected_lbp = $3, due_usd = $4, due_lbp = $5,
			fees_usd = $6, fees_lbp = $7, refunds_usd = $8, refunds_lbp = $9,
			net_usd = $10, net_lbp = $11, revised_at = $12
		WHERE id = $1`

	args := append([]any{statementID}, totalsArgs(totals)...)
	args = append(args, revisedAt)
	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: statement repository update totals: %w", entities.ErrPersistence, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", statement.ErrStatementNotFound, statementID)
	}
	return nil
}
