package statement

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"settlement/internal/entities"
	"settlement/internal/service/fee"
)

// Statement выпускает выписки. Наборы заказов всех выписок одной сущности попарно
// не пересекаются: проверка идёт под advisory lock сущности, а уникальный индекс
// (entity_type, order_id) страхует от гонки на уровне базы.
type Statement struct {
	repository      Repository
	orderRepository OrderRepository
	txManager       TxManager
}

func New(repository Repository, orderRepository OrderRepository, txManager TxManager) *Statement {
	return &Statement{
		repository:      repository,
		orderRepository: orderRepository,
		txManager:       txManager,
	}
}

func (s *Statement) Issue(ctx context.Context, issue entities.StatementIssue) (*entities.Statement, error) {
	if err := validateIssue(issue); err != nil {
		return nil, err
	}

	var issued *entities.Statement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.LockEntity(ctx, issue.EntityType, issue.EntityID)
		if err != nil {
			return fmt.Errorf("lock statement entity: %w", err)
		}

		claimed, err := s.repository.ClaimedOrderIDs(ctx, issue.EntityType, issue.OrderIDs)
		if err != nil {
			return fmt.Errorf("get claimed orders: %w", err)
		}
		if len(claimed) > 0 {
			return fmt.Errorf("%w: %v", ErrOrderAlreadyClaimed, claimed)
		}

		orders, err := s.orderRepository.GetByIDs(ctx, issue.OrderIDs)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}

		statement, err := buildStatement(issue, orders)
		if err != nil {
			return err
		}

		issued, err = s.repository.Create(ctx, statement)
		if err != nil {
			return fmt.Errorf("create statement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

func buildStatement(issue entities.StatementIssue, orders []entities.Order) (entities.Statement, error) {
	byID := make(map[int64]entities.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	period := issue.Period
	lines := make([]entities.StatementLine, 0, len(issue.OrderIDs))
	for _, id := range issue.OrderIDs {
		order, ok := byID[id]
		if !ok {
			return entities.Statement{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
		}
		if order.Status != entities.OrderDelivered {
			return entities.Statement{}, fmt.Errorf("%w: order %d is %s", ErrOrderNotDelivered, id, order.Status)
		}
		if !ownedBy(order, issue.EntityType, issue.EntityID) {
			return entities.Statement{}, fmt.Errorf("%w: order %d", ErrOrderNotOwned, id)
		}
		if !withinPeriod(issue.Period, order.DeliveredAt) {
			return entities.Statement{}, fmt.Errorf("%w: order %d delivered %s", ErrOrderOutsidePeriod, id, order.DeliveredAt.UTC().Format(time.DateOnly))
		}

		settlement, err := fee.Classify(order)
		if err != nil {
			return entities.Statement{}, fmt.Errorf("classify order %d: %w", id, err)
		}
		lines = append(lines, fee.Line(issue.EntityType, id, settlement))
		period = widen(period, issue.Period, order.DeliveredAt)
	}

	now := time.Now().UTC()
	statement := entities.Statement{
		Reference:  uuid.New(),
		EntityType: issue.EntityType,
		EntityID:   issue.EntityID,
		Period:     period,
		Lines:      lines,
		Totals:     fee.Totals(issue.EntityType, lines),
		Status:     entities.StatementUnpaid,
		CreatedAt:  now,
	}
	if issue.Paid {
		method := issue.PaymentMethod
		statement.Status = entities.StatementPaid
		statement.PaidAt = &now
		statement.PaymentMethod = &method
	}
	return statement, nil
}

// widen расширяет незаданные границы периода датами доставки заказов.
func widen(period, requested entities.Period, deliveredAt *time.Time) entities.Period {
	if deliveredAt == nil {
		return period
	}
	day := deliveredAt.UTC().Truncate(24 * time.Hour)
	if requested.From.IsZero() && (period.From.IsZero() || day.Before(period.From)) {
		period.From = day
	}
	if requested.To.IsZero() && (period.To.IsZero() || day.After(period.To)) {
		period.To = day
	}
	return period
}

// MarkPaid переводит выписку Unpaid -> Paid. Повторный вызов для оплаченной выписки
// ничего не меняет и не считается ошибкой.
func (s *Statement) MarkPaid(ctx context.Context, id int64, method string, notes *string) (*entities.Statement, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: statement id %d", entities.ErrValidation, id)
	}
	if isBlank(method) {
		return nil, ErrMissingPaymentMethod
	}

	var result *entities.Statement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get statement: %w", err)
		}
		if current.Status == entities.StatementPaid {
			result = current
			return nil
		}

		result, err = s.repository.MarkPaid(ctx, id, method, notes, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("mark statement paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Statement) Get(ctx context.Context, id int64) (*entities.Statement, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: statement id %d", entities.ErrValidation, id)
	}

	statement, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get statement: %w", err)
	}
	return statement, nil
}

// ClaimsOf выписки, в которых находится заказ (не больше одной на тип сущности).
func (s *Statement) ClaimsOf(ctx context.Context, orderID int64) ([]entities.StatementClaim, error) {
	claims, err := s.repository.ClaimsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get statement claims: %w", err)
	}
	return claims, nil
}

// Unclaim убирает заказ из выписки, чтобы его можно было провести заново.
// Опустевшая выписка остаётся, пересчитываются только итоги. Из оплаченной
// клиентской выписки заказ не убирается.
func (s *Statement) Unclaim(ctx context.Context, statementID, orderID int64) (*entities.Statement, error) {
	var result *entities.Statement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetForUpdate(ctx, statementID)
		if err != nil {
			return fmt.Errorf("get statement: %w", err)
		}
		if current.EntityType == entities.StatementClient && current.Status == entities.StatementPaid {
			return fmt.Errorf("%w: statement %d, order %d", ErrOrderInPaidStatement, statementID, orderID)
		}

		idx := slices.IndexFunc(current.Lines, func(line entities.StatementLine) bool {
			return line.OrderID == orderID
		})
		if idx < 0 {
			return fmt.Errorf("%w: statement %d, order %d", ErrOrderNotInStatement, statementID, orderID)
		}

		if err = s.repository.RemoveLine(ctx, statementID, orderID); err != nil {
			return fmt.Errorf("remove statement line: %w", err)
		}

		revisedAt := time.Now().UTC()
		lines := slices.Delete(slices.Clone(current.Lines), idx, idx+1)
		totals := fee.Totals(current.EntityType, lines)
		if err = s.repository.UpdateTotals(ctx, statementID, totals, revisedAt); err != nil {
			return fmt.Errorf("update statement totals: %w", err)
		}

		current.Lines = lines
		current.Totals = totals
		current.RevisedAt = &revisedAt
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
