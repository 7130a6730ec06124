package statement

import (
	"fmt"
	"strings"
	"time"

	"settlement/internal/entities"
)

func validateIssue(issue entities.StatementIssue) error {
	if !issue.EntityType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntityType, issue.EntityType)
	}
	if issue.EntityID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEntityID, issue.EntityID)
	}
	if issue.EntityType == entities.StatementDriver && !issue.Paid {
		return ErrDriverStatementUnpaid
	}
	if issue.Paid && isBlank(issue.PaymentMethod) {
		return ErrMissingPaymentMethod
	}
	if !issue.Period.From.IsZero() && !issue.Period.To.IsZero() && issue.Period.From.After(issue.Period.To) {
		return ErrInvalidPeriod
	}
	return validateOrderIDs(issue.OrderIDs)
}

func validateOrderIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrEmptyOrderSet
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: order id %d", entities.ErrValidation, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateOrder, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func ownedBy(order entities.Order, entityType entities.StatementEntityType, entityID int64) bool {
	if entityType == entities.StatementClient {
		return order.ClientID == entityID
	}
	return order.DriverID != nil && *order.DriverID == entityID
}

// withinPeriod день доставки внутри заданных границ периода. Незаданная граница не ограничивает.
func withinPeriod(period entities.Period, deliveredAt *time.Time) bool {
	if deliveredAt == nil {
		return true
	}
	day := deliveredAt.UTC().Truncate(24 * time.Hour)
	if !period.From.IsZero() && day.Before(period.From.UTC().Truncate(24*time.Hour)) {
		return false
	}
	if !period.To.IsZero() && day.After(period.To.UTC().Truncate(24*time.Hour)) {
		return false
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
