//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statement_test
package statement

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type Repository interface {
	LockEntity(ctx context.Context, entityType entities.StatementEntityType, entityID int64) error
	ClaimedOrderIDs(ctx context.Context, entityType entities.StatementEntityType, orderIDs []int64) ([]int64, error)

	Create(ctx context.Context, statement entities.Statement) (*entities.Statement, error)
	GetByID(ctx context.Context, id int64) (*entities.Statement, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Statement, error)
	MarkPaid(ctx context.Context, id int64, method string, notes *string, paidAt time.Time) (*entities.Statement, error)

	ClaimsByOrder(ctx context.Context, orderID int64) ([]entities.StatementClaim, error)
	RemoveLine(ctx context.Context, statementID, orderID int64) error
	UpdateTotals(ctx context.Context, statementID int64, totals entities.StatementTotals, revisedAt time.Time) error
}

type OrderRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
