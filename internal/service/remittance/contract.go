//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=remittance_test
package remittance

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type OrderRepository interface {
	GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type PostingRepository interface {
	Create(ctx context.Context, posting entities.Posting) error
}

type LedgerService interface {
	Post(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error)
}

type CashboxService interface {
	ApplyDelta(ctx context.Context, day time.Time, cashIn, cashOut entities.Money) (*entities.CashboxDay, error)
}

type StatementService interface {
	Issue(ctx context.Context, issue entities.StatementIssue) (*entities.Statement, error)
}

type BusinessDayFactory interface {
	Today() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
