//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, newOrder entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
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
	ClaimsOf(ctx context.Context, orderID int64) ([]entities.StatementClaim, error)
}

type ReversalService interface {
	ReverseOrderSettlement(ctx context.Context, orderID int64) (*entities.ReversalResult, error)
	ReleaseOrder(ctx context.Context, orderID int64) (*entities.ReversalResult, error)
}

type BusinessDayFactory interface {
	Today() time.Time
}

type ExecuteFn func(ctx context.Context, order entities.Order) error

type HandlerFactory interface {
	GetHandler(from, to entities.OrderStatusType) (ExecuteFn, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
