//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reversal_test
package reversal

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type PostingRepository interface {
	ListByOrder(ctx context.Context, orderID int64) ([]entities.Posting, error)
	Delete(ctx context.Context, orderID int64, kind entities.PostingKind) error
}

type LedgerService interface {
	Reverse(ctx context.Context, id int64) (*entities.LedgerEntry, error)
}

type CashboxService interface {
	ApplyDelta(ctx context.Context, day time.Time, cashIn, cashOut entities.Money) (*entities.CashboxDay, error)
}

type StatementService interface {
	ClaimsOf(ctx context.Context, orderID int64) ([]entities.StatementClaim, error)
	Unclaim(ctx context.Context, statementID, orderID int64) (*entities.Statement, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
