//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cashbox_test
package cashbox

import (
	"context"
	"time"

	"settlement/internal/entities"
)

type Repository interface {
	Increment(ctx context.Context, day time.Time, cashIn, cashOut entities.Money) (*entities.CashboxDay, error)
	ShiftOpenings(ctx context.Context, after time.Time, delta entities.Money) (int64, error)
	GetDay(ctx context.Context, day time.Time) (*entities.CashboxDay, error)
	LatestBefore(ctx context.Context, day time.Time) (*entities.CashboxDay, error)
}

type BusinessDayFactory interface {
	Today() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
