//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"settlement/internal/entities"
)

type Repository interface {
	InsertEntry(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id int64) (*entities.LedgerEntry, error)

	AdjustWallet(ctx context.Context, driverID int64, delta entities.Money) (entities.Money, error)
	GetWallet(ctx context.Context, driverID int64) (entities.Money, error)

	SumByDirection(ctx context.Context, party entities.Party) (map[entities.Direction]entities.Money, error)
	SumUnlinkedByDirection(ctx context.Context, party entities.Party) (map[entities.Direction]entities.Money, error)
	ListWalletDrifts(ctx context.Context) ([]entities.WalletDrift, error)
}

type OrderRepository interface {
	ListPendingThirdParty(ctx context.Context, thirdPartyID int64) ([]entities.Order, error)
}

type CashboxService interface {
	ApplyToday(ctx context.Context, cashIn, cashOut entities.Money) (*entities.CashboxDay, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
