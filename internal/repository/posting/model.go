package posting

import (
	"time"

	"github.com/shopspring/decimal"
)

type PostingDB struct {
	OrderID     int64
	Kind        string
	Class       string
	DriverID    *int64
	WalletUSD   decimal.Decimal
	WalletLBP   int64
	CashboxDay  time.Time
	CashInUSD   decimal.Decimal
	CashInLBP   int64
	CashOutUSD  decimal.Decimal
	CashOutLBP  int64
	EntryIDs    []int64
	StatementID *int64
	CreatedAt   time.Time
}

func (p *PostingDB) scanTargets() []any {
	return []any{
		&p.OrderID,
		&p.Kind,
		&p.Class,
		&p.DriverID,
		&p.WalletUSD,
		&p.WalletLBP,
		&p.CashboxDay,
		&p.CashInUSD,
		&p.CashInLBP,
		&p.CashOutUSD,
		&p.CashOutLBP,
		&p.EntryIDs,
		&p.StatementID,
		&p.CreatedAt,
	}
}
