package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryDB struct {
	ID        int64
	Kind      string
	PartyID   *int64
	Category  *string
	Direction string
	AmountUSD decimal.Decimal
	AmountLBP int64
	OrderID   *int64
	Memo      string
	CreatedAt time.Time
}

func (e *EntryDB) scanTargets() []any {
	return []any{
		&e.ID,
		&e.Kind,
		&e.PartyID,
		&e.Category,
		&e.Direction,
		&e.AmountUSD,
		&e.AmountLBP,
		&e.OrderID,
		&e.Memo,
		&e.CreatedAt,
	}
}
