package cashbox

import (
	"time"

	"github.com/shopspring/decimal"
)

type DayDB struct {
	Day        time.Time
	OpeningUSD decimal.Decimal
	OpeningLBP int64
	CashInUSD  decimal.Decimal
	CashInLBP  int64
	CashOutUSD decimal.Decimal
	CashOutLBP int64
	ClosingUSD decimal.Decimal
	ClosingLBP int64
}

func (d *DayDB) scanTargets() []any {
	return []any{
		&d.Day,
		&d.OpeningUSD,
		&d.OpeningLBP,
		&d.CashInUSD,
		&d.CashInLBP,
		&d.CashOutUSD,
		&d.CashOutLBP,
		&d.ClosingUSD,
		&d.ClosingLBP,
	}
}
