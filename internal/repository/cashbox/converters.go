package cashbox

import (
	"time"

	"settlement/internal/entities"
)

func ToDomain(d *DayDB) *entities.CashboxDay {
	if d == nil {
		return nil
	}

	y, m, day := d.Day.Date()
	return &entities.CashboxDay{
		Day:     time.Date(y, m, day, 0, 0, 0, 0, time.UTC),
		Opening: entities.NewMoney(d.OpeningUSD, d.OpeningLBP),
		CashIn:  entities.NewMoney(d.CashInUSD, d.CashInLBP),
		CashOut: entities.NewMoney(d.CashOutUSD, d.CashOutLBP),
		Closing: entities.NewMoney(d.ClosingUSD, d.ClosingLBP),
	}
}
