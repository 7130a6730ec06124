package entities

import "time"

// CashboxDay касса за календарный день. closing = opening + cash_in - cash_out по каждой валюте,
// opening следующего дня равен closing предыдущего.
type CashboxDay struct {
	Day     time.Time
	Opening Money
	CashIn  Money
	CashOut Money
	Closing Money
}
