package dto

import (
	"time"

	"settlement/internal/entities"
)

type LedgerEntry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	PartyID   *int64    `json:"party_id,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Direction string    `json:"direction"`
	Amount    Money     `json:"amount"`
	OrderID   *int64    `json:"order_id,omitempty"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"created_at"`
}

func LedgerEntryFromEntity(e *entities.LedgerEntry) LedgerEntry {
	entry := LedgerEntry{
		ID:        e.ID,
		Kind:      e.Kind.String(),
		PartyID:   e.PartyID,
		Direction: e.Direction.String(),
		Amount:    MoneyFromEntity(e.Amount),
		OrderID:   e.OrderID,
		Memo:      e.Memo,
		CreatedAt: e.CreatedAt,
	}
	if e.Category != nil {
		category := string(*e.Category)
		entry.Category = &category
	}
	return entry
}

func LedgerEntriesFromEntity(entries []entities.LedgerEntry) []LedgerEntry {
	res := make([]LedgerEntry, 0, len(entries))
	for i := range entries {
		res = append(res, LedgerEntryFromEntity(&entries[i]))
	}
	return res
}

type Balance struct {
	PartyKind string `json:"party_kind"`
	PartyID   int64  `json:"party_id"`
	Balance   Money  `json:"balance"`
}

type Correction struct {
	PartyKind string `json:"party_kind"`
	PartyID   int64  `json:"party_id"`
	Direction string `json:"direction"`
	Amount    Money  `json:"amount"`
	Memo      string `json:"memo"`
}

func (c Correction) ToEntity() (entities.Correction, error) {
	amount, err := c.Amount.ToEntity()
	if err != nil {
		return entities.Correction{}, err
	}
	return entities.Correction{
		Party:     entities.Party{Kind: entities.PartyKind(c.PartyKind), ID: c.PartyID},
		Direction: entities.Direction(c.Direction),
		Amount:    amount,
		Memo:      c.Memo,
	}, nil
}

type AccountingRecord struct {
	Category  string `json:"category"`
	Direction string `json:"direction"`
	Amount    Money  `json:"amount"`
	Memo      string `json:"memo"`
}

func (a AccountingRecord) ToEntity() (entities.AccountingRecord, error) {
	amount, err := a.Amount.ToEntity()
	if err != nil {
		return entities.AccountingRecord{}, err
	}
	return entities.AccountingRecord{
		Category:  entities.AccountingCategory(a.Category),
		Direction: entities.Direction(a.Direction),
		Amount:    amount,
		Memo:      a.Memo,
	}, nil
}

type CashboxDay struct {
	Day     string `json:"day"`
	Opening Money  `json:"opening"`
	CashIn  Money  `json:"cash_in"`
	CashOut Money  `json:"cash_out"`
	Closing Money  `json:"closing"`
}

func CashboxDayFromEntity(d *entities.CashboxDay) CashboxDay {
	return CashboxDay{
		Day:     d.Day.Format(time.DateOnly),
		Opening: MoneyFromEntity(d.Opening),
		CashIn:  MoneyFromEntity(d.CashIn),
		CashOut: MoneyFromEntity(d.CashOut),
		Closing: MoneyFromEntity(d.Closing),
	}
}
