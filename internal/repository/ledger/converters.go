package ledger

import (
	"settlement/internal/entities"
)

func ToDomain(e *EntryDB) *entities.LedgerEntry {
	if e == nil {
		return nil
	}

	entry := &entities.LedgerEntry{
		ID:        e.ID,
		Kind:      entities.EntryKind(e.Kind),
		PartyID:   e.PartyID,
		Direction: entities.Direction(e.Direction),
		Amount:    entities.NewMoney(e.AmountUSD, e.AmountLBP),
		OrderID:   e.OrderID,
		Memo:      e.Memo,
		CreatedAt: e.CreatedAt,
	}
	if e.Category != nil {
		category := entities.AccountingCategory(*e.Category)
		entry.Category = &category
	}
	return entry
}

func FromDomain(entry *entities.LedgerEntry) *EntryDB {
	if entry == nil {
		return nil
	}

	entryDB := &EntryDB{
		ID:        entry.ID,
		Kind:      entry.Kind.String(),
		PartyID:   entry.PartyID,
		Direction: entry.Direction.String(),
		AmountUSD: entry.Amount.USD,
		AmountLBP: entry.Amount.LBP,
		OrderID:   entry.OrderID,
		Memo:      entry.Memo,
		CreatedAt: entry.CreatedAt,
	}
	if entry.Category != nil {
		category := string(*entry.Category)
		entryDB.Category = &category
	}
	return entryDB
}
