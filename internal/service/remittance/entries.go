package remittance

import (
	"fmt"

	"settlement/internal/entities"
)

// collectionEntries записи по заказу при сборе наличных с водителя.
//
//	collected:       водитель  debit  наличные (заказ + доля покупателя в доставке)
//	                 клиент    credit к выплате
//	driver advanced: водитель  credit возврат аванса
//	company prepaid: только доход
//
// Доход (стоимость доставки) проводится для всех классов. Нулевые суммы не проводятся.
func collectionEntries(driverID int64, order entities.Order, s entities.Settlement) []entities.LedgerEntry {
	orderID := order.ID
	clientID := order.ClientID
	memo := fmt.Sprintf("cash collection, order #%d", orderID)

	var entries []entities.LedgerEntry
	switch s.Class {
	case entities.ClassCollected:
		entries = append(entries,
			partyEntry(entities.EntryDriver, driverID, entities.Debit, s.CashCollected, orderID, memo),
			partyEntry(entities.EntryClient, clientID, entities.Credit, s.ClientDue, orderID, memo),
		)
	case entities.ClassDriverAdvanced:
		entries = append(entries,
			partyEntry(entities.EntryDriver, driverID, entities.Credit, s.AdvancedRefund, orderID, fmt.Sprintf("advance refund, order #%d", orderID)),
		)
	}
	entries = append(entries, accountingEntry(entities.CategoryDeliveryFee, entities.In, s.Income, orderID, memo))

	return nonZero(entries)
}

// thirdPartyEntries записи по заказу при приёме перевода от третьей стороны.
// Запись третьей стороны In только для аудита, в баланс она не входит.
func thirdPartyEntries(thirdPartyID int64, order entities.Order, s entities.Settlement) []entities.LedgerEntry {
	orderID := order.ID
	memo := fmt.Sprintf("third party remittance, order #%d", orderID)

	return nonZero([]entities.LedgerEntry{
		partyEntry(entities.EntryThirdParty, thirdPartyID, entities.In, s.ThirdPartyDue, orderID, memo),
		partyEntry(entities.EntryClient, order.ClientID, entities.Credit, s.ClientDue, orderID, memo),
		accountingEntry(entities.CategoryDeliveryFee, entities.In, s.Income, orderID, memo),
		accountingEntry(entities.CategoryThirdPartyFee, entities.Out, s.ThirdPartyFee, orderID, memo),
	})
}

func partyEntry(kind entities.EntryKind, partyID int64, direction entities.Direction, amount entities.Money, orderID int64, memo string) entities.LedgerEntry {
	return entities.LedgerEntry{
		Kind:      kind,
		PartyID:   &partyID,
		Direction: direction,
		Amount:    amount,
		OrderID:   &orderID,
		Memo:      memo,
	}
}

func accountingEntry(category entities.AccountingCategory, direction entities.Direction, amount entities.Money, orderID int64, memo string) entities.LedgerEntry {
	return entities.LedgerEntry{
		Kind:      entities.EntryAccounting,
		Category:  &category,
		Direction: direction,
		Amount:    amount,
		OrderID:   &orderID,
		Memo:      memo,
	}
}

func nonZero(entries []entities.LedgerEntry) []entities.LedgerEntry {
	result := entries[:0]
	for _, entry := range entries {
		if !entry.Amount.IsZero() {
			result = append(result, entry)
		}
	}
	return result
}

func partyEntryWithoutOrder(kind entities.EntryKind, partyID int64, direction entities.Direction, amount entities.Money, memo string) entities.LedgerEntry {
	return entities.LedgerEntry{
		Kind:      kind,
		PartyID:   &partyID,
		Direction: direction,
		Amount:    amount,
		Memo:      memo,
	}
}
