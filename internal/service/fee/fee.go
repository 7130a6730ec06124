// Package fee считает, кто кому должен по заказу. Все функции чистые и могут вызываться
// до проводки, например для предпросмотра сумм выписки.
package fee

import (
	"settlement/internal/entities"
)

// ClientFeeShare часть стоимости доставки, которую несёт клиент (магазин).
// Для instant и errand доставку всегда оплачивает покупатель.
func ClientFeeShare(order entities.Order) entities.Money {
	if order.Type != entities.OrderEcommerce {
		return entities.Money{}
	}

	switch order.FeePayer.Rule {
	case entities.FeeClientPays:
		return order.Fee
	case entities.FeeSplit:
		return order.FeePayer.ClientShare
	default:
		return entities.Money{}
	}
}

// CustomerFeeShare часть стоимости доставки, которую платит покупатель.
func CustomerFeeShare(order entities.Order) entities.Money {
	return order.Fee.Sub(ClientFeeShare(order))
}

// DueToClient сумма, причитающаяся клиенту по заказу.
//
//	ecommerce:      amount - доля клиента в доставке (0 / fee / clientShare)
//	instant/errand: amount + fee, если водитель авансировал клиента, иначе amount
func DueToClient(order entities.Order) (entities.Money, error) {
	if err := Validate(order); err != nil {
		return entities.Money{}, err
	}
	return dueToClient(order), nil
}

func dueToClient(order entities.Order) entities.Money {
	if order.Type == entities.OrderEcommerce {
		return order.Amount.Sub(ClientFeeShare(order))
	}
	if order.DriverAdvancedForClient {
		return order.Amount.Add(order.Fee)
	}
	return order.Amount
}

// ClassOf класс расчёта по флагам заказа без проверки сумм.
func ClassOf(order entities.Order) entities.SettlementClass {
	switch {
	case order.ThirdPartyID != nil:
		return entities.ClassThirdParty
	case order.DriverAdvancedForClient:
		return entities.ClassDriverAdvanced
	case order.CompanyPrepaid:
		return entities.ClassCompanyPrepaid
	default:
		return entities.ClassCollected
	}
}

// Classify проверяет заказ и считает все суммы расчёта по нему.
func Classify(order entities.Order) (entities.Settlement, error) {
	if err := Validate(order); err != nil {
		return entities.Settlement{}, err
	}

	customerShare := CustomerFeeShare(order)
	s := entities.Settlement{
		Class:            ClassOf(order),
		CustomerFeeShare: customerShare,
		Income:           order.Fee,
	}

	switch s.Class {
	case entities.ClassCollected:
		s.CashCollected = order.Amount.Add(customerShare)
		s.ClientDue = dueToClient(order)
	case entities.ClassDriverAdvanced:
		// водитель уже отдал клиенту сумму заказа, с покупателя он берёт только доставку
		s.CashCollected = customerShare
		s.AdvancedRefund = order.Amount
		if order.Type == entities.OrderEcommerce {
			s.ClientCharge = order.Amount.Add(ClientFeeShare(order))
		} else {
			s.ClientCharge = dueToClient(order)
		}
	case entities.ClassCompanyPrepaid:
		// клиенту заплатили из кассы при создании заказа, по факту доставки остаётся только доход
	case entities.ClassThirdParty:
		s.CashCollected = order.Amount.Add(customerShare)
		s.ClientDue = dueToClient(order)
		s.ThirdPartyFee = order.ThirdPartyFee
		s.ThirdPartyDue = s.CashCollected.Sub(order.ThirdPartyFee)
	}

	return s, nil
}

// Line строка выписки по расчёту заказа.
func Line(entityType entities.StatementEntityType, orderID int64, s entities.Settlement) entities.StatementLine {
	line := entities.StatementLine{
		OrderID:   orderID,
		Class:     s.Class,
		Collected: s.CashCollected,
		Due:       s.ClientDue,
		Fee:       s.Income,
	}
	if entityType == entities.StatementDriver {
		line.Refund = s.AdvancedRefund
	} else {
		line.Refund = s.ClientCharge
	}
	return line
}

// Totals итоги выписки.
// Для водителя net = собрано - возвращено водителю, для клиента net = к выплате - к удержанию.
func Totals(entityType entities.StatementEntityType, lines []entities.StatementLine) entities.StatementTotals {
	var totals entities.StatementTotals
	for _, line := range lines {
		totals.Collected = totals.Collected.Add(line.Collected)
		totals.Due = totals.Due.Add(line.Due)
		totals.Fees = totals.Fees.Add(line.Fee)
		totals.Refunds = totals.Refunds.Add(line.Refund)
	}

	if entityType == entities.StatementDriver {
		totals.Net = totals.Collected.Sub(totals.Refunds)
	} else {
		totals.Net = totals.Due.Sub(totals.Refunds)
	}
	return totals
}
