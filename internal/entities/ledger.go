package entities

import "time"

type EntryKind string

const (
	EntryDriver     EntryKind = "driver"
	EntryClient     EntryKind = "client"
	EntryThirdParty EntryKind = "third_party"
	EntryAccounting EntryKind = "accounting"
)

func (k EntryKind) String() string {
	return string(k)
}

// PartyKind вид контрагента для записей водителя, клиента и третьей стороны.
func (k EntryKind) PartyKind() (PartyKind, bool) {
	switch k {
	case EntryDriver:
		return PartyDriver, true
	case EntryClient:
		return PartyClient, true
	case EntryThirdParty:
		return PartyThirdParty, true
	}
	return "", false
}

func EntryKindOf(party PartyKind) EntryKind {
	switch party {
	case PartyDriver:
		return EntryDriver
	case PartyClient:
		return EntryClient
	case PartyThirdParty:
		return EntryThirdParty
	}
	return ""
}

// Direction Credit/Debit для водителей и клиентов, In/Out для третьей стороны и бухгалтерии.
type Direction string

const (
	// Credit компания должна контрагенту больше.
	Credit Direction = "credit"
	// Debit контрагент должен компании больше.
	Debit Direction = "debit"
	In    Direction = "in"
	Out   Direction = "out"
)

func (d Direction) String() string {
	return string(d)
}

// ValidFor проверяет, что направление допустимо для вида записи.
func (d Direction) ValidFor(kind EntryKind) bool {
	switch kind {
	case EntryDriver, EntryClient:
		return d == Credit || d == Debit
	case EntryThirdParty, EntryAccounting:
		return d == In || d == Out
	}
	return false
}

// Sign +1 для Credit/In, -1 для Debit/Out.
func (d Direction) Sign() int {
	if d == Credit || d == In {
		return 1
	}
	return -1
}

type AccountingCategory string

const (
	CategoryDeliveryFee      AccountingCategory = "delivery_fee"
	CategoryThirdPartyFee    AccountingCategory = "third_party_fee"
	CategoryClientPrepayment AccountingCategory = "client_prepayment"
	CategoryThirdPartyPayout AccountingCategory = "third_party_payout"
	CategoryManual           AccountingCategory = "manual"
)

// LedgerEntry неизменяемое направленное движение денег. Удаляется только через Reverse.
type LedgerEntry struct {
	ID        int64
	Kind      EntryKind
	PartyID   *int64
	Category  *AccountingCategory
	Direction Direction
	Amount    Money
	OrderID   *int64
	Memo      string
	CreatedAt time.Time
}

// SignedAmount сумма со знаком направления.
func (e LedgerEntry) SignedAmount() Money {
	if e.Direction.Sign() < 0 {
		return e.Amount.Neg()
	}
	return e.Amount
}

// WalletDelta изменение кошелька водителя от этой записи, для остальных видов ноль.
func (e LedgerEntry) WalletDelta() Money {
	if e.Kind != EntryDriver {
		return Money{}
	}
	return e.SignedAmount()
}

// Correction ручная корректирующая запись оператора.
type Correction struct {
	Party     Party
	Direction Direction
	Amount    Money
	Memo      string
}

// AccountingRecord произвольная бухгалтерская запись с движением кассы.
type AccountingRecord struct {
	Category  AccountingCategory
	Direction Direction
	Amount    Money
	Memo      string
}

// WalletDrift расхождение кэшированного кошелька водителя с суммой его записей.
type WalletDrift struct {
	DriverID int64
	Wallet   Money
	Ledger   Money
}
