package entities

import "time"

type PostingKind string

const (
	// PostingCollection получение денег от водителя.
	PostingCollection PostingKind = "collection"
	// PostingThirdParty перевод от стороннего курьера.
	PostingThirdParty PostingKind = "third_party"
	// PostingPrepayment предоплата клиенту из кассы при создании заказа.
	PostingPrepayment PostingKind = "prepayment"
)

func (k PostingKind) String() string {
	return string(k)
}

// Posting след проводки по заказу. Откат строится только по нему, а не по текущим
// полям заказа, которые могли измениться после проводки.
type Posting struct {
	OrderID     int64
	Kind        PostingKind
	Class       SettlementClass
	DriverID    *int64
	WalletDelta Money
	CashboxDay  time.Time
	CashIn      Money
	CashOut     Money
	EntryIDs    []int64
	StatementID *int64
	CreatedAt   time.Time
}

// DriverCollection результат получения денег от водителя.
type DriverCollection struct {
	Entries     []LedgerEntry
	WalletDelta Money
	CashIn      Money
	CashOut     Money
	Statement   *Statement
}

// ThirdPartyRemittance результат приёма перевода от третьей стороны.
type ThirdPartyRemittance struct {
	ThirdPartyID int64
	OrderIDs     []int64
	Received     Money
	Entries      []LedgerEntry
}

// ReversalResult что откатилось по заказу.
type ReversalResult struct {
	OrderID            int64
	ReversedPostings   []PostingKind
	RemovedEntryIDs    []int64
	WalletDelta        Money
	UnclaimedStatement []int64
}
