package posting

import (
	"time"

	"settlement/internal/entities"
)

func ToDomain(p *PostingDB) *entities.Posting {
	if p == nil {
		return nil
	}

	y, m, d := p.CashboxDay.Date()
	return &entities.Posting{
		OrderID:     p.OrderID,
		Kind:        entities.PostingKind(p.Kind),
		Class:       entities.SettlementClass(p.Class),
		DriverID:    p.DriverID,
		WalletDelta: entities.NewMoney(p.WalletUSD, p.WalletLBP),
		CashboxDay:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CashIn:      entities.NewMoney(p.CashInUSD, p.CashInLBP),
		CashOut:     entities.NewMoney(p.CashOutUSD, p.CashOutLBP),
		EntryIDs:    p.EntryIDs,
		StatementID: p.StatementID,
		CreatedAt:   p.CreatedAt,
	}
}

func FromDomain(p *entities.Posting) *PostingDB {
	if p == nil {
		return nil
	}

	entryIDs := p.EntryIDs
	if entryIDs == nil {
		entryIDs = []int64{}
	}
	return &PostingDB{
		OrderID:     p.OrderID,
		Kind:        string(p.Kind),
		Class:       p.Class.String(),
		DriverID:    p.DriverID,
		WalletUSD:   p.WalletDelta.USD,
		WalletLBP:   p.WalletDelta.LBP,
		CashboxDay:  p.CashboxDay,
		CashInUSD:   p.CashIn.USD,
		CashInLBP:   p.CashIn.LBP,
		CashOutUSD:  p.CashOut.USD,
		CashOutLBP:  p.CashOut.LBP,
		EntryIDs:    entryIDs,
		StatementID: p.StatementID,
		CreatedAt:   p.CreatedAt,
	}
}
