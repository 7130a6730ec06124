package dto

import "settlement/internal/entities"

type DriverCollectionRequest struct {
	OrderIDs []int64 `json:"order_ids"`
}

type DriverCollection struct {
	Entries     []LedgerEntry `json:"entries"`
	WalletDelta Money         `json:"wallet_delta"`
	CashIn      Money         `json:"cash_in"`
	CashOut     Money         `json:"cash_out"`
	Statement   *Statement    `json:"statement,omitempty"`
}

func DriverCollectionFromEntity(c *entities.DriverCollection) DriverCollection {
	res := DriverCollection{
		Entries:     LedgerEntriesFromEntity(c.Entries),
		WalletDelta: MoneyFromEntity(c.WalletDelta),
		CashIn:      MoneyFromEntity(c.CashIn),
		CashOut:     MoneyFromEntity(c.CashOut),
	}
	if c.Statement != nil {
		st := StatementFromEntity(c.Statement)
		res.Statement = &st
	}
	return res
}

type ThirdPartyRemittanceRequest struct {
	OrderIDs []int64 `json:"order_ids"`
	Amount   Money   `json:"amount"`
}

type ThirdPartyRemittance struct {
	ThirdPartyID int64         `json:"third_party_id"`
	OrderIDs     []int64       `json:"order_ids"`
	Received     Money         `json:"received"`
	Entries      []LedgerEntry `json:"entries"`
}

func ThirdPartyRemittanceFromEntity(r *entities.ThirdPartyRemittance) ThirdPartyRemittance {
	return ThirdPartyRemittance{
		ThirdPartyID: r.ThirdPartyID,
		OrderIDs:     nonNil(r.OrderIDs),
		Received:     MoneyFromEntity(r.Received),
		Entries:      LedgerEntriesFromEntity(r.Entries),
	}
}

type ThirdPartyPayout struct {
	Amount Money  `json:"amount"`
	Memo   string `json:"memo,omitempty"`
}
