package dto

import (
	"time"

	"settlement/internal/entities"
)

type FeePayer struct {
	Rule        string `json:"rule"`
	ClientShare *Money `json:"client_share,omitempty"`
}

type Order struct {
	ID                      int64      `json:"id"`
	Type                    string     `json:"type"`
	Status                  string     `json:"status"`
	Amount                  Money      `json:"amount"`
	Fee                     Money      `json:"fee"`
	FeePayer                FeePayer   `json:"fee_payer"`
	DriverAdvancedForClient bool       `json:"driver_advanced_for_client"`
	CompanyPrepaid          bool       `json:"company_prepaid"`
	DriverRemitStatus       string     `json:"driver_remit_status"`
	ThirdPartyRemitStatus   string     `json:"third_party_remit_status"`
	DriverID                *int64     `json:"driver_id,omitempty"`
	ClientID                int64      `json:"client_id"`
	ThirdPartyID            *int64     `json:"third_party_id,omitempty"`
	ThirdPartyFee           Money      `json:"third_party_fee"`
	DeliveredAt             *time.Time `json:"delivered_at,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func OrderFromEntity(o *entities.Order) Order {
	feePayer := FeePayer{Rule: o.FeePayer.Rule.String()}
	if o.FeePayer.Rule == entities.FeeSplit {
		share := MoneyFromEntity(o.FeePayer.ClientShare)
		feePayer.ClientShare = &share
	}

	return Order{
		ID:                      o.ID,
		Type:                    o.Type.String(),
		Status:                  o.Status.String(),
		Amount:                  MoneyFromEntity(o.Amount),
		Fee:                     MoneyFromEntity(o.Fee),
		FeePayer:                feePayer,
		DriverAdvancedForClient: o.DriverAdvancedForClient,
		CompanyPrepaid:          o.CompanyPrepaid,
		DriverRemitStatus:       string(o.DriverRemitStatus),
		ThirdPartyRemitStatus:   string(o.ThirdPartyRemitStatus),
		DriverID:                o.DriverID,
		ClientID:                o.ClientID,
		ThirdPartyID:            o.ThirdPartyID,
		ThirdPartyFee:           MoneyFromEntity(o.ThirdPartyFee),
		DeliveredAt:             o.DeliveredAt,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

type OrderCreate struct {
	Type                    string   `json:"type"`
	Status                  string   `json:"status,omitempty"`
	Amount                  Money    `json:"amount"`
	Fee                     Money    `json:"fee"`
	FeePayer                FeePayer `json:"fee_payer"`
	DriverAdvancedForClient bool     `json:"driver_advanced_for_client"`
	CompanyPrepaid          bool     `json:"company_prepaid"`
	DriverID                *int64   `json:"driver_id,omitempty"`
	ClientID                int64    `json:"client_id"`
	ThirdPartyID            *int64   `json:"third_party_id,omitempty"`
	ThirdPartyFee           *Money   `json:"third_party_fee,omitempty"`
}

func (c OrderCreate) ToEntity() (entities.Order, error) {
	amount, err := c.Amount.ToEntity()
	if err != nil {
		return entities.Order{}, err
	}
	fee, err := c.Fee.ToEntity()
	if err != nil {
		return entities.Order{}, err
	}
	feePayer, err := c.FeePayer.toEntity()
	if err != nil {
		return entities.Order{}, err
	}
	tpFee, err := moneyPtr(c.ThirdPartyFee)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		Type:                    entities.OrderType(c.Type),
		Status:                  entities.OrderStatusType(c.Status),
		Amount:                  amount,
		Fee:                     fee,
		FeePayer:                feePayer,
		DriverAdvancedForClient: c.DriverAdvancedForClient,
		CompanyPrepaid:          c.CompanyPrepaid,
		DriverID:                c.DriverID,
		ClientID:                c.ClientID,
		ThirdPartyID:            c.ThirdPartyID,
	}
	if tpFee != nil {
		order.ThirdPartyFee = *tpFee
	}
	return order, nil
}

func (f FeePayer) toEntity() (entities.FeePayer, error) {
	share, err := moneyPtr(f.ClientShare)
	if err != nil {
		return entities.FeePayer{}, err
	}

	feePayer := entities.FeePayer{Rule: entities.FeePayerRule(f.Rule)}
	if share != nil {
		feePayer.ClientShare = *share
	}
	return feePayer, nil
}

// OrderUpdate nil поля не меняются.
type OrderUpdate struct {
	Type                    *string   `json:"type,omitempty"`
	Status                  *string   `json:"status,omitempty"`
	Amount                  *Money    `json:"amount,omitempty"`
	Fee                     *Money    `json:"fee,omitempty"`
	FeePayer                *FeePayer `json:"fee_payer,omitempty"`
	DriverAdvancedForClient *bool     `json:"driver_advanced_for_client,omitempty"`
	CompanyPrepaid          *bool     `json:"company_prepaid,omitempty"`
	DriverID                *int64    `json:"driver_id,omitempty"`
	ClientID                *int64    `json:"client_id,omitempty"`
	ThirdPartyID            *int64    `json:"third_party_id,omitempty"`
	ThirdPartyFee           *Money    `json:"third_party_fee,omitempty"`
}

func (u OrderUpdate) ToEntity(id int64) (entities.OrderModify, error) {
	modify := entities.OrderModify{
		ID:                      &id,
		DriverAdvancedForClient: u.DriverAdvancedForClient,
		CompanyPrepaid:          u.CompanyPrepaid,
		DriverID:                u.DriverID,
		ClientID:                u.ClientID,
		ThirdPartyID:            u.ThirdPartyID,
	}
	if u.Type != nil {
		orderType := entities.OrderType(*u.Type)
		modify.Type = &orderType
	}
	if u.Status != nil {
		status := entities.OrderStatusType(*u.Status)
		modify.Status = &status
	}
	if u.FeePayer != nil {
		feePayer, err := u.FeePayer.toEntity()
		if err != nil {
			return entities.OrderModify{}, err
		}
		modify.FeePayer = &feePayer
	}

	var err error
	if modify.Amount, err = moneyPtr(u.Amount); err != nil {
		return entities.OrderModify{}, err
	}
	if modify.Fee, err = moneyPtr(u.Fee); err != nil {
		return entities.OrderModify{}, err
	}
	if modify.ThirdPartyFee, err = moneyPtr(u.ThirdPartyFee); err != nil {
		return entities.OrderModify{}, err
	}
	return modify, nil
}

type OrderDue struct {
	OrderID int64 `json:"order_id"`
	Due     Money `json:"due"`
}

type ReversalResult struct {
	OrderID             int64    `json:"order_id"`
	ReversedPostings    []string `json:"reversed_postings"`
	RemovedEntryIDs     []int64  `json:"removed_entry_ids"`
	WalletDelta         Money    `json:"wallet_delta"`
	UnclaimedStatements []int64  `json:"unclaimed_statements"`
}

func ReversalFromEntity(r *entities.ReversalResult) ReversalResult {
	kinds := make([]string, 0, len(r.ReversedPostings))
	for _, kind := range r.ReversedPostings {
		kinds = append(kinds, kind.String())
	}
	return ReversalResult{
		OrderID:             r.OrderID,
		ReversedPostings:    kinds,
		RemovedEntryIDs:     nonNil(r.RemovedEntryIDs),
		WalletDelta:         MoneyFromEntity(r.WalletDelta),
		UnclaimedStatements: nonNil(r.UnclaimedStatement),
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
