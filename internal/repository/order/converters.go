package order

import (
	"settlement/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:     o.ID,
		Type:   entities.OrderType(o.Type),
		Status: entities.OrderStatusType(o.Status),
		Amount: entities.NewMoney(o.AmountUSD, o.AmountLBP),
		Fee:    entities.NewMoney(o.FeeUSD, o.FeeLBP),
		FeePayer: entities.FeePayer{
			Rule:        entities.FeePayerRule(o.FeePayer),
			ClientShare: entities.NewMoney(o.FeeClientShareUSD, o.FeeClientShareLBP),
		},
		DriverAdvancedForClient: o.DriverAdvancedForClient,
		CompanyPrepaid:          o.CompanyPrepaid,
		DriverRemitStatus:       entities.DriverRemitStatus(o.DriverRemitStatus),
		ThirdPartyRemitStatus:   entities.ThirdPartyRemitStatus(o.ThirdPartyRemitStatus),
		DriverID:                o.DriverID,
		ClientID:                o.ClientID,
		ThirdPartyID:            o.ThirdPartyID,
		ThirdPartyFee:           entities.NewMoney(o.ThirdPartyFeeUSD, o.ThirdPartyFeeLBP),
		DeliveredAt:             o.DeliveredAt,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

// modifyColumns колонки и значения, которые меняет правка. nil поля пропускаются.
func modifyColumns(m entities.OrderModify) map[string]any {
	columns := make(map[string]any)

	if m.Type != nil {
		columns["type"] = m.Type.String()
	}
	if m.Status != nil {
		columns["status"] = m.Status.String()
	}
	if m.Amount != nil {
		columns["amount_usd"] = m.Amount.USD
		columns["amount_lbp"] = m.Amount.LBP
	}
	if m.Fee != nil {
		columns["fee_usd"] = m.Fee.USD
		columns["fee_lbp"] = m.Fee.LBP
	}
	if m.FeePayer != nil {
		columns["fee_payer"] = m.FeePayer.Rule.String()
		columns["fee_client_share_usd"] = m.FeePayer.ClientShare.USD
		columns["fee_client_share_lbp"] = m.FeePayer.ClientShare.LBP
	}
	if m.DriverAdvancedForClient != nil {
		columns["driver_advanced_for_client"] = *m.DriverAdvancedForClient
	}
	if m.CompanyPrepaid != nil {
		columns["company_prepaid"] = *m.CompanyPrepaid
	}
	if m.DriverRemitStatus != nil {
		columns["driver_remit_status"] = string(*m.DriverRemitStatus)
	}
	if m.ThirdPartyRemitStatus != nil {
		columns["third_party_remit_status"] = string(*m.ThirdPartyRemitStatus)
	}
	if m.DriverID != nil {
		columns["driver_id"] = *m.DriverID
	}
	if m.ClientID != nil {
		columns["client_id"] = *m.ClientID
	}
	if m.ThirdPartyID != nil {
		columns["third_party_id"] = *m.ThirdPartyID
	}
	if m.ThirdPartyFee != nil {
		columns["third_party_fee_usd"] = m.ThirdPartyFee.USD
		columns["third_party_fee_lbp"] = m.ThirdPartyFee.LBP
	}
	if m.DeliveredAt != nil {
		columns["delivered_at"] = *m.DeliveredAt
	}

	return columns
}
