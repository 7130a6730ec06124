package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                      int64
	Type                    string
	Status                  string
	AmountUSD               decimal.Decimal
	AmountLBP               int64
	FeeUSD                  decimal.Decimal
	FeeLBP                  int64
	FeePayer                string
	FeeClientShareUSD       decimal.Decimal
	FeeClientShareLBP       int64
	DriverAdvancedForClient bool
	CompanyPrepaid          bool
	DriverRemitStatus       string
	ThirdPartyRemitStatus   string
	DriverID                *int64
	ClientID                int64
	ThirdPartyID            *int64
	ThirdPartyFeeUSD        decimal.Decimal
	ThirdPartyFeeLBP        int64
	DeliveredAt             *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// scanTargets порядок совпадает с orderColumns.
func (o *OrderDB) scanTargets() []any {
	return []any{
		&o.ID,
		&o.Type,
		&o.Status,
		&o.AmountUSD,
		&o.AmountLBP,
		&o.FeeUSD,
		&o.FeeLBP,
		&o.FeePayer,
		&o.FeeClientShareUSD,
		&o.FeeClientShareLBP,
		&o.DriverAdvancedForClient,
		&o.CompanyPrepaid,
		&o.DriverRemitStatus,
		&o.ThirdPartyRemitStatus,
		&o.DriverID,
		&o.ClientID,
		&o.ThirdPartyID,
		&o.ThirdPartyFeeUSD,
		&o.ThirdPartyFeeLBP,
		&o.DeliveredAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
