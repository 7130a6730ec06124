package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatementDB struct {
	ID            int64
	Reference     uuid.UUID
	EntityType    string
	EntityID      int64
	PeriodFrom    time.Time
	PeriodTo      time.Time
	Status        string
	CollectedUSD  decimal.Decimal
	CollectedLBP  int64
	DueUSD        decimal.Decimal
	DueLBP        int64
	FeesUSD       decimal.Decimal
	FeesLBP       int64
	RefundsUSD    decimal.Decimal
	RefundsLBP    int64
	NetUSD        decimal.Decimal
	NetLBP        int64
	PaidAt        *time.Time
	PaymentMethod *string
	Notes         *string
	CreatedAt     time.Time
	RevisedAt     *time.Time
}

func (s *StatementDB) scanTargets() []any {
	return []any{
		&s.ID,
		&s.Reference,
		&s.EntityType,
		&s.EntityID,
		&s.PeriodFrom,
		&s.PeriodTo,
		&s.Status,
		&s.CollectedUSD,
		&s.CollectedLBP,
		&s.DueUSD,
		&s.DueLBP,
		&s.FeesUSD,
		&s.FeesLBP,
		&s.RefundsUSD,
		&s.RefundsLBP,
		&s.NetUSD,
		&s.NetLBP,
		&s.PaidAt,
		&s.PaymentMethod,
		&s.Notes,
		&s.CreatedAt,
		&s.RevisedAt,
	}
}

type LineDB struct {
	OrderID      int64
	Class        string
	CollectedUSD decimal.Decimal
	CollectedLBP int64
	DueUSD       decimal.Decimal
	DueLBP       int64
	FeeUSD       decimal.Decimal
	FeeLBP       int64
	RefundUSD    decimal.Decimal
	RefundLBP    int64
}

func (l *LineDB) scanTargets() []any {
	return []any{
		&l.OrderID,
		&l.Class,
		&l.CollectedUSD,
		&l.CollectedLBP,
		&l.DueUSD,
		&l.DueLBP,
		&l.FeeUSD,
		&l.FeeLBP,
		&l.RefundUSD,
		&l.RefundLBP,
	}
}
