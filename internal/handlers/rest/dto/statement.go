package dto

import (
	"time"

	"settlement/internal/entities"
)

type Totals struct {
	Collected Money `json:"collected"`
	Due       Money `json:"due"`
	Fees      Money `json:"fees"`
	Refunds   Money `json:"refunds"`
	Net       Money `json:"net"`
}

type StatementLine struct {
	OrderID   int64  `json:"order_id"`
	Class     string `json:"class"`
	Collected Money  `json:"collected"`
	Due       Money  `json:"due"`
	Fee       Money  `json:"fee"`
	Refund    Money  `json:"refund"`
}

type Statement struct {
	ID            int64           `json:"id"`
	Reference     string          `json:"reference"`
	EntityType    string          `json:"entity_type"`
	EntityID      int64           `json:"entity_id"`
	PeriodFrom    time.Time       `json:"period_from"`
	PeriodTo      time.Time       `json:"period_to"`
	Status        string          `json:"status"`
	Lines         []StatementLine `json:"lines"`
	Totals        Totals          `json:"totals"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	RevisedAt     *time.Time      `json:"revised_at,omitempty"`
}

func StatementFromEntity(s *entities.Statement) Statement {
	lines := make([]StatementLine, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, StatementLine{
			OrderID:   line.OrderID,
			Class:     line.Class.String(),
			Collected: MoneyFromEntity(line.Collected),
			Due:       MoneyFromEntity(line.Due),
			Fee:       MoneyFromEntity(line.Fee),
			Refund:    MoneyFromEntity(line.Refund),
		})
	}

	return Statement{
		ID:         s.ID,
		Reference:  s.Reference.String(),
		EntityType: s.EntityType.String(),
		EntityID:   s.EntityID,
		PeriodFrom: s.Period.From,
		PeriodTo:   s.Period.To,
		Status:     s.Status.String(),
		Lines:      lines,
		Totals: Totals{
			Collected: MoneyFromEntity(s.Totals.Collected),
			Due:       MoneyFromEntity(s.Totals.Due),
			Fees:      MoneyFromEntity(s.Totals.Fees),
			Refunds:   MoneyFromEntity(s.Totals.Refunds),
			Net:       MoneyFromEntity(s.Totals.Net),
		},
		PaidAt:        s.PaidAt,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		RevisedAt:     s.RevisedAt,
	}
}

type StatementIssue struct {
	EntityType string     `json:"entity_type"`
	EntityID   int64      `json:"entity_id"`
	PeriodFrom *time.Time `json:"period_from,omitempty"`
	PeriodTo   *time.Time `json:"period_to,omitempty"`
	OrderIDs   []int64    `json:"order_ids"`
}

func (i StatementIssue) ToEntity() entities.StatementIssue {
	issue := entities.StatementIssue{
		EntityType: entities.StatementEntityType(i.EntityType),
		EntityID:   i.EntityID,
		OrderIDs:   i.OrderIDs,
	}
	if i.PeriodFrom != nil {
		issue.Period.From = *i.PeriodFrom
	}
	if i.PeriodTo != nil {
		issue.Period.To = *i.PeriodTo
	}
	return issue
}

type StatementPay struct {
	PaymentMethod string  `json:"payment_method"`
	Notes         *string `json:"notes,omitempty"`
}
