package entities

import (
	"time"

	"github.com/google/uuid"
)

type StatementEntityType string

const (
	StatementDriver StatementEntityType = "driver"
	StatementClient StatementEntityType = "client"
)

func (t StatementEntityType) String() string {
	return string(t)
}

func (t StatementEntityType) IsValid() bool {
	return t == StatementDriver || t == StatementClient
}

type StatementStatus string

const (
	StatementUnpaid StatementStatus = "unpaid"
	StatementPaid   StatementStatus = "paid"
)

func (s StatementStatus) String() string {
	return string(s)
}

type Period struct {
	From time.Time
	To   time.Time
}

type StatementTotals struct {
	Collected Money
	Due       Money
	Fees      Money
	Refunds   Money
	Net       Money
}

// StatementLine суммы одного заказа, зафиксированные в момент выпуска.
type StatementLine struct {
	OrderID   int64
	Class     SettlementClass
	Collected Money
	Due       Money
	Fee       Money
	Refund    Money
}

type Statement struct {
	ID         int64
	Reference  uuid.UUID
	EntityType StatementEntityType
	EntityID   int64
	Period     Period
	Lines      []StatementLine
	Totals     StatementTotals
	Status     StatementStatus

	PaidAt        *time.Time
	PaymentMethod *string
	Notes         *string

	CreatedAt time.Time
	RevisedAt *time.Time
}

// OrderIDs номера заказов в порядке строк выписки.
func (s Statement) OrderIDs() []int64 {
	ids := make([]int64, 0, len(s.Lines))
	for _, line := range s.Lines {
		ids = append(ids, line.OrderID)
	}
	return ids
}

// StatementIssue запрос на выпуск выписки.
type StatementIssue struct {
	EntityType StatementEntityType
	EntityID   int64
	Period     Period
	OrderIDs   []int64
	// Paid выписка сразу оплачена (водитель рассчитывается на месте).
	Paid          bool
	PaymentMethod string
}

// StatementClaim выписка, в которой находится заказ.
type StatementClaim struct {
	StatementID int64
	EntityType  StatementEntityType
	Status      StatementStatus
}
