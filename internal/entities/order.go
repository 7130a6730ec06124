package entities

import "time"

type OrderType string

const (
	OrderEcommerce OrderType = "ecommerce"
	OrderInstant   OrderType = "instant"
	OrderErrand    OrderType = "errand"
)

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) IsValid() bool {
	switch t {
	case OrderEcommerce, OrderInstant, OrderErrand:
		return true
	}
	return false
}

type OrderStatusType string

const (
	OrderNew       OrderStatusType = "new"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderDelivered OrderStatusType = "delivered"
	OrderReturned  OrderStatusType = "returned"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderNew, OrderAssigned, OrderPickedUp, OrderDelivered, OrderReturned, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal Returned и Cancelled финальные, Delivered можно откатить правкой.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderReturned || s == OrderCancelled
}

type FeePayerRule string

const (
	FeeCustomerPays FeePayerRule = "customer_pays"
	FeeClientPays   FeePayerRule = "client_pays"
	FeeSplit        FeePayerRule = "split"
)

func (r FeePayerRule) String() string {
	return string(r)
}

func (r FeePayerRule) IsValid() bool {
	switch r {
	case FeeCustomerPays, FeeClientPays, FeeSplit:
		return true
	}
	return false
}

// FeePayer кто несёт стоимость доставки. ClientShare имеет смысл только для FeeSplit.
type FeePayer struct {
	Rule        FeePayerRule
	ClientShare Money
}

type DriverRemitStatus string

const (
	DriverRemitPending   DriverRemitStatus = "pending"
	DriverRemitCollected DriverRemitStatus = "collected"
)

type ThirdPartyRemitStatus string

const (
	ThirdPartyRemitNone    ThirdPartyRemitStatus = "none"
	ThirdPartyRemitPending ThirdPartyRemitStatus = "pending"
	ThirdPartyRemitSettled ThirdPartyRemitStatus = "settled"
)

type Order struct {
	ID     int64
	Type   OrderType
	Status OrderStatusType

	Amount Money
	Fee    Money

	FeePayer FeePayer

	DriverAdvancedForClient bool
	CompanyPrepaid          bool

	DriverRemitStatus     DriverRemitStatus
	ThirdPartyRemitStatus ThirdPartyRemitStatus

	DriverID      *int64
	ClientID      int64
	ThirdPartyID  *int64
	ThirdPartyFee Money

	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsSettled true, если по заказу уже проведено получение денег от водителя или третьей стороны.
func (o Order) IsSettled() bool {
	return o.DriverRemitStatus == DriverRemitCollected || o.ThirdPartyRemitStatus == ThirdPartyRemitSettled
}

// OrderModify nil поля не меняются.
type OrderModify struct {
	ID     *int64
	Type   *OrderType
	Status *OrderStatusType

	Amount   *Money
	Fee      *Money
	FeePayer *FeePayer

	DriverAdvancedForClient *bool
	CompanyPrepaid          *bool

	DriverRemitStatus     *DriverRemitStatus
	ThirdPartyRemitStatus *ThirdPartyRemitStatus

	DriverID      *int64
	ClientID      *int64
	ThirdPartyID  *int64
	ThirdPartyFee *Money

	DeliveredAt *time.Time
}

// TouchesSettlement true, если правка меняет суммы или флаги, от которых зависит проводка.
func (m OrderModify) TouchesSettlement() bool {
	return m.Type != nil ||
		m.Amount != nil ||
		m.Fee != nil ||
		m.FeePayer != nil ||
		m.DriverAdvancedForClient != nil ||
		m.CompanyPrepaid != nil ||
		m.DriverID != nil ||
		m.ClientID != nil ||
		m.ThirdPartyID != nil ||
		m.ThirdPartyFee != nil
}

// TouchesAmounts true, если правка меняет суммы или флаги расчёта, не считая назначения исполнителя.
func (m OrderModify) TouchesAmounts() bool {
	return m.Type != nil ||
		m.Amount != nil ||
		m.Fee != nil ||
		m.FeePayer != nil ||
		m.DriverAdvancedForClient != nil ||
		m.CompanyPrepaid != nil ||
		m.ThirdPartyFee != nil
}

// OrderStatusChange событие смены статуса из внешней системы заказов.
type OrderStatusChange struct {
	OrderID int64
	Status  OrderStatusType
}
