package order

import (
	"fmt"
	"slices"

	"settlement/internal/entities"
	"settlement/internal/service/fee"
)

// transitions допустимые переходы статусов. Из Delivered можно вернуться назад,
// такой переход откатывает проведённые по заказу суммы.
var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderNew:       {entities.OrderAssigned, entities.OrderCancelled},
	entities.OrderAssigned:  {entities.OrderPickedUp, entities.OrderNew, entities.OrderCancelled, entities.OrderReturned},
	entities.OrderPickedUp:  {entities.OrderDelivered, entities.OrderReturned, entities.OrderCancelled},
	entities.OrderDelivered: {entities.OrderPickedUp, entities.OrderAssigned, entities.OrderReturned, entities.OrderCancelled},
}

func validateTransition(from, to entities.OrderStatusType) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}
	if !slices.Contains(transitions[from], to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

func validateNewOrder(order entities.Order) error {
	if order.ClientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClientID, order.ClientID)
	}
	if order.DriverID != nil && *order.DriverID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDriverID, *order.DriverID)
	}
	if order.Status != entities.OrderNew && order.Status != entities.OrderAssigned {
		return fmt.Errorf("%w: %s", ErrInitialStatus, order.Status)
	}
	if order.Status == entities.OrderAssigned && order.DriverID == nil && order.ThirdPartyID == nil {
		return ErrNoCarrier
	}
	return fee.Validate(order)
}

// validateEdit проверяет правку, меняющую суммы или флаги заказа.
func validateEdit(current entities.Order, modify entities.OrderModify, claimed bool) error {
	if current.CompanyPrepaid && modify.TouchesAmounts() {
		return fmt.Errorf("%w: order %d", ErrPrepaidImmutable, current.ID)
	}
	if modify.CompanyPrepaid != nil && *modify.CompanyPrepaid {
		return fmt.Errorf("%w: order %d", ErrPrepaidImmutable, current.ID)
	}
	if current.IsSettled() {
		return fmt.Errorf("%w: order %d", ErrOrderSettled, current.ID)
	}
	if claimed {
		return fmt.Errorf("%w: order %d", ErrOrderClaimed, current.ID)
	}
	if modify.ClientID != nil && *modify.ClientID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClientID, *modify.ClientID)
	}
	if modify.DriverID != nil && *modify.DriverID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDriverID, *modify.DriverID)
	}
	return fee.Validate(merge(current, modify))
}

// merge заказ после применения правки.
func merge(order entities.Order, modify entities.OrderModify) entities.Order {
	if modify.Type != nil {
		order.Type = *modify.Type
	}
	if modify.Status != nil {
		order.Status = *modify.Status
	}
	if modify.Amount != nil {
		order.Amount = *modify.Amount
	}
	if modify.Fee != nil {
		order.Fee = *modify.Fee
	}
	if modify.FeePayer != nil {
		order.FeePayer = *modify.FeePayer
	}
	if modify.DriverAdvancedForClient != nil {
		order.DriverAdvancedForClient = *modify.DriverAdvancedForClient
	}
	if modify.CompanyPrepaid != nil {
		order.CompanyPrepaid = *modify.CompanyPrepaid
	}
	if modify.DriverRemitStatus != nil {
		order.DriverRemitStatus = *modify.DriverRemitStatus
	}
	if modify.ThirdPartyRemitStatus != nil {
		order.ThirdPartyRemitStatus = *modify.ThirdPartyRemitStatus
	}
	if modify.DriverID != nil {
		order.DriverID = modify.DriverID
	}
	if modify.ClientID != nil {
		order.ClientID = *modify.ClientID
	}
	if modify.ThirdPartyID != nil {
		order.ThirdPartyID = modify.ThirdPartyID
	}
	if modify.ThirdPartyFee != nil {
		order.ThirdPartyFee = *modify.ThirdPartyFee
	}
	if modify.DeliveredAt != nil {
		order.DeliveredAt = modify.DeliveredAt
	}
	return order
}
