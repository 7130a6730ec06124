package remittance

import (
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/fee"
)

type orderSettlement struct {
	order      entities.Order
	settlement entities.Settlement
}

func validateOrderIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrEmptyOrderSet
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: order id %d", entities.ErrValidation, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateOrder, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// resolve раскладывает заказы в порядке ids и классифицирует каждый.
// check вызывается для каждого заказа до классификации.
func resolve(ids []int64, orders []entities.Order, check func(entities.Order) error) ([]orderSettlement, error) {
	byID := make(map[int64]entities.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	items := make([]orderSettlement, 0, len(ids))
	for _, id := range ids {
		order, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
		}
		if order.Status != entities.OrderDelivered {
			return nil, fmt.Errorf("%w: order %d is %s", ErrOrderNotDelivered, id, order.Status)
		}
		if err := check(order); err != nil {
			return nil, err
		}

		settlement, err := fee.Classify(order)
		if err != nil {
			return nil, fmt.Errorf("classify order %d: %w", id, err)
		}
		items = append(items, orderSettlement{order: order, settlement: settlement})
	}
	return items, nil
}

func collectableFrom(driverID int64) func(entities.Order) error {
	return func(order entities.Order) error {
		if order.DriverID == nil || *order.DriverID != driverID {
			return fmt.Errorf("%w: order %d", ErrOrderNotAssigned, order.ID)
		}
		if order.ThirdPartyID != nil {
			return fmt.Errorf("%w: order %d", ErrThirdPartyOrder, order.ID)
		}
		if order.DriverRemitStatus != entities.DriverRemitPending {
			return fmt.Errorf("%w: order %d", ErrOrderAlreadyCollected, order.ID)
		}
		return nil
	}
}

func remittableBy(thirdPartyID int64) func(entities.Order) error {
	return func(order entities.Order) error {
		if order.ThirdPartyID == nil || *order.ThirdPartyID != thirdPartyID {
			return fmt.Errorf("%w: order %d", ErrNotThirdPartyOrder, order.ID)
		}
		if order.ThirdPartyRemitStatus != entities.ThirdPartyRemitPending {
			return fmt.Errorf("%w: order %d", ErrOrderAlreadySettled, order.ID)
		}
		return nil
	}
}
