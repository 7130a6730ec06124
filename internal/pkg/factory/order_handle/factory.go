package order_handle

import (
	"context"
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/order"
)

// StatusHandlerFactory побочные действия переходов статуса заказа.
type StatusHandlerFactory struct {
	reversalService order.ReversalService
}

func NewStatusHandlerFactory(reversalService order.ReversalService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		reversalService: reversalService,
	}
}

// GetHandler любой уход из Delivered откатывает проведённые суммы.
func (f *StatusHandlerFactory) GetHandler(from, to entities.OrderStatusType) (order.ExecuteFn, error) {
	switch {
	case from == entities.OrderDelivered && to != entities.OrderDelivered:
		return f.demotedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s -> %s", order.ErrUndefinedStatus, from, to)
	}
}

func (f *StatusHandlerFactory) demotedHandler(ctx context.Context, o entities.Order) error {
	_, err := f.reversalService.ReverseOrderSettlement(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("reverse settlement of demoted order %d: %w", o.ID, err)
	}
	return nil
}
