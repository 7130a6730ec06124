package order

import (
	"errors"
	"fmt"

	"settlement/internal/entities"
)

// ErrUndefinedStatus переход без побочных действий, фабрика возвращает его вместо обработчика.
var ErrUndefinedStatus = errors.New("undefined order status transition")

var (
	ErrMissingOrderID  = fmt.Errorf("%w: order id is required", entities.ErrValidation)
	ErrInvalidOrderID  = fmt.Errorf("%w: invalid order id", entities.ErrValidation)
	ErrInvalidClientID = fmt.Errorf("%w: invalid client id", entities.ErrValidation)
	ErrInvalidDriverID = fmt.Errorf("%w: invalid driver id", entities.ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid order status", entities.ErrValidation)
	ErrInitialStatus   = fmt.Errorf("%w: order is created new or assigned", entities.ErrValidation)

	ErrOrderNotFound = fmt.Errorf("order %w", entities.ErrNotFound)

	ErrInvalidTransition = fmt.Errorf("%w: status transition is not allowed", entities.ErrConsistency)
	ErrNoCarrier         = fmt.Errorf("%w: order has no driver or third party", entities.ErrConsistency)
	ErrPrepaidImmutable  = fmt.Errorf("%w: company prepaid orders cannot change amounts or flags", entities.ErrConsistency)
	ErrOrderSettled      = fmt.Errorf("%w: order is settled, demote it first", entities.ErrConsistency)
	ErrOrderClaimed      = fmt.Errorf("%w: order is part of a statement", entities.ErrConsistency)
)
