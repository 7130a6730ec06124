package statement

import (
	"fmt"

	"settlement/internal/entities"
)

var (
	ErrInvalidEntityType     = fmt.Errorf("%w: invalid statement entity type", entities.ErrValidation)
	ErrInvalidEntityID       = fmt.Errorf("%w: invalid statement entity id", entities.ErrValidation)
	ErrEmptyOrderSet         = fmt.Errorf("%w: statement needs at least one order", entities.ErrValidation)
	ErrDuplicateOrder        = fmt.Errorf("%w: order listed twice", entities.ErrValidation)
	ErrInvalidPeriod         = fmt.Errorf("%w: period start is after its end", entities.ErrValidation)
	ErrMissingPaymentMethod  = fmt.Errorf("%w: payment method is required", entities.ErrValidation)
	ErrDriverStatementUnpaid = fmt.Errorf("%w: driver statements are issued paid by a cash collection", entities.ErrValidation)

	ErrStatementNotFound = fmt.Errorf("statement %w", entities.ErrNotFound)
	ErrOrderNotFound     = fmt.Errorf("order %w", entities.ErrNotFound)

	ErrOrderAlreadyClaimed = fmt.Errorf("%w: order already claimed by a statement", entities.ErrConflict)

	ErrOrderNotDelivered    = fmt.Errorf("%w: order is not delivered", entities.ErrConsistency)
	ErrOrderNotOwned        = fmt.Errorf("%w: order does not belong to statement entity", entities.ErrConsistency)
	ErrOrderOutsidePeriod   = fmt.Errorf("%w: order delivered outside the statement period", entities.ErrConsistency)
	ErrOrderInPaidStatement = fmt.Errorf("%w: order is inside a paid client statement, post a correction instead", entities.ErrConsistency)
	ErrOrderNotInStatement  = fmt.Errorf("%w: order is not part of the statement", entities.ErrConsistency)
)
