package remittance

import (
	"fmt"

	"settlement/internal/entities"
)

var (
	ErrInvalidDriverID     = fmt.Errorf("%w: invalid driver id", entities.ErrValidation)
	ErrInvalidThirdPartyID = fmt.Errorf("%w: invalid third party id", entities.ErrValidation)
	ErrEmptyOrderSet       = fmt.Errorf("%w: at least one order is required", entities.ErrValidation)
	ErrDuplicateOrder      = fmt.Errorf("%w: order listed twice", entities.ErrValidation)
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be positive", entities.ErrValidation)
	ErrMissingMemo         = fmt.Errorf("%w: memo is required", entities.ErrValidation)

	ErrOrderNotFound = fmt.Errorf("order %w", entities.ErrNotFound)

	ErrOrderNotDelivered     = fmt.Errorf("%w: order is not delivered", entities.ErrConsistency)
	ErrOrderNotAssigned      = fmt.Errorf("%w: order is not assigned to the driver", entities.ErrConsistency)
	ErrOrderAlreadyCollected = fmt.Errorf("%w: cash for the order is already collected", entities.ErrConsistency)
	ErrThirdPartyOrder       = fmt.Errorf("%w: third party orders are not collected from drivers", entities.ErrConsistency)
	ErrNotThirdPartyOrder    = fmt.Errorf("%w: order is not delivered by the third party", entities.ErrConsistency)
	ErrOrderAlreadySettled   = fmt.Errorf("%w: third party order is already settled", entities.ErrConsistency)
	ErrRemittanceMismatch    = fmt.Errorf("%w: remitted amount differs from the orders due", entities.ErrConsistency)
	ErrNegativeThirdPartyDue = fmt.Errorf("%w: third party fee exceeds collected cash", entities.ErrConsistency)
)
