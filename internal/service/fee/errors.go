package fee

import (
	"fmt"

	"settlement/internal/entities"
)

var (
	ErrNegativeAmount    = fmt.Errorf("%w: negative amount", entities.ErrValidation)
	ErrInvalidOrderType  = fmt.Errorf("%w: invalid order type", entities.ErrValidation)
	ErrInvalidFeePayer   = fmt.Errorf("%w: invalid fee payer rule", entities.ErrValidation)
	ErrInvalidSplitShare = fmt.Errorf("%w: client share must be within delivery fee", entities.ErrValidation)

	ErrAdvancedAndPrepaid    = fmt.Errorf("%w: order cannot be both driver advanced and company prepaid", entities.ErrConsistency)
	ErrThirdPartyAdvanceMode = fmt.Errorf("%w: third party order cannot be advanced or prepaid", entities.ErrConsistency)
)
