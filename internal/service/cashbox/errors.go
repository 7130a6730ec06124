package cashbox

import (
	"fmt"

	"settlement/internal/entities"
)

var (
	ErrMissingDay = fmt.Errorf("%w: cashbox day is required", entities.ErrValidation)

	ErrDayNotFound      = fmt.Errorf("cashbox day %w", entities.ErrNotFound)
	ErrNegativeCashFlow = fmt.Errorf("%w: cash in/out of the day would become negative", entities.ErrConsistency)
)
