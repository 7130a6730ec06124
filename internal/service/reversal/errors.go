package reversal

import (
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/statement"
)

var (
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", entities.ErrValidation)

	ErrOrderNotFound = fmt.Errorf("order %w", entities.ErrNotFound)

	// ErrOrderInPaidStatement тот же sentinel, что возвращает statement.Unclaim.
	ErrOrderInPaidStatement = statement.ErrOrderInPaidStatement
	ErrWalletMismatch       = fmt.Errorf("%w: reversed wallet delta differs from the posted one", entities.ErrConsistency)
)
