package ledger

import (
	"fmt"

	"settlement/internal/entities"
)

var (
	ErrInvalidEntryKind  = fmt.Errorf("%w: invalid entry kind", entities.ErrValidation)
	ErrInvalidDirection  = fmt.Errorf("%w: direction does not match entry kind", entities.ErrValidation)
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", entities.ErrValidation)
	ErrMissingParty      = fmt.Errorf("%w: party is required", entities.ErrValidation)
	ErrMissingCategory   = fmt.Errorf("%w: accounting category is required", entities.ErrValidation)
	ErrMissingMemo       = fmt.Errorf("%w: memo is required", entities.ErrValidation)
	ErrInvalidParty      = fmt.Errorf("%w: invalid party", entities.ErrValidation)

	ErrEntryNotFound = fmt.Errorf("ledger entry %w", entities.ErrNotFound)
)
