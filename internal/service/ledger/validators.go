package ledger

import (
	"fmt"
	"strings"

	"settlement/internal/entities"
)

func validateEntry(entry entities.LedgerEntry) error {
	switch entry.Kind {
	case entities.EntryDriver, entities.EntryClient, entities.EntryThirdParty:
		if entry.PartyID == nil || *entry.PartyID <= 0 {
			return fmt.Errorf("%w: %s entry", ErrMissingParty, entry.Kind)
		}
	case entities.EntryAccounting:
		if entry.Category == nil || strings.TrimSpace(string(*entry.Category)) == "" {
			return ErrMissingCategory
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEntryKind, entry.Kind)
	}

	if !entry.Direction.ValidFor(entry.Kind) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidDirection, entry.Direction, entry.Kind)
	}
	if !entry.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositiveAmount, entry.Amount)
	}
	return entry.Amount.Validate()
}

func validateParty(party entities.Party) error {
	if !party.Kind.IsValid() || party.ID <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParty, party)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
