package fee

import (
	"fmt"

	"settlement/internal/entities"
)

func validateAmounts(order entities.Order) error {
	amounts := []struct {
		name  string
		value entities.Money
	}{
		{"amount", order.Amount},
		{"fee", order.Fee},
		{"third party fee", order.ThirdPartyFee},
	}
	for _, amount := range amounts {
		if amount.value.HasNegative() {
			return fmt.Errorf("%w: %s %s", ErrNegativeAmount, amount.name, amount.value)
		}
		if err := amount.value.Validate(); err != nil {
			return fmt.Errorf("%s: %w", amount.name, err)
		}
	}
	return nil
}

func validateFeePayer(order entities.Order) error {
	if !order.FeePayer.Rule.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFeePayer, order.FeePayer.Rule)
	}
	if order.FeePayer.Rule != entities.FeeSplit {
		return nil
	}

	share := order.FeePayer.ClientShare
	if share.HasNegative() || order.Fee.Sub(share).HasNegative() {
		return fmt.Errorf("%w: share %s, fee %s", ErrInvalidSplitShare, share, order.Fee)
	}
	return share.Validate()
}

// Validate проверяет заказ до любых расчётов.
func Validate(order entities.Order) error {
	if !order.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderType, order.Type)
	}
	if err := validateAmounts(order); err != nil {
		return err
	}
	if err := validateFeePayer(order); err != nil {
		return err
	}
	if order.DriverAdvancedForClient && order.CompanyPrepaid {
		return ErrAdvancedAndPrepaid
	}
	if order.ThirdPartyID != nil && (order.DriverAdvancedForClient || order.CompanyPrepaid) {
		return ErrThirdPartyAdvanceMode
	}
	return nil
}
