package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"settlement/internal/entities"
)

// Money сумма в двух валютах. USD строкой с двумя знаками, чтобы не терять центы на float.
type Money struct {
	USD string `json:"usd"`
	LBP int64  `json:"lbp"`
}

func MoneyFromEntity(m entities.Money) Money {
	return Money{
		USD: m.USD.StringFixed(2),
		LBP: m.LBP,
	}
}

// ToEntity пустая строка USD означает ноль.
func (m Money) ToEntity() (entities.Money, error) {
	usd := decimal.Zero
	if m.USD != "" {
		var err error
		usd, err = decimal.NewFromString(m.USD)
		if err != nil {
			return entities.Money{}, fmt.Errorf("%w: usd amount %q", entities.ErrValidation, m.USD)
		}
	}

	money := entities.Money{USD: usd, LBP: m.LBP}
	if err := money.Validate(); err != nil {
		return entities.Money{}, err
	}
	return money, nil
}

func moneyPtr(m *Money) (*entities.Money, error) {
	if m == nil {
		return nil, nil
	}
	money, err := m.ToEntity()
	if err != nil {
		return nil, err
	}
	return &money, nil
}
