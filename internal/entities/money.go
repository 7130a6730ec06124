package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "USD"
	LBP Currency = "LBP"
)

func (c Currency) String() string {
	return string(c)
}

// usdScale - доллары храним с точностью до цента.
const usdScale = 2

// Money двухвалютная сумма. USD и LBP никогда не складываются и не конвертируются между собой,
// все операции покомпонентные.
type Money struct {
	USD decimal.Decimal
	LBP int64
}

func NewMoney(usd decimal.Decimal, lbp int64) Money {
	return Money{USD: usd.Round(usdScale), LBP: lbp}
}

// USDCents удобный конструктор для тестов и констант: USDCents(1250) = $12.50.
func USDCents(cents int64) Money {
	return Money{USD: decimal.New(cents, -usdScale)}
}

func LBPAmount(lbp int64) Money {
	return Money{USD: decimal.Zero, LBP: lbp}
}

func (m Money) Add(o Money) Money {
	return Money{USD: m.USD.Add(o.USD), LBP: m.LBP + o.LBP}
}

func (m Money) Sub(o Money) Money {
	return Money{USD: m.USD.Sub(o.USD), LBP: m.LBP - o.LBP}
}

func (m Money) Neg() Money {
	return Money{USD: m.USD.Neg(), LBP: -m.LBP}
}

func (m Money) IsZero() bool {
	return m.USD.IsZero() && m.LBP == 0
}

// IsNegative true, если обе компоненты неположительные и хотя бы одна отрицательна.
func (m Money) IsNegative() bool {
	return !m.IsZero() && m.USD.Sign() <= 0 && m.LBP <= 0
}

// HasNegative true, если хотя бы одна компонента меньше нуля.
func (m Money) HasNegative() bool {
	return m.USD.Sign() < 0 || m.LBP < 0
}

// IsPositive true, если обе компоненты неотрицательные и сумма не нулевая.
func (m Money) IsPositive() bool {
	return !m.IsZero() && !m.HasNegative()
}

func (m Money) Equal(o Money) bool {
	return m.USD.Equal(o.USD) && m.LBP == o.LBP
}

// Of возвращает компоненту в одной валюте, USD как decimal, LBP как целое.
func (m Money) Of(currency Currency) Money {
	switch currency {
	case USD:
		return Money{USD: m.USD}
	case LBP:
		return Money{USD: decimal.Zero, LBP: m.LBP}
	default:
		return Money{}
	}
}

// Split раскладывает знаковую дельту на приход и расход: положительные компоненты в in,
// модули отрицательных в out. Валюты раскладываются независимо.
func (m Money) Split() (in, out Money) {
	in, out = Money{USD: decimal.Zero}, Money{USD: decimal.Zero}
	if m.USD.Sign() >= 0 {
		in.USD = m.USD
	} else {
		out.USD = m.USD.Neg()
	}
	if m.LBP >= 0 {
		in.LBP = m.LBP
	} else {
		out.LBP = -m.LBP
	}
	return in, out
}

func (m Money) Validate() error {
	if !m.USD.Equal(m.USD.Round(usdScale)) {
		return fmt.Errorf("%w: usd amount %s has more than %d fractional digits", ErrValidation, m.USD, usdScale)
	}
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("$%s / %d LBP", m.USD.StringFixed(usdScale), m.LBP)
}
