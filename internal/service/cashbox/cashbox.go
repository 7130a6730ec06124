package cashbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement/internal/entities"
)

// Cashbox дневная касса. Все изменения идут атомарным инкрементом в базе,
// без чтения текущих значений на стороне приложения.
type Cashbox struct {
	repository Repository
	dayFactory BusinessDayFactory
	txManager  TxManager
}

func New(repository Repository, dayFactory BusinessDayFactory, txManager TxManager) *Cashbox {
	return &Cashbox{
		repository: repository,
		dayFactory: dayFactory,
		txManager:  txManager,
	}
}

// ApplyDelta добавляет приход и расход к дню. Если строки дня нет, она создаётся
// с opening = closing последнего предыдущего дня. Отрицательные дельты допустимы
// только как откат ранее проведённых сумм.
//
// Когда день в прошлом, opening всех следующих дней сдвигается на ту же чистую сумму,
// чтобы цепочка closing(N) = opening(N+1) не рвалась.
func (c *Cashbox) ApplyDelta(ctx context.Context, day time.Time, cashIn, cashOut entities.Money) (*entities.CashboxDay, error) {
	if day.IsZero() {
		return nil, ErrMissingDay
	}
	if err := cashIn.Validate(); err != nil {
		return nil, fmt.Errorf("cash in: %w", err)
	}
	if err := cashOut.Validate(); err != nil {
		return nil, fmt.Errorf("cash out: %w", err)
	}

	day = truncateDay(day)

	var result *entities.CashboxDay
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = c.repository.Increment(ctx, day, cashIn, cashOut)
		if err != nil {
			return fmt.Errorf("increment cashbox day: %w", err)
		}

		net := cashIn.Sub(cashOut)
		if net.IsZero() {
			return nil
		}
		if _, err = c.repository.ShiftOpenings(ctx, day, net); err != nil {
			return fmt.Errorf("shift later openings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyToday ApplyDelta для текущего рабочего дня.
func (c *Cashbox) ApplyToday(ctx context.Context, cashIn, cashOut entities.Money) (*entities.CashboxDay, error) {
	return c.ApplyDelta(ctx, c.dayFactory.Today(), cashIn, cashOut)
}

// OpenToday заводит строку текущего дня, если её ещё нет.
func (c *Cashbox) OpenToday(ctx context.Context) (*entities.CashboxDay, error) {
	return c.ApplyDelta(ctx, c.dayFactory.Today(), entities.Money{}, entities.Money{})
}

// GetDay касса за день. Для дня без движений возвращается пустой день,
// открытый остатком последнего предыдущего дня. Ничего не записывает.
func (c *Cashbox) GetDay(ctx context.Context, day time.Time) (*entities.CashboxDay, error) {
	if day.IsZero() {
		return nil, ErrMissingDay
	}
	day = truncateDay(day)

	cashboxDay, err := c.repository.GetDay(ctx, day)
	if err == nil {
		return cashboxDay, nil
	}
	if !errors.Is(err, ErrDayNotFound) {
		return nil, fmt.Errorf("get cashbox day: %w", err)
	}

	var opening entities.Money
	previous, err := c.repository.LatestBefore(ctx, day)
	switch {
	case err == nil:
		opening = previous.Closing
	case errors.Is(err, ErrDayNotFound):
	default:
		return nil, fmt.Errorf("get previous cashbox day: %w", err)
	}

	return &entities.CashboxDay{
		Day:     day,
		Opening: opening,
		Closing: opening,
	}, nil
}

func truncateDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
