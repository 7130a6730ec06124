//go:generate mockgen -source=cashbox_open.go -destination=./cashbox_open_mocks_test.go -package=cashbox_open_test
package cashbox_open

import (
	"context"
	"time"

	"settlement/internal/entities"
	"settlement/pkg/logger"
)

const openTimeout = 30 * time.Second

type Service interface {
	OpenToday(ctx context.Context) (*entities.CashboxDay, error)
}

// CashboxOpen заводит кассовый день сразу после полуночи, перенося closing
// предыдущего дня в opening. Без неё день появится при первом движении денег.
type CashboxOpen struct {
	log      logger.Logger
	service  Service
	schedule string
}

func NewCashboxOpen(log logger.Logger, service Service, schedule string) *CashboxOpen {
	return &CashboxOpen{
		log:      log,
		service:  service,
		schedule: schedule,
	}
}

// TTL не используется, задача идёт по расписанию.
func (c *CashboxOpen) TTL() time.Duration {
	return 24 * time.Hour
}

func (c *CashboxOpen) Schedule() string {
	return c.schedule
}

func (c *CashboxOpen) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	day, err := c.service.OpenToday(ctxWithTimeout)
	if err != nil {
		return err
	}

	c.log.With(
		logger.NewField("day", day.Day.Format(time.DateOnly)),
		logger.NewField("opening", day.Opening.String()),
	).Info("cashbox day opened")

	return nil
}

func (c *CashboxOpen) Info() string {
	return "cashbox open"
}
