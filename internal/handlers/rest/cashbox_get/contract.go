//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cashbox_get_test
package cashbox_get

import (
	"context"
	"time"

	"settlement/internal/entities"
	"settlement/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDay(ctx context.Context, day time.Time) (*entities.CashboxDay, error)
}
