//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_due_get_test
package order_due_get

import (
	"context"

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
	ComputeDue(ctx context.Context, id int64) (entities.Money, error)
}
