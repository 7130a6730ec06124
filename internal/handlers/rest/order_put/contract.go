//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_put_test
package order_put

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
	UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}
