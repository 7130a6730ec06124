//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_reversal_post_test
package order_reversal_post

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
	ReverseOrderSettlement(ctx context.Context, orderID int64) (*entities.ReversalResult, error)
}
