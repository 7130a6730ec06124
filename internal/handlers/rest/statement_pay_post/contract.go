//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statement_pay_post_test
package statement_pay_post

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
	MarkPaid(ctx context.Context, id int64, method string, notes *string) (*entities.Statement, error)
}
