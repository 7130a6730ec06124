//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounting_record_post_test
package accounting_record_post

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
	RecordAccounting(ctx context.Context, record entities.AccountingRecord) (*entities.LedgerEntry, error)
}
