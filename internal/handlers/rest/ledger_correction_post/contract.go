//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_correction_post_test
package ledger_correction_post

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
	PostCorrection(ctx context.Context, correction entities.Correction) (*entities.LedgerEntry, error)
}
