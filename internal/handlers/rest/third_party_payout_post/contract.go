//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=third_party_payout_post_test
package third_party_payout_post

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
	PayThirdParty(ctx context.Context, thirdPartyID int64, amount entities.Money, memo string) (*entities.LedgerEntry, error)
}
