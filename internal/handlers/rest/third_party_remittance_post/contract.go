//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=third_party_remittance_post_test
package third_party_remittance_post

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
	ReceiveThirdPartyRemittance(ctx context.Context, thirdPartyID int64, orderIDs []int64, amount entities.Money) (*entities.ThirdPartyRemittance, error)
}
