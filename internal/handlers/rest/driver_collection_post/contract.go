//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_collection_post_test
package driver_collection_post

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
	CollectFromDriver(ctx context.Context, driverID int64, orderIDs []int64) (*entities.DriverCollection, error)
}
