package metrics

import "settlement/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
