package zap_adapter

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"settlement/pkg/logger"
)

type ZapAdapter struct {
	logger *zap.Logger
}

// NewZapAdapter собирает production JSON логгер в stdout.
// level принимает значения zap ("debug", "info", "warn", "error"), пустая строка = info.
func NewZapAdapter(level string) (*ZapAdapter, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		config.Level = lvl
	}

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return New(zapLogger), nil
}

func New(zapLogger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: zapLogger}
}

// NewNop логгер для тестов и утилит, который ничего не пишет.
func NewNop() *ZapAdapter {
	return New(zap.NewNop())
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return New(z.logger.With(convertFields(fields)...))
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

// convertFields суммы (decimal, Money) и статусы пишутся через String(),
// иначе zap.Any разворачивает внутренности decimal.Decimal в объект.
func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			zapFields = append(zapFields, zap.NamedError(f.Key, v))
		case string:
			zapFields = append(zapFields, zap.String(f.Key, v))
		case int64:
			zapFields = append(zapFields, zap.Int64(f.Key, v))
		case fmt.Stringer:
			zapFields = append(zapFields, zap.Stringer(f.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(f.Key, v))
		}
	}
	return zapFields
}
