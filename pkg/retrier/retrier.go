package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения, останавливает только MaxElapsedTime
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}

// Ping конфиг для проверки соединения с postgres/kafka на старте.
func Ping() Config {
	return Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  15 * time.Second,
		Randomization:   0.3,
		Multiplier:      2,
	}
}

// Broker конфиг для подключения к kafka: брокер поднимается дольше базы.
func Broker() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
