package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"settlement/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) newBackOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}

// ExecuteWithContext повторяет fn с экспоненциальной задержкой.
// Ошибки, для которых ShouldRetry вернул false, возвращаются сразу и без OnRetry.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.config.OnRetry != nil {
		notify = func(err error, wait time.Duration) {
			r.config.OnRetry(err, wait)
		}
	}

	return backoff.RetryNotify(operation, r.newBackOff(ctx), notify)
}
