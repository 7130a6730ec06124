package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket пропускает до capacity запросов залпом и пополняется со скоростью
// refillRate токенов в секунду. Токены копятся дробно, поэтому медленная скорость
// (меньше одного токена за вызов) тоже работает.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени, нужен в тестах.
func WithClock(now func() time.Time) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.lastRefill = tb.now()
	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
