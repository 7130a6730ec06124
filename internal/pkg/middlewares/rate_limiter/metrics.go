package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal отказы по шаблону роута: видно, какие операции упираются в лимит.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "settlement",
		Subsystem: "http",
		Name:      "rate_limit_exceeded_total",
		Help:      "Requests rejected by the token bucket",
	},
	[]string{"method", "route"},
)
