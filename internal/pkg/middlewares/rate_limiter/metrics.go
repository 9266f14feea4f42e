package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limit_exceeded_total",
		Help: "Total number of requests rejected with 429 by the rate limiter",
	},
	[]string{"method", "route"},
)
