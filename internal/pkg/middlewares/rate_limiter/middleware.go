package rate_limiter

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
	"shipment-service/internal/pkg/middlewares/metrics"
	"shipment-service/pkg/logger"
)

// NewLimiter token bucket: qps токенов в секунду, не больше burst за раз.
func NewLimiter(qps, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"message":"Rate limit exceeded. Try again later."}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
