package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const checkTimeout = 2 * time.Second

// Checker проверка зависимости, например pool.Ping.
type Checker func(ctx context.Context) error

type Handler struct {
	isShuttingDown *atomic.Bool
	checks         []Checker
}

func New(isShuttingDown *atomic.Bool, checks ...Checker) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		checks:         checks,
	}
}

// ServeHTTP 204 когда сервис готов, 503 во время остановки или если
// недоступна зависимость.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, check := range h.checks {
		if err := check(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
