package recovery

import (
	"net/http"
	"runtime/debug"

	"shipment-service/pkg/logger"
)

// Middleware превращает панику обработчика в 500 с общим сообщением,
// детали остаются только в логе.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("recover", rec),
					logger.NewField("stack", string(debug.Stack())),
				).Error("handler panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"Unexpected error"}`))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
