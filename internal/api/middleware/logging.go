package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку на каждый запрос; 5xx уходят в Error
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s - %d in %s", r.Method, r.URL.Path, rec.status, time.Since(start))
				return
			}
			logger.Info("%s %s - %d in %s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
