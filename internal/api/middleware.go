package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/hammamikhairi/cookbook/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// requestLogger tags each request with an ID (reusing an incoming
// X-Request-Id) and logs one line per request once it completes.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.With("request_id", id).Info("%s %s -> %d (%dB, %s)",
					r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start).Round(time.Microsecond))
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
