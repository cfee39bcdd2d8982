package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("duration", time.Since(start)),
		}

		switch {
		case ww.Status() >= http.StatusInternalServerError:
			logger.Error(r.Context(), "http request", fields...)
		case ww.Status() >= http.StatusBadRequest:
			logger.Warn(r.Context(), "http request", fields...)
		default:
			logger.Info(r.Context(), "http request", fields...)
		}
	})
}
