package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID puts the caller's request id, or a fresh one, into the context
// and echoes it back in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}
