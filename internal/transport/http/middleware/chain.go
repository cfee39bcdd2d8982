package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Chain is the server middleware stack. Recoverer sits inside Logging so a
// recovered panic is still logged with its request id and 500 status.
func Chain() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RequestID,
		Logging,
		chimw.Recoverer,
	}
}
