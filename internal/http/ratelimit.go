package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/advithialva/expenso/internal/ratelimit"
)

// RateLimit rejects requests once the shared quota is exhausted. A
// limiter failure rejects the request too; admission control never
// fails open.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Check(r.Context())
			if err != nil {
				slog.Error("rate limiter check failed", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal Server Error")

				return
			}

			if !allowed {
				writeMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := struct {
		Message string `json:"message"`
	}{Message: message}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
