package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/advithialva/expenso/internal/http/transaction"
	"github.com/advithialva/expenso/internal/ratelimit"
)

func New(limiter ratelimit.Limiter, transactionsAPI *transaction.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api/transactions", func(r chi.Router) {
		r.Use(RateLimit(limiter))
		r.Use(middleware.AllowContentType("application/json"))
		transactionsAPI.Routes(r)
	})

	return router
}
