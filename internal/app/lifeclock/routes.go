// Package lifeclock собирает HTTP-приложение: маршруты, зависимости и запуск сервера.
package lifeclock

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/lifeclock/docs"
	"github.com/magabrotheeeer/lifeclock/internal/http/handlers/estimate/calculate"
	"github.com/magabrotheeeer/lifeclock/internal/http/handlers/estimate/tables"
	"github.com/magabrotheeeer/lifeclock/internal/http/handlers/health"
	"github.com/magabrotheeeer/lifeclock/internal/http/middlewarectx"
)

// Deps — зависимости, нужные маршрутам.
type Deps struct {
	Estimates calculate.Service
	Limiter   *rate.Limiter
	Metrics   http.Handler
	Checkers  map[string]health.Checker
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tables", tables.New(logger).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
			r.Post("/estimates", calculate.New(logger, deps.Estimates).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, deps.Checkers).ServeHTTP)
	r.Handle("/metrics", deps.Metrics)
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
