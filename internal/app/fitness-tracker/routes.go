// Package fitnesstracker предоставляет маршруты для основного приложения.
package fitnesstracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sabari-m/fitness-tracker/internal/http/handlers/auth/login"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/auth/register"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/bmi/calculate"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/health"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/profile/get"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/profile/remove"
	"github.com/sabari-m/fitness-tracker/internal/http/handlers/profile/update"
	"github.com/sabari-m/fitness-tracker/internal/http/middlewarectx"
	"github.com/sabari-m/fitness-tracker/internal/lib/jwt"
	authservice "github.com/sabari-m/fitness-tracker/internal/services/auth"
	bmiservice "github.com/sabari-m/fitness-tracker/internal/services/bmi"
	profileservice "github.com/sabari-m/fitness-tracker/internal/services/profile"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.AuthService, profileService *profileservice.ProfileService,
	bmiService *bmiservice.BMIService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/bmi", calculate.New(logger, bmiService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/profile", get.New(logger, profileService).ServeHTTP)
			r.Put("/profile", update.New(logger, profileService).ServeHTTP)
			r.Delete("/profile", remove.New(logger, profileService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
