// Package gymapp предоставляет маршруты для основного приложения.
package gymapp

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/weespies87/gymapp/internal/http/handlers/auth/login"
	"github.com/weespies87/gymapp/internal/http/handlers/auth/profile"
	"github.com/weespies87/gymapp/internal/http/handlers/auth/register"
	cardioadd "github.com/weespies87/gymapp/internal/http/handlers/cardio/add"
	cardiotoday "github.com/weespies87/gymapp/internal/http/handlers/cardio/today"
	"github.com/weespies87/gymapp/internal/http/handlers/health"
	measurementsadd "github.com/weespies87/gymapp/internal/http/handlers/measurements/add"
	measurementslist "github.com/weespies87/gymapp/internal/http/handlers/measurements/list"
	workoutadd "github.com/weespies87/gymapp/internal/http/handlers/workout/add"
	workoutlist "github.com/weespies87/gymapp/internal/http/handlers/workout/list"
	workouttoday "github.com/weespies87/gymapp/internal/http/handlers/workout/today"
	"github.com/weespies87/gymapp/internal/http/middlewarectx"
	"github.com/weespies87/gymapp/internal/lib/jwt"
	authservice "github.com/weespies87/gymapp/internal/services/auth"
	trainingservice "github.com/weespies87/gymapp/internal/services/training"
	"github.com/weespies87/gymapp/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *storage.Storage, authService *authservice.AuthService, trainingService *trainingservice.TrainingService, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Gymapp Online"))
	})
	r.Get("/health", health.New(logger, db).ServeHTTP)

	r.Route("/auth", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Профиль доступен только с валидным токеном
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/profile", profile.New(logger, authService).ServeHTTP)
		})
	})

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/workouts", workoutadd.New(logger, trainingService).ServeHTTP)
		r.Get("/workouts", workoutlist.New(logger, trainingService).ServeHTTP)
		r.Get("/workouts/today", workouttoday.New(logger, trainingService).ServeHTTP)
		r.Post("/cardio", cardioadd.New(logger, trainingService).ServeHTTP)
		r.Get("/cardio/today", cardiotoday.New(logger, trainingService).ServeHTTP)
		r.Post("/measurements", measurementsadd.New(logger, trainingService).ServeHTTP)
		r.Get("/measurements", measurementslist.New(logger, trainingService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
