// Package jobmatch предоставляет маршруты для основного приложения.
package jobmatch

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kruglovmaksim/jobmatch/internal/http/handlers/auth/login"
	"github.com/kruglovmaksim/jobmatch/internal/http/handlers/auth/me"
	"github.com/kruglovmaksim/jobmatch/internal/http/handlers/auth/register"
	"github.com/kruglovmaksim/jobmatch/internal/http/handlers/health"
	settingslist "github.com/kruglovmaksim/jobmatch/internal/http/handlers/settings/list"
	settingsupdate "github.com/kruglovmaksim/jobmatch/internal/http/handlers/settings/update"
	"github.com/kruglovmaksim/jobmatch/internal/http/handlers/theme"
	vacancycreate "github.com/kruglovmaksim/jobmatch/internal/http/handlers/vacancy/create"
	vacancylistall "github.com/kruglovmaksim/jobmatch/internal/http/handlers/vacancy/listall"
	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
	"github.com/kruglovmaksim/jobmatch/internal/models"
	authservice "github.com/kruglovmaksim/jobmatch/internal/services/auth"
	themeservice "github.com/kruglovmaksim/jobmatch/internal/services/theme"
	vacancyservice "github.com/kruglovmaksim/jobmatch/internal/services/vacancy"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	tokenParser middlewarectx.TokenParser,
	authService *authservice.AuthService,
	vacancyService *vacancyservice.VacancyService,
	themeService *themeservice.ThemeService,
	pinger health.Pinger,
) {
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
		r.Get("/theme", theme.New(logger, themeService).ServeHTTP)

		// Группа с сессионной аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(tokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/auth/me", me.New(logger, authService).ServeHTTP)
			r.Get("/vacancies/all", vacancylistall.New(logger, vacancyService).ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleEmployer))
				r.Post("/vacancies", vacancycreate.New(logger, vacancyService).ServeHTTP)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin))
				r.Get("/admin/settings", settingslist.New(logger, themeService).ServeHTTP)
				r.Put("/admin/settings", settingsupdate.New(logger, themeService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, pinger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
