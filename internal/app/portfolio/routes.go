package portfolio

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/portfolio-showcase/internal/config"
	appcreate "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/app/create"
	applist "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/app/list"
	appread "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/app/read"
	appremove "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/app/remove"
	appupdate "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/app/update"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/catalog/categories"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/catalog/stats"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/health"
	projectcreate "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/project/create"
	projectlist "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/project/list"
	projectread "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/project/read"
	projectremove "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/project/remove"
	projectupdate "github.com/magabrotheeeer/portfolio-showcase/internal/http/handlers/project/update"
	"github.com/magabrotheeeer/portfolio-showcase/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-showcase/internal/metrics"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/auth"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/catalog"
)

// Deps — зависимости, нужные маршрутам.
type Deps struct {
	Catalog   *catalog.Catalog
	Auth      *auth.Service
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	RateLimit config.RateLimit
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics(deps.Metrics),
	)

	r.Get("/health", health.New().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки витрины
		r.Get("/categories", categories.New().ServeHTTP)
		r.Get("/projects", projectlist.New(logger, deps.Catalog.Projects).ServeHTTP)
		r.Get("/projects/{id}", projectread.New(logger, deps.Catalog.Projects).ServeHTTP)
		r.Get("/apps", applist.New(logger, deps.Catalog.Apps).ServeHTTP)
		r.Get("/apps/{id}", appread.New(logger, deps.Catalog.Apps).ServeHTTP)

		// Вход и регистрация под ограничением частоты
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.RateLimit.RPS, deps.RateLimit.Burst))
			r.Post("/login", login.New(logger, deps.Auth).ServeHTTP)
			r.Post("/signup", signup.New(logger, deps.Auth).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Auth, logger))
			r.Post("/logout", logout.New(logger, deps.Auth).ServeHTTP)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.RequireAdmin(logger))
				r.Get("/stats", stats.New(logger, deps.Catalog).ServeHTTP)

				r.Post("/projects", projectcreate.New(logger, deps.Catalog.Projects).ServeHTTP)
				r.Patch("/projects/{id}", projectupdate.New(logger, deps.Catalog.Projects).ServeHTTP)
				r.Delete("/projects/{id}", projectremove.New(logger, deps.Catalog.Projects).ServeHTTP)

				r.Post("/apps", appcreate.New(logger, deps.Catalog.Apps).ServeHTTP)
				r.Patch("/apps/{id}", appupdate.New(logger, deps.Catalog.Apps).ServeHTTP)
				r.Delete("/apps/{id}", appremove.New(logger, deps.Catalog.Apps).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
