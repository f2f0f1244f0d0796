// Package portfolio собирает HTTP-сервис витрины: хранилище, каталог, авторизацию,
// события и метрики.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/portfolio-showcase/internal/cache"
	"github.com/magabrotheeeer/portfolio-showcase/internal/config"
	"github.com/magabrotheeeer/portfolio-showcase/internal/events"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore/firestore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore/postgres"
	kvredis "github.com/magabrotheeeer/portfolio-showcase/internal/kvstore/redis"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/metrics"
	"github.com/magabrotheeeer/portfolio-showcase/internal/migrations"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/auth"
	"github.com/magabrotheeeer/portfolio-showcase/internal/services/catalog"
	"github.com/magabrotheeeer/portfolio-showcase/internal/tokenstore"
)

const shutdownTimeout = 15 * time.Second

type closer struct {
	name  string
	close func() error
}

// App — собранное приложение.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []closer
}

// New подключает выбранные конфигурацией бэкенды и регистрирует маршруты.
// При ошибке уже открытые соединения закрываются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *App, err error) {
	const op = "portfolio.New"
	a := &App{logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	var redisCache *cache.Cache
	if cfg.RedisConnection.Address != "" {
		redisCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, closer{"redis", redisCache.Close})
	}

	storage, err := a.openStorage(ctx, cfg, redisCache)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	publisher, err := a.openPublisher(ctx, cfg.RabbitMQ)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	cat, err := catalog.New(ctx, storage, logger, catalogOptions(cfg.Catalog, publisher, m))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var revoked auth.RevokedTokens = tokenstore.NewMemory()
	if redisCache != nil {
		revoked = tokenstore.NewRedis(redisCache)
	}
	authService, err := auth.New(
		storage,
		cfg.Admin,
		jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL),
		revoked,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Catalog:   cat,
		Auth:      authService,
		Metrics:   m,
		Gatherer:  registry,
		RateLimit: cfg.RateLimit,
	})

	a.server = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	return a, nil
}

// catalogOptions дополняет настройки каталога по умолчанию значениями из конфига.
// Нулевая задержка в конфиге означает задержку по умолчанию.
func catalogOptions(cfg config.Catalog, publisher events.Publisher, m *metrics.Metrics) catalog.Options {
	opts := catalog.DefaultOptions()
	if cfg.ReadLatency > 0 {
		opts.ReadLatency = cfg.ReadLatency
	}
	opts.Seed = cfg.Seed
	opts.Publisher = publisher
	opts.Metrics = m
	return opts
}

// openStorage выбирает бэкенд хранения. Непустой firebase.api_key имеет приоритет
// над storage.driver: без файла сервисного аккаунта все операции отвечают
// kvstore.ErrNotImplemented.
func (a *App) openStorage(ctx context.Context, cfg *config.Config, redisCache *cache.Cache) (kvstore.Storage, error) {
	if cfg.Firebase.Configured() {
		if cfg.Firebase.CredentialsPath == "" {
			a.logger.Warn("firebase configured without credentials, storage operations are not implemented",
				slog.String("project_id", cfg.Firebase.ProjectID))
			return kvstore.Unimplemented{}, nil
		}
		fs, err := firestore.New(ctx, cfg.Firebase, cfg.Storage.FirestoreCollection)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closer{"firestore", fs.Close})
		a.logger.Info("using firestore storage", slog.String("project_id", cfg.Firebase.ProjectID))
		return fs, nil
	}

	switch cfg.Storage.Driver {
	case config.DriverFile:
		fileStorage, err := kvstore.NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		a.logger.Info("using file storage", slog.String("dir", cfg.Storage.Dir))
		return fileStorage, nil
	case config.DriverRedis:
		if redisCache == nil {
			return nil, errors.New("redis driver requires redis_connection.address")
		}
		a.logger.Info("using redis storage", slog.String("prefix", cfg.Storage.RedisPrefix))
		return kvredis.New(redisCache.Db, cfg.Storage.RedisPrefix), nil
	case config.DriverPostgres:
		pg, err := postgres.New(ctx, cfg.Storage.ConnectionString)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closer{"postgres", pg.Close})
		if err := migrations.Run(pg.DB, cfg.Storage.MigrationsPath); err != nil {
			return nil, err
		}
		a.logger.Info("using postgres storage")
		return pg, nil
	default:
		a.logger.Info("using in-memory storage")
		return kvstore.NewMemory(), nil
	}
}

// openPublisher подключается к RabbitMQ, если задан URL.
func (a *App) openPublisher(ctx context.Context, cfg config.RabbitMQ) (events.Publisher, error) {
	if cfg.URL == "" {
		return events.Noop{}, nil
	}
	conn, err := rabbitmq.Connect(ctx, cfg.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closer{"rabbitmq", conn.Close})

	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.CatalogQueues())
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closer{"rabbitmq channel", ch.Close})

	a.logger.Info("publishing catalog events", slog.String("exchange", cfg.Exchange))
	return events.NewAMQP(ch, cfg.Exchange), nil
}

// Run обслуживает запросы до отмены ctx, затем плавно останавливает сервер
// и закрывает соединения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close закрывает ресурсы в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			a.logger.Warn("failed to close resource", slog.String("resource", c.name), sl.Err(err))
		}
	}
	a.closers = nil
}
