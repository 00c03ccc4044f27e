// Package jobmatch собирает основное приложение: хранилище, кеш,
// брокер уведомлений, сервисы и HTTP-сервер.
package jobmatch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/kruglovmaksim/jobmatch/internal/cache"
	"github.com/kruglovmaksim/jobmatch/internal/config"
	libjwt "github.com/kruglovmaksim/jobmatch/internal/lib/jwt"
	"github.com/kruglovmaksim/jobmatch/internal/migrations"
	"github.com/kruglovmaksim/jobmatch/internal/rabbitmq"
	authservice "github.com/kruglovmaksim/jobmatch/internal/services/auth"
	themeservice "github.com/kruglovmaksim/jobmatch/internal/services/theme"
	vacancyservice "github.com/kruglovmaksim/jobmatch/internal/services/vacancy"
	"github.com/kruglovmaksim/jobmatch/internal/storage/repository"
)

// App инкапсулирует запущенный HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   *amqp.Connection
}

// New создает приложение: подключается к PostgreSQL, Redis и RabbitMQ,
// применяет миграции и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	amqpConn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	amqpChannel, err := rabbitmq.SetupChannel(amqpConn, rabbitmq.GetNotificationQueues())
	if err != nil {
		return nil, err
	}

	jwtMaker := libjwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	vacancyService := vacancyservice.NewVacancyService(db, cacheRedis, rabbitmq.NewVacancyPublisher(amqpChannel), logger)
	themeService := themeservice.NewThemeService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, vacancyService, themeService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.amqp.Close()
		_ = a.db.DB.Close()
		return err
	}
}
