// Package fitnesstracker собирает приложение: хранилище, миграции, кеш,
// сервисы и HTTP-сервер с graceful shutdown.
package fitnesstracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/sabari-m/fitness-tracker/internal/cache"
	"github.com/sabari-m/fitness-tracker/internal/config"
	"github.com/sabari-m/fitness-tracker/internal/lib/jwt"
	"github.com/sabari-m/fitness-tracker/internal/lib/password"
	"github.com/sabari-m/fitness-tracker/internal/migrations"
	authservice "github.com/sabari-m/fitness-tracker/internal/services/auth"
	bmiservice "github.com/sabari-m/fitness-tracker/internal/services/bmi"
	profileservice "github.com/sabari-m/fitness-tracker/internal/services/profile"
	"github.com/sabari-m/fitness-tracker/internal/storage/repository"
)

// App — собранное приложение с HTTP-сервером и подключениями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения по конфигу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	hasher := password.New(cfg.BcryptCost)

	authService := authservice.NewAuthService(db, hasher, jwtMaker)
	profileService := profileservice.NewProfileService(db, cacheRedis, logger)
	bmiService := bmiservice.NewBMIService()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, profileService, bmiService)

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
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
// Подключения к базе и Redis закрываются на любом пути выхода.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

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
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) close() {
	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database connection", slog.Any("err", err))
	}
	if err := a.cache.Db.Close(); err != nil {
		a.logger.Error("failed to close redis connection", slog.Any("err", err))
	}
}
