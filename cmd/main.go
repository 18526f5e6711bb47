package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/election_monitoring/internal/config"
	v1 "github.com/shenikar/election_monitoring/internal/handler/http/v1"
	"github.com/shenikar/election_monitoring/internal/repository"
	"github.com/shenikar/election_monitoring/internal/store"
	"github.com/shenikar/election_monitoring/internal/webhook"
	"github.com/shenikar/election_monitoring/pkg/logger"
	"github.com/shenikar/election_monitoring/pkg/postgres"
	redisclient "github.com/shenikar/election_monitoring/pkg/redis"
	"github.com/shenikar/election_monitoring/pkg/sqlite"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/election_monitoring/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Election Monitoring System API
// @version 1.0
// @description Election monitoring portal: incidents, fraud reports, analyst reports and booth results.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openStorage подключает выбранный бэкенд; cleanup закрывает его соединения
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger, redisClient *goredis.Client) (store.Storage, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		return repository.NewMemoryStorage(), noop, nil

	case config.BackendFile:
		fs, err := repository.NewFileStorage(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil

	case config.BackendSQLite:
		db, err := sqlite.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		ss, err := repository.NewSQLiteStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return ss, func() { db.Close() }, nil

	case config.BackendPostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, noop, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresStorage(dbpool), dbpool.Close, nil

	case config.BackendRedis:
		return repository.NewRedisStorage(redisClient, cfg.RedisKeyPrefix), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis нужен для бэкенда redis и для очереди событий
	var redisClient *goredis.Client
	if cfg.NeedsRedis() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	storage, closeStorage, err := openStorage(ctx, cfg, log, redisClient)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer closeStorage()
	log.WithField("backend", cfg.StorageBackend).Info("Storage ready")

	opts := []store.Option{}
	if cfg.EventsEnabled {
		// Изменения уходят в очередь, воркер доставляет их на вебхук
		opts = append(opts, store.WithNotifier(webhook.NewRedisPublisher(redisClient)))
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация хранилища состояния портала
	st := store.New(ctx, storage, log, opts...)

	// Инициализация хэндлеров
	handler := v1.NewHandler(st, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
