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

	"github.com/gtawatch/incident-watch/internal/adapter/geoapify"
	"github.com/gtawatch/incident-watch/internal/adapter/openrouter"
	"github.com/gtawatch/incident-watch/internal/config"
	v1 "github.com/gtawatch/incident-watch/internal/handler/http/v1"
	"github.com/gtawatch/incident-watch/internal/repository"
	"github.com/gtawatch/incident-watch/internal/service"
	"github.com/gtawatch/incident-watch/internal/stream"
	"github.com/gtawatch/incident-watch/internal/webhook"
	"github.com/gtawatch/incident-watch/pkg/logger"
	"github.com/gtawatch/incident-watch/pkg/postgres"
	redisclient "github.com/gtawatch/incident-watch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/gtawatch/incident-watch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Watch API
// @version 1.0
// @description Anonymous incident reporting service for the Greater Toronto Area: report wizard, live incident feed, safety guidance and emergency service lookup.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Живая лента: публикация вставок через Redis pub/sub и раздача по SSE
	hub := stream.NewHub()
	streamListener := stream.NewListener(redisClient, hub, log)
	streamListener.Start(ctx)
	streamPublisher := stream.NewRedisPublisher(redisClient)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Клиенты внешних API
	geocoder := geoapify.NewClient(cfg.GeoapifyAPIKey, cfg.GeocodeTimeout, log)
	guidanceClient := openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.GuidanceModel, cfg.GuidanceTimeout, log)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.DraftTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, streamPublisher, webhookPublisher)
	reportService := service.NewReportService(draftRepo, incidentService, geocoder, log, cfg)
	guidanceService := service.NewGuidanceService(guidanceClient, log)
	locationService := service.NewLocationService(geocoder, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, reportService, guidanceService, locationService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
