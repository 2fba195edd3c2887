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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/crime_observatory/internal/auth"
	"github.com/shenikar/crime_observatory/internal/config"
	v1 "github.com/shenikar/crime_observatory/internal/handler/http/v1"
	"github.com/shenikar/crime_observatory/internal/insight"
	"github.com/shenikar/crime_observatory/internal/jobs"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/privacy"
	"github.com/shenikar/crime_observatory/internal/repository"
	"github.com/shenikar/crime_observatory/internal/service"
	"github.com/shenikar/crime_observatory/internal/source"
	"github.com/shenikar/crime_observatory/internal/spreadsheet"
	"github.com/shenikar/crime_observatory/pkg/logger"
	"github.com/shenikar/crime_observatory/pkg/postgres"
	redisclient "github.com/shenikar/crime_observatory/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crime_observatory/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crime Observatory API
// @version 1.0
// @description Municipal crime observatory: incident ingestion, role-gated maps, statistics and insights.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	defer m.Close()

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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, postgres.Options{})
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

	// Авторизация
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	gate := auth.NewGate(tokens, log)

	// Инициализация репозиториев
	ingestionStore := repository.NewIngestionStore(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	statsRepo := repository.NewStatsRepository(dbpool)
	jobRepo := repository.NewJobLogRepository(dbpool)
	nationalRepo := repository.NewNationalStatsRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	proposalRepo := repository.NewProposalRepository(dbpool)

	// Фоновые задачи
	jobQueue := jobs.NewRedisQueue(redisClient)
	jobLock := jobs.NewRedisLock(redisClient, cfg.JobLockTTL)

	// Инициализация сервисов
	ingestionService := service.NewIngestionService(ingestionStore, spreadsheet.Reader{}, service.IngestionOptions{
		CheckpointEvery: cfg.IngestCheckpointEvery,
		DefaultPoint:    models.GeoPoint{Latitude: cfg.IngestDefaultLat, Longitude: cfg.IngestDefaultLon},
	}, log)
	incidentService := service.NewIncidentService(incidentRepo, gate, privacy.NewFilter(cfg.JitterDegrees), log)
	statsService := service.NewStatsService(statsRepo, gate, cfg.Population, log)
	insightService := insight.NewService(statsService, insight.NewGenerator(insight.GeneratorConfig{
		Provider:      cfg.AIProvider,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		MistralAPIKey: cfg.MistralAPIKey,
		Timeout:       cfg.AITimeout,
	}), insight.NewRedisCache(redisClient, cfg.InsightCacheTTL), log)
	jobService := service.NewJobService(jobRepo, jobQueue, jobLock, log)

	// Инициализация и запуск воркера фоновых загрузок
	runners := map[string]jobs.Runner{
		models.JobKindNationalStats: jobs.NewNationalStatsRunner(
			source.Catalog(cfg.NationalSourceURLs),
			source.NewDownloader(cfg.SourceTimeout),
			source.NewProcessor(),
			nationalRepo,
			log,
		),
	}
	notifier := jobs.NewWebhookNotifier(jobs.WebhookOptions{
		URL:        cfg.WebhookURL,
		Secret:     cfg.WebhookSecret,
		Timeout:    cfg.WebhookTimeout,
		MaxRetries: cfg.WebhookMaxRetries,
		BaseDelay:  cfg.WebhookBaseDelay,
	}, log)
	worker := jobs.NewWorker(redisClient, jobRepo, jobLock, runners, notifier, log, jobs.WorkerOptions{
		JobTimeout: cfg.JobTimeout,
	})
	workerDone := worker.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Auth:          service.NewAuthService(userRepo, tokens, log),
		Ingestion:     ingestionService,
		Incidents:     incidentService,
		Stats:         statsService,
		Narrative:     insightService,
		Jobs:          jobService,
		NationalStats: service.NewNationalStatsService(nationalRepo, log),
		Proposals:     service.NewProposalService(proposalRepo, log),
	}, gate, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.MetricsMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем завершения текущей задачи
	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Job worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
