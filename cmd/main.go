package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/telecom_outage_system/internal/adapter"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/crowd"
	"github.com/shenikar/telecom_outage_system/internal/events"
	v1 "github.com/shenikar/telecom_outage_system/internal/handler/http/v1"
	"github.com/shenikar/telecom_outage_system/internal/ingest"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/internal/repository"
	"github.com/shenikar/telecom_outage_system/internal/scheduler"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/logger"
	"github.com/shenikar/telecom_outage_system/pkg/postgres"
	redisclient "github.com/shenikar/telecom_outage_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/telecom_outage_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Telecom Outage System API
// @version 1.0
// @description Reconciled telecom outage reports for Swedish mobile operators.
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

	m, err := migrate.New(
		cfg.MigrationsPath,
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

// newPublisher выбирает приемник событий смены статуса по EVENTS_SINK
func newPublisher(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (events.Publisher, func()) {
	switch cfg.EventsSink {
	case "kafka":
		p := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
		return p, func() {
			if err := p.Close(); err != nil {
				log.WithError(err).Warn("Failed to close kafka writer")
			}
		}
	case "log":
		return events.NewLogPublisher(log), func() {}
	default:
		return events.NewRedisPublisher(redisClient), func() {}
	}
}

func main() {
	job := flag.String("job", "serve", "what to run: serve, ingest, hotspots or cleanup")
	flag.Parse()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	clock := clockwork.NewRealClock()

	// Контекст для graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
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
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()
	registry := adapter.DefaultRegistry(clock)

	// Инициализация репозиториев
	referenceRepo := repository.NewReferenceRepository(dbpool)
	if err := referenceRepo.Seed(ctx, registry.Operators(), region.Seed()); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	outageRepo := repository.NewOutageRepository(dbpool)
	reportRepo := repository.NewReportRepository(dbpool)
	analyticsRepo := repository.NewAnalyticsRepository(dbpool)
	retentionRepo := repository.NewRetentionRepository(dbpool)
	cache := repository.NewCache(redisClient, cfg.OutageCacheTTL)

	publisher, closePublisher := newPublisher(cfg, redisClient, log)
	defer closePublisher()

	var signalSource crowd.SignalSource
	if cfg.CrowdFeedURL != "" {
		signalSource = crowd.NewHTTPSignalSource(cfg.CrowdFeedName, cfg.CrowdFeedURL, cfg.FetchTimeout, clock)
	}

	// Инициализация сервисов
	reconcileService := service.NewReconcileService(outageRepo, referenceRepo, cache, registry, publisher, metrics, clock, log)
	outageService := service.NewOutageService(outageRepo, cache, referenceRepo, analyticsRepo, clock, log)
	reportService := service.NewReportService(reportRepo, referenceRepo, metrics, clock, log)
	hotspotService := service.NewHotspotService(reportRepo, referenceRepo, cache, signalSource, metrics, clock, log, cfg)
	retentionService := service.NewRetentionService(retentionRepo, cache, metrics, clock, cfg.Retention(), log)

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		log.WithError(err).Warn("No operator sources loaded, ingestion is disabled")
	}
	var runner *ingest.Runner
	if len(sources) > 0 {
		fetchers := ingest.FetchersFromConfig(sources, cfg.FetchTimeout, clock)
		runner = ingest.NewRunner(fetchers, reconcileService, cfg.IngestConcurrency, cfg.FetchTimeout, metrics, clock, log)
	}

	jobs := []scheduler.Job{
		{Name: "hotspots", Interval: cfg.HotspotInterval, Run: func(ctx context.Context) error {
			_, err := hotspotService.Refresh(ctx)
			return err
		}},
		{Name: "cleanup", Interval: cfg.CleanupInterval, Run: func(ctx context.Context) error {
			_, err := retentionService.PurgeExpired(ctx)
			return err
		}},
	}
	if runner != nil {
		jobs = append(jobs, scheduler.Job{Name: "ingest", Interval: cfg.IngestInterval, Run: func(ctx context.Context) error {
			runner.RunCycle(ctx)
			return nil
		}})
	}
	sched := scheduler.New(clock, log, jobs...)

	// Разовый запуск задачи, например из cron
	if *job != "serve" {
		for _, j := range jobs {
			if j.Name == *job {
				if err := sched.RunOnce(ctx, j); err != nil {
					log.Fatalf("Job %s failed: %v", j.Name, err)
				}
				return
			}
		}
		log.Fatalf("Unknown or unavailable job %q", *job)
	}

	// Воркер вебхуков нужен только для очереди в Redis
	if cfg.EventsSink == "redis" {
		events.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}
	sched.Start(ctx)

	// Инициализация хэндлеров
	var cycleRunner v1.CycleRunner
	if runner != nil {
		cycleRunner = runner
	}
	handler := v1.NewHandler(outageService, reportService, hotspotService, retentionService, cycleRunner, clock, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI и метрик
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	sched.Wait()

	log.Info("Server gracefully stopped")
}
