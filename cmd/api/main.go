package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"gradrecruit/internal/app"
	"gradrecruit/internal/config"
	"gradrecruit/internal/database"
	apphttp "gradrecruit/internal/http"
	"gradrecruit/internal/http/handlers"
	"gradrecruit/internal/http/metrics"
	httpmw "gradrecruit/internal/http/middleware"
	"gradrecruit/internal/http/response"
	"gradrecruit/internal/observability"
	"gradrecruit/internal/repository/postgres"
	"gradrecruit/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.ApplySchema(db); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	vacancyRepo := postgres.NewVacancyRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	employmentRepo := postgres.NewEmploymentRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, jwtProvider, cfg.AccessTokenTTL)
	studentService := app.NewStudentService(studentRepo, notificationRepo, cfg.AdminUserID)
	vacancyService := app.NewVacancyService(vacancyRepo, notificationRepo, cfg.AdminUserID)
	applicationService := app.NewApplicationService(applicationRepo, vacancyRepo, studentRepo, notificationRepo, cfg.AdminUserID)
	notificationService := app.NewNotificationService(notificationRepo)
	employmentService := app.NewEmploymentService(employmentRepo, studentRepo)
	statsService := app.NewStatsService(statsRepo)

	limiter := newLimiter(cfg, logger)
	authHandler := handlers.NewAuthHandler(authService, limiter)
	studentHandler := handlers.NewStudentHandler(studentService)
	vacancyHandler := handlers.NewVacancyHandler(vacancyService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	employmentHandler := handlers.NewEmploymentHandler(employmentService)
	statsHandler := handlers.NewStatsHandler(statsService)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		StudentHandler:      studentHandler,
		VacancyHandler:      vacancyHandler,
		ApplicationHandler:  applicationHandler,
		NotificationHandler: notificationHandler,
		EmploymentHandler:   employmentHandler,
		StatsHandler:        statsHandler,
		AuthMiddleware:      middleware,
		MetricsHandler:      metrics.NewHandler(collector),
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

// newLimiter prefers Redis so limits hold across replicas; without it the
// in-memory limiter covers a single instance.
func newLimiter(cfg *config.Config, logger *slog.Logger) httpmw.Limiter {
	if cfg.RedisURL == "" {
		return httpmw.NewRateLimiter()
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("redis url parse failed", slog.String("error", err.Error()))
		return httpmw.NewRateLimiter()
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis ping failed", slog.String("error", err.Error()))
		_ = client.Close()
		return httpmw.NewRateLimiter()
	}
	return httpmw.NewRedisLimiter(client)
}
