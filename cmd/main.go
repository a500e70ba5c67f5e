// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/handlers"
	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/repository"
	"github.com/tdevakiruba/Workforce/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "./configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// DB 接続
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	programRepo := repository.NewGormProgramRepository()
	curriculumRepo := repository.NewGormCurriculumRepository()
	enrollmentRepo := repository.NewGormEnrollmentRepository()
	progressRepo := repository.NewGormProgressRepository()
	responseRepo := repository.NewGormResponseRepository()
	subscriptionRepo := repository.NewGormSubscriptionRepository()
	streakRepo := repository.NewGormStreakRepository()
	labRepo := repository.NewGormLabRepository()

	runner := service.NewBackgroundRunner(cfg.Progress.SideEffectTimeout)

	progressService := service.NewProgressService(db, enrollmentRepo, progressRepo, responseRepo, programRepo, streakRepo, runner, cfg)
	enrollmentService := service.NewEnrollmentService(db, programRepo, enrollmentRepo, subscriptionRepo, streakRepo, runner, cfg)
	dashboardService := service.NewDashboardService(db, programRepo, enrollmentRepo, progressRepo, responseRepo, curriculumRepo, streakRepo, cfg)
	certificateService := service.NewCertificateService(db, programRepo, enrollmentRepo, cfg)
	labService := service.NewLabService(db, programRepo, enrollmentRepo, labRepo)

	progressHandler := handlers.NewProgressHandler(progressService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)
	labHandler := handlers.NewLabHandler(labService)
	healthHandler := handlers.NewHealthHandler(sqlDB)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				slog.Warn("Authentication is DISABLED. Using X-User-ID header (development only)")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Post("/progress", progressHandler.RecordProgress)
			r.Post("/responses", progressHandler.SaveResponse)
			r.Get("/responses", progressHandler.ListResponses)

			r.Get("/subscription", enrollmentHandler.GetSubscription)
			r.Post("/enroll", enrollmentHandler.Enroll)

			r.Get("/certificate", certificateHandler.GetCertificate)
			r.Post("/lab-submissions", labHandler.Submit)

			r.Route("/programs/{slug}", func(r chi.Router) {
				r.Get("/dashboard", enrollmentHandler.Dashboard)
				r.Get("/overview", dashboardHandler.Overview)
				r.Get("/journey", dashboardHandler.Journey)
				r.Get("/certificates", certificateHandler.ListCertificates)
				r.Get("/lab", labHandler.LabPage)
			})
		})
	})

	r.Get("/health", healthHandler.Health)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	// 実行中のストリーク更新などを待ってから DB を閉じる
	if err := runner.Wait(ctx); err != nil {
		slog.Warn("Background tasks did not finish before shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV からアプリケーションのロガーを作る
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
