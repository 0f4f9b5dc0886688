// cmd/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
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
	"gorm.io/gorm"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/handlers"
	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/repository"
	"go_5_course_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configDir := flag.String("config", "./configs", "config.yaml を含むディレクトリ")
	flag.Parse()

	if err := run(*configDir); err != nil {
		slog.Error("Application terminated", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configDir string) error {
	// 設定読み込みまでは標準のテキストハンドラー
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(bootLogger)

	if err := config.LoadConfig(configDir); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, os.Getenv("APP_ENV"), bootLogger)
	slog.SetDefault(logger)
	logger.Info("Application starting", slog.String("app", cfg.App.Name), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
			return
		}
		logger.Info("Database connection closed")
	}()

	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	h := buildHandlers(db, cfg)
	h.Health = handlers.NewHealthHandler(sqlDB)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      newRouter(h, cfg, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return serve(server, logger)
}

// buildHandlers はリポジトリからハンドラーまでを組み立てます。Health は呼び出し側で設定します。
func buildHandlers(db *gorm.DB, cfg *config.Config) *handlers.Handlers {
	userRepo := repository.NewGormUserRepository()
	courseRepo := repository.NewGormCourseRepository()
	moduleRepo := repository.NewGormModuleRepository()
	lessonRepo := repository.NewGormLessonRepository()
	completionRepo := repository.NewGormCompletionRepository()

	mailer := service.NewMailer(cfg)

	return &handlers.Handlers{
		Course:     handlers.NewCourseHandler(service.NewCourseService(db, courseRepo, moduleRepo, lessonRepo, completionRepo)),
		Module:     handlers.NewModuleHandler(service.NewModuleService(db, courseRepo, moduleRepo, lessonRepo, completionRepo, cfg)),
		Lesson:     handlers.NewLessonHandler(service.NewLessonService(db, moduleRepo, lessonRepo, completionRepo)),
		Completion: handlers.NewCompletionHandler(service.NewCompletionService(db, userRepo, lessonRepo, completionRepo)),
		Auth:       handlers.NewAuthHandler(service.NewAuthService(db, userRepo, mailer, cfg)),
	}
}

func newRouter(h *handlers.Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.RequestDetailLoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)

	if cfg.Auth.Enabled {
		logger.Info("JWT authentication enabled for write routes")
	}
	handlers.RegisterRoutes(r, h, cfg)
	return r
}

// serve は SIGINT/SIGTERM を受け取るまでサーバーを動かし、その後グレースフルに停止します。
func serve(server *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}

// newLogger は log.level と APP_ENV からロガーを組み立てます。dev の場合は tint を使います。
func newLogger(level, appEnv string, bootLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		bootLogger.Warn("Unknown log level, defaulting to INFO", slog.String("level", level))
	}

	if strings.EqualFold(appEnv, "dev") {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}))
}
