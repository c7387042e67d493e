package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/senshi-dojo/dojo-backend/internal/config"
	"github.com/senshi-dojo/dojo-backend/internal/database"
	"github.com/senshi-dojo/dojo-backend/internal/handler"
	"github.com/senshi-dojo/dojo-backend/internal/logger"
	"github.com/senshi-dojo/dojo-backend/internal/middleware"
	"github.com/senshi-dojo/dojo-backend/internal/repository"
	"github.com/senshi-dojo/dojo-backend/internal/router"
	"github.com/senshi-dojo/dojo-backend/internal/service"
	"github.com/senshi-dojo/dojo-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Dojo Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	classSessionRepo := repository.NewClassSessionRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	loginSessionRepo := repository.NewLoginSessionRepository(rdb)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, loginSessionRepo)
	userService := service.NewUserService(userRepo, authService)
	classSessionService := service.NewClassSessionService(classSessionRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	contactService := service.NewContactService(contactRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg),
		Session:      handler.NewClassSessionHandler(classSessionService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Attendance:   handler.NewAttendanceHandler(attendanceService),
		User:         handler.NewUserHandler(userService),
		Contact:      handler.NewContactHandler(contactService),
	}

	// Rate limiter for login, register and contact (per IP, per minute).
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
	defer authLimiter.Stop()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, authLimiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Stop accepting new HTTP requests and let in-flight ones finish (5s).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
