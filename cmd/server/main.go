package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/database"
	"github.com/sample-hr/employee-admin/internal/handler"
	"github.com/sample-hr/employee-admin/internal/logger"
	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/middleware"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/router"
	"github.com/sample-hr/employee-admin/internal/service"
	"github.com/sample-hr/employee-admin/internal/session"
	"github.com/sample-hr/employee-admin/internal/validator"
	"github.com/sample-hr/employee-admin/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("db_driver", cfg.DBDriver).
		Str("session_backend", cfg.SessionBackend).
		Msg("Starting employee admin")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to the record store ───────────────────────────────────
	db, closeDB, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer closeDB()

	// ─── Session slot store ────────────────────────────────────────────
	var (
		sessions session.Store
		rdb      redis.UniversalClient
	)
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		rdb = client
		sessions = session.NewRedisStore(client, cfg.SessionIdle, cfg.SecureCookies)
	case config.SessionBackendCookie:
		cookies := session.NewCookieStore(cfg.SessionSecret, cfg.SessionIdle, cfg.SecureCookies)
		go worker.NewSessionSweeper(cookies, time.Minute, log).Start(ctx)
		sessions = cookies
	case config.SessionBackendMemory:
		mem := session.NewMemoryStore(cfg.SessionIdle, cfg.SecureCookies)
		go worker.NewSessionSweeper(mem, time.Minute, log).Start(ctx)
		sessions = mem
	default:
		log.Fatal().Str("backend", cfg.SessionBackend).Msg("Unknown SESSION_BACKEND")
	}

	m := metrics.New()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdministratorRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(adminRepo, m, log)
	adminService := service.NewAdministratorService(adminRepo, m, log)
	directoryService := service.NewDirectoryService(employeeRepo, m, log)
	employeeService := service.NewEmployeeService(employeeRepo, m, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:          handler.NewAuthHandler(authService, sessions, log),
		Administrator: handler.NewAdministratorHandler(adminService),
		Employee:      handler.NewEmployeeHandler(directoryService, employeeService),
		System:        handler.NewSystemHandler(db, rdb, m, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, router.Deps{
		Sessions:     sessions,
		Metrics:      m,
		LoginLimiter: middleware.NewRateLimiter(ctx, cfg.LoginRatePerMinute, time.Minute),
		Log:          log,
	}, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	cancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
