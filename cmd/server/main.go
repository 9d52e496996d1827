package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/captcha"
	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/database"
	"github.com/pathlight/corpsite-backend/internal/handler"
	"github.com/pathlight/corpsite-backend/internal/logger"
	"github.com/pathlight/corpsite-backend/internal/metrics"
	"github.com/pathlight/corpsite-backend/internal/repository"
	"github.com/pathlight/corpsite-backend/internal/router"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/validator"
	"github.com/pathlight/corpsite-backend/internal/worker"
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
		Msg("Starting Corpsite Backend")

	// ─── Initialize Validator & Metrics ────────────────────────────────
	validator.Setup()
	metrics.Init()

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
	adminRepo := repository.NewAdminRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	pageRepo := repository.NewPageConfigRepository(pool)
	caseRepo := repository.NewCaseStudyRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	hashtagRepo := repository.NewHashtagRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	appRepo := repository.NewApplicationRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)
	oplogRepo := repository.NewOperationLogRepository(pool)
	dashRepo := repository.NewDashboardRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	// ─── Select Captcha Provider ───────────────────────────────────────
	var verifier captcha.Verifier
	if cfg.CaptchaProvider == "cloud" {
		verifier = captcha.NewCloudVerifier(cfg.CaptchaVerifyURL, cfg.CaptchaAppID, cfg.CaptchaAppSecret, log)
	} else {
		log.Warn().Msg("Using local captcha provider; not for production")
		verifier = captcha.NewLocalVerifier()
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	adminService := service.NewAdminService(adminRepo, roleRepo, authService)
	adminUserService := service.NewAdminUserService(adminRepo, authService)
	adminRoleService := service.NewAdminRoleService(roleRepo)
	oplogService := service.NewOperationLogService(oplogRepo, rdb, log)
	bannerService := service.NewBannerService(bannerRepo, rdb, log)
	pageService := service.NewPageConfigService(pageRepo, rdb, log)
	caseService := service.NewCaseStudyService(caseRepo)
	newsService := service.NewNewsService(newsRepo)
	hashtagService := service.NewHashtagService(hashtagRepo)
	jobService := service.NewJobService(jobRepo)
	appService := service.NewApplicationService(appRepo, jobRepo, cfg)
	inquiryService := service.NewInquiryService(inquiryRepo, verifier, log)
	dashService := service.NewDashboardService(dashRepo)
	settingService := service.NewSettingService(settingRepo, log)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(adminService, oplogService),
		Banner:      handler.NewBannerHandler(bannerService, oplogService),
		PageConfig:  handler.NewPageConfigHandler(pageService, oplogService),
		CaseStudy:   handler.NewCaseStudyHandler(caseService, oplogService),
		News:        handler.NewNewsHandler(newsService, oplogService),
		Hashtag:     handler.NewHashtagHandler(hashtagService, oplogService),
		Job:         handler.NewJobHandler(jobService, oplogService),
		Application: handler.NewApplicationHandler(appService, oplogService),
		Inquiry:     handler.NewInquiryHandler(inquiryService, oplogService),
		Captcha:     handler.NewCaptchaHandler(verifier),
		OpLog:       handler.NewOperationLogHandler(oplogService),
		AdminUser:   handler.NewAdminUserHandler(adminUserService, oplogService),
		AdminRole:   handler.NewAdminRoleHandler(adminRoleService, oplogService),
		Setting:     handler.NewSettingHandler(settingService, oplogService),
		Dashboard:   handler.NewDashboardHandler(dashService),
		Media:       handler.NewMediaHandler(mediaService, oplogService),
		System:      handler.NewSystemHandler(pool, rdb),
		WS:          handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	oplogWorker := worker.NewOperationLogWorker(oplogRepo, rdb, log)
	go oplogWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
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

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
