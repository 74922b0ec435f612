package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hosteldesk/outpass-api/api/swagger"
	"github.com/hosteldesk/outpass-api/internal/handler"
	"github.com/hosteldesk/outpass-api/internal/middleware"
	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/repository"
	"github.com/hosteldesk/outpass-api/internal/service"
	"github.com/hosteldesk/outpass-api/internal/sheets"
	"github.com/hosteldesk/outpass-api/internal/sms"
	"github.com/hosteldesk/outpass-api/pkg/cache"
	"github.com/hosteldesk/outpass-api/pkg/config"
	"github.com/hosteldesk/outpass-api/pkg/logger"
	corsmiddleware "github.com/hosteldesk/outpass-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hosteldesk/outpass-api/pkg/middleware/requestid"
)

// @title Outpass API
// @version 1.0.0
// @description Hostel outing request approval backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	sheetsClient, err := sheets.New(context.Background(), cfg.Sheets)
	if err != nil {
		logr.Sugar().Fatalw("failed to init sheets client", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, directory cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	var metrics *service.MetricsService
	var store sheets.Store = sheetsClient
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
		store = sheets.Observe(sheetsClient, metrics)
	}

	directoryRepo := repository.NewDirectoryRepository(store, cfg.Sheets.DirectorySheetID, cfg.Sheets.TabName)
	ledgerRepo := repository.NewLedgerRepository(store, cfg.Sheets.LedgerSheetID, cfg.Sheets.TabName)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	authService := service.NewAuthService(cfg.Auth, validate, logr)
	directoryService := service.NewDirectoryService(directoryRepo, cacheRepo, cfg.Directory.CacheTTL, validate, logr, metrics)
	requestService := service.NewRequestService(ledgerRepo, validate, logr)
	guardService := service.NewGuardService(ledgerRepo, validate, logr)
	exportService := service.NewExportService(ledgerRepo, logr, nil, nil)

	wardenService := service.NewWardenService(ledgerRepo, nil, validate, logr)
	if cfg.Twilio.AccountSID != "" {
		wardenService = service.NewWardenService(ledgerRepo, sms.NewTwilioSender(cfg.Twilio), validate, logr)
	} else {
		logr.Warn("twilio credentials missing, decision SMS disabled")
	}

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(directoryService, requestService)
	wardenHandler := handler.NewWardenHandler(wardenService, exportService)
	guardHandler := handler.NewGuardHandler(guardService)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	r.GET("/health", metricsHandler.Health)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/fetch_student", studentHandler.FetchStudent)
	r.POST("/fetch_student_requests", studentHandler.FetchStudentRequests)
	r.POST("/submit_out_request", studentHandler.SubmitOutRequest)
	r.POST("/submit_in_request", studentHandler.SubmitInRequest)

	warden := r.Group("/warden")
	warden.POST("/login", authHandler.WardenLogin)
	{
		protected := warden.Group("")
		protected.Use(middleware.RequireRole(authService, models.RoleWarden, cfg.Auth.RequireToken))
		protected.GET("/out_request_dashboard", wardenHandler.OutDashboard)
		protected.GET("/in_request_dashboard", wardenHandler.InDashboard)
		protected.POST("/update_out_status", wardenHandler.UpdateOutStatus)
		protected.POST("/update_in_status", wardenHandler.UpdateInStatus)
		protected.GET("/register_export", wardenHandler.RegisterExport)
	}

	guard := r.Group("/guard")
	guard.POST("/login", authHandler.GuardLogin)
	{
		protected := guard.Group("")
		protected.Use(middleware.RequireRole(authService, models.RoleGuard, cfg.Auth.RequireToken))
		protected.GET("/out_dashboard", guardHandler.OutDashboard)
		protected.GET("/in_dashboard", guardHandler.InDashboard)
		protected.POST("/search", guardHandler.Search)
		protected.POST("/update_out_status", guardHandler.UpdateOutStatus)
		protected.POST("/update_in_status", guardHandler.UpdateInStatus)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
