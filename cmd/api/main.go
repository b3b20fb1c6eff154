package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/siwes-hub/placement-api/api/swagger"
	"github.com/siwes-hub/placement-api/internal/handler"
	"github.com/siwes-hub/placement-api/internal/middleware"
	"github.com/siwes-hub/placement-api/internal/repository"
	"github.com/siwes-hub/placement-api/internal/service"
	"github.com/siwes-hub/placement-api/pkg/cache"
	"github.com/siwes-hub/placement-api/pkg/config"
	"github.com/siwes-hub/placement-api/pkg/database"
	"github.com/siwes-hub/placement-api/pkg/export"
	"github.com/siwes-hub/placement-api/pkg/logger"
	corsmiddleware "github.com/siwes-hub/placement-api/pkg/middleware/cors"
	reqidmiddleware "github.com/siwes-hub/placement-api/pkg/middleware/requestid"
	"github.com/siwes-hub/placement-api/pkg/storage"
)

// @title SIWES Placement API
// @version 1.0.0
// @description Internship placement tracking backend
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	letterStorage, err := storage.NewLocalStorage(cfg.Letters.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare letter storage", "error", err)
	}
	letterSigner := storage.NewSignedURLSigner(cfg.Letters.SignedURLSecret, cfg.Letters.SignedURLTTL)

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	supervisorRepo := repository.NewSupervisorRepository(db)
	placementRepo := repository.NewPlacementRepository(db)
	reportRepo := repository.NewReportRepository(db)
	letterRepo := repository.NewLetterRepository(db)

	authSvc := service.NewAuthService(studentRepo, supervisorRepo, validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: "placement-api",
	})
	assignmentSvc := service.NewAssignmentService(supervisorRepo, studentRepo, cacheSvc, logr)
	placementSvc := service.NewPlacementService(placementRepo, assignmentSvc, validate, logr)
	reportSvc := service.NewReportService(reportRepo, studentRepo, export.NewCSVExporter(), export.NewPDFExporter(), validate, logr)
	letterSvc := service.NewLetterService(letterRepo, letterStorage, letterSigner, logr, service.LetterServiceConfig{
		MaxFileSize:   cfg.Letters.MaxFileSizeBytes,
		AllowedMIMEs:  cfg.Letters.AllowedMIMEs,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	studentSvc := service.NewStudentService(studentRepo, authSvc, validate, logr)
	supervisorSvc := service.NewSupervisorService(supervisorRepo, studentRepo, cacheSvc, cfg.Cache.TTL, logr)

	studentHandler := handler.NewStudentHandler(authSvc, studentSvc)
	supervisorHandler := handler.NewSupervisorHandler(authSvc, supervisorSvc)
	placementHandler := handler.NewPlacementHandler(placementSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	letterHandler := handler.NewLetterHandler(letterSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/student/register", studentHandler.Register)
	r.POST("/student/login", studentHandler.Login)
	r.POST("/student/profile", studentHandler.Profile)
	r.POST("/student/upload-details", placementHandler.UploadDetails)
	r.POST("/student/company", placementHandler.Company)
	r.POST("/student/upload-report", reportHandler.UploadReport)
	r.POST("/student/reports", reportHandler.Reports)

	r.POST("/supervisor/register", supervisorHandler.Register)
	r.POST("/supervisor/login", supervisorHandler.Login)
	r.POST("/supervisor/profile", supervisorHandler.Profile)
	r.GET("/supervisor/profile", supervisorHandler.Profile)

	r.POST("/upload-acceptance-letter", letterHandler.Upload)
	r.GET("/letters/download", letterHandler.Download)
	r.PATCH("/update", studentHandler.Update)
	r.POST("/api/delete", studentHandler.DecrementHits)

	protected := r.Group("/", middleware.JWT(authSvc))
	protected.GET("/supervisor/students", supervisorHandler.Students)
	protected.GET("/student/logbook/export", reportHandler.ExportLogbook)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
