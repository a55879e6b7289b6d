package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/knaito/naraigoto-api/api/swagger"
	"github.com/knaito/naraigoto-api/internal/dto"
	"github.com/knaito/naraigoto-api/internal/handler"
	"github.com/knaito/naraigoto-api/internal/middleware"
	"github.com/knaito/naraigoto-api/internal/planner"
	"github.com/knaito/naraigoto-api/internal/repository"
	"github.com/knaito/naraigoto-api/internal/service"
	rediscache "github.com/knaito/naraigoto-api/pkg/cache"
	"github.com/knaito/naraigoto-api/pkg/config"
	"github.com/knaito/naraigoto-api/pkg/database"
	"github.com/knaito/naraigoto-api/pkg/export"
	"github.com/knaito/naraigoto-api/pkg/jobs"
	"github.com/knaito/naraigoto-api/pkg/logger"
	corsmiddleware "github.com/knaito/naraigoto-api/pkg/middleware/cors"
	reqidmiddleware "github.com/knaito/naraigoto-api/pkg/middleware/requestid"
	"github.com/knaito/naraigoto-api/pkg/sheets"
)

// @title Naraigoto Planner API
// @version 1.0.0
// @description Household extracurricular lesson planner
// @BasePath /api/v1
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

	ctx := context.Background()

	var repo repository.DocumentRepository
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		repo = repository.NewPostgresRepository(db)
	default:
		repo = repository.NewFileRepository(cfg.Store.File)
	}

	var docCache *repository.CacheRepository
	if cfg.Cache.Enabled {
		client, err := rediscache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, running without cache", "error", err)
		} else {
			docCache = repository.NewCacheRepository(client, logr)
			defer client.Close() //nolint:errcheck
		}
	}

	metricsSvc := service.NewMetricsService()

	var mirror *sheets.Client
	if cfg.Sheets.SpreadsheetID != "" {
		mirror, err = sheets.NewClient(ctx, cfg.Sheets)
		if err != nil {
			logr.Sugar().Warnw("sheets client unavailable, mirror disabled", "error", err)
			mirror = nil
		}
	}

	docSvc := service.NewDocumentService(repo, cacheOrNil(docCache), nil, metricsSvc, cfg.Cache.TTL, logr)
	syncSvc := service.NewSyncService(docSvc, mirrorOrNil(mirror), metricsSvc, logr)

	queue := jobs.NewQueue("sheets-sync", syncSvc.HandleJob, jobs.QueueConfig{
		Workers:    cfg.Sync.Workers,
		MaxRetries: cfg.Sync.MaxRetries,
		RetryDelay: cfg.Sync.RetryDelay,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	docSvc.SetSyncQueue(queue)

	v := dto.NewValidator()
	layout := planner.DefaultLayoutConfig()
	layout.DayStartHour = cfg.Calendar.DayStartHour
	layout.DayEndHour = cfg.Calendar.DayEndHour
	layout.PixelsPerHour = cfg.Calendar.PixelsPerHour

	lessonSvc := service.NewLessonService(docSvc, v, logr)
	patternSvc := service.NewPatternService(docSvc, v, layout, logr)
	familySvc := service.NewFamilyService(docSvc, v, logr)
	conditionsSvc := service.NewConditionsService(docSvc, logr)
	exportSvc := service.NewExportService(docSvc, export.NewCSVExporter(true), export.NewPDFExporter(), logr)

	docHandler := handler.NewDocumentHandler(docSvc)
	lessonHandler := handler.NewLessonHandler(lessonSvc)
	patternHandler := handler.NewPatternHandler(patternSvc)
	familyHandler := handler.NewFamilyHandler(familySvc, conditionsSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Routes the legacy frontend still calls.
	r.GET("/api/data", docHandler.LegacyData)
	r.POST("/api/save", docHandler.LegacySave)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/document", docHandler.Get)
		api.PUT("/document", docHandler.Replace)

		api.POST("/lessons", lessonHandler.Create)
		api.POST("/lessons/renumber", lessonHandler.Renumber)
		api.PATCH("/lessons/:index", lessonHandler.Update)
		api.DELETE("/lessons/:index", lessonHandler.Delete)
		api.POST("/lessons/:index/duplicate", lessonHandler.Duplicate)

		api.PUT("/patterns/:key", patternHandler.Update)
		api.POST("/patterns/:key/toggle", patternHandler.Toggle)
		api.GET("/patterns/:key/stats", patternHandler.Stats)
		api.GET("/patterns/:key/schedule", patternHandler.Schedule)

		api.PUT("/family/:member", familyHandler.UpdateMember)
		api.PUT("/conditions", familyHandler.UpdateConditions)

		api.GET("/export/csv", exportHandler.CSV)
		api.GET("/export/pdf", exportHandler.PDF)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func cacheOrNil(c *repository.CacheRepository) service.DocumentCache {
	if c == nil {
		return nil
	}
	return c
}

func mirrorOrNil(m *sheets.Client) service.SheetsMirror {
	if m == nil {
		return nil
	}
	return m
}
