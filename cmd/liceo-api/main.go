package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/liceo-connect/liceo-api/api/swagger"
	"github.com/liceo-connect/liceo-api/internal/handler"
	internalmiddleware "github.com/liceo-connect/liceo-api/internal/middleware"
	"github.com/liceo-connect/liceo-api/internal/repository"
	"github.com/liceo-connect/liceo-api/internal/service"
	"github.com/liceo-connect/liceo-api/pkg/cache"
	"github.com/liceo-connect/liceo-api/pkg/config"
	"github.com/liceo-connect/liceo-api/pkg/database"
	"github.com/liceo-connect/liceo-api/pkg/logger"
	corsmiddleware "github.com/liceo-connect/liceo-api/pkg/middleware/cors"
	reqidmiddleware "github.com/liceo-connect/liceo-api/pkg/middleware/requestid"
)

// @title Liceo Connect API
// @version 1.0.0
// @description Registro de usuarios, asistencia, calificaciones y mensajería interna
// @BasePath /
// @schemes http

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "create the schema and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, db)
	cancel()
	if err != nil {
		logr.Fatal("failed to migrate schema", zap.Error(err))
	}
	if *migrateOnly {
		logr.Info("schema is up to date", zap.String("driver", cfg.Database.Driver))
		return
	}

	var metricsSvc *service.MetricsService
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		metricsHandler = metricsSvc.Handler()
	}

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving without cache", zap.Error(err))
		} else {
			defer client.Close()
			cacheSvc = service.NewCacheService(repository.NewCacheRepository(client), metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	validate := service.NewValidator()
	authSvc := service.NewAuthService(repository.NewUserRepository(db), validate, metricsSvc, logr)
	attendanceSvc := service.NewAttendanceService(repository.NewAttendanceRepository(db), cacheSvc, metricsSvc, validate, logr)
	gradeSvc := service.NewGradeService(repository.NewGradeRepository(db), cacheSvc, metricsSvc, validate, logr)
	messageSvc := service.NewMessageService(repository.NewMessageRepository(db), cacheSvc, metricsSvc, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(internalmiddleware.Metrics(metricsSvc))
	}

	handler.RegisterRoutes(r, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Grades:     handler.NewGradeHandler(gradeSvc),
		Messages:   handler.NewMessageHandler(messageSvc),
		Health:     handler.NewHealthHandler(db, metricsHandler),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "driver", cfg.Database.Driver, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	waitForShutdown(srv, logr)
}

func waitForShutdown(srv *http.Server, logr *zap.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()
	logr.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
