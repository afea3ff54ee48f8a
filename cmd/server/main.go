package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/bootstrap"
	"github.com/tpdc055/connectpng/internal/config"
	"github.com/tpdc055/connectpng/internal/infra/cache"
	"github.com/tpdc055/connectpng/internal/infra/db"
	"github.com/tpdc055/connectpng/internal/modules/handler"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/router"
	"github.com/tpdc055/connectpng/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if _, err := telemetry.SetupTracing(cfg); err != nil {
			log.Error("tracing setup failed", zap.Error(err))
		}
		if _, err := telemetry.SetupMetrics(cfg); err != nil {
			log.Error("metrics setup failed", zap.Error(err))
		}
		if err := telemetry.InitReportMetrics(); err != nil {
			log.Error("report metrics init failed", zap.Error(err))
		}
		if err := db.RegisterOpenTelemetryPlugin(do.MustInvoke[*gorm.DB](inj)); err != nil {
			log.Error("gorm otel plugin failed", zap.Error(err))
		}
		if err := cache.RegisterOpenTelemetryPlugin(do.MustInvoke[*redis.Client](inj)); err != nil {
			log.Error("redis otel plugin failed", zap.Error(err))
		}
	}

	if err := bootstrap.Startup(ctx, inj); err != nil {
		log.Fatal("bootstrap failed", zap.Error(err))
	}

	engine := router.NewRouter(router.RouterDeps{
		Config: cfg,
		Log:    log,
		Users:  do.MustInvoke[repo.UserRepo](inj),

		AuthHandler:       do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:    do.MustInvoke[*handler.ProjectHandler](inj),
		SectionHandler:    do.MustInvoke[*handler.SectionHandler](inj),
		ContractorHandler: do.MustInvoke[*handler.ContractorHandler](inj),
		GpsHandler:        do.MustInvoke[*handler.GpsHandler](inj),
		QualityHandler:    do.MustInvoke[*handler.QualityHandler](inj),
		MilestoneHandler:  do.MustInvoke[*handler.MilestoneHandler](inj),
		ProgressHandler:   do.MustInvoke[*handler.ProgressHandler](inj),
		FundingHandler:    do.MustInvoke[*handler.FundingHandler](inj),
		UserHandler:       do.MustInvoke[*handler.UserHandler](inj),
		LookupHandler:     do.MustInvoke[*handler.LookupHandler](inj),
		ReportHandler:     do.MustInvoke[*handler.ReportHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", zap.Error(err))
		}
		if err := telemetry.ShutdownMetrics(shutdownCtx); err != nil {
			log.Error("metrics shutdown failed", zap.Error(err))
		}
	}

	if err := do.MustInvoke[*redis.Client](inj).Close(); err != nil {
		log.Error("redis close failed", zap.Error(err))
	}

	_ = inj.Shutdown()
	os.Exit(0)
}
