package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/config"
	"github.com/pasturelab/grazeplan/internal/repository/mongodb"
	"github.com/pasturelab/grazeplan/internal/repository/sheets"
	"github.com/pasturelab/grazeplan/internal/scheduler"
	"github.com/pasturelab/grazeplan/internal/server/handlers"
	"github.com/pasturelab/grazeplan/internal/server/router"
	alertsvc "github.com/pasturelab/grazeplan/internal/service/alerts"
	planningsvc "github.com/pasturelab/grazeplan/internal/service/planning"
	"github.com/pasturelab/grazeplan/pkg/clients/webhook"
	"github.com/pasturelab/grazeplan/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("plan export to sheets enabled")
	} else {
		baseLogger.Warn("sheet export id missing, plan export disabled")
	}

	var alertClient webhook.Client
	if cfg.Alerts.WebhookURL != "" {
		alertClient = webhook.NewClient(cfg.Alerts.WebhookURL)
		baseLogger.Info("deficit alert webhook enabled")
	} else {
		baseLogger.Warn("alert webhook url missing, deficit alerts disabled")
	}

	planningSvc := planningsvc.NewService(mongoRepo, cfg.Planning.DefaultHorizonDays, baseLogger.Named("svc.planning"))
	alertSvc := alertsvc.NewService(alertClient, baseLogger.Named("svc.alerts"))

	planningHandler := handlers.NewPlanningHandler(planningSvc, baseLogger.Named("handlers.planning"))
	engine := router.New(planningHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(*cfg, planningSvc, alertSvc, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
