package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "resource-planner-backend/docs" // registers the swagger document
	"resource-planner-backend/internal/api/routes"
	"resource-planner-backend/internal/app"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/jobs"
	"resource-planner-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

//	@title			Resource Planner API
//	@version		1.0
//	@description	Team capacity planning: projects, team members, allocations, conflict detection and workload reports.

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database, lock backend and services
	planner, err := app.New(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logrus.Fatal("Failed to initialize application: ", err)
	}
	defer func() {
		if err := planner.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close resources")
		}
	}()

	refresher := jobs.NewWorkloadRefresher(planner.Services.Members, planner.Metrics)
	if err := refresher.Start(cfg.WorkloadRefreshCron); err != nil {
		logrus.Fatal("Failed to start workload refresh: ", err)
	}
	// bring stored workloads up to date before serving
	go refresher.Run()

	// Initialize router
	router := routes.SetupRoutes(planner.DB, cfg, planner.Services, routes.Options{
		Metrics:  planner.Metrics,
		Gatherer: prometheus.DefaultGatherer,
		Probes:   planner.Probes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"port":         cfg.Port,
			"db_driver":    cfg.DatabaseDriver,
			"lock_backend": cfg.LockBackend,
		}).Info("Starting server")
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Graceful shutdown failed")
		}
		refresher.Stop(shutdownCtx)
		logrus.Info("Server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server error")
		}
		refresher.Stop(context.Background())
	}
}
