// Package app assembles the planner's runtime pieces from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database"
	"resource-planner-backend/internal/locking"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// App holds the database, the write lock and the services built on them.
type App struct {
	DB       *gorm.DB
	Locker   locking.Locker
	Metrics  *metrics.Metrics
	Services *service.Services
	Probes   []handlers.Probe

	closers []func() error
}

// New opens the configured database and lock backend and wires the services.
// reg receives the collectors; nil disables metrics.
func New(cfg *config.Config, reg prometheus.Registerer) (*App, error) {
	db, err := database.Initialize(cfg.DSN(), &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := &App{DB: db}
	a.closers = append(a.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	locker, err := a.newLocker(cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Locker = locker

	if reg != nil {
		a.Metrics = metrics.New(reg)
	}
	a.Services = service.NewServices(db, a.Locker, a.Metrics, cfg.DefaultWeeklyCapacity)
	return a, nil
}

func (a *App) newLocker(cfg *config.Config) (locking.Locker, error) {
	if cfg.LockBackend != "redis" {
		return locking.NewKeyedMutex(), nil
	}

	ttl := time.Duration(cfg.LockTTLSec) * time.Second
	locker, err := locking.NewRedisLocker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect lock backend: %w", err)
	}
	a.closers = append(a.closers, locker.Close)
	a.Probes = append(a.Probes, handlers.Probe{
		Name:  "redis",
		Check: func(ctx context.Context) error { return locker.Ping(ctx) },
	})
	return locker, nil
}

// Close releases the lock backend and the database connection.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
