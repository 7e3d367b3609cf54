package jobs

import (
	"context"
	"fmt"
	"time"

	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/metrics"
	"resource-planner-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule reports whether expr is a usable 5-field cron expression.
func ValidateSchedule(expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// WorkloadRefresher recomputes the stored current workload of every team
// member on a cron schedule. Allocation writes keep the figure current for
// the members they touch; the refresh rolls everyone forward when the day
// changes.
type WorkloadRefresher struct {
	members service.TeamMemberServiceInterface
	metrics *metrics.Metrics
	cron    *cron.Cron
}

// NewWorkloadRefresher creates a refresher. m may be nil.
func NewWorkloadRefresher(members service.TeamMemberServiceInterface, m *metrics.Metrics) *WorkloadRefresher {
	return &WorkloadRefresher{
		members: members,
		metrics: m,
		cron:    cron.New(cron.WithParser(cronParser)),
	}
}

// Run performs one refresh. It satisfies cron.Job.
func (r *WorkloadRefresher) Run() {
	log := logger.New().WithField("job", "workload_refresh")
	started := time.Now()

	updated, err := r.members.RecomputeAllWorkloads()
	r.metrics.ObserveWorkloadRefresh(err)

	log = log.WithFields(map[string]interface{}{
		"updated":  updated,
		"duration": time.Since(started).String(),
	})
	if err != nil {
		log.WithError(err).Warn("Workload refresh finished with errors")
		return
	}
	log.Info("Workload refresh finished")
}

// Start schedules the refresh on expr and starts the scheduler.
func (r *WorkloadRefresher) Start(expr string) error {
	if err := ValidateSchedule(expr); err != nil {
		return err
	}
	if _, err := r.cron.AddJob(expr, r); err != nil {
		return fmt.Errorf("failed to schedule workload refresh: %w", err)
	}
	r.cron.Start()
	logger.New().WithField("schedule", expr).Info("Workload refresh scheduled")
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish or ctx
// to expire.
func (r *WorkloadRefresher) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}
