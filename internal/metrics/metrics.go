package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Allocation outcomes recorded by ObserveAllocation.
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeDeleted  = "deleted"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
)

// Metrics holds the planner's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requestTotal      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	allocationResults *prometheus.CounterVec
	conflictsDetected *prometheus.CounterVec
	workloadRefreshes *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Collectors that are
// already registered, for example by a previous router in the same process,
// are reused.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "planner",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		allocationResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "allocations",
			Name:      "operations_total",
			Help:      "Allocation writes by outcome",
		}, []string{"operation", "outcome"}),
		conflictsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "allocations",
			Name:      "conflict_days_total",
			Help:      "Overallocated days reported by conflict detection",
		}, []string{"source"}),
		workloadRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "jobs",
			Name:      "workload_refresh_total",
			Help:      "Workload refresh runs by result",
		}, []string{"result"}),
	}

	if reg == nil {
		return m
	}
	m.requestTotal = register(reg, m.requestTotal)
	m.requestLatency = register(reg, m.requestLatency)
	m.allocationResults = register(reg, m.allocationResults)
	m.conflictsDetected = register(reg, m.conflictsDetected)
	m.workloadRefreshes = register(reg, m.workloadRefreshes)
	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// ObserveAllocation records the outcome of an allocation write.
func (m *Metrics) ObserveAllocation(operation, outcome string) {
	if m == nil {
		return
	}
	m.allocationResults.WithLabelValues(operation, outcome).Inc()
}

// ObserveConflicts adds n detected conflict days. source is "gate" for
// rejected writes and "check" or "scan" for read-only queries.
func (m *Metrics) ObserveConflicts(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.conflictsDetected.WithLabelValues(source).Add(float64(n))
}

// ObserveWorkloadRefresh records one run of the workload refresh job.
func (m *Metrics) ObserveWorkloadRefresh(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.workloadRefreshes.WithLabelValues(result).Inc()
}
