// Package metrics expõe as métricas Prometheus da aplicação
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess    = "success"
	OutcomeSuperseded = "superseded"

	TriggerStartup = "startup"
	TriggerManual  = "manual"
	TriggerCron    = "cron"
)

// RefreshMetrics registra as execuções de atualização das métricas das lojas
type RefreshMetrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	inFlight prometheus.Gauge
	revenue  prometheus.Gauge
}

// NewRefreshMetrics registra as métricas no registerer informado. Com
// registerer nulo todas as operações viram no-op.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	if reg == nil {
		return &RefreshMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_metrics_refresh_duration_seconds",
		Help:    "Duration of store metrics refreshes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"trigger"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_metrics_refresh_total",
		Help: "Store metrics refreshes by trigger and outcome.",
	}, []string{"trigger", "outcome"})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "store_metrics_refresh_in_flight",
		Help: "Refreshes currently running.",
	})
	revenue := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "store_metrics_global_revenue",
		Help: "Total revenue of the last applied refresh.",
	})
	reg.MustRegister(duration, runs, inFlight, revenue)
	return &RefreshMetrics{
		duration: duration,
		runs:     runs,
		inFlight: inFlight,
		revenue:  revenue,
	}
}

func (m *RefreshMetrics) ObserveDuration(trigger string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(trigger)).Observe(duration.Seconds())
}

func (m *RefreshMetrics) IncRun(trigger, outcome string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(normalizeLabel(trigger), normalizeLabel(outcome)).Inc()
}

func (m *RefreshMetrics) Started() {
	if m == nil || m.inFlight == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *RefreshMetrics) Finished() {
	if m == nil || m.inFlight == nil {
		return
	}
	m.inFlight.Dec()
}

// SetGlobalRevenue guarda a receita total do último snapshot aplicado
func (m *RefreshMetrics) SetGlobalRevenue(revenue float64) {
	if m == nil || m.revenue == nil {
		return
	}
	m.revenue.Set(revenue)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
