package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRefreshMetrics(reg)

	m.Started()
	m.Started()
	m.Finished()
	m.ObserveDuration(TriggerManual, 150*time.Millisecond)
	m.IncRun(TriggerManual, OutcomeSuccess)
	m.IncRun(TriggerCron, OutcomeSuperseded)
	m.IncRun("", OutcomeSuccess)
	m.SetGlobalRevenue(122820)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	value, err := fetchCounterValue(mfs, "store_metrics_refresh_total", map[string]string{"trigger": TriggerManual, "outcome": OutcomeSuccess})
	require.NoError(t, err)
	assert.Equal(t, float64(1), value)

	value, err = fetchCounterValue(mfs, "store_metrics_refresh_total", map[string]string{"trigger": TriggerCron, "outcome": OutcomeSuperseded})
	require.NoError(t, err)
	assert.Equal(t, float64(1), value)

	value, err = fetchCounterValue(mfs, "store_metrics_refresh_total", map[string]string{"trigger": "unknown", "outcome": OutcomeSuccess})
	require.NoError(t, err)
	assert.Equal(t, float64(1), value)

	inFlight := findMetricFamily(mfs, "store_metrics_refresh_in_flight")
	require.NotNil(t, inFlight)
	assert.Equal(t, float64(1), inFlight.GetMetric()[0].GetGauge().GetValue())

	revenue := findMetricFamily(mfs, "store_metrics_global_revenue")
	require.NotNil(t, revenue)
	assert.Equal(t, float64(122820), revenue.GetMetric()[0].GetGauge().GetValue())

	duration := findMetricFamily(mfs, "store_metrics_refresh_duration_seconds")
	require.NotNil(t, duration)
	assert.InDelta(t, 0.15, duration.GetMetric()[0].GetHistogram().GetSampleSum(), 0.0001)
}

func TestExportMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewExportMetrics(reg)

	m.Observe("csv", 100)
	m.Observe("csv", 50)
	m.Observe("report", 10)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	value, err := fetchCounterValue(mfs, "store_exports_total", map[string]string{"format": "csv"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), value)

	value, err = fetchCounterValue(mfs, "store_exports_bytes_total", map[string]string{"format": "csv"})
	require.NoError(t, err)
	assert.Equal(t, float64(150), value)
}

func TestNilRegistererIsNoop(t *testing.T) {
	refresh := NewRefreshMetrics(nil)
	export := NewExportMetrics(nil)
	var nilRefresh *RefreshMetrics

	assert.NotPanics(t, func() {
		refresh.Started()
		refresh.Finished()
		refresh.IncRun(TriggerManual, OutcomeSuccess)
		refresh.ObserveDuration(TriggerManual, time.Second)
		refresh.SetGlobalRevenue(1)
		export.Observe("csv", 1)
		nilRefresh.IncRun(TriggerCron, OutcomeSuccess)
	})
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, labels map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if value, ok := labels[pair.GetName()]; ok && value == pair.GetValue() {
			matched++
		}
	}
	return matched == len(labels)
}
