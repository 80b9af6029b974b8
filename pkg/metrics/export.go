package metrics

import "github.com/prometheus/client_golang/prometheus"

// ExportMetrics conta os arquivos exportados por formato
type ExportMetrics struct {
	exports *prometheus.CounterVec
	bytes   *prometheus.CounterVec
}

func NewExportMetrics(reg prometheus.Registerer) *ExportMetrics {
	if reg == nil {
		return &ExportMetrics{}
	}
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_exports_total",
		Help: "Generated export files by format.",
	}, []string{"format"})
	bytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_exports_bytes_total",
		Help: "Bytes written by export files by format.",
	}, []string{"format"})
	reg.MustRegister(exports, bytes)
	return &ExportMetrics{
		exports: exports,
		bytes:   bytes,
	}
}

func (m *ExportMetrics) Observe(format string, size int) {
	if m == nil || m.exports == nil {
		return
	}
	m.exports.WithLabelValues(normalizeLabel(format)).Inc()
	m.bytes.WithLabelValues(normalizeLabel(format)).Add(float64(size))
}
