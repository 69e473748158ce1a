package huffpack

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsSubsystem = "huffpack"

	opLabelName     = "op"
	reasonLabelName = "reason"

	opCompress   = "compress"
	opDecompress = "decompress"
)

// Metrics holds the Prometheus counters maintained by Compressor and
// Decompressor.  A nil *Metrics is valid and records nothing.
type Metrics struct {
	BytesIn  *prometheus.CounterVec
	BytesOut *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// NewMetrics constructs unregistered counters under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BytesIn: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "bytes_in_total",
				Help:      "bytes consumed by compress and decompress operations",
			}, []string{opLabelName}),
		BytesOut: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "bytes_out_total",
				Help:      "bytes produced by compress and decompress operations",
			}, []string{opLabelName}),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "failures_total",
				Help:      "failed compress and decompress operations, by reason",
			}, []string{opLabelName, reasonLabelName}),
	}
}

// Register registers all counters with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.BytesIn, m.BytesOut, m.Failures} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observe(op string, stats Stats, err error) {
	if m == nil {
		return
	}
	m.BytesIn.WithLabelValues(op).Add(float64(stats.BytesIn))
	m.BytesOut.WithLabelValues(op).Add(float64(stats.BytesOut))
	if err != nil {
		m.Failures.WithLabelValues(op, failureReason(err)).Inc()
	}
}
