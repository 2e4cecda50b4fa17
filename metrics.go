package datastreams

import "github.com/prometheus/client_golang/prometheus"

// streamMetrics mirrors a stream's Stats as Prometheus collectors. It is
// additive instrumentation: the atomic counters in stats remain the source
// of truth for Stats(), these are only updated alongside them.
type streamMetrics struct {
	accepted              prometheus.Counter
	deduplicated          prometheus.Counter
	partialReconnects     prometheus.Counter
	fullReconnects        prometheus.Counter
	configuredConnections prometheus.Gauge
	activeConnections     prometheus.Gauge
}

func newStreamMetrics(reg prometheus.Registerer, instanceID string) *streamMetrics {
	if reg == nil {
		return nil
	}

	constLabels := prometheus.Labels{"stream": instanceID}
	m := &streamMetrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "datastreams_reports_accepted_total",
			Help:        "Reports accepted after deduplication.",
			ConstLabels: constLabels,
		}),
		deduplicated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "datastreams_reports_deduplicated_total",
			Help:        "Reports dropped as duplicates of an already-delivered observation.",
			ConstLabels: constLabels,
		}),
		partialReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "datastreams_partial_reconnects_total",
			Help:        "Reconnect events where at least one other connection stayed up.",
			ConstLabels: constLabels,
		}),
		fullReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "datastreams_full_reconnects_total",
			Help:        "Reconnect events where every connection had dropped.",
			ConstLabels: constLabels,
		}),
		configuredConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datastreams_configured_connections",
			Help:        "Connections the stream was able to establish at open time.",
			ConstLabels: constLabels,
		}),
		activeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datastreams_active_connections",
			Help:        "Connections currently up.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.accepted, m.deduplicated, m.partialReconnects,
		m.fullReconnects, m.configuredConnections, m.activeConnections,
	)
	return m
}

func (m *streamMetrics) incAccepted() {
	if m != nil {
		m.accepted.Inc()
	}
}

func (m *streamMetrics) incDeduplicated() {
	if m != nil {
		m.deduplicated.Inc()
	}
}

func (m *streamMetrics) incPartialReconnects() {
	if m != nil {
		m.partialReconnects.Inc()
	}
}

func (m *streamMetrics) incFullReconnects() {
	if m != nil {
		m.fullReconnects.Inc()
	}
}

func (m *streamMetrics) setConfiguredConnections(n uint64) {
	if m != nil {
		m.configuredConnections.Set(float64(n))
	}
}

func (m *streamMetrics) setActiveConnections(n uint64) {
	if m != nil {
		m.activeConnections.Set(float64(n))
	}
}
