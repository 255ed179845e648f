package metrics

import "github.com/prometheus/client_golang/prometheus"

// WhisperMetrics counts whisper delivery attempts.
type WhisperMetrics struct {
	Deliveries *prometheus.CounterVec
}

// NewWhisperMetrics creates and registers whisper metrics on the given registry.
func NewWhisperMetrics(reg prometheus.Registerer) *WhisperMetrics {
	m := &WhisperMetrics{
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "whisper",
			Name:      "deliveries_total",
			Help:      "Whisper delivery attempts, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.Deliveries)
	return m
}

// RecordDelivery increments the counter for outcome.
func (m *WhisperMetrics) RecordDelivery(outcome string) {
	m.Deliveries.WithLabelValues(outcome).Inc()
}
