package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the prometheus implementation of the payment service's
// MetricsCollector interface.
type Collector struct {
	charges        *prometheus.CounterVec
	gatewayLatency prometheus.Histogram
	normalized     prometheus.Counter
}

// NewCollector builds and registers the proxy collectors on the default
// registry.
func NewCollector() *Collector {
	c := &Collector{
		charges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pix_charges_total",
			Help: "PIX charge attempts by outcome.",
		}, []string{"outcome"}),
		gatewayLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pix_gateway_request_duration_seconds",
			Help:    "Latency of outbound gateway calls.",
			Buckets: prometheus.DefBuckets,
		}),
		normalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pix_normalized_responses_total",
			Help: "Gateway success responses that needed shape normalization.",
		}),
	}
	prometheus.MustRegister(c.charges, c.gatewayLatency, c.normalized)
	return c
}

func (c *Collector) RecordChargeResult(outcome string) {
	c.charges.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordGatewayDuration(d time.Duration) {
	c.gatewayLatency.Observe(d.Seconds())
}

func (c *Collector) RecordNormalizedResponse() {
	c.normalized.Inc()
}
