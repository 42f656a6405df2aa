// Package metrics instruments the HTTP client used by a dhesend.Client with
// Prometheus collectors. The SDK itself records nothing; wire a Collector in
// through dhesend.WithHTTPClient:
//
//	collector := metrics.New(prometheus.DefaultRegisterer)
//	client, err := dhesend.New(key, dhesend.WithHTTPClient(collector.HTTPClient(nil)))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the request collectors for one registry.
type Collector struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dhesend_client_requests_total",
				Help: "Total number of requests sent to the Dhesend API",
			},
			[]string{"code", "method"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dhesend_client_request_duration_seconds",
				Help:    "Duration of requests to the Dhesend API in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
		InFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dhesend_client_requests_in_flight",
				Help: "Current number of requests to the Dhesend API in flight",
			},
		),
	}
}

// Transport wraps next with the collectors. A nil next uses
// http.DefaultTransport.
func (c *Collector) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperInFlight(c.InFlight,
		promhttp.InstrumentRoundTripperCounter(c.Requests,
			promhttp.InstrumentRoundTripperDuration(c.Duration, next),
		),
	)
}

// HTTPClient returns a copy of base whose transport is instrumented. A nil
// base starts from a zero http.Client.
func (c *Collector) HTTPClient(base *http.Client) *http.Client {
	client := &http.Client{}
	if base != nil {
		*client = *base
	}
	client.Transport = c.Transport(client.Transport)
	return client
}
