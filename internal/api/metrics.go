package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the API
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Calculations    *prometheus.CounterVec
	InvalidValues   prometheus.Counter
}

// NewMetrics creates and registers the API metrics with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "imtgo_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "imtgo_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "imtgo_imt_calculations_total",
			Help: "Total number of IMT calculations by property type and location",
		}, []string{"property_type", "location"}),
		InvalidValues: factory.NewCounter(prometheus.CounterOpts{
			Name: "imtgo_invalid_property_values_total",
			Help: "Total number of IMT requests with a missing or non-positive value",
		}),
	}
}

// ObserveCalculation records one IMT calculation
func (m *Metrics) ObserveCalculation(propertyType, location string, valid bool) {
	if !valid {
		m.InvalidValues.Inc()
		return
	}
	m.Calculations.WithLabelValues(propertyType, location).Inc()
}
