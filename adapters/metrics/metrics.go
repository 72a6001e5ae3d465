// Package metrics provides Prometheus metrics for the Recurly client and
// the webhook receiver.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recurly"

// Collector holds all Prometheus metrics. It implements
// ports.RequestObserver and ports.NotificationObserver.
type Collector struct {
	// API client metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec

	// Webhook metrics
	Notifications *prometheus.CounterVec

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
	ConfigLastReload   prometheus.Gauge
}

// New creates a collector registered with the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of API requests by resource and status class",
			},
			[]string{"method", "resource", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "resource"},
		),
		RequestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_errors_total",
				Help:      "Total number of failed API requests by error type",
			},
			[]string{"type"},
		),
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_notifications_total",
				Help:      "Webhook deliveries by object type, event and outcome",
			},
			[]string{"object_type", "event_type", "outcome"},
		),
		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
		ConfigLastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "config_last_reload_timestamp",
				Help:      "Unix timestamp of last successful config reload",
			},
		),
	}
}

// ObserveRequest records one completed API request.
func (c *Collector) ObserveRequest(method, resource string, status int, duration time.Duration, err error) {
	c.RequestsTotal.WithLabelValues(method, resource, StatusClass(status)).Inc()
	c.RequestDuration.WithLabelValues(method, resource).Observe(duration.Seconds())
	if err != nil {
		c.RequestErrors.WithLabelValues(ErrorType(err)).Inc()
	}
}

// ObserveNotification records one webhook delivery outcome.
func (c *Collector) ObserveNotification(objectType, eventType, outcome string) {
	if objectType == "" {
		objectType = "unknown"
	}
	if eventType == "" {
		eventType = "unknown"
	}
	c.Notifications.WithLabelValues(objectType, eventType, outcome).Inc()
}

// ObserveReload records a config reload attempt; err is nil on success.
func (c *Collector) ObserveReload(err error) {
	if err != nil {
		c.ConfigReloadErrors.Inc()
		return
	}
	c.ConfigReloads.Inc()
	c.ConfigLastReload.SetToCurrentTime()
}

// StatusClass maps a status code to "2xx", "4xx", ...; 0 means no response.
func StatusClass(status int) string {
	if status <= 0 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}

// ErrorType labels an error by the API error type, or "transport" and
// "validation" for failures that never reached the API.
func ErrorType(err error) string {
	var apiErr *recurly.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type
	}
	var valErr *recurly.ValidationError
	if errors.As(err, &valErr) {
		return "validation"
	}
	return "transport"
}
