// Package middleware provides observability decorators for a navigation
// router: Prometheus metrics and OpenTelemetry tracing.
//
// Decorators wrap the Navigator surface and can be stacked:
//
//	nav := middleware.OpenTelemetry(middleware.Prometheus(r))
//	nav.Push("/users/123")
package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/junction-ui/junction/pkg/router"
)

// Navigator is the navigation surface the decorators wrap. *router.Router
// implements it.
type Navigator interface {
	Push(path string) error
	PushState(path string, state any) error
	Replace(path string) error
	Back() error
	Forward() error
	HandleDeepLink(url string) error
}

// MetricsConfig configures the Prometheus decorator.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "junction").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus decorator.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "junction",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for navigation.
type metrics struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	navigationErrors   *prometheus.CounterVec
}

// globalMetrics is the singleton metrics instance, created on the first
// call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigation transactions by event and status",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation transaction duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"event"}),

		navigationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_errors_total",
			Help:        "Total number of failed navigation transactions by event and kind",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "kind"}),
	}
}

// GetMetrics returns the initialized metrics collector, or nil before the
// first Prometheus() call.
func GetMetrics() *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}

// MetricsNavigator is a Navigator that records Prometheus metrics for
// every navigation call.
type MetricsNavigator struct {
	nav Navigator
	m   *metrics
}

// Prometheus wraps nav so every navigation call records metrics.
//
// Metrics collected:
//   - junction_navigations_total: Counter by event and status
//   - junction_navigation_duration_seconds: Histogram by event
//   - junction_navigation_errors_total: Counter by event and failure kind
//
// Example:
//
//	nav := middleware.Prometheus(r, middleware.WithNamespace("myapp"))
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(nav Navigator, opts ...MetricsOption) *MetricsNavigator {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return &MetricsNavigator{nav: nav, m: m}
}

// record times one navigation call and updates the counters.
func (n *MetricsNavigator) record(event string, fn func() error) error {
	start := time.Now()
	err := fn()
	n.m.navigationDuration.WithLabelValues(event).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
		n.m.navigationErrors.WithLabelValues(event, router.KindOf(err).String()).Inc()
	}
	n.m.navigationsTotal.WithLabelValues(event, status).Inc()
	return err
}

// Push implements Navigator.
func (n *MetricsNavigator) Push(path string) error {
	return n.record(router.EventPush.String(), func() error { return n.nav.Push(path) })
}

// PushState implements Navigator.
func (n *MetricsNavigator) PushState(path string, state any) error {
	return n.record(router.EventPush.String(), func() error { return n.nav.PushState(path, state) })
}

// Replace implements Navigator.
func (n *MetricsNavigator) Replace(path string) error {
	return n.record(router.EventReplace.String(), func() error { return n.nav.Replace(path) })
}

// Back implements Navigator.
func (n *MetricsNavigator) Back() error {
	return n.record(router.EventBack.String(), func() error { return n.nav.Back() })
}

// Forward implements Navigator.
func (n *MetricsNavigator) Forward() error {
	return n.record(router.EventForward.String(), func() error { return n.nav.Forward() })
}

// HandleDeepLink implements Navigator.
func (n *MetricsNavigator) HandleDeepLink(url string) error {
	return n.record(router.EventDeepLink.String(), func() error { return n.nav.HandleDeepLink(url) })
}
