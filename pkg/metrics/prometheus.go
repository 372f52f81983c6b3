// Package metrics provides Prometheus metrics for the tidemark timeline visual.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the visual.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Update cycle metrics - one update is one host-triggered render
	updatesTotal   prometheus.Counter
	updateFailures prometheus.Counter
	lastUpdateUnix prometheus.Gauge

	// Data mapper metrics
	rowsMapped        prometheus.Counter
	invalidDates      prometheus.Counter
	transformDuration prometheus.Histogram

	// Renderer metrics
	renderDuration prometheus.Histogram
	markerCount    prometheus.Gauge
	recordCount    prometheus.Gauge

	// Interaction metrics
	hoverEnters prometheus.Counter
	hoverLeaves prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tidemark",
		subsystem:        "visual",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.updatesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "updates_total",
		Help:      "Total number of host-triggered update cycles",
	})

	m.updateFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "update_failures_total",
		Help:      "Total number of update cycles aborted by an error",
	})

	m.lastUpdateUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_update_unix",
		Help:      "Unix timestamp of the last completed update cycle",
	})

	m.rowsMapped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_mapped_total",
		Help:      "Total number of host table rows mapped into records",
	})

	m.invalidDates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_dates_total",
		Help:      "Total number of cells that could not be parsed as dates",
	})

	m.transformDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "transform_duration_milliseconds",
		Help:      "Histogram of data mapper transform duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.renderDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_duration_milliseconds",
		Help:      "Histogram of scene render duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.markerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "marker_count",
		Help:      "Number of distinct date markers in the last rendered scene",
	})

	m.recordCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "record_count",
		Help:      "Number of records produced by the last transform",
	})

	m.hoverEnters = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hover_enters_total",
		Help:      "Total number of pointer-enter transitions on markers",
	})

	m.hoverLeaves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hover_leaves_total",
		Help:      "Total number of pointer-leave transitions on markers",
	})
}

// Registry returns the registry metrics are registered on.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

// RecordUpdate records a completed update cycle.
func RecordUpdate(completedUnix int64) {
	globalManager.updatesTotal.Inc()
	globalManager.lastUpdateUnix.Set(float64(completedUnix))
}

// RecordUpdateFailure records an update cycle aborted by an error.
func RecordUpdateFailure() {
	globalManager.updateFailures.Inc()
}

// RecordRowsMapped records rows mapped in one transform.
func RecordRowsMapped(n int) {
	globalManager.rowsMapped.Add(float64(n))
}

// RecordInvalidDate records a cell that could not be parsed as a date.
func RecordInvalidDate() {
	globalManager.invalidDates.Inc()
}

// RecordTransformDuration records transform duration in milliseconds.
func RecordTransformDuration(ms float64) {
	globalManager.transformDuration.Observe(ms)
}

// RecordRenderDuration records render duration in milliseconds.
func RecordRenderDuration(ms float64) {
	globalManager.renderDuration.Observe(ms)
}

// UpdateMarkerCount sets the marker count for the last scene.
func UpdateMarkerCount(n int) {
	globalManager.markerCount.Set(float64(n))
}

// UpdateRecordCount sets the record count for the last transform.
func UpdateRecordCount(n int) {
	globalManager.recordCount.Set(float64(n))
}

// RecordHoverEnter records a pointer-enter transition.
func RecordHoverEnter() {
	globalManager.hoverEnters.Inc()
}

// RecordHoverLeave records a pointer-leave transition.
func RecordHoverLeave() {
	globalManager.hoverLeaves.Inc()
}
