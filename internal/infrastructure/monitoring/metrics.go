package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window manager metrics
	WindowsOpen     prometheus.Gauge
	WindowOpsTotal  *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// Session metrics
	SessionsSaved    prometheus.Counter
	SessionsRestored prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desktop_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		WindowsOpen: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "desktop_windows_open",
				Help: "Number of currently open windows",
			},
		),
		WindowOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_window_operations_total",
				Help: "Total window manager operations by kind",
			},
			[]string{"op"},
		),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_events_published_total",
				Help: "Total events published on the desktop bus",
			},
			[]string{"type"},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "desktop_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_ws_messages_total",
				Help: "Total WebSocket messages by direction and type",
			},
			[]string{"direction", "type"},
		),

		SessionsSaved: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "desktop_sessions_saved_total",
				Help: "Total sessions saved",
			},
		),
		SessionsRestored: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "desktop_sessions_restored_total",
				Help: "Total sessions restored",
			},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "desktop_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordWindowOp counts one window manager operation
func (m *Metrics) RecordWindowOp(op string) {
	m.WindowOpsTotal.WithLabelValues(op).Inc()
}

// SetOpenWindows updates the open-window gauge
func (m *Metrics) SetOpenWindows(n int) {
	m.WindowsOpen.Set(float64(n))
}

// RecordEvent counts one published bus event
func (m *Metrics) RecordEvent(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordSessionSave counts one saved session
func (m *Metrics) RecordSessionSave() {
	m.SessionsSaved.Inc()
}

// RecordSessionRestore counts one restored session
func (m *Metrics) RecordSessionRestore() {
	m.SessionsRestored.Inc()
}

// RecordWSMessage counts one WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// WSConnected adjusts the active connection gauge
func (m *Metrics) WSConnected(delta int) {
	m.WSConnections.Add(float64(delta))
}
