// Package monitoring provides Prometheus metrics for the desktop backend.
//
// Metrics cover HTTP traffic, window manager operations, bus events,
// WebSocket connections, and session persistence. The gin middleware
// records per-request metrics; domain managers record their own operation
// counters through the shared Metrics value.
package monitoring
