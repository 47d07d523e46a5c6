// Package metrics provides internal metrics utilities for cqlstream.
package metrics

import "github.com/arloliu/cqlstream/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is configured,
// avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ----------------------
// Query Execution
// ----------------------

// IncQueryTotal discards the metric.
func (m *NopMetrics) IncQueryTotal() {}

// IncQueryError discards the metric.
func (m *NopMetrics) IncQueryError() {}

// ObserveQueryDuration discards the metric.
func (m *NopMetrics) ObserveQueryDuration(_ float64) {}

// ----------------------
// Page Fetches
// ----------------------

// IncPageFetchTotal discards the metric.
func (m *NopMetrics) IncPageFetchTotal() {}

// IncPageFetchError discards the metric.
func (m *NopMetrics) IncPageFetchError() {}

// ObservePageFetchDuration discards the metric.
func (m *NopMetrics) ObservePageFetchDuration(_ float64) {}

// ----------------------
// Rows
// ----------------------

// AddRowsYielded discards the metric.
func (m *NopMetrics) AddRowsYielded(_ int) {}

// IncRowError discards the metric.
func (m *NopMetrics) IncRowError() {}

// IncConversionError discards the metric.
func (m *NopMetrics) IncConversionError(_ string) {}
