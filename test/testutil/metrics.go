package testutil

import (
	"sync"

	"github.com/arloliu/cqlstream/types"
)

// TestMetricsCollector is a test implementation of types.MetricsCollector
// that tracks method calls for assertion in tests.
type TestMetricsCollector struct {
	mu sync.RWMutex

	// Query execution
	QueryTotal    int64
	QueryErrors   int64
	QueryDuration []float64

	// Page fetches
	PageFetchTotal    int64
	PageFetchErrors   int64
	PageFetchDuration []float64

	// Rows
	RowsYielded      int64
	RowErrors        int64
	ConversionErrors map[string]int64
}

// Compile-time assertion that TestMetricsCollector implements types.MetricsCollector.
var _ types.MetricsCollector = (*TestMetricsCollector)(nil)

// NewTestMetricsCollector creates a new test metrics collector.
func NewTestMetricsCollector() *TestMetricsCollector {
	return &TestMetricsCollector{
		ConversionErrors: make(map[string]int64),
	}
}

// IncQueryTotal counts a submitted query.
func (c *TestMetricsCollector) IncQueryTotal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.QueryTotal++
}

// IncQueryError counts a failed query.
func (c *TestMetricsCollector) IncQueryError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.QueryErrors++
}

// ObserveQueryDuration records a query duration.
func (c *TestMetricsCollector) ObserveQueryDuration(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.QueryDuration = append(c.QueryDuration, seconds)
}

// IncPageFetchTotal counts a page fetch.
func (c *TestMetricsCollector) IncPageFetchTotal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.PageFetchTotal++
}

// IncPageFetchError counts a failed page fetch.
func (c *TestMetricsCollector) IncPageFetchError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.PageFetchErrors++
}

// ObservePageFetchDuration records a page fetch duration.
func (c *TestMetricsCollector) ObservePageFetchDuration(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.PageFetchDuration = append(c.PageFetchDuration, seconds)
}

// AddRowsYielded counts yielded rows.
func (c *TestMetricsCollector) AddRowsYielded(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.RowsYielded += int64(count)
}

// IncRowError counts a failed row.
func (c *TestMetricsCollector) IncRowError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.RowErrors++
}

// IncConversionError counts a conversion failure per CQL type name.
func (c *TestMetricsCollector) IncConversionError(typeName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ConversionErrors[typeName]++
}

// MetricsSnapshot is a race-free copy of a collector's counters.
type MetricsSnapshot struct {
	QueryTotal        int64
	QueryErrors       int64
	QueryDuration     []float64
	PageFetchTotal    int64
	PageFetchErrors   int64
	PageFetchDuration []float64
	RowsYielded       int64
	RowErrors         int64
	ConversionErrors  map[string]int64
}

// Snapshot returns a copy of the collector for race-free assertions.
func (c *TestMetricsCollector) Snapshot() MetricsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	conv := make(map[string]int64, len(c.ConversionErrors))
	for k, v := range c.ConversionErrors {
		conv[k] = v
	}

	return MetricsSnapshot{
		QueryTotal:        c.QueryTotal,
		QueryErrors:       c.QueryErrors,
		QueryDuration:     append([]float64(nil), c.QueryDuration...),
		PageFetchTotal:    c.PageFetchTotal,
		PageFetchErrors:   c.PageFetchErrors,
		PageFetchDuration: append([]float64(nil), c.PageFetchDuration...),
		RowsYielded:       c.RowsYielded,
		RowErrors:         c.RowErrors,
		ConversionErrors:  conv,
	}
}
