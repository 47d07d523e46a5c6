package vm

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/VictoriaMetrics/metrics"

	"github.com/arloliu/cqlstream/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cqlstream"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector registers metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All fixed-name metrics are pre-created at initialization using the NewXXX
// pattern instead of GetOrCreateXXX, keeping the hot paths allocation-free.
// The per-type conversion error counters are created lazily, since the set
// of failing CQL types is not known up front.
type Collector struct {
	prefix string
	set    *metrics.Set

	queryTotal    *metrics.Counter
	queryErrors   *metrics.Counter
	queryDuration *metrics.Histogram

	pageFetchTotal    *metrics.Counter
	pageFetchErrors   *metrics.Counter
	pageFetchDuration *metrics.Histogram

	rowsYielded *metrics.Counter
	rowErrors   *metrics.Counter

	convMu     sync.Mutex
	convErrors map[string]*metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a VictoriaMetrics-backed collector.
//
// Parameters:
//   - opts: Configuration options
//
// Returns:
//   - *Collector: The configured collector
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	exec := cqlstream.NewExecutor(session,
//	    cqlstream.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix:     "cqlstream",
		convErrors: make(map[string]*metrics.Counter),
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all fixed-name metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.queryTotal = c.set.NewCounter(p + "_query_total")
	c.queryErrors = c.set.NewCounter(p + "_query_errors_total")
	c.queryDuration = c.set.NewHistogram(p + "_query_duration_seconds")

	c.pageFetchTotal = c.set.NewCounter(p + "_page_fetch_total")
	c.pageFetchErrors = c.set.NewCounter(p + "_page_fetch_errors_total")
	c.pageFetchDuration = c.set.NewHistogram(p + "_page_fetch_duration_seconds")

	c.rowsYielded = c.set.NewCounter(p + "_rows_yielded_total")
	c.rowErrors = c.set.NewCounter(p + "_row_errors_total")
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler is an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncQueryTotal increments the submitted query counter.
func (c *Collector) IncQueryTotal() {
	c.queryTotal.Inc()
}

// IncQueryError increments the failed query counter.
func (c *Collector) IncQueryError() {
	c.queryErrors.Inc()
}

// ObserveQueryDuration records a full query duration in seconds.
func (c *Collector) ObserveQueryDuration(seconds float64) {
	c.queryDuration.Update(seconds)
}

// IncPageFetchTotal increments the page fetch counter.
func (c *Collector) IncPageFetchTotal() {
	c.pageFetchTotal.Inc()
}

// IncPageFetchError increments the failed page fetch counter.
func (c *Collector) IncPageFetchError() {
	c.pageFetchErrors.Inc()
}

// ObservePageFetchDuration records a page fetch duration in seconds.
func (c *Collector) ObservePageFetchDuration(seconds float64) {
	c.pageFetchDuration.Update(seconds)
}

// AddRowsYielded adds to the yielded row counter.
func (c *Collector) AddRowsYielded(count int) {
	c.rowsYielded.Add(count)
}

// IncRowError increments the failed row counter.
func (c *Collector) IncRowError() {
	c.rowErrors.Inc()
}

// IncConversionError increments the conversion failure counter for a CQL
// type name.
func (c *Collector) IncConversionError(typeName string) {
	c.convMu.Lock()
	counter, ok := c.convErrors[typeName]
	if !ok {
		counter = c.set.NewCounter(fmt.Sprintf(`%s_conversion_errors_total{cql_type=%q}`, c.prefix, typeName))
		c.convErrors[typeName] = counter
	}
	c.convMu.Unlock()

	counter.Inc()
}
