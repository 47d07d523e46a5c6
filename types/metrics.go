package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations should be thread-safe as methods may be called concurrently
// by independent streams.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/arloliu/cqlstream/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	exec, _ := cqlstream.NewExecutor(session,
//	    cqlstream.WithMetrics(collector),
//	)
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Query Execution
	// ----------------------

	// IncQueryTotal increments the total executed queries counter.
	IncQueryTotal()

	// IncQueryError increments the query error counter. Counts both
	// submission failures and streams that end in the failed state.
	IncQueryError()

	// ObserveQueryDuration records a full query duration in seconds, from
	// the first pull until the stream terminates: exhaustion, failure, or
	// close. Observed at most once per stream; streams closed before their
	// first pull record nothing.
	ObserveQueryDuration(seconds float64)

	// ----------------------
	// Page Fetches
	// ----------------------

	// IncPageFetchTotal increments the page fetch counter.
	IncPageFetchTotal()

	// IncPageFetchError increments the page fetch error counter.
	IncPageFetchError()

	// ObservePageFetchDuration records one page fetch duration in seconds.
	ObservePageFetchDuration(seconds float64)

	// ----------------------
	// Rows
	// ----------------------

	// AddRowsYielded adds to the counter of records yielded to the consumer.
	AddRowsYielded(count int)

	// IncRowError increments the counter of rows that failed to materialize.
	IncRowError()

	// IncConversionError increments the per-type conversion error counter.
	IncConversionError(typeName string)
}
