// Package vm provides a VictoriaMetrics-based implementation of the
// MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with the default prefix "cqlstream":
//
//	collector := vm.New()
//	exec := cqlstream.NewExecutor(session,
//	    cqlstream.WithMetrics(collector),
//	)
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// This produces metrics like:
//   - myapp_query_total
//   - myapp_page_fetch_duration_seconds
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// Or use WritePrometheus to write metrics to a custom writer:
//
//	collector.WritePrometheus(w)
//
// # Metrics Provided
//
// Query execution:
//   - {prefix}_query_total - Counter of submitted queries
//   - {prefix}_query_errors_total - Counter of failed queries
//   - {prefix}_query_duration_seconds - Histogram of full query durations
//
// Page fetches:
//   - {prefix}_page_fetch_total - Counter of page fetches
//   - {prefix}_page_fetch_errors_total - Counter of failed page fetches
//   - {prefix}_page_fetch_duration_seconds - Histogram of page fetch latencies
//
// Rows:
//   - {prefix}_rows_yielded_total - Counter of yielded rows
//   - {prefix}_row_errors_total - Counter of rows that failed to materialize
//   - {prefix}_conversion_errors_total{cql_type} - Counter of conversion failures per CQL type
//
// # Performance Notes
//
// Fixed-name metrics are pre-created at initialization time using the NewXXX
// pattern (instead of GetOrCreateXXX) for optimal performance in hot paths,
// as recommended by the VictoriaMetrics documentation. The per-type
// conversion error counters are created on first use.
//
// The metrics are registered with a dedicated Set that is registered
// globally, allowing standard Prometheus scraping.
package vm
