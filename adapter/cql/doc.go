// Package cql defines the driver-neutral boundary between cqlstream and the
// underlying CQL driver.
//
// Two concrete adapters implement these interfaces:
//
//   - adapter/cql/v1 wraps github.com/gocql/gocql
//   - adapter/cql/v2 wraps github.com/apache/cassandra-gocql-driver/v2
//
// The interfaces cover exactly what the result-streaming engine needs: query
// construction with a page size, page-state driven pagination, per-page row
// iteration with column metadata, and value normalization. Write-path
// features of the drivers (batches, lightweight transactions) are
// intentionally absent; cqlstream is a read-oriented result engine and the
// thin Exec passthrough exists only so a host command can run DDL or DML
// statements that return no rows.
//
// # Pagination contract
//
// One Iter corresponds to one result page. The caller reads at most
// Iter.NumRows rows, captures Iter.PageState, closes the iterator, and
// re-executes the query with Query.PageState(token) to fetch the next page.
// An empty page state marks the final page. This mirrors the manual paging
// pattern both gocql drivers document.
//
// # Value normalization
//
// Adapters translate driver-private cell representations into neutral ones
// before rows leave MapScan, so the conversion layer never imports a driver:
//
//   - driver UUID types become github.com/google/uuid UUID values
//   - driver duration types become cql.Duration
//
// All other representations (Go integers, strings, time.Time, net.IP,
// *big.Int, *inf.Dec, slices and maps for collections) are shared by both
// drivers and pass through unchanged.
package cql
