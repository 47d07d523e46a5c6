// Package cql provides CQL-specific adapter interfaces for different gocql versions.
package cql

import "context"

// Consistency represents the Cassandra consistency level.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)

// Session represents a raw CQL session from the underlying driver.
//
// This interface is implemented by adapters for gocql v1 and v2. It provides
// the low-level operations that cqlstream drives: building paged queries and
// releasing the session.
type Session interface {
	// Query creates a new query for the given statement.
	//
	// Parameters:
	//   - stmt: CQL statement with ? placeholders
	//   - values: Values to bind to placeholders
	//
	// Returns:
	//   - Query: A query builder
	Query(stmt string, values ...any) Query

	// Close terminates the session.
	Close()
}

// Query represents a raw CQL query from the underlying driver.
//
// A query is configured fluently and then executed either via Exec (for
// statements with no result set) or Iter (for one page of results). The same
// query value is re-executed with a new page state to fetch subsequent pages.
type Query interface {
	// Consistency sets the consistency level.
	Consistency(c Consistency) Query

	// PageSize sets the page size, the row count fetched per page.
	PageSize(n int) Query

	// PageState sets the pagination state. An empty state starts from the
	// first page; a state token from a previous page's Iter resumes after it.
	PageState(state []byte) Query

	// Exec executes the query, discarding any results.
	Exec() error

	// ExecContext executes the query with context, discarding any results.
	ExecContext(ctx context.Context) error

	// Iter executes the query and returns an iterator over one page of
	// results.
	Iter() Iter

	// IterContext executes the query with context and returns an iterator
	// over one page of results.
	IterContext(ctx context.Context) Iter

	// Statement returns the CQL statement.
	Statement() string

	// Values returns the bound values.
	Values() []any

	// Release returns the query to a pool (if applicable).
	Release()
}

// Iter represents one page of query results from the underlying driver.
//
// Implementations normalize driver-specific cell values to the neutral forms
// documented on TypeInfo: driver UUID types become uuid.UUID, driver duration
// types become Duration, and so on. Callers read at most NumRows rows via
// MapScan and then Close the iterator; PageState carries the continuation
// token for the next page, empty on the final page.
type Iter interface {
	// Columns returns metadata about the columns in the result set.
	Columns() []ColumnInfo

	// MapScan reads the next row into a map keyed by column name. Null cells
	// are omitted from the map; implementations must not substitute zero
	// values for them. Returns false when the page has no more rows or an
	// error occurred; the error is reported by Close.
	MapScan(m map[string]any) bool

	// NumRows returns the number of rows in the current page.
	NumRows() int

	// PageState returns the pagination token for the next page, or an empty
	// slice on the final page.
	PageState() []byte

	// Warnings returns any warnings from the server for this page.
	Warnings() []string

	// Close releases the iterator and returns any error seen during
	// execution or iteration.
	Close() error
}

// ColumnInfo holds metadata about a column in query results.
type ColumnInfo struct {
	Keyspace string
	Table    string
	Name     string
	Type     TypeInfo
}

// Duration is a driver-neutral CQL duration: calendar months, days, and a
// nanosecond remainder, kept separate exactly as the wire protocol carries
// them.
type Duration struct {
	Months      int32
	Days        int32
	Nanoseconds int64
}
