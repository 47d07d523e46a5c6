// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
package v2

import (
	"context"
	"reflect"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/arloliu/cqlstream/adapter/cql"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v2 session.
//
// This is useful for plugging existing gocql code into cqlstream.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	exec := cqlstream.NewExecutor(v2.WrapSession(session))
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - cql.Session: An adapter implementing cql.Session interface
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Query creates a new query for the given statement.
//
// Parameters:
//   - stmt: CQL statement with ? placeholders
//   - values: Values to bind to placeholders
//
// Returns:
//   - cql.Query: A query builder
func (s *Session) Query(stmt string, values ...any) cql.Query {
	return &Query{
		query:     s.session.Query(stmt, values...),
		statement: stmt,
		values:    values,
	}
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// Query wraps a gocql v2 query.
type Query struct {
	query     *gocql.Query
	statement string
	values    []any
}

// Consistency sets the consistency level.
func (q *Query) Consistency(c cql.Consistency) cql.Query {
	q.query = q.query.Consistency(gocql.Consistency(c))

	return q
}

// PageSize sets the page size.
func (q *Query) PageSize(n int) cql.Query {
	q.query = q.query.PageSize(n)

	return q
}

// PageState sets the pagination state.
func (q *Query) PageState(state []byte) cql.Query {
	q.query = q.query.PageState(state)

	return q
}

// Exec executes the query.
func (q *Query) Exec() error {
	return q.query.Exec()
}

// ExecContext executes the query with context.
func (q *Query) ExecContext(ctx context.Context) error {
	return q.query.ExecContext(ctx)
}

// Iter returns an iterator over one page of results.
func (q *Query) Iter() cql.Iter {
	return &Iter{iter: q.query.Iter()}
}

// IterContext returns an iterator over one page of results with context.
func (q *Query) IterContext(ctx context.Context) cql.Iter {
	return &Iter{iter: q.query.IterContext(ctx)}
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Release is a no-op for v2 as it doesn't have query pooling.
func (q *Query) Release() {
	// v2 driver doesn't have Release method - no-op
}

// Iter wraps a gocql v2 iterator.
type Iter struct {
	iter *gocql.Iter
	cols []cql.ColumnInfo
}

// Columns returns metadata about the columns in the result set.
func (i *Iter) Columns() []cql.ColumnInfo {
	if i.iter == nil {
		return nil
	}

	if i.cols == nil {
		gocqlCols := i.iter.Columns()
		i.cols = make([]cql.ColumnInfo, len(gocqlCols))
		for idx, col := range gocqlCols {
			i.cols[idx] = cql.ColumnInfo{
				Keyspace: col.Keyspace,
				Table:    col.Table,
				Name:     col.Name,
				Type:     convertTypeInfo(col.TypeInfo),
			}
		}
	}

	return i.cols
}

// MapScan reads the next row into a map. Null cells are omitted from the
// map entirely, so callers can tell a null apart from a zero value.
//
// The driver's own MapScan dereferences a pre-allocated zero value into
// every column, null or not. This method instead scans through
// pointer-to-pointer destinations built from each column's zero-value
// template; a null cell leaves the inner pointer nil. Tuple columns occupy
// one scan destination per element and are gathered into a single []any
// entry under the column name. Driver cell types are normalized: gocql.UUID
// becomes uuid.UUID and gocql.Duration becomes cql.Duration, recursively
// inside collections.
func (i *Iter) MapScan(m map[string]any) bool {
	if i.iter == nil {
		return false
	}

	gocqlCols := i.iter.Columns()

	var dests []any
	for _, col := range gocqlCols {
		if tuple, ok := col.TypeInfo.(gocql.TupleTypeInfo); ok {
			for _, elem := range tuple.Elems {
				dests = append(dests, nullableDest(elem))
			}
			continue
		}
		dests = append(dests, nullableDest(col.TypeInfo))
	}
	if !i.iter.Scan(dests...) {
		return false
	}

	pos := 0
	for _, col := range gocqlCols {
		if tuple, ok := col.TypeInfo.(gocql.TupleTypeInfo); ok {
			elems := make([]any, len(tuple.Elems))
			null := true
			for idx := range tuple.Elems {
				if v, ok := derefCell(dests[pos]); ok {
					elems[idx] = normalizeValue(v)
					null = false
				}
				pos++
			}
			// a tuple whose slots are all null is a null tuple cell
			if !null {
				m[col.Name] = elems
			}
			continue
		}

		if v, ok := derefCell(dests[pos]); ok {
			m[col.Name] = normalizeValue(v)
		}
		pos++
	}

	return true
}

// nullableDest builds a scan destination that distinguishes null cells: a
// pointer to a pointer to the column's Go type. Columns with no usable
// zero-value template fall back to a bare interface destination, which
// cannot represent null and scans as the zero value.
func nullableDest(ti gocql.TypeInfo) any {
	if ti != nil {
		if zero := ti.Zero(); zero != nil {
			return reflect.New(reflect.PointerTo(reflect.TypeOf(zero))).Interface()
		}
	}

	return new(any)
}

// derefCell unwraps a destination produced by nullableDest. The second
// return is false when the cell was null.
func derefCell(dest any) (any, bool) {
	v := reflect.ValueOf(dest).Elem()
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}

		return v.Elem().Interface(), true
	}

	// interface fallback destination
	if v.IsNil() {
		return nil, false
	}

	return v.Interface(), true
}

// NumRows returns the number of rows in the current page.
func (i *Iter) NumRows() int {
	if i.iter == nil {
		return 0
	}

	return i.iter.NumRows()
}

// PageState returns the pagination token.
func (i *Iter) PageState() []byte {
	if i.iter == nil {
		return nil
	}

	return i.iter.PageState()
}

// Warnings returns any warnings from the Cassandra server.
func (i *Iter) Warnings() []string {
	if i.iter == nil {
		return nil
	}

	return i.iter.Warnings()
}

// Close closes the iterator.
func (i *Iter) Close() error {
	if i.iter == nil {
		return nil
	}

	return i.iter.Close()
}
