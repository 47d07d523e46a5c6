// Package v1 provides an adapter for gocql v1 (github.com/gocql/gocql).
package v1

import (
	"context"
	"fmt"
	"reflect"

	"github.com/gocql/gocql"

	"github.com/arloliu/cqlstream/adapter/cql"
)

// Session wraps a gocql v1 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v1 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v1 session.
//
// This is useful for plugging existing gocql code into cqlstream.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	exec := cqlstream.NewExecutor(v1.WrapSession(session))
//
// Parameters:
//   - session: A gocql.Session instance
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

// Query wraps a gocql v1 query.
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
	return q.query.WithContext(ctx).Exec()
}

// Iter returns an iterator over one page of results.
func (q *Query) Iter() cql.Iter {
	return &Iter{iter: q.query.Iter()}
}

// IterContext returns an iterator over one page of results with context.
func (q *Query) IterContext(ctx context.Context) cql.Iter {
	return &Iter{iter: q.query.WithContext(ctx).Iter()}
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Release returns the query to the pool.
func (q *Query) Release() {
	q.query.Release()
}

// Iter wraps a gocql v1 iterator.
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
// gocql's own MapScan cannot make that distinction: it dereferences a
// pre-allocated zero value into every column, null or not. This method
// instead scans through pointer-to-pointer destinations built from the
// row's value templates; a null cell leaves the inner pointer nil.
//
// gocql v1 splits tuple columns into one slot per element, keyed "name[0]",
// "name[1]" and so on. Those are reassembled into a single []any entry
// under the column name, so callers see one cell per column. Driver cell
// types are normalized: gocql.UUID becomes uuid.UUID and gocql.Duration
// becomes cql.Duration, recursively inside collections.
func (i *Iter) MapScan(m map[string]any) bool {
	if i.iter == nil {
		return false
	}

	rd, err := i.iter.RowData()
	if err != nil {
		return false
	}

	dests := make([]any, len(rd.Values))
	for idx, v := range rd.Values {
		dests[idx] = reflect.New(reflect.TypeOf(v)).Interface()
	}
	if !i.iter.Scan(dests...) {
		return false
	}

	raw := make(map[string]any, len(rd.Columns))
	for idx, name := range rd.Columns {
		inner := reflect.ValueOf(dests[idx]).Elem()
		if inner.IsNil() {
			continue
		}
		raw[name] = inner.Elem().Interface()
	}

	for _, col := range i.Columns() {
		if col.Type.Type == cql.TypeTuple {
			elems := make([]any, len(col.Type.Elems))
			null := true
			for idx := range col.Type.Elems {
				slot, ok := raw[fmt.Sprintf("%s[%d]", col.Name, idx)]
				if ok {
					null = false
				}
				elems[idx] = normalizeValue(slot)
			}
			// a tuple whose slots are all null is a null tuple cell
			if !null {
				m[col.Name] = elems
			}
			continue
		}

		if v, ok := raw[col.Name]; ok {
			m[col.Name] = normalizeValue(v)
		}
	}

	return true
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
