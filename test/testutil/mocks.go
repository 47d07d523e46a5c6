package testutil

import (
	"context"
	"sync"

	"github.com/arloliu/cqlstream/adapter/cql"
)

// PageScript describes the paged result set a MockSession serves.
//
// Pages holds the rows of each page in fetch order. FailAt, when positive,
// makes that fetch (1-based) fail: its iterator reports no columns and no
// rows, and Close returns FetchErr, which is how a real driver iterator
// reports an execution failure.
type PageScript struct {
	Columns  []cql.ColumnInfo
	Pages    [][]map[string]any
	Warnings []string
	FailAt   int
	FetchErr error
}

// MockSession is a scripted implementation of cql.Session for unit tests.
type MockSession struct {
	mu      sync.Mutex
	script  PageScript
	queries []*MockQuery
	closed  bool

	// OnQuery overrides query creation when set.
	OnQuery func(stmt string, values ...any) cql.Query
}

// Compile-time assertion that MockSession implements cql.Session.
var _ cql.Session = (*MockSession)(nil)

// NewMockSession creates a mock session serving the given script.
func NewMockSession(script PageScript) *MockSession {
	return &MockSession{script: script}
}

// Query returns a scripted mock query.
func (m *MockSession) Query(stmt string, values ...any) cql.Query {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OnQuery != nil {
		return m.OnQuery(stmt, values...)
	}

	q := &MockQuery{
		session:   m,
		statement: stmt,
		values:    values,
	}
	m.queries = append(m.queries, q)

	return q
}

// Close marks the session as closed.
func (m *MockSession) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
}

// IsClosed reports whether Close was called.
func (m *MockSession) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Queries returns the queries created so far.
func (m *MockSession) Queries() []*MockQuery {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*MockQuery(nil), m.queries...)
}

// MockQuery is a scripted implementation of cql.Query.
//
// Page tokens are a single byte holding the index of the next page, so tests
// can assert the exact token round trip the stream performs.
type MockQuery struct {
	session   *MockSession
	statement string
	values    []any

	consistency cql.Consistency
	pageSize    int
	pageToken   []byte

	// FetchCount is the number of iterators created from this query.
	FetchCount int

	// ReleaseCount is the number of Release calls.
	ReleaseCount int
}

// Compile-time assertion that MockQuery implements cql.Query.
var _ cql.Query = (*MockQuery)(nil)

// Consistency records the consistency level.
func (q *MockQuery) Consistency(c cql.Consistency) cql.Query {
	q.consistency = c
	return q
}

// ConsistencyLevel returns the recorded consistency level.
func (q *MockQuery) ConsistencyLevel() cql.Consistency {
	return q.consistency
}

// PageSize records the page size.
func (q *MockQuery) PageSize(n int) cql.Query {
	q.pageSize = n
	return q
}

// PageSizeValue returns the recorded page size.
func (q *MockQuery) PageSizeValue() int {
	return q.pageSize
}

// PageState records the pagination token for the next fetch.
func (q *MockQuery) PageState(state []byte) cql.Query {
	q.pageToken = state
	return q
}

// Exec is a no-op.
func (q *MockQuery) Exec() error {
	return nil
}

// ExecContext is a no-op.
func (q *MockQuery) ExecContext(_ context.Context) error {
	return nil
}

// Iter serves the page addressed by the recorded page token.
func (q *MockQuery) Iter() cql.Iter {
	q.FetchCount++

	page := 0
	if len(q.pageToken) > 0 {
		page = int(q.pageToken[0])
	}

	script := q.session.script
	if script.FailAt > 0 && q.FetchCount == script.FailAt {
		return &MockIter{err: script.FetchErr}
	}

	var rows []map[string]any
	if page < len(script.Pages) {
		rows = script.Pages[page]
	}

	var token []byte
	if page+1 < len(script.Pages) {
		token = []byte{byte(page + 1)}
	}

	return &MockIter{
		cols:     script.Columns,
		rows:     rows,
		token:    token,
		warnings: script.Warnings,
	}
}

// IterContext serves the page addressed by the recorded page token.
func (q *MockQuery) IterContext(_ context.Context) cql.Iter {
	return q.Iter()
}

// Statement returns the CQL statement.
func (q *MockQuery) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *MockQuery) Values() []any {
	return q.values
}

// Release counts the release.
func (q *MockQuery) Release() {
	q.ReleaseCount++
}

// MockIter is a scripted implementation of cql.Iter serving one page.
type MockIter struct {
	cols     []cql.ColumnInfo
	rows     []map[string]any
	pos      int
	token    []byte
	warnings []string
	err      error
	closed   bool
}

// Compile-time assertion that MockIter implements cql.Iter.
var _ cql.Iter = (*MockIter)(nil)

// Columns returns the scripted column metadata. A failing iterator has none.
func (i *MockIter) Columns() []cql.ColumnInfo {
	if i.err != nil {
		return nil
	}

	return i.cols
}

// MapScan copies the next row into m.
func (i *MockIter) MapScan(m map[string]any) bool {
	if i.err != nil || i.pos >= len(i.rows) {
		return false
	}

	for k, v := range i.rows[i.pos] {
		m[k] = v
	}
	i.pos++

	return true
}

// NumRows returns the scripted row count.
func (i *MockIter) NumRows() int {
	if i.err != nil {
		return 0
	}

	return len(i.rows)
}

// PageState returns the scripted continuation token.
func (i *MockIter) PageState() []byte {
	return i.token
}

// Warnings returns the scripted warnings.
func (i *MockIter) Warnings() []string {
	return i.warnings
}

// SetWarnings scripts the warnings reported with this page.
func (i *MockIter) SetWarnings(warnings []string) {
	i.warnings = warnings
}

// Close returns the scripted fetch error, if any.
func (i *MockIter) Close() error {
	i.closed = true
	return i.err
}

// Closed reports whether Close was called.
func (i *MockIter) Closed() bool {
	return i.closed
}
