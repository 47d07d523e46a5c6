package cqlstream

import (
	"context"
	"errors"
	"time"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

// StreamState is the lifecycle state of a result stream.
type StreamState int32

// Stream lifecycle states.
const (
	// StateNotStarted means no page has been requested yet. Execute performs
	// no I/O; the first Next drives the first fetch.
	StateNotStarted StreamState = iota

	// StatePageReady means a page is buffered and rows are being yielded
	// from it.
	StatePageReady

	// StateFetchingNextPage means the buffered page is drained and the next
	// page is being fetched from the driver.
	StateFetchingNextPage

	// StateExhausted means the final page was drained. Terminal.
	StateExhausted

	// StateFailed means a page fetch or row materialization failed. Terminal;
	// Err reports the failure once the stream enters this state.
	StateFailed
)

// String returns the state name.
func (s StreamState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePageReady:
		return "page_ready"
	case StateFetchingNextPage:
		return "fetching_next_page"
	case StateExhausted:
		return "exhausted"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

// ResultStream yields the records of one query, one page at a time.
//
// A stream buffers a single page of raw scanned rows; each Next call
// materializes one record from the buffer. A row that fails to materialize
// fails the stream at its own pull, so records preceding it are still
// yielded. Draining the buffer triggers the next fetch: the statement is
// re-executed with the page state token of the previous page, exactly one
// driver round trip per page. Iteration follows the scanner idiom:
//
//	stream, err := exec.Execute(ctx, "SELECT ... ")
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	for stream.Next() {
//	    rec := stream.Record()
//	    ...
//	}
//	if err := stream.Err(); err != nil {
//	    return err
//	}
//
// A ResultStream belongs to a single goroutine.
type ResultStream struct {
	ctx     context.Context
	query   cql.Query
	logger  types.Logger
	metrics types.MetricsCollector

	state     StreamState
	cols      []cql.ColumnInfo
	page      []map[string]any
	pos       int
	cur       *types.Record
	pageToken []byte
	warnings  []string
	err       error
	closed    bool
	observed  bool
	fetches   int
	began     time.Time
}

// newResultStream wraps a configured driver query. No I/O happens here.
func newResultStream(ctx context.Context, query cql.Query, cfg *QueryConfig) *ResultStream {
	return &ResultStream{
		ctx:     ctx,
		query:   query,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		state:   StateNotStarted,
	}
}

// Next advances to the next record, fetching the next page when the buffered
// one is drained. It returns false when the stream is exhausted, failed, or
// closed; Err distinguishes those outcomes.
func (s *ResultStream) Next() bool {
	if s.closed {
		// Pulling from a closed stream that still had pages left is a
		// caller bug, surfaced like database/sql does.
		if s.state != StateExhausted && s.state != StateFailed {
			s.state = StateFailed
			s.err = &types.StreamError{Op: "next", Cause: types.ErrStreamClosed}
		}
		return false
	}

	if s.state == StateExhausted || s.state == StateFailed {
		return false
	}

	for {
		if s.pos < len(s.page) {
			rec, err := materializeRow(s.page[s.pos], s.cols)
			if err != nil {
				s.metrics.IncRowError()
				if name, ok := conversionTypeName(err); ok {
					s.metrics.IncConversionError(name)
				}
				s.fail(err)
				return false
			}
			s.pos++
			s.cur = rec
			s.metrics.AddRowsYielded(1)
			return true
		}

		if s.state == StatePageReady && len(s.pageToken) == 0 {
			s.state = StateExhausted
			s.observeQueryDuration()
			s.logger.Debug("result stream exhausted", "fetches", s.fetches)
			return false
		}

		if !s.fetchPage() {
			return false
		}
	}
}

// Record returns the record produced by the last successful Next. It is
// valid until the next call to Next.
func (s *ResultStream) Record() *types.Record {
	return s.cur
}

// Err returns the terminal error of a failed stream, nil otherwise. Normal
// exhaustion is not an error.
func (s *ResultStream) Err() error {
	return s.err
}

// State returns the current lifecycle state.
func (s *ResultStream) State() StreamState {
	return s.state
}

// Columns returns the result set's column metadata, in schema order. It is
// nil until the first page has been fetched.
func (s *ResultStream) Columns() []cql.ColumnInfo {
	return s.cols
}

// Warnings returns the server warnings reported with the most recent page.
func (s *ResultStream) Warnings() []string {
	return s.warnings
}

// Close releases the driver query. It is safe to call before exhaustion and
// is idempotent.
func (s *ResultStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.page = nil
	s.cur = nil
	s.observeQueryDuration()
	s.query.Release()

	return nil
}

// Collect drains the remaining records and closes the stream.
//
// Returns:
//   - []*types.Record: All records yielded after the call
//   - error: The stream's terminal error, if it failed
func (s *ResultStream) Collect() ([]*types.Record, error) {
	defer s.Close()

	var records []*types.Record
	for s.Next() {
		records = append(records, s.Record())
	}

	return records, s.Err()
}

// fetchPage executes one driver round trip and buffers the raw rows of one
// page. Rows are not materialized here; Next converts them one at a time.
// It returns false when the stream entered a terminal state.
func (s *ResultStream) fetchPage() bool {
	s.state = StateFetchingNextPage
	s.metrics.IncPageFetchTotal()
	start := time.Now()
	if s.began.IsZero() {
		s.began = start
	}

	iter := s.query.PageState(s.pageToken).IterContext(s.ctx)

	cols := iter.Columns()
	if s.cols == nil {
		s.cols = cols
	}

	n := iter.NumRows()
	page := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		row := make(map[string]any, len(cols))
		if !iter.MapScan(row) {
			break
		}
		page = append(page, row)
	}

	token := iter.PageState()
	s.warnings = iter.Warnings()
	if err := iter.Close(); err != nil {
		s.metrics.IncPageFetchError()
		s.fail(&types.StreamError{Op: "fetch page", Cause: err})
		return false
	}

	s.page = page
	s.pos = 0
	s.pageToken = token
	s.state = StatePageReady
	s.fetches++
	s.metrics.ObservePageFetchDuration(time.Since(start).Seconds())
	s.logger.Debug("page fetched",
		"rows", len(page),
		"fetch", s.fetches,
		"more", len(token) > 0,
	)

	return true
}

// fail moves the stream to its failed terminal state.
func (s *ResultStream) fail(err error) {
	s.state = StateFailed
	s.err = err
	s.metrics.IncQueryError()
	s.observeQueryDuration()
	s.page = nil
	s.cur = nil
	s.logger.Error("result stream failed", "error", err)
}

// observeQueryDuration records the end-to-end query duration exactly once,
// on whichever terminal transition comes first. Streams closed before the
// first fetch record nothing.
func (s *ResultStream) observeQueryDuration() {
	if s.observed || s.began.IsZero() {
		return
	}
	s.observed = true
	s.metrics.ObserveQueryDuration(time.Since(s.began).Seconds())
}

// conversionTypeName extracts the CQL type name from a conversion error
// chain, for the per-type conversion error counter.
func conversionTypeName(err error) (string, bool) {
	var unsupported *types.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return unsupported.TypeName, true
	}

	var arity *types.ArityMismatchError
	if errors.As(err, &arity) {
		return arity.TypeName, true
	}

	var mismatch *types.MismatchError
	if errors.As(err, &mismatch) {
		return mismatch.TypeName, true
	}

	return "", false
}
