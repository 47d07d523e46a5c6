package cqlstream

import (
	"context"
	"strings"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

// Executor turns CQL statements into paged result streams over an
// established session.
//
// An Executor is cheap and safe to share across goroutines; each Execute
// call produces an independent stream.
type Executor struct {
	session cql.Session
	cfg     *QueryConfig
}

// NewExecutor creates an executor over a session.
//
// Parameters:
//   - session: An adapted driver session (see adapter/cql/v1 and v2)
//   - opts: Configuration options applied over DefaultConfig
//
// Returns:
//   - *Executor: The configured executor
func NewExecutor(session cql.Session, opts ...Option) *Executor {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Executor{
		session: session,
		cfg:     cfg,
	}
}

// Execute validates and submits a statement, returning a stream over its
// results.
//
// Execute itself performs no I/O: the returned stream is in the NotStarted
// state and the first Next drives the first page fetch. Validation failures
// (nil session, empty statement, non-positive page size) return a
// *types.ExecError with no stream. Driver-side failures, such as a CQL
// syntax error or a lost connection, surface on the first pull as the
// stream's terminal error.
//
// Parameters:
//   - ctx: Context governing every page fetch of the stream
//   - stmt: CQL statement with ? placeholders
//   - values: Values to bind to placeholders
//
// Returns:
//   - *ResultStream: A stream in the NotStarted state
//   - error: *types.ExecError when validation fails
func (e *Executor) Execute(ctx context.Context, stmt string, values ...any) (*ResultStream, error) {
	if e.session == nil {
		return nil, &types.ExecError{Cause: types.ErrNilSession}
	}
	if strings.TrimSpace(stmt) == "" {
		return nil, &types.ExecError{Cause: types.ErrEmptyStatement}
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, &types.ExecError{Cause: err}
	}

	e.cfg.Metrics.IncQueryTotal()
	e.cfg.Logger.Debug("query submitted",
		"statement", stmt,
		"page_size", e.cfg.PageSize,
	)

	query := e.session.Query(stmt, values...).
		Consistency(e.cfg.Consistency).
		PageSize(e.cfg.PageSize)

	return newResultStream(ctx, query, e.cfg), nil
}

// Close terminates the underlying session. Streams created before Close
// fail on their next fetch.
func (e *Executor) Close() {
	if e.session != nil {
		e.session.Close()
	}
}
