// Package testutil provides test utilities and mock implementations for
// cqlstream testing.
//
// This package provides scripted mock implementations of the adapter
// interfaces for unit testing, a call-counting metrics collector, and helper
// functions for integration tests against a real Cassandra container.
//
// # Mock Implementations
//
//   - [MockSession]: Scripted implementation of cql.Session
//   - [MockQuery]: Scripted implementation of cql.Query
//   - [MockIter]: Scripted implementation of cql.Iter
//   - [TestMetricsCollector]: Call-counting types.MetricsCollector
//
// # Usage
//
// Script a paged result set and run a stream over it:
//
//	session := testutil.NewMockSession(testutil.PageScript{
//	    Columns: cols,
//	    Pages: [][]map[string]any{
//	        {{"id": 1}, {"id": 2}},
//	        {{"id": 3}},
//	    },
//	})
//
//	exec := cqlstream.NewExecutor(session, cqlstream.WithPageSize(2))
//	stream, _ := exec.Execute(ctx, "SELECT id FROM t")
//
// # Integration Test Helpers
//
// StartCassandraContainer starts a disposable Cassandra container via
// testcontainers-go for end-to-end tests. It is skipped in short mode.
package testutil
