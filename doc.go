// Package cqlstream executes CQL queries and streams their results as
// structured, driver-neutral values.
//
// The package sits between a Cassandra driver and a consumer that wants
// typed, inspectable records rather than raw driver cells: each row becomes
// an ordered column-to-value record, each cell a tagged value that keeps its
// CQL type's precision.
//
// # Key Features
//
//   - Paged Streaming: One page buffered at a time, fetched via page-state
//     token re-execution. Memory stays bounded by the page size regardless
//     of result set size.
//   - Lossless Conversion: Integers and floats keep their bit width, blobs
//     their exact bytes, timestamps normalize to UTC, decimals and varints
//     become canonical strings rather than truncated numbers.
//   - Full Type Coverage: Scalars, collections, tuples and UDTs convert
//     recursively; anything outside the model fails loudly instead of
//     degrading silently.
//   - Driver Neutral: Adapter interfaces support both gocql v1 and the
//     Apache Cassandra gocql driver v2.
//
// # Basic Usage
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exec := cqlstream.NewExecutor(v1.WrapSession(gocqlSession),
//	    cqlstream.WithPageSize(1024),
//	)
//	defer exec.Close()
//
//	stream, err := exec.Execute(ctx, "SELECT * FROM users WHERE org = ?", org)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for stream.Next() {
//	    rec := stream.Record()
//	    name, _ := rec.Get("name")
//	    fmt.Println(name)
//	}
//	if err := stream.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Validation failures return a *types.ExecError from Execute and produce no
// stream. Everything after submission flows through the stream: a page fetch
// failure or a row that cannot be converted moves the stream to its Failed
// state, Next returns false, and Err reports the cause exactly once. Row
// failures carry a *types.RowError naming the column; fetch failures carry a
// *types.StreamError wrapping the driver error.
//
//	if err := stream.Err(); err != nil {
//	    var rowErr *types.RowError
//	    if errors.As(err, &rowErr) {
//	        log.Printf("column %s: %v", rowErr.Column, rowErr.Cause)
//	    }
//	}
//
// # Observability
//
// Logging and metrics are interface-based: plug a types.Logger (zap's
// sugared logger satisfies it) and a types.MetricsCollector (see
// contrib/metrics/vm for a VictoriaMetrics implementation). Both default to
// no-ops.
package cqlstream
