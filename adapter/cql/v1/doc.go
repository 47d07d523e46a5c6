// Package v1 provides an adapter for gocql v1.x to work with cqlstream.
//
// This adapter wraps gocql sessions, queries, and iterators to implement
// the cqlstream CQL interfaces.
//
// # Installation
//
// Import this package along with gocql v1.x:
//
//	import (
//	    "github.com/gocql/gocql"
//	    "github.com/arloliu/cqlstream/adapter/cql/v1"
//	)
//
// # Usage
//
// Create a gocql session and wrap it with the v1 adapter:
//
//	// Configure gocql cluster
//	cluster := gocql.NewCluster("127.0.0.1", "127.0.0.2")
//	cluster.Keyspace = "my_keyspace"
//	cluster.Consistency = gocql.Quorum
//
//	// Create session
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Wrap with the cqlstream adapter
//	session := v1.NewSession(gocqlSession)
//
//	// Use with the executor
//	exec := cqlstream.NewExecutor(session)
//
// # Value Normalization
//
// MapScan returns driver-neutral cell values: gocql.UUID cells come back as
// uuid.UUID, gocql.Duration cells as cql.Duration, and tuple columns, which
// gocql v1 splits into per-slot entries, are reassembled into one []any
// entry under the column name. Null cells are omitted from the map rather
// than zero-filled, which requires scanning through pointer-to-pointer
// destinations instead of the driver's own MapScan. Column type descriptors
// are translated into cql.TypeInfo with their collection, tuple, and UDT
// parameters intact.
//
// # Type Conversions
//
// The adapter provides helper functions for converting between cqlstream and
// gocql types:
//
//   - [ToGocqlConsistency]: Converts cqlstream Consistency to gocql.Consistency
//   - [FromGocqlConsistency]: Converts gocql.Consistency to cqlstream Consistency
//   - [UnwrapSession]: Returns the underlying gocql.Session
//
// # Thread Safety
//
// Session and Query adapters are safe for concurrent use, matching gocql's
// thread safety guarantees. An Iter belongs to a single goroutine.
package v1
