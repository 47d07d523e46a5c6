// Package v2 provides an adapter for gocql v2 (the Apache Cassandra gocql
// driver) to work with cqlstream.
//
// This adapter wraps gocql sessions, queries, and iterators to implement
// the cqlstream CQL interfaces.
//
// # Installation
//
// Import this package along with the Apache driver:
//
//	import (
//	    gocql "github.com/apache/cassandra-gocql-driver/v2"
//	    "github.com/arloliu/cqlstream/adapter/cql/v2"
//	)
//
// # Usage
//
// Create a gocql session and wrap it with the v2 adapter:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "my_keyspace"
//
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := v2.NewSession(gocqlSession)
//	exec := cqlstream.NewExecutor(session)
//
// # Value Normalization
//
// MapScan returns driver-neutral cell values: gocql.UUID cells come back as
// uuid.UUID, gocql.Duration cells as cql.Duration, and tuple columns are
// gathered from their per-element scan slots into one []any entry under the
// column name. Null cells are omitted from the map rather than zero-filled.
// Column type descriptors are translated into cql.TypeInfo with their
// collection, tuple, and UDT parameters intact.
//
// # Differences from v1
//
// The v2 driver has no query pooling, so Release is a no-op. Context-aware
// execution goes through ExecContext and IterContext rather than a stored
// query context. The v2 TypeInfo interface carries no custom type class
// name, so custom columns surface with the generic "custom" descriptor.
//
// # Thread Safety
//
// Session and Query adapters are safe for concurrent use, matching gocql's
// thread safety guarantees. An Iter belongs to a single goroutine.
package v2
