package v2

import (
	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/arloliu/cqlstream/adapter/cql"
)

// ToGocqlConsistency converts a cqlstream Consistency to gocql.Consistency.
//
// This is useful when you need to interact with the underlying gocql driver
// directly while using cqlstream consistency constants.
//
// Parameters:
//   - c: cqlstream consistency level
//
// Returns:
//   - gocql.Consistency: The equivalent gocql consistency level
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Consistency = v2.ToGocqlConsistency(cql.Quorum)
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to cqlstream Consistency.
//
// This is useful when you need to read consistency levels from gocql
// and use them with cqlstream APIs.
//
// Parameters:
//   - c: gocql consistency level
//
// Returns:
//   - cql.Consistency: The equivalent cqlstream consistency level
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// UnwrapSession returns the underlying gocql.Session from a v2 Session adapter.
//
// This is useful when you need direct access to the underlying gocql session
// for operations not exposed by the cqlstream interface.
//
// Parameters:
//   - s: v2 Session adapter
//
// Returns:
//   - *gocql.Session: The underlying gocql session
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
