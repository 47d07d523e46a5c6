package v1

import (
	"github.com/gocql/gocql"

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
//	cluster.Consistency = v1.ToGocqlConsistency(cql.Quorum)
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

// UnwrapSession returns the underlying gocql.Session from a v1 Session adapter.
//
// This is useful when you need direct access to the underlying gocql session
// for operations not exposed by the cqlstream interface.
//
// Parameters:
//   - s: v1 Session adapter
//
// Returns:
//   - *gocql.Session: The underlying gocql session
//
// Example:
//
//	gocqlSession := v1.UnwrapSession(session)
//	keyspaceMeta, _ := gocqlSession.KeyspaceMetadata("my_keyspace")
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
