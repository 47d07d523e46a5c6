package v1_test

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream/adapter/cql"
	v1 "github.com/arloliu/cqlstream/adapter/cql/v1" //nolint:revive // required for v1_test package
)

// TestSessionImplementsInterface verifies that v1.Session implements cql.Session.
func TestSessionImplementsInterface(t *testing.T) {
	// This is a compile-time check
	var _ cql.Session = (*v1.Session)(nil)
}

// TestQueryImplementsInterface verifies that v1.Query implements cql.Query.
func TestQueryImplementsInterface(t *testing.T) {
	// This is a compile-time check
	var _ cql.Query = (*v1.Query)(nil)
}

// TestIterImplementsInterface verifies that v1.Iter implements cql.Iter.
func TestIterImplementsInterface(t *testing.T) {
	// This is a compile-time check
	var _ cql.Iter = (*v1.Iter)(nil)
}

// TestNewSessionNil tests that NewSession handles nil gracefully.
func TestNewSessionNil(t *testing.T) {
	session := v1.NewSession(nil)
	require.NotNil(t, session)
}

// TestWrapSessionNil tests that WrapSession handles nil gracefully.
func TestWrapSessionNil(t *testing.T) {
	session := v1.WrapSession(nil)
	require.NotNil(t, session)
}

// TestConsistencyConstants verifies consistency constants match gocql.
func TestConsistencyConstants(t *testing.T) {
	require.Equal(t, cql.Consistency(gocql.Any), cql.Any)
	require.Equal(t, cql.Consistency(gocql.One), cql.One)
	require.Equal(t, cql.Consistency(gocql.Two), cql.Two)
	require.Equal(t, cql.Consistency(gocql.Three), cql.Three)
	require.Equal(t, cql.Consistency(gocql.Quorum), cql.Quorum)
	require.Equal(t, cql.Consistency(gocql.All), cql.All)
	require.Equal(t, cql.Consistency(gocql.LocalQuorum), cql.LocalQuorum)
	require.Equal(t, cql.Consistency(gocql.EachQuorum), cql.EachQuorum)
	require.Equal(t, cql.Consistency(gocql.LocalOne), cql.LocalOne)
}

// TestTypeConstants verifies type tags match the gocql protocol IDs.
func TestTypeConstants(t *testing.T) {
	require.Equal(t, cql.Type(gocql.TypeCustom), cql.TypeCustom)
	require.Equal(t, cql.Type(gocql.TypeVarchar), cql.TypeVarchar)
	require.Equal(t, cql.Type(gocql.TypeBigInt), cql.TypeBigInt)
	require.Equal(t, cql.Type(gocql.TypeDuration), cql.TypeDuration)
	require.Equal(t, cql.Type(gocql.TypeList), cql.TypeList)
	require.Equal(t, cql.Type(gocql.TypeMap), cql.TypeMap)
	require.Equal(t, cql.Type(gocql.TypeSet), cql.TypeSet)
	require.Equal(t, cql.Type(gocql.TypeUDT), cql.TypeUDT)
	require.Equal(t, cql.Type(gocql.TypeTuple), cql.TypeTuple)
}

// TestIterNilSafety verifies that a zero Iter is safe to call.
func TestIterNilSafety(t *testing.T) {
	iter := &v1.Iter{}

	require.Nil(t, iter.Columns())
	require.False(t, iter.MapScan(map[string]any{}))
	require.Equal(t, 0, iter.NumRows())
	require.Nil(t, iter.PageState())
	require.Nil(t, iter.Warnings())
	require.NoError(t, iter.Close())
}
