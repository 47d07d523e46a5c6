package cqlstream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/test/testutil"
	"github.com/arloliu/cqlstream/types"
)

func TestExecuteNilSession(t *testing.T) {
	exec := NewExecutor(nil)

	stream, err := exec.Execute(context.Background(), "SELECT * FROM t")
	require.Nil(t, stream)
	require.ErrorIs(t, err, types.ErrNilSession)

	var execErr *types.ExecError
	require.ErrorAs(t, err, &execErr)
}

func TestExecuteEmptyStatement(t *testing.T) {
	session := testutil.NewMockSession(testutil.PageScript{})
	exec := NewExecutor(session)

	for _, stmt := range []string{"", "   ", "\t\n"} {
		stream, err := exec.Execute(context.Background(), stmt)
		require.Nil(t, stream)
		require.ErrorIs(t, err, types.ErrEmptyStatement)
	}
}

func TestExecuteInvalidPageSize(t *testing.T) {
	session := testutil.NewMockSession(testutil.PageScript{})

	for _, n := range []int{0, -1} {
		exec := NewExecutor(session, WithPageSize(n))

		stream, err := exec.Execute(context.Background(), "SELECT * FROM t")
		require.Nil(t, stream)
		require.ErrorIs(t, err, types.ErrInvalidPageSize)
	}
}

func TestExecuteAppliesConfig(t *testing.T) {
	session := testutil.NewMockSession(testutil.PageScript{
		Columns: idColumns(),
		Pages:   idPages([]int{1}),
	})
	exec := NewExecutor(session,
		WithPageSize(500),
		WithConsistency(cql.LocalQuorum),
	)

	stream, err := exec.Execute(context.Background(), "SELECT id FROM t WHERE org = ?", "acme")
	require.NoError(t, err)
	defer stream.Close()

	q := session.Queries()[0]
	require.Equal(t, 500, q.PageSizeValue())
	require.Equal(t, cql.LocalQuorum, q.ConsistencyLevel())
	require.Equal(t, "SELECT id FROM t WHERE org = ?", q.Statement())
	require.Equal(t, []any{"acme"}, q.Values())
}

func TestExecuteDefaults(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1024, cfg.PageSize)
	require.Equal(t, []string{"localhost"}, cfg.ContactPoints)
	require.Equal(t, cql.Quorum, cfg.Consistency)
	require.NotNil(t, cfg.Logger)
	require.NotNil(t, cfg.Metrics)
}

func TestExecutorIndependentStreams(t *testing.T) {
	session := testutil.NewMockSession(testutil.PageScript{
		Columns: idColumns(),
		Pages:   idPages([]int{1, 2}),
	})
	exec := NewExecutor(session)

	first, err := exec.Execute(context.Background(), "SELECT id FROM t")
	require.NoError(t, err)
	second, err := exec.Execute(context.Background(), "SELECT id FROM t")
	require.NoError(t, err)

	require.Equal(t, []int{1, 2}, collectIDs(t, first))
	require.Equal(t, []int{1, 2}, collectIDs(t, second))
	require.NoError(t, first.Close())
	require.NoError(t, second.Close())
}

func TestExecutorClose(t *testing.T) {
	session := testutil.NewMockSession(testutil.PageScript{})
	exec := NewExecutor(session)

	exec.Close()
	require.True(t, session.IsClosed())
}
