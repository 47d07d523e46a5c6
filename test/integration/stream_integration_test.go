// Package integration_test contains end-to-end tests that run queries
// against a real Cassandra instance started via testcontainers.
//
// These tests are skipped in short mode (go test -short) and when the
// SKIP_INTEGRATION_TESTS environment variable is set to "1".
package integration_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream"
	v1 "github.com/arloliu/cqlstream/adapter/cql/v1"
	"github.com/arloliu/cqlstream/test/testutil"
	"github.com/arloliu/cqlstream/types"
)

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		t.Skip("skipping integration test: SKIP_INTEGRATION_TESTS=1")
	}
}

func TestStreamAgainstCassandra(t *testing.T) {
	skipUnlessIntegration(t)

	ctx := context.Background()
	container, err := testutil.StartCassandra(ctx, t, nil)
	require.NoError(t, err)

	gs := container.Session

	require.NoError(t, gs.Query(`
		CREATE TYPE IF NOT EXISTS address (street text, city text)
	`).Exec())
	require.NoError(t, gs.Query(`
		CREATE TABLE IF NOT EXISTS events (
			org     text,
			id      int,
			name    text,
			score   double,
			tags    list<text>,
			attrs   map<text, int>,
			created timestamp,
			ref     uuid,
			pair    tuple<int, text>,
			addr    frozen<address>,
			payload blob,
			PRIMARY KEY (org, id)
		)
	`).Exec())
	require.NoError(t, gs.Query(`TRUNCATE events`).Exec())

	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	refs := make([]uuid.UUID, 0, 25)
	for i := 0; i < 25; i++ {
		ref := uuid.New()
		refs = append(refs, ref)
		err := gs.Query(
			`INSERT INTO events (org, id, name, score, tags, attrs, created, ref, pair, addr, payload)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			"acme", i, fmt.Sprintf("event-%d", i), float64(i)/2,
			[]string{"a", "b"}, map[string]int{"x": i, "y": i + 1},
			created.Add(time.Duration(i)*time.Minute), ref.String(),
			[]interface{}{i, fmt.Sprintf("t-%d", i)},
			map[string]interface{}{"street": "1 Main St", "city": "Springfield"},
			[]byte{0xde, 0xad},
		).Exec()
		require.NoError(t, err)
	}
	// Row with null cells: only the primary key is set.
	require.NoError(t, gs.Query(
		`INSERT INTO events (org, id) VALUES (?, ?)`, "acme", 100,
	).Exec())

	session := v1.WrapSession(gs)
	metrics := testutil.NewTestMetricsCollector()
	exec := cqlstream.NewExecutor(session,
		cqlstream.WithPageSize(10),
		cqlstream.WithMetrics(metrics),
	)

	t.Run("streams all rows across pages in clustering order", func(t *testing.T) {
		stream, err := exec.Execute(ctx, `SELECT * FROM events WHERE org = ?`, "acme")
		require.NoError(t, err)
		defer stream.Close()

		var ids []int64
		for stream.Next() {
			rec := stream.Record()
			id, ok := rec.Get("id")
			require.True(t, ok)
			require.Equal(t, types.KindInt, id.Kind)
			ids = append(ids, id.Int)
		}
		require.NoError(t, stream.Err())
		require.Equal(t, cqlstream.StateExhausted, stream.State())

		require.Len(t, ids, 26)
		for i := 0; i < 25; i++ {
			require.Equal(t, int64(i), ids[i])
		}
		require.Equal(t, int64(100), ids[25])
	})

	t.Run("converts scalar and collection cells", func(t *testing.T) {
		stream, err := exec.Execute(ctx,
			`SELECT name, score, tags, attrs, created, ref, pair, addr, payload FROM events WHERE org = ? AND id = ?`,
			"acme", 3)
		require.NoError(t, err)
		defer stream.Close()

		require.True(t, stream.Next())
		rec := stream.Record()

		name, _ := rec.Get("name")
		require.Equal(t, types.NewString("event-3"), name)

		score, _ := rec.Get("score")
		require.Equal(t, types.KindFloat, score.Kind)
		require.InDelta(t, 1.5, score.Float, 1e-9)

		tags, _ := rec.Get("tags")
		require.Equal(t, types.KindList, tags.Kind)
		require.Equal(t, []types.Value{types.NewString("a"), types.NewString("b")}, tags.Elems)

		attrs, _ := rec.Get("attrs")
		require.Equal(t, types.KindMap, attrs.Kind)
		require.Len(t, attrs.Entries, 2)
		require.Equal(t, types.NewString("x"), attrs.Entries[0].Key)
		require.Equal(t, int64(3), attrs.Entries[0].Value.Int)
		require.Equal(t, types.NewString("y"), attrs.Entries[1].Key)
		require.Equal(t, int64(4), attrs.Entries[1].Value.Int)

		ts, _ := rec.Get("created")
		require.Equal(t, types.KindDateTime, ts.Kind)
		require.True(t, ts.Time.Equal(created.Add(3*time.Minute)))

		ref, _ := rec.Get("ref")
		require.Equal(t, types.NewString(refs[3].String()), ref)

		pair, _ := rec.Get("pair")
		require.Equal(t, types.KindTuple, pair.Kind)
		require.Len(t, pair.Elems, 2)
		require.Equal(t, int64(3), pair.Elems[0].Int)
		require.Equal(t, "t-3", pair.Elems[1].Str)

		addr, _ := rec.Get("addr")
		require.Equal(t, types.KindRecord, addr.Kind)
		city, ok := addr.Record.Get("city")
		require.True(t, ok)
		require.Equal(t, types.NewString("Springfield"), city)

		payload, _ := rec.Get("payload")
		require.Equal(t, types.NewBytes([]byte{0xde, 0xad}), payload)

		require.False(t, stream.Next())
		require.NoError(t, stream.Err())
	})

	t.Run("null cells become null values", func(t *testing.T) {
		stream, err := exec.Execute(ctx,
			`SELECT tags, attrs, created, ref, pair, addr, payload FROM events WHERE org = ? AND id = ?`,
			"acme", 100)
		require.NoError(t, err)
		defer stream.Close()

		require.True(t, stream.Next())
		rec := stream.Record()
		for _, col := range []string{"tags", "attrs", "created", "ref", "pair", "addr", "payload"} {
			val, ok := rec.Get(col)
			require.True(t, ok, col)
			require.True(t, val.IsNull(), "column %s should be null", col)
		}

		require.False(t, stream.Next())
		require.NoError(t, stream.Err())
	})

	t.Run("collect drains the stream and reports metrics", func(t *testing.T) {
		before := metrics.Snapshot()

		stream, err := exec.Execute(ctx, `SELECT id FROM events WHERE org = ?`, "acme")
		require.NoError(t, err)

		records, err := stream.Collect()
		require.NoError(t, err)
		require.Len(t, records, 26)

		after := metrics.Snapshot()
		require.Equal(t, before.QueryTotal+1, after.QueryTotal)
		require.Equal(t, before.RowsYielded+26, after.RowsYielded)
		require.Greater(t, after.PageFetchTotal, before.PageFetchTotal)
	})
}
