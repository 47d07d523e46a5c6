package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

func TestParseConsistency(t *testing.T) {
	c, err := parseConsistency("local-quorum")
	require.NoError(t, err)
	require.Equal(t, cql.LocalQuorum, c)

	c, err = parseConsistency("ONE")
	require.NoError(t, err)
	require.Equal(t, cql.One, c)

	_, err = parseConsistency("paxos")
	require.Error(t, err)
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := newRenderer("yaml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestJSONRendererKeepsColumnOrder(t *testing.T) {
	rec := types.NewRecord(3)
	rec.Append("id", types.NewInt64(1))
	rec.Append("name", types.NewString("ada"))
	rec.Append("missing", types.NewNull())

	var buf bytes.Buffer
	r, err := newRenderer("json", &buf)
	require.NoError(t, err)

	require.NoError(t, r.Render(rec))
	require.NoError(t, r.Flush())

	require.Equal(t, `{"id":1,"name":"ada","missing":null}`+"\n", buf.String())
}

func TestMsgpackRendererWritesOnFlush(t *testing.T) {
	rec := types.NewRecord(1)
	rec.Append("id", types.NewInt64(1))

	var buf bytes.Buffer
	r, err := newRenderer("msgpack", &buf)
	require.NoError(t, err)

	require.NoError(t, r.Render(rec))
	require.NoError(t, r.Flush())
	require.NotEmpty(t, buf.Bytes())
}
