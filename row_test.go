package cqlstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

func testColumns() []cql.ColumnInfo {
	return []cql.ColumnInfo{
		{Keyspace: "ks", Table: "users", Name: "id", Type: native(cql.TypeInt)},
		{Keyspace: "ks", Table: "users", Name: "name", Type: native(cql.TypeText)},
		{Keyspace: "ks", Table: "users", Name: "active", Type: native(cql.TypeBoolean)},
	}
}

func TestMaterializeRowSchemaOrder(t *testing.T) {
	// map order is irrelevant, schema order wins
	row := map[string]any{
		"name":   "ada",
		"active": true,
		"id":     7,
	}

	rec, err := materializeRow(row, testColumns())
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "active"}, rec.Columns())

	id, ok := rec.Get("id")
	require.True(t, ok)
	require.True(t, id.Equal(types.NewInt32(7)))
}

func TestMaterializeRowMissingCellIsNull(t *testing.T) {
	row := map[string]any{
		"id": 7,
	}

	rec, err := materializeRow(row, testColumns())
	require.NoError(t, err)
	require.Equal(t, 3, rec.Len())

	name, ok := rec.Get("name")
	require.True(t, ok)
	require.True(t, name.IsNull())
}

func TestMaterializeRowCellFailureFailsRow(t *testing.T) {
	row := map[string]any{
		"id":     7,
		"name":   "ada",
		"active": "yes",
	}

	rec, err := materializeRow(row, testColumns())
	require.Nil(t, rec)
	require.Error(t, err)

	var rowErr *types.RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, "active", rowErr.Column)

	var mismatchErr *types.MismatchError
	require.ErrorAs(t, err, &mismatchErr)
}

func TestMaterializeRowStableColumnsAcrossRows(t *testing.T) {
	cols := testColumns()

	first, err := materializeRow(map[string]any{"id": 1}, cols)
	require.NoError(t, err)
	second, err := materializeRow(map[string]any{"name": "b"}, cols)
	require.NoError(t, err)

	require.Equal(t, first.Columns(), second.Columns())
}
