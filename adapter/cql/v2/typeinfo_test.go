package v2

import (
	"testing"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlstream/adapter/cql"
)

func TestConvertTypeInfoNil(t *testing.T) {
	require.Equal(t, cql.TypeInfo{}, convertTypeInfo(nil))
}

func TestConvertCollection(t *testing.T) {
	intType := cql.NewNativeType(cql.TypeInt)
	textType := cql.NewNativeType(cql.TypeVarchar)

	list := convertCollection(cql.TypeList, cql.TypeInfo{}, intType)
	require.Equal(t, cql.TypeList, list.Type)
	require.Equal(t, cql.TypeInt, list.Elem.Type)

	set := convertCollection(cql.TypeSet, cql.TypeInfo{}, textType)
	require.Equal(t, cql.TypeSet, set.Type)
	require.Equal(t, cql.TypeVarchar, set.Elem.Type)

	m := convertCollection(cql.TypeMap, textType, intType)
	require.Equal(t, cql.TypeMap, m.Type)
	require.Equal(t, cql.TypeVarchar, m.Key.Type)
	require.Equal(t, cql.TypeInt, m.Elem.Type)
	require.Equal(t, "map<varchar, int>", m.String())
}

func TestConvertTypeInfoTuple(t *testing.T) {
	info := convertTypeInfo(gocql.TupleTypeInfo{
		Elems: []gocql.TypeInfo{nil, nil, nil},
	})
	require.Equal(t, cql.TypeTuple, info.Type)
	// arity is preserved even when element descriptors are absent
	require.Len(t, info.Elems, 3)
}

func TestConvertTypeInfoUDT(t *testing.T) {
	info := convertTypeInfo(gocql.UDTTypeInfo{
		Keyspace: "ks",
		Name:     "address",
		Elements: []gocql.UDTField{
			{Name: "street"},
			{Name: "zip"},
		},
	})
	require.Equal(t, cql.TypeUDT, info.Type)
	require.Equal(t, "address", info.UDTName)
	require.Len(t, info.Fields, 2)
	require.Equal(t, "street", info.Fields[0].Name)
	require.Equal(t, "zip", info.Fields[1].Name)
}

func TestNormalizeValueUUID(t *testing.T) {
	id := gocql.UUID{0x01, 0x02}
	got := normalizeValue(id)
	require.IsType(t, uuid.UUID{}, got)
	require.Equal(t, uuid.UUID(id), got)
}

func TestNormalizeValueDuration(t *testing.T) {
	got := normalizeValue(gocql.Duration{Months: 1, Days: 2, Nanoseconds: 3})
	require.Equal(t, cql.Duration{Months: 1, Days: 2, Nanoseconds: 3}, got)
}

func TestNormalizeValuePassthrough(t *testing.T) {
	require.Equal(t, int32(7), normalizeValue(int32(7)))
	require.Equal(t, "abc", normalizeValue("abc"))
	require.Nil(t, normalizeValue(nil))

	// plain collections keep their concrete types
	ints := []int{1, 2, 3}
	require.Equal(t, ints, normalizeValue(ints))
	strs := map[string]string{"a": "b"}
	require.Equal(t, strs, normalizeValue(strs))
}

func TestNormalizeValueNestedUUIDs(t *testing.T) {
	a := gocql.UUID{0xAA}
	b := gocql.UUID{0xBB}

	got := normalizeValue([]gocql.UUID{a, b})
	require.Equal(t, []any{uuid.UUID(a), uuid.UUID(b)}, got)

	gotMap := normalizeValue(map[string]gocql.UUID{"k": a})
	require.Equal(t, map[any]any{"k": uuid.UUID(a)}, gotMap)
}
