package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueEqualPrimitives(t *testing.T) {
	require.True(t, NewNull().Equal(NewNull()))
	require.True(t, NewBool(true).Equal(NewBool(true)))
	require.False(t, NewBool(true).Equal(NewBool(false)))

	require.True(t, NewInt64(-9223372036854775808).Equal(NewInt64(-9223372036854775808)))
	require.False(t, NewInt32(1).Equal(NewInt64(1)), "widths differ")
	require.False(t, NewInt32(1).Equal(NewString("1")), "kinds differ")

	require.True(t, NewFloat64(3.5).Equal(NewFloat64(3.5)))
	require.False(t, NewFloat32(3.5).Equal(NewFloat64(3.5)))

	require.True(t, NewBytes([]byte{0xDE, 0xAD}).Equal(NewBytes([]byte{0xDE, 0xAD})))
	require.False(t, NewBytes([]byte{0xDE}).Equal(NewBytes([]byte{0xAD})))
	require.True(t, NewBytes(nil).Equal(NewBytes([]byte{})), "nil and empty blobs are equal")
}

func TestValueEqualTemporal(t *testing.T) {
	utc := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	taipei := time.FixedZone("CST", 8*3600)

	// NewDateTime normalizes to UTC, so the same instant compares equal
	// regardless of the source zone.
	require.True(t, NewDateTime(utc).Equal(NewDateTime(utc.In(taipei))))

	require.True(t, NewDate("2024-05-01").Equal(NewDate("2024-05-01")))
	require.False(t, NewDate("2024-05-01").Equal(NewTimeOfDay("12:00:00")))

	d := Duration{Months: 1, Days: 2, Nanoseconds: int64(3 * time.Hour)}
	require.True(t, NewDuration(d).Equal(NewDuration(d)))
	require.False(t, NewDuration(d).Equal(NewDuration(Duration{Days: 2})))
}

func TestValueEqualNested(t *testing.T) {
	list := NewList([]Value{NewInt32(1), NewString("a")})
	require.True(t, list.Equal(NewList([]Value{NewInt32(1), NewString("a")})))
	require.False(t, list.Equal(NewList([]Value{NewString("a"), NewInt32(1)})), "order matters")
	require.False(t, list.Equal(NewSet([]Value{NewInt32(1), NewString("a")})), "list != set")

	m := NewMap([]Entry{{Key: NewString("a"), Value: NewInt32(1)}})
	require.True(t, m.Equal(NewMap([]Entry{{Key: NewString("a"), Value: NewInt32(1)}})))
	require.False(t, m.Equal(NewMap([]Entry{{Key: NewString("a"), Value: NewInt32(2)}})))

	rec := NewRecord(2)
	rec.Append("id", NewInt64(7))
	rec.Append("name", NewString("x"))
	other := NewRecord(2)
	other.Append("id", NewInt64(7))
	other.Append("name", NewString("x"))
	require.True(t, NewRecordValue(rec).Equal(NewRecordValue(other)))
}

func TestDurationString(t *testing.T) {
	require.Equal(t, "0s", Duration{}.String())
	require.Equal(t, "3d", Duration{Days: 3}.String())
	require.Equal(t, "1y2mo", Duration{Months: 14}.String())
	require.Equal(t, "2d1h30m0s", Duration{Days: 2, Nanoseconds: int64(90 * time.Minute)}.String())
	require.Equal(t, "-1d", Duration{Days: -1}.String())
}

func TestValueString(t *testing.T) {
	require.Equal(t, "null", NewNull().String())
	require.Equal(t, "0xdeadbeef", NewBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF}).String())
	require.Equal(t, "[1, 2]", NewList([]Value{NewInt32(1), NewInt32(2)}).String())
	require.Equal(t, "{a: 1}", NewMap([]Entry{{Key: NewString("a"), Value: NewInt32(1)}}).String())
}

func TestValueInterface(t *testing.T) {
	require.Nil(t, NewNull().Interface())
	require.Equal(t, int64(42), NewInt32(42).Interface())
	require.Equal(t, float32(1.5), NewFloat32(1.5).Interface())
	require.Equal(t, 2.5, NewFloat64(2.5).Interface())
	require.Equal(t, []any{int64(1), "a"}, NewList([]Value{NewInt64(1), NewString("a")}).Interface())

	pairs := NewMap([]Entry{{Key: NewString("k"), Value: NewBool(true)}}).Interface()
	require.Equal(t, [][2]any{{"k", true}}, pairs)
}
