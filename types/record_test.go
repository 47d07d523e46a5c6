package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordOrderAndLookup(t *testing.T) {
	rec := NewRecord(3)
	rec.Append("id", NewInt64(1))
	rec.Append("name", NewString("a"))
	rec.Append("tags", NewNull())

	require.Equal(t, 3, rec.Len())
	require.Equal(t, []string{"id", "name", "tags"}, rec.Columns())

	v, ok := rec.Get("name")
	require.True(t, ok)
	require.True(t, v.Equal(NewString("a")))

	_, ok = rec.Get("missing")
	require.False(t, ok)

	name, v := rec.Index(1)
	require.Equal(t, "name", name)
	require.True(t, v.Equal(NewString("a")))
}

func TestRecordEqual(t *testing.T) {
	a := NewRecord(2)
	a.Append("id", NewInt64(1))
	a.Append("name", NewString("x"))

	b := NewRecord(2)
	b.Append("id", NewInt64(1))
	b.Append("name", NewString("x"))
	require.True(t, a.Equal(b))

	// Same columns in a different order are not equal: column order is part
	// of the record's identity.
	c := NewRecord(2)
	c.Append("name", NewString("x"))
	c.Append("id", NewInt64(1))
	require.False(t, a.Equal(c))

	require.False(t, a.Equal(nil))
}

func TestRecordString(t *testing.T) {
	rec := NewRecord(2)
	rec.Append("id", NewInt64(1))
	rec.Append("name", NewString("a"))
	require.Equal(t, "{id: 1, name: a}", rec.String())
}

func TestErrorWrapping(t *testing.T) {
	conv := &UnsupportedTypeError{TypeName: "custom"}
	rowErr := &RowError{Column: "payload", Cause: conv}
	streamErr := &StreamError{Op: "materialize", Cause: rowErr}

	var unsupported *UnsupportedTypeError
	require.True(t, errors.As(streamErr, &unsupported))
	require.Equal(t, "custom", unsupported.TypeName)

	var row *RowError
	require.True(t, errors.As(streamErr, &row))
	require.Equal(t, "payload", row.Column)

	execErr := &ExecError{Cause: ErrEmptyStatement}
	require.True(t, errors.Is(execErr, ErrEmptyStatement))
}

func TestErrorMessages(t *testing.T) {
	require.Contains(t, (&ArityMismatchError{TypeName: "tuple<int, text, int>", Want: 3, Got: 2}).Error(), "declared 3 slots, value has 2")
	require.Contains(t, (&MismatchError{TypeName: "boolean", GoType: "string"}).Error(), "as CQL boolean")
	require.Contains(t, (&RowError{Column: "c", Cause: ErrEmptyStatement}).Error(), `"c"`)
}
