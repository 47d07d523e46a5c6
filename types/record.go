package types

import "strings"

// Record is an insertion-ordered mapping from column name to Value.
//
// The key set of a record is fixed by the query that produced it: every
// record of one result stream has the same columns in the same order.
// Lookups by name are O(n) over the column count, which is small in practice;
// positional access via Index is O(1).
type Record struct {
	cols []string
	vals []Value
}

// NewRecord creates an empty record with capacity for n columns.
func NewRecord(n int) *Record {
	return &Record{
		cols: make([]string, 0, n),
		vals: make([]Value, 0, n),
	}
}

// Append adds a column to the record. Columns are appended in schema order;
// appending a duplicate name is not checked here because result-set column
// names are already unique per query.
func (r *Record) Append(name string, val Value) {
	r.cols = append(r.cols, name)
	r.vals = append(r.vals, val)
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.cols)
}

// Columns returns the column names in insertion order. The returned slice is
// shared; callers must not modify it.
func (r *Record) Columns() []string {
	return r.cols
}

// Get returns the value for the named column and whether the column exists.
func (r *Record) Get(name string) (Value, bool) {
	for i, col := range r.cols {
		if col == name {
			return r.vals[i], true
		}
	}

	return Value{}, false
}

// Index returns the column name and value at position i.
func (r *Record) Index(i int) (string, Value) {
	return r.cols[i], r.vals[i]
}

// Values returns the values in insertion order. The returned slice is shared;
// callers must not modify it.
func (r *Record) Values() []Value {
	return r.vals
}

// Equal reports whether two records have the same columns in the same order
// with structurally equal values.
func (r *Record) Equal(other *Record) bool {
	if other == nil || len(r.cols) != len(other.cols) {
		return false
	}
	for i := range r.cols {
		if r.cols[i] != other.cols[i] {
			return false
		}
		if !r.vals[i].Equal(other.vals[i]) {
			return false
		}
	}

	return true
}

// String renders the record for debugging and log output.
func (r *Record) String() string {
	parts := make([]string, len(r.cols))
	for i, col := range r.cols {
		parts[i] = col + ": " + r.vals[i].String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
