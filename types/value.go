package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
//
// The set of kinds is closed: every CQL column type the conversion layer
// supports maps onto exactly one of these variants, and consumers can switch
// over Kind exhaustively.
type Kind uint8

const (
	// KindNull is the null variant. A null cell of any declared CQL type
	// converts to it.
	KindNull Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInt holds a signed integer with a preserved bit width (8, 16, 32
	// or 64).
	KindInt
	// KindFloat holds a floating point number with a preserved bit width
	// (32 or 64).
	KindFloat
	// KindString holds text. Canonical string forms of decimals, varints,
	// UUIDs and inet addresses also use this kind.
	KindString
	// KindBytes holds raw binary data, preserved exactly.
	KindBytes
	// KindDuration holds a CQL duration as the driver's month/day/nanosecond
	// triple, with no lossy unit flattening.
	KindDuration
	// KindDateTime holds a point in time, normalized to UTC.
	KindDateTime
	// KindDate holds a date-only value as its ISO-8601 string form.
	KindDate
	// KindTime holds a time-of-day value as its ISO-8601 string form.
	KindTime
	// KindList holds an ordered sequence of values.
	KindList
	// KindMap holds an ordered sequence of key/value entries. Keys are
	// arbitrary values and need not be hashable.
	KindMap
	// KindSet holds a sequence of values whose uniqueness is assumed from
	// the source, not re-verified.
	KindSet
	// KindTuple holds a fixed-arity ordered sequence.
	KindTuple
	// KindRecord holds an ordered column-name to value mapping.
	KindRecord
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindDuration:
		return "duration"
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	case KindRecord:
		return "record"
	}

	return "unknown"
}

// Duration is a CQL duration: a calendar month count, a day count, and a
// nanosecond remainder. The three components are kept separate because months
// and days have no fixed nanosecond length.
type Duration struct {
	Months      int32
	Days        int32
	Nanoseconds int64
}

// String renders the duration in CQL's compact duration format, e.g.
// "1mo2d3h4m5s". A zero duration renders as "0s".
func (d Duration) String() string {
	if d.Months == 0 && d.Days == 0 && d.Nanoseconds == 0 {
		return "0s"
	}

	var sb strings.Builder
	if d.Months < 0 || d.Days < 0 || d.Nanoseconds < 0 {
		sb.WriteByte('-')
	}
	months := abs32(d.Months)
	if months >= 12 {
		sb.WriteString(strconv.FormatInt(int64(months/12), 10))
		sb.WriteByte('y')
		months %= 12
	}
	if months > 0 {
		sb.WriteString(strconv.FormatInt(int64(months), 10))
		sb.WriteString("mo")
	}
	if days := abs32(d.Days); days > 0 {
		sb.WriteString(strconv.FormatInt(int64(days), 10))
		sb.WriteByte('d')
	}
	if ns := abs64(d.Nanoseconds); ns > 0 {
		sb.WriteString(time.Duration(ns).String())
	}

	return sb.String()
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Entry is a single key/value pair of a map value.
type Entry struct {
	Key   Value
	Value Value
}

// Value is the structured output representation of one converted CQL cell.
//
// Exactly one payload field is meaningful for a given Kind:
//
//	KindNull                  (no payload)
//	KindBool                  Bool
//	KindInt                   Int, Width (8, 16, 32, 64)
//	KindFloat                 Float, Width (32, 64)
//	KindString                Str
//	KindDate, KindTime        Str (ISO-8601 form)
//	KindBytes                 Bytes
//	KindDuration              Duration
//	KindDateTime              Time (UTC)
//	KindList, KindSet, KindTuple  Elems
//	KindMap                   Entries
//	KindRecord                Record
//
// Values are created by the conversion layer and treated as immutable by
// consumers; Equal compares them structurally.
type Value struct {
	Kind     Kind
	Bool     bool
	Int      int64
	Width    uint8
	Float    float64
	Str      string
	Bytes    []byte
	Duration Duration
	Time     time.Time
	Elems    []Value
	Entries  []Entry
	Record   *Record
}

// NewNull returns the null value.
func NewNull() Value {
	return Value{Kind: KindNull}
}

// NewBool returns a boolean value.
func NewBool(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// NewInt8 returns an 8-bit integer value.
func NewInt8(v int8) Value {
	return Value{Kind: KindInt, Int: int64(v), Width: 8}
}

// NewInt16 returns a 16-bit integer value.
func NewInt16(v int16) Value {
	return Value{Kind: KindInt, Int: int64(v), Width: 16}
}

// NewInt32 returns a 32-bit integer value.
func NewInt32(v int32) Value {
	return Value{Kind: KindInt, Int: int64(v), Width: 32}
}

// NewInt64 returns a 64-bit integer value.
func NewInt64(v int64) Value {
	return Value{Kind: KindInt, Int: v, Width: 64}
}

// NewFloat32 returns a 32-bit floating point value.
func NewFloat32(v float32) Value {
	return Value{Kind: KindFloat, Float: float64(v), Width: 32}
}

// NewFloat64 returns a 64-bit floating point value.
func NewFloat64(v float64) Value {
	return Value{Kind: KindFloat, Float: v, Width: 64}
}

// NewString returns a text value.
func NewString(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// NewBytes returns a binary value. The slice is taken as-is, not copied.
func NewBytes(v []byte) Value {
	return Value{Kind: KindBytes, Bytes: v}
}

// NewDuration returns a duration value.
func NewDuration(v Duration) Value {
	return Value{Kind: KindDuration, Duration: v}
}

// NewDateTime returns a point-in-time value, normalized to UTC.
func NewDateTime(v time.Time) Value {
	return Value{Kind: KindDateTime, Time: v.UTC()}
}

// NewDate returns a date-only value from its ISO-8601 string form.
func NewDate(v string) Value {
	return Value{Kind: KindDate, Str: v}
}

// NewTimeOfDay returns a time-only value from its ISO-8601 string form.
func NewTimeOfDay(v string) Value {
	return Value{Kind: KindTime, Str: v}
}

// NewList returns a list value. The slice is taken as-is, not copied.
func NewList(elems []Value) Value {
	return Value{Kind: KindList, Elems: elems}
}

// NewSet returns a set value. The slice is taken as-is, not copied.
func NewSet(elems []Value) Value {
	return Value{Kind: KindSet, Elems: elems}
}

// NewTuple returns a tuple value. The slice is taken as-is, not copied.
func NewTuple(elems []Value) Value {
	return Value{Kind: KindTuple, Elems: elems}
}

// NewMap returns a map value from ordered entries. The slice is taken as-is,
// not copied.
func NewMap(entries []Entry) Value {
	return Value{Kind: KindMap, Entries: entries}
}

// NewRecordValue returns a record value.
func NewRecordValue(rec *Record) Value {
	return Value{Kind: KindRecord, Record: rec}
}

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Equal reports whether two values are structurally equal: same kind, same
// width for numeric kinds, and recursively equal payloads.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int && v.Width == other.Width
	case KindFloat:
		return v.Float == other.Float && v.Width == other.Width
	case KindString, KindDate, KindTime:
		return v.Str == other.Str
	case KindBytes:
		return bytes.Equal(v.Bytes, other.Bytes)
	case KindDuration:
		return v.Duration == other.Duration
	case KindDateTime:
		return v.Time.Equal(other.Time)
	case KindList, KindSet, KindTuple:
		if len(v.Elems) != len(other.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Entries) != len(other.Entries) {
			return false
		}
		for i := range v.Entries {
			if !v.Entries[i].Key.Equal(other.Entries[i].Key) {
				return false
			}
			if !v.Entries[i].Value.Equal(other.Entries[i].Value) {
				return false
			}
		}
		return true
	case KindRecord:
		if v.Record == nil || other.Record == nil {
			return v.Record == other.Record
		}
		return v.Record.Equal(other.Record)
	}

	return false
}

// String renders the value for debugging and log output. Collections render
// in square brackets, maps and records in curly braces, bytes as 0x-prefixed
// hex.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		if v.Width == 32 {
			return strconv.FormatFloat(v.Float, 'g', -1, 32)
		}
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString, KindDate, KindTime:
		return v.Str
	case KindBytes:
		return "0x" + hex.EncodeToString(v.Bytes)
	case KindDuration:
		return v.Duration.String()
	case KindDateTime:
		return v.Time.Format(time.RFC3339Nano)
	case KindList, KindSet, KindTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.Entries))
		for i, e := range v.Entries {
			parts[i] = e.Key.String() + ": " + e.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindRecord:
		if v.Record == nil {
			return "{}"
		}
		return v.Record.String()
	}

	return fmt.Sprintf("unknown(kind=%d)", v.Kind)
}

// Interface returns the value as a plain Go value: nil, bool, int64, float64,
// string, []byte, Duration, time.Time, []any for sequences, and
// map-order-preserving [][2]any for maps. Records return map[string]any with
// insertion order lost; callers that need ordering should walk the Record
// directly.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		if v.Width == 32 {
			return float32(v.Float)
		}
		return v.Float
	case KindString, KindDate, KindTime:
		return v.Str
	case KindBytes:
		return v.Bytes
	case KindDuration:
		return v.Duration
	case KindDateTime:
		return v.Time
	case KindList, KindSet, KindTuple:
		out := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		out := make([][2]any, len(v.Entries))
		for i, e := range v.Entries {
			out[i] = [2]any{e.Key.Interface(), e.Value.Interface()}
		}
		return out
	case KindRecord:
		if v.Record == nil {
			return map[string]any{}
		}
		out := make(map[string]any, v.Record.Len())
		for i := 0; i < v.Record.Len(); i++ {
			name, val := v.Record.Index(i)
			out[name] = val.Interface()
		}
		return out
	}

	return nil
}
