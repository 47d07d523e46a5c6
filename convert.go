package cqlstream

import (
	"bytes"
	"fmt"
	"math/big"
	"net"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	inf "gopkg.in/inf.v0"

	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

// TypedCell pairs a driver cell value with its declared column type. It is
// the transient input to Convert; nothing retains it after conversion.
type TypedCell struct {
	// Value is the driver value in its adapter-normalized Go form.
	Value any

	// Type is the declared CQL type of the cell.
	Type cql.TypeInfo
}

// Convert turns one driver cell into a structured value.
//
// Conversion is pure and total over the supported CQL types: scalars map to
// their tagged variants, decimals, varints, UUIDs and inet addresses map to
// canonical strings, temporal types normalize to UTC or ISO-8601 strings,
// and collections, tuples and UDTs recurse element-wise. A null cell of any
// declared type converts to the null value.
//
// Parameters:
//   - cell: Driver value with its declared type
//
// Returns:
//   - types.Value: The converted value
//   - error: *types.UnsupportedTypeError for types outside the model,
//     *types.ArityMismatchError for tuple slot count mismatches, or
//     *types.MismatchError when the Go value does not fit the declared type
func Convert(cell TypedCell) (types.Value, error) {
	if isNullCell(cell.Value) {
		return types.NewNull(), nil
	}

	switch cell.Type.Type {
	case cql.TypeBoolean:
		if v, ok := cell.Value.(bool); ok {
			return types.NewBool(v), nil
		}
	case cql.TypeTinyInt:
		if v, ok := cell.Value.(int8); ok {
			return types.NewInt8(v), nil
		}
	case cql.TypeSmallInt:
		if v, ok := cell.Value.(int16); ok {
			return types.NewInt16(v), nil
		}
	case cql.TypeInt:
		switch v := cell.Value.(type) {
		case int:
			return types.NewInt32(int32(v)), nil
		case int32:
			return types.NewInt32(v), nil
		}
	case cql.TypeBigInt, cql.TypeCounter:
		switch v := cell.Value.(type) {
		case int64:
			return types.NewInt64(v), nil
		case int:
			return types.NewInt64(int64(v)), nil
		}
	case cql.TypeVarint:
		switch v := cell.Value.(type) {
		case *big.Int:
			return types.NewString(v.String()), nil
		case int64:
			return types.NewString(strconv.FormatInt(v, 10)), nil
		}
	case cql.TypeDecimal:
		if v, ok := cell.Value.(*inf.Dec); ok {
			return types.NewString(v.String()), nil
		}
	case cql.TypeFloat:
		if v, ok := cell.Value.(float32); ok {
			return types.NewFloat32(v), nil
		}
	case cql.TypeDouble:
		if v, ok := cell.Value.(float64); ok {
			return types.NewFloat64(v), nil
		}
	case cql.TypeAscii, cql.TypeText, cql.TypeVarchar:
		if v, ok := cell.Value.(string); ok {
			return types.NewString(v), nil
		}
	case cql.TypeBlob:
		if v, ok := cell.Value.([]byte); ok {
			return types.NewBytes(v), nil
		}
	case cql.TypeUUID, cql.TypeTimeUUID:
		switch v := cell.Value.(type) {
		case uuid.UUID:
			return types.NewString(v.String()), nil
		case [16]byte:
			return types.NewString(uuid.UUID(v).String()), nil
		case string:
			return types.NewString(v), nil
		}
	case cql.TypeInet:
		switch v := cell.Value.(type) {
		case net.IP:
			return types.NewString(v.String()), nil
		case string:
			return types.NewString(v), nil
		}
	case cql.TypeTimestamp:
		if v, ok := cell.Value.(time.Time); ok {
			return types.NewDateTime(v), nil
		}
	case cql.TypeDate:
		switch v := cell.Value.(type) {
		case time.Time:
			return types.NewDate(v.UTC().Format("2006-01-02")), nil
		case string:
			return types.NewDate(v), nil
		}
	case cql.TypeTime:
		switch v := cell.Value.(type) {
		case time.Duration:
			return types.NewTimeOfDay(formatTimeOfDay(v)), nil
		case int64:
			return types.NewTimeOfDay(formatTimeOfDay(time.Duration(v))), nil
		}
	case cql.TypeDuration:
		if v, ok := cell.Value.(cql.Duration); ok {
			return types.NewDuration(types.Duration{
				Months:      v.Months,
				Days:        v.Days,
				Nanoseconds: v.Nanoseconds,
			}), nil
		}
	case cql.TypeList, cql.TypeSet:
		return convertSequence(cell)
	case cql.TypeMap:
		return convertMap(cell)
	case cql.TypeTuple:
		return convertTuple(cell)
	case cql.TypeUDT:
		return convertUDT(cell)
	default:
		return types.NewNull(), &types.UnsupportedTypeError{TypeName: cell.Type.String()}
	}

	return types.NewNull(), mismatch(cell)
}

// convertSequence converts a list or set cell. Elements keep their source
// order.
func convertSequence(cell TypedCell) (types.Value, error) {
	rv := reflect.ValueOf(cell.Value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return types.NewNull(), mismatch(cell)
	}

	elemType := cql.TypeInfo{}
	if cell.Type.Elem != nil {
		elemType = *cell.Type.Elem
	}

	elems := make([]types.Value, rv.Len())
	for i := range elems {
		v, err := Convert(TypedCell{Value: rv.Index(i).Interface(), Type: elemType})
		if err != nil {
			return types.NewNull(), err
		}
		elems[i] = v
	}

	if cell.Type.Type == cql.TypeSet {
		return types.NewSet(elems), nil
	}

	return types.NewList(elems), nil
}

// convertMap converts a map cell into an ordered entry sequence. Entries are
// sorted by key; Go map iteration is randomized, and sorting restores the
// key order Cassandra itself maintains.
func convertMap(cell TypedCell) (types.Value, error) {
	rv := reflect.ValueOf(cell.Value)
	if rv.Kind() != reflect.Map {
		return types.NewNull(), mismatch(cell)
	}

	keyType := cql.TypeInfo{}
	if cell.Type.Key != nil {
		keyType = *cell.Type.Key
	}
	valType := cql.TypeInfo{}
	if cell.Type.Elem != nil {
		valType = *cell.Type.Elem
	}

	entries := make([]types.Entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := Convert(TypedCell{Value: iter.Key().Interface(), Type: keyType})
		if err != nil {
			return types.NewNull(), err
		}
		v, err := Convert(TypedCell{Value: iter.Value().Interface(), Type: valType})
		if err != nil {
			return types.NewNull(), err
		}
		entries = append(entries, types.Entry{Key: k, Value: v})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return lessValue(entries[i].Key, entries[j].Key)
	})

	return types.NewMap(entries), nil
}

// convertTuple converts a tuple cell. The slot count must match the declared
// arity exactly; tuples are never truncated or padded.
func convertTuple(cell TypedCell) (types.Value, error) {
	v, ok := cell.Value.([]any)
	if !ok {
		return types.NewNull(), mismatch(cell)
	}

	if len(v) != len(cell.Type.Elems) {
		return types.NewNull(), &types.ArityMismatchError{
			TypeName: cell.Type.String(),
			Want:     len(cell.Type.Elems),
			Got:      len(v),
		}
	}

	elems := make([]types.Value, len(v))
	for i, slot := range v {
		converted, err := Convert(TypedCell{Value: slot, Type: cell.Type.Elems[i]})
		if err != nil {
			return types.NewNull(), err
		}
		elems[i] = converted
	}

	return types.NewTuple(elems), nil
}

// convertUDT converts a user-defined type cell into a record with fields in
// the declared order. A field absent from the driver map becomes null.
func convertUDT(cell TypedCell) (types.Value, error) {
	rv := reflect.ValueOf(cell.Value)
	if rv.Kind() != reflect.Map {
		return types.NewNull(), mismatch(cell)
	}

	rec := types.NewRecord(len(cell.Type.Fields))
	for _, field := range cell.Type.Fields {
		var raw any
		if fv := rv.MapIndex(reflect.ValueOf(field.Name)); fv.IsValid() {
			raw = fv.Interface()
		}

		v, err := Convert(TypedCell{Value: raw, Type: field.Type})
		if err != nil {
			return types.NewNull(), err
		}
		rec.Append(field.Name, v)
	}

	return types.NewRecordValue(rec), nil
}

// mismatch builds the type/value mismatch error for a cell.
func mismatch(cell TypedCell) error {
	return &types.MismatchError{
		TypeName: cell.Type.String(),
		GoType:   fmt.Sprintf("%T", cell.Value),
	}
}

// isNullCell reports whether a driver value denotes a null cell: a nil
// interface, or a typed nil pointer, slice, or map.
func isNullCell(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// formatTimeOfDay renders a duration since midnight in ISO-8601 form, with
// trailing zeros in the fractional part trimmed.
func formatTimeOfDay(d time.Duration) string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(d).Format("15:04:05.999999999")
}

// lessValue orders two values of the same kind for map entry sorting. Values
// of different kinds order by kind tag, which only happens in heterogeneous
// test fixtures.
func lessValue(a, b types.Value) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}

	switch a.Kind {
	case types.KindBool:
		return !a.Bool && b.Bool
	case types.KindInt:
		return a.Int < b.Int
	case types.KindFloat:
		return a.Float < b.Float
	case types.KindString, types.KindDate, types.KindTime:
		return a.Str < b.Str
	case types.KindDateTime:
		return a.Time.Before(b.Time)
	case types.KindBytes:
		return bytes.Compare(a.Bytes, b.Bytes) < 0
	default:
		return a.String() < b.String()
	}
}
