package v2

import (
	"reflect"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/google/uuid"

	"github.com/arloliu/cqlstream/adapter/cql"
)

// convertTypeInfo maps a gocql v2 type descriptor to the driver-neutral form.
//
// The numeric type tags are shared with the CQL binary protocol on both
// sides, so the scalar tag converts by cast; only the parameterized shapes
// (collections, tuples, UDTs) need structural translation.
func convertTypeInfo(ti gocql.TypeInfo) cql.TypeInfo {
	if ti == nil {
		return cql.TypeInfo{}
	}

	switch t := ti.(type) {
	case gocql.CollectionType:
		return convertCollection(cql.Type(t.Type()), convertTypeInfo(t.Key), convertTypeInfo(t.Elem))
	case gocql.TupleTypeInfo:
		elems := make([]cql.TypeInfo, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = convertTypeInfo(e)
		}
		return cql.NewTupleType(elems...)
	case gocql.UDTTypeInfo:
		fields := make([]cql.UDTField, len(t.Elements))
		for i, f := range t.Elements {
			fields[i] = cql.UDTField{
				Name: f.Name,
				Type: convertTypeInfo(f.Type),
			}
		}
		return cql.NewUDTType(t.Name, fields...)
	default:
		// The v2 TypeInfo interface carries no custom class name, so
		// custom types surface with the generic "custom" descriptor.
		return cql.NewNativeType(cql.Type(ti.Type()))
	}
}

// convertCollection builds the neutral descriptor for a map, set or list
// column from its scalar tag and converted element types.
func convertCollection(tag cql.Type, key, elem cql.TypeInfo) cql.TypeInfo {
	switch tag {
	case cql.TypeMap:
		return cql.NewMapType(key, elem)
	case cql.TypeSet:
		return cql.NewSetType(elem)
	default:
		return cql.NewListType(elem)
	}
}

var (
	gocqlUUIDType     = reflect.TypeOf(gocql.UUID{})
	gocqlDurationType = reflect.TypeOf(gocql.Duration{})
)

// normalizeValue rewrites gocql cell values into their driver-neutral forms:
// gocql.UUID to uuid.UUID and gocql.Duration to cql.Duration, descending into
// slices and maps. Values with no driver types inside pass through untouched.
func normalizeValue(v any) any {
	switch tv := v.(type) {
	case gocql.UUID:
		return uuid.UUID(tv)
	case gocql.Duration:
		return cql.Duration{
			Months:      tv.Months,
			Days:        tv.Days,
			Nanoseconds: tv.Nanoseconds,
		}
	case nil:
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if !containsDriverType(rv.Type()) {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalizeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if !containsDriverType(rv.Type()) {
			return v
		}
		out := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[normalizeValue(iter.Key().Interface())] = normalizeValue(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}

// containsDriverType reports whether values of t can hold a gocql driver
// type that normalizeValue must rewrite. Interface-typed elements can hold
// anything, so they are treated as convertible.
func containsDriverType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Slice, reflect.Array:
		if t == gocqlUUIDType {
			return true
		}
		return containsDriverType(t.Elem())
	case reflect.Map:
		return containsDriverType(t.Key()) || containsDriverType(t.Elem())
	case reflect.Ptr:
		return containsDriverType(t.Elem())
	case reflect.Struct:
		return t == gocqlDurationType
	default:
		return false
	}
}
