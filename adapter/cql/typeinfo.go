package cql

import "strings"

// Type is the driver-neutral CQL column type tag. The numeric values match
// the CQL binary protocol option IDs used by both gocql versions.
type Type int

// CQL column types.
const (
	TypeCustom    Type = 0x0000
	TypeAscii     Type = 0x0001
	TypeBigInt    Type = 0x0002
	TypeBlob      Type = 0x0003
	TypeBoolean   Type = 0x0004
	TypeCounter   Type = 0x0005
	TypeDecimal   Type = 0x0006
	TypeDouble    Type = 0x0007
	TypeFloat     Type = 0x0008
	TypeInt       Type = 0x0009
	TypeText      Type = 0x000A
	TypeTimestamp Type = 0x000B
	TypeUUID      Type = 0x000C
	TypeVarchar   Type = 0x000D
	TypeVarint    Type = 0x000E
	TypeTimeUUID  Type = 0x000F
	TypeInet      Type = 0x0010
	TypeDate      Type = 0x0011
	TypeTime      Type = 0x0012
	TypeSmallInt  Type = 0x0013
	TypeTinyInt   Type = 0x0014
	TypeDuration  Type = 0x0015
	TypeList      Type = 0x0020
	TypeMap       Type = 0x0021
	TypeSet       Type = 0x0022
	TypeUDT       Type = 0x0030
	TypeTuple     Type = 0x0031
)

// String returns the CQL name of the type.
func (t Type) String() string {
	switch t {
	case TypeCustom:
		return "custom"
	case TypeAscii:
		return "ascii"
	case TypeBigInt:
		return "bigint"
	case TypeBlob:
		return "blob"
	case TypeBoolean:
		return "boolean"
	case TypeCounter:
		return "counter"
	case TypeDecimal:
		return "decimal"
	case TypeDouble:
		return "double"
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeText:
		return "text"
	case TypeTimestamp:
		return "timestamp"
	case TypeUUID:
		return "uuid"
	case TypeVarchar:
		return "varchar"
	case TypeVarint:
		return "varint"
	case TypeTimeUUID:
		return "timeuuid"
	case TypeInet:
		return "inet"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeSmallInt:
		return "smallint"
	case TypeTinyInt:
		return "tinyint"
	case TypeDuration:
		return "duration"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	case TypeUDT:
		return "udt"
	case TypeTuple:
		return "tuple"
	}

	return "unknown"
}

// UDTField is one named field of a user-defined type.
type UDTField struct {
	Name string
	Type TypeInfo
}

// TypeInfo is the driver-neutral declared type of a result column, including
// the element type parameters of collections, tuples, and user-defined types.
//
// Field usage by Type:
//
//	TypeList, TypeSet   Elem is the element type
//	TypeMap             Key is the key type, Elem is the value type
//	TypeTuple           Elems are the slot types, in order; len(Elems) is the arity
//	TypeUDT             UDTName names the type, Fields are its fields in declared order
//	TypeCustom          Custom carries the server's custom type class name
type TypeInfo struct {
	Type    Type
	Key     *TypeInfo
	Elem    *TypeInfo
	Elems   []TypeInfo
	UDTName string
	Fields  []UDTField
	Custom  string
}

// NewNativeType returns a TypeInfo for a non-parameterized CQL type.
func NewNativeType(t Type) TypeInfo {
	return TypeInfo{Type: t}
}

// NewListType returns a TypeInfo for list<elem>.
func NewListType(elem TypeInfo) TypeInfo {
	return TypeInfo{Type: TypeList, Elem: &elem}
}

// NewSetType returns a TypeInfo for set<elem>.
func NewSetType(elem TypeInfo) TypeInfo {
	return TypeInfo{Type: TypeSet, Elem: &elem}
}

// NewMapType returns a TypeInfo for map<key, value>.
func NewMapType(key, value TypeInfo) TypeInfo {
	return TypeInfo{Type: TypeMap, Key: &key, Elem: &value}
}

// NewTupleType returns a TypeInfo for tuple<elems...>.
func NewTupleType(elems ...TypeInfo) TypeInfo {
	return TypeInfo{Type: TypeTuple, Elems: elems}
}

// NewUDTType returns a TypeInfo for a user-defined type with the given name
// and fields in declared order.
func NewUDTType(name string, fields ...UDTField) TypeInfo {
	return TypeInfo{Type: TypeUDT, UDTName: name, Fields: fields}
}

// String renders the full parameterized CQL type, e.g.
// "map<text, list<int>>" or "tuple<int, text>".
func (t TypeInfo) String() string {
	switch t.Type {
	case TypeList, TypeSet:
		if t.Elem == nil {
			return t.Type.String()
		}
		return t.Type.String() + "<" + t.Elem.String() + ">"
	case TypeMap:
		if t.Key == nil || t.Elem == nil {
			return t.Type.String()
		}
		return "map<" + t.Key.String() + ", " + t.Elem.String() + ">"
	case TypeTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case TypeUDT:
		if t.UDTName != "" {
			return t.UDTName
		}
		return "udt"
	case TypeCustom:
		if t.Custom != "" {
			return t.Custom
		}
		return "custom"
	default:
		return t.Type.String()
	}
}
