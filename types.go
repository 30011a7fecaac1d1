package conform

// Kind enumerates the descriptor variants the validator understands.
type Kind int

const (
	KindPrimitive Kind = iota // Irreducible membership test (string, number, ...).
	KindSubtype               // Base type narrowed by a predicate.
	KindStruct                // Fixed-shape record with named fields.
	KindList                  // Homogeneous sequence.
	KindTuple                 // Fixed-length positional sequence.
	KindUnion                 // Exactly one of several candidates, chosen by dispatch.
	KindEnum                  // Finite set of allowed values.
	KindMaybe                 // Wrapped type that also accepts null/absent.
)

var kindNames = [...]string{
	KindPrimitive: "primitive",
	KindSubtype:   "subtype",
	KindStruct:    "struct",
	KindList:      "list",
	KindTuple:     "tuple",
	KindUnion:     "union",
	KindEnum:      "enum",
	KindMaybe:     "maybe",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Type is the minimal contract the validator reads from a descriptor.
// Is reports final membership and is used as a fast path: when it returns
// true the value conforms and no structural walk happens.
type Type interface {
	Kind() Kind
	Name() string
	Is(v any) bool
}

// Field is one named member of a struct descriptor.
type Field struct {
	Name string
	Type Type
}

// StructType is implemented by descriptors whose Kind is KindStruct.
// Fields are returned in declaration order.
type StructType interface {
	Type
	Fields() []Field
}

// ListType is implemented by descriptors whose Kind is KindList.
type ListType interface {
	Type
	Elem() Type
}

// TupleType is implemented by descriptors whose Kind is KindTuple.
type TupleType interface {
	Type
	Elems() []Type
}

// DispatchFunc selects the candidate index of a union for a value. A negative
// or out-of-range index means the value cannot be classified.
type DispatchFunc func(v any) int

// UnionType is implemented by descriptors whose Kind is KindUnion.
type UnionType interface {
	Type
	Candidates() []Type
	Dispatch() DispatchFunc
}

// EnumType is implemented by descriptors whose Kind is KindEnum.
type EnumType interface {
	Type
	Values() []any
}

// SubtypeType is implemented by descriptors whose Kind is KindSubtype.
type SubtypeType interface {
	Type
	Base() Type
	Predicate() func(v any) bool
}

// MaybeType is implemented by descriptors whose Kind is KindMaybe.
type MaybeType interface {
	Type
	Inner() Type
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands for an absent value, e.g. a struct field missing from its
// container. It is distinct from nil, which stands for an explicit null.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNil reports whether v is null or absent. Typed nil pointers, maps and
// slices count as null.
func IsNil(v any) bool {
	if v == nil || IsUndefined(v) {
		return true
	}
	return isNilReflect(v)
}
