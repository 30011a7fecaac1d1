package dsl

import (
	"github.com/reoring/conform"
)

// ListDesc is a homogeneous list descriptor.
type ListDesc struct {
	name string
	elem conform.Type
}

// List returns a list descriptor; the optional name defaults to "Array<Elem>".
func List(elem conform.Type, name ...string) *ListDesc {
	n := "Array<" + typeName(elem) + ">"
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return &ListDesc{name: n, elem: elem}
}

func (l *ListDesc) Kind() conform.Kind { return conform.KindList }
func (l *ListDesc) Name() string       { return l.name }
func (l *ListDesc) Elem() conform.Type { return l.elem }

// Is reports whether v is a sequence whose elements all conform.
func (l *ListDesc) Is(v any) bool {
	if l.elem == nil || conform.IsNil(v) {
		return false
	}
	elems, ok := conform.Elements(v)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !l.elem.Is(e) {
			return false
		}
	}
	return true
}

// TupleDesc is a fixed-length positional descriptor.
type TupleDesc struct {
	name  string
	elems []conform.Type
}

// Tuple returns a tuple descriptor named like "[Str, Num]".
func Tuple(elems ...conform.Type) *TupleDesc {
	es := append([]conform.Type(nil), elems...)
	return &TupleDesc{name: "[" + joinNames(es, ", ") + "]", elems: es}
}

// NamedTuple returns a tuple descriptor with an explicit name.
func NamedTuple(name string, elems ...conform.Type) *TupleDesc {
	t := Tuple(elems...)
	t.name = name
	return t
}

func (t *TupleDesc) Kind() conform.Kind { return conform.KindTuple }
func (t *TupleDesc) Name() string       { return t.name }

// Elems returns a copy of the positional descriptors.
func (t *TupleDesc) Elems() []conform.Type { return append([]conform.Type(nil), t.elems...) }

// Is reports whether v is a sequence of exactly len(Elems) conforming values.
func (t *TupleDesc) Is(v any) bool {
	if conform.IsNil(v) {
		return false
	}
	elems, ok := conform.Elements(v)
	if !ok || len(elems) != len(t.elems) {
		return false
	}
	for i, e := range elems {
		if t.elems[i] == nil || !t.elems[i].Is(e) {
			return false
		}
	}
	return true
}
