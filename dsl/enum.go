package dsl

import (
	"reflect"
	"sort"
	"strings"

	"github.com/reoring/conform"
)

// EnumDesc is a descriptor over a finite set of primitive values.
type EnumDesc struct {
	name   string
	values []any
	labels map[string]string
}

// Enum returns an enum descriptor. An empty name becomes the rendered value
// list, e.g. `"red" | "green"`. Numbers compare by value regardless of their
// Go type.
func Enum(name string, values ...any) *EnumDesc {
	vs := append([]any(nil), values...)
	if name == "" {
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = conform.RenderValue(v)
		}
		name = strings.Join(parts, " | ")
	}
	return &EnumDesc{name: name, values: vs}
}

// Enums returns a string enum whose allowed values are the keys of labels,
// kept in sorted order. The labels are available through Label.
func Enums(name string, labels map[string]string) *EnumDesc {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vs := make([]any, len(keys))
	ls := make(map[string]string, len(labels))
	for i, k := range keys {
		vs[i] = k
		ls[k] = labels[k]
	}
	e := Enum(name, vs...)
	e.labels = ls
	return e
}

func (e *EnumDesc) Kind() conform.Kind { return conform.KindEnum }
func (e *EnumDesc) Name() string       { return e.name }

// Values returns a copy of the allowed values.
func (e *EnumDesc) Values() []any { return append([]any(nil), e.values...) }

// Label returns the label registered through Enums for value.
func (e *EnumDesc) Label(value string) (string, bool) {
	l, ok := e.labels[value]
	return l, ok
}

// Is reports whether v is one of the allowed values.
func (e *EnumDesc) Is(v any) bool {
	for _, a := range e.values {
		if sameValue(v, a) {
			return true
		}
	}
	return false
}

func sameValue(a, b any) bool {
	if fa, ok := Float64(a); ok {
		fb, ok := Float64(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
