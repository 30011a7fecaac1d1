package dsl

import (
	"strings"

	"github.com/reoring/conform"
)

// StructDesc is a struct descriptor. Fields keep declaration order.
type StructDesc struct {
	name   string
	fields []conform.Field
}

// F declares a struct field.
func F(name string, t conform.Type) conform.Field { return conform.Field{Name: name, Type: t} }

// Struct returns a struct descriptor over the given fields. An empty name is
// replaced by the field list notation, e.g. "{x: Num, y: Num}".
func Struct(name string, fields ...conform.Field) *StructDesc {
	fs := append([]conform.Field(nil), fields...)
	if name == "" {
		name = structName(fs)
	}
	return &StructDesc{name: name, fields: fs}
}

func structName(fs []conform.Field) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Name + ": " + typeName(f.Type)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *StructDesc) Kind() conform.Kind { return conform.KindStruct }
func (s *StructDesc) Name() string       { return s.name }

// Fields returns a copy of the fields in declaration order.
func (s *StructDesc) Fields() []conform.Field { return append([]conform.Field(nil), s.fields...) }

// Field returns the descriptor of the named field.
func (s *StructDesc) Field(name string) (conform.Type, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Is reports whether v is object-like and every declared field conforms.
// Extra keys are ignored.
func (s *StructDesc) Is(v any) bool {
	if conform.IsNil(v) {
		return false
	}
	get, ok := conform.Lookup(v)
	if !ok {
		return false
	}
	for _, f := range s.fields {
		if f.Type == nil || !f.Type.Is(get(f.Name)) {
			return false
		}
	}
	return true
}

// Extend returns a new struct descriptor with the receiver's fields followed
// by more. A field redeclared in more replaces the inherited one in place.
func (s *StructDesc) Extend(name string, more ...conform.Field) *StructDesc {
	fs := append([]conform.Field(nil), s.fields...)
	for _, m := range more {
		replaced := false
		for i := range fs {
			if fs[i].Name == m.Name {
				fs[i] = m
				replaced = true
				break
			}
		}
		if !replaced {
			fs = append(fs, m)
		}
	}
	return Struct(name, fs...)
}

// ObjectBuilder declares a struct descriptor field by field.
type ObjectBuilder struct {
	name   string
	fields []conform.Field
}

// Object creates a struct descriptor builder.
func Object(name string) *ObjectBuilder { return &ObjectBuilder{name: name} }

// Field appends a field.
func (b *ObjectBuilder) Field(name string, t conform.Type) *ObjectBuilder {
	b.fields = append(b.fields, F(name, t))
	return b
}

// Optional appends a field wrapped in Maybe.
func (b *ObjectBuilder) Optional(name string, t conform.Type) *ObjectBuilder {
	return b.Field(name, Maybe(t))
}

// Build returns the descriptor. The builder may keep being used; later fields
// do not affect descriptors already built.
func (b *ObjectBuilder) Build() *StructDesc { return Struct(b.name, b.fields...) }
