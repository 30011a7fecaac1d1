// Package jsonschema projects conform descriptors into JSON Schema documents.
package jsonschema

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/conform"
)

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Title       string `json:"title,omitempty"`
	Type        any    `json:"type,omitempty"` // string or []string
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Exporter is implemented by primitive descriptors that know their JSON
// Schema form. Primitives without it export as an unconstrained schema.
type Exporter interface {
	JSONSchema() (*Schema, error)
}

// ErrUnsupported is returned for descriptor kinds that have no projection.
var ErrUnsupported = errors.New("jsonschema: unsupported descriptor")

// From projects t into a JSON Schema. Subtype predicates cannot be expressed
// and are recorded in the description only.
func From(t conform.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnsupported)
	}
	switch t.Kind() {
	case conform.KindPrimitive:
		if ex, ok := t.(Exporter); ok {
			return ex.JSONSchema()
		}
		return &Schema{Title: t.Name()}, nil
	case conform.KindStruct:
		st, ok := t.(conform.StructType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		out := &Schema{Title: t.Name(), Type: "object", Properties: map[string]*Schema{}}
		for _, f := range st.Fields() {
			fs, err := From(f.Type)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			out.Properties[f.Name] = fs
			if f.Type.Kind() != conform.KindMaybe {
				out.Required = append(out.Required, f.Name)
			}
		}
		return out, nil
	case conform.KindList:
		lt, ok := t.(conform.ListType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		items, err := From(lt.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case conform.KindTuple:
		tt, ok := t.(conform.TupleType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		elems := tt.Elems()
		n := len(elems)
		out := &Schema{Type: "array", MinItems: &n, MaxItems: &n, Items: nil}
		for i, e := range elems {
			es, err := From(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out.PrefixItems = append(out.PrefixItems, es)
		}
		return out, nil
	case conform.KindUnion:
		ut, ok := t.(conform.UnionType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		out := &Schema{Title: t.Name()}
		for _, c := range ut.Candidates() {
			cs, err := From(c)
			if err != nil {
				return nil, err
			}
			out.OneOf = append(out.OneOf, cs)
		}
		return out, nil
	case conform.KindEnum:
		et, ok := t.(conform.EnumType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		return &Schema{Title: t.Name(), Enum: append([]any(nil), et.Values()...)}, nil
	case conform.KindSubtype:
		st, ok := t.(conform.SubtypeType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		base, err := From(st.Base())
		if err != nil {
			return nil, err
		}
		cp := *base
		cp.Title = t.Name()
		cp.Description = "refined by a predicate"
		return &cp, nil
	case conform.KindMaybe:
		mt, ok := t.(conform.MaybeType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t.Name())
		}
		inner, err := From(mt.Inner())
		if err != nil {
			return nil, err
		}
		return &Schema{AnyOf: []*Schema{inner, {Type: "null"}}}, nil
	}
	return nil, fmt.Errorf("%w: kind %s", ErrUnsupported, t.Kind())
}

// Marshal projects t and encodes the result as indented JSON.
func Marshal(t conform.Type) ([]byte, error) {
	s, err := From(t)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}
