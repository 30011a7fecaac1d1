package conform

import (
	"fmt"
	"reflect"
	"strings"
)

// ResolveStructKey returns the key a Go struct field is addressed by when a
// struct value is validated against a struct descriptor.
// Priority: conform:"name=..." > json tag name > field name; "-" hides the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ct := sf.Tag.Get("conform"); ct != "" {
		for _, p := range strings.Split(ct, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

func isNilReflect(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Lookup returns a field getter when v is object-like: a map keyed by
// strings, or a Go struct (or pointer to one). Missing keys yield Undefined.
func Lookup(v any) (func(key string) any, bool) {
	if m, ok := v.(map[string]any); ok {
		return func(key string) any {
			if x, ok := m[key]; ok {
				return x
			}
			return Undefined
		}, true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		kt := rv.Type().Key()
		return func(key string) any {
			x := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
			if !x.IsValid() {
				return Undefined
			}
			return x.Interface()
		}, true
	case reflect.Struct:
		return func(key string) any {
			return structField(rv, key)
		}, true
	}
	return nil, false
}

func structField(rv reflect.Value, key string) any {
	sf, ok := structKeyField(rv.Type(), key)
	if !ok {
		return Undefined
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return Undefined
	}
	return fv.Interface()
}

// structKeyField finds the field addressed by key. Fields of untagged
// embedded structs are promoted; on a name clash the shallowest field wins,
// then a tagged one, and an unresolved tie hides the key.
func structKeyField(t reflect.Type, key string) (reflect.StructField, bool) {
	var best reflect.StructField
	found, bestTagged, tie := false, false, false
	for _, sf := range keyedFields(t, nil, map[reflect.Type]bool{t: true}) {
		if ResolveStructKey(sf) != key {
			continue
		}
		_, tagged := tagName(sf)
		switch {
		case !found || len(sf.Index) < len(best.Index):
			best, bestTagged, found, tie = sf, tagged, true, false
		case len(sf.Index) == len(best.Index):
			if tagged && !bestTagged {
				best, bestTagged, tie = sf, true, false
			} else if tagged == bestTagged {
				tie = true
			}
		}
	}
	if !found || tie {
		return reflect.StructField{}, false
	}
	return best, true
}

// keyedFields lists the exported, visible fields of t with their full index,
// descending into promoted embedded structs.
func keyedFields(t reflect.Type, index []int, seen map[reflect.Type]bool) []reflect.StructField {
	var out []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		sf.Index = append(append([]int(nil), index...), i)
		if promotes(sf) {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if !seen[ft] {
				seen[ft] = true
				out = append(out, keyedFields(ft, sf.Index, seen)...)
			}
			continue
		}
		if !sf.IsExported() || ResolveStructKey(sf) == "-" {
			continue
		}
		out = append(out, sf)
	}
	return out
}

// promotes reports whether sf is an embedded struct whose fields are
// addressed directly on the outer struct.
func promotes(sf reflect.StructField) bool {
	if !sf.Anonymous {
		return false
	}
	if _, ok := tagName(sf); ok || sf.Tag.Get("json") == "-" {
		return false
	}
	ft := sf.Type
	if ft.Kind() == reflect.Pointer {
		ft = ft.Elem()
	}
	return ft.Kind() == reflect.Struct
}

// tagName returns the explicit key given by a conform or json tag.
func tagName(sf reflect.StructField) (string, bool) {
	if !hasExplicitName(sf) {
		return "", false
	}
	return ResolveStructKey(sf), true
}

func hasExplicitName(sf reflect.StructField) bool {
	if strings.Contains(sf.Tag.Get("conform"), "name=") {
		return true
	}
	jt := sf.Tag.Get("json")
	return jt != "" && jt != "-" && !strings.HasPrefix(jt, ",")
}

// Elements returns the elements of v when v is a slice or array. Strings and
// byte slices are not sequences.
func Elements(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

func funcName(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return "", false
	}
	return fmt.Sprintf("[Function %s]", rv.Type()), true
}
