package dsl

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/reoring/conform"
	js "github.com/reoring/conform/jsonschema"
)

// irreducible is a primitive descriptor: a name and a membership test.
type irreducible struct {
	name   string
	is     func(v any) bool
	schema js.Schema
}

func (p *irreducible) Kind() conform.Kind { return conform.KindPrimitive }
func (p *irreducible) Name() string       { return p.name }
func (p *irreducible) Is(v any) bool      { return p.is(v) }

func (p *irreducible) JSONSchema() (*js.Schema, error) {
	s := p.schema
	if s.Title == "" {
		s.Title = p.name
	}
	return &s, nil
}

// Irreducible registers a primitive type. is must not be nil.
func Irreducible(name string, is func(v any) bool) conform.Type {
	if is == nil {
		panic("dsl: Irreducible " + name + " requires a predicate")
	}
	return &irreducible{name: name, is: is}
}

var (
	// Str accepts Go strings.
	Str conform.Type = &irreducible{name: "Str", is: isString, schema: js.Schema{Type: "string"}}
	// Num accepts finite numbers of any Go numeric kind and json.Number.
	Num conform.Type = &irreducible{name: "Num", is: isNumber, schema: js.Schema{Type: "number"}}
	// Int accepts numbers without a fractional part.
	Int conform.Type = &irreducible{name: "Int", is: isInteger, schema: js.Schema{Type: "integer"}}
	// Bool accepts Go booleans.
	Bool conform.Type = &irreducible{name: "Bool", is: isBool, schema: js.Schema{Type: "boolean"}}
	// Nil accepts null and absent values only.
	Nil conform.Type = &irreducible{name: "Nil", is: conform.IsNil, schema: js.Schema{Type: "null"}}
	// Any accepts every value, including null and absent.
	Any conform.Type = &irreducible{name: "Any", is: func(any) bool { return true }}
	// Obj accepts object-like values: string-keyed maps and Go structs.
	Obj conform.Type = &irreducible{name: "Obj", is: isObject, schema: js.Schema{Type: "object"}}
	// Arr accepts slices and arrays.
	Arr conform.Type = &irreducible{name: "Arr", is: isArray, schema: js.Schema{Type: "array"}}
	// Func accepts non-nil functions.
	Func conform.Type = &irreducible{name: "Func", is: isFunc}
	// Err accepts values implementing error.
	Err conform.Type = &irreducible{name: "Err", is: isError}
	// Dat accepts time.Time and non-nil *time.Time.
	Dat conform.Type = &irreducible{name: "Dat", is: isDate, schema: js.Schema{Type: "string", Format: "date-time"}}
	// Re accepts compiled regular expressions.
	Re conform.Type = &irreducible{name: "Re", is: isRegexp}
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isNumber(v any) bool {
	f, ok := Float64(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isInteger(v any) bool {
	f, ok := Float64(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isObject(v any) bool {
	if conform.IsNil(v) {
		return false
	}
	_, ok := conform.Lookup(v)
	return ok
}

func isArray(v any) bool {
	if conform.IsNil(v) {
		return false
	}
	_, ok := conform.Elements(v)
	return ok
}

func isFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isError(v any) bool {
	_, ok := v.(error)
	return ok && !conform.IsNil(v)
}

func isDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

func isRegexp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

// Float64 converts any Go numeric value or json.Number to float64.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
