package conform

import (
	"context"
	"log/slog"
)

// Option configures a Validate call.
type Option func(*options)

type options struct {
	messages  Messages
	xpath     bool
	path      Path
	formatter Formatter
	logger    *slog.Logger
}

// WithMessages supplies a custom-message tree.
func WithMessages(m Messages) Option { return func(o *options) { o.messages = m } }

// WithXPath replaces every message with the rendered failure path (e.g.
// `items[0].price`), for callers that only need to know which fields failed.
// Custom messages and the formatter are bypassed.
func WithXPath() Option { return func(o *options) { o.xpath = true } }

// WithPath seeds the root path, so a nested sub-value can be validated while
// reporting paths relative to the enclosing document.
func WithPath(p Path) Option {
	return func(o *options) { o.path = append(Path(nil), p...) }
}

// WithFormatter replaces the default message formatter.
func WithFormatter(f Formatter) Option { return func(o *options) { o.formatter = f } }

// WithLogger enables debug tracing of union dispatch and container
// short-circuits.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// Validate checks v against t and returns every violation found, in
// encounter order: struct fields in declaration order, sequence elements in
// index order.
//
// Validate panics with a *MalformedTypeError when t (or a descriptor reached
// from it) is misconfigured; malformed values never panic.
func Validate(v any, t Type, opts ...Option) Result {
	o := options{formatter: defaultFormatter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.formatter == nil {
		o.formatter = defaultFormatter
	}
	return newResult(validate(v, t, o.path, &o))
}

// Is reports whether v conforms to t.
func Is(v any, t Type) bool { return Validate(v, t).Valid() }

func validate(v any, t Type, path Path, o *options) []ValidationError {
	if t == nil {
		malformed(t, path, "nil descriptor")
	}
	switch t.Kind() {
	case KindPrimitive:
		if t.Is(v) {
			return nil
		}
		return o.fail(path, v, t.Name(), FailureType)
	case KindMaybe:
		mt, ok := t.(MaybeType)
		if !ok {
			malformed(t, path, "maybe descriptor without inner type")
		}
		if IsNil(v) {
			return nil
		}
		return validate(v, mt.Inner(), path, o)
	case KindSubtype:
		return validateSubtype(v, t, path, o)
	case KindStruct:
		return validateStruct(v, t, path, o)
	case KindList:
		return validateList(v, t, path, o)
	case KindTuple:
		return validateTuple(v, t, path, o)
	case KindUnion:
		return validateUnion(v, t, path, o)
	case KindEnum:
		if t.Is(v) {
			return nil
		}
		return o.fail(path, v, t.Name(), FailureType)
	default:
		malformed(t, path, "unknown kind "+t.Kind().String())
	}
	return nil
}

func validateSubtype(v any, t Type, path Path, o *options) []ValidationError {
	st, ok := t.(SubtypeType)
	if !ok || st.Base() == nil {
		malformed(t, path, "subtype descriptor without base type")
	}
	pred := st.Predicate()
	if pred == nil {
		malformed(t, path, "subtype descriptor without predicate")
	}
	if errs := validate(v, st.Base(), path, o); len(errs) > 0 {
		return errs
	}
	if pred(v) {
		return nil
	}
	return o.fail(path, v, t.Name(), FailurePredicate)
}

func validateStruct(v any, t Type, path Path, o *options) []ValidationError {
	st, ok := t.(StructType)
	if !ok {
		malformed(t, path, "struct descriptor without fields")
	}
	if IsNil(v) {
		return o.shape(path, v, t, FailureStruct)
	}
	get, ok := Lookup(v)
	if !ok {
		return o.shape(path, v, t, FailureStruct)
	}
	if t.Is(v) {
		return nil
	}
	var errs []ValidationError
	for _, f := range st.Fields() {
		if f.Type == nil {
			malformed(t, path, "field "+f.Name+" has no type")
		}
		errs = append(errs, validate(get(f.Name), f.Type, path.Field(f.Name), o)...)
	}
	return errs
}

func validateList(v any, t Type, path Path, o *options) []ValidationError {
	lt, ok := t.(ListType)
	if !ok || lt.Elem() == nil {
		malformed(t, path, "list descriptor without element type")
	}
	if IsNil(v) {
		return o.shape(path, v, t, FailureInput)
	}
	elems, ok := Elements(v)
	if !ok {
		return o.shape(path, v, t, FailureInput)
	}
	if t.Is(v) {
		return nil
	}
	var errs []ValidationError
	for i, e := range elems {
		errs = append(errs, validate(e, lt.Elem(), path.Index(i), o)...)
	}
	return errs
}

func validateTuple(v any, t Type, path Path, o *options) []ValidationError {
	tt, ok := t.(TupleType)
	if !ok {
		malformed(t, path, "tuple descriptor without element types")
	}
	types := tt.Elems()
	if IsNil(v) {
		return o.shape(path, v, t, FailureInput)
	}
	elems, ok := Elements(v)
	if !ok || len(elems) != len(types) {
		return o.shape(path, v, t, FailureInput)
	}
	if t.Is(v) {
		return nil
	}
	var errs []ValidationError
	for i, e := range elems {
		errs = append(errs, validate(e, types[i], path.Index(i), o)...)
	}
	return errs
}

func validateUnion(v any, t Type, path Path, o *options) []ValidationError {
	ut, ok := t.(UnionType)
	if !ok {
		malformed(t, path, "union descriptor without candidates")
	}
	dispatch := ut.Dispatch()
	if dispatch == nil {
		malformed(t, path, "union descriptor without dispatch function")
	}
	candidates := ut.Candidates()
	i := dispatch(v)
	if i < 0 || i >= len(candidates) {
		o.debug("union dispatch failed", path, t, slog.Int("index", i))
		return o.fail(path, v, t.Name(), FailureDispatch)
	}
	if candidates[i] == nil {
		malformed(t, path, "union candidate is nil")
	}
	o.debug("union dispatched", path, t, slog.Int("index", i), slog.String("candidate", candidates[i].Name()))
	return validate(v, candidates[i], path, o)
}

func (o *options) shape(path Path, v any, t Type, kind FailureKind) []ValidationError {
	o.debug("container check failed", path, t, slog.String("kind", string(kind)))
	return o.fail(path, v, t.Name(), kind)
}

func (o *options) fail(path Path, v any, expected string, kind FailureKind) []ValidationError {
	return []ValidationError{{
		Path:     path,
		Value:    v,
		Expected: expected,
		Kind:     kind,
		Message:  o.message(path, kind, v, expected),
	}}
}

func (o *options) message(path Path, kind FailureKind, v any, expected string) string {
	if o.xpath {
		return path.String()
	}
	if msg, ok := Resolve(o.messages, path, kind, v); ok {
		return msg
	}
	return o.formatter(path, kind, v, expected)
}

func (o *options) debug(msg string, path Path, t Type, attrs ...slog.Attr) {
	if o.logger == nil {
		return
	}
	attrs = append(attrs, slog.String("path", path.String()), slog.String("type", t.Name()))
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
