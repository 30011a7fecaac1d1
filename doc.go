// Package conform checks arbitrary runtime values against declarative type
// descriptors and reports every violation with the path where it occurred.
//
// It provides:
//
// - A recursive validator over primitive, struct, list, tuple, union, enum,
// subtype and maybe descriptors (Validate, Is)
// - A stable error model (ValidationError: Path, Value, Expected, Kind, Message)
// - Custom messages keyed by structural path (Messages), loadable from JSON or YAML
// - Injected default formatting (Formatter, i18n catalogs) and an xpath mode
//
// Values are never coerced. Struct descriptors accept map[string]T values and
// Go structs (keys resolved through conform/json tags); list and tuple
// descriptors accept slices and arrays. A missing struct field is reported
// with the Undefined sentinel as its value, distinct from an explicit nil.
//
// Design policy:
// - Keep the public API in the root package; descriptors live under dsl/.
// - Descriptors are immutable and may be shared across goroutines.
// - Misconfigured descriptors panic (ErrMalformedType); bad values never do.
//
// Typical usage:
//
//	Point := dsl.Struct("Point", dsl.F("x", dsl.Num), dsl.F("y", dsl.Num))
//	res := conform.Validate(map[string]any{"x": 0, "y": "a"}, Point)
//	res.Valid()              // false
//	res.FirstError().Message // y is "a", should be a Num
package conform
