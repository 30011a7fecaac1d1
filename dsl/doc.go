// Package dsl provides type descriptors for conform.
//
// Overview
//   - Primitives: Str, Num, Int, Bool, Nil, Any, Obj, Arr, Func, Err, Dat, Re, plus
//     Irreducible(name, is) for user-registered primitives.
//   - Struct(name, F(...), ...) or Object(name).Field(...).Build(): fixed-shape records.
//   - List(elem), Tuple(elems...): sequences.
//   - Union(name, candidates...): one of several types; WithDispatch/DispatchByKey choose
//     the candidate.
//   - Enum(name, values...): finite sets.
//   - Subtype(base, pred, name): a base type narrowed by a predicate (see rules/).
//   - Maybe(t): t, or null/absent.
//
// Every descriptor is immutable: methods returning a modified descriptor (for
// example UnionDesc.WithDispatch) return a copy. Descriptors may be shared across
// goroutines.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/reoring/conform"
//	    d "github.com/reoring/conform/dsl"
//	)
//
//	func main() {
//	    person := d.Object("Person").
//	        Field("name", d.Str).
//	        Field("tags", d.List(d.Str)).
//	        Field("nickname", d.Maybe(d.Str)).
//	        Build()
//
//	    res := conform.Validate(map[string]any{"name": "ada", "tags": []any{"a", 1}}, person)
//	    fmt.Println(res.FirstError().Message) // tags[1] is 1, should be a Str
//	}
//
// Names follow a compact notation when none is given: List(Str) is "Array<Str>",
// Maybe(Str) is "?Str", Tuple(Str, Num) is "[Str, Num]", an anonymous union is
// "Str | Num" and an anonymous struct is "{name: Str, age: Num}".
package dsl
