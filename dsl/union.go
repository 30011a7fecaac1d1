package dsl

import (
	"github.com/reoring/conform"
)

// UnionDesc is a union descriptor. The dispatch function picks the single
// candidate a value is validated against.
type UnionDesc struct {
	name       string
	candidates []conform.Type
	dispatch   conform.DispatchFunc
}

// Union returns a union descriptor. An empty name becomes "A | B". The
// default dispatch selects the first candidate whose Is accepts the value.
func Union(name string, candidates ...conform.Type) *UnionDesc {
	cs := append([]conform.Type(nil), candidates...)
	if name == "" {
		name = joinNames(cs, " | ")
	}
	u := &UnionDesc{name: name, candidates: cs}
	u.dispatch = firstMatch(cs)
	return u
}

func firstMatch(cs []conform.Type) conform.DispatchFunc {
	return func(v any) int {
		for i, c := range cs {
			if c != nil && c.Is(v) {
				return i
			}
		}
		return -1
	}
}

// WithDispatch returns a copy of u using fn to select candidates.
func (u *UnionDesc) WithDispatch(fn conform.DispatchFunc) *UnionDesc {
	cp := *u
	cp.candidates = append([]conform.Type(nil), u.candidates...)
	cp.dispatch = fn
	return &cp
}

func (u *UnionDesc) Kind() conform.Kind { return conform.KindUnion }
func (u *UnionDesc) Name() string       { return u.name }

// Candidates returns a copy of the candidate descriptors.
func (u *UnionDesc) Candidates() []conform.Type {
	return append([]conform.Type(nil), u.candidates...)
}

// Dispatch returns the dispatch function in effect (nil when unset).
func (u *UnionDesc) Dispatch() conform.DispatchFunc { return u.dispatch }

// Is reports whether the dispatched candidate accepts v.
func (u *UnionDesc) Is(v any) bool {
	if u.dispatch == nil {
		return false
	}
	i := u.dispatch(v)
	return i >= 0 && i < len(u.candidates) && u.candidates[i] != nil && u.candidates[i].Is(v)
}

// DispatchByKey returns a dispatch function for object values that reads the
// string at key and maps it to a candidate index. Non-objects, missing keys
// and unknown tags are unclassifiable.
func DispatchByKey(key string, tags map[string]int) conform.DispatchFunc {
	m := make(map[string]int, len(tags))
	for k, v := range tags {
		m[k] = v
	}
	return func(v any) int {
		if conform.IsNil(v) {
			return -1
		}
		get, ok := conform.Lookup(v)
		if !ok {
			return -1
		}
		tag, ok := get(key).(string)
		if !ok {
			return -1
		}
		if i, ok := m[tag]; ok {
			return i
		}
		return -1
	}
}
