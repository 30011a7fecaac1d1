// Package rules provides reusable predicates for subtype descriptors.
//
//	Positive := dsl.Subtype(dsl.Num, rules.Above(0), "Positive")
//	Adult := dsl.Subtype(Person, rules.If("/age", rules.Ge, 18), "Adult")
package rules

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/conform"
	"github.com/reoring/conform/dsl"
)

// Predicate is a subtype predicate.
type Predicate = func(v any) bool

// Op defines simple comparison operators for If and Cmp.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Cmp compares a numeric value against want.
func Cmp(op Op, want float64) Predicate {
	return func(v any) bool { return compare(v, op, want) }
}

// Above accepts numbers greater than n.
func Above(n float64) Predicate { return Cmp(Gt, n) }

// AtLeast accepts numbers greater than or equal to n.
func AtLeast(n float64) Predicate { return Cmp(Ge, n) }

// Below accepts numbers less than n.
func Below(n float64) Predicate { return Cmp(Lt, n) }

// AtMost accepts numbers less than or equal to n.
func AtMost(n float64) Predicate { return Cmp(Le, n) }

// Positive accepts numbers > 0.
func Positive(v any) bool { return compare(v, Gt, 0) }

// NonNegative accepts numbers >= 0.
func NonNegative(v any) bool { return compare(v, Ge, 0) }

// Between accepts numbers in [lo, hi].
func Between(lo, hi float64) Predicate { return All(AtLeast(lo), AtMost(hi)) }

// MinLen accepts strings (counted in runes), sequences and maps with at
// least n elements.
func MinLen(n int) Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l >= n
	}
}

// MaxLen accepts strings, sequences and maps with at most n elements.
func MaxLen(n int) Predicate {
	return func(v any) bool {
		l, ok := length(v)
		return ok && l <= n
	}
}

// NonEmpty accepts values with a length of at least 1.
func NonEmpty(v any) bool { return MinLen(1)(v) }

// Pattern accepts strings matching the regular expression. It panics when
// expr does not compile.
func Pattern(expr string) Predicate {
	re := regexp.MustCompile(expr)
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// OneOf accepts values deeply equal to one of values.
func OneOf(values ...any) Predicate {
	return func(v any) bool {
		for _, w := range values {
			if equal(v, w) {
				return true
			}
		}
		return false
	}
}

// UniqueBy accepts sequences whose elements have pairwise distinct values at
// the relative pointer key (e.g. "sku" or "/sku"). Elements without the key
// are skipped. Numbers compare by value; other keys compare by type and
// value, so 1 and "1" are distinct.
func UniqueBy(key string) Predicate {
	kp := strings.TrimPrefix(key, "/")
	return func(v any) bool {
		elems, ok := conform.Elements(v)
		if !ok {
			return false
		}
		seen := map[string]struct{}{}
		for _, e := range elems {
			kv, ok := valueAtPathWithin(e, kp)
			if !ok {
				continue
			}
			k := uniqueKey(kv)
			if _, dup := seen[k]; dup {
				return false
			}
			seen[k] = struct{}{}
		}
		return true
	}
}

// If accepts object values whose member at the JSON Pointer compares to want.
// A missing member does not satisfy the condition.
func If(pointer string, op Op, want any) Predicate {
	p := strings.TrimPrefix(normalizePath(pointer), "/")
	return func(v any) bool {
		cur, ok := valueAtPathWithin(v, p)
		if !ok {
			return false
		}
		switch op {
		case Eq:
			return equal(cur, want)
		case Ne:
			return !equal(cur, want)
		}
		w, ok := dsl.Float64(want)
		return ok && compare(cur, op, w)
	}
}

// Implies accepts values for which cond is false or then holds.
func Implies(cond, then Predicate) Predicate {
	return func(v any) bool { return !cond(v) || then(v) }
}

// ---------- combinators ----------

// All accepts values satisfying every predicate.
func All(ps ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Any accepts values satisfying at least one predicate.
func Any(ps ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range ps {
			if p != nil && p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate { return func(v any) bool { return !p(v) } }

// ------- helpers -------

func normalizePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if p[0] != '/' {
		return "/" + p
	}
	return p
}

// valueAtPathWithin navigates maps, structs and sequences by a relative
// pointer using conform's struct key resolution.
func valueAtPathWithin(v any, rel string) (any, bool) {
	if rel == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(rel, "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		if conform.IsNil(cur) {
			return nil, false
		}
		if get, ok := conform.Lookup(cur); ok {
			cur = get(seg)
			if conform.IsUndefined(cur) {
				return nil, false
			}
			continue
		}
		elems, ok := conform.Elements(cur)
		if !ok {
			return nil, false
		}
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(elems) {
			return nil, false
		}
		cur = elems[idx]
	}
	return cur, true
}

func uniqueKey(v any) string {
	if f, ok := dsl.Float64(v); ok {
		return "number:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%T:%v", v, v)
}

func compare(cur any, op Op, want float64) bool {
	a, ok := dsl.Float64(cur)
	if !ok {
		return false
	}
	switch op {
	case Eq:
		return a == want
	case Ne:
		return a != want
	case Lt:
		return a < want
	case Le:
		return a <= want
	case Gt:
		return a > want
	case Ge:
		return a >= want
	}
	return false
}

func equal(a, b any) bool {
	if fa, ok := dsl.Float64(a); ok {
		fb, ok := dsl.Float64(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if conform.IsNil(v) {
		return 0, false
	}
	if elems, ok := conform.Elements(v); ok {
		return len(elems), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return rv.Len(), true
	}
	return 0, false
}
