package dsl

import (
	"github.com/reoring/conform"
)

// SubtypeDesc narrows a base descriptor with a predicate.
type SubtypeDesc struct {
	name string
	base conform.Type
	pred func(v any) bool
}

// Subtype returns base narrowed by pred. An empty name becomes
// "{Base | predicate}".
func Subtype(base conform.Type, pred func(v any) bool, name string) *SubtypeDesc {
	if name == "" {
		name = "{" + typeName(base) + " | predicate}"
	}
	return &SubtypeDesc{name: name, base: base, pred: pred}
}

// Refinement is an alias of Subtype with the name first.
func Refinement(name string, base conform.Type, pred func(v any) bool) *SubtypeDesc {
	return Subtype(base, pred, name)
}

func (s *SubtypeDesc) Kind() conform.Kind          { return conform.KindSubtype }
func (s *SubtypeDesc) Name() string                { return s.name }
func (s *SubtypeDesc) Base() conform.Type          { return s.base }
func (s *SubtypeDesc) Predicate() func(v any) bool { return s.pred }

// Is reports whether v conforms to the base type and satisfies the predicate.
func (s *SubtypeDesc) Is(v any) bool {
	if s.base == nil || s.pred == nil {
		return false
	}
	return s.base.Is(v) && s.pred(v)
}
