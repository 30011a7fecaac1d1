package dsl

import (
	"github.com/reoring/conform"
)

// MaybeDesc accepts null and absent values in addition to its inner type.
type MaybeDesc struct {
	name  string
	inner conform.Type
}

// Maybe wraps t; the name is "?T".
func Maybe(t conform.Type) *MaybeDesc {
	return &MaybeDesc{name: "?" + typeName(t), inner: t}
}

func (m *MaybeDesc) Kind() conform.Kind  { return conform.KindMaybe }
func (m *MaybeDesc) Name() string        { return m.name }
func (m *MaybeDesc) Inner() conform.Type { return m.inner }

// Is reports whether v is null, absent or conforms to the inner type.
func (m *MaybeDesc) Is(v any) bool {
	return conform.IsNil(v) || (m.inner != nil && m.inner.Is(v))
}
