package conform

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a field name or a sequence index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// Key returns a field-name segment.
func Key(name string) Segment { return Segment{key: name} }

// Index returns a sequence-index segment.
func Index(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment addresses a sequence element.
func (s Segment) IsIndex() bool { return s.isIdx }

// Name returns the field name (empty for index segments).
func (s Segment) Name() string { return s.key }

// Int returns the index (0 for field segments).
func (s Segment) Int() int { return s.index }

// String renders the segment as a message-tree key: the field name or the
// decimal index.
func (s Segment) String() string {
	if s.isIdx {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path locates a value inside a nested structure. The empty path is the root.
// Paths are append-only: Field and Index return extended copies and never
// write into the receiver's backing array, so sibling branches can share a
// parent safely.
type Path []Segment

// NewPath builds a path from field names (string) and indices (int). Other
// element types are rendered with their string form as field names.
func NewPath(parts ...any) Path {
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case int:
			p = append(p, Index(v))
		case string:
			p = append(p, Key(v))
		case Segment:
			p = append(p, v)
		default:
			p = append(p, Key(renderKey(v)))
		}
	}
	return p
}

func (p Path) extend(s Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}

// Field returns p extended with a field-name segment.
func (p Path) Field(name string) Path { return p.extend(Key(name)) }

// Index returns p extended with an index segment.
func (p Path) Index(i int) Path { return p.extend(Index(i)) }

// Equal reports whether both paths address the same location.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted/bracketed form, e.g. items[2].price.
// The root renders as the empty string.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, s := range p {
		if s.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.key)
	}
	return b.String()
}

// Pointer renders the path as a JSON Pointer (RFC 6901), e.g. /items/2/price.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1'
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// Keys returns the path as a slice of string and int elements.
func (p Path) Keys() []any {
	out := make([]any, len(p))
	for i, s := range p {
		if s.isIdx {
			out[i] = s.index
		} else {
			out[i] = s.key
		}
	}
	return out
}
