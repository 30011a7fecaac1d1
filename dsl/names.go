package dsl

import (
	"strings"

	"github.com/reoring/conform"
)

func typeName(t conform.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

func joinNames(ts []conform.Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = typeName(t)
	}
	return strings.Join(parts, sep)
}
