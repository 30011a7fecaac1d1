// Package i18n holds the message templates used by the default formatter.
package i18n

import "fmt"

// Catalog is a set of message templates. Templates are fmt formats taking the
// rendered path, the rendered value and the expected type name as the
// explicit arguments %[1]s, %[2]s and %[3]s.
type Catalog struct {
	Lang      string
	Root      string // Label used in place of an empty path.
	Mismatch  string // :type, :struct and :input failures.
	Predicate string // :predicate failures.
	Dispatch  string // :dispatch failures.
}

// English is the default catalog.
var English = Catalog{
	Lang:      "en",
	Root:      "value",
	Mismatch:  "%[1]s is %[2]s, should be a %[3]s",
	Predicate: "%[1]s is %[2]s, should be truthy for the predicate",
	Dispatch:  "%[1]s is %[2]s, should be a %[3]s",
}

// Japanese renders messages in Japanese.
var Japanese = Catalog{
	Lang:      "ja",
	Root:      "値",
	Mismatch:  "%[1]s は %[2]s です。%[3]s である必要があります",
	Predicate: "%[1]s は %[2]s です。述語を満たす必要があります",
	Dispatch:  "%[1]s は %[2]s です。%[3]s のいずれかの型である必要があります",
}

// Lookup returns the built-in catalog for lang ("en"/"ja"), defaulting to
// English.
func Lookup(lang string) Catalog {
	if lang == "ja" {
		return Japanese
	}
	return English
}

// Template identifies which template of a catalog to use.
type Template int

const (
	TemplateMismatch Template = iota
	TemplatePredicate
	TemplateDispatch
)

// Render fills the selected template. An empty path is replaced by the
// catalog's root label; a catalog with an empty template falls back to the
// English one.
func (c Catalog) Render(tpl Template, path, value, expected string) string {
	if path == "" {
		path = c.Root
		if path == "" {
			path = English.Root
		}
	}
	var f string
	switch tpl {
	case TemplatePredicate:
		f = pick(c.Predicate, English.Predicate)
	case TemplateDispatch:
		f = pick(c.Dispatch, English.Dispatch)
	default:
		f = pick(c.Mismatch, English.Mismatch)
	}
	return fmt.Sprintf(f, path, value, expected)
}

func pick(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
