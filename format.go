package conform

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/conform/i18n"
)

const rootLabel = "value"

// Formatter builds the default message for a failure that has no custom
// message. It must be a pure function of its arguments.
type Formatter func(path Path, kind FailureKind, value any, expected string) string

var defaultFormatter = FormatterFor(i18n.English)

// DefaultFormatter returns the formatter used when none is configured. It
// renders English messages such as `y is "a", should be a Num`.
func DefaultFormatter() Formatter { return defaultFormatter }

// FormatterFor returns a Formatter backed by the given catalog.
func FormatterFor(c i18n.Catalog) Formatter {
	return func(path Path, kind FailureKind, value any, expected string) string {
		tpl := i18n.TemplateMismatch
		switch kind {
		case FailurePredicate:
			tpl = i18n.TemplatePredicate
		case FailureDispatch:
			tpl = i18n.TemplateDispatch
		}
		return c.Render(tpl, path.String(), RenderValue(value), expected)
	}
}

// RenderValue returns a stable, readable representation of v: its JSON form
// when it has one, `undefined` for an absent value and `null` for nil.
// Map keys are rendered in sorted order and HTML characters are left as is.
func RenderValue(v any) string {
	if IsUndefined(v) {
		return "undefined"
	}
	if v == nil {
		return "null"
	}
	if fn, ok := funcName(v); ok {
		return fn
	}
	b, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func renderKey(v any) string { return fmt.Sprint(v) }
