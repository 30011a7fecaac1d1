package conform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/conform"
	d "github.com/reoring/conform/dsl"
	"github.com/reoring/conform/i18n"
)

func TestRenderValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want string
	}{
		{conform.Undefined, "undefined"},
		{nil, "null"},
		{"a", `"a"`},
		{-5, "-5"},
		{1.5, "1.5"},
		{true, "true"},
		{json.Number("12"), "12"},
		{[]any{1, "x"}, `[1,"x"]`},
		{map[string]any{"b": 1, "a": 2}, `{"a":2,"b":1}`},
		{"<b>&", `"<b>&"`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, conform.RenderValue(c.in))
	}
	assert.Equal(t, "[Function func()]", conform.RenderValue(func() {}))

	s := d.Struct("S", d.F("n", d.Num))
	res := conform.Validate(map[string]any{"n": "<b>&"}, s)
	assert.Equal(t, []string{`n is "<b>&", should be a Num`}, res.Messages())
}

func TestFormatterFor_Japanese(t *testing.T) {
	t.Parallel()

	s := d.Struct("S", d.F("n", d.Num))
	res := conform.Validate(map[string]any{"n": "a"}, s, conform.WithFormatter(conform.FormatterFor(i18n.Japanese)))
	assert.Equal(t, []string{`n は "a" です。Num である必要があります`}, res.Messages())

	res = conform.Validate("a", d.Num, conform.WithFormatter(conform.FormatterFor(i18n.Lookup("ja"))))
	assert.Equal(t, []string{`値 は "a" です。Num である必要があります`}, res.Messages())
}

func TestDefaultFormatter_Kinds(t *testing.T) {
	t.Parallel()

	f := conform.DefaultFormatter()
	p := conform.NewPath("a", 1)
	assert.Equal(t, `a[1] is "x", should be a Num`, f(p, conform.FailureType, "x", "Num"))
	assert.Equal(t, `a[1] is "x", should be truthy for the predicate`, f(p, conform.FailurePredicate, "x", "Short"))
	assert.Equal(t, `value is 3, should be a Str | Bool`, f(nil, conform.FailureDispatch, 3, "Str | Bool"))
	assert.Equal(t, `value is null, should be a Point`, f(nil, conform.FailureStruct, nil, "Point"))
}
