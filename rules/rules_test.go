package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/conform"
	d "github.com/reoring/conform/dsl"
	"github.com/reoring/conform/rules"
)

func TestNumericPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, rules.Positive(1))
	assert.False(t, rules.Positive(0))
	assert.False(t, rules.Positive("1"))
	assert.True(t, rules.NonNegative(0))
	assert.True(t, rules.Above(2)(2.5))
	assert.False(t, rules.Above(2)(2))
	assert.True(t, rules.AtLeast(2)(2))
	assert.True(t, rules.Below(2)(1))
	assert.True(t, rules.AtMost(2)(2))
	assert.True(t, rules.Between(1, 3)(3))
	assert.False(t, rules.Between(1, 3)(4))
	assert.True(t, rules.Cmp(rules.Ne, 3)(4))
	assert.True(t, rules.Cmp(rules.Eq, 3)(uint(3)))
}

func TestLengthPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, rules.MinLen(2)("日本"))
	assert.False(t, rules.MaxLen(1)("日本"))
	assert.True(t, rules.MinLen(1)([]int{1}))
	assert.True(t, rules.MaxLen(1)(map[string]any{"a": 1}))
	assert.False(t, rules.NonEmpty(""))
	assert.False(t, rules.NonEmpty(nil))
	assert.False(t, rules.MinLen(0)(3))
}

func TestPatternAndOneOf(t *testing.T) {
	t.Parallel()

	email := rules.Pattern(`^[^@]+@[^@]+$`)
	assert.True(t, email("a@b"))
	assert.False(t, email("ab"))
	assert.False(t, email(1))
	assert.Panics(t, func() { rules.Pattern("(") })

	in := rules.OneOf("a", 2, []any{"x"})
	assert.True(t, in("a"))
	assert.True(t, in(2.0))
	assert.True(t, in([]any{"x"}))
	assert.False(t, in("b"))
}

func TestUniqueBy(t *testing.T) {
	t.Parallel()

	u := rules.UniqueBy("/sku")
	assert.True(t, u([]any{
		map[string]any{"sku": "a"},
		map[string]any{"sku": "b"},
		map[string]any{"name": "no sku"},
	}))
	assert.False(t, u([]any{
		map[string]any{"sku": "a"},
		map[string]any{"sku": "a"},
	}))
	assert.False(t, u("not a list"))

	assert.True(t, rules.UniqueBy("")([]string{"a", "b"}))
	assert.False(t, rules.UniqueBy("")([]string{"a", "a"}))

	ids := rules.UniqueBy("id")
	assert.True(t, ids([]any{map[string]any{"id": 1}, map[string]any{"id": "1"}}))
	assert.False(t, ids([]any{map[string]any{"id": 1}, map[string]any{"id": 1.0}}))
	assert.True(t, ids([]any{map[string]any{"id": true}, map[string]any{"id": "true"}}))
}

func TestIfAndCombinators(t *testing.T) {
	t.Parallel()

	type person struct {
		Age    int    `json:"age"`
		Status string `json:"status"`
	}

	adult := rules.If("/age", rules.Ge, 18)
	assert.True(t, adult(person{Age: 20}))
	assert.False(t, adult(person{Age: 10}))
	assert.True(t, adult(map[string]any{"age": 18.0}))
	assert.False(t, adult(map[string]any{}))

	active := rules.If("status", rules.Eq, "active")
	assert.True(t, active(&person{Status: "active"}))
	assert.True(t, rules.If("status", rules.Ne, "active")(person{Status: "off"}))

	nested := rules.If("/lines/1/qty", rules.Gt, 0)
	assert.True(t, nested(map[string]any{"lines": []any{map[string]any{"qty": 0}, map[string]any{"qty": 2}}}))
	assert.False(t, nested(map[string]any{"lines": []any{}}))

	both := rules.All(adult, active)
	either := rules.Any(adult, active)
	assert.False(t, both(person{Age: 30}))
	assert.True(t, either(person{Age: 30}))
	assert.True(t, rules.Not(active)(person{}))

	activeAdult := rules.Implies(active, adult)
	assert.True(t, activeAdult(person{Age: 5}))
	assert.False(t, activeAdult(person{Age: 5, Status: "active"}))
}

func TestPredicatesInSubtypes(t *testing.T) {
	t.Parallel()

	line := d.Struct("Line", d.F("sku", d.Str), d.F("qty", d.Subtype(d.Int, rules.Positive, "Qty")))
	order := d.Struct("Order", d.F("lines", d.Subtype(d.List(line), rules.All(rules.NonEmpty, rules.UniqueBy("sku")), "Lines")))

	res := conform.Validate(map[string]any{"lines": []any{
		map[string]any{"sku": "a", "qty": 1},
		map[string]any{"sku": "a", "qty": 2},
	}}, order)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, conform.FailurePredicate, res.FirstError().Kind)
	assert.Equal(t, "Lines", res.FirstError().Expected)

	res = conform.Validate(map[string]any{"lines": []any{
		map[string]any{"sku": "a", "qty": 0},
	}}, order)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, conform.NewPath("lines", 0, "qty"), res.FirstError().Path)
}
