package conform_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/conform"
	d "github.com/reoring/conform/dsl"
)

func TestResult_Valid(t *testing.T) {
	t.Parallel()

	res := conform.Validate("x", d.Str)
	assert.True(t, res.Valid())
	assert.Nil(t, res.FirstError())
	assert.Nil(t, res.Errors())
	assert.Nil(t, res.Messages())
	assert.NoError(t, res.Err())
	assert.Equal(t, 0, res.Len())
}

func TestResult_ErrorsAreCopied(t *testing.T) {
	t.Parallel()

	s := d.Struct("S", d.F("a", d.Str), d.F("b", d.Str))
	res := conform.Validate(map[string]any{}, s)

	errs := res.Errors()
	errs[0].Message = "changed"
	assert.NotEqual(t, "changed", res.FirstError().Message)

	first := res.FirstError()
	first.Message = "changed too"
	assert.Equal(t, "a is undefined, should be a Str", res.FirstError().Message)
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	s := d.Struct("S", d.F("a", d.Num), d.F("b", d.Num), d.F("c", d.Num), d.F("e", d.Num))
	res := conform.Validate(map[string]any{}, s)

	err := res.Err()
	require.Error(t, err)
	assert.Equal(t,
		"a is undefined, should be a Num; b is undefined, should be a Num; c is undefined, should be a Num; ... (total 4)",
		err.Error())

	wrapped := fmt.Errorf("create order: %w", err)
	es, ok := conform.AsErrors(wrapped)
	require.True(t, ok)
	assert.Len(t, es, 4)
	assert.Len(t, es.At(conform.NewPath("c")), 1)
	assert.Empty(t, es.At(conform.NewPath("z")))

	_, ok = conform.AsErrors(nil)
	assert.False(t, ok)
	_, ok = conform.AsErrors(errors.New("other"))
	assert.False(t, ok)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	res := conform.Validate(1, d.Str)
	var err error = *res.FirstError()
	assert.EqualError(t, err, "value is 1, should be a Str")
	assert.Equal(t, "", conform.Errors(nil).Error())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "struct", conform.KindStruct.String())
	assert.Equal(t, "maybe", conform.KindMaybe.String())
	assert.Equal(t, "unknown", conform.Kind(-1).String())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var m map[string]any
	var p *int
	assert.True(t, conform.IsNil(nil))
	assert.True(t, conform.IsNil(conform.Undefined))
	assert.True(t, conform.IsNil(m))
	assert.True(t, conform.IsNil(p))
	assert.False(t, conform.IsNil(0))
	assert.False(t, conform.IsNil(""))
	assert.False(t, conform.IsUndefined(nil))
}
