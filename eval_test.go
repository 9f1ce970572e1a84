package lumina

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*Context, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf
	return NewContext(cfg), &buf
}

func TestEvalArithmetic(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, "2 + 2")
	assert.True(t, v.IsNumber())
	assert.Equal(t, 4.0, v.Number())

	v = evalExpr(c, "(1 + 2) * 3")
	assert.Equal(t, 9.0, v.Number())
}

func TestEvalPrecedence(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, "2 + 3 * 4")
	assert.Equal(t, 14.0, v.Number())
}

func TestEvalStringConcat(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, `"hi " + "there"`)
	assert.True(t, v.IsString())
	assert.Equal(t, "hi there", v.StringRaw())
}

func TestEvalMixedAddConcatenates(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, `"count " + 3`)
	assert.Equal(t, "count 3", v.StringRaw())
}

func TestEvalDivByZero(t *testing.T) {
	c, _ := newTestContext()

	defer func() {
		le, ok := recover().(*LuminaError)
		require.True(t, ok)
		assert.Equal(t, ErrDivByZero, le.Kind)
	}()

	evalExpr(c, "1 / 0")
}

func TestEvalVariableLookup(t *testing.T) {
	c, _ := newTestContext()
	c.frame().set("x", NumberValue(10))

	v := evalExpr(c, "x * 2")
	assert.Equal(t, 20.0, v.Number())
}

func TestEvalSingleTokenBypassesShuntingYard(t *testing.T) {
	c, _ := newTestContext()

	// an emoji-style bare identifier with no operator characters
	v := evalExpr(c, "sparkle")
	assert.True(t, v.IsString())
	assert.Equal(t, "sparkle", v.StringRaw())
}

func TestEvalNumberWord(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, "two + two")
	assert.Equal(t, 4.0, v.Number())
}

func TestEvalDisabledTokenFails(t *testing.T) {
	c, _ := newTestContext()
	c.disable("+")

	defer func() {
		r := recover()
		le, ok := r.(*LuminaError)
		require.True(t, ok)
		assert.Equal(t, ErrDisabledToken, le.Kind)
	}()

	evalExpr(c, "1 + 1")
}

func TestEvalBareWordFallback(t *testing.T) {
	c, _ := newTestContext()

	v := evalExpr(c, "notavariable")
	assert.True(t, v.IsString())
	assert.Equal(t, "notavariable", v.StringRaw())
}
