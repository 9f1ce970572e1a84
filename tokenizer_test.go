package lumina

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasics(t *testing.T) {
	toks, err := Tokenize("x * 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "*", "2"}, toks)
}

func TestTokenizeQuotedLiteral(t *testing.T) {
	toks, err := Tokenize(`"hey"`)
	require.NoError(t, err)
	assert.Equal(t, []string{`"hey"`}, toks)
}

func TestTokenizeMultiQuoteRun(t *testing.T) {
	toks, err := Tokenize(`'''bye'''`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "bye", stripQuotes(toks[0]))
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	le, ok := err.(*LuminaError)
	require.True(t, ok)
	assert.Equal(t, ErrUnterminatedString, le.Kind)
}

func TestTokenizeParens(t *testing.T) {
	toks, err := Tokenize("(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, []string{"(", "1", "+", "2", ")", "*", "3"}, toks)
}

// TestTokenizeRoundTrip checks spec.md section 8's round-trip
// property: rejoining tokens with a single space re-tokenizes to the
// same list
func TestTokenizeRoundTrip(t *testing.T) {
	for _, expr := range []string{
		`x * 2`,
		`(1 + 2) * 3`,
		`"hey there" + name`,
		`'''bye'''`,
	} {
		toks, err := Tokenize(expr)
		require.NoError(t, err)

		rejoined := strings.Join(toks, " ")
		again, err := Tokenize(rejoined)
		require.NoError(t, err)

		assert.Equal(t, toks, again)
	}
}

func TestStripQuotesRepeatedRuns(t *testing.T) {
	assert.Equal(t, "x", stripQuotes(`"""x"""`))
	assert.Equal(t, "hey", stripQuotes(`"hey"`))
	assert.Equal(t, "bare", stripQuotes(`bare`))
}
