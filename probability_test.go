package lumina

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbabilityTableHas101Entries(t *testing.T) {
	assert.Len(t, probabilityTable, 101)
}

func TestProbabilityTableCoversEveryPercentile(t *testing.T) {
	seen := make(map[int]bool)
	for _, e := range probabilityTable {
		seen[int(e.p*100+0.5)] = true
	}
	assert.Len(t, seen, 101)
}

func TestProbabilityDuplicateNamesResolveToDocumentedCanonical(t *testing.T) {
	// DESIGN.md documents first-occurrence-wins, which for a table
	// built descending from 1.00 means the higher percentage wins
	p, ok := lookupProbability("BARELYLIKELY")
	assert.True(t, ok)
	assert.Equal(t, 0.51, p)

	p, ok = lookupProbability("PROBABLYNOT")
	assert.True(t, ok)
	assert.Equal(t, 0.49, p)
}

func TestProbabilityLookupCaseInsensitive(t *testing.T) {
	p1, ok1 := lookupProbability("maybe")
	p2, ok2 := lookupProbability("MAYBE")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 0.50, p1)
}

func TestTrueAndFalseAreUnambiguous(t *testing.T) {
	p, ok := lookupProbability("TRUE")
	assert.True(t, ok)
	assert.Equal(t, 1.0, p)

	p, ok = lookupProbability("FALSE")
	assert.True(t, ok)
	assert.Equal(t, 0.0, p)
}

func TestNumberWords(t *testing.T) {
	for word, want := range map[string]float64{"zero": 0, "ONE": 1, "Ten": 10} {
		n, ok := lookupNumberWord(word)
		assert.True(t, ok)
		assert.Equal(t, want, n)
	}

	_, ok := lookupNumberWord("eleven")
	assert.False(t, ok)
}
