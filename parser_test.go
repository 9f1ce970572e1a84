package lumina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssign(t *testing.T) {
	prog := ParseProgram("x: 10")
	require.Len(t, prog.Statements, 1)

	s := prog.Statements[0]
	assert.Equal(t, StmtAssign, s.Kind)
	assert.Equal(t, "x", s.Name)
	assert.Equal(t, "10", s.Expr)
}

func TestParseLifetimeAssignLines(t *testing.T) {
	prog := ParseProgram("X 2: 5")
	require.Len(t, prog.Statements, 1)

	s := prog.Statements[0]
	require.Equal(t, StmtLifetimeAssign, s.Kind)
	require.NotNil(t, s.Lifetime)
	assert.False(t, s.Lifetime.Seconds)
	assert.Equal(t, int64(2), s.Lifetime.Lines)
}

func TestParseLifetimeAssignSeconds(t *testing.T) {
	prog := ParseProgram("Y 5s: 1")
	s := prog.Statements[0]
	require.True(t, s.Lifetime.Seconds)
	assert.Equal(t, 5.0, s.Lifetime.Duration)
}

func TestParseLifetimeAssignNegative(t *testing.T) {
	prog := ParseProgram("B -3: '''bye'''")
	s := prog.Statements[0]
	assert.Equal(t, int64(-3), s.Lifetime.Lines)
}

func TestParseInlineCallSingleExpr(t *testing.T) {
	prog := ParseProgram("!PRINTLINE x * 2")
	s := prog.Statements[0]
	assert.Equal(t, StmtInlineCall, s.Kind)
	assert.Equal(t, "PRINTLINE", s.CallName)
	assert.Equal(t, []string{"x * 2"}, s.ArgExprs)
}

func TestParseInlineCallMultiArg(t *testing.T) {
	prog := ParseProgram(`!PRINTLINE a, b + 1`)
	s := prog.Statements[0]
	assert.Equal(t, []string{"a", "b + 1"}, s.ArgExprs)
}

func TestParseDelete(t *testing.T) {
	prog := ParseProgram("DELETE 3")
	s := prog.Statements[0]
	assert.Equal(t, StmtDelete, s.Kind)
	assert.Equal(t, "3", s.Target)
}

func TestParseFunctionDefAcceptsAnySubsequenceOfFunction(t *testing.T) {
	for _, kw := range []string{"F", "FN", "FU", "FUN", "FUNC", "FCTION", "FUNCTION"} {
		prog := ParseProgram(kw + " hi\n  !PRINTLINE \"hey\"\nEND")
		require.Len(t, prog.Statements, 1, kw)
		s := prog.Statements[0]
		assert.Equal(t, StmtFunctionDef, s.Kind)
		assert.Equal(t, "hi", s.FuncName)
		require.Len(t, s.Body, 1)
	}
}

func TestParseMissingEndFails(t *testing.T) {
	defer func() {
		le, ok := recover().(*LuminaError)
		require.True(t, ok)
		assert.Equal(t, ErrMissingEnd, le.Kind)
	}()

	ParseProgram("FN hi\n  !PRINTLINE \"hey\"")
}

func TestParseIfComparison(t *testing.T) {
	prog := ParseProgram("IF x > 5\n  !PRINTLINE x\nEND")
	s := prog.Statements[0]
	require.Equal(t, StmtIf, s.Kind)
	require.True(t, s.Cond.IsComparison)
	assert.Equal(t, "x", s.Cond.Left)
	assert.Equal(t, ">", s.Cond.Op)
	assert.Equal(t, "5", s.Cond.Right)
}

func TestParseWhileTruthiness(t *testing.T) {
	prog := ParseProgram("WHILE running\n  !PRINTLINE 1\nEND")
	s := prog.Statements[0]
	require.Equal(t, StmtWhile, s.Kind)
	assert.False(t, s.Cond.IsComparison)
	assert.Equal(t, "running", s.Cond.Expr)
}

func TestParseReverseAndBlankAndComment(t *testing.T) {
	prog := ParseProgram("# a comment\n\nREVERSE")
	require.Len(t, prog.Statements, 1)
	assert.Equal(t, StmtReverse, prog.Statements[0].Kind)
}

func TestComputeRetroBindings(t *testing.T) {
	// ten no-op lines followed by a retroactive assignment declared
	// at top-level position 10 (def_line 11) reaching back 3 lines
	lines := ""
	for i := 0; i < 10; i++ {
		lines += "!PRINTLINE 1\n"
	}
	lines += `B -3: '''bye'''`

	prog := ParseProgram(lines)
	require.Len(t, prog.Statements, 11)

	for _, L := range []uint64{8, 9, 10} {
		require.Len(t, prog.Retro[L], 1, "line %d", L)
		assert.Equal(t, "B", prog.Retro[L][0].Name)
	}
	assert.Empty(t, prog.Retro[11])
	assert.Empty(t, prog.Retro[7])
}
