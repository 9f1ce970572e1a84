package lumina

import (
	"strconv"
	"strings"
	"unicode"
)

//
// The line-oriented parser, spec.md section 4.3/4.4/6.  Modeled on the
// teacher's statement-at-a-time read loop (basic.go's program-load
// pass over source lines feeding into execute.go's per-line parse),
// but collapsed into a single recursive-descent pass since Lumina's
// block statements (IF/WHILE/function-def) all close on the same
// bare END keyword rather than the teacher's paired-keyword scheme
//

// Program is the parsed form of a whole source file: the top-level
// statement list plus the retroactive-lifetime synthetic bindings
// precomputed from it (spec.md section 4.5)
type Program struct {
	Statements []*Statement
	Retro      map[uint64][]RetroBinding
}

// RetroBinding is one synthetic (name, expr) pair that the executor
// applies at a given execution line, per spec.md section 4.5
type RetroBinding struct {
	Name string
	Expr string
}

var comparisonOps = map[string]string{
	"<":         "<",
	">":         ">",
	"<=":        "<=",
	">=":        ">=",
	"==":        "==",
	"!=":        "!=",
	"LESS":      "<",
	"GREATER":   ">",
	"LESSEQ":    "<=",
	"GREATEREQ": ">=",
	"EQUAL":     "==",
	"NOTEQUAL":  "!=",
}

// ParseProgram parses a whole source file, per spec.md sections 4.3,
// 4.5 and 6.  Parse failures raise the same LuminaError kinds that
// execution does (BadStatement, MissingEnd, BadLifetime), via panic;
// Run recovers them in parseProgramSafe (executor.go), separately
// from the recover in Executor.Run that covers execution
func ParseProgram(src string) *Program {

	lines := strings.Split(src, "\n")

	stmts, next := parseBlock(lines, 0, nil)
	if next != len(lines) {
		luminaAssert(false, "parseBlock returned early at line %d of %d", next, len(lines))
	}

	return &Program{
		Statements: stmts,
		Retro:      computeRetroBindings(stmts),
	}
}

// parseBlock parses statements starting at lines[pos] until either
// end of input (terminator == nil, the top-level case) or a bare END
// line (terminator != nil, used for IF/WHILE/function bodies).  It
// returns the parsed body and the index just past the consumed lines
func parseBlock(lines []string, pos int, terminator *struct{}) ([]*Statement, int) {

	var body []*Statement

	for pos < len(lines) {

		raw := lines[pos]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			pos++
			continue
		}

		if terminator != nil && strings.EqualFold(trimmed, "END") {
			return body, pos + 1
		}

		stmt, newPos := parseStatement(lines, pos)
		body = append(body, stmt)
		pos = newPos
	}

	if terminator != nil {
		raise(ErrMissingEnd, uint64(pos+1), "block starting before line %d has no matching END", pos+1)
	}

	return body, pos
}

// parseStatement parses the single statement headed at lines[pos],
// consuming additional lines for block bodies, and returns the
// statement plus the index of the next unconsumed line
func parseStatement(lines []string, pos int) (*Statement, int) {

	raw := lines[pos]
	srcLine := uint64(pos + 1)
	trimmed := strings.TrimSpace(raw)

	spans := wordSpans(trimmed)
	luminaAssert(len(spans) > 0, "parseStatement called on a blank line")

	first := spans[0].text
	upperFirst := strings.ToUpper(first)

	switch {

	case strings.HasPrefix(first, "!"):
		return parseInlineCall(trimmed, spans, srcLine), pos + 1

	case upperFirst == "IMPORT":
		return parseImport(trimmed, spans, srcLine), pos + 1

	case upperFirst == "DELETE":
		return parseDelete(trimmed, spans, srcLine), pos + 1

	case upperFirst == "PREVIOUS":
		return parsePrevious(trimmed, spans, srcLine), pos + 1

	case upperFirst == "RETURN":
		return parseReturn(trimmed, spans, srcLine), pos + 1

	case upperFirst == "REVERSE":
		return &Statement{Kind: StmtReverse, Keyword: "REVERSE"}, pos + 1

	case upperFirst == "IF" || upperFirst == "WHILE":
		return parseIfWhile(lines, pos, trimmed, spans, srcLine)

	case isFunctionKeyword(first):
		return parseFunctionDef(lines, pos, trimmed, spans, srcLine)
	}

	if stmt, ok := tryParseAssign(trimmed, spans, srcLine); ok {
		return stmt, pos + 1
	}

	raise(ErrBadStatement, srcLine, "no statement rule matches %q", first)
	return nil, pos + 1
}

//
// individual statement-head parsers
//

func parseInlineCall(trimmed string, spans []wordSpan, srcLine uint64) *Statement {

	name := strings.TrimPrefix(spans[0].text, "!")
	rest := remainderAfter(trimmed, spans, 0)

	var argExprs []string
	if strings.TrimSpace(rest) != "" {
		argExprs = splitTopLevel(rest, ',')
	}

	return &Statement{
		Kind:     StmtInlineCall,
		Keyword:  name,
		CallName: name,
		ArgExprs: argExprs,
	}
}

func parseImport(trimmed string, spans []wordSpan, srcLine uint64) *Statement {

	rest := strings.TrimSpace(remainderAfter(trimmed, spans, 0))

	args, err := shellSplit(rest)
	if err != nil || len(args) == 0 {
		raise(ErrBadStatement, srcLine, "malformed IMPORT arguments: %q", rest)
	}

	return &Statement{
		Kind:       StmtImport,
		Keyword:    "IMPORT",
		ImportPath: args[0],
		ImportArgs: args[1:],
	}
}

func parseDelete(trimmed string, spans []wordSpan, srcLine uint64) *Statement {

	if len(spans) < 2 {
		raise(ErrBadStatement, srcLine, "DELETE requires a target token")
	}

	return &Statement{
		Kind:    StmtDelete,
		Keyword: "DELETE",
		Target:  spans[1].text,
	}
}

func parsePrevious(trimmed string, spans []wordSpan, srcLine uint64) *Statement {

	if len(spans) < 2 {
		raise(ErrBadStatement, srcLine, "PREVIOUS requires a target name")
	}

	return &Statement{
		Kind:    StmtPrevious,
		Keyword: "PREVIOUS",
		Target:  spans[1].text,
	}
}

func parseReturn(trimmed string, spans []wordSpan, srcLine uint64) *Statement {

	expr := strings.TrimSpace(remainderAfter(trimmed, spans, 0))

	return &Statement{
		Kind:    StmtReturn,
		Keyword: "RETURN",
		Expr:    expr,
	}
}

func parseIfWhile(lines []string, pos int, trimmed string, spans []wordSpan, srcLine uint64) (*Statement, int) {

	keyword := strings.ToUpper(spans[0].text)
	rest := strings.TrimSpace(remainderAfter(trimmed, spans, 0))

	cond := parseCondition(rest)

	body, next := parseBlock(lines, pos+1, &struct{}{})

	kind := StmtIf
	if keyword == "WHILE" {
		kind = StmtWhile
	}

	return &Statement{
		Kind:    kind,
		Keyword: keyword,
		Cond:    cond,
		Body:    body,
	}, next
}

// parseCondition implements the two shapes from spec.md section 4.3:
// a binary comparison, recognized by the presence of one of the
// twelve comparison tokens at the top level of the condition's word
// sequence, or a single truthiness expression otherwise
func parseCondition(rest string) *Condition {

	toks := headTokenize(rest)

	for i, t := range toks {
		if canon, ok := comparisonOps[strings.ToUpper(t)]; ok {
			if i == 0 || i == len(toks)-1 {
				continue
			}
			return &Condition{
				IsComparison: true,
				Left:         strings.Join(toks[:i], " "),
				Op:           canon,
				Right:        strings.Join(toks[i+1:], " "),
			}
		}
	}

	return &Condition{IsComparison: false, Expr: rest}
}

func parseFunctionDef(lines []string, pos int, trimmed string, spans []wordSpan, srcLine uint64) (*Statement, int) {

	if len(spans) < 2 {
		raise(ErrBadStatement, srcLine, "function definition requires a name")
	}

	body, next := parseBlock(lines, pos+1, &struct{}{})

	return &Statement{
		Kind:     StmtFunctionDef,
		Keyword:  strings.ToUpper(spans[0].text),
		FuncName: spans[1].text,
		Body:     body,
	}, next
}

// tryParseAssign implements spec.md section 6's recognition rule:
// plain assignment when the first word ends with ':'; lifetime
// assignment when the second word ends with ':' but the first does not
func tryParseAssign(trimmed string, spans []wordSpan, srcLine uint64) (*Statement, bool) {

	if len(spans) == 0 {
		return nil, false
	}

	if strings.HasSuffix(spans[0].text, ":") {
		name := strings.TrimSuffix(spans[0].text, ":")
		expr := strings.TrimSpace(remainderAfter(trimmed, spans, 0))
		return &Statement{
			Kind:    StmtAssign,
			Keyword: ":",
			Name:    name,
			Expr:    expr,
		}, true
	}

	if len(spans) >= 2 && strings.HasSuffix(spans[1].text, ":") {
		name := spans[0].text
		lifeTok := strings.TrimSuffix(spans[1].text, ":")
		expr := strings.TrimSpace(remainderAfter(trimmed, spans, 1))
		return &Statement{
			Kind:     StmtLifetimeAssign,
			Keyword:  ":",
			Name:     name,
			Expr:     expr,
			Lifetime: parseLifetime(lifeTok, srcLine),
		}, true
	}

	return nil, false
}

// parseLifetime parses the `<life>` token from spec.md section 4.3:
// a signed integer line count, or a float followed by 's'
func parseLifetime(tok string, srcLine uint64) *LifetimeSpec {

	if tok == "" {
		raise(ErrBadLifetime, srcLine, "empty lifetime token")
	}

	if last := tok[len(tok)-1]; last == 's' || last == 'S' {
		numPart := tok[:len(tok)-1]
		f, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			raise(ErrBadLifetime, srcLine, "malformed seconds lifetime %q", tok)
		}
		return &LifetimeSpec{Seconds: true, Duration: f}
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		raise(ErrBadLifetime, srcLine, "malformed lifetime %q", tok)
	}

	return &LifetimeSpec{Seconds: false, Lines: n}
}

// isFunctionKeyword reports whether s is a non-empty case-insensitive
// subsequence of "FUNCTION", per spec.md section 6
func isFunctionKeyword(s string) bool {

	if s == "" {
		return false
	}

	const target = "FUNCTION"
	upper := strings.ToUpper(s)

	ti := 0
	for _, r := range upper {
		for ti < len(target) && rune(target[ti]) != r {
			ti++
		}
		if ti >= len(target) {
			return false
		}
		ti++
	}

	return true
}

//
// computeRetroBindings implements spec.md section 4.5: every
// top-level lifetime-assignment with a negative line count at
// 0-indexed position i (def_line = i+1) produces synthetic (name,
// expr) bindings at every execution line in [max(1, def_line-k), def_line)
//

func computeRetroBindings(stmts []*Statement) map[uint64][]RetroBinding {

	bindings := make(map[uint64][]RetroBinding)

	for i, stmt := range stmts {

		if stmt.Kind != StmtLifetimeAssign || stmt.Lifetime == nil {
			continue
		}
		if stmt.Lifetime.Seconds || stmt.Lifetime.Lines >= 0 {
			continue
		}

		defLine := uint64(i + 1)
		k := uint64(-stmt.Lifetime.Lines)

		lowL := uint64(1)
		if defLine > k {
			lowL = defLine - k
		}

		for L := lowL; L < defLine; L++ {
			bindings[L] = append(bindings[L], RetroBinding{Name: stmt.Name, Expr: stmt.Expr})
		}
	}

	return bindings
}

//
// word-splitting helpers shared by the statement-head parsers
//

type wordSpan struct {
	text     string
	endRunes int // rune offset of the first rune past this word
}

// wordSpans splits a line into whitespace-delimited words, quote-aware
// via scanQuotedLiteral, recording each word's end offset in runes so
// remainderAfter can slice out everything following a given word
func wordSpans(line string) []wordSpan {

	var spans []wordSpan
	runes := []rune(line)
	i := 0
	n := len(runes)

	for i < n {
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= n {
			break
		}

		if runes[i] == '"' || runes[i] == '\'' {
			tok, next, err := scanQuotedLiteral(runes, i)
			if err == nil {
				spans = append(spans, wordSpan{text: tok, endRunes: next})
				i = next
				continue
			}
		}

		start := i
		for i < n && !unicode.IsSpace(runes[i]) {
			i++
		}
		spans = append(spans, wordSpan{text: string(runes[start:i]), endRunes: i})
	}

	return spans
}

// remainderAfter returns the raw text of line following the word at
// spans[idx], preserving original spacing and quoting in the tail
func remainderAfter(line string, spans []wordSpan, idx int) string {

	if idx >= len(spans) {
		return ""
	}

	runes := []rune(line)
	off := spans[idx].endRunes
	if off > len(runes) {
		off = len(runes)
	}

	return string(runes[off:])
}

// splitTopLevel splits s on sep, ignoring occurrences inside matching
// quotes or parens, used to separate an inline call's comma-joined
// argument expressions (spec.md section 4.3's `!NAME arg…` form)
func splitTopLevel(s string, sep rune) []string {

	var parts []string
	var depth int
	var quote rune
	start := 0

	runes := []rune(s)
	for i, r := range runes {

		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(string(runes[start:i])))
			start = i + 1
		}
	}

	parts = append(parts, strings.TrimSpace(string(runes[start:])))

	return parts
}
