package lumina

import (
	"strings"
	"unicode"
)

//
// The expression tokenizer, spec.md section 4.1.  It operates on a
// bare substring -- never a full program line -- and never consults
// interpreter state, unlike the teacher's stateful scanner in
// lexer.go/myScanner which mutates the shared Lexer as it goes.
// Lumina's tokenizer is a pure function of its input, matching the
// "context-free" requirement in the spec
//

const operatorChars = "+-*/%()"

// Tokenize splits expr into atoms, operator characters, parens and
// multi-quote string literals, per the four rules in spec.md 4.1
func Tokenize(expr string) ([]string, error) {

	var tokens []string

	runes := []rune(expr)
	i := 0
	n := len(runes)

	for i < n {

		r := runes[i]

		// rule 1: skip whitespace
		if unicode.IsSpace(r) {
			i++
			continue
		}

		// rule 2: quoted string literal, delimiter run of arbitrary length
		if r == '"' || r == '\'' {
			tok, next, err := scanQuotedLiteral(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// rule 3: single-character punctuation
		if strings.ContainsRune(operatorChars, r) {
			tokens = append(tokens, string(r))
			i++
			continue
		}

		// rule 4: maximal run of anything else
		start := i
		for i < n && !unicode.IsSpace(runes[i]) && !strings.ContainsRune(operatorChars, runes[i]) &&
			runes[i] != '"' && runes[i] != '\'' {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}

	return tokens, nil
}

// scanQuotedLiteral implements rule 2: the opening delimiter is the
// maximal run of the same quote character starting at i; the token
// runs through the next identical run, inclusive of both runs
func scanQuotedLiteral(runes []rune, i int) (string, int, error) {

	quote := runes[i]
	n := len(runes)

	openStart := i
	for i < n && runes[i] == quote {
		i++
	}
	openLen := i - openStart

	for i < n {
		if runes[i] == quote {
			closeStart := i
			for i < n && runes[i] == quote {
				i++
			}
			closeLen := i - closeStart
			if closeLen == openLen {
				return string(runes[openStart:i]), i, nil
			}
			// a run of a different length is just more literal text
			// followed by potentially the real closing run; keep
			// scanning rather than treating it as a failed match
			continue
		}
		i++
	}

	return "", 0, newLuminaError(ErrUnterminatedString, 0, "unterminated string starting at %q", string(runes[openStart:openStart+openLen]))
}

// isQuotedToken reports whether tok begins and ends with a matching
// run of the same quote character and has length >= 2, per atom
// resolution rule 5 in spec.md section 4.2
func isQuotedToken(tok string) (quote rune, ok bool) {

	runes := []rune(tok)
	if len(runes) < 2 {
		return 0, false
	}

	first, last := runes[0], runes[len(runes)-1]
	if (first != '"' && first != '\'') || first != last {
		return 0, false
	}

	return first, true
}

// stripQuotes repeatedly strips matching outer quote runs, so that
// `"""x"""` yields `x` (spec.md section 4.2, rule 5)
func stripQuotes(tok string) string {

	for {
		quote, ok := isQuotedToken(tok)
		if !ok {
			return tok
		}

		runes := []rune(tok)
		startRun := 1
		for startRun < len(runes) && runes[startRun] == quote {
			startRun++
		}
		endRun := len(runes) - 1
		for endRun > 0 && runes[endRun] == quote {
			endRun--
		}

		// the run at the front and the run at the back must be the
		// same length for this to be one delimiter pair
		frontLen := startRun
		backLen := len(runes) - 1 - endRun
		if frontLen != backLen || frontLen == 0 {
			return tok
		}

		tok = string(runes[frontLen : len(runes)-frontLen])
		if tok == "" {
			return tok
		}
	}
}

//
// headTokenize splits a statement-head line into its surface tokens
// using the rule from spec.md section 6: `"..."|'...'|<non-whitespace-run>`.
// This is distinct from Tokenize: parseCondition uses it to split an
// IF/WHILE condition into words while looking for a comparison
// operator.  Statement heads themselves are split by wordSpans
// (parser.go), which also records where each word ends
//
func headTokenize(line string) []string {

	var tokens []string
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
			if err != nil {
				// fall back to a non-whitespace run; the parser will
				// surface a clearer error once it tries to evaluate it
				start := i
				for i < n && !unicode.IsSpace(runes[i]) {
					i++
				}
				tokens = append(tokens, string(runes[start:i]))
				continue
			}
			tokens = append(tokens, tok)
			i = next
			continue
		}

		start := i
		for i < n && !unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}

	return tokens
}
