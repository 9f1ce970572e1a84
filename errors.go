package lumina

import (
	"fmt"
)

//
// Manifest error kinds for Lumina.  Every one of these is fatal and
// propagates to the top of the executor, per spec.md section 7.  There
// is no user-level recovery construct, so unlike the teacher's BASIC-PLUS
// interpreter there is no errorMap/ON ERROR machinery here: a LuminaError
// always terminates the run.
//

type ErrorKind int

const (
	ErrDisabledToken ErrorKind = iota
	ErrUndefinedName
	ErrUnknownFunction
	ErrTypeError
	ErrDivByZero
	ErrUnterminatedString
	ErrMismatchedParens
	ErrBadExpression
	ErrBadStatement
	ErrMissingEnd
	ErrNoPrevious
	ErrBadLifetime
	ErrInternal
)

var errorKindNames = map[ErrorKind]string{
	ErrDisabledToken:      "DisabledToken",
	ErrUndefinedName:      "UndefinedName",
	ErrUnknownFunction:    "UnknownFunction",
	ErrTypeError:          "TypeError",
	ErrDivByZero:          "DivByZero",
	ErrUnterminatedString: "UnterminatedString",
	ErrMismatchedParens:   "MismatchedParens",
	ErrBadExpression:      "BadExpression",
	ErrBadStatement:       "BadStatement",
	ErrMissingEnd:         "MissingEnd",
	ErrNoPrevious:         "NoPrevious",
	ErrBadLifetime:        "BadLifetime",
	ErrInternal:           "InternalError",
}

func (k ErrorKind) String() string {

	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

//
// LuminaError is the single error type surfaced to callers of Run.
// Internally it travels via panic/recover, the same split the teacher's
// runtimeErrorInfo/basicErrorInfo pair uses: everything inside the
// parser and executor panics, and two recover sites (parseProgramSafe
// for parsing, Executor.Run for execution) turn that back into a plain
// error
//

type LuminaError struct {
	Kind  ErrorKind
	Token string
	Line  uint64
	msg   string
}

func (e *LuminaError) Error() string {

	if e.Token != "" {
		return fmt.Sprintf("%s: %q (line %d)", e.Kind, e.Token, e.Line)
	}

	return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.msg, e.Line)
}

func newLuminaError(kind ErrorKind, line uint64, format string, args ...any) *LuminaError {

	return &LuminaError{Kind: kind, Line: line, msg: fmt.Sprintf(format, args...)}
}

func newTokenError(kind ErrorKind, line uint64, token string) *LuminaError {

	return &LuminaError{Kind: kind, Line: line, Token: token}
}

//
// raise panics with a LuminaError.  It is the equivalent of the
// teacher's runtimeError: every fault detected while tokenizing,
// evaluating or executing goes through here
//

func raise(kind ErrorKind, line uint64, format string, args ...any) {

	panic(newLuminaError(kind, line, format, args...))
}

func raiseToken(kind ErrorKind, line uint64, token string) {

	panic(newTokenError(kind, line, token))
}

//
// internalError marks a violated invariant: a bug in Lumina itself
// rather than a fault in the program being interpreted.  Mirrors the
// teacher's basicErrorInfo/fatalError pair
//

type internalError struct {
	msg string
}

func (e *internalError) Error() string {
	return "lumina: internal error: " + e.msg
}

func luminaAssert(cond bool, format string, args ...any) {

	if !cond {
		panic(&internalError{msg: fmt.Sprintf(format, args...)})
	}
}
