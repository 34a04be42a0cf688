// errors.go — staged error types and caret-snippet rendering.
//
// Hixa surfaces three strictly staged error kinds: LexError during
// tokenization, ParseError during parsing, RuntimeError during
// evaluation. Each carries a 1-based source position. None of them are
// recovered inside the core; the hosting CLI decides whether to abort
// (run) or report and continue (repl).
//
// WrapErrorWithName renders any of the three as a readable snippet with
// a caret pointing at the offending column:
//
//	PARSE ERROR in main.hx at 3:13: expected ')' after condition
//
//	   2 | dhora x = 1;
//	   3 | jodi (x == 1 {
//	     |             ^
//	   4 |     print(x);
//
// IncompleteError marks input that failed only because it ended too
// early (unclosed brace, string, block comment, missing ';'); the REPL
// uses IsIncomplete as its continuation probe and never shows these.
package hixa

import (
	"errors"
	"fmt"
	"strings"
)

// LexError is a malformed token. Halts before parsing.
type LexError struct {
	Line, Col int
	Msg       string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError is a grammar violation. Halts before evaluation.
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// RuntimeErrKind discriminates the runtime failure classes the language
// defines. Tests assert on kinds, not message text.
type RuntimeErrKind int

const (
	ErrGeneric RuntimeErrKind = iota
	ErrUndefinedVariable
	ErrUndefinedFunction
	ErrArity
	ErrTypeMismatch
	ErrIndex
)

func (k RuntimeErrKind) String() string {
	switch k {
	case ErrUndefinedVariable:
		return "UndefinedVariableError"
	case ErrUndefinedFunction:
		return "UndefinedFunctionError"
	case ErrArity:
		return "ArityError"
	case ErrTypeMismatch:
		return "TypeMismatchError"
	case ErrIndex:
		return "IndexError"
	default:
		return "RuntimeError"
	}
}

// RuntimeError halts evaluation at the failure point.
type RuntimeError struct {
	Kind      RuntimeErrKind
	Line, Col int
	Msg       string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func rtErrf(kind RuntimeErrKind, line, col int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// IncompleteError wraps a lex or parse error that occurred at end of
// input and could be resolved by more text.
type IncompleteError struct {
	Err error
}

func (e *IncompleteError) Error() string { return e.Err.Error() }
func (e *IncompleteError) Unwrap() error { return e.Err }

// IsIncomplete reports whether err marks input that merely ended too
// early, as opposed to input that is wrong.
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}

// WrapErrorWithSource renders a staged error as a caret-annotated
// snippet of src. Other errors pass through unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("main.hx",
// "<repl>") shown in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return errors.New(prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParseError:
		return errors.New(prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return errors.New(prettyErrorStringLabeled(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettyErrorStringLabeled builds the snippet: header, one line of
// context each side when available, numbered gutter, caret under the
// 1-based column. Out-of-range coordinates are clamped so rendering
// never fails.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
