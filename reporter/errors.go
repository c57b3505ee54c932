// Package reporter defines the error types produced while parsing and
// resolving a chunk. All of them carry enough position information to
// point a caller back at the offending span of source.
package reporter

import (
	"fmt"

	"github.com/fuse-lang/fusec/ast"
)

// ErrorWithSpan is implemented by every error this package produces. It
// lets callers recover the offending span without a type switch over
// every concrete error kind.
type ErrorWithSpan interface {
	error
	ErrorSpan() ast.Span
}

// LexerError reports a problem discovered while lexing, such as an
// unterminated string or an unbalanced raw-string hash count. It is
// reserved for the lexer layer; the parser never constructs one
// directly, but surfaces lexer errors it encounters via UnexpectedError.
type LexerError struct {
	Span    ast.Span
	Message string
}

func (e *LexerError) Error() string       { return fmt.Sprintf("lexer error: %s", e.Message) }
func (e *LexerError) ErrorSpan() ast.Span { return e.Span }

// UnexpectedTokenKind is raised when the parser demands a specific token
// kind at the cursor and finds a different one.
type UnexpectedTokenKind struct {
	Found    ast.TokenReference
	Expected ast.TokenKind
}

func (e *UnexpectedTokenKind) Error() string {
	return fmt.Sprintf("unexpected token: expected %v, found %v", e.Expected, e.Found.Kind())
}

func (e *UnexpectedTokenKind) ErrorSpan() ast.Span { return e.Found.Span() }

// UnexpectedError is raised when the parser has no single expected kind
// to report against, e.g. at the start of a primary expression with no
// production matching the current token.
type UnexpectedError struct {
	Token ast.TokenReference
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected token %v", e.Token.Kind())
}

func (e *UnexpectedError) ErrorSpan() ast.Span { return e.Token.Span() }

// InvalidNumberLiteral is raised when a number token's text fails to
// reparse under the rules described for its NumberKind (bad radix
// digits, malformed exponent, more than one decimal point, and so on).
type InvalidNumberLiteral struct {
	Token ast.TokenReference
	Cause string
}

func (e *InvalidNumberLiteral) Error() string {
	return fmt.Sprintf("invalid number literal at %v: %s", e.Token.Span(), e.Cause)
}

func (e *InvalidNumberLiteral) ErrorSpan() ast.Span { return e.Token.Span() }

// DiagnosisError carries a free-form message for a non-fatal diagnosis,
// e.g. `local` used in place of `let` or a missing comma between
// function parameters; Parse also uses it to report a recovered
// internal panic.
type DiagnosisError struct {
	Token   ast.TokenReference
	Message string
}

func (e *DiagnosisError) Error() string       { return e.Message }
func (e *DiagnosisError) ErrorSpan() ast.Span { return e.Token.Span() }

// Handler accumulates non-fatal errors during a single parse or resolve
// pass. It never itself decides whether an error is recoverable; callers
// push onto it and keep going, or abandon the pass on a fatal condition.
type Handler struct {
	errors []error
}

func (h *Handler) Push(err error) {
	h.errors = append(h.errors, err)
}

func (h *Handler) Errors() []error {
	return h.errors
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}
