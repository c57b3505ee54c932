// Package parser implements a recoverable, hand-written recursive-
// descent and Pratt expression parser over the token stream produced by
// package lexer. It never panics on malformed input: recoverable errors
// are collected and parsing resumes at the next statement boundary. The
// Panicked flag on ParsedChunk is set only by the backstop in Parse,
// when a genuine internal bug surfaces as a Go panic.
package parser

import (
	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/lexer"
	"github.com/fuse-lang/fusec/reporter"
)

// Parser walks the token stream exactly once, building the AST as it
// goes. Its cursor operations are thin wrappers over the Lexer so that
// production code reads in terms of token kinds rather than lexer
// plumbing.
type Parser struct {
	lx      *lexer.Lexer
	source  string
	handler reporter.Handler

	// allowConstruction gates `target { ... }` struct-construction
	// postfix parsing. It is temporarily cleared while parsing the
	// condition of an if, so that a `{` after the condition is not read
	// as constructing its value.
	allowConstruction bool
}

func newParser(source string) *Parser {
	return &Parser{lx: lexer.New(source), source: source, allowConstruction: true}
}

func (p *Parser) current() ast.TokenReference { return p.lx.Current() }

func (p *Parser) peek(n int) ast.TokenReference { return p.lx.Peek(n) }

func (p *Parser) at(kind ast.TokenKind) bool { return p.current().Kind() == kind }

func (p *Parser) atAny(kinds ...ast.TokenKind) bool {
	cur := p.current().Kind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) consume() ast.TokenReference { return p.lx.Consume() }

func (p *Parser) consumeIf(kind ast.TokenKind) (ast.TokenReference, bool) {
	if p.at(kind) {
		return p.consume(), true
	}
	return ast.TokenReference{}, false
}

// expect consumes and returns the current token if it matches kind,
// otherwise records an UnexpectedTokenKind error and returns the
// unconsumed current token so callers can still inspect its span.
func (p *Parser) expect(kind ast.TokenKind) (ast.TokenReference, bool) {
	if p.at(kind) {
		return p.consume(), true
	}
	p.pushError(&reporter.UnexpectedTokenKind{Found: p.current(), Expected: kind})
	return p.current(), false
}

func (p *Parser) pushError(err error) {
	p.handler.Push(err)
}

func (p *Parser) unexpected() {
	p.pushError(&reporter.UnexpectedError{Token: p.current()})
}

// identifier builds an *ast.Identifier out of the current token,
// consuming it. The caller must have already verified the current token
// is TokenIdentifier or TokenRawIdentifier.
func (p *Parser) identifier() *ast.Identifier {
	tok := p.consume()
	name := ast.Intern(tok.Span().View(p.source))
	return ast.NewIdentifier(tok.Span(), name)
}

func (p *Parser) expectIdentifier() (*ast.Identifier, bool) {
	if p.atAny(ast.TokenIdentifier, ast.TokenRawIdentifier) {
		return p.identifier(), true
	}
	p.pushError(&reporter.UnexpectedTokenKind{Found: p.current(), Expected: ast.TokenIdentifier})
	return ast.NewIdentifier(p.current().Span(), ast.Atom{}), false
}

// synchronize skips tokens until it finds one of the given sync kinds,
// a token that can begin or close a statement, the end of a statement
// (`;`), or EOF. It is called after a malformed statement to let
// parsing resume instead of cascading into further spurious errors.
func (p *Parser) synchronize(syncKinds ...ast.TokenKind) {
	for {
		if p.at(ast.TokenEOF) {
			return
		}
		if p.at(ast.TokenSemicolon) {
			p.consume()
			return
		}
		if p.atAny(syncKinds...) || p.atAny(statementStartKinds...) {
			return
		}
		p.consume()
	}
}

var statementStartKinds = []ast.TokenKind{
	ast.TokenLet, ast.TokenConst, ast.TokenGlobal, ast.TokenLocal,
	ast.TokenFunction, ast.TokenFn, ast.TokenStruct, ast.TokenEnum,
	ast.TokenTrait, ast.TokenImpl, ast.TokenIf, ast.TokenPub, ast.TokenExport,
	ast.TokenRCurly, ast.TokenEnd,
}
