package parser

import (
	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// parseBlockUntil parses statements until the current token matches one
// of end (or EOF), without consuming the terminator itself so the
// caller can assert on and consume it.
func (p *Parser) parseBlockUntil(end ...ast.TokenKind) *ast.Block {
	start := p.current().Span()
	var statements []ast.Statement
	for !p.at(ast.TokenEOF) && !p.atAny(end...) {
		before := p.current().Span()
		stmt := p.parseStatement()
		statements = append(statements, stmt)
		// guarantee forward progress even if a production consumed
		// nothing on a malformed input.
		if p.current().Span() == before && !p.at(ast.TokenEOF) {
			p.consume()
		}
	}
	finish := start
	if n := len(statements); n > 0 {
		finish = ast.Join(start, statements[n-1].Span())
	} else if !p.at(ast.TokenEOF) {
		finish = p.current().Span()
	}
	return ast.NewBlock(finish, statements)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Kind() {
	case ast.TokenSemicolon:
		tok := p.consume()
		return ast.NewEmptyStatement(tok.Span())

	case ast.TokenLet, ast.TokenConst, ast.TokenGlobal, ast.TokenLocal:
		return p.parseVariableDeclaration()

	case ast.TokenPub, ast.TokenExport:
		visTok := p.consume()
		return p.parseVisibleDeclaration(visTok.Span(), ast.VisibilityPublic)

	case ast.TokenFunction, ast.TokenFn:
		if p.peek(1).Kind() == ast.TokenIdentifier || p.peek(1).Kind() == ast.TokenRawIdentifier {
			return p.parseFunctionDeclaration(ast.VisibilityPrivate, ast.Span{})
		}
		expr := p.parseFunction(nil)
		p.consumeIf(ast.TokenSemicolon)
		return ast.NewExpressionStatement(expr)

	case ast.TokenStruct:
		return p.parseStructDeclaration(ast.VisibilityPrivate, ast.Span{})

	case ast.TokenEnum:
		return p.parseEnumDeclaration(ast.VisibilityPrivate, ast.Span{})

	case ast.TokenTrait:
		return p.parseTraitDeclaration(ast.VisibilityPrivate, ast.Span{})

	case ast.TokenImpl:
		return p.parseImplStatement()

	case ast.TokenIf:
		return p.parseIfExpression()

	default:
		expr := p.parseExpression(ast.PrecedenceExpression)
		p.consumeIf(ast.TokenSemicolon)
		return ast.NewExpressionStatement(expr)
	}
}

// parseVisibleDeclaration dispatches the declaration kinds that accept a
// leading `pub`/`export` modifier. visStart is the modifier token's span,
// used only to widen the resulting node's span to include it.
func (p *Parser) parseVisibleDeclaration(visStart ast.Span, vis ast.VisibilityModifier) ast.Statement {
	switch p.current().Kind() {
	case ast.TokenFunction, ast.TokenFn:
		return p.parseFunctionDeclaration(vis, visStart)
	case ast.TokenStruct:
		return p.parseStructDeclaration(vis, visStart)
	case ast.TokenEnum:
		return p.parseEnumDeclaration(vis, visStart)
	case ast.TokenTrait:
		return p.parseTraitDeclaration(vis, visStart)
	default:
		p.unexpected()
		tok := p.consume()
		return &ast.ErrorStatement{SpanValue: ast.Join(visStart, tok.Span())}
	}
}

func (p *Parser) variableDeclarationKind() ast.VariableDeclarationKind {
	switch p.current().Kind() {
	case ast.TokenConst:
		return ast.VarKindConst
	case ast.TokenGlobal:
		return ast.VarKindGlobal
	default:
		return ast.VarKindLet
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	kind := p.variableDeclarationKind()
	if p.at(ast.TokenLocal) {
		p.pushError(&reporter.DiagnosisError{
			Token:   p.current(),
			Message: "`local` is not a declaration keyword; use `let`",
		})
	}
	startTok := p.consume() // let/const/global/local

	pattern := p.parseBindingPattern()

	var init ast.Expression
	span := ast.Join(startTok.Span(), pattern.Span())
	if _, ok := p.consumeIf(ast.TokenEq); ok {
		init = p.parseExpression(ast.PrecedenceAssignment + 1)
		span = ast.Join(span, init.Span())
	}
	p.consumeIf(ast.TokenSemicolon)

	return ast.NewVariableDeclaration(span, kind, pattern, init)
}

// parseBindingPattern parses the identifier-pattern form used by
// variable declarations and function parameters, or recurses into a
// parenthesized tuple-destructuring pattern. A leading `mut` or `*`
// marks the binding mutable (`mut` is not in the keyword table, so it is
// recognised only when an identifier follows it; see DESIGN.md), and a
// trailing `?` marks the binding optional.
func (p *Parser) parseBindingPattern() *ast.BindingPattern {
	if p.at(ast.TokenLParen) {
		return p.parseTupleDestructurePattern()
	}

	mutable := false
	if _, ok := p.consumeIf(ast.TokenStar); ok {
		mutable = true
	} else if p.at(ast.TokenIdentifier) && p.current().Span().View(p.source) == "mut" {
		if next := p.peek(1).Kind(); next == ast.TokenIdentifier || next == ast.TokenRawIdentifier {
			p.consume()
			mutable = true
		}
	}
	ident, _ := p.expectIdentifier()
	binding := ast.NewBindingIdentifier(ident, mutable)

	optional := false
	if _, ok := p.consumeIf(ast.TokenQuestion); ok {
		optional = true
	}

	var typeAnnotation *ast.TypeAnnotation
	if _, ok := p.consumeIf(ast.TokenColon); ok {
		typeIdent, _ := p.expectIdentifier()
		typeAnnotation = &ast.TypeAnnotation{Identifier: typeIdent}
	}

	return ast.NewIdentifierBindingPattern(binding, typeAnnotation, optional)
}

// parseTupleDestructurePattern parses `(pattern, ...)`, recursing so
// that tuple patterns may nest.
func (p *Parser) parseTupleDestructurePattern() *ast.BindingPattern {
	open := p.consume() // '('
	var elements []*ast.BindingPattern
	for !p.at(ast.TokenRParen) && !p.at(ast.TokenEOF) {
		elements = append(elements, p.parseBindingPattern())
		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			break
		}
	}
	closeTok, _ := p.expect(ast.TokenRParen)
	return ast.NewTupleBindingPattern(ast.Join(open.Span(), closeTok.Span()), elements)
}
