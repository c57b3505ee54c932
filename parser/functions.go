package parser

import (
	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// parseFunctionDeclaration parses a named function after the statement
// dispatcher has already confirmed the token following `function`/`fn`
// is an identifier. visSpan is the span of a leading `pub`/`export`
// modifier, or the zero Span if there was none.
func (p *Parser) parseFunctionDeclaration(vis ast.VisibilityModifier, visSpan ast.Span) ast.Statement {
	start := p.consume() // function|fn
	name, _ := p.expectIdentifier()
	signature := p.parseFunctionSignature()
	body := p.parseFunctionBody()

	fnSpan := ast.Join(start.Span(), body.Span())
	fn := ast.NewFunction(fnSpan, name, signature, body)

	span := fnSpan
	if visSpan.End > visSpan.Start {
		span = ast.Join(visSpan, fnSpan)
	}
	return ast.NewFunctionDeclaration(span, vis, fn)
}

// parseFunction parses a function expression (anonymous, or carrying an
// optional name when one is given explicitly via a reference-like
// binding position). name is nil for the common `function(...) ... end`
// anonymous form, in which case a following identifier is read as the
// function's own name for self-recursion.
func (p *Parser) parseFunction(name *ast.Identifier) *ast.Function {
	start := p.consume() // function|fn
	if name == nil && p.atAny(ast.TokenIdentifier, ast.TokenRawIdentifier) {
		name = p.identifier()
	}
	signature := p.parseFunctionSignature()
	body := p.parseFunctionBody()
	span := ast.Join(start.Span(), body.Span())
	return ast.NewFunction(span, name, signature, body)
}

func (p *Parser) parseFunctionSignature() *ast.FunctionSignature {
	params := p.parseFunctionParameters()
	span := params.Span()

	var returnType *ast.TypeAnnotation
	if _, ok := p.consumeIf(ast.TokenThinArrow); ok {
		ident, _ := p.expectIdentifier()
		returnType = &ast.TypeAnnotation{Identifier: ident}
		span = ast.Join(span, returnType.Span())
	}
	return &ast.FunctionSignature{SpanValue: span, Parameters: params, ReturnType: returnType}
}

// parseFunctionParameters parses the comma-separated parameter list
// between parentheses, including an optional trailing `...rest`
// parameter. A missing comma between two parameters is a recoverable
// DiagnosisError: the parser assumes one was meant and keeps going.
func (p *Parser) parseFunctionParameters() *ast.FunctionParameters {
	open, _ := p.expect(ast.TokenLParen)

	var items []*ast.FunctionParameter
	var rest *ast.BindingRest
	for !p.at(ast.TokenRParen) && !p.at(ast.TokenEOF) {
		if p.at(ast.TokenEllipsis) {
			rest = p.parseBindingRest()
			break
		}

		before := p.current().Span()
		pattern := p.parseBindingPattern()
		items = append(items, &ast.FunctionParameter{SpanValue: pattern.Span(), Pattern: pattern})

		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			if p.atAny(ast.TokenRParen, ast.TokenEOF) {
				break
			}
			p.pushError(&reporter.DiagnosisError{
				Token:   p.current(),
				Message: "expected ',' between parameters",
			})
			if p.current().Span() == before {
				p.consume() // skip a token that cannot start a parameter
			}
		}
	}

	closeTok, _ := p.expect(ast.TokenRParen)
	return &ast.FunctionParameters{SpanValue: ast.Join(open.Span(), closeTok.Span()), Items: items, Rest: rest}
}

func (p *Parser) parseBindingRest() *ast.BindingRest {
	start := p.consume() // '...'
	mutable := false
	if _, ok := p.consumeIf(ast.TokenStar); ok {
		mutable = true
	}
	ident, _ := p.expectIdentifier()
	binding := ast.NewBindingIdentifier(ident, mutable)

	var typeAnnotation *ast.TypeAnnotation
	span := ast.Join(start.Span(), binding.Span())
	if _, ok := p.consumeIf(ast.TokenColon); ok {
		typeIdent, _ := p.expectIdentifier()
		typeAnnotation = &ast.TypeAnnotation{Identifier: typeIdent}
		span = ast.Join(span, typeAnnotation.Span())
	}
	return ast.NewBindingRest(span, binding, typeAnnotation)
}

// parseFunctionBody parses either a `=> expr` arrow body or a `block
// end` body. The arrow form is desugared into a single-statement block
// so that Function.Body always exposes the same shape to the resolver
// and any later lowering stage.
func (p *Parser) parseFunctionBody() *ast.FunctionBody {
	if arrow, ok := p.consumeIf(ast.TokenFatArrow); ok {
		expr := p.parseExpression(ast.PrecedenceAssignment + 1)
		block := ast.NewBlock(expr.Span(), []ast.Statement{ast.NewExpressionStatement(expr)})
		return &ast.FunctionBody{SpanValue: ast.Join(arrow.Span(), expr.Span()), Block: block}
	}

	block := p.parseBlockUntil(ast.TokenEnd)
	endTok, _ := p.expect(ast.TokenEnd)
	return &ast.FunctionBody{SpanValue: ast.Join(block.Span(), endTok.Span()), Block: block}
}
