package parser

import (
	"github.com/fuse-lang/fusec/ast"
)

// parseVisibility consumes a leading `pub`/`export` modifier on a
// member (struct field, impl method), returning VisibilityPrivate and
// the zero Span if none is present.
func (p *Parser) parseVisibility() (ast.VisibilityModifier, ast.Span) {
	if p.atAny(ast.TokenPub, ast.TokenExport) {
		tok := p.consume()
		return ast.VisibilityPublic, tok.Span()
	}
	return ast.VisibilityPrivate, ast.Span{}
}

func joinIfSet(vis ast.Span, rest ast.Span) ast.Span {
	if vis.End > vis.Start {
		return ast.Join(vis, rest)
	}
	return rest
}

// parseStructDeclaration parses `struct Ident field* end`.
func (p *Parser) parseStructDeclaration(vis ast.VisibilityModifier, visSpan ast.Span) ast.Statement {
	start := p.consume() // struct
	name, _ := p.expectIdentifier()

	var fields []*ast.StructField
	for !p.atAny(ast.TokenEnd, ast.TokenEOF) {
		before := p.current().Span()
		fields = append(fields, p.parseStructField())
		p.consumeIf(ast.TokenComma)
		p.consumeIf(ast.TokenSemicolon)
		if p.current().Span() == before && !p.at(ast.TokenEOF) {
			p.consume()
		}
	}
	endTok, _ := p.expect(ast.TokenEnd)

	span := joinIfSet(visSpan, ast.Join(start.Span(), endTok.Span()))
	return ast.NewStructDeclaration(span, vis, name, fields)
}

func (p *Parser) parseStructField() *ast.StructField {
	fieldVis, fieldVisSpan := p.parseVisibility()
	name, _ := p.expectIdentifier()
	p.expect(ast.TokenColon)
	typeIdent, _ := p.expectIdentifier()
	typeAnnotation := &ast.TypeAnnotation{Identifier: typeIdent}

	span := joinIfSet(fieldVisSpan, ast.Join(name.Span(), typeAnnotation.Span()))
	return &ast.StructField{SpanValue: span, Visibility: fieldVis, Name: name, TypeAnnotation: typeAnnotation}
}

// parseEnumDeclaration parses `enum Ident variant* end`, where a variant
// is a bare name, a name with a `= expr` discriminant, or a name with a
// `{ fields }` struct-shaped payload.
func (p *Parser) parseEnumDeclaration(vis ast.VisibilityModifier, visSpan ast.Span) ast.Statement {
	start := p.consume() // enum
	name, _ := p.expectIdentifier()

	var variants []*ast.EnumVariant
	for !p.atAny(ast.TokenEnd, ast.TokenEOF) {
		before := p.current().Span()
		variants = append(variants, p.parseEnumVariant())
		p.consumeIf(ast.TokenComma)
		p.consumeIf(ast.TokenSemicolon)
		if p.current().Span() == before && !p.at(ast.TokenEOF) {
			p.consume()
		}
	}
	endTok, _ := p.expect(ast.TokenEnd)

	span := joinIfSet(visSpan, ast.Join(start.Span(), endTok.Span()))
	return ast.NewEnumDeclaration(span, vis, name, variants)
}

func (p *Parser) parseEnumVariant() *ast.EnumVariant {
	variantName, _ := p.expectIdentifier()
	span := variantName.Span()

	var value ast.Expression
	var fields []*ast.StructField
	switch {
	case p.at(ast.TokenEq):
		p.consume()
		value = p.parseExpression(ast.PrecedenceAssignment + 1)
		span = ast.Join(span, value.Span())
	case p.at(ast.TokenLCurly):
		p.consume()
		for !p.atAny(ast.TokenRCurly, ast.TokenEOF) {
			fields = append(fields, p.parseStructField())
			if _, ok := p.consumeIf(ast.TokenComma); !ok {
				break
			}
		}
		closeTok, _ := p.expect(ast.TokenRCurly)
		span = ast.Join(span, closeTok.Span())
	}

	return &ast.EnumVariant{SpanValue: span, Name: variantName, Value: value, Fields: fields}
}

// parseTraitDeclaration parses `trait Ident method_sig* end`. Trait
// methods carry only a signature, never a body: `impl Trait for T` is
// where bodies are supplied (see parseImplStatement).
func (p *Parser) parseTraitDeclaration(vis ast.VisibilityModifier, visSpan ast.Span) ast.Statement {
	start := p.consume() // trait
	name, _ := p.expectIdentifier()

	var methods []*ast.TraitMethod
	for p.atAny(ast.TokenFunction, ast.TokenFn) {
		methods = append(methods, p.parseTraitMethod())
	}
	endTok, _ := p.expect(ast.TokenEnd)

	span := joinIfSet(visSpan, ast.Join(start.Span(), endTok.Span()))
	return ast.NewTraitDeclaration(span, vis, name, methods)
}

func (p *Parser) parseTraitMethod() *ast.TraitMethod {
	start := p.consume() // function|fn
	name, _ := p.expectIdentifier()
	signature := p.parseFunctionSignature()
	p.consumeIf(ast.TokenSemicolon)
	span := ast.Join(start.Span(), signature.Span())
	return &ast.TraitMethod{SpanValue: span, Name: name, Signature: signature}
}

// parseImplStatement parses `impl Target ... end` (an inherent impl
// block) or `impl Trait for Target ... end` (a trait implementation).
func (p *Parser) parseImplStatement() ast.Statement {
	start := p.consume() // impl
	first, _ := p.expectIdentifier()

	var trait, target *ast.Identifier
	if p.at(ast.TokenFor) {
		p.consume()
		target, _ = p.expectIdentifier()
		trait = first
	} else {
		target = first
	}

	var methods []*ast.ImplMethod
	for !p.atAny(ast.TokenEnd, ast.TokenEOF) {
		methodVis, _ := p.parseVisibility()
		if !p.atAny(ast.TokenFunction, ast.TokenFn) {
			before := p.current().Span()
			p.unexpected()
			p.synchronize(ast.TokenFunction, ast.TokenFn, ast.TokenEnd)
			if p.current().Span() == before && !p.atAny(ast.TokenEnd, ast.TokenEOF) {
				p.consume()
			}
			continue
		}
		fn := p.parseFunction(nil)
		methods = append(methods, &ast.ImplMethod{SpanValue: fn.Span(), Visibility: methodVis, Function: fn})
	}
	endTok, _ := p.expect(ast.TokenEnd)

	span := ast.Join(start.Span(), endTok.Span())
	return ast.NewImplStatement(span, trait, target, methods)
}
