package parser

import (
	"github.com/fuse-lang/fusec/ast"
)

// binaryOperatorKindFor maps a token kind to the BinaryOperatorKind it
// introduces, if any.
func binaryOperatorKindFor(kind ast.TokenKind) (ast.BinaryOperatorKind, bool) {
	switch kind {
	case ast.TokenEq:
		return ast.BinAssignment, true
	case ast.TokenOr:
		return ast.BinLogicalOr, true
	case ast.TokenAnd:
		return ast.BinLogicalAnd, true
	case ast.TokenPipe:
		return ast.BinBitwiseOr, true
	case ast.TokenCaret:
		return ast.BinBitwiseXor, true
	case ast.TokenAmp:
		return ast.BinBitwiseAnd, true
	case ast.TokenEqEq:
		return ast.BinEquality, true
	case ast.TokenNotEq:
		return ast.BinNonEquality, true
	case ast.TokenLtEq:
		return ast.BinLessThanEqual, true
	case ast.TokenLAngle:
		return ast.BinLessThan, true
	case ast.TokenGtEq:
		return ast.BinGreaterThanEqual, true
	case ast.TokenRAngle:
		return ast.BinGreaterThan, true
	case ast.TokenPlus:
		return ast.BinPlus, true
	case ast.TokenMinus:
		return ast.BinMinus, true
	case ast.TokenStar:
		return ast.BinMultiply, true
	case ast.TokenStarStar:
		return ast.BinExponential, true
	case ast.TokenSlash:
		return ast.BinDivision, true
	case ast.TokenSlashSlash:
		return ast.BinFloorDivision, true
	case ast.TokenPercent:
		return ast.BinModulo, true
	case ast.TokenLShift:
		return ast.BinShiftLeft, true
	case ast.TokenRShift:
		return ast.BinShiftRight, true
	default:
		return 0, false
	}
}

// parseExpression implements precedence climbing: it parses operators
// binding at least as tightly as minPrec, recursing with a tighter floor
// for left-associative tiers and the same floor for right-associative
// ones (Assignment and Member; every other tier, including Exponential,
// is left-associative).
func (p *Parser) parseExpression(minPrec ast.Precedence) ast.Expression {
	left := p.parseUnary()

	for {
		binKind, ok := binaryOperatorKindFor(p.current().Kind())
		if !ok {
			break
		}
		prec := ast.BinaryOperatorPrecedence(binKind)
		if prec < minPrec {
			break
		}

		opTok := p.consume()
		nextMinPrec := prec + 1
		if prec.IsRightAssociative() {
			nextMinPrec = prec
		}
		right := p.parseExpression(nextMinPrec)
		left = ast.NewBinaryOperator(opTok.Span(), binKind, left, right)
	}

	return left
}

func (p *Parser) parseUnary() ast.Expression {
	var kind ast.UnaryOperatorKind
	switch p.current().Kind() {
	case ast.TokenNot:
		kind = ast.UnaryNot
	case ast.TokenPlus:
		kind = ast.UnaryPlus
	case ast.TokenMinus:
		kind = ast.UnaryMinus
	default:
		return p.parsePostfixChain(p.parsePrimary())
	}
	opTok := p.consume()
	operand := p.parseUnary()
	return ast.NewUnaryOperator(ast.Join(opTok.Span(), operand.Span()), opTok.Span(), kind, operand)
}

// parsePostfixChain applies `.member` and `(call)` postfix operators,
// and, outside of condition contexts, `{ ... }` struct construction.
func (p *Parser) parsePostfixChain(expr ast.Expression) ast.Expression {
	for {
		switch {
		case p.at(ast.TokenDot):
			p.consume()
			rhs := p.parseMemberRHS()
			expr = ast.NewMemberExpression(ast.Join(expr.Span(), rhs.Span()), expr, rhs)

		case p.at(ast.TokenLParen):
			expr = p.parseCallArguments(expr)

		case p.allowConstruction && p.at(ast.TokenLCurly) && isConstructionTarget(expr):
			table := p.parseTableConstruction()
			expr = ast.NewStructConstructionExpression(expr, table)

		default:
			return expr
		}
	}
}

// parseMemberRHS assembles the right-hand side of a member expression.
// Member is right-associative: `a.b.c` is Member(a, Member(b, c)), so
// the whole `.`-chain after the first dot is built here before being
// attached to the left-hand side. Each link is a field name or a tuple
// index, optionally called; the call binds to its own link
// (`a.b(1).c` is Member(a, Member(Call(b, 1), c))).
func (p *Parser) parseMemberRHS() ast.Expression {
	var unit ast.Expression
	switch {
	case p.atAny(ast.TokenIdentifier, ast.TokenRawIdentifier):
		unit = p.identifier()
	case p.at(ast.TokenNumberLiteral):
		unit = p.parseNumberLiteral(p.consume())
	default:
		p.unexpected()
		tok := p.consume()
		return &ast.ErrorExpression{SpanValue: tok.Span()}
	}
	for p.at(ast.TokenLParen) {
		unit = p.parseCallArguments(unit)
	}
	if _, ok := p.consumeIf(ast.TokenDot); ok {
		rest := p.parseMemberRHS()
		return ast.NewMemberExpression(ast.Join(unit.Span(), rest.Span()), unit, rest)
	}
	return unit
}

func isConstructionTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.ParenthesizedExpression:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCallArguments(callee ast.Expression) *ast.CallExpression {
	open := p.consume() // '('
	var args []ast.Expression
	for !p.at(ast.TokenRParen) && !p.at(ast.TokenEOF) {
		args = append(args, p.parseExpression(ast.PrecedenceAssignment+1))
		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			break
		}
	}
	closeTok, _ := p.expect(ast.TokenRParen)
	span := ast.Join(callee.Span(), open.Span(), closeTok.Span())
	return ast.NewCallExpression(span, callee, args)
}

func (p *Parser) parsePrimary() ast.Expression {
	cur := p.current()
	switch cur.Kind() {
	case ast.TokenNumberLiteral:
		return p.parseNumberLiteral(p.consume())

	case ast.TokenStringLiteral, ast.TokenInterpolatedStringHead:
		return p.parseStringLiteral()

	case ast.TokenTrue, ast.TokenFalse:
		tok := p.consume()
		return ast.NewBooleanLiteral(tok.Span(), tok.Kind() == ast.TokenTrue)

	case ast.TokenIdentifier, ast.TokenRawIdentifier:
		return p.identifier()

	case ast.TokenLowSelf:
		tok := p.consume()
		return ast.NewIdentifier(tok.Span(), ast.Intern("self"))

	case ast.TokenCapSelf:
		tok := p.consume()
		return ast.NewIdentifier(tok.Span(), ast.Intern("Self"))

	case ast.TokenLParen:
		return p.parseParenOrTuple()

	case ast.TokenLBracket:
		return p.parseArrayExpression()

	case ast.TokenLCurly:
		return p.parseTableConstruction()

	case ast.TokenFunction, ast.TokenFn:
		return p.parseFunction(nil)

	case ast.TokenIf:
		return p.parseIfExpression()

	default:
		p.unexpected()
		tok := p.consume()
		return &ast.ErrorExpression{SpanValue: tok.Span()}
	}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	open := p.consume() // '('
	if close, ok := p.consumeIf(ast.TokenRParen); ok {
		return ast.NewTupleExpression(ast.Join(open.Span(), close.Span()), nil)
	}

	first := p.parseTupleElement()
	if el, ok := first.(ast.ExpressionTupleElement); ok && !p.at(ast.TokenComma) {
		closeTok, _ := p.expect(ast.TokenRParen)
		return ast.NewParenthesizedExpression(ast.Join(open.Span(), closeTok.Span()), el.Expression)
	}

	elements := []ast.TupleExpressionElement{first}
	for {
		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			break
		}
		if p.at(ast.TokenRParen) {
			break
		}
		elements = append(elements, p.parseTupleElement())
	}
	closeTok, _ := p.expect(ast.TokenRParen)
	return ast.NewTupleExpression(ast.Join(open.Span(), closeTok.Span()), elements)
}

func (p *Parser) parseTupleElement() ast.TupleExpressionElement {
	if p.at(ast.TokenEllipsis) {
		tok := p.consume()
		expr := p.parseExpression(ast.PrecedenceAssignment + 1)
		return &ast.SpreadArgument{SpanValue: ast.Join(tok.Span(), expr.Span()), Element: expr}
	}
	return ast.ExpressionTupleElement{Expression: p.parseExpression(ast.PrecedenceAssignment + 1)}
}

func (p *Parser) parseArrayExpression() *ast.ArrayExpression {
	open := p.consume() // '['
	var elements []ast.ArrayExpressionElement
	for !p.at(ast.TokenRBracket) && !p.at(ast.TokenEOF) {
		if p.at(ast.TokenEllipsis) {
			tok := p.consume()
			expr := p.parseExpression(ast.PrecedenceAssignment + 1)
			elements = append(elements, &ast.SpreadArgument{SpanValue: ast.Join(tok.Span(), expr.Span()), Element: expr})
		} else {
			elements = append(elements, ast.ExpressionArrayElement{Expression: p.parseExpression(ast.PrecedenceAssignment + 1)})
		}
		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			break
		}
	}
	closeTok, _ := p.expect(ast.TokenRBracket)
	return ast.NewArrayExpression(ast.Join(open.Span(), closeTok.Span()), elements)
}

func (p *Parser) parseTableConstruction() *ast.TableConstructionExpression {
	open := p.consume() // '{'
	var fields []ast.ConstructionField
	for !p.at(ast.TokenRCurly) && !p.at(ast.TokenEOF) {
		fields = append(fields, p.parseConstructionField())
		if _, ok := p.consumeIf(ast.TokenComma); !ok {
			break
		}
	}
	closeTok, _ := p.expect(ast.TokenRCurly)
	return ast.NewTableConstructionExpression(ast.Join(open.Span(), closeTok.Span()), fields)
}

func (p *Parser) parseConstructionField() ast.ConstructionField {
	if p.at(ast.TokenEllipsis) {
		tok := p.consume()
		expr := p.parseExpression(ast.PrecedenceAssignment + 1)
		return &ast.SpreadArgument{SpanValue: ast.Join(tok.Span(), expr.Span()), Element: expr}
	}
	if p.atAny(ast.TokenIdentifier, ast.TokenRawIdentifier) && p.peek(1).Kind() == ast.TokenColon {
		key := p.identifier()
		p.consume() // ':'
		value := p.parseExpression(ast.PrecedenceAssignment + 1)
		return &ast.KeyValueArgument{SpanValue: ast.Join(key.Span(), value.Span()), Key: key, Value: value}
	}
	return ast.ExpressionConstructionField{Expression: p.parseExpression(ast.PrecedenceAssignment + 1)}
}

// parseIfExpression parses `if cond then body (elseif ... | else ...)? end`-
// shaped conditionals; `then` is required. Struct construction is
// suppressed while parsing cond, so a `{` after the condition is not read
// as a construction of the condition's value.
func (p *Parser) parseIfExpression() *ast.If {
	start := p.consume() // 'if'
	saved := p.allowConstruction
	p.allowConstruction = false
	cond := p.parseExpression(ast.PrecedenceExpression)
	p.allowConstruction = saved

	p.expect(ast.TokenThen)
	body := p.parseBlockUntil(ast.TokenElseIf, ast.TokenElse, ast.TokenEnd)

	var elseClause ast.Else
	endSpan := body.Span()
	switch {
	case p.at(ast.TokenElseIf):
		nested := p.parseIfExpression()
		elseClause = ast.ElseIf{If: nested}
		endSpan = nested.Span()
	case p.at(ast.TokenElse):
		p.consume()
		elseBody := p.parseBlockUntil(ast.TokenEnd)
		endTok, _ := p.expect(ast.TokenEnd)
		elseClause = ast.ElseBlock{Block: elseBody}
		endSpan = endTok.Span()
	default:
		endTok, _ := p.expect(ast.TokenEnd)
		endSpan = endTok.Span()
	}

	return ast.NewIf(ast.Join(start.Span(), endSpan), cond, body, elseClause)
}
