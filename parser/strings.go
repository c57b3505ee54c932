package parser

import (
	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// parseStringLiteral consumes a TokenStringLiteral or
// TokenInterpolatedStringHead and assembles the full StringLiteral,
// recursively parsing each interpolation hole as an expression and
// resuming the lexer on the string grammar in between.
func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	head := p.consume()
	data := p.lx.EatStringData(head.Token)
	startSpan := head.Span()

	segments := []ast.StringSegment{p.stringDataSegment(data, head.Span())}
	if head.Kind() == ast.TokenStringLiteral {
		return ast.NewStringLiteral(startSpan, segments, data.Unicode, data.Raw)
	}

	endSpan := head.Span()
	for {
		expr := p.parseExpression(ast.PrecedenceExpression)
		segments = append(segments, &ast.InterpolatedStringSegment{
			SpanValue:  expr.Span(),
			Expression: expr,
			Format:     ast.FormatDisplay,
		})

		ref, ok := p.lx.FollowInterpolation(data.Quote, data.Raw, data.ExpectedHashes)
		if !ok {
			p.pushError(&reporter.UnexpectedTokenKind{Found: p.current(), Expected: ast.TokenRCurly})
			break
		}
		p.consume() // the middle/tail segment FollowInterpolation queued
		contData := p.lx.EatStringData(ref.Token)
		segments = append(segments, p.stringDataSegment(contData, ref.Span()))
		endSpan = ref.Span()
		if ref.Kind() == ast.TokenInterpolatedStringTail {
			break
		}
		// Kind() == TokenInterpolatedStringMiddle: another hole follows.
	}

	return ast.NewStringLiteral(ast.Join(startSpan, endSpan), segments, data.Unicode, data.Raw)
}

func (p *Parser) stringDataSegment(data *ast.StringData, span ast.Span) *ast.StringLiteralSegment {
	return &ast.StringLiteralSegment{SpanValue: span, Value: data.Value}
}
