package lexer

import "github.com/fuse-lang/fusec/ast"

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// lexNumber scans the maximal extent of a number literal without
// interpreting its value; that happens later, in the parser, following
// the rules for stripping `_` separators and picking a radix. The only
// job here is getting the span right: hex/binary literals never
// consume a `.` or exponent, and a decimal point is only consumed when
// followed by another digit, so that `1.field` still lexes as `1`
// followed by a member-access dot.
func lexNumber(c *cursor) ast.Token {
	start := c.position()

	if c.peekString("0x") || c.peekString("0X") {
		c.advanceBytes(2)
		consumeWhile(c, func(r rune) bool { return isHexDigit(r) || r == '_' })
		return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenNumberLiteral}
	}
	if c.peekString("0b") || c.peekString("0B") {
		c.advanceBytes(2)
		consumeWhile(c, func(r rune) bool { return r == '0' || r == '1' || r == '_' })
		return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenNumberLiteral}
	}

	consumeWhile(c, func(r rune) bool { return isDigit(r) || r == '_' })

	if r, ok := c.peek(); ok && r == '.' {
		if next, ok := c.peekAt(1); ok && isDigit(next) {
			c.advance()
			consumeWhile(c, func(r rune) bool { return isDigit(r) || r == '_' })
		}
	}

	if r, ok := c.peek(); ok && (r == 'e' || r == 'E') {
		save := *c
		c.advance()
		if sign, ok := c.peek(); ok && (sign == '+' || sign == '-') {
			c.advance()
		}
		if digit, ok := c.peek(); ok && isDigit(digit) {
			consumeWhile(c, func(r rune) bool { return isDigit(r) || r == '_' })
		} else {
			*c = save
		}
	}

	return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenNumberLiteral}
}

func consumeWhile(c *cursor, pred func(rune) bool) {
	for {
		r, ok := c.peek()
		if !ok || !pred(r) {
			return
		}
		c.advance()
	}
}
