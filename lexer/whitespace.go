package lexer

import "github.com/fuse-lang/fusec/ast"

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func lexWhitespace(c *cursor) ast.Token {
	start := c.position()
	for {
		r, ok := c.peek()
		if !ok || !isWhitespace(r) {
			break
		}
		c.advance()
	}
	return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenWhitespace}
}
