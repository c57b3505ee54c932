package lexer

import (
	"unicode"

	"github.com/fuse-lang/fusec/ast"
)

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lexIdentifier consumes an identifier starting at the cursor. A raw
// identifier `r#name` is recognized here (so that e.g. `r#end` lexes as
// the identifier spelled "r#end" rather than as the keyword `end`
// prefixed by a stray `r#`), but keyword lookup itself happens one level
// up once the full spelling is known.
func lexIdentifier(c *cursor) ast.Token {
	start := c.position()
	r, _ := c.advance()
	if r == 'r' {
		if next, ok := c.peek(); ok && next == '#' {
			if nameStart, ok := c.peekAt(1); ok && isIdentifierStart(nameStart) {
				c.advance() // the '#'
				for {
					r2, ok2 := c.peek()
					if !ok2 || !isIdentifierContinue(r2) {
						break
					}
					c.advance()
				}
				return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenRawIdentifier}
			}
		}
	}
	for {
		r2, ok := c.peek()
		if !ok || !isIdentifierContinue(r2) {
			break
		}
		c.advance()
	}
	return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: ast.TokenIdentifier}
}
