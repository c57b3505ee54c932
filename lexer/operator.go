package lexer

import "github.com/fuse-lang/fusec/ast"

type spelling struct {
	text string
	kind ast.TokenKind
}

// operators is checked longest-spelling-first so that e.g. `...` is
// never split into `..` + `.`, and `**` is never split into `*` + `*`.
var operators = []spelling{
	{"...", ast.TokenEllipsis},

	{"..", ast.TokenDotDot},
	{"<=", ast.TokenLtEq},
	{">=", ast.TokenGtEq},
	{"==", ast.TokenEqEq},
	{"!=", ast.TokenNotEq},
	{"**", ast.TokenStarStar},
	{"//", ast.TokenSlashSlash},
	{"<<", ast.TokenLShift},
	{">>", ast.TokenRShift},
	{"=>", ast.TokenFatArrow},
	{"->", ast.TokenThinArrow},

	{".", ast.TokenDot},
	{",", ast.TokenComma},
	{":", ast.TokenColon},
	{";", ast.TokenSemicolon},
	{"(", ast.TokenLParen},
	{")", ast.TokenRParen},
	{"{", ast.TokenLCurly},
	{"}", ast.TokenRCurly},
	{"[", ast.TokenLBracket},
	{"]", ast.TokenRBracket},
	{"<", ast.TokenLAngle},
	{">", ast.TokenRAngle},
	{"=", ast.TokenEq},
	{"-", ast.TokenMinus},
	{"+", ast.TokenPlus},
	{"*", ast.TokenStar},
	{"/", ast.TokenSlash},
	{"%", ast.TokenPercent},
	{"&", ast.TokenAmp},
	{"^", ast.TokenCaret},
	{"|", ast.TokenPipe},
	{"?", ast.TokenQuestion},
}

// lexOperator matches the longest known punctuation spelling at the
// cursor. ok is false when the current rune starts nothing recognized,
// which the caller turns into an UnexpectedError at the parser level.
func lexOperator(c *cursor) (ast.Token, bool) {
	start := c.position()
	for _, op := range operators {
		if c.peekString(op.text) {
			c.advanceBytes(len(op.text))
			return ast.Token{Span: ast.NewSpan(start, c.position()), Kind: op.kind}, true
		}
	}
	return ast.Token{}, false
}
