// Package lexer turns source text into a stream of TokenReferences. It
// is deliberately decoupled from the parser: it knows nothing about
// grammar beyond the one special case of resuming a string literal after
// an interpolated expression, which the parser drives explicitly via
// FollowInterpolation.
package lexer

import "github.com/fuse-lang/fusec/ast"

type lookaheadEntry struct {
	pos   uint32
	token ast.TokenReference
}

// Lexer produces TokenReferences on demand and caches a small amount of
// lookahead so the parser can peek ahead without forcing a re-lex from
// the start of the file. String literals carry an out-of-band
// StringData payload, recorded here and transferred to the parser via
// EatStringData.
type Lexer struct {
	cursor    cursor
	lookahead []lookaheadEntry
	strings   map[ast.Token]*ast.StringData
}

// New creates a Lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{
		cursor:  newCursor(source),
		strings: make(map[ast.Token]*ast.StringData),
	}
}

// Peek materializes and returns the nth TokenReference ahead of the
// cursor without consuming it; Peek(0) is the current token.
func (l *Lexer) Peek(n int) ast.TokenReference {
	l.ensureLookahead(n)
	return l.lookahead[n].token
}

// Current is Peek(0).
func (l *Lexer) Current() ast.TokenReference { return l.Peek(0) }

// Consume returns the current TokenReference and advances past it.
func (l *Lexer) Consume() ast.TokenReference {
	l.ensureLookahead(0)
	entry := l.lookahead[0]
	l.lookahead = l.lookahead[1:]
	l.cursor.setPosition(entry.pos)
	return entry.token
}

// ensureLookahead guarantees at least n+1 entries are cached, lexing
// forward from the last cached position (or the live cursor, if the
// cache is empty) and restoring the live cursor position afterward:
// peeking must never have a visible effect on where the next Consume
// resumes from.
func (l *Lexer) ensureLookahead(n int) {
	if len(l.lookahead) > n {
		return
	}
	savedPos := l.cursor.position()
	if len(l.lookahead) > 0 {
		l.cursor.setPosition(l.lookahead[len(l.lookahead)-1].pos)
	}
	for len(l.lookahead) <= n {
		ref := l.nextWithTrivia()
		l.lookahead = append(l.lookahead, lookaheadEntry{pos: l.cursor.position(), token: ref})
	}
	l.cursor.setPosition(savedPos)
}

// StringData looks up the out-of-band payload for a string-literal
// token without consuming it.
func (l *Lexer) StringData(tok ast.Token) (*ast.StringData, bool) {
	d, ok := l.strings[tok]
	return d, ok
}

// EatStringData transfers ownership of a string token's payload to the
// caller, removing it from the lexer's table. Calling it twice for the
// same token is a parser bug and panics.
func (l *Lexer) EatStringData(tok ast.Token) *ast.StringData {
	d, ok := l.strings[tok]
	if !ok {
		panic("lexer: string data already consumed or absent for token")
	}
	delete(l.strings, tok)
	return d
}

// nextWithTrivia lexes one significant token, collecting the whitespace
// runs immediately before and after it.
func (l *Lexer) nextWithTrivia() ast.TokenReference {
	var leading []ast.Token
	for {
		tok := l.lexRaw()
		if !tok.Kind.IsTrivial() {
			trailing := l.collectTrailingTrivia()
			return ast.TokenReference{Token: tok, Leading: leading, Trailing: trailing}
		}
		leading = append(leading, tok)
	}
}

// collectTrailingTrivia gathers whitespace after a token, stopping once
// it has included a run of whitespace containing a newline (so trailing
// trivia never crosses into the next logical line's leading trivia).
func (l *Lexer) collectTrailingTrivia() []ast.Token {
	var trailing []ast.Token
	for {
		save := l.cursor.position()
		tok := l.lexRaw()
		if !tok.Kind.IsTrivial() {
			l.cursor.setPosition(save)
			return trailing
		}
		trailing = append(trailing, tok)
		if containsNewline(tok, l.cursor.source) {
			return trailing
		}
	}
}

func containsNewline(tok ast.Token, source string) bool {
	for _, r := range tok.Span.View(source) {
		if r == '\n' {
			return true
		}
	}
	return false
}

// lexRaw lexes exactly one raw token (trivia or significant) at the
// cursor with no trivia attached.
func (l *Lexer) lexRaw() ast.Token {
	pos := l.cursor.position()
	r, ok := l.cursor.peek()
	if !ok {
		return ast.Token{Span: ast.NewSpan(pos, pos), Kind: ast.TokenEOF}
	}

	switch {
	case isWhitespace(r):
		return lexWhitespace(&l.cursor)
	case isDigit(r):
		return lexNumber(&l.cursor)
	case r == '"' || r == '\'':
		return l.lexString()
	case r == 'u' || r == 'r':
		probe := l.cursor
		if _, matched := scanStringPrefix(&probe); matched {
			return l.lexString()
		}
		return l.lexIdentifierOrKeyword()
	case isIdentifierStart(r):
		return l.lexIdentifierOrKeyword()
	default:
		if tok, ok := lexOperator(&l.cursor); ok {
			return tok
		}
		// Nothing recognized: consume one rune so the cursor always makes
		// progress, and report it as a TokenUndetermined token; the
		// parser will reject it with an UnexpectedError at the point of
		// use.
		start := l.cursor.position()
		l.cursor.advance()
		return ast.Token{Span: ast.NewSpan(start, l.cursor.position()), Kind: ast.TokenUndetermined}
	}
}

func (l *Lexer) lexIdentifierOrKeyword() ast.Token {
	tok := lexIdentifier(&l.cursor)
	if tok.Kind == ast.TokenIdentifier {
		text := tok.Span.View(l.cursor.source)
		if kw, ok := lookupKeyword(text); ok {
			tok.Kind = kw
		}
	}
	return tok
}
