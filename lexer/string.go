package lexer

import (
	"strconv"
	"strings"

	"github.com/fuse-lang/fusec/ast"
)

// stringPrefix describes the `u`/`r#...#` decoration in front of a
// string's opening quote.
type stringPrefix struct {
	unicode bool
	raw     bool
	hashes  int
}

// scanStringPrefix looks for `u`, `r#*`, or `ur#*` immediately followed
// by a quote. It rewinds the cursor and reports matched=false if the
// lookahead doesn't resolve to a quote, so callers can fall back to
// treating the leading letter as the start of an ordinary identifier.
func scanStringPrefix(c *cursor) (prefix stringPrefix, matched bool) {
	save := *c
	if r, ok := c.peek(); ok && r == 'u' {
		prefix.unicode = true
		c.advance()
	}
	if r, ok := c.peek(); ok && r == 'r' {
		prefix.raw = true
		c.advance()
		for {
			r2, ok2 := c.peek()
			if ok2 && r2 == '#' {
				prefix.hashes++
				c.advance()
				continue
			}
			break
		}
	}
	if r, ok := c.peek(); ok && (r == '"' || r == '\'') {
		return prefix, true
	}
	*c = save
	return stringPrefix{}, false
}

// lexString consumes a whole string literal (or, for an interpolated
// one, its head segment) and registers the StringData side table entry
// for the returned token.
func (l *Lexer) lexString() ast.Token {
	start := l.cursor.position()
	prefix, _ := scanStringPrefix(&l.cursor)
	quote, _ := l.cursor.advance() // the opening quote
	return l.scanStringSegment(start, quote, prefix, true)
}

// scanStringSegment scans string content up to a terminating quote or an
// interpolation hole `${`, builds the segment's value, and stores the
// StringData keyed by the returned Token. head selects between the
// StringLiteral/InterpolatedStringHead kinds and the
// InterpolatedStringMiddle/InterpolatedStringTail kinds for the closing
// segment of an interpolation.
func (l *Lexer) scanStringSegment(start uint32, quote rune, prefix stringPrefix, head bool) ast.Token {
	c := &l.cursor
	var decoded strings.Builder
	hasEscape := false
	contentStart := c.position()
	terminated := false
	interpolating := false

	for {
		r, ok := c.peek()
		if !ok {
			break
		}
		if r == quote && l.atTerminator(quote, prefix.hashes) {
			c.advanceBytes(1 + prefix.hashes)
			terminated = true
			break
		}
		if !prefix.raw && r == '$' {
			if next, ok := c.peekAt(1); ok && next == '{' {
				interpolating = true
				c.advance()
				c.advance()
				break
			}
		}
		if !prefix.raw && r == '\\' {
			hasEscape = true
			decoded.WriteString(l.decodeEscape())
			continue
		}
		decoded.WriteRune(r)
		c.advance()
	}

	contentEnd := c.position()
	if interpolating {
		// contentEnd currently sits after the "${"; the unescaped span and
		// decoded text must stop before it.
		contentEnd -= 2
	} else if terminated {
		contentEnd -= uint32(1 + prefix.hashes)
	}

	value := ast.StringValue{Unescaped: ast.NewSpan(contentStart, contentEnd)}
	if hasEscape {
		value = ast.StringValue{Escaped: decoded.String(), HasEscape: true}
	}

	var kind ast.TokenKind
	switch {
	case head && interpolating:
		kind = ast.TokenInterpolatedStringHead
	case head && !interpolating:
		kind = ast.TokenStringLiteral
	case !head && interpolating:
		kind = ast.TokenInterpolatedStringMiddle
	default:
		kind = ast.TokenInterpolatedStringTail
	}

	tok := ast.Token{Span: ast.NewSpan(start, c.position()), Kind: kind}
	l.strings[tok] = &ast.StringData{
		Quote:          quote,
		Value:          value,
		Terminated:     terminated || kind == ast.TokenInterpolatedStringHead || kind == ast.TokenInterpolatedStringMiddle,
		Unicode:        prefix.unicode,
		Raw:            prefix.raw,
		ExpectedHashes: prefix.hashes,
	}
	return tok
}

func (l *Lexer) atTerminator(quote rune, hashes int) bool {
	c := &l.cursor
	if r, ok := c.peekAt(0); !ok || r != quote {
		return false
	}
	for i := 0; i < hashes; i++ {
		r, ok := c.peekAt(1 + i)
		if !ok || r != '#' {
			return false
		}
	}
	return true
}

// decodeEscape consumes one `\...` escape sequence and returns its
// decoded text. The cursor is positioned at the leading backslash on
// entry.
func (l *Lexer) decodeEscape() string {
	c := &l.cursor
	c.advance() // backslash
	r, ok := c.advance()
	if !ok {
		return ""
	}
	switch r {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case '\\':
		return "\\"
	case '"':
		return "\""
	case '\'':
		return "'"
	case '$':
		return "$"
	case ' ', '\t', '\n', '\r':
		for {
			r2, ok2 := c.peek()
			if !ok2 || !isWhitespace(r2) {
				break
			}
			c.advance()
		}
		return ""
	case 'u':
		if r2, ok := c.peek(); ok && r2 == '{' {
			c.advance()
			var hex strings.Builder
			for {
				r3, ok3 := c.peek()
				if !ok3 || r3 == '}' {
					break
				}
				hex.WriteRune(r3)
				c.advance()
			}
			if r4, ok4 := c.peek(); ok4 && r4 == '}' {
				c.advance()
			}
			if v, err := strconv.ParseInt(hex.String(), 16, 32); err == nil {
				return string(rune(v))
			}
		}
		return ""
	default:
		return string(r)
	}
}

// FollowInterpolation resumes string lexing after an interpolated
// expression. The current token is expected to be the `}` that closes
// the `${ ... }` hole; any further cached lookahead is discarded since
// it was produced under ordinary token rules and the bytes that follow
// `}` belong to string-literal grammar instead. The cursor resumes at
// the byte immediately after the `}` itself, not after its trailing
// trivia: whitespace following the hole is string content.
func (l *Lexer) FollowInterpolation(quote rune, raw bool, hashes int) (ast.TokenReference, bool) {
	current := l.Peek(0)
	if current.Kind() != ast.TokenRCurly {
		return ast.TokenReference{}, false
	}
	l.cursor.setPosition(current.Span().End)
	l.lookahead = l.lookahead[:0]

	start := l.cursor.position()
	tok := l.scanStringSegment(start, quote, stringPrefix{raw: raw, hashes: hashes}, false)
	ref := ast.TokenReference{Token: tok}
	l.lookahead = append(l.lookahead, lookaheadEntry{pos: l.cursor.position(), token: ref})
	return ref, true
}
