package lexer

import "unicode/utf8"

// cursor is a zero-copy, UTF-8-safe walk over a source string. It never
// allocates; every method operates on a byte offset into the original
// string and decodes runes on demand. position()/setPosition() let the
// lexer checkpoint and rewind cheaply, which is how lookahead is
// implemented without re-lexing from the start of the file.
type cursor struct {
	source string
	offset uint32
}

func newCursor(source string) cursor {
	return cursor{source: source}
}

func (c *cursor) position() uint32 { return c.offset }

// setPosition rewinds or advances to a checkpoint taken by position(). It
// panics if pos lies past the end of the source or inside a UTF-8
// sequence.
func (c *cursor) setPosition(pos uint32) {
	if int(pos) > len(c.source) || (int(pos) < len(c.source) && !utf8.RuneStart(c.source[pos])) {
		panic("lexer: checkpoint out of range or not on a UTF-8 boundary")
	}
	c.offset = pos
}

func (c *cursor) atEnd() bool { return int(c.offset) >= len(c.source) }

// peek returns the rune at the cursor without consuming it.
func (c *cursor) peek() (rune, bool) {
	return c.peekAt(0)
}

// peekAt returns the nth rune ahead of the cursor (0 is the current
// rune) without consuming anything. It is O(n) in the number of runes
// skipped, which is acceptable since lookahead beyond one or two runes
// is rare (multi-char operators, `r#"`/`u"` prefixes).
func (c *cursor) peekAt(n int) (rune, bool) {
	pos := int(c.offset)
	for {
		if pos >= len(c.source) {
			return 0, false
		}
		r, width := utf8.DecodeRuneInString(c.source[pos:])
		if n == 0 {
			return r, true
		}
		pos += width
		n--
	}
}

// peekString reports whether the bytes starting at the cursor equal s.
func (c *cursor) peekString(s string) bool {
	end := int(c.offset) + len(s)
	if end > len(c.source) {
		return false
	}
	return c.source[c.offset:end] == s
}

// advance consumes and returns the rune at the cursor.
func (c *cursor) advance() (rune, bool) {
	if c.atEnd() {
		return 0, false
	}
	r, width := utf8.DecodeRuneInString(c.source[c.offset:])
	c.offset += uint32(width)
	return r, true
}

// advanceBytes consumes exactly n bytes without decoding them. Callers
// must only use this when the bytes are already known to be ASCII (e.g.
// after peekString matched a literal operator spelling).
func (c *cursor) advanceBytes(n int) {
	c.offset += uint32(n)
}
