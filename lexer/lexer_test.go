package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuse-lang/fusec/ast"
)

func tokenKinds(t *testing.T, source string) []ast.TokenKind {
	t.Helper()
	l := New(source)
	var kinds []ast.TokenKind
	for {
		tok := l.Consume()
		kinds = append(kinds, tok.Kind())
		if tok.Kind() == ast.TokenEOF {
			return kinds
		}
	}
}

func TestLexerKeywordVsIdentifierBoundary(t *testing.T) {
	t.Parallel()

	kinds := tokenKinds(t, "and andy")
	require.Len(t, kinds, 3)
	assert.Equal(t, ast.TokenAnd, kinds[0])
	assert.Equal(t, ast.TokenIdentifier, kinds[1])
	assert.Equal(t, ast.TokenEOF, kinds[2])
}

func TestLexerAllKeywordsRecognized(t *testing.T) {
	t.Parallel()

	for spelling, want := range keywordSource {
		spelling, want := spelling, want
		t.Run(spelling, func(t *testing.T) {
			t.Parallel()
			kinds := tokenKinds(t, spelling)
			require.Len(t, kinds, 2)
			assert.Equal(t, want, kinds[0])
		})
	}
}

func TestLexerNumberLiteralSpans(t *testing.T) {
	t.Parallel()

	// Kind (decimal/float/hex/binary) is assigned later by the parser; the
	// lexer's only job is getting the span of the maximal-munch literal
	// right. The `1.field` case, where a dot must NOT be swallowed into
	// the number, is covered by TestLexerNumberDoesNotSwallowMemberDot.
	sources := []string{"0", "123", "1_000", "0.5", "1e10", "1.0e10", "0xFF", "0b1010"}

	for _, source := range sources {
		source := source
		t.Run(source, func(t *testing.T) {
			t.Parallel()
			l := New(source)
			tok := l.Consume()
			require.Equal(t, ast.TokenNumberLiteral, tok.Kind())
			assert.Equal(t, source, tok.Span().View(source))
		})
	}
}

func TestLexerNumberDoesNotSwallowMemberDot(t *testing.T) {
	t.Parallel()

	kinds := tokenKinds(t, "1.field")
	require.Len(t, kinds, 4)
	assert.Equal(t, ast.TokenNumberLiteral, kinds[0])
	assert.Equal(t, ast.TokenDot, kinds[1])
	assert.Equal(t, ast.TokenIdentifier, kinds[2])
	assert.Equal(t, ast.TokenEOF, kinds[3])
}

func TestLexerTriviaRoundTrip(t *testing.T) {
	t.Parallel()

	source := "  let   x = 1  \n"
	l := New(source)

	var rebuilt []byte
	for {
		ref := l.Consume()
		for _, trivia := range ref.Leading {
			rebuilt = append(rebuilt, trivia.Span.View(source)...)
		}
		rebuilt = append(rebuilt, ref.Span().View(source)...)
		for _, trivia := range ref.Trailing {
			rebuilt = append(rebuilt, trivia.Span.View(source)...)
		}
		if ref.Kind() == ast.TokenEOF {
			break
		}
	}

	assert.Equal(t, source, string(rebuilt))
}

func TestLexerOperators(t *testing.T) {
	t.Parallel()

	kinds := tokenKinds(t, "+ - * ** / // % ** -> => ?")
	want := []ast.TokenKind{
		ast.TokenPlus, ast.TokenMinus, ast.TokenStar, ast.TokenStarStar,
		ast.TokenSlash, ast.TokenSlashSlash, ast.TokenPercent, ast.TokenStarStar,
		ast.TokenThinArrow, ast.TokenFatArrow, ast.TokenQuestion, ast.TokenEOF,
	}
	assert.Equal(t, want, kinds)
}

func TestLexerStringInterpolationSegments(t *testing.T) {
	t.Parallel()

	source := `"a ${x} b"`
	l := New(source)

	head := l.Consume()
	require.Equal(t, ast.TokenInterpolatedStringHead, head.Kind())
	data, ok := l.StringData(head.Token)
	require.True(t, ok)
	assert.False(t, data.Value.HasEscape)
	assert.Equal(t, "a ", data.Value.Unescaped.View(source))

	ident := l.Consume()
	require.Equal(t, ast.TokenIdentifier, ident.Kind())
	require.Equal(t, ast.TokenRCurly, l.Current().Kind())

	tail, ok := l.FollowInterpolation(data.Quote, data.Raw, data.ExpectedHashes)
	require.True(t, ok)
	require.Equal(t, ast.TokenInterpolatedStringTail, tail.Kind())
	tailData, ok := l.StringData(tail.Token)
	require.True(t, ok)
	// The space after the closing brace is string content, not trivia.
	assert.Equal(t, " b", tailData.Value.Unescaped.View(source))
}

func TestLexerRawStringWithHashes(t *testing.T) {
	t.Parallel()

	source := `r#"no ${escape} here"#`
	l := New(source)
	tok := l.Consume()
	require.Equal(t, ast.TokenStringLiteral, tok.Kind())

	data, ok := l.StringData(tok.Token)
	require.True(t, ok)
	assert.True(t, data.Raw)
	assert.Equal(t, 1, data.ExpectedHashes)
	assert.True(t, data.Terminated)
	assert.Equal(t, "no ${escape} here", data.Value.Unescaped.View(source))
}

func TestLexerEscapedStringOwnsDecodedText(t *testing.T) {
	t.Parallel()

	source := `"line\nnext"`
	l := New(source)
	tok := l.Consume()
	require.Equal(t, ast.TokenStringLiteral, tok.Kind())

	data, ok := l.StringData(tok.Token)
	require.True(t, ok)
	require.True(t, data.Value.HasEscape)
	assert.Equal(t, "line\nnext", data.Value.Escaped)
}

func TestLexerRawIdentifier(t *testing.T) {
	t.Parallel()

	source := "r#const"
	l := New(source)
	tok := l.Consume()
	require.Equal(t, ast.TokenRawIdentifier, tok.Kind())
	assert.Equal(t, "r#const", tok.Span().View(source))
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	l := New("let x")
	first := l.Peek(0)
	second := l.Peek(0)
	assert.Equal(t, first, second)

	consumed := l.Consume()
	assert.Equal(t, first, consumed)
}
