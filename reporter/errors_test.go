package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuse-lang/fusec/ast"
)

func TestHandlerAccumulatesInOrder(t *testing.T) {
	t.Parallel()

	var h Handler
	assert.False(t, h.HasErrors())

	h.Push(&UnexpectedError{Token: ast.TokenReference{Token: ast.Token{Span: ast.NewSpan(0, 1), Kind: ast.TokenEOF}}})
	h.Push(&DiagnosisError{Message: "expected ',' between parameters"})

	require.True(t, h.HasErrors())
	require.Len(t, h.Errors(), 2)
	assert.Equal(t, "expected ',' between parameters", h.Errors()[1].Error())
}

func TestErrorKindsImplementErrorWithSpan(t *testing.T) {
	t.Parallel()

	span := ast.NewSpan(4, 9)
	tok := ast.TokenReference{Token: ast.Token{Span: span, Kind: ast.TokenIdentifier}}

	cases := []ErrorWithSpan{
		&LexerError{Span: span, Message: "unterminated string"},
		&UnexpectedTokenKind{Found: tok, Expected: ast.TokenColon},
		&UnexpectedError{Token: tok},
		&InvalidNumberLiteral{Token: tok, Cause: "more than one decimal point"},
		&DiagnosisError{Token: tok, Message: "bad pattern"},
	}

	for _, err := range cases {
		assert.NotEmpty(t, err.Error())
	}
	assert.Equal(t, span, cases[1].ErrorSpan())
}
