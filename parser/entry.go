package parser

import (
	"fmt"

	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// ParsedChunk is the external result of Parse: a Chunk on success, or a
// nil Chunk with Panicked set to true when a truly unrecoverable
// condition aborted the parse. Errors accumulates every recoverable
// diagnostic regardless of which outcome occurred.
type ParsedChunk struct {
	Chunk    *ast.Chunk
	Errors   []error
	Panicked bool
}

// Parse lexes and parses source into a Chunk. It never panics itself;
// the single recover() here is a backstop against a genuine internal
// bug surfacing as a Go panic, so that callers driving many independent
// parses (e.g. a test suite) never lose the whole batch to one bad
// input.
func Parse(source string) *ParsedChunk {
	p := newParser(source)
	result := &ParsedChunk{}

	defer func() {
		if r := recover(); r != nil {
			result.Chunk = nil
			result.Panicked = true
			p.handler.Push(&reporter.DiagnosisError{
				Token:   p.current(),
				Message: fmt.Sprintf("internal parser error: %v", r),
			})
			result.Errors = p.handler.Errors()
		}
	}()

	chunk := p.parseChunk()
	result.Chunk = chunk
	result.Errors = p.handler.Errors()
	return result
}

// parseChunk parses the whole token stream as a single top-level block.
// The resulting block's span is forced to cover the entire source, even
// when the source is empty or ends in trailing trivia with no further
// statements, so that a Chunk's body always spans [0, len(source)).
func (p *Parser) parseChunk() *ast.Chunk {
	body := p.parseBlockUntil(ast.TokenEOF)
	body.SpanValue = ast.NewSpan(0, uint32(len(p.source)))
	return ast.NewChunk(body)
}
