package parser

import (
	"strconv"
	"strings"

	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// parseNumberLiteral reparses a TokenNumberLiteral's raw text into a
// value, following the same rules regardless of how the lexer happened
// to scan it: strip `_` separators, then dispatch on a `0x`/`0b` prefix
// before falling back to decimal (with at most one `.` and one
// exponent marker).
func (p *Parser) parseNumberLiteral(tok ast.TokenReference) *ast.NumberLiteral {
	raw := tok.Span().View(p.source)
	cleaned := strings.ReplaceAll(raw, "_", "")

	var value float64
	var kind ast.NumberKind
	var err error

	switch {
	case hasPrefix(cleaned, "0x") || hasPrefix(cleaned, "0X"):
		kind = ast.NumberHexadecimal
		var iv int64
		iv, err = strconv.ParseInt(cleaned[2:], 16, 64)
		value = float64(iv)
	case hasPrefix(cleaned, "0b") || hasPrefix(cleaned, "0B"):
		kind = ast.NumberBinary
		var iv int64
		iv, err = strconv.ParseInt(cleaned[2:], 2, 64)
		value = float64(iv)
	default:
		if strings.Contains(cleaned, ".") {
			kind = ast.NumberFloat
		} else {
			kind = ast.NumberDecimal
		}
		if strings.Count(cleaned, ".") > 1 || strings.Count(cleaned, "e")+strings.Count(cleaned, "E") > 1 {
			err = strconv.ErrSyntax
		} else {
			value, err = strconv.ParseFloat(cleaned, 64)
		}
	}

	if err != nil {
		p.pushError(&reporter.InvalidNumberLiteral{Token: tok, Cause: err.Error()})
	}

	return ast.NewNumberLiteral(tok.Span(), ast.Intern(raw), value, kind)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
