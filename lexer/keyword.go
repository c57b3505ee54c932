package lexer

import (
	art "github.com/kralicky/go-adaptive-radix-tree"

	"github.com/fuse-lang/fusec/ast"
)

// keywordSource lists every reserved spelling and its token kind; it is
// loaded once into an adaptive radix tree (keywords below) rather than
// kept as a bare map. The flash-match dispatch this table drives is
// itself a prefix-keyed, maximal-munch lookup, which an ART's
// prefix-descent walk models more directly than probing a map at
// several candidate lengths. `local` is kept as an accepted alias for
// `let`; the parser is responsible for raising a recoverable diagnostic
// when it sees TokenLocal.
var keywordSource = map[string]ast.TokenKind{
	"and":      ast.TokenAnd,
	"as":       ast.TokenAs,
	"break":    ast.TokenBreak,
	"const":    ast.TokenConst,
	"do":       ast.TokenDo,
	"else":     ast.TokenElse,
	"elseif":   ast.TokenElseIf,
	"end":      ast.TokenEnd,
	"enum":     ast.TokenEnum,
	"export":   ast.TokenExport,
	"false":    ast.TokenFalse,
	"for":      ast.TokenFor,
	"from":     ast.TokenFrom,
	"function": ast.TokenFunction,
	"fn":       ast.TokenFn,
	"global":   ast.TokenGlobal,
	"if":       ast.TokenIf,
	"impl":     ast.TokenImpl,
	"import":   ast.TokenImport,
	"in":       ast.TokenIn,
	"let":      ast.TokenLet,
	"local":    ast.TokenLocal,
	"match":    ast.TokenMatch,
	"never":    ast.TokenNever,
	"nil":      ast.TokenNil,
	"not":      ast.TokenNot,
	"or":       ast.TokenOr,
	"pub":      ast.TokenPub,
	"repeat":   ast.TokenRepeat,
	"return":   ast.TokenReturn,
	"self":     ast.TokenLowSelf,
	"Self":     ast.TokenCapSelf,
	"static":   ast.TokenStatic,
	"struct":   ast.TokenStruct,
	"then":     ast.TokenThen,
	"trait":    ast.TokenTrait,
	"true":     ast.TokenTrue,
	"type":     ast.TokenType,
	"union":    ast.TokenUnion,
	"unknown":  ast.TokenUnknown,
	"until":    ast.TokenUntil,
	"unsafe":   ast.TokenUnsafe,
	"when":     ast.TokenWhen,
	"while":    ast.TokenWhile,
}

// keywords is keywordSource loaded into an adaptive radix tree once at
// package init.
var keywords = buildKeywordTree()

func buildKeywordTree() art.Tree[ast.TokenKind] {
	tree := art.New[ast.TokenKind]()
	for spelling, kind := range keywordSource {
		tree.Insert(art.Key(spelling), kind)
	}
	return tree
}

// lookupKeyword reports the keyword kind for an exact identifier
// spelling. The caller is responsible for having already lexed the full
// maximal-munch identifier, so a keyword is only ever matched when
// nothing could extend it further into a longer identifier.
func lookupKeyword(text string) (ast.TokenKind, bool) {
	value, found := keywords.Search(art.Key(text))
	if !found {
		return 0, false
	}
	return value, true
}
