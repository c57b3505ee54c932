package ast

// Node is implemented by every element of the AST. It reports the node's
// byte span in the original source.
type Node interface {
	Span() Span
}

// Statement is one of: EmptyStatement, ExpressionStatement,
// VariableDeclaration, FunctionDeclaration, EnumDeclaration,
// StructDeclaration, TraitDeclaration, ImplStatement, If, ErrorStatement.
type Statement interface {
	Node
	statementNode()
}

// Expression is one of the expression forms described in the data model.
type Expression interface {
	Node
	expressionNode()
}

// Chunk is the top-level parse unit: the root block plus the full-source
// span. The Chunk transitively owns all AST nodes produced for one source
// string.
type Chunk struct {
	SpanValue Span
	Body      *Block
}

func (c *Chunk) Span() Span { return c.SpanValue }

// Block is an ordered list of statements forming one lexical scope.
type Block struct {
	SpanValue  Span
	Statements []Statement
}

func (b *Block) Span() Span { return b.SpanValue }

// ReferenceID uniquely identifies a declaration site. Every identifier
// occurrence resolved to the same declaration carries the same ID.
type ReferenceID uint32

// ReferenceCell is the write-once interior-mutability cell attached to
// every Identifier. The resolver is the only writer; it holds only a
// shared view of the Identifier yet can still record the resolution.
// This cell is safe only under the single-threaded contract described by
// the resolver: it performs no synchronization of its own.
type ReferenceCell struct {
	id  ReferenceID
	set bool
}

func (c *ReferenceCell) Get() (ReferenceID, bool) {
	if c == nil || !c.set {
		return 0, false
	}
	return c.id, true
}

// Set assigns the reference id. It may be called at most once; a second
// call indicates a bug in the resolver (an identifier declared or
// resolved twice) and panics.
func (c *ReferenceCell) Set(id ReferenceID) {
	if c.set {
		panic("ast: reference cell written more than once")
	}
	c.id = id
	c.set = true
}

// Identifier is a name occurrence: a declaration site or a use site. Name
// is the interned spelling of the identifier, including the `r#` prefix
// for raw identifiers. Reference starts unset and is written exactly once
// by the resolver.
type Identifier struct {
	SpanValue Span
	Name      Atom
	Reference *ReferenceCell
}

func (i *Identifier) Span() Span        { return i.SpanValue }
func (i *Identifier) expressionNode()   {}

// NewIdentifier allocates an Identifier with an unset reference cell.
func NewIdentifier(span Span, name Atom) *Identifier {
	return &Identifier{SpanValue: span, Name: name, Reference: &ReferenceCell{}}
}

// ErrorExpression stands in for an expression the parser could not
// make sense of, so that a malformed subtree still produces a complete,
// walkable AST rather than a nil hole. It is never produced for a
// non-panicked parse beyond the single offending span.
type ErrorExpression struct {
	SpanValue Span
}

func (e *ErrorExpression) Span() Span      { return e.SpanValue }
func (e *ErrorExpression) expressionNode() {}

// ErrorStatement is ErrorExpression's statement-level counterpart.
type ErrorStatement struct {
	SpanValue Span
}

func (e *ErrorStatement) Span() Span   { return e.SpanValue }
func (e *ErrorStatement) statementNode() {}
