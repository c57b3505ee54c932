package ast

// UnaryOperatorKind is the closed set of prefix operators.
type UnaryOperatorKind int

const (
	UnaryNot UnaryOperatorKind = iota
	UnaryPlus
	UnaryMinus
)

type UnaryOperator struct {
	SpanValue  Span
	OpSpan     Span
	Kind       UnaryOperatorKind
	Expression Expression
}

func (u *UnaryOperator) Span() Span      { return u.SpanValue }
func (u *UnaryOperator) expressionNode() {}

// BinaryOperatorKind enumerates every infix operator; the mapping from
// token to kind is exhaustive over these variants. The declaration order
// is not the precedence order (see precedence.go for the bands).
type BinaryOperatorKind int

const (
	BinAssignment BinaryOperatorKind = iota
	BinLogicalOr
	BinLogicalAnd
	BinBitwiseOr
	BinBitwiseXor
	BinBitwiseAnd
	BinEquality
	BinNonEquality
	BinLessThanEqual
	BinLessThan
	BinGreaterThanEqual
	BinGreaterThan
	BinPlus
	BinMinus
	BinMultiply
	BinExponential
	BinDivision
	BinFloorDivision
	BinModulo
	BinShiftLeft
	BinShiftRight
)

type BinaryOperator struct {
	OpSpan Span
	Kind   BinaryOperatorKind
	LHS    Expression
	RHS    Expression
}

func (b *BinaryOperator) Span() Span      { return Join(b.LHS.Span(), b.RHS.Span()) }
func (b *BinaryOperator) expressionNode() {}

// ArrayExpressionElement is either a plain expression or a `...spread`.
type ArrayExpressionElement interface {
	arrayElementNode()
}

type SpreadArgument struct {
	SpanValue Span
	Element   Expression
}

func (s *SpreadArgument) Span() Span          { return s.SpanValue }
func (s *SpreadArgument) arrayElementNode()   {}
func (s *SpreadArgument) tupleElementNode()   {}
func (s *SpreadArgument) constructionNode()   {}

type ExpressionArrayElement struct{ Expression Expression }

func (e ExpressionArrayElement) arrayElementNode() {}

type ArrayExpression struct {
	SpanValue Span
	Elements  []ArrayExpressionElement
}

func (a *ArrayExpression) Span() Span      { return a.SpanValue }
func (a *ArrayExpression) expressionNode() {}

// TupleExpressionElement mirrors ArrayExpressionElement for tuples.
type TupleExpressionElement interface {
	tupleElementNode()
}

type ExpressionTupleElement struct{ Expression Expression }

func (e ExpressionTupleElement) tupleElementNode() {}

type TupleExpression struct {
	SpanValue Span
	Elements  []TupleExpressionElement
}

func (t *TupleExpression) Span() Span      { return t.SpanValue }
func (t *TupleExpression) expressionNode() {}

type ParenthesizedExpression struct {
	SpanValue  Span
	Expression Expression
}

func (p *ParenthesizedExpression) Span() Span      { return p.SpanValue }
func (p *ParenthesizedExpression) expressionNode() {}

type CallExpression struct {
	SpanValue Span
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) Span() Span      { return c.SpanValue }
func (c *CallExpression) expressionNode() {}

// MemberExpression is `lhs.rhs`. Chains nest to the right: `a.b.c` is
// Member(a, Member(b, c)). The right-hand side is a field name
// (Identifier) or a tuple index (NumberLiteral), possibly called, or a
// further MemberExpression holding the rest of the chain.
type MemberExpression struct {
	SpanValue Span
	LHS       Expression
	RHS       Expression
}

func (m *MemberExpression) Span() Span      { return m.SpanValue }
func (m *MemberExpression) expressionNode() {}

// KeyValueArgument is a `key: value` field inside a table/struct
// construction.
type KeyValueArgument struct {
	SpanValue Span
	Key       *Identifier
	Value     Expression
}

func (k *KeyValueArgument) Span() Span        { return k.SpanValue }
func (k *KeyValueArgument) constructionNode() {}

// ConstructionField is one of: bare expression, `key: value`, or
// `...spread` inside `{ ... }`.
type ConstructionField interface {
	constructionNode()
}

type ExpressionConstructionField struct{ Expression Expression }

func (e ExpressionConstructionField) constructionNode() {}

// TableConstructionExpression is `{ field, ... }` with no preceding
// type/identifier.
type TableConstructionExpression struct {
	SpanValue Span
	Fields    []ConstructionField
}

func (t *TableConstructionExpression) Span() Span      { return t.SpanValue }
func (t *TableConstructionExpression) expressionNode() {}

// StructConstructionExpression is `target { fields }`, only reachable
// when target is an Identifier or a ParenthesizedExpression.
type StructConstructionExpression struct {
	Target      Expression
	Construction *TableConstructionExpression
}

func (s *StructConstructionExpression) Span() Span {
	return Join(s.Target.Span(), s.Construction.Span())
}
func (s *StructConstructionExpression) expressionNode() {}

// Else is the tail of an If expression: either another If (elseif) or a
// terminal Block (else).
type Else interface {
	elseNode()
}

type ElseIf struct{ If *If }

func (e ElseIf) elseNode() {}

type ElseBlock struct{ Block *Block }

func (e ElseBlock) elseNode() {}

type If struct {
	SpanValue Span
	Cond      Expression
	Body      *Block
	Else      Else // nil when there is no else/elseif clause
}

func (i *If) Span() Span      { return i.SpanValue }
func (i *If) expressionNode() {}
func (i *If) statementNode()  {} // an if expression used as a statement is fine too
