package ast

// NumberKind records which lexical form produced a NumberLiteral, which
// in turn drives how Raw is reparsed for the round-trip property.
type NumberKind int

const (
	NumberDecimal NumberKind = iota
	NumberFloat
	NumberHexadecimal
	NumberBinary
)

type NumberLiteral struct {
	SpanValue Span
	// Raw is the source text with `_` separators intact.
	Raw   Atom
	Value float64
	Kind  NumberKind
}

func (n *NumberLiteral) Span() Span      { return n.SpanValue }
func (n *NumberLiteral) expressionNode() {}

type BooleanLiteral struct {
	SpanValue Span
	Value     bool
}

func (b *BooleanLiteral) Span() Span      { return b.SpanValue }
func (b *BooleanLiteral) expressionNode() {}

// InterpolationFormat tags how an interpolated expression segment should
// be rendered. Debug is reserved for a future `${expr:?}` form.
type InterpolationFormat int

const (
	FormatDisplay InterpolationFormat = iota
	FormatDebug
)

// StringSegment is one piece of a (possibly interpolated) string literal:
// either a literal run of text or an interpolated sub-expression.
type StringSegment interface {
	stringSegmentNode()
}

// StringLiteralSegment is literal text within a string. Escaped segments
// own their decoded text; Unescaped segments instead point back into the
// source to avoid allocating when no escape sequence was present.
type StringLiteralSegment struct {
	SpanValue  Span
	Value      StringValue
}

func (s *StringLiteralSegment) stringSegmentNode() {}
func (s *StringLiteralSegment) Span() Span         { return s.SpanValue }

// InterpolatedStringSegment is a `${expr}` hole inside a string literal.
type InterpolatedStringSegment struct {
	SpanValue  Span
	Expression Expression
	Format     InterpolationFormat
}

func (s *InterpolatedStringSegment) stringSegmentNode() {}
func (s *InterpolatedStringSegment) Span() Span         { return s.SpanValue }

// StringLiteral is a sequence of segments. A non-interpolated literal has
// exactly one Literal segment. An interpolated literal alternates
// Literal/Interpolated segments, starting and ending with a Literal
// segment (the head and the tail).
type StringLiteral struct {
	SpanValue Span
	Segments  []StringSegment
	Unicode   bool
	Raw       bool
}

func (s *StringLiteral) Span() Span      { return s.SpanValue }
func (s *StringLiteral) expressionNode() {}
