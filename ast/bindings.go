package ast

// TypeAnnotation is, for now, treated like a bare identifier; the type
// checker that would give it real structure is out of scope for this
// front end.
type TypeAnnotation struct {
	Identifier *Identifier
}

func (t *TypeAnnotation) Span() Span { return t.Identifier.Span() }

// BindingIdentifier is the leaf of a binding pattern: a declared name plus
// its mutability marker.
type BindingIdentifier struct {
	SpanValue  Span
	Identifier *Identifier
	Mutable    bool
}

func (b *BindingIdentifier) Span() Span { return b.SpanValue }

// BindingPatternKind distinguishes a plain identifier binding from a
// tuple-destructuring binding.
type BindingPatternKind int

const (
	BindingKindIdentifier BindingPatternKind = iota
	BindingKindTuple
)

// BindingPattern appears in variable declarations and function
// parameters. For Kind == BindingKindTuple, Elements holds the nested
// patterns of a `(a, mut b, c: T)` destructuring pattern; Identifier and
// TypeAnnotation are unset in that case.
type BindingPattern struct {
	SpanValue      Span
	Kind           BindingPatternKind
	Identifier     *BindingIdentifier // set when Kind == BindingKindIdentifier
	Elements       []*BindingPattern  // set when Kind == BindingKindTuple
	TypeAnnotation *TypeAnnotation
	Optional       bool
}

func (b *BindingPattern) Span() Span {
	if b.Kind == BindingKindTuple {
		return b.SpanValue
	}
	if b.Identifier != nil {
		if b.TypeAnnotation != nil {
			return Join(b.Identifier.Span(), b.TypeAnnotation.Span())
		}
		return b.Identifier.Span()
	}
	if b.TypeAnnotation != nil {
		return b.TypeAnnotation.Span()
	}
	return b.SpanValue
}

// BindingRest represents a `...name` tail in a parameter list.
type BindingRest struct {
	SpanValue      Span
	Identifier     *BindingIdentifier
	TypeAnnotation *TypeAnnotation
}

func (b *BindingRest) Span() Span { return b.SpanValue }
