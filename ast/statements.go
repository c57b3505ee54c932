package ast

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	SpanValue Span
}

func (e *EmptyStatement) Span() Span   { return e.SpanValue }
func (e *EmptyStatement) statementNode() {}

// ExpressionStatement wraps an expression used for its side effects.
type ExpressionStatement struct {
	SpanValue  Span
	Expression Expression
}

func (e *ExpressionStatement) Span() Span   { return e.SpanValue }
func (e *ExpressionStatement) statementNode() {}

// VariableDeclarationKind distinguishes the three declaration forms,
// which differ in scope placement (resolver.go) but share a shape here.
type VariableDeclarationKind int

const (
	VarKindLet VariableDeclarationKind = iota
	VarKindConst
	VarKindGlobal
)

type VariableDeclaration struct {
	SpanValue Span
	Kind      VariableDeclarationKind
	Pattern   *BindingPattern
	Init      Expression // nil for `let x;` with no initializer
}

func (v *VariableDeclaration) Span() Span   { return v.SpanValue }
func (v *VariableDeclaration) statementNode() {}

// VisibilityModifier is attached to declarations that may be exported
// from a module: functions, structs, enums, traits.
type VisibilityModifier int

const (
	VisibilityPrivate VisibilityModifier = iota
	VisibilityPublic
)

// FunctionParameter is one entry in a FunctionParameters list.
type FunctionParameter struct {
	SpanValue Span
	Pattern   *BindingPattern
}

func (f *FunctionParameter) Span() Span { return f.SpanValue }

type FunctionParameters struct {
	SpanValue Span
	Items     []*FunctionParameter
	Rest      *BindingRest // nil when there is no `...rest` parameter
}

func (f *FunctionParameters) Span() Span { return f.SpanValue }

type FunctionSignature struct {
	SpanValue  Span
	Parameters *FunctionParameters
	ReturnType *TypeAnnotation // nil when no return type is annotated
}

func (f *FunctionSignature) Span() Span { return f.SpanValue }

type FunctionBody struct {
	SpanValue Span
	Block     *Block
}

func (f *FunctionBody) Span() Span { return f.SpanValue }

// Function is both an expression (function literal / closure) and, when
// given a Name, the body of a FunctionDeclaration statement.
type Function struct {
	SpanValue Span
	Name      *Identifier // nil for anonymous function expressions
	Signature *FunctionSignature
	Body      *FunctionBody
}

func (f *Function) Span() Span      { return f.SpanValue }
func (f *Function) expressionNode() {}

type FunctionDeclaration struct {
	SpanValue  Span
	Visibility VisibilityModifier
	Function   *Function
}

func (f *FunctionDeclaration) Span() Span   { return f.SpanValue }
func (f *FunctionDeclaration) statementNode() {}

// EnumVariant is one member of an enum declaration: a bare unit variant
// (`Name`), a variant carrying an explicit discriminant (`Name = expr`),
// or a struct-shaped variant carrying named fields (`Name { x: T }`).
// At most one of Value and Fields is set.
type EnumVariant struct {
	SpanValue Span
	Name      *Identifier
	Value     Expression // discriminant; nil unless `= expr` was given
	Fields    []*StructField
}

func (e *EnumVariant) Span() Span { return e.SpanValue }

type EnumDeclaration struct {
	SpanValue  Span
	Visibility VisibilityModifier
	Name       *Identifier
	Variants   []*EnumVariant
}

func (e *EnumDeclaration) Span() Span   { return e.SpanValue }
func (e *EnumDeclaration) statementNode() {}

// StructField is one `name: Type` member of a struct declaration.
type StructField struct {
	SpanValue      Span
	Visibility     VisibilityModifier
	Name           *Identifier
	TypeAnnotation *TypeAnnotation
}

func (s *StructField) Span() Span { return s.SpanValue }

type StructDeclaration struct {
	SpanValue  Span
	Visibility VisibilityModifier
	Name       *Identifier
	Fields     []*StructField
}

func (s *StructDeclaration) Span() Span   { return s.SpanValue }
func (s *StructDeclaration) statementNode() {}

// TraitDeclaration declares a named set of method signatures for
// `impl Trait for T` blocks. Method bodies are absent here; nothing
// checks an ImplStatement's methods against these signatures.
type TraitDeclaration struct {
	SpanValue  Span
	Visibility VisibilityModifier
	Name       *Identifier
	Methods    []*TraitMethod
}

func (t *TraitDeclaration) Span() Span   { return t.SpanValue }
func (t *TraitDeclaration) statementNode() {}

type TraitMethod struct {
	SpanValue Span
	Name      *Identifier
	Signature *FunctionSignature
}

func (t *TraitMethod) Span() Span { return t.SpanValue }

// ImplMethod is one method body inside an impl block.
type ImplMethod struct {
	SpanValue  Span
	Visibility VisibilityModifier
	Function   *Function
}

func (i *ImplMethod) Span() Span { return i.SpanValue }

// ImplStatement is `impl T ... end` (Trait == nil) or
// `impl Trait for T ... end` (Trait set).
type ImplStatement struct {
	SpanValue Span
	Trait     *Identifier // nil for an inherent impl block
	Target    *Identifier
	Methods   []*ImplMethod
}

func (i *ImplStatement) Span() Span   { return i.SpanValue }
func (i *ImplStatement) statementNode() {}
