package ast

// This file collects the small constructors the parser uses to build AST
// nodes. Keeping span computation here, rather than inline at every call
// site, keeps the parser's production rules focused on control flow.

func NewChunk(body *Block) *Chunk {
	return &Chunk{SpanValue: body.SpanValue, Body: body}
}

func NewBlock(span Span, statements []Statement) *Block {
	return &Block{SpanValue: span, Statements: statements}
}

func NewEmptyStatement(span Span) *EmptyStatement {
	return &EmptyStatement{SpanValue: span}
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{SpanValue: expr.Span(), Expression: expr}
}

func NewVariableDeclaration(span Span, kind VariableDeclarationKind, pattern *BindingPattern, init Expression) *VariableDeclaration {
	return &VariableDeclaration{SpanValue: span, Kind: kind, Pattern: pattern, Init: init}
}

func NewBindingIdentifier(ident *Identifier, mutable bool) *BindingIdentifier {
	span := ident.Span()
	return &BindingIdentifier{SpanValue: span, Identifier: ident, Mutable: mutable}
}

func NewIdentifierBindingPattern(identifier *BindingIdentifier, typeAnnotation *TypeAnnotation, optional bool) *BindingPattern {
	return &BindingPattern{
		Kind:           BindingKindIdentifier,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Optional:       optional,
	}
}

func NewTupleBindingPattern(span Span, elements []*BindingPattern) *BindingPattern {
	return &BindingPattern{SpanValue: span, Kind: BindingKindTuple, Elements: elements}
}

func NewBindingRest(span Span, identifier *BindingIdentifier, typeAnnotation *TypeAnnotation) *BindingRest {
	return &BindingRest{SpanValue: span, Identifier: identifier, TypeAnnotation: typeAnnotation}
}

func NewUnaryOperator(span Span, opSpan Span, kind UnaryOperatorKind, expr Expression) *UnaryOperator {
	return &UnaryOperator{SpanValue: span, OpSpan: opSpan, Kind: kind, Expression: expr}
}

func NewBinaryOperator(opSpan Span, kind BinaryOperatorKind, lhs, rhs Expression) *BinaryOperator {
	return &BinaryOperator{OpSpan: opSpan, Kind: kind, LHS: lhs, RHS: rhs}
}

func NewCallExpression(span Span, callee Expression, args []Expression) *CallExpression {
	return &CallExpression{SpanValue: span, Callee: callee, Arguments: args}
}

func NewMemberExpression(span Span, lhs, rhs Expression) *MemberExpression {
	return &MemberExpression{SpanValue: span, LHS: lhs, RHS: rhs}
}

func NewParenthesizedExpression(span Span, inner Expression) *ParenthesizedExpression {
	return &ParenthesizedExpression{SpanValue: span, Expression: inner}
}

func NewArrayExpression(span Span, elements []ArrayExpressionElement) *ArrayExpression {
	return &ArrayExpression{SpanValue: span, Elements: elements}
}

func NewTupleExpression(span Span, elements []TupleExpressionElement) *TupleExpression {
	return &TupleExpression{SpanValue: span, Elements: elements}
}

func NewTableConstructionExpression(span Span, fields []ConstructionField) *TableConstructionExpression {
	return &TableConstructionExpression{SpanValue: span, Fields: fields}
}

func NewStructConstructionExpression(target Expression, construction *TableConstructionExpression) *StructConstructionExpression {
	return &StructConstructionExpression{Target: target, Construction: construction}
}

func NewFunction(span Span, name *Identifier, signature *FunctionSignature, body *FunctionBody) *Function {
	return &Function{SpanValue: span, Name: name, Signature: signature, Body: body}
}

func NewFunctionDeclaration(span Span, visibility VisibilityModifier, fn *Function) *FunctionDeclaration {
	return &FunctionDeclaration{SpanValue: span, Visibility: visibility, Function: fn}
}

func NewIf(span Span, cond Expression, body *Block, elseClause Else) *If {
	return &If{SpanValue: span, Cond: cond, Body: body, Else: elseClause}
}

func NewStructDeclaration(span Span, visibility VisibilityModifier, name *Identifier, fields []*StructField) *StructDeclaration {
	return &StructDeclaration{SpanValue: span, Visibility: visibility, Name: name, Fields: fields}
}

func NewEnumDeclaration(span Span, visibility VisibilityModifier, name *Identifier, variants []*EnumVariant) *EnumDeclaration {
	return &EnumDeclaration{SpanValue: span, Visibility: visibility, Name: name, Variants: variants}
}

func NewTraitDeclaration(span Span, visibility VisibilityModifier, name *Identifier, methods []*TraitMethod) *TraitDeclaration {
	return &TraitDeclaration{SpanValue: span, Visibility: visibility, Name: name, Methods: methods}
}

func NewImplStatement(span Span, trait *Identifier, target *Identifier, methods []*ImplMethod) *ImplStatement {
	return &ImplStatement{SpanValue: span, Trait: trait, Target: target, Methods: methods}
}

func NewStringLiteral(span Span, segments []StringSegment, unicode, raw bool) *StringLiteral {
	return &StringLiteral{SpanValue: span, Segments: segments, Unicode: unicode, Raw: raw}
}

func NewNumberLiteral(span Span, raw Atom, value float64, kind NumberKind) *NumberLiteral {
	return &NumberLiteral{SpanValue: span, Raw: raw, Value: value, Kind: kind}
}

func NewBooleanLiteral(span Span, value bool) *BooleanLiteral {
	return &BooleanLiteral{SpanValue: span, Value: value}
}
