package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuse-lang/fusec/ast"
)

func mustParse(t *testing.T, source string) *ast.Chunk {
	t.Helper()
	result := Parse(source)
	require.False(t, result.Panicked, "parse panicked: %v", result.Errors)
	require.Empty(t, result.Errors, "unexpected parse errors: %v", result.Errors)
	return result.Chunk
}

func TestParseVariableDeclaration(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "let x = 1")
	require.Len(t, chunk.Body.Statements, 1)
	decl, ok := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.VarKindLet, decl.Kind)
	assert.Equal(t, "x", decl.Pattern.Identifier.Identifier.Name.String())
	require.NotNil(t, decl.Init)
}

func TestParseMutableAndOptionalBindingSigils(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "let *x? = 1")
	decl := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	assert.True(t, decl.Pattern.Identifier.Mutable)
	assert.True(t, decl.Pattern.Optional)
}

func TestParseGlobalDeclaration(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "global counter = 0")
	decl := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, ast.VarKindGlobal, decl.Kind)
}

func TestParseTupleDestructure(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "let (a, b) = pair")
	decl := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	require.Equal(t, ast.BindingKindTuple, decl.Pattern.Kind)
	require.Len(t, decl.Pattern.Elements, 2)
	assert.Equal(t, "a", decl.Pattern.Elements[0].Identifier.Identifier.Name.String())
	assert.Equal(t, "b", decl.Pattern.Elements[1].Identifier.Identifier.Name.String())
}

func TestParseFunctionDeclarationWithArrowBody(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "function double(x) => x * 2")
	require.Len(t, chunk.Body.Statements, 1)
	decl, ok := chunk.Body.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "double", decl.Function.Name.Name.String())
	require.Len(t, decl.Function.Signature.Parameters.Items, 1)
	require.Len(t, decl.Function.Body.Block.Statements, 1)
}

func TestParseFunctionDeclarationWithBlockBodyAndRestParameter(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
function sum(first, ...rest)
  first
end
`)
	decl := chunk.Body.Statements[0].(*ast.FunctionDeclaration)
	require.NotNil(t, decl.Function.Signature.Parameters.Rest)
	assert.Equal(t, "rest", decl.Function.Signature.Parameters.Rest.Identifier.Identifier.Name.String())
}

func TestParseStructDeclaration(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
struct Point
  x: Number,
  y: Number
end
`)
	decl, ok := chunk.Body.Statements[0].(*ast.StructDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Point", decl.Name.Name.String())
	require.Len(t, decl.Fields, 2)
	assert.Equal(t, "x", decl.Fields[0].Name.Name.String())
	assert.Equal(t, "Number", decl.Fields[0].TypeAnnotation.Identifier.Name.String())
}

func TestParseEnumDeclarationWithDiscriminantAndStructVariant(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
enum Shape
  Circle = 1,
  Rectangle { width: Number, height: Number }
end
`)
	decl, ok := chunk.Body.Statements[0].(*ast.EnumDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Variants, 2)

	circle := decl.Variants[0]
	assert.Equal(t, "Circle", circle.Name.Name.String())
	require.NotNil(t, circle.Value)
	assert.Nil(t, circle.Fields)

	rect := decl.Variants[1]
	assert.Equal(t, "Rectangle", rect.Name.Name.String())
	assert.Nil(t, rect.Value)
	require.Len(t, rect.Fields, 2)
}

func TestParseTraitAndTraitImpl(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
trait Greeter
  function greet() -> String
end

impl Greeter for Person
  function greet() => "hi"
end
`)
	require.Len(t, chunk.Body.Statements, 2)

	trait, ok := chunk.Body.Statements[0].(*ast.TraitDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Greeter", trait.Name.Name.String())
	require.Len(t, trait.Methods, 1)

	impl, ok := chunk.Body.Statements[1].(*ast.ImplStatement)
	require.True(t, ok)
	require.NotNil(t, impl.Trait)
	assert.Equal(t, "Greeter", impl.Trait.Name.String())
	assert.Equal(t, "Person", impl.Target.Name.String())
	require.Len(t, impl.Methods, 1)
}

func TestParseInherentImplWithoutTrait(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
impl Person
  function name() => self
end
`)
	impl := chunk.Body.Statements[0].(*ast.ImplStatement)
	assert.Nil(t, impl.Trait)
	assert.Equal(t, "Person", impl.Target.Name.String())
}

func TestParseIfElseIfElse(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `
if x then
  1
elseif y then
  2
else
  3
end
`)
	require.Len(t, chunk.Body.Statements, 1)
	stmt, ok := chunk.Body.Statements[0].(*ast.If)
	require.True(t, ok)

	elseIf, ok := stmt.Else.(ast.ElseIf)
	require.True(t, ok)
	_, ok = elseIf.If.Else.(ast.ElseBlock)
	require.True(t, ok)
}

func TestParseFnWithReturnTypeAndBlockBody(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "fn f(a, b) -> T a + b end")
	decl, ok := chunk.Body.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "f", decl.Function.Name.Name.String())
	require.Len(t, decl.Function.Signature.Parameters.Items, 2)
	require.NotNil(t, decl.Function.Signature.ReturnType)
	assert.Equal(t, "T", decl.Function.Signature.ReturnType.Identifier.Name.String())

	require.Len(t, decl.Function.Body.Block.Statements, 1)
	exprStmt, ok := decl.Function.Body.Block.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	binop, ok := exprStmt.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinPlus, binop.Kind)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "a = b = c")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	top, ok := exprStmt.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinAssignment, top.Kind)
	assert.Equal(t, "a", top.LHS.(*ast.Identifier).Name.String())

	rhs, ok := top.RHS.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinAssignment, rhs.Kind)
}

func TestParsePrecedenceThroughExponent(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "1 + 2 * 3 ** 2")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	plus, ok := exprStmt.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinPlus, plus.Kind)

	mul, ok := plus.RHS.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinMultiply, mul.Kind)

	exp, ok := mul.RHS.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinExponential, exp.Kind)
}

func TestParseBinaryPrecedence(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "1 + 2 * 3")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	binop, ok := exprStmt.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinPlus, binop.Kind)
	rhs, ok := binop.RHS.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinMultiply, rhs.Kind)
}

func TestParseExponentiationIsLeftAssociative(t *testing.T) {
	t.Parallel()

	// Every binary tier but Assignment and Member groups left-to-right,
	// including Exponential: "2 ** 3 ** 2" parses as "(2 ** 3) ** 2".
	chunk := mustParse(t, "2 ** 3 ** 2")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	top, ok := exprStmt.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinExponential, top.Kind)
	_, rhsIsBinop := top.RHS.(*ast.BinaryOperator)
	assert.False(t, rhsIsBinop, "2 ** 3 ** 2 should parse as (2 ** 3) ** 2")
	lhs, ok := top.LHS.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinExponential, lhs.Kind)
}

func TestParseMemberAndCallExpression(t *testing.T) {
	t.Parallel()

	// Member is right-associative: the chain nests toward the right, with
	// the call binding to its own link.
	chunk := mustParse(t, "a.b.c(1, 2)")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	member, ok := exprStmt.Expression.(*ast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "a", member.LHS.(*ast.Identifier).Name.String())

	inner, ok := member.RHS.(*ast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "b", inner.LHS.(*ast.Identifier).Name.String())

	call, ok := inner.RHS.(*ast.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
	assert.Equal(t, "c", call.Callee.(*ast.Identifier).Name.String())
}

func TestParseStructConstruction(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "Point { x: 1, y: 2 }")
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	construction, ok := exprStmt.Expression.(*ast.StructConstructionExpression)
	require.True(t, ok)
	target, ok := construction.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Point", target.Name.String())
}

func TestParseInterpolatedString(t *testing.T) {
	t.Parallel()

	source := `let s = "a ${1 + 2} b"`
	chunk := mustParse(t, source)
	decl := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	lit, ok := decl.Init.(*ast.StringLiteral)
	require.True(t, ok)
	require.Len(t, lit.Segments, 3)

	head, ok := lit.Segments[0].(*ast.StringLiteralSegment)
	require.True(t, ok)
	assert.Equal(t, "a ", head.Value.Unescaped.View(source))

	interp, ok := lit.Segments[1].(*ast.InterpolatedStringSegment)
	require.True(t, ok)
	assert.Equal(t, ast.FormatDisplay, interp.Format)
	binop, ok := interp.Expression.(*ast.BinaryOperator)
	require.True(t, ok)
	assert.Equal(t, ast.BinPlus, binop.Kind)

	tail, ok := lit.Segments[2].(*ast.StringLiteralSegment)
	require.True(t, ok)
	assert.Equal(t, " b", tail.Value.Unescaped.View(source))
}

func TestParseInterpolatedStringWithMultipleHoles(t *testing.T) {
	t.Parallel()

	source := `"${a}-${b}"`
	chunk := mustParse(t, source)
	exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
	lit, ok := exprStmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	require.Len(t, lit.Segments, 5)

	middle, ok := lit.Segments[2].(*ast.StringLiteralSegment)
	require.True(t, ok)
	assert.Equal(t, "-", middle.Value.Unescaped.View(source))
}

func TestParseRawIdentifierBinding(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, `const r#const = "hi"`)
	decl := chunk.Body.Statements[0].(*ast.VariableDeclaration)
	assert.Equal(t, ast.VarKindConst, decl.Kind)
	assert.Equal(t, "r#const", decl.Pattern.Identifier.Identifier.Name.String())

	lit, ok := decl.Init.(*ast.StringLiteral)
	require.True(t, ok)
	require.Len(t, lit.Segments, 1)
}

func TestParseLocalIsRecoverableLetAlias(t *testing.T) {
	t.Parallel()

	result := Parse("local x = 1")
	require.False(t, result.Panicked)
	require.Len(t, result.Errors, 1)
	decl, ok := result.Chunk.Body.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.VarKindLet, decl.Kind)
}

func TestParseNumberLiteralKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source string
		kind   ast.NumberKind
		value  float64
	}{
		{"0", ast.NumberDecimal, 0},
		{"1_000", ast.NumberDecimal, 1000},
		{"2.5", ast.NumberFloat, 2.5},
		{"1e3", ast.NumberDecimal, 1000},
		{"1.5e2", ast.NumberFloat, 150},
		{"0xFF", ast.NumberHexadecimal, 255},
		{"0b1010", ast.NumberBinary, 10},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.source, func(t *testing.T) {
			t.Parallel()
			chunk := mustParse(t, tc.source)
			exprStmt := chunk.Body.Statements[0].(*ast.ExpressionStatement)
			lit, ok := exprStmt.Expression.(*ast.NumberLiteral)
			require.True(t, ok)
			assert.Equal(t, tc.kind, lit.Kind)
			assert.Equal(t, tc.value, lit.Value)
			assert.Equal(t, tc.source, lit.Raw.String())
		})
	}
}

func TestParseEmptyChunkSpansEntireSource(t *testing.T) {
	t.Parallel()

	source := "   "
	chunk := mustParse(t, source)
	assert.Equal(t, ast.NewSpan(0, uint32(len(source))), chunk.Body.Span())
}

func TestParseEmptySourceAndEmptyStatements(t *testing.T) {
	t.Parallel()

	chunk := mustParse(t, "")
	assert.Empty(t, chunk.Body.Statements)
	assert.Equal(t, ast.NewSpan(0, 0), chunk.Body.Span())

	chunk = mustParse(t, ";;")
	require.Len(t, chunk.Body.Statements, 2)
	for _, stmt := range chunk.Body.Statements {
		empty, ok := stmt.(*ast.EmptyStatement)
		require.True(t, ok)
		assert.Equal(t, uint32(1), empty.Span().Len())
	}
}

func TestParseRecoversFromUnexpectedTokenAtStatementBoundary(t *testing.T) {
	t.Parallel()

	result := Parse("let = 1; let y = 2")
	require.False(t, result.Panicked)
	require.NotEmpty(t, result.Errors)
	require.Len(t, result.Chunk.Body.Statements, 2)
	second, ok := result.Chunk.Body.Statements[1].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "y", second.Pattern.Identifier.Identifier.Name.String())
}
