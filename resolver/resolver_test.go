package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/parser"
)

// identVisitor collects every *ast.Identifier encountered, in walk order,
// keyed by its spelling. Every occurrence of a repeated name is kept, in
// walk order, so tests index into the slice to pick a specific one.
type identVisitor struct {
	byName map[string][]*ast.Identifier
}

func (v *identVisitor) Visit(node ast.Node) ast.Visitor {
	if ident, ok := node.(*ast.Identifier); ok {
		v.byName[ident.Name.String()] = append(v.byName[ident.Name.String()], ident)
	}
	return v
}

func collectIdentifiers(t *testing.T, chunk *ast.Chunk) map[string][]*ast.Identifier {
	t.Helper()
	v := &identVisitor{byName: make(map[string][]*ast.Identifier)}
	ast.Walk(v, chunk.Body)
	return v.byName
}

func parseAndResolve(t *testing.T, source string) *ast.Chunk {
	t.Helper()
	result := parser.Parse(source)
	require.False(t, result.Panicked, "parse panicked: %v", result.Errors)
	require.Empty(t, result.Errors)
	errs := Resolve(result.Chunk)
	require.Empty(t, errs)
	return result.Chunk
}

func refID(t *testing.T, ident *ast.Identifier) ast.ReferenceID {
	t.Helper()
	id, ok := ident.Reference.Get()
	require.True(t, ok, "expected %s to be resolved", ident.Name.String())
	return id
}

func TestResolverSharesReferenceBetweenDeclarationAndUse(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, "let x = 1; x")
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["x"], 2)

	declID := refID(t, idents["x"][0])
	useID := refID(t, idents["x"][1])
	require.Equal(t, declID, useID)
}

func TestResolverInitializerSeesItsOwnBinding(t *testing.T) {
	t.Parallel()

	// "let x = x" declares x before visiting the initializer, so the
	// right-hand x resolves to the new binding rather than any outer one.
	chunk := parseAndResolve(t, "let x = 1; let x = x")
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["x"], 3)

	secondDeclID := refID(t, idents["x"][1])
	initUseID := refID(t, idents["x"][2])
	require.Equal(t, secondDeclID, initUseID)

	firstDeclID := refID(t, idents["x"][0])
	require.NotEqual(t, firstDeclID, secondDeclID)
}

func TestResolverBlockScopeShadowing(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
let x = 1
if true then
  let x = 2
  x
end
x
`)
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["x"], 4)

	outerDecl := refID(t, idents["x"][0])
	innerDecl := refID(t, idents["x"][1])
	innerUse := refID(t, idents["x"][2])
	outerUse := refID(t, idents["x"][3])

	require.NotEqual(t, outerDecl, innerDecl)
	require.Equal(t, innerDecl, innerUse)
	require.Equal(t, outerDecl, outerUse)
}

func TestResolverFunctionParametersScopedToBody(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, "function add(a, b) => a + b")
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["a"], 2)
	require.Len(t, idents["b"], 2)

	require.Equal(t, refID(t, idents["a"][0]), refID(t, idents["a"][1]))
	require.Equal(t, refID(t, idents["b"][0]), refID(t, idents["b"][1]))
}

func TestResolverGlobalBindsAcrossFunctionScopes(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
function setup()
  global counter = 0
end

function read()
  counter
end
`)
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["counter"], 2)
	require.Equal(t, refID(t, idents["counter"][0]), refID(t, idents["counter"][1]))
}

func TestResolverUnresolvedIdentifierLeavesReferenceUnset(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, "undeclared")
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["undeclared"], 1)

	_, ok := idents["undeclared"][0].Reference.Get()
	require.False(t, ok)
}

func TestResolverImplTraitForTargetResolvesBothNames(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
trait Greeter
  function greet() -> String
end

struct Person
  name: String
end

impl Greeter for Person
  function greet() => self
end
`)
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["Greeter"], 2)
	require.Len(t, idents["Person"], 2)

	require.Equal(t, refID(t, idents["Greeter"][0]), refID(t, idents["Greeter"][1]))
	require.Equal(t, refID(t, idents["Person"][0]), refID(t, idents["Person"][1]))
}

func TestResolverEnumNameDeclaredVariantNamesAreNotResolved(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
let base = 10
enum Shape
  Circle = base,
  Square = base
end
`)
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["Shape"], 1)
	refID(t, idents["Shape"][0])
	// Variant names are record labels: the generic walk still visits them
	// as Identifier nodes, but the resolver never declares or resolves
	// them, so their reference cell stays unset.
	require.Len(t, idents["Circle"], 1)
	_, circleResolved := idents["Circle"][0].Reference.Get()
	require.False(t, circleResolved)

	require.Len(t, idents["base"], 3)
	declID := refID(t, idents["base"][0])
	require.Equal(t, declID, refID(t, idents["base"][1]))
	require.Equal(t, declID, refID(t, idents["base"][2]))
}

func TestResolverMemberCallArgumentsAreResolved(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, "let a = 1; let x = 2; a.b(x)")
	idents := collectIdentifiers(t, chunk)

	require.Len(t, idents["a"], 2)
	require.Equal(t, refID(t, idents["a"][0]), refID(t, idents["a"][1]))

	// The call's argument is an ordinary expression even though the call
	// hangs off a member chain; the member name itself stays a label.
	require.Len(t, idents["x"], 2)
	require.Equal(t, refID(t, idents["x"][0]), refID(t, idents["x"][1]))

	require.Len(t, idents["b"], 1)
	_, bResolved := idents["b"][0].Reference.Get()
	require.False(t, bResolved)
}

func TestResolverConstructionKeysAreNotResolved(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
struct Point
  x: Number
end
let x = 1
let p = Point { x: x }
`)
	idents := collectIdentifiers(t, chunk)
	// Occurrences of "x" in walk order: the struct field label, the let
	// binding, the construction key, the construction value.
	require.Len(t, idents["x"], 4)

	declID := refID(t, idents["x"][1])

	_, keyResolved := idents["x"][2].Reference.Get()
	require.False(t, keyResolved, "construction keys are labels, not uses")

	require.Equal(t, declID, refID(t, idents["x"][3]))
}

func TestResolverStructFieldNamesAreNotResolved(t *testing.T) {
	t.Parallel()

	chunk := parseAndResolve(t, `
struct Point
  x: Number,
  y: Number
end
`)
	idents := collectIdentifiers(t, chunk)
	require.Len(t, idents["Point"], 1)
	require.Len(t, idents["x"], 1)
	_, xResolved := idents["x"][0].Reference.Get()
	require.False(t, xResolved)
}
