package resolver

import (
	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/reporter"
)

// Resolver walks a Chunk produced by the parser, assigning a
// ReferenceID to every Identifier declaration and resolving every
// Identifier use against the scope it was declared in. It implements
// ast.Visitor and ast.ScopeVisitor; most node kinds fall through to the
// generic walk, and the handful that introduce bindings or scoping
// rules of their own are intercepted directly in Visit.
type Resolver struct {
	tree        *ScopeTree
	handler     reporter.Handler
	lastRef     ast.ReferenceID
	globalScope scopeID
}

// New creates a Resolver with an empty scope tree.
func New() *Resolver {
	return &Resolver{tree: NewScopeTree()}
}

// Resolve walks chunk, mutating every Identifier's reference cell in
// place. The external surface mirrors the parser's: the handler's
// accumulated errors, always empty today, since this pass never raises
// a diagnostic for an unresolved reference (see the rules in
// declare/resolveUse below) — the handler exists so a future diagnostic
// in this pass has somewhere to report into without changing this
// signature.
func Resolve(chunk *ast.Chunk) []error {
	r := New()
	r.tree.Push()
	r.globalScope = r.tree.Current()
	ast.Walk(r, chunk.Body)
	return r.handler.Errors()
}

func (r *Resolver) nextReference() ast.ReferenceID {
	r.lastRef++
	return r.lastRef
}

// declare allocates a fresh reference id, binds it in the current
// scope, and writes it into ident's reference cell.
func (r *Resolver) declare(ident *ast.Identifier) {
	id := r.nextReference()
	r.tree.Declare(ident.Name, id)
	ident.Reference.Set(id)
}

// declareGlobal is declare's counterpart for `global` bindings: the
// binding is visible from every scope, not just the one it lexically
// appears in, so it is recorded directly in the dedicated global scope
// opened once at the start of Resolve rather than the current one.
func (r *Resolver) declareGlobal(ident *ast.Identifier) {
	id := r.nextReference()
	r.tree.DeclareIn(r.globalScope, ident.Name, id)
	ident.Reference.Set(id)
}

// resolveUse looks ident up against the scope chain and records the
// match. A miss leaves the reference cell unset; this pass never raises
// an error for an unresolved name.
func (r *Resolver) resolveUse(ident *ast.Identifier) {
	if id, ok := r.tree.Lookup(ident.Name); ok {
		ident.Reference.Set(id)
	}
}

func (r *Resolver) declareBindingPattern(p *ast.BindingPattern) {
	r.declareBindingPatternWith(p, r.declare)
}

func (r *Resolver) declareBindingPatternWith(p *ast.BindingPattern, declare func(*ast.Identifier)) {
	if p == nil {
		return
	}
	if p.Kind == ast.BindingKindTuple {
		for _, elem := range p.Elements {
			r.declareBindingPatternWith(elem, declare)
		}
		return
	}
	if p.Identifier != nil {
		declare(p.Identifier.Identifier)
	}
	// p.TypeAnnotation is never visited: type names are not resolved
	// against the scope tree in this pass.
}

func (r *Resolver) declareParameters(sig *ast.FunctionSignature) {
	if sig == nil || sig.Parameters == nil {
		return
	}
	for _, param := range sig.Parameters.Items {
		r.declareBindingPattern(param.Pattern)
	}
	if sig.Parameters.Rest != nil {
		r.declare(sig.Parameters.Rest.Identifier.Identifier)
	}
}

// Visit implements ast.Visitor. The default case hands the node back to
// the generic walk; every other case fully owns its node's children and
// returns nil to suppress the default recursion.
func (r *Resolver) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		r.visitVariableDeclaration(n)
		return nil
	case *ast.FunctionDeclaration:
		r.visitFunctionDeclaration(n)
		return nil
	case *ast.Function:
		r.resolveFunctionScope(n, true)
		return nil
	case *ast.EnumDeclaration:
		r.visitEnumDeclaration(n)
		return nil
	case *ast.StructDeclaration:
		r.declare(n.Name)
		return nil
	case *ast.TraitDeclaration:
		r.declare(n.Name)
		return nil
	case *ast.ImplStatement:
		r.visitImplStatement(n)
		return nil
	case *ast.MemberExpression:
		r.visitMemberExpression(n)
		return nil
	case *ast.TableConstructionExpression:
		r.visitTableConstruction(n)
		return nil
	case *ast.Identifier:
		r.resolveUse(n)
		return nil
	default:
		return r
	}
}

// EnterScope and LeaveScope implement ast.ScopeVisitor. Since Visit
// intercepts every *ast.Function node directly, these only ever fire
// for *ast.Block in practice (if/else bodies, the chunk's own body, and
// any other bare block).
func (r *Resolver) EnterScope(node ast.Node) { r.tree.Push() }
func (r *Resolver) LeaveScope(node ast.Node) { r.tree.Pop() }

// visitVariableDeclaration declares the binding before visiting the
// initializer, so `let x = x` resolves the right-hand x against the new
// binding rather than any outer one of the same name. This mirrors the
// structure called out as an open question; it is kept rather than
// "fixed" (see DESIGN.md).
func (r *Resolver) visitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Kind == ast.VarKindGlobal {
		r.declareBindingPatternWith(n.Pattern, r.declareGlobal)
	} else {
		r.declareBindingPattern(n.Pattern)
	}
	if n.Init != nil {
		ast.Walk(r, n.Init)
	}
}

// visitFunctionDeclaration declares the function's name in the
// enclosing scope, then opens a nested scope for its parameters and
// body. The name is declared here, in the scope active before the new
// one opens, rather than inside resolveFunctionScope.
func (r *Resolver) visitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Function.Name != nil {
		r.declare(n.Function.Name)
	}
	r.resolveFunctionScope(n.Function, false)
}

// resolveFunctionScope opens the scope belonging to fn's parameters and
// body. declareNameLocally controls whether fn.Name (when present) is
// declared inside that new scope: true for a bare function expression
// or impl method, where a name serves only as a self-recursion handle
// local to the function; false when the caller has already declared the
// name one scope up (a FunctionDeclaration).
func (r *Resolver) resolveFunctionScope(fn *ast.Function, declareNameLocally bool) {
	r.tree.Push()
	if declareNameLocally && fn.Name != nil {
		r.declare(fn.Name)
	}
	r.declareParameters(fn.Signature)
	if fn.Body != nil {
		ast.Walk(r, fn.Body.Block)
	}
	r.tree.Pop()
}

// visitEnumDeclaration resolves Open Question #2 by declaring the enum's
// own name in the enclosing scope. Variant names and struct-shaped
// variant field names are record labels, not scope-visible bindings, and
// are never declared or resolved — matching how a plain struct field
// name is treated. Variant discriminant expressions do get a nested
// scope, since unlike field names they can reference other identifiers.
func (r *Resolver) visitEnumDeclaration(n *ast.EnumDeclaration) {
	r.declare(n.Name)
	r.tree.Push()
	for _, variant := range n.Variants {
		if variant.Value != nil {
			ast.Walk(r, variant.Value)
		}
	}
	r.tree.Pop()
}

// visitImplStatement resolves the trait and target names as ordinary
// uses (they must already be declared, by a TraitDeclaration/
// StructDeclaration elsewhere), then resolves each method body in its
// own function scope. This answers Open Question #3: `impl Trait for T`
// is fully supported, on equal footing with a plain `impl T`.
func (r *Resolver) visitImplStatement(n *ast.ImplStatement) {
	if n.Trait != nil {
		r.resolveUse(n.Trait)
	}
	r.resolveUse(n.Target)
	for _, m := range n.Methods {
		r.resolveFunctionScope(m.Function, true)
	}
}

// visitMemberExpression resolves only the left-hand side. The
// right-hand side is a member-name chain, never resolved against the
// scope tree in this pass — but argument lists of calls hanging off
// that chain hold ordinary expressions and are walked normally.
func (r *Resolver) visitMemberExpression(n *ast.MemberExpression) {
	ast.Walk(r, n.LHS)
	r.resolveMemberRHS(n.RHS)
}

func (r *Resolver) resolveMemberRHS(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.MemberExpression:
		r.resolveMemberRHS(e.LHS)
		r.resolveMemberRHS(e.RHS)
	case *ast.CallExpression:
		r.resolveMemberRHS(e.Callee)
		for _, arg := range e.Arguments {
			ast.Walk(r, arg)
		}
	case *ast.Identifier, *ast.NumberLiteral:
		// field names and tuple indices stay unresolved
	default:
		ast.Walk(r, expr)
	}
}

// visitTableConstruction resolves field values and spread elements but
// never the keys of `key: value` fields, which are record labels like a
// member expression's right-hand side.
func (r *Resolver) visitTableConstruction(n *ast.TableConstructionExpression) {
	for _, f := range n.Fields {
		switch field := f.(type) {
		case ast.ExpressionConstructionField:
			ast.Walk(r, field.Expression)
		case *ast.KeyValueArgument:
			ast.Walk(r, field.Value)
		case *ast.SpreadArgument:
			ast.Walk(r, field.Element)
		}
	}
}
