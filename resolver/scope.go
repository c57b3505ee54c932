package resolver

import "github.com/fuse-lang/fusec/ast"

// scopeID indexes into ScopeTree.scopes. 0 is always the root.
type scopeID int

type scope struct {
	parent scopeID
	names  map[ast.Atom]ast.ReferenceID
}

// ScopeTree is an append-only arena of lexical scopes. Scope 0 is the
// root; its parent is itself, a sentinel that also marks the one scope
// that must never be popped. A cursor (current) tracks the
// currently-active scope as the resolver walks the AST.
type ScopeTree struct {
	scopes  []scope
	current scopeID
}

// NewScopeTree builds a tree containing only the root scope.
func NewScopeTree() *ScopeTree {
	t := &ScopeTree{}
	t.scopes = append(t.scopes, scope{parent: 0, names: make(map[ast.Atom]ast.ReferenceID)})
	return t
}

// Push opens a new scope as a child of the current one and makes it
// current, returning its id.
func (t *ScopeTree) Push() scopeID {
	id := scopeID(len(t.scopes))
	t.scopes = append(t.scopes, scope{parent: t.current, names: make(map[ast.Atom]ast.ReferenceID)})
	t.current = id
	return id
}

// Pop returns the cursor to the current scope's parent. Popping scope 0
// is a bug in the caller, not a recoverable condition, so it panics.
func (t *ScopeTree) Pop() {
	if t.current == 0 {
		panic("resolver: cannot pop the root scope")
	}
	t.current = t.scopes[t.current].parent
}

// Declare binds name to id in the current scope, shadowing any binding
// of the same name visible from an enclosing scope but replacing a
// same-scope binding outright (the last declaration in a scope wins,
// matching ordinary shadowing rules for redeclaration within one block).
func (t *ScopeTree) Declare(name ast.Atom, id ast.ReferenceID) {
	t.scopes[t.current].names[name] = id
}

// DeclareIn binds name to id in a specific scope rather than the
// current one, used for `global` declarations that must land in a
// fixed scope regardless of lexical nesting.
func (t *ScopeTree) DeclareIn(id scopeID, name ast.Atom, ref ast.ReferenceID) {
	t.scopes[id].names[name] = ref
}

// Lookup walks from the current scope up through parents, returning the
// first binding found for name. ok is false if no enclosing scope binds
// the name.
func (t *ScopeTree) Lookup(name ast.Atom) (id ast.ReferenceID, ok bool) {
	cur := t.current
	for {
		if id, ok := t.scopes[cur].names[name]; ok {
			return id, true
		}
		if cur == 0 {
			return 0, false
		}
		cur = t.scopes[cur].parent
	}
}

// Current returns the id of the scope currently active.
func (t *ScopeTree) Current() scopeID { return t.current }

// Depth reports how many scopes have ever been pushed, including the
// root; popped scopes stay in the arena and are still counted.
func (t *ScopeTree) Depth() int { return len(t.scopes) }
