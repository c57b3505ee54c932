package ast

// Visitor is implemented by anything that walks the AST. Visit is called
// once per node; if it returns a non-nil Visitor, Walk recurses into the
// node's children using that (possibly different) visitor. Returning nil
// stops descent into that subtree.
type Visitor interface {
	Visit(node Node) Visitor
}

// BeforeVisitor is an optional extension: Before runs before Visit and
// may veto descent outright by returning false.
type BeforeVisitor interface {
	Before(node Node) bool
}

// AfterVisitor is an optional extension: After runs once a node and all
// of its children have been walked.
type AfterVisitor interface {
	After(node Node)
}

// ScopeVisitor is an optional extension used by the resolver. EnterScope
// fires before a scope-introducing node's children are walked;
// LeaveScope fires after. Block and Function are the only scope-
// introducing node kinds.
type ScopeVisitor interface {
	EnterScope(node Node)
	LeaveScope(node Node)
}

// Walk performs a depth-first traversal of node, dispatching to v at
// every step. It is safe to call with a nil node, in which case it is a
// no-op.
func Walk(v Visitor, node Node) {
	if v == nil || node == nil || isNilNode(node) {
		return
	}
	if bv, ok := v.(BeforeVisitor); ok {
		if !bv.Before(node) {
			return
		}
	}
	next := v.Visit(node)
	if next != nil {
		walkChildren(next, node)
	}
	if av, ok := v.(AfterVisitor); ok {
		av.After(node)
	}
}

func walkChildren(v Visitor, node Node) {
	switch n := node.(type) {
	case *Chunk:
		Walk(v, n.Body)

	case *Block:
		enterScope(v, n)
		for _, s := range n.Statements {
			Walk(v, s)
		}
		leaveScope(v, n)

	case *EmptyStatement:
		// leaf

	case *ExpressionStatement:
		Walk(v, n.Expression)

	case *VariableDeclaration:
		walkBindingPattern(v, n.Pattern)
		if n.Init != nil {
			Walk(v, n.Init)
		}

	case *FunctionDeclaration:
		Walk(v, n.Function)

	case *EnumDeclaration:
		Walk(v, n.Name)
		for _, variant := range n.Variants {
			Walk(v, variant.Name)
			if variant.Value != nil {
				Walk(v, variant.Value)
			}
			for _, f := range variant.Fields {
				walkStructField(v, f)
			}
		}

	case *StructDeclaration:
		Walk(v, n.Name)
		for _, f := range n.Fields {
			walkStructField(v, f)
		}

	case *TraitDeclaration:
		Walk(v, n.Name)
		for _, m := range n.Methods {
			Walk(v, m.Name)
			walkFunctionSignature(v, m.Signature)
		}

	case *ImplStatement:
		if n.Trait != nil {
			Walk(v, n.Trait)
		}
		Walk(v, n.Target)
		for _, m := range n.Methods {
			Walk(v, m.Function)
		}

	case *Identifier:
		// leaf

	case *NumberLiteral:
		// leaf

	case *BooleanLiteral:
		// leaf

	case *StringLiteral:
		for _, seg := range n.Segments {
			if interp, ok := seg.(*InterpolatedStringSegment); ok {
				Walk(v, interp.Expression)
			}
		}

	case *UnaryOperator:
		Walk(v, n.Expression)

	case *BinaryOperator:
		Walk(v, n.LHS)
		Walk(v, n.RHS)

	case *ArrayExpression:
		for _, el := range n.Elements {
			switch e := el.(type) {
			case ExpressionArrayElement:
				Walk(v, e.Expression)
			case *SpreadArgument:
				Walk(v, e.Element)
			}
		}

	case *TupleExpression:
		for _, el := range n.Elements {
			switch e := el.(type) {
			case ExpressionTupleElement:
				Walk(v, e.Expression)
			case *SpreadArgument:
				Walk(v, e.Element)
			}
		}

	case *ParenthesizedExpression:
		Walk(v, n.Expression)

	case *CallExpression:
		Walk(v, n.Callee)
		for _, arg := range n.Arguments {
			Walk(v, arg)
		}

	case *MemberExpression:
		Walk(v, n.LHS)
		Walk(v, n.RHS)

	case *TableConstructionExpression:
		for _, f := range n.Fields {
			walkConstructionField(v, f)
		}

	case *StructConstructionExpression:
		Walk(v, n.Target)
		Walk(v, n.Construction)

	case *Function:
		enterScope(v, n)
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkFunctionSignature(v, n.Signature)
		if n.Body != nil {
			Walk(v, n.Body.Block)
		}
		leaveScope(v, n)

	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Body)
		switch e := n.Else.(type) {
		case ElseIf:
			Walk(v, e.If)
		case ElseBlock:
			Walk(v, e.Block)
		}
	}
}

func walkBindingPattern(v Visitor, p *BindingPattern) {
	if p == nil {
		return
	}
	if p.Kind == BindingKindTuple {
		for _, elem := range p.Elements {
			walkBindingPattern(v, elem)
		}
		return
	}
	if p.Identifier != nil {
		Walk(v, p.Identifier.Identifier)
	}
	if p.TypeAnnotation != nil {
		Walk(v, p.TypeAnnotation.Identifier)
	}
}

func walkFunctionSignature(v Visitor, sig *FunctionSignature) {
	if sig == nil {
		return
	}
	if sig.Parameters != nil {
		for _, param := range sig.Parameters.Items {
			walkBindingPattern(v, param.Pattern)
		}
		if sig.Parameters.Rest != nil {
			Walk(v, sig.Parameters.Rest.Identifier.Identifier)
		}
	}
	if sig.ReturnType != nil {
		Walk(v, sig.ReturnType.Identifier)
	}
}

func walkStructField(v Visitor, f *StructField) {
	if f == nil {
		return
	}
	Walk(v, f.Name)
	if f.TypeAnnotation != nil {
		Walk(v, f.TypeAnnotation.Identifier)
	}
}

func walkConstructionField(v Visitor, f ConstructionField) {
	switch field := f.(type) {
	case ExpressionConstructionField:
		Walk(v, field.Expression)
	case *KeyValueArgument:
		Walk(v, field.Key)
		Walk(v, field.Value)
	case *SpreadArgument:
		Walk(v, field.Element)
	}
}

func enterScope(v Visitor, node Node) {
	if sv, ok := v.(ScopeVisitor); ok {
		sv.EnterScope(node)
	}
}

func leaveScope(v Visitor, node Node) {
	if sv, ok := v.(ScopeVisitor); ok {
		sv.LeaveScope(node)
	}
}

// isNilNode reports whether node holds a typed nil pointer, which would
// otherwise satisfy the node != nil check in Walk and then panic on
// dereference.
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *Chunk:
		return n == nil
	case *Block:
		return n == nil
	case *EmptyStatement:
		return n == nil
	case *ExpressionStatement:
		return n == nil
	case *VariableDeclaration:
		return n == nil
	case *FunctionDeclaration:
		return n == nil
	case *EnumDeclaration:
		return n == nil
	case *StructDeclaration:
		return n == nil
	case *TraitDeclaration:
		return n == nil
	case *ImplStatement:
		return n == nil
	case *Identifier:
		return n == nil
	case *NumberLiteral:
		return n == nil
	case *BooleanLiteral:
		return n == nil
	case *StringLiteral:
		return n == nil
	case *UnaryOperator:
		return n == nil
	case *BinaryOperator:
		return n == nil
	case *ArrayExpression:
		return n == nil
	case *TupleExpression:
		return n == nil
	case *ParenthesizedExpression:
		return n == nil
	case *CallExpression:
		return n == nil
	case *MemberExpression:
		return n == nil
	case *TableConstructionExpression:
		return n == nil
	case *StructConstructionExpression:
		return n == nil
	case *Function:
		return n == nil
	case *If:
		return n == nil
	default:
		return false
	}
}
