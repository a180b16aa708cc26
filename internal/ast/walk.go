package ast

// Children returns a node's direct children in document order. The switch is
// exhaustive over the closed node set; leaves return nil.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Program:
		return stmtNodes(v.Body)
	case *Identifier, *Literal, *TypeRef:
		return nil
	case *MemberExpression:
		return []Node{v.Object, v.Property}
	case *CallExpression:
		nodes := make([]Node, 0, len(v.Args)+1)
		nodes = append(nodes, v.Callee)
		for _, arg := range v.Args {
			nodes = append(nodes, arg)
		}

		return nodes
	case *AssignmentExpression:
		return []Node{v.Target, v.Value}
	case *BinaryExpression:
		return []Node{v.Left, v.Right}
	case *UnaryExpression:
		return []Node{v.Operand}
	case *ObjectExpression:
		nodes := make([]Node, 0, len(v.Props))
		for _, prop := range v.Props {
			nodes = append(nodes, prop)
		}

		return nodes
	case *Property:
		return []Node{v.Key, v.Value}
	case *ArrayExpression:
		return exprNodes(v.Elems)
	case *FunctionExpression:
		return functionNodes(v.Name, v.Params, v.Body)
	case *VariableDeclaration:
		nodes := make([]Node, 0, len(v.Decls))
		for _, decl := range v.Decls {
			nodes = append(nodes, decl)
		}

		return nodes
	case *VariableDeclarator:
		if v.Init == nil {
			return []Node{v.ID}
		}

		return []Node{v.ID, v.Init}
	case *ObjectPattern:
		return identNodes(v.Names)
	case *ArrayPattern:
		return identNodes(v.Names)
	case *FunctionDeclaration:
		return functionNodes(v.Name, v.Params, v.Body)
	case *ClassDeclaration:
		return []Node{v.Name, v.Body}
	case *ClassBody:
		nodes := make([]Node, 0, len(v.Methods))
		for _, method := range v.Methods {
			nodes = append(nodes, method)
		}

		return nodes
	case *MethodDefinition:
		return []Node{v.Key, v.Value}
	case *TypeAliasDeclaration:
		return []Node{v.Name, v.Type}
	case *ObjectType:
		nodes := make([]Node, 0, len(v.Props))
		for _, prop := range v.Props {
			nodes = append(nodes, prop)
		}

		return nodes
	case *ObjectTypeProperty:
		return []Node{v.Key, v.Type}
	case *BlockStatement:
		return stmtNodes(v.Body)
	case *ExpressionStatement:
		return []Node{v.Expr}
	case *ReturnStatement:
		if v.Arg == nil {
			return nil
		}

		return []Node{v.Arg}
	case *IfStatement:
		nodes := []Node{v.Test, v.Cons}
		if v.Alt != nil {
			nodes = append(nodes, v.Alt)
		}

		return nodes
	}

	return nil
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, stmt)
	}

	return nodes
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, 0, len(exprs))
	for _, expr := range exprs {
		nodes = append(nodes, expr)
	}

	return nodes
}

func identNodes(idents []*Identifier) []Node {
	nodes := make([]Node, 0, len(idents))
	for _, ident := range idents {
		nodes = append(nodes, ident)
	}

	return nodes
}

func functionNodes(name *Identifier, params []*Identifier, body *BlockStatement) []Node {
	nodes := make([]Node, 0, len(params)+2)
	if name != nil {
		nodes = append(nodes, name)
	}

	for _, param := range params {
		nodes = append(nodes, param)
	}

	return append(nodes, body)
}
