package query

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
)

// ExprEqual reports structural equality of two expression subtrees. Source
// positions are ignored; literal spelling is not (1 and 1.0 differ). Used by
// declarator filters to match initializer shapes such as specific call
// expressions.
func ExprEqual(a, b ast.Expr) bool {
	switch av := a.(type) {
	case *ast.Identifier:
		bv, ok := b.(*ast.Identifier)
		return ok && av.Name == bv.Name
	case *ast.Literal:
		bv, ok := b.(*ast.Literal)
		return ok && av.Raw == bv.Raw
	case *ast.MemberExpression:
		bv, ok := b.(*ast.MemberExpression)
		return ok && av.Computed == bv.Computed &&
			ExprEqual(av.Object, bv.Object) && ExprEqual(av.Property, bv.Property)
	case *ast.CallExpression:
		bv, ok := b.(*ast.CallExpression)
		if !ok || !ExprEqual(av.Callee, bv.Callee) || len(av.Args) != len(bv.Args) {
			return false
		}

		for i := range av.Args {
			if !ExprEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}

		return true
	case *ast.AssignmentExpression:
		bv, ok := b.(*ast.AssignmentExpression)
		return ok && ExprEqual(av.Target, bv.Target) && ExprEqual(av.Value, bv.Value)
	case *ast.BinaryExpression:
		bv, ok := b.(*ast.BinaryExpression)
		return ok && av.Op == bv.Op && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)
	case *ast.UnaryExpression:
		bv, ok := b.(*ast.UnaryExpression)
		return ok && av.Op == bv.Op && ExprEqual(av.Operand, bv.Operand)
	case *ast.ObjectExpression:
		bv, ok := b.(*ast.ObjectExpression)
		if !ok || len(av.Props) != len(bv.Props) {
			return false
		}

		for i := range av.Props {
			ap, bp := av.Props[i], bv.Props[i]
			if ap.Computed != bp.Computed || !ExprEqual(ap.Key, bp.Key) || !ExprEqual(ap.Value, bp.Value) {
				return false
			}
		}

		return true
	case *ast.ArrayExpression:
		bv, ok := b.(*ast.ArrayExpression)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}

		for i := range av.Elems {
			if !ExprEqual(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}

		return true
	case *ast.FunctionExpression:
		// Function literals compare by identity only.
		return a == b
	}

	return false
}
