// Package printer renders a syntax tree back to source text. Output is
// deterministic: two-space indentation, semicolon-terminated statements, one
// statement per line. Printing the result of a parse of printer output
// reproduces it byte for byte, which is what makes rename round-trips
// directly comparable as text.
package printer

import (
	"fmt"
	"strings"

	"lexmod.dev/pkg/lexmod/internal/ast"
)

// Print renders prog as source text.
func Print(prog *ast.Program) []byte {
	p := &printer{}
	p.stmts(prog.Body)

	return []byte(p.b.String())
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) line(s string) {
	p.b.WriteString(strings.Repeat("  ", p.indent))
	p.b.WriteString(s)
	p.b.WriteString("\n")
}

func (p *printer) stmts(body []ast.Stmt) {
	for _, stmt := range body {
		p.stmt(stmt)
	}
}

func (p *printer) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VariableDeclaration:
		decls := make([]string, 0, len(v.Decls))
		for _, d := range v.Decls {
			decls = append(decls, p.declarator(d))
		}

		p.line(v.Kind + " " + strings.Join(decls, ", ") + ";")
	case *ast.FunctionDeclaration:
		p.functionHead("function "+v.Name.Name, v.Params, v.Body)
	case *ast.ClassDeclaration:
		p.line("class " + v.Name.Name + " {")
		p.indent++

		for _, method := range v.Body.Methods {
			key := p.expr(method.Key)
			if method.Computed {
				key = "[" + key + "]"
			}

			p.functionHead(key, method.Value.Params, method.Value.Body)
		}

		p.indent--
		p.line("}")
	case *ast.TypeAliasDeclaration:
		p.line("type " + v.Name.Name + " = " + p.typeExpr(v.Type) + ";")
	case *ast.ReturnStatement:
		if v.Arg == nil {
			p.line("return;")
		} else {
			p.line("return " + p.expr(v.Arg) + ";")
		}
	case *ast.IfStatement:
		p.ifStmt(v)
	case *ast.BlockStatement:
		p.line("{")
		p.indent++
		p.stmts(v.Body)
		p.indent--
		p.line("}")
	case *ast.ExpressionStatement:
		p.line(p.expr(v.Expr) + ";")
	}
}

func (p *printer) ifStmt(v *ast.IfStatement) {
	p.line("if (" + p.expr(v.Test) + ") {")
	p.indent++
	p.stmts(v.Cons.Body)
	p.indent--

	switch alt := v.Alt.(type) {
	case nil:
		p.line("}")
	case *ast.BlockStatement:
		p.line("} else {")
		p.indent++
		p.stmts(alt.Body)
		p.indent--
		p.line("}")
	case *ast.IfStatement:
		// Render "} else if (...) {" on one line.
		p.b.WriteString(strings.Repeat("  ", p.indent))
		p.b.WriteString("} else ")

		rest := &printer{indent: p.indent}
		rest.ifStmt(alt)
		p.b.WriteString(strings.TrimLeft(rest.b.String(), " "))
	}
}

func (p *printer) functionHead(head string, params []*ast.Identifier, body *ast.BlockStatement) {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Name)
	}

	p.line(head + "(" + strings.Join(names, ", ") + ") {")
	p.indent++
	p.stmts(body.Body)
	p.indent--
	p.line("}")
}

func (p *printer) declarator(d *ast.VariableDeclarator) string {
	id := p.pattern(d.ID)
	if d.Init == nil {
		return id
	}

	return id + " = " + p.expr(d.Init)
}

func (p *printer) pattern(pat ast.Pattern) string {
	switch v := pat.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.ObjectPattern:
		return "{" + joinIdents(v.Names) + "}"
	case *ast.ArrayPattern:
		return "[" + joinIdents(v.Names) + "]"
	}

	return ""
}

func (p *printer) expr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.Literal:
		return v.Raw
	case *ast.MemberExpression:
		if v.Computed {
			return p.expr(v.Object) + "[" + p.expr(v.Property) + "]"
		}

		return p.expr(v.Object) + "." + p.expr(v.Property)
	case *ast.CallExpression:
		args := make([]string, 0, len(v.Args))
		for _, arg := range v.Args {
			args = append(args, p.expr(arg))
		}

		return p.expr(v.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *ast.AssignmentExpression:
		return p.expr(v.Target) + " = " + p.expr(v.Value)
	case *ast.BinaryExpression:
		return p.binaryOperand(v.Left) + " " + v.Op + " " + p.binaryOperand(v.Right)
	case *ast.UnaryExpression:
		return v.Op + p.binaryOperand(v.Operand)
	case *ast.ObjectExpression:
		props := make([]string, 0, len(v.Props))

		for _, prop := range v.Props {
			key := p.expr(prop.Key)
			if prop.Computed {
				key = "[" + key + "]"
			}

			props = append(props, key+": "+p.expr(prop.Value))
		}

		return "{" + strings.Join(props, ", ") + "}"
	case *ast.ArrayExpression:
		elems := make([]string, 0, len(v.Elems))
		for _, elem := range v.Elems {
			elems = append(elems, p.expr(elem))
		}

		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.FunctionExpression:
		return p.functionExpr(v)
	}

	return ""
}

// binaryOperand parenthesizes nested binary and assignment operands instead of
// reconstructing precedence, which keeps output deterministic regardless of
// how the expression was originally spelled.
func (p *printer) binaryOperand(e ast.Expr) string {
	switch e.(type) {
	case *ast.BinaryExpression, *ast.AssignmentExpression:
		return "(" + p.expr(e) + ")"
	default:
		return p.expr(e)
	}
}

func (p *printer) functionExpr(v *ast.FunctionExpression) string {
	names := make([]string, 0, len(v.Params))
	for _, param := range v.Params {
		names = append(names, param.Name)
	}

	head := "function"
	if v.Name != nil {
		head += " " + v.Name.Name
	}

	body := &printer{indent: p.indent + 1}
	body.stmts(v.Body.Body)

	closing := strings.Repeat("  ", p.indent) + "}"

	return fmt.Sprintf("%s(%s) {\n%s%s", head, strings.Join(names, ", "), body.b.String(), closing)
}

func (p *printer) typeExpr(t ast.TypeExpr) string {
	switch v := t.(type) {
	case *ast.TypeRef:
		return v.Name
	case *ast.ObjectType:
		props := make([]string, 0, len(v.Props))
		for _, prop := range v.Props {
			props = append(props, prop.Key.Name+": "+p.typeExpr(prop.Type))
		}

		return "{" + strings.Join(props, ", ") + "}"
	}

	return ""
}

func joinIdents(idents []*ast.Identifier) string {
	names := make([]string, 0, len(idents))
	for _, ident := range idents {
		names = append(names, ident.Name)
	}

	return strings.Join(names, ", ")
}
