// Package parser turns script source into the ast package's syntax tree.
// It covers the JavaScript subset lexmod transforms: var/let/const
// declarations (including shorthand destructuring), functions, classes,
// Flow-style type aliases, and ordinary expression statements.
package parser

import (
	"fmt"

	"lexmod.dev/pkg/lexmod/internal/ast"
)

// Parser is a recursive-descent parser over the lexer's token stream.
type Parser struct {
	lx  *Lexer
	tok Token
	err error
}

// New creates a parser for src. The first token is pre-read.
func New(src string) *Parser {
	p := &Parser{lx: NewLexer(src)}
	p.next()

	return p
}

// Parse is a convenience wrapper: parse src into a Program.
func Parse(src string) (*ast.Program, error) {
	return New(src).ParseProgram()
}

func (p *Parser) next() {
	if p.err != nil {
		return
	}

	tok, err := p.lx.Next()
	if err != nil {
		p.err = err
		return
	}

	p.tok = tok
}

func (p *Parser) at(k TokKind) bool { return p.tok.Kind == k }

func (p *Parser) accept(k TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}

	return false
}

func (p *Parser) expect(k TokKind) (Token, error) {
	if p.err != nil {
		return Token{}, p.err
	}

	if !p.at(k) {
		return p.tok, fmt.Errorf("expected %v, got %v at %d:%d", k, p.tok.Kind, p.tok.Line, p.tok.Col)
	}

	t := p.tok
	p.next()

	return t, nil
}

// The subset treats semicolons as optional statement terminators: one is
// consumed when present, and a following '}' or EOF also closes a statement.
func (p *Parser) terminate() error {
	if p.accept(TokSemi) || p.at(TokRBrace) || p.at(TokEOF) {
		return nil
	}

	return fmt.Errorf("expected ';', got %v at %d:%d", p.tok.Kind, p.tok.Line, p.tok.Col)
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.tok.Line, Column: p.tok.Col}
}

// ParseProgram parses the whole input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for !p.at(TokEOF) {
		if p.err != nil {
			return nil, p.err
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		prog.Body = append(prog.Body, stmt)
	}

	if p.err != nil {
		return nil, p.err
	}

	return prog, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case TokVar, TokLet, TokConst:
		return p.parseVarDecl()
	case TokFunction:
		return p.parseFunctionDecl()
	case TokClass:
		return p.parseClassDecl()
	case TokType:
		return p.parseTypeAlias()
	case TokReturn:
		return p.parseReturn()
	case TokIf:
		return p.parseIf()
	case TokLBrace:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDecl() (*ast.VariableDeclaration, error) {
	kind := p.tok.Lex
	p.next()

	decl := &ast.VariableDeclaration{Kind: kind}

	for {
		d, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}

		decl.Decls = append(decl.Decls, d)

		if !p.accept(TokComma) {
			break
		}
	}

	if err := p.terminate(); err != nil {
		return nil, err
	}

	return decl, nil
}

func (p *Parser) parseDeclarator() (*ast.VariableDeclarator, error) {
	id, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	d := &ast.VariableDeclarator{ID: id}

	if p.accept(TokAssign) {
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		d.Init = init
	}

	return d, nil
}

func (p *Parser) parsePattern() (ast.Pattern, error) {
	switch p.tok.Kind {
	case TokLBrace:
		p.next()

		pat := &ast.ObjectPattern{}

		for !p.at(TokRBrace) {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			pat.Names = append(pat.Names, name)

			if !p.accept(TokComma) {
				break
			}
		}

		if _, err := p.expect(TokRBrace); err != nil {
			return nil, err
		}

		return pat, nil
	case TokLBrack:
		p.next()

		pat := &ast.ArrayPattern{}

		for !p.at(TokRBrack) {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			pat.Names = append(pat.Names, name)

			if !p.accept(TokComma) {
				break
			}
		}

		if _, err := p.expect(TokRBrack); err != nil {
			return nil, err
		}

		return pat, nil
	default:
		return p.parseIdent()
	}
}

func (p *Parser) parseIdent() (*ast.Identifier, error) {
	pos := p.pos()

	tok, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}

	return &ast.Identifier{Name: tok.Lex, Pos: pos}, nil
}

func (p *Parser) parseFunctionDecl() (*ast.FunctionDeclaration, error) {
	p.next() // function

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	params, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseFunctionRest() ([]*ast.Identifier, *ast.BlockStatement, error) {
	if _, err := p.expect(TokLParen); err != nil {
		return nil, nil, err
	}

	var params []*ast.Identifier

	for !p.at(TokRParen) {
		param, err := p.parseIdent()
		if err != nil {
			return nil, nil, err
		}

		params = append(params, param)

		if !p.accept(TokComma) {
			break
		}
	}

	if _, err := p.expect(TokRParen); err != nil {
		return nil, nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}

	return params, body, nil
}

func (p *Parser) parseClassDecl() (*ast.ClassDeclaration, error) {
	p.next() // class

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokLBrace); err != nil {
		return nil, err
	}

	body := &ast.ClassBody{}

	for !p.at(TokRBrace) {
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}

		body.Methods = append(body.Methods, method)
	}

	if _, err := p.expect(TokRBrace); err != nil {
		return nil, err
	}

	return &ast.ClassDeclaration{Name: name, Body: body}, nil
}

func (p *Parser) parseMethod() (*ast.MethodDefinition, error) {
	method := &ast.MethodDefinition{}

	if p.accept(TokLBrack) {
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(TokRBrack); err != nil {
			return nil, err
		}

		method.Key = key
		method.Computed = true
	} else {
		key, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		method.Key = key
	}

	params, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}

	method.Value = &ast.FunctionExpression{Params: params, Body: body}

	return method, nil
}

func (p *Parser) parseTypeAlias() (*ast.TypeAliasDeclaration, error) {
	p.next() // type

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokAssign); err != nil {
		return nil, err
	}

	typ, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}

	if err := p.terminate(); err != nil {
		return nil, err
	}

	return &ast.TypeAliasDeclaration{Name: name, Type: typ}, nil
}

func (p *Parser) parseTypeExpr() (ast.TypeExpr, error) {
	if p.accept(TokLBrace) {
		obj := &ast.ObjectType{}

		for !p.at(TokRBrace) {
			key, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(TokColon); err != nil {
				return nil, err
			}

			typ, err := p.parseTypeExpr()
			if err != nil {
				return nil, err
			}

			obj.Props = append(obj.Props, &ast.ObjectTypeProperty{Key: key, Type: typ})

			if !p.accept(TokComma) {
				break
			}
		}

		if _, err := p.expect(TokRBrace); err != nil {
			return nil, err
		}

		return obj, nil
	}

	tok, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}

	return &ast.TypeRef{Name: tok.Lex}, nil
}

func (p *Parser) parseReturn() (*ast.ReturnStatement, error) {
	p.next() // return

	stmt := &ast.ReturnStatement{}

	if !p.at(TokSemi) && !p.at(TokRBrace) && !p.at(TokEOF) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		stmt.Arg = arg
	}

	if err := p.terminate(); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseIf() (*ast.IfStatement, error) {
	p.next() // if

	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}

	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}

	cons, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Test: test, Cons: cons}

	if p.accept(TokElse) {
		if p.at(TokIf) {
			alt, err := p.parseIf()
			if err != nil {
				return nil, err
			}

			stmt.Alt = alt
		} else {
			alt, err := p.parseBlock()
			if err != nil {
				return nil, err
			}

			stmt.Alt = alt
		}
	}

	return stmt, nil
}

func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	if _, err := p.expect(TokLBrace); err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{}

	for !p.at(TokRBrace) {
		if p.at(TokEOF) {
			return nil, fmt.Errorf("unexpected end of input, unclosed block")
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		block.Body = append(block.Body, stmt)
	}

	p.next() // }

	return block, nil
}

func (p *Parser) parseExprStmt() (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.terminate(); err != nil {
		return nil, err
	}

	return &ast.ExpressionStatement{Expr: expr}, nil
}

/*** EXPRESSIONS ***/

func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	if p.accept(TokAssign) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		switch left.(type) {
		case *ast.Identifier, *ast.MemberExpression:
			return &ast.AssignmentExpression{Target: left, Value: value}, nil
		default:
			return nil, fmt.Errorf("invalid assignment target at %d:%d", p.tok.Line, p.tok.Col)
		}
	}

	return left, nil
}

// Binary operator precedence, loosest first.
var binaryPrec = []map[TokKind]string{
	{TokOrOr: "||"},
	{TokAndAnd: "&&"},
	{TokEq: "==", TokStrictEq: "===", TokNe: "!=", TokStrictNe: "!=="},
	{TokLt: "<", TokLe: "<=", TokGt: ">", TokGe: ">="},
	{TokPlus: "+", TokMinus: "-"},
	{TokStar: "*", TokSlash: "/", TokPercent: "%"},
}

func (p *Parser) parseBinary(level int) (ast.Expr, error) {
	if level >= len(binaryPrec) {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryPrec[level][p.tok.Kind]
		if !ok {
			return left, nil
		}

		p.next()

		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.tok.Kind {
	case TokBang, TokMinus:
		op := p.tok.Lex
		p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryExpression{Op: op, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.accept(TokDot):
			prop, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			expr = &ast.MemberExpression{Object: expr, Property: prop}
		case p.accept(TokLBrack):
			prop, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(TokRBrack); err != nil {
				return nil, err
			}

			expr = &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
		case p.accept(TokLParen):
			call := &ast.CallExpression{Callee: expr}

			for !p.at(TokRParen) {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}

				call.Args = append(call.Args, arg)

				if !p.accept(TokComma) {
					break
				}
			}

			if _, err := p.expect(TokRParen); err != nil {
				return nil, err
			}

			expr = call
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	pos := p.pos()

	switch p.tok.Kind {
	case TokIdent:
		tok := p.tok
		p.next()

		return &ast.Identifier{Name: tok.Lex, Pos: pos}, nil
	case TokNumber, TokString, TokTrue, TokFalse, TokNull:
		tok := p.tok
		p.next()

		return &ast.Literal{Raw: tok.Lex, Pos: pos}, nil
	case TokFunction:
		return p.parseFunctionExpr()
	case TokLBrace:
		return p.parseObjectLiteral()
	case TokLBrack:
		return p.parseArrayLiteral()
	case TokLParen:
		p.next()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return nil, fmt.Errorf("unexpected %v at %d:%d", p.tok.Kind, p.tok.Line, p.tok.Col)
}

func (p *Parser) parseFunctionExpr() (*ast.FunctionExpression, error) {
	p.next() // function

	fn := &ast.FunctionExpression{}

	if p.at(TokIdent) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		fn.Name = name
	}

	params, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}

	fn.Params = params
	fn.Body = body

	return fn, nil
}

func (p *Parser) parseObjectLiteral() (*ast.ObjectExpression, error) {
	p.next() // {

	obj := &ast.ObjectExpression{}

	for !p.at(TokRBrace) {
		prop := &ast.Property{}

		switch {
		case p.accept(TokLBrack):
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(TokRBrack); err != nil {
				return nil, err
			}

			prop.Key = key
			prop.Computed = true
		case p.at(TokString):
			prop.Key = &ast.Literal{Raw: p.tok.Lex, Pos: p.pos()}
			p.next()
		default:
			key, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			prop.Key = key
		}

		if _, err := p.expect(TokColon); err != nil {
			return nil, err
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		prop.Value = value
		obj.Props = append(obj.Props, prop)

		if !p.accept(TokComma) {
			break
		}
	}

	if _, err := p.expect(TokRBrace); err != nil {
		return nil, err
	}

	return obj, nil
}

func (p *Parser) parseArrayLiteral() (*ast.ArrayExpression, error) {
	p.next() // [

	arr := &ast.ArrayExpression{}

	for !p.at(TokRBrack) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		arr.Elems = append(arr.Elems, elem)

		if !p.accept(TokComma) {
			break
		}
	}

	if _, err := p.expect(TokRBrack); err != nil {
		return nil, err
	}

	return arr, nil
}
