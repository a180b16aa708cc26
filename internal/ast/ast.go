// Package ast defines the syntax tree for the JavaScript subset lexmod
// transforms. The node set is closed: every consumer switches exhaustively
// over these types, so a syntactic position (property key vs. value, computed
// vs. non-computed) is always an explicit field rather than something inferred
// from node shape at check time.
package ast

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

// Node is implemented by every syntax tree element.
type Node interface{ node() }

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// Pattern is a binding target: a plain identifier or a destructuring pattern.
type Pattern interface {
	Node
	pattern()
}

// TypeExpr is the right-hand side of a type alias.
type TypeExpr interface {
	Node
	typeExpr()
}

// Program is the root of a parsed script.
type Program struct {
	Body []Stmt
}

func (*Program) node() {}

/*** EXPRESSIONS ***/

// Identifier is a name occurrence. Whether it denotes a variable reference
// depends entirely on its syntactic position; see the engine package.
type Identifier struct {
	Name string
	Pos  Pos
}

func (*Identifier) node()    {}
func (*Identifier) expr()    {}
func (*Identifier) pattern() {}

// Literal is a number, string, boolean or null literal. Raw preserves the
// source spelling, including string quotes.
type Literal struct {
	Raw string
	Pos Pos
}

func (*Literal) node() {}
func (*Literal) expr() {}

// MemberExpression is obj.prop (Computed false) or obj[expr] (Computed true).
// Only the non-computed form places its property identifier in a name-only
// position.
type MemberExpression struct {
	Object   Expr
	Property Expr
	Computed bool
}

func (*MemberExpression) node() {}
func (*MemberExpression) expr() {}

// CallExpression is callee(args...).
type CallExpression struct {
	Callee Expr
	Args   []Expr
}

func (*CallExpression) node() {}
func (*CallExpression) expr() {}

// AssignmentExpression is target = value.
type AssignmentExpression struct {
	Target Expr
	Value  Expr
}

func (*AssignmentExpression) node() {}
func (*AssignmentExpression) expr() {}

// BinaryExpression is left op right.
type BinaryExpression struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpression) node() {}
func (*BinaryExpression) expr() {}

// UnaryExpression is op operand (!x, -x).
type UnaryExpression struct {
	Op      string
	Operand Expr
}

func (*UnaryExpression) node() {}
func (*UnaryExpression) expr() {}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	Props []*Property
}

func (*ObjectExpression) node() {}
func (*ObjectExpression) expr() {}

// Property is a single key: value pair in an object literal. A non-computed
// key identifier is a label, not a variable reference; a computed key ([k])
// is an ordinary expression.
type Property struct {
	Key      Expr
	Value    Expr
	Computed bool
}

func (*Property) node() {}

// ArrayExpression is an array literal.
type ArrayExpression struct {
	Elems []Expr
}

func (*ArrayExpression) node() {}
func (*ArrayExpression) expr() {}

// FunctionExpression is an anonymous or named function literal. It anchors a
// lexical scope of its own.
type FunctionExpression struct {
	Name   *Identifier // nil when anonymous
	Params []*Identifier
	Body   *BlockStatement
}

func (*FunctionExpression) node() {}
func (*FunctionExpression) expr() {}

/*** STATEMENTS & DECLARATIONS ***/

// VariableDeclaration is one declaration statement holding one or more
// declarators: var x = 1, y = 2;
type VariableDeclaration struct {
	Kind  string // "var", "let" or "const"
	Decls []*VariableDeclarator
}

func (*VariableDeclaration) node() {}
func (*VariableDeclaration) stmt() {}

// VariableDeclarator binds one pattern to an optional initializer.
type VariableDeclarator struct {
	ID   Pattern
	Init Expr // nil when absent
}

func (*VariableDeclarator) node() {}

// ObjectPattern is shorthand object destructuring: var {a, b} = expr.
type ObjectPattern struct {
	Names []*Identifier
}

func (*ObjectPattern) node()    {}
func (*ObjectPattern) pattern() {}

// ArrayPattern is array destructuring: var [a, b] = expr.
type ArrayPattern struct {
	Names []*Identifier
}

func (*ArrayPattern) node()    {}
func (*ArrayPattern) pattern() {}

// FunctionDeclaration declares a named function. It anchors a lexical scope;
// its name is bound in the enclosing scope.
type FunctionDeclaration struct {
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (*FunctionDeclaration) node() {}
func (*FunctionDeclaration) stmt() {}

// ClassDeclaration declares a named class.
type ClassDeclaration struct {
	Name *Identifier
	Body *ClassBody
}

func (*ClassDeclaration) node() {}
func (*ClassDeclaration) stmt() {}

// ClassBody holds a class's method definitions.
type ClassBody struct {
	Methods []*MethodDefinition
}

func (*ClassBody) node() {}

// MethodDefinition is one method inside a class body. A non-computed key
// identifier is a name, not a variable reference.
type MethodDefinition struct {
	Key      Expr
	Computed bool
	Value    *FunctionExpression
}

func (*MethodDefinition) node() {}

// TypeAliasDeclaration is a Flow-style alias: type T = {x: number}.
type TypeAliasDeclaration struct {
	Name *Identifier
	Type TypeExpr
}

func (*TypeAliasDeclaration) node() {}
func (*TypeAliasDeclaration) stmt() {}

// ObjectType is the structural type literal {key: Type, ...}.
type ObjectType struct {
	Props []*ObjectTypeProperty
}

func (*ObjectType) node()     {}
func (*ObjectType) typeExpr() {}

// ObjectTypeProperty is one key: Type member of an object type. The key is a
// name-only position.
type ObjectTypeProperty struct {
	Key  *Identifier
	Type TypeExpr
}

func (*ObjectTypeProperty) node() {}

// TypeRef references a named type (number, string, T). The name is stored as
// plain text: type references never participate in variable resolution.
type TypeRef struct {
	Name string
}

func (*TypeRef) node()     {}
func (*TypeRef) typeExpr() {}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Body []Stmt
}

func (*BlockStatement) node() {}
func (*BlockStatement) stmt() {}

// ExpressionStatement wraps an expression in statement position.
type ExpressionStatement struct {
	Expr Expr
}

func (*ExpressionStatement) node() {}
func (*ExpressionStatement) stmt() {}

// ReturnStatement is return [arg];
type ReturnStatement struct {
	Arg Expr // nil for a bare return
}

func (*ReturnStatement) node() {}
func (*ReturnStatement) stmt() {}

// IfStatement is if (test) cons [else alt]. Alt is a *BlockStatement, a
// nested *IfStatement, or nil.
type IfStatement struct {
	Test Expr
	Cons *BlockStatement
	Alt  Stmt
}

func (*IfStatement) node() {}
func (*IfStatement) stmt() {}
