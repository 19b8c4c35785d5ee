/*
File    : tiny-c-compiler/internal/ast/ast.go
Author  : Ryan Tobin
*/

// Package ast defines the tagged-tree node types the parser builds and
// the semantic analyzer annotates with types.
//
// Every node kind is a distinct Go struct implementing the Node
// interface (and one of Decl, Stmt, Expr). Recursive children are owned
// directly — destroying a root destroys every descendant exactly once,
// and no subtree is ever shared between two parents. Every Expr carries
// a mutable Type field that starts as ast.Unknown and is filled in by
// the semantic analyzer; codegen and later passes only ever read it.
package ast

import "github.com/ryan-tobin/tiny-c-compiler/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Decl is a top-level declaration: a FunctionDecl or a VariableDecl.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a function body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression. Type holds the data type the semantic analyzer
// inferred for it; it is ast.Unknown until analysis runs.
type Expr interface {
	Node
	exprNode()
	Type() DataType
	SetType(DataType)
}

type base struct{ pos token.Position }

func (b base) Pos() token.Position { return b.pos }

type exprBase struct {
	base
	typ DataType
}

func (e *exprBase) Type() DataType     { return e.typ }
func (e *exprBase) SetType(t DataType) { e.typ = t }

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Parameter is one entry in a FunctionDecl's parameter list.
type Parameter struct {
	base
	Type DataType
	Name string
}

// NewParameter builds a Parameter at pos.
func NewParameter(typ DataType, name string, pos token.Position) *Parameter {
	return &Parameter{base: base{pos}, Type: typ, Name: name}
}

// FunctionDecl declares (and optionally defines) a function. Body is nil
// for a prototype.
type FunctionDecl struct {
	base
	ReturnType DataType
	Name       string
	Params     []*Parameter
	Body       *CompoundStmt // nil => prototype
}

func (*FunctionDecl) declNode() {}

// NewFunctionDecl constructs a FunctionDecl prototype (Body nil); the
// caller fills in Body after parsing it, if one follows.
func NewFunctionDecl(returnType DataType, name string, params []*Parameter, pos token.Position) *FunctionDecl {
	return &FunctionDecl{base: base{pos}, ReturnType: returnType, Name: name, Params: params}
}

// VariableDecl declares a variable with an optional initializer. It
// appears both as a top-level Decl (globals) and, via CompoundStmt's
// statement list, as a Stmt (locals) — the grammar's `declaration`
// production is reachable from both `program` and `statement`.
type VariableDecl struct {
	base
	Type DataType
	Name string
	Init Expr // nil if uninitialized
}

func (*VariableDecl) declNode() {}
func (*VariableDecl) stmtNode() {}

// NewVariableDecl constructs a VariableDecl; the caller sets Init
// afterward if the declaration has an initializer.
func NewVariableDecl(typ DataType, name string, pos token.Position) *VariableDecl {
	return &VariableDecl{base: base{pos}, Type: typ, Name: name}
}

// CompoundStmt is a `{ ... }` block; its statement list may itself
// contain VariableDecl nodes.
type CompoundStmt struct {
	base
	Stmts []Stmt
}

func (*CompoundStmt) stmtNode() {}

// NewCompoundStmt constructs a CompoundStmt.
func NewCompoundStmt(stmts []Stmt, pos token.Position) *CompoundStmt {
	return &CompoundStmt{base: base{pos}, Stmts: stmts}
}

// IfStmt is `if (Cond) Then [else Else]`.
type IfStmt struct {
	base
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else-branch
}

func (*IfStmt) stmtNode() {}

// NewIfStmt constructs an IfStmt; Else may be left nil afterward.
func NewIfStmt(cond Expr, then Stmt, pos token.Position) *IfStmt {
	return &IfStmt{base: base{pos}, Cond: cond, Then: then}
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	base
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode() {}

// NewWhileStmt constructs a WhileStmt.
func NewWhileStmt(cond Expr, body Stmt, pos token.Position) *WhileStmt {
	return &WhileStmt{base: base{pos}, Cond: cond, Body: body}
}

// ForStmt is `for (Init; Cond; Update) Body`. Init, Cond, and Update are
// all individually optional. Init is either a *VariableDecl or an
// *ExprStmt (or nil).
type ForStmt struct {
	base
	Init   Stmt
	Cond   Expr // nil if omitted
	Update Expr // nil if omitted
	Body   Stmt
}

func (*ForStmt) stmtNode() {}

// NewForStmt constructs a ForStmt; Init, Cond, and Update may be left
// nil afterward if the corresponding clause was omitted.
func NewForStmt(body Stmt, pos token.Position) *ForStmt {
	return &ForStmt{base: base{pos}, Body: body}
}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	base
	Value Expr // nil for a bare return
}

func (*ReturnStmt) stmtNode() {}

// NewReturnStmt constructs a ReturnStmt; value may be nil for a bare return.
func NewReturnStmt(value Expr, pos token.Position) *ReturnStmt {
	return &ReturnStmt{base: base{pos}, Value: value}
}

// ExprStmt is an expression used as a statement (including the empty
// statement `;`, where Expr is nil).
type ExprStmt struct {
	base
	Expr Expr // nil for the empty statement
}

func (*ExprStmt) stmtNode() {}

// NewExprStmt constructs an ExprStmt; expr may be nil for the empty statement.
func NewExprStmt(expr Expr, pos token.Position) *ExprStmt {
	return &ExprStmt{base: base{pos}, Expr: expr}
}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	exprBase
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is `Op Operand` for prefix `- + !`.
type UnaryExpr struct {
	exprBase
	Op      string
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// CallExpr is `Callee(Args...)`. Callee is always a bare identifier —
// the grammar forbids indirect calls.
type CallExpr struct {
	exprBase
	Callee string
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	exprBase
	Name string
}

func (*IdentExpr) exprNode() {}

// NumberExpr is an integer literal; its Type is always Int.
type NumberExpr struct {
	exprBase
	Value int64
}

func (*NumberExpr) exprNode() {}

// StringExpr is a string literal; its Type is always CharPtr. Value
// holds the escaped source text exactly as scanned (un-decoded).
type StringExpr struct {
	exprBase
	Value string
}

func (*StringExpr) exprNode() {}

// NewBinary, NewUnary, NewCall, NewIdent, NewNumber, and NewString
// construct expression nodes with Type left at Unknown, ready for the
// semantic analyzer to fill in.

func NewBinary(op string, left, right Expr, pos token.Position) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{base: base{pos}}, Op: op, Left: left, Right: right}
}

func NewUnary(op string, operand Expr, pos token.Position) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{base: base{pos}}, Op: op, Operand: operand}
}

func NewCall(callee string, args []Expr, pos token.Position) *CallExpr {
	return &CallExpr{exprBase: exprBase{base: base{pos}}, Callee: callee, Args: args}
}

func NewIdent(name string, pos token.Position) *IdentExpr {
	return &IdentExpr{exprBase: exprBase{base: base{pos}}, Name: name}
}

func NewNumber(value int64, pos token.Position) *NumberExpr {
	n := &NumberExpr{exprBase: exprBase{base: base{pos}}, Value: value}
	n.SetType(Int)
	return n
}

func NewString(value string, pos token.Position) *StringExpr {
	s := &StringExpr{exprBase: exprBase{base: base{pos}}, Value: value}
	s.SetType(CharPtr)
	return s
}
