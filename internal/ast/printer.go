/*
File    : tiny-c-compiler/internal/ast/printer.go
Author  : Ryan Tobin
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer renders an AST as an indented tree, one line per node. It
// backs the driver's --debug-ast flag.
//
// This is the same shape as a NodeVisitor-style pretty printer: each
// node kind gets its own print method, indentation tracks recursion
// depth, and output accumulates in a buffer rather than being written
// node-by-node to stdout.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// String returns everything printed so far.
func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// PrintProgram renders an entire program.
func (p *Printer) PrintProgram(prog *Program) {
	p.line("Program")
	p.nested(func() {
		for _, d := range prog.Decls {
			p.printDecl(d)
		}
	})
}

func (p *Printer) printDecl(d Decl) {
	switch n := d.(type) {
	case *FunctionDecl:
		kind := "prototype"
		if n.Body != nil {
			kind = "definition"
		}
		p.line("FunctionDecl %s %s (%s)", n.ReturnType, n.Name, kind)
		p.nested(func() {
			for _, param := range n.Params {
				p.line("Parameter %s %s", param.Type, param.Name)
			}
			if n.Body != nil {
				p.printStmt(n.Body)
			}
		})
	case *VariableDecl:
		p.printVariableDecl(n)
	default:
		p.line("<unknown decl>")
	}
}

func (p *Printer) printVariableDecl(n *VariableDecl) {
	p.line("VariableDecl %s %s", n.Type, n.Name)
	if n.Init != nil {
		p.nested(func() { p.printExpr(n.Init) })
	}
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *CompoundStmt:
		p.line("CompoundStmt")
		p.nested(func() {
			for _, stmt := range n.Stmts {
				p.printStmt(stmt)
			}
		})
	case *IfStmt:
		p.line("If")
		p.nested(func() {
			p.printExpr(n.Cond)
			p.printStmt(n.Then)
			if n.Else != nil {
				p.printStmt(n.Else)
			}
		})
	case *WhileStmt:
		p.line("While")
		p.nested(func() {
			p.printExpr(n.Cond)
			p.printStmt(n.Body)
		})
	case *ForStmt:
		p.line("For")
		p.nested(func() {
			if n.Init != nil {
				p.printStmt(n.Init)
			}
			if n.Cond != nil {
				p.printExpr(n.Cond)
			}
			if n.Update != nil {
				p.printExpr(n.Update)
			}
			p.printStmt(n.Body)
		})
	case *ReturnStmt:
		p.line("Return")
		if n.Value != nil {
			p.nested(func() { p.printExpr(n.Value) })
		}
	case *ExprStmt:
		p.line("ExprStmt")
		if n.Expr != nil {
			p.nested(func() { p.printExpr(n.Expr) })
		}
	case *VariableDecl:
		p.printVariableDecl(n)
	default:
		p.line("<unknown stmt>")
	}
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case *BinaryExpr:
		p.line("BinaryOp %q : %s", n.Op, n.Type())
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *UnaryExpr:
		p.line("UnaryOp %q : %s", n.Op, n.Type())
		p.nested(func() { p.printExpr(n.Operand) })
	case *CallExpr:
		p.line("Call %s : %s", n.Callee, n.Type())
		p.nested(func() {
			for _, arg := range n.Args {
				p.printExpr(arg)
			}
		})
	case *IdentExpr:
		p.line("Identifier %s : %s", n.Name, n.Type())
	case *NumberExpr:
		p.line("Number %d : %s", n.Value, n.Type())
	case *StringExpr:
		p.line("String %q : %s", n.Value, n.Type())
	default:
		p.line("<unknown expr>")
	}
}

// Dump renders prog as a tree and returns the result, for callers that
// don't need an incremental Printer.
func Dump(prog *Program) string {
	p := &Printer{}
	p.PrintProgram(prog)
	return p.String()
}
