/*
File    : tiny-c-compiler/internal/codegen/statements.go
Author  : Ryan Tobin
*/
package codegen

import "github.com/ryan-tobin/tiny-c-compiler/internal/ast"

// genStmt emits the instructions for one statement. It never leaves a
// value live in %rax across a statement boundary.
func (g *Generator) genStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		g.frame.pushScope()
		for _, inner := range n.Stmts {
			g.genStmt(inner)
		}
		g.frame.popScope()

	case *ast.VariableDecl:
		g.frame.declareLocal(n)
		if n.Init != nil {
			g.genExpr(n.Init)
			off := g.frame.offsets[n]
			g.emit("mov%s %%%s, %d(%%rbp)", suffix(n.Type.Size()), sizedReg("rax", n.Type.Size()), off)
		}

	case *ast.IfStmt:
		g.genIf(n)

	case *ast.WhileStmt:
		g.genWhile(n)

	case *ast.ForStmt:
		g.genFor(n)

	case *ast.ReturnStmt:
		if n.Value != nil {
			g.genExpr(n.Value)
		}
		g.emit("jmp .Lreturn_%s", g.frame.fnName)

	case *ast.ExprStmt:
		if n.Expr != nil {
			g.genExpr(n.Expr)
		}
	}
}

func (g *Generator) genIf(n *ast.IfStmt) {
	elseLabel := g.newLabel("else")
	endLabel := g.newLabel("endif")

	g.genExpr(n.Cond)
	g.emit("cmpq $0, %%rax")
	if n.Else != nil {
		g.emit("je %s", elseLabel)
	} else {
		g.emit("je %s", endLabel)
	}
	g.genStmt(n.Then)
	if n.Else != nil {
		g.emit("jmp %s", endLabel)
		g.emitLabel(elseLabel)
		g.genStmt(n.Else)
	}
	g.emitLabel(endLabel)
}

func (g *Generator) genWhile(n *ast.WhileStmt) {
	startLabel := g.newLabel("loop")
	endLabel := g.newLabel("endloop")

	g.emitLabel(startLabel)
	g.genExpr(n.Cond)
	g.emit("cmpq $0, %%rax")
	g.emit("je %s", endLabel)
	g.genStmt(n.Body)
	g.emit("jmp %s", startLabel)
	g.emitLabel(endLabel)
}

func (g *Generator) genFor(n *ast.ForStmt) {
	g.frame.pushScope()
	if n.Init != nil {
		g.genStmt(n.Init)
	}

	startLabel := g.newLabel("for")
	endLabel := g.newLabel("endfor")

	g.emitLabel(startLabel)
	if n.Cond != nil {
		g.genExpr(n.Cond)
		g.emit("cmpq $0, %%rax")
		g.emit("je %s", endLabel)
	}
	g.genStmt(n.Body)
	if n.Update != nil {
		g.genExpr(n.Update)
	}
	g.emit("jmp %s", startLabel)
	g.emitLabel(endLabel)
	g.frame.popScope()
}

// suffix returns the AT&T mnemonic size suffix matching width bytes.
func suffix(width int) string {
	switch width {
	case 1:
		return "b"
	case 4:
		return "l"
	default:
		return "q"
	}
}
