/*
File    : tiny-c-compiler/internal/codegen/expressions.go
Author  : Ryan Tobin
*/
package codegen

import "github.com/ryan-tobin/tiny-c-compiler/internal/ast"

// genExpr evaluates n and leaves its value in %rax. Nested subexpressions
// spill their left-hand operand to the stack with pushq/popq around the
// right-hand evaluation rather than drawing from a fixed register pool —
// the simplest allocation strategy that is still correct for arbitrarily
// deep expressions (spec.md §4.4, "simple register allocator").
func (g *Generator) genExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.NumberExpr:
		g.emit("movq $%d, %%rax", n.Value)

	case *ast.StringExpr:
		label := g.strings.intern(n.Value)
		g.emit("leaq %s(%%rip), %%rax", label)

	case *ast.IdentExpr:
		off, ok := g.frame.resolve(n.Name)
		if !ok {
			break // unreachable once semantic analysis has run clean
		}
		switch n.Type().Size() {
		case 4:
			g.emit("movslq %d(%%rbp), %%rax", off)
		case 1:
			g.emit("movzbq %d(%%rbp), %%rax", off)
		default:
			g.emit("movq %d(%%rbp), %%rax", off)
		}

	case *ast.UnaryExpr:
		g.genUnary(n)

	case *ast.BinaryExpr:
		g.genBinary(n)

	case *ast.CallExpr:
		g.genCall(n)
	}
}

func (g *Generator) genUnary(n *ast.UnaryExpr) {
	g.genExpr(n.Operand)
	switch n.Op {
	case "-":
		g.emit("negq %%rax")
	case "!":
		g.emit("cmpq $0, %%rax")
		g.emit("sete %%al")
		g.emit("movzbq %%al, %%rax")
	case "+":
		// unary plus changes nothing
	}
}

func (g *Generator) genBinary(n *ast.BinaryExpr) {
	if n.Op == "=" {
		g.genAssign(n)
		return
	}
	if n.Op == "&&" || n.Op == "||" {
		g.genShortCircuit(n)
		return
	}

	g.genExpr(n.Left)
	g.emit("pushq %%rax")
	g.genExpr(n.Right)
	g.emit("movq %%rax, %%rcx") // right operand
	g.emit("popq %%rax")        // left operand

	switch n.Op {
	case "+":
		g.emit("addq %%rcx, %%rax")
	case "-":
		g.emit("subq %%rcx, %%rax")
	case "*":
		g.emit("imulq %%rcx, %%rax")
	case "/":
		g.emit("cqto")
		g.emit("idivq %%rcx")
	case "%":
		g.emit("cqto")
		g.emit("idivq %%rcx")
		g.emit("movq %%rdx, %%rax")
	case "==":
		g.emitCompare("sete")
	case "!=":
		g.emitCompare("setne")
	case "<":
		g.emitCompare("setl")
	case "<=":
		g.emitCompare("setle")
	case ">":
		g.emitCompare("setg")
	case ">=":
		g.emitCompare("setge")
	}
}

func (g *Generator) emitCompare(set string) {
	g.emit("cmpq %%rcx, %%rax")
	g.emit("%s %%al", set)
	g.emit("movzbq %%al, %%rax")
}

// genShortCircuit implements && and || without evaluating the
// right-hand side unless the left side leaves the outcome undecided.
func (g *Generator) genShortCircuit(n *ast.BinaryExpr) {
	shortLabel := g.newLabel("shortcircuit")
	endLabel := g.newLabel("endshortcircuit")

	g.genExpr(n.Left)
	g.emit("cmpq $0, %%rax")
	if n.Op == "&&" {
		g.emit("je %s", shortLabel) // false && _ => false
	} else {
		g.emit("jne %s", shortLabel) // true || _ => true
	}

	g.genExpr(n.Right)
	g.emit("cmpq $0, %%rax")
	g.emit("setne %%al")
	g.emit("movzbq %%al, %%rax")
	g.emit("jmp %s", endLabel)

	g.emitLabel(shortLabel)
	if n.Op == "&&" {
		g.emit("movq $0, %%rax")
	} else {
		g.emit("movq $1, %%rax")
	}
	g.emitLabel(endLabel)
}

// genAssign evaluates the right-hand side and stores it into the
// left-hand identifier's stack slot; the assignment's own value (what
// an enclosing expression sees) is whatever is left in %rax.
func (g *Generator) genAssign(n *ast.BinaryExpr) {
	ident := n.Left.(*ast.IdentExpr)
	g.genExpr(n.Right)
	off, ok := g.frame.resolve(ident.Name)
	if !ok {
		return // unreachable once semantic analysis has run clean
	}
	g.emit("mov%s %%%s, %d(%%rbp)", suffix(ident.Type().Size()), sizedReg("rax", ident.Type().Size()), off)
}

// genCall marshals n.Args into the System V integer argument registers
// and emits a direct call (spec.md's Open Question 2, resolved in
// SPEC_FULL.md §5.2). Each argument is evaluated and pushed before any
// register is loaded, so evaluating a later argument can never clobber
// an earlier one's already-loaded register. Semantic analysis rejects
// any call with more than len(argRegisters) arguments, so every pushed
// value here always has a register to land in.
func (g *Generator) genCall(n *ast.CallExpr) {
	for _, arg := range n.Args {
		g.genExpr(arg)
		g.emit("pushq %%rax")
	}
	for i := len(n.Args) - 1; i >= 0; i-- {
		g.emit("popq %%%s", argRegisters[i])
	}
	g.emit("call %s", n.Callee)
}
