/*
File    : tiny-c-compiler/internal/sema/statements.go
Author  : Ryan Tobin
*/
package sema

import "github.com/ryan-tobin/tiny-c-compiler/internal/ast"

// analyzeStmt dispatches on the concrete statement type. It never
// returns a value: statements have no type, only the expressions and
// declarations they contain do.
func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		a.symbols.Push()
		for _, inner := range n.Stmts {
			a.analyzeStmt(inner)
		}
		a.symbols.Pop()
	case *ast.VariableDecl:
		a.analyzeVariableDecl(n, a.context())
	case *ast.IfStmt:
		a.checkBooleanContext(n.Cond, "if")
		a.analyzeStmt(n.Then)
		if n.Else != nil {
			a.analyzeStmt(n.Else)
		}
	case *ast.WhileStmt:
		a.checkBooleanContext(n.Cond, "while")
		a.analyzeStmt(n.Body)
	case *ast.ForStmt:
		a.symbols.Push()
		if n.Init != nil {
			a.analyzeStmt(n.Init)
		}
		if n.Cond != nil {
			a.checkBooleanContext(n.Cond, "for")
		}
		if n.Update != nil {
			a.analyzeExpr(n.Update, a.context())
		}
		a.analyzeStmt(n.Body)
		a.symbols.Pop()
	case *ast.ReturnStmt:
		a.analyzeReturn(n)
	case *ast.ExprStmt:
		if n.Expr != nil {
			a.analyzeExpr(n.Expr, a.context())
		}
	}
}

// checkBooleanContext analyzes cond and, for the numeric types this
// language actually has, accepts Int and Char as truthy (tinyc has no
// boolean type of its own); a CharPtr condition is rejected.
func (a *Analyzer) checkBooleanContext(cond ast.Expr, construct string) {
	t := a.analyzeExpr(cond, a.context())
	if t != ast.Unknown && !t.IsNumeric() {
		a.errors.AddContextf(cond.Pos().Line, cond.Pos().Column, a.context(),
			"'%s' condition must be a numeric type, got %s", construct, t)
	}
}

func (a *Analyzer) analyzeReturn(ret *ast.ReturnStmt) {
	if ret.Value == nil {
		if a.currentReturnType != ast.Void {
			a.errors.AddContextf(ret.Pos().Line, ret.Pos().Column, a.context(),
				"Function '%s' must return a value of type %s", a.currentFunc, a.currentReturnType)
		}
		return
	}

	valueType := a.analyzeExpr(ret.Value, a.context())
	if a.currentReturnType == ast.Void {
		a.errors.AddContextf(ret.Pos().Line, ret.Pos().Column, a.context(),
			"Cannot return a value from void function '%s'", a.currentFunc)
		return
	}
	if valueType != ast.Unknown && valueType != a.currentReturnType {
		a.errors.AddContextf(ret.Pos().Line, ret.Pos().Column, a.context(),
			"Cannot return value of type %s from function '%s' declared to return %s",
			valueType, a.currentFunc, a.currentReturnType)
	}
}
