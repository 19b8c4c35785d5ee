/*
File    : tiny-c-compiler/internal/sema/expressions.go
Author  : Ryan Tobin
*/
package sema

import (
	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/symtab"
)

// analyzeExpr infers n's type, records it on the node via SetType, and
// returns it (ast.Unknown if an error made the type unrecoverable,
// so callers can skip a cascading complaint about it).
func (a *Analyzer) analyzeExpr(n ast.Expr, context string) ast.DataType {
	var t ast.DataType
	switch e := n.(type) {
	case *ast.NumberExpr:
		t = ast.Int
	case *ast.StringExpr:
		t = ast.CharPtr
	case *ast.IdentExpr:
		t = a.analyzeIdent(e, context)
	case *ast.CallExpr:
		t = a.analyzeCall(e, context)
	case *ast.UnaryExpr:
		t = a.analyzeUnary(e, context)
	case *ast.BinaryExpr:
		t = a.analyzeBinary(e, context)
	default:
		t = ast.Unknown
	}
	n.SetType(t)
	return t
}

func (a *Analyzer) analyzeIdent(e *ast.IdentExpr, context string) ast.DataType {
	sym, ok := a.symbols.Lookup(e.Name)
	if !ok {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Undefined identifier '%s'", e.Name)
		return ast.Unknown
	}
	if sym.Kind == symtab.FunctionSymbol {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"'%s' is a function, not a variable", e.Name)
		return ast.Unknown
	}
	return sym.Type
}

// maxCallArguments is the number of System V integer/pointer argument
// registers tinycc's code generator marshals arguments into
// (internal/codegen's argRegisters); it never spills overflow
// arguments to the stack, so a call exceeding this count is rejected
// here rather than silently mis-marshaled at codegen time.
const maxCallArguments = 6

func (a *Analyzer) analyzeCall(e *ast.CallExpr, context string) ast.DataType {
	for _, arg := range e.Args {
		a.analyzeExpr(arg, context)
	}

	if len(e.Args) > maxCallArguments {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Call to '%s' has %d arguments, exceeding the maximum of %d supported", e.Callee, len(e.Args), maxCallArguments)
		return ast.Unknown
	}

	sym, ok := a.symbols.Lookup(e.Callee)
	if !ok {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Undefined function '%s'", e.Callee)
		return ast.Unknown
	}
	if sym.Kind != symtab.FunctionSymbol {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"'%s' is not a function", e.Callee)
		return ast.Unknown
	}

	if len(e.Args) != len(sym.ParamTypes) {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Function '%s' expects %d argument(s), got %d", e.Callee, len(sym.ParamTypes), len(e.Args))
		return sym.Type
	}
	for i, arg := range e.Args {
		if arg.Type() != ast.Unknown && arg.Type() != sym.ParamTypes[i] {
			a.errors.AddContextf(arg.Pos().Line, arg.Pos().Column, context,
				"Argument %d to '%s' has type %s, expected %s", i+1, e.Callee, arg.Type(), sym.ParamTypes[i])
		}
	}
	return sym.Type
}

func (a *Analyzer) analyzeUnary(e *ast.UnaryExpr, context string) ast.DataType {
	operandType := a.analyzeExpr(e.Operand, context)
	if operandType == ast.Unknown {
		return ast.Unknown
	}
	if !operandType.IsNumeric() {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Operator '%s' requires a numeric operand, got %s", e.Op, operandType)
		return ast.Unknown
	}
	return operandType
}

func (a *Analyzer) analyzeBinary(e *ast.BinaryExpr, context string) ast.DataType {
	if e.Op == "=" {
		return a.analyzeAssignment(e, context)
	}

	leftType := a.analyzeExpr(e.Left, context)
	rightType := a.analyzeExpr(e.Right, context)
	if leftType == ast.Unknown || rightType == ast.Unknown {
		return ast.Unknown
	}

	switch e.Op {
	case "+", "-", "*", "/", "%":
		if !leftType.IsNumeric() || !rightType.IsNumeric() {
			a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
				"Operator '%s' requires numeric operands, got %s and %s", e.Op, leftType, rightType)
			return ast.Unknown
		}
		return ast.Int
	case "<", "<=", ">", ">=", "==", "!=":
		if leftType != rightType {
			a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
				"Operator '%s' requires operands of equal type, got %s and %s", e.Op, leftType, rightType)
			return ast.Unknown
		}
		return ast.Int
	case "&&", "||":
		if !leftType.IsNumeric() || !rightType.IsNumeric() {
			a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
				"Operator '%s' requires numeric operands, got %s and %s", e.Op, leftType, rightType)
			return ast.Unknown
		}
		return ast.Int
	default:
		return ast.Unknown
	}
}

// analyzeAssignment enforces that the left-hand side is an lvalue — a
// bare identifier naming a declared variable or parameter, never an
// expression, a call result, or a function name (spec.md's Open
// Question 6, resolved in SPEC_FULL.md §5.6).
func (a *Analyzer) analyzeAssignment(e *ast.BinaryExpr, context string) ast.DataType {
	ident, ok := e.Left.(*ast.IdentExpr)
	if !ok {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context, "Left side of '=' must be a variable")
		a.analyzeExpr(e.Right, context)
		return ast.Unknown
	}

	leftType := a.analyzeIdent(ident, context)
	ident.SetType(leftType)
	rightType := a.analyzeExpr(e.Right, context)
	if leftType == ast.Unknown || rightType == ast.Unknown {
		return leftType
	}
	if leftType != rightType {
		a.errors.AddContextf(e.Pos().Line, e.Pos().Column, context,
			"Cannot assign value of type %s to '%s' of type %s", rightType, ident.Name, leftType)
	}
	return leftType
}
