/*
File    : tiny-c-compiler/internal/sema/analyzer.go
Author  : Ryan Tobin
*/

// Package sema implements tinyc's two-pass semantic analyzer: pass 1
// hoists every top-level function into global scope (enabling forward
// references and mutual recursion), and pass 2 walks every declaration,
// statement, and expression, annotating each Expr's Type and collecting
// {line, column, context, message} errors without stopping at the
// first one (spec.md §4.3, §7).
package sema

import (
	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/diag"
	"github.com/ryan-tobin/tiny-c-compiler/internal/symtab"
)

// Analyzer walks a Program, annotating it in place.
type Analyzer struct {
	symbols *symtab.Table
	errors  diag.Bag

	// currentFunc and currentReturnType track the enclosing function
	// while analyzing its body, for Return and the void-consistency
	// check.
	currentFunc       string
	currentReturnType ast.DataType
}

// New creates an Analyzer with a fresh global scope.
func New() *Analyzer {
	return &Analyzer{symbols: symtab.NewTable()}
}

// Analyze runs both passes over prog and returns the accumulated
// errors. Codegen must not run unless the returned Bag is empty
// (spec.md §3 invariant 3, §7 "Codegen has no error path").
func (a *Analyzer) Analyze(prog *ast.Program) *diag.Bag {
	a.hoistFunctions(prog)
	a.checkBodiesAndGlobals(prog)
	return &a.errors
}

// Symbols exposes the populated global-scope symbol table for callers
// that want to inspect it after a clean analysis (the driver's
// --debug-symbols flag). The analyzer itself tears scopes down again
// as it pops them, but the global scope survives to the end.
func (a *Analyzer) Symbols() *symtab.Table { return a.symbols }

// hoistFunctions is pass 1: declare every top-level function in global
// scope before any body is analyzed, so mutual recursion and forward
// references resolve. Redeclaration is an error unless it is exactly
// one prototype followed by one matching definition (spec.md's Open
// Question 8, resolved in SPEC_FULL.md §5.8): a second prototype, a
// second definition, or a mismatched signature is still rejected.
func (a *Analyzer) hoistFunctions(prog *ast.Program) {
	for _, d := range prog.Decls {
		fn, ok := d.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		if len(fn.Params) > maxCallArguments {
			a.errors.AddContextf(fn.Pos().Line, fn.Pos().Column, fn.Name,
				"Function '%s' declares %d parameters, exceeding the maximum of %d supported", fn.Name, len(fn.Params), maxCallArguments)
			continue
		}
		paramTypes := make([]ast.DataType, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = p.Type
		}

		existing, found := a.symbols.LookupLocal(fn.Name)
		if !found {
			a.symbols.Declare(symtab.Symbol{
				Name:       fn.Name,
				Kind:       symtab.FunctionSymbol,
				Type:       fn.ReturnType,
				ParamTypes: paramTypes,
				Defined:    fn.Body != nil,
			})
			continue
		}

		if existing.Kind != symtab.FunctionSymbol ||
			!sameSignature(existing, fn.ReturnType, paramTypes) ||
			existing.Defined || fn.Body == nil {
			a.errors.AddContextf(fn.Pos().Line, fn.Pos().Column, fn.Name,
				"Function '%s' already declared", fn.Name)
			continue
		}

		if fn.Body != nil {
			existing.Defined = true
			a.symbols.Redefine(existing)
		}
	}
}

func sameSignature(sym symtab.Symbol, returnType ast.DataType, paramTypes []ast.DataType) bool {
	if sym.Type != returnType || len(sym.ParamTypes) != len(paramTypes) {
		return false
	}
	for i := range paramTypes {
		if sym.ParamTypes[i] != paramTypes[i] {
			return false
		}
	}
	return true
}

// checkBodiesAndGlobals is pass 2: analyze every function body and
// every global variable initializer.
func (a *Analyzer) checkBodiesAndGlobals(prog *ast.Program) {
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FunctionDecl:
			if n.Body != nil {
				a.analyzeFunctionBody(n)
			}
		case *ast.VariableDecl:
			a.analyzeVariableDecl(n, "<global>")
		}
	}
}

func (a *Analyzer) analyzeFunctionBody(fn *ast.FunctionDecl) {
	prevFunc, prevReturn := a.currentFunc, a.currentReturnType
	a.currentFunc, a.currentReturnType = fn.Name, fn.ReturnType
	defer func() { a.currentFunc, a.currentReturnType = prevFunc, prevReturn }()

	a.symbols.Push()
	defer a.symbols.Pop()

	for _, param := range fn.Params {
		if !a.symbols.Declare(symtab.Symbol{Name: param.Name, Kind: symtab.ParameterSymbol, Type: param.Type}) {
			a.errors.AddContextf(param.Pos().Line, param.Pos().Column, fn.Name,
				"Parameter '%s' already declared", param.Name)
		}
	}

	a.analyzeStmt(fn.Body)

	if fn.ReturnType != ast.Void && !stmtAlwaysReturns(fn.Body) {
		a.errors.AddContextf(fn.Pos().Line, fn.Pos().Column, fn.Name,
			"Missing return statement in non-void function '%s'", fn.Name)
	}
}

// stmtAlwaysReturns is a conservative structural check (spec.md's Open
// Question 7): a CompoundStmt returns if its last statement does; an
// If returns only if both branches do and an else exists; loops never
// count because the analyzer cannot prove they execute.
func stmtAlwaysReturns(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.CompoundStmt:
		if len(n.Stmts) == 0 {
			return false
		}
		return stmtAlwaysReturns(n.Stmts[len(n.Stmts)-1])
	case *ast.IfStmt:
		if n.Else == nil {
			return false
		}
		return stmtAlwaysReturns(n.Then) && stmtAlwaysReturns(n.Else)
	default:
		return false
	}
}

func (a *Analyzer) analyzeVariableDecl(decl *ast.VariableDecl, context string) {
	declared := a.symbols.Declare(symtab.Symbol{Name: decl.Name, Kind: symtab.VariableSymbol, Type: decl.Type})
	if !declared {
		a.errors.AddContextf(decl.Pos().Line, decl.Pos().Column, context,
			"Variable '%s' already declared in this scope", decl.Name)
	}
	if decl.Init != nil {
		initType := a.analyzeExpr(decl.Init, context)
		if initType != decl.Type && initType != ast.Unknown {
			a.errors.AddContextf(decl.Pos().Line, decl.Pos().Column, context,
				"Cannot initialize '%s' of type %s with value of type %s", decl.Name, decl.Type, initType)
		}
	}
}

func (a *Analyzer) context() string {
	if a.currentFunc != "" {
		return a.currentFunc
	}
	return "<global>"
}
