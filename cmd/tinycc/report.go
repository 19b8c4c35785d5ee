/*
File    : tiny-c-compiler/cmd/tinycc/report.go
Author  : Ryan Tobin
*/
package main

import (
	"fmt"

	"github.com/ryan-tobin/tiny-c-compiler/internal/diag"
	"github.com/ryan-tobin/tiny-c-compiler/internal/sema"
	"github.com/ryan-tobin/tiny-c-compiler/internal/symtab"
)

// reportParseErrors prints every accumulated parse error, prefixed
// with the source file name, in red.
func reportParseErrors(path string, errs *diag.Bag) {
	redColor.Printf("%s: %d parse error(s)\n", path, errs.Count())
	for _, r := range errs.Records() {
		redColor.Printf("  %s:%d:%d: %s\n", path, r.Line, r.Column, r.Message)
	}
}

// reportSemaErrors prints every accumulated semantic error, including
// its enclosing-function context, in red.
func reportSemaErrors(path string, errs *diag.Bag) {
	redColor.Printf("%s: %d semantic error(s)\n", path, errs.Count())
	for _, r := range errs.Records() {
		redColor.Printf("  %s:%d:%d: in %s: %s\n", path, r.Line, r.Column, r.Context, r.Message)
	}
}

// dumpSymbols prints every binding in the global scope, for
// --debug-symbols.
func dumpSymbols(a *sema.Analyzer) {
	table := a.Symbols()
	for _, name := range table.GlobalNames() {
		sym, _ := table.Lookup(name)
		cyanColor.Println(formatSymbol(sym))
	}
}

func formatSymbol(sym symtab.Symbol) string {
	switch sym.Kind {
	case symtab.FunctionSymbol:
		return fmt.Sprintf("function %s -> %s (%d param(s))", sym.Name, sym.Type, len(sym.ParamTypes))
	case symtab.ParameterSymbol:
		return fmt.Sprintf("parameter %s : %s", sym.Name, sym.Type)
	default:
		return fmt.Sprintf("variable %s : %s", sym.Name, sym.Type)
	}
}
