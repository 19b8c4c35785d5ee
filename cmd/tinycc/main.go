/*
File    : tiny-c-compiler/cmd/tinycc/main.go
Author  : Ryan Tobin
*/

// Command tinycc is the ahead-of-time compiler's driver. It reads one
// source file, runs it through the lexer, parser, semantic analyzer,
// and code generator in order, and writes x86-64 assembly — halting at
// the first phase that reports errors (spec.md §3, §7).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/codegen"
	"github.com/ryan-tobin/tiny-c-compiler/internal/lexer"
	"github.com/ryan-tobin/tiny-c-compiler/internal/parser"
	"github.com/ryan-tobin/tiny-c-compiler/internal/sema"
	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

const (
	version = "v0.1.0"
	author  = "Ryan Tobin"
	prompt  = "tinycc> "
	banner  = `
  _   _                  ____
 | |_(_)_ __  _   _  ___ / ___|
 | __| | '_ \| | | |/ __| |
 | |_| | | | | |_| | (__| |___
  \__|_|_| |_|\__, |\___|\____|
              |___/
`
)

var (
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	outPath := flag.String("o", "", "output assembly file (defaults to <input>.s)")
	debugTokens := flag.Bool("debug-tokens", false, "print the token stream and exit")
	debugAST := flag.Bool("debug-ast", false, "print the parsed AST and exit")
	debugSymbols := flag.Bool("debug-symbols", false, "print the global symbol table after analysis")
	compileOnly := flag.Bool("compile-only", false, "run lexing, parsing, and semantic analysis only")
	repl := flag.Bool("repl", false, "start an interactive AST inspector")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		cyanColor.Printf("tinycc %s\n", version)
		return
	}

	if *repl {
		runREPL()
		return
	}

	if flag.NArg() != 1 {
		redColor.Fprintln(os.Stderr, "Usage: tinycc [flags] <source-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read '%s': %v\n", path, err)
		os.Exit(1)
	}

	if *debugTokens {
		dumpTokens(string(source))
		return
	}

	prog, perrs := parser.New(string(source)).Parse()
	if perrs.HasErrors() {
		reportParseErrors(path, perrs)
		os.Exit(1)
	}

	if *debugAST {
		fmt.Print(ast.Dump(prog))
		return
	}

	analyzer := sema.New()
	serrs := analyzer.Analyze(prog)
	if serrs.HasErrors() {
		reportSemaErrors(path, serrs)
		os.Exit(1)
	}

	if *debugSymbols {
		dumpSymbols(analyzer)
		return
	}

	if *compileOnly {
		greenColor.Println("OK: no errors")
		return
	}

	asm := codegen.Generate(prog)

	dest := *outPath
	if dest == "" {
		dest = outputName(path)
	}
	if err := os.WriteFile(dest, []byte(asm), 0o644); err != nil {
		redColor.Fprintf(os.Stderr, "Could not write '%s': %v\n", dest, err)
		os.Exit(1)
	}
	greenColor.Printf("Wrote %s\n", dest)
}

// outputName derives "foo.s" from "foo.c", replacing whatever extension
// the file name has with ".s" (or appending ".s" when it has none).
func outputName(sourcePath string) string {
	for i := len(sourcePath) - 1; i >= 0 && sourcePath[i] != '/'; i-- {
		if sourcePath[i] == '.' {
			return sourcePath[:i] + ".s"
		}
	}
	return sourcePath + ".s"
}

func dumpTokens(source string) {
	lx := lexer.New(source)
	for {
		tok := lx.NextToken()
		yellowColor.Println(tok.String())
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			break
		}
	}
}
