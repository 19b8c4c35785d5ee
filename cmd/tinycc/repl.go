/*
File    : tiny-c-compiler/cmd/tinycc/repl.go
Author  : Ryan Tobin
*/
package main

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/parser"
	"github.com/ryan-tobin/tiny-c-compiler/internal/sema"
)

// runREPL starts an interactive session that parses and analyzes one
// line at a time as a standalone program of top-level declarations,
// printing the resulting AST and any diagnostics. It never generates assembly: the
// REPL is a debugging aid for the front end, not a way to run code —
// tinycc has no interpreter (spec.md's explicit Non-goal).
func runREPL() {
	greenColor.Println(banner)
	cyanColor.Printf("tinycc %s interactive front-end inspector\n", version)
	cyanColor.Println("Type one or more top-level declarations; '.exit' to quit.")

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Printf("Could not start REPL: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			cyanColor.Println("Goodbye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			cyanColor.Println("Goodbye!")
			return
		}
		rl.SaveHistory(line)
		evalLine(line)
	}
}

func evalLine(line string) {
	prog, perrs := parser.New(line).Parse()
	if perrs.HasErrors() {
		for _, r := range perrs.Records() {
			redColor.Printf("  %d:%d: %s\n", r.Line, r.Column, r.Message)
		}
		return
	}

	analyzer := sema.New()
	serrs := analyzer.Analyze(prog)
	if serrs.HasErrors() {
		for _, r := range serrs.Records() {
			redColor.Printf("  %d:%d in %s: %s\n", r.Line, r.Column, r.Context, r.Message)
		}
		return
	}

	yellowColor.Print(ast.Dump(prog))
}
