/*
File    : tiny-c-compiler/internal/parser/parser.go
Author  : Ryan Tobin
*/

// Package parser implements a predictive recursive-descent parser for
// tinyc, following the grammar in spec.md §4.2 exactly: one parsing
// method per production, precedence encoded as a chain of methods from
// loosest (assignment) to tightest (primary), and panic-mode error
// recovery so a single syntax error doesn't abort the whole parse.
package parser

import (
	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/diag"
	"github.com/ryan-tobin/tiny-c-compiler/internal/lexer"
	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

// MaxParseErrors caps how many errors a single parse will report before
// giving up (spec.md §4.2).
const MaxParseErrors = 50

// Parser holds a two-token lookahead window (current, previous) over a
// Lexer and accumulates syntax errors rather than stopping at the first
// one.
type Parser struct {
	lex *lexer.Lexer

	current  token.Token
	previous token.Token

	errors    diag.Bag
	panicMode bool
	gaveUp    bool
}

// New creates a Parser over src and primes its lookahead window.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	return p
}

// Errors returns every syntax error collected during Parse, in the
// order they were discovered.
func (p *Parser) Errors() *diag.Bag { return &p.errors }

// advance replaces previous with a copy of current and pulls the next
// token from the lexer into current. Lexer ERROR tokens are surfaced as
// parse errors immediately, the moment they are seen.
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.lex.NextToken()
		if p.current.Kind != token.ERROR {
			break
		}
		p.reportAt(p.current.Pos, p.current.Lexeme)
	}
}

// check reports whether the current token has the given kind.
func (p *Parser) check(kind token.Kind) bool {
	return p.current.Kind == kind
}

// match advances and returns true if the current token has kind; it
// leaves the parser untouched and returns false otherwise.
func (p *Parser) match(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// expect consumes the current token if it has kind, else records a
// syntax error and does not advance (so the caller's synchronize call
// can make forward progress from a known-bad point).
func (p *Parser) expect(kind token.Kind, message string) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	p.errorAtCurrent(message)
	return false
}

// errorAtCurrent records a syntax error at the current token's
// position, subject to panic-mode suppression and the error cap.
func (p *Parser) errorAtCurrent(message string) {
	p.reportAt(p.current.Pos, message)
}

func (p *Parser) reportAt(pos token.Position, message string) {
	if p.gaveUp {
		return
	}
	if p.panicMode {
		return
	}
	if p.errors.Count() >= MaxParseErrors {
		p.errors.Add(pos.Line, pos.Column, "Too many parse errors, giving up")
		p.gaveUp = true
		return
	}
	p.errors.Add(pos.Line, pos.Column, message)
	p.panicMode = true
}

// synchronize advances past the error until it reaches a point a new
// statement or declaration can safely start from: just past a
// semicolon, at a token that begins a new statement/declaration, or at
// end-of-input. It then clears panic mode so subsequent errors report
// normally again.
func (p *Parser) synchronize() {
	p.panicMode = false

	for !p.check(token.EOF) {
		if p.previous.Kind == token.SEMI {
			return
		}
		switch p.current.Kind {
		case token.KW_IF, token.KW_FOR, token.KW_WHILE, token.KW_RETURN,
			token.KW_INT, token.KW_CHAR, token.KW_VOID:
			return
		}
		p.advance()
	}
}

// Parse runs the parser to completion and returns the AST built so far
// (always non-nil and well-formed per spec.md invariant 2, even when
// errors were reported) together with the accumulated error list.
func (p *Parser) Parse() (*ast.Program, *diag.Bag) {
	prog := &ast.Program{}
	for !p.check(token.EOF) && !p.gaveUp {
		decl := p.parseDeclaration()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
		if p.panicMode {
			p.synchronize()
		}
	}
	return prog, &p.errors
}
