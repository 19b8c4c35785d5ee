/*
File    : tiny-c-compiler/internal/parser/declarations.go
Author  : Ryan Tobin
*/
package parser

import (
	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

// startsType reports whether kind can begin a `type` production
// ('int' | 'void' | 'char' ['*']).
func startsType(kind token.Kind) bool {
	switch kind {
	case token.KW_INT, token.KW_CHAR, token.KW_VOID:
		return true
	}
	return false
}

// parseType consumes `'int' | 'void' | 'char' ['*']`.
func (p *Parser) parseType() ast.DataType {
	switch {
	case p.match(token.KW_INT):
		return ast.Int
	case p.match(token.KW_VOID):
		return ast.Void
	case p.match(token.KW_CHAR):
		if p.match(token.STAR) {
			return ast.CharPtr
		}
		return ast.Char
	default:
		p.errorAtCurrent("Expected type")
		return ast.Unknown
	}
}

// parseDeclaration parses `type IDENT ( func_rest | var_rest )`. It is
// reachable both from `program` (top level) and from `statement` (local
// declarations), per the grammar.
func (p *Parser) parseDeclaration() ast.Decl {
	if !startsType(p.current.Kind) {
		p.errorAtCurrent("Expected a declaration")
		return nil
	}

	pos := p.current.Pos
	typ := p.parseType()

	if !p.check(token.IDENT) {
		p.errorAtCurrent("Expected identifier")
		return nil
	}
	name := p.current.Lexeme
	p.advance()

	if p.check(token.LPAREN) {
		return p.parseFunctionRest(typ, name, pos)
	}
	return p.parseVarRest(typ, name, pos)
}

// parseParam parses `type IDENT`.
func (p *Parser) parseParam() *ast.Parameter {
	pos := p.current.Pos
	typ := p.parseType()
	if !p.check(token.IDENT) {
		p.errorAtCurrent("Expected parameter name")
		return ast.NewParameter(typ, "", pos)
	}
	name := p.current.Lexeme
	p.advance()
	return ast.NewParameter(typ, name, pos)
}

// parseFunctionRest parses `'(' [ param (',' param)* ] ')' ( ';' | compound )`
// once `type IDENT` has already been consumed.
func (p *Parser) parseFunctionRest(returnType ast.DataType, name string, pos token.Position) ast.Decl {
	p.expect(token.LPAREN, "Expected '(' after function name")

	var params []*ast.Parameter
	if !p.check(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.match(token.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN, "Expected ')' after parameters")

	decl := ast.NewFunctionDecl(returnType, name, params, pos)

	if p.match(token.SEMI) {
		return decl // prototype
	}
	decl.Body = p.parseCompound()
	return decl
}

// parseVarRest parses `[ '=' expression ] ';'` once `type IDENT` has
// already been consumed.
func (p *Parser) parseVarRest(typ ast.DataType, name string, pos token.Position) ast.Decl {
	decl := ast.NewVariableDecl(typ, name, pos)
	if p.match(token.ASSIGN) {
		decl.Init = p.parseExpression()
	}
	p.expect(token.SEMI, "Expected ';' after variable declaration")
	return decl
}
