/*
File    : tiny-c-compiler/internal/parser/statements.go
Author  : Ryan Tobin
*/
package parser

import (
	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

// parseStatement parses `statement := compound | if | while | for |
// return | declaration | expr_stmt`, dispatching on the current token.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.check(token.LBRACE):
		return p.parseCompound()
	case p.check(token.KW_IF):
		return p.parseIf()
	case p.check(token.KW_WHILE):
		return p.parseWhile()
	case p.check(token.KW_FOR):
		return p.parseFor()
	case p.check(token.KW_RETURN):
		return p.parseReturn()
	case startsType(p.current.Kind):
		pos := p.current.Pos
		decl := p.parseDeclaration()
		if stmt, ok := decl.(ast.Stmt); ok {
			return stmt
		}
		if decl != nil {
			p.reportAt(pos, "Function declarations are only allowed at top level")
		}
		return ast.NewExprStmt(nil, pos)
	default:
		return p.parseExprStmt()
	}
}

// parseCompound parses `'{' statement* '}'`.
func (p *Parser) parseCompound() *ast.CompoundStmt {
	pos := p.current.Pos
	p.expect(token.LBRACE, "Expected '{'")

	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.gaveUp {
		stmts = append(stmts, p.parseStatement())
		if p.panicMode {
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, "Expected '}'")
	return ast.NewCompoundStmt(stmts, pos)
}

// parseIf parses `'if' '(' expression ')' statement [ 'else' statement ]`.
func (p *Parser) parseIf() ast.Stmt {
	pos := p.current.Pos
	p.advance() // 'if'
	p.expect(token.LPAREN, "Expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "Expected ')' after condition")
	then := p.parseStatement()

	ifStmt := ast.NewIfStmt(cond, then, pos)
	if p.match(token.KW_ELSE) {
		ifStmt.Else = p.parseStatement()
	}
	return ifStmt
}

// parseWhile parses `'while' '(' expression ')' statement`.
func (p *Parser) parseWhile() ast.Stmt {
	pos := p.current.Pos
	p.advance() // 'while'
	p.expect(token.LPAREN, "Expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "Expected ')' after condition")
	body := p.parseStatement()
	return ast.NewWhileStmt(cond, body, pos)
}

// parseFor parses:
//
//	'for' '(' ( declaration | expr_stmt | ';' ) [ expression ] ';'
//	          [ expression ] ')' statement
func (p *Parser) parseFor() ast.Stmt {
	pos := p.current.Pos
	p.advance() // 'for'
	p.expect(token.LPAREN, "Expected '(' after 'for'")

	forStmt := ast.NewForStmt(nil, pos)

	switch {
	case startsType(p.current.Kind):
		initPos := p.current.Pos
		decl := p.parseDeclaration()
		if stmt, ok := decl.(ast.Stmt); ok {
			forStmt.Init = stmt
		} else if decl != nil {
			p.reportAt(initPos, "Function declarations are only allowed at top level")
		}
	case p.match(token.SEMI):
		// empty init clause
	default:
		forStmt.Init = p.parseExprStmt()
	}

	if !p.check(token.SEMI) {
		forStmt.Cond = p.parseExpression()
	}
	p.expect(token.SEMI, "Expected ';' after for-loop condition")

	if !p.check(token.RPAREN) {
		forStmt.Update = p.parseExpression()
	}
	p.expect(token.RPAREN, "Expected ')' after for-loop clauses")

	forStmt.Body = p.parseStatement()
	return forStmt
}

// parseReturn parses `'return' [ expression ] ';'`.
func (p *Parser) parseReturn() ast.Stmt {
	pos := p.current.Pos
	p.advance() // 'return'
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.parseExpression()
	}
	p.expect(token.SEMI, "Expected ';' after return statement")
	return ast.NewReturnStmt(value, pos)
}

// parseExprStmt parses `[ expression ] ';'`.
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	pos := p.current.Pos
	var expr ast.Expr
	if !p.check(token.SEMI) {
		expr = p.parseExpression()
	}
	p.expect(token.SEMI, "Expected ';' after expression")
	return ast.NewExprStmt(expr, pos)
}
