/*
File    : tiny-c-compiler/internal/parser/expressions.go
Author  : Ryan Tobin
*/
package parser

import (
	"strconv"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

// parseExpression is the grammar's `expression := assignment` entry point.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment parses `logical_or [ '=' assignment ]`, right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()
	if p.check(token.ASSIGN) {
		pos := p.current.Pos
		p.advance()
		right := p.parseAssignment()
		return ast.NewBinary("=", left, right, pos)
	}
	return left
}

// binaryLevel parses one left-associative precedence level: next()
// parses the tighter-binding operand, and ops lists the token kinds
// (with their spellings) this level accepts.
type opSpelling struct {
	kind    token.Kind
	spelled string
}

func (p *Parser) binaryLevel(next func() ast.Expr, ops []opSpelling) ast.Expr {
	left := next()
	for {
		matched := false
		for _, op := range ops {
			if p.check(op.kind) {
				pos := p.current.Pos
				p.advance()
				right := next()
				left = ast.NewBinary(op.spelled, left, right, pos)
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
	}
}

func (p *Parser) parseLogicalOr() ast.Expr {
	return p.binaryLevel(p.parseLogicalAnd, []opSpelling{{token.OR, "||"}})
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	return p.binaryLevel(p.parseEquality, []opSpelling{{token.AND, "&&"}})
}

func (p *Parser) parseEquality() ast.Expr {
	return p.binaryLevel(p.parseRelational, []opSpelling{
		{token.EQ, "=="}, {token.NEQ, "!="},
	})
}

func (p *Parser) parseRelational() ast.Expr {
	return p.binaryLevel(p.parseAdditive, []opSpelling{
		{token.LT, "<"}, {token.LE, "<="}, {token.GT, ">"}, {token.GE, ">="},
	})
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.binaryLevel(p.parseMultiplicative, []opSpelling{
		{token.PLUS, "+"}, {token.MINUS, "-"},
	})
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.binaryLevel(p.parseUnary, []opSpelling{
		{token.STAR, "*"}, {token.SLASH, "/"}, {token.PERCENT, "%"},
	})
}

// parseUnary parses `('!'|'-'|'+') unary | postfix`.
func (p *Parser) parseUnary() ast.Expr {
	var op string
	switch p.current.Kind {
	case token.NOT:
		op = "!"
	case token.MINUS:
		op = "-"
	case token.PLUS:
		op = "+"
	default:
		return p.parsePostfix()
	}
	pos := p.current.Pos
	p.advance()
	operand := p.parseUnary()
	return ast.NewUnary(op, operand, pos)
}

// parsePostfix parses `primary ( '(' [ expression (',' expression)* ] ')' )*`.
// Call syntax is only legal when the preceding primary is a bare
// identifier; that identifier is consumed into the call's callee name
// rather than surviving as a separate IdentExpr.
func (p *Parser) parsePostfix() ast.Expr {
	primaryPos := p.current.Pos
	identName, isIdent := "", false
	if p.check(token.IDENT) {
		identName = p.current.Lexeme
		isIdent = true
	}
	expr := p.parsePrimary()

	for p.check(token.LPAREN) {
		if !isIdent {
			p.errorAtCurrent("Can only call identifiers")
			p.advance()
			p.parseCallArgs()
			continue
		}
		p.advance() // '('
		args := p.parseCallArgs()
		expr = ast.NewCall(identName, args, primaryPos)
		isIdent = false // a call's result cannot itself be called again here
	}
	return expr
}

// parseCallArgs parses `[ expression (',' expression)* ] ')'`, the '('
// already having been consumed.
func (p *Parser) parseCallArgs() []ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpression())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN, "Expected ')' after arguments")
	return args
}

// parsePrimary parses `NUMBER | STRING | IDENT | '(' expression ')'`.
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.current.Pos
	switch {
	case p.check(token.INT):
		lexeme := p.current.Lexeme
		p.advance()
		value, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			value = 0
		}
		return ast.NewNumber(value, pos)
	case p.check(token.STRING):
		lexeme := p.current.Lexeme
		p.advance()
		return ast.NewString(lexeme, pos)
	case p.check(token.IDENT):
		name := p.current.Lexeme
		p.advance()
		return ast.NewIdent(name, pos)
	case p.match(token.LPAREN):
		expr := p.parseExpression()
		p.expect(token.RPAREN, "Expected ')' after expression")
		return expr
	default:
		p.errorAtCurrent("Expected expression")
		p.advance()
		return ast.NewNumber(0, pos)
	}
}
