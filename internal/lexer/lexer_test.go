/*
File    : tiny-c-compiler/internal/lexer/lexer_test.go
Author  : Ryan Tobin
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryan-tobin/tiny-c-compiler/internal/token"
)

// collect drains every token up to and including EOF.
func collect(src string) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexer_Keywords(t *testing.T) {
	toks := collect("int char void if else while for return")
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.KW_INT, token.KW_CHAR, token.KW_VOID, token.KW_IF,
		token.KW_ELSE, token.KW_WHILE, token.KW_FOR, token.KW_RETURN, token.EOF,
	}, kinds)
}

func TestLexer_Operators(t *testing.T) {
	toks := collect("== != <= >= && || < > = + - * / %")
	var kinds []token.Kind
	for _, tok := range toks {
		if tok.Kind != token.EOF {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.EQ, token.NEQ, token.LE, token.GE, token.AND, token.OR,
		token.LT, token.GT, token.ASSIGN, token.PLUS, token.MINUS,
		token.STAR, token.SLASH, token.PERCENT,
	}, kinds)
}

func TestLexer_IdentifiersAndNumbers(t *testing.T) {
	toks := collect("x foo_bar 42 007")
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Lexeme)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, "foo_bar", toks[1].Lexeme)
	assert.Equal(t, token.INT, toks[2].Kind)
	assert.Equal(t, "42", toks[2].Lexeme)
	assert.Equal(t, token.INT, toks[3].Kind)
	assert.Equal(t, "007", toks[3].Lexeme)
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := collect(`"hello\nworld"`)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `hello\nworld`, toks[0].Lexeme)
}

func TestLexer_UnterminatedString(t *testing.T) {
	toks := collect(`"hello`)
	assert.Equal(t, token.ERROR, toks[0].Kind)
	assert.Equal(t, "Unterminated string", toks[0].Lexeme)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 1, toks[0].Pos.Column)
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	toks := collect("1 + /* never closed")
	var errTok *token.Token
	for i := range toks {
		if toks[i].Kind == token.ERROR {
			errTok = &toks[i]
			break
		}
	}
	if assert.NotNil(t, errTok) {
		assert.Equal(t, "Unterminated block comment", errTok.Lexeme)
	}
}

func TestLexer_LineComment(t *testing.T) {
	toks := collect("1 // trailing comment\n+ 2")
	kinds := []token.Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind}
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT}, kinds)
}

func TestLexer_AmpersandPipeAlone(t *testing.T) {
	toks := collect("& |")
	assert.Equal(t, token.ERROR, toks[0].Kind)
	assert.Equal(t, "Unexpected character", toks[0].Lexeme)
	assert.Equal(t, token.ERROR, toks[1].Kind)
	assert.Equal(t, "Unexpected character", toks[1].Lexeme)
}

func TestLexer_EmptyInput(t *testing.T) {
	toks := collect("")
	assert.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestLexer_PositionsMonotonic(t *testing.T) {
	toks := collect("int main() {\n  return 1 + 2;\n}")
	prevLine, prevCol := 1, 1
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Pos.Line == prevLine {
			assert.GreaterOrEqual(t, tok.Pos.Column, prevCol)
		} else {
			assert.Greater(t, tok.Pos.Line, prevLine)
		}
		prevLine, prevCol = tok.Pos.Line, tok.Pos.Column
	}
}

func TestLexer_PeekDoesNotAdvance(t *testing.T) {
	l := New("int x")
	peeked := l.PeekToken()
	next := l.NextToken()
	assert.Equal(t, peeked.Kind, next.Kind)
	assert.Equal(t, peeked.Pos, next.Pos)
	second := l.NextToken()
	assert.Equal(t, token.IDENT, second.Kind)
	assert.Equal(t, "x", second.Lexeme)
}

func TestLexer_Reset(t *testing.T) {
	l := New("int x")
	first := l.NextToken()
	l.NextToken()
	l.Reset()
	again := l.NextToken()
	assert.Equal(t, first, again)
}
