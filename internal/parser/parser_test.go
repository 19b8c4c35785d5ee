/*
File    : tiny-c-compiler/internal/parser/parser_test.go
Author  : Ryan Tobin
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
)

func TestParser_EmptyInput(t *testing.T) {
	prog, errs := New("").Parse()
	assert.False(t, errs.HasErrors())
	assert.Empty(t, prog.Decls)
}

func TestParser_FunctionPrototypeAndDefinition(t *testing.T) {
	prog, errs := New(`
		int add(int a, int b);
		int add(int a, int b) { return a + b; }
	`).Parse()
	assert.False(t, errs.HasErrors())
	assert.Len(t, prog.Decls, 2)

	proto := prog.Decls[0].(*ast.FunctionDecl)
	assert.Nil(t, proto.Body)
	assert.Equal(t, "add", proto.Name)
	assert.Len(t, proto.Params, 2)

	def := prog.Decls[1].(*ast.FunctionDecl)
	assert.NotNil(t, def.Body)
}

func TestParser_PrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	prog, errs := New(`int main(){int r=1+2*3;}`).Parse()
	assert.False(t, errs.HasErrors())

	fn := prog.Decls[0].(*ast.FunctionDecl)
	decl := fn.Body.Stmts[0].(*ast.VariableDecl)
	add := decl.Init.(*ast.BinaryExpr)
	assert.Equal(t, "+", add.Op)
	assert.Equal(t, int64(1), add.Left.(*ast.NumberExpr).Value)

	mul := add.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)
	assert.Equal(t, int64(2), mul.Left.(*ast.NumberExpr).Value)
	assert.Equal(t, int64(3), mul.Right.(*ast.NumberExpr).Value)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	prog, errs := New(`int main(){int a;int b;a=b=1;}`).Parse()
	assert.False(t, errs.HasErrors())

	fn := prog.Decls[0].(*ast.FunctionDecl)
	exprStmt := fn.Body.Stmts[2].(*ast.ExprStmt)
	outer := exprStmt.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "=", outer.Op)
	assert.Equal(t, "a", outer.Left.(*ast.IdentExpr).Name)

	inner := outer.Right.(*ast.BinaryExpr)
	assert.Equal(t, "=", inner.Op)
	assert.Equal(t, "b", inner.Left.(*ast.IdentExpr).Name)
	assert.Equal(t, int64(1), inner.Right.(*ast.NumberExpr).Value)
}

func TestParser_CallOnNonIdentifierIsError(t *testing.T) {
	_, errs := New(`int main(){return (1+2)(3);}`).Parse()
	assert.True(t, errs.HasErrors())
	found := false
	for _, r := range errs.Records() {
		if r.Message == "Can only call identifiers" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_IfElse(t *testing.T) {
	prog, errs := New(`int main(){if(1){return 1;}else{return 0;}}`).Parse()
	assert.False(t, errs.HasErrors())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	ifStmt := fn.Body.Stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_ForLoopAllClausesOptional(t *testing.T) {
	prog, errs := New(`int main(){for(;;){}}`).Parse()
	assert.False(t, errs.HasErrors())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Stmts[0].(*ast.ForStmt)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Cond)
	assert.Nil(t, forStmt.Update)
}

func TestParser_MissingSemicolonAndBraceRecoversAndReportsErrors(t *testing.T) {
	// E8 from spec.md §8: `int main(){return 42` (missing ';' and '}')
	_, errs := New(`int main(){return 42`).Parse()
	assert.True(t, errs.HasErrors())
	assert.GreaterOrEqual(t, errs.Count(), 1)
}

func TestParser_RedeclarationIsNotAParserConcern(t *testing.T) {
	// The parser accepts two declarations of the same name; redeclaration
	// is a semantic-analysis error, not a syntax error.
	prog, errs := New(`int x; int x;`).Parse()
	assert.False(t, errs.HasErrors())
	assert.Len(t, prog.Decls, 2)
}

func TestParser_PanicModeSuppressesCascadingErrors(t *testing.T) {
	// A single malformed statement should synchronize at the next ';'
	// rather than producing an error for every subsequent token.
	_, errs := New(`int main(){ 1 2 3 4 5; return 0; }`).Parse()
	assert.LessOrEqual(t, errs.Count(), 2)
}
