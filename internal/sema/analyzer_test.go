/*
File    : tiny-c-compiler/internal/sema/analyzer_test.go
Author  : Ryan Tobin
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
	"github.com/ryan-tobin/tiny-c-compiler/internal/diag"
	"github.com/ryan-tobin/tiny-c-compiler/internal/parser"
)

func analyze(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, perrs := parser.New(src).Parse()
	assert.False(t, perrs.HasErrors(), "unexpected parse errors: %s", perrs.String())
	return prog
}

func TestAnalyzer_CleanProgramHasNoErrors(t *testing.T) {
	prog := analyze(t, `
		int add(int a, int b) { return a + b; }
		int main() { int r = add(1, 2); return r; }
	`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_UndefinedIdentifier(t *testing.T) {
	// E6 from spec.md §8.
	prog := analyze(t, `int main() { return undeclared_var; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
	assertHasMessage(t, errs, "Undefined identifier 'undeclared_var'")
}

func TestAnalyzer_TypeMismatchOnInitializer(t *testing.T) {
	// E7 from spec.md §8.
	prog := analyze(t, `int main() { int x = "hello"; return 0; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func TestAnalyzer_RedeclarationInSameScopeIsError(t *testing.T) {
	prog := analyze(t, `int main() { int x; int x; return 0; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
	assertHasMessage(t, errs, "Variable 'x' already declared in this scope")
}

func TestAnalyzer_ShadowingInNestedScopeIsAllowed(t *testing.T) {
	prog := analyze(t, `int main() { int x; { int x; } return 0; }`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_FunctionPrototypeThenMatchingDefinitionIsFine(t *testing.T) {
	prog := analyze(t, `
		int add(int a, int b);
		int add(int a, int b) { return a + b; }
	`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_DuplicateDefinitionIsError(t *testing.T) {
	prog := analyze(t, `
		int add(int a, int b) { return a + b; }
		int add(int a, int b) { return a - b; }
	`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
	assertHasMessage(t, errs, "Function 'add' already declared")
}

func TestAnalyzer_CallWithWrongArgumentCountIsError(t *testing.T) {
	prog := analyze(t, `
		int add(int a, int b) { return a + b; }
		int main() { return add(1); }
	`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func TestAnalyzer_AssignmentToNonIdentifierIsError(t *testing.T) {
	prog := analyze(t, `int main() { 1 = 2; return 0; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
	assertHasMessage(t, errs, "Left side of '=' must be a variable")
}

func TestAnalyzer_MissingReturnInNonVoidFunctionIsError(t *testing.T) {
	prog := analyze(t, `int main() { int x = 1; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
	assertHasMessage(t, errs, "Missing return statement in non-void function 'main'")
}

func TestAnalyzer_ReturnOnEveryIfBranchSatisfiesReturnCheck(t *testing.T) {
	prog := analyze(t, `
		int choose(int c) {
			if (c) { return 1; } else { return 0; }
		}
	`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_VoidFunctionBareReturnIsFine(t *testing.T) {
	prog := analyze(t, `void noop() { return; }`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_ReturningValueFromVoidFunctionIsError(t *testing.T) {
	prog := analyze(t, `void noop() { return 1; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func TestAnalyzer_ComparisonOfMismatchedNumericTypesIsError(t *testing.T) {
	// int and char are both numeric, but spec.md §4.3 requires equal
	// types for relational/equality operators, not merely "numeric".
	prog := analyze(t, `int main() { int a; char b; return a < b; }`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func TestAnalyzer_EqualityOfEqualCharPtrTypesIsAllowed(t *testing.T) {
	prog := analyze(t, `
		int cmp(char *a, char *b) { return a == b; }
	`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_RelationalOnEqualIntTypesIsAllowed(t *testing.T) {
	prog := analyze(t, `int main() { int a; int b; return a < b; }`)
	errs := New().Analyze(prog)
	assert.False(t, errs.HasErrors(), errs.String())
}

func TestAnalyzer_CallWithMoreThanSixArgumentsIsError(t *testing.T) {
	prog := analyze(t, `
		int sum7(int a, int b, int c, int d, int e, int f, int g) { return a; }
		int main() { return sum7(1, 2, 3, 4, 5, 6, 7); }
	`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func TestAnalyzer_FunctionWithMoreThanSixParametersIsError(t *testing.T) {
	prog := analyze(t, `
		int sum7(int a, int b, int c, int d, int e, int f, int g) { return a; }
	`)
	errs := New().Analyze(prog)
	assert.True(t, errs.HasErrors())
}

func assertHasMessage(t *testing.T, errs *diag.Bag, want string) {
	t.Helper()
	for _, r := range errs.Records() {
		if r.Message == want {
			return
		}
	}
	t.Errorf("expected an error message %q, got: %s", want, errs.String())
}
