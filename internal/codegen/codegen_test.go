/*
File    : tiny-c-compiler/internal/codegen/codegen_test.go
Author  : Ryan Tobin
*/
package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryan-tobin/tiny-c-compiler/internal/parser"
	"github.com/ryan-tobin/tiny-c-compiler/internal/sema"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	prog, perrs := parser.New(src).Parse()
	assert.False(t, perrs.HasErrors(), "parse errors: %s", perrs.String())
	errs := sema.New().Analyze(prog)
	assert.False(t, errs.HasErrors(), "semantic errors: %s", errs.String())
	return Generate(prog)
}

func TestGenerate_EmitsHeaderAndSections(t *testing.T) {
	asm := compile(t, `int main() { return 0; }`)
	assert.Contains(t, asm, "# Generated by TinyC Compiler")
	assert.Contains(t, asm, ".text")
	assert.Contains(t, asm, ".data")
}

func TestGenerate_FunctionHasPrologueAndEpilogue(t *testing.T) {
	asm := compile(t, `int main() { return 0; }`)
	assert.Contains(t, asm, ".globl main")
	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "pushq %rbp")
	assert.Contains(t, asm, "movq %rsp, %rbp")
	assert.Contains(t, asm, ".Lreturn_main:")
	assert.Contains(t, asm, "leave")
	assert.Contains(t, asm, "ret")
}

func TestGenerate_ArithmeticEmitsExpectedMnemonics(t *testing.T) {
	asm := compile(t, `int main() { int r = 1 + 2 * 3; return r; }`)
	assert.Contains(t, asm, "imulq")
	assert.Contains(t, asm, "addq")
}

func TestGenerate_DivisionUsesCqtoAndIdivq(t *testing.T) {
	asm := compile(t, `int main() { int r = 10 / 3; return r; }`)
	assert.Contains(t, asm, "cqto")
	assert.Contains(t, asm, "idivq")
}

func TestGenerate_StringLiteralIsInternedIntoData(t *testing.T) {
	asm := compile(t, `
		void print(char *s);
		int main() { print("hi"); print("hi"); return 0; }
	`)
	// Interned once even though referenced twice.
	assert.Equal(t, 1, countOccurrences(asm, ".string \"hi\""))
}

func TestGenerate_CallMarshalsArgumentsIntoABIRegisters(t *testing.T) {
	asm := compile(t, `
		int add(int a, int b);
		int main() { return add(1, 2); }
	`)
	assert.Contains(t, asm, "call add")
	assert.Contains(t, asm, "%rdi")
	assert.Contains(t, asm, "%rsi")
}

func TestGenerate_IfElseEmitsDistinctLabels(t *testing.T) {
	asm := compile(t, `int main() { if (1) { return 1; } else { return 0; } }`)
	assert.Contains(t, asm, "cmpq $0, %rax")
	assert.Contains(t, asm, "je .Lelse")
}

func TestGenerate_WhileLoopEmitsBackEdge(t *testing.T) {
	asm := compile(t, `int main() { int i = 0; while (i) { i = i - 1; } return i; }`)
	assert.Contains(t, asm, ".Lloop")
	assert.Contains(t, asm, ".Lendloop")
}

func TestGenerate_LogicalAndShortCircuits(t *testing.T) {
	asm := compile(t, `int main() { int a = 1; int b = 0; int r = a && b; return r; }`)
	assert.Contains(t, asm, ".Lshortcircuit")
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
