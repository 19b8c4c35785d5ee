/*
File    : tiny-c-compiler/internal/codegen/codegen.go
Author  : Ryan Tobin
*/

// Package codegen lowers a type-checked AST straight to x86-64 System V
// AT&T assembly text. There is no intermediate representation and no
// optimization pass (spec.md §4.4, Non-goals): each AST node is visited
// exactly once and emits the instructions for its own behavior,
// trusting the values the semantic analyzer already validated.
package codegen

import (
	"fmt"
	"strings"

	"github.com/ryan-tobin/tiny-c-compiler/internal/ast"
)

// argRegisters are the System V integer/pointer argument registers, in
// order. tinyc never emits a call with more than len(argRegisters)
// arguments (spec.md's Open Question 1, resolved in SPEC_FULL.md §5.1);
// the semantic analyzer's arg-count check makes that a precondition,
// not something codegen re-verifies.
var argRegisters = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// scratchRegisters lists the general-purpose registers outside the
// argument registers and rbp/rsp. The expression generator does not
// allocate from it: genExpr keeps every value in %rax and spills to the
// stack instead.
var scratchRegisters = []string{"rax", "rbx", "r10", "r11", "r12", "r13", "r14", "r15"}

// Generator emits one translation unit's worth of assembly.
type Generator struct {
	out     strings.Builder
	strings *stringTable
	labels  int

	frame *frame // the function currently being generated, nil at top level
}

// New creates an empty Generator.
func New() *Generator {
	return &Generator{strings: newStringTable()}
}

// Generate lowers prog to a complete .s file: a header comment, the
// .text section with one label per defined function, and a trailing
// .data section holding every interned string literal.
func Generate(prog *ast.Program) string {
	g := New()
	g.emitLine("# Generated by TinyC Compiler")
	g.emitLine(".text")

	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.FunctionDecl); ok && fn.Body != nil {
			g.genFunction(fn)
		}
	}

	g.emitLine("")
	g.emitLine(".data")
	g.strings.emit(&g.out)

	return g.out.String()
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, "\t"+format+"\n", args...)
}

func (g *Generator) emitLine(line string) {
	g.out.WriteString(line)
	g.out.WriteByte('\n')
}

func (g *Generator) emitLabel(name string) {
	fmt.Fprintf(&g.out, "%s:\n", name)
}

// newLabel returns a fresh, monotonically increasing local label.
func (g *Generator) newLabel(purpose string) string {
	g.labels++
	return fmt.Sprintf(".L%s%d", purpose, g.labels)
}

func (g *Generator) genFunction(fn *ast.FunctionDecl) {
	fr := newFrame(fn)
	g.frame = fr

	g.emitLine(".globl " + fn.Name)
	g.emitLabel(fn.Name)
	g.emit("pushq %%rbp")
	g.emit("movq %%rsp, %%rbp")
	if fr.size > 0 {
		g.emit("subq $%d, %%rsp", fr.size)
	}

	// Semantic analysis rejects any function declaring more than
	// len(argRegisters) parameters, so every parameter here always has
	// an incoming argument register to copy from.
	fr.pushScope()
	for i, param := range fn.Params {
		fr.declareParam(param)
		g.emit("mov%s %%%s, %d(%%rbp)", suffix(param.Type.Size()), sizedReg(argRegisters[i], param.Type.Size()), fr.offsets[param])
	}

	g.genStmt(fn.Body)
	fr.popScope()

	g.emitLabel(".Lreturn_" + fn.Name)
	if fn.ReturnType == ast.Void {
		g.emit("movq $0, %%rax")
	}
	g.emit("leave")
	g.emit("ret")
	g.emitLine("")

	g.frame = nil
}

// sizedReg returns reg narrowed to width bytes using the matching
// sub-register name, for 4-byte (int) and 1-byte (char) stores; 8-byte
// values use the 64-bit name unchanged.
func sizedReg(reg string, width int) string {
	switch width {
	case 1:
		return byteReg(reg)
	case 4:
		return dwordReg(reg)
	default:
		return reg
	}
}

var dwordNames = map[string]string{
	"rax": "eax", "rbx": "ebx", "rcx": "ecx", "rdx": "edx",
	"rsi": "esi", "rdi": "edi", "rbp": "ebp", "rsp": "esp",
	"r8": "r8d", "r9": "r9d", "r10": "r10d", "r11": "r11d",
	"r12": "r12d", "r13": "r13d", "r14": "r14d", "r15": "r15d",
}

var byteNames = map[string]string{
	"rax": "al", "rbx": "bl", "rcx": "cl", "rdx": "dl",
	"rsi": "sil", "rdi": "dil",
	"r8": "r8b", "r9": "r9b", "r10": "r10b", "r11": "r11b",
	"r12": "r12b", "r13": "r13b", "r14": "r14b", "r15": "r15b",
}

func dwordReg(reg string) string {
	if n, ok := dwordNames[reg]; ok {
		return n
	}
	return reg
}

func byteReg(reg string) string {
	if n, ok := byteNames[reg]; ok {
		return n
	}
	return reg
}
