/*
File    : tiny-c-compiler/internal/codegen/frame.go
Author  : Ryan Tobin
*/
package codegen

import "github.com/ryan-tobin/tiny-c-compiler/internal/ast"

// frame tracks one function's stack layout: every parameter and local
// variable gets its own 8-byte-aligned slot below %rbp, assigned once
// up front by walking the body in declaration order (spec.md §4.4
// "Stack frame layout"). tinyc never reuses a slot once a block exits
// — that would require proving no outstanding reference survives the
// block, which the simple allocator does not attempt.
type frame struct {
	fnName  string
	offsets map[ast.Node]int // *ast.Parameter / *ast.VariableDecl -> rbp-relative offset
	size    int              // total frame size, rounded up to 16 bytes

	scopes []map[string]int // name -> offset, mirrors the lexical scope the generator is currently in
}

func newFrame(fn *ast.FunctionDecl) *frame {
	fr := &frame{fnName: fn.Name, offsets: map[ast.Node]int{}}
	next := 0
	for _, p := range fn.Params {
		next -= roundTo8(p.Type.Size())
		fr.offsets[p] = next
	}
	if fn.Body != nil {
		collectLocals(fn.Body, &next, fr.offsets)
	}
	fr.size = roundTo16(-next)
	return fr
}

// collectLocals walks every statement reachable from s, in the order
// the generator will later visit them, assigning each VariableDecl a
// fresh slot. Declarations inside both branches of an if, or inside a
// loop body, each get their own slot even though only one path runs at
// a time — trading a larger frame for a trivially simple allocator.
func collectLocals(s ast.Stmt, next *int, offsets map[ast.Node]int) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		for _, inner := range n.Stmts {
			collectLocals(inner, next, offsets)
		}
	case *ast.VariableDecl:
		*next -= roundTo8(n.Type.Size())
		offsets[n] = *next
	case *ast.IfStmt:
		collectLocals(n.Then, next, offsets)
		if n.Else != nil {
			collectLocals(n.Else, next, offsets)
		}
	case *ast.WhileStmt:
		collectLocals(n.Body, next, offsets)
	case *ast.ForStmt:
		if n.Init != nil {
			collectLocals(n.Init, next, offsets)
		}
		collectLocals(n.Body, next, offsets)
	}
}

func roundTo8(size int) int {
	if size <= 0 {
		size = 8
	}
	return ((size + 7) / 8) * 8
}

func roundTo16(size int) int {
	return ((size + 15) / 16) * 16
}

func (fr *frame) pushScope() { fr.scopes = append(fr.scopes, map[string]int{}) }

func (fr *frame) popScope() { fr.scopes = fr.scopes[:len(fr.scopes)-1] }

// declareParam binds name to the slot collected for p and must be
// called for every parameter before the function's outermost block is
// generated.
func (fr *frame) declareParam(p *ast.Parameter) {
	fr.scopes[len(fr.scopes)-1][p.Name] = fr.offsets[p]
}

// declareLocal binds decl.Name to its collected slot in the current
// innermost scope, shadowing any outer binding of the same name.
func (fr *frame) declareLocal(decl *ast.VariableDecl) {
	fr.scopes[len(fr.scopes)-1][decl.Name] = fr.offsets[decl]
}

// resolve finds name's stack offset, searching from the innermost
// scope outward.
func (fr *frame) resolve(name string) (int, bool) {
	for i := len(fr.scopes) - 1; i >= 0; i-- {
		if off, ok := fr.scopes[i][name]; ok {
			return off, true
		}
	}
	return 0, false
}
