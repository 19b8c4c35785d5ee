/*
File    : tiny-c-compiler/internal/symtab/symtab.go
Author  : Ryan Tobin
*/

// Package symtab implements the scope stack and symbol table the
// semantic analyzer uses to resolve identifiers and calls.
//
// Each lexical scope owns a fixed-size, 256-bucket chained hash table
// keyed by symbol name (spec.md §4.3, "Symbol table representation").
// A Table is a stack of Scopes: Lookup walks outward from the innermost
// scope to the global one; Declare always targets the innermost scope;
// popping a scope discards exactly the bindings it introduced.
package symtab

import "github.com/ryan-tobin/tiny-c-compiler/internal/ast"

// Kind distinguishes what a Symbol names.
type Kind int

const (
	VariableSymbol Kind = iota
	FunctionSymbol
	ParameterSymbol
)

// Symbol is a named binding recorded in a scope.
type Symbol struct {
	Name  string
	Kind  Kind
	Type  ast.DataType
	Level int // the scope level (0 = global) it was declared in

	// Function-only fields.
	ParamTypes []ast.DataType
	Defined    bool // has a body been seen for this function yet
}

const bucketCount = 256

type entry struct {
	sym  Symbol
	next *entry
}

// scope is one lexical level's chained hash table.
type scope struct {
	buckets [bucketCount]*entry
	level   int
}

// djb2 hashes a name the way spec.md §4.3 prescribes:
// h = 5381; for c in bytes: h = ((h<<5) + h) + c
func djb2(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h
}

func (sc *scope) bucket(name string) int {
	return int(djb2(name) % bucketCount)
}

// lookupLocal searches only this scope, not its ancestors.
func (sc *scope) lookupLocal(name string) (Symbol, bool) {
	for e := sc.buckets[sc.bucket(name)]; e != nil; e = e.next {
		if e.sym.Name == name {
			return e.sym, true
		}
	}
	return Symbol{}, false
}

// insert chains a new entry onto its bucket. Callers must first check
// lookupLocal to enforce the no-redeclaration rule; insert itself does
// not check for duplicates and always prepends a new entry. Overwriting
// an existing binding in place is update's job.
func (sc *scope) insert(sym Symbol) {
	b := sc.bucket(sym.Name)
	sc.buckets[b] = &entry{sym: sym, next: sc.buckets[b]}
}

// update replaces an existing entry for sym.Name in this scope in
// place, preserving its position in the chain. The caller must already
// know the symbol exists (via lookupLocal).
func (sc *scope) update(sym Symbol) {
	for e := sc.buckets[sc.bucket(sym.Name)]; e != nil; e = e.next {
		if e.sym.Name == sym.Name {
			e.sym = sym
			return
		}
	}
}

// Table is a stack of scopes, innermost last.
type Table struct {
	scopes []*scope
}

// NewTable returns a Table containing only the global scope (level 0).
func NewTable() *Table {
	t := &Table{}
	t.Push()
	return t
}

// Push enters a new, empty scope one level deeper than the current one.
func (t *Table) Push() {
	level := 0
	if n := len(t.scopes); n > 0 {
		level = t.scopes[n-1].level + 1
	}
	t.scopes = append(t.scopes, &scope{level: level})
}

// Pop discards the innermost scope and every binding it introduced.
func (t *Table) Pop() {
	if len(t.scopes) == 0 {
		return
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Level returns the current (innermost) scope's depth, 0 being global.
func (t *Table) Level() int {
	if len(t.scopes) == 0 {
		return 0
	}
	return t.scopes[len(t.scopes)-1].level
}

func (t *Table) innermost() *scope {
	return t.scopes[len(t.scopes)-1]
}

// Declare inserts sym into the innermost scope. It reports ok=false
// without inserting if a symbol with the same name already exists in
// that scope (redeclaration); shadowing an enclosing scope is always
// permitted.
func (t *Table) Declare(sym Symbol) (ok bool) {
	sc := t.innermost()
	if _, exists := sc.lookupLocal(sym.Name); exists {
		return false
	}
	sym.Level = sc.level
	sc.insert(sym)
	return true
}

// Redefine overwrites an existing innermost-scope binding for sym.Name,
// used only for the prototype -> definition promotion in sema's pass 1.
// The caller must have already verified the existing binding is
// compatible.
func (t *Table) Redefine(sym Symbol) {
	sc := t.innermost()
	sym.Level = sc.level
	sc.update(sym)
}

// LookupLocal searches only the innermost scope.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	return t.innermost().lookupLocal(name)
}

// GlobalNames returns every name bound in the outermost (level 0)
// scope, for tooling that wants to enumerate top-level declarations
// (the driver's --debug-symbols flag). Order is unspecified.
func (t *Table) GlobalNames() []string {
	if len(t.scopes) == 0 {
		return nil
	}
	global := t.scopes[0]
	var names []string
	for _, head := range global.buckets {
		for e := head; e != nil; e = e.next {
			names = append(names, e.sym.Name)
		}
	}
	return names
}

// Lookup searches the innermost scope first, then walks outward through
// every enclosing scope until the global scope is exhausted.
func (t *Table) Lookup(name string) (Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i].lookupLocal(name); ok {
			return sym, true
		}
	}
	return Symbol{}, false
}
