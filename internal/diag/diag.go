/*
File    : tiny-c-compiler/internal/diag/diag.go
Author  : Ryan Tobin
*/

// Package diag is the shared error-accumulation shape used by the
// parser and the semantic analyzer (spec.md §7's "errors are
// accumulated" propagation policy): each phase's result is an
// (output, error_list) pair rather than an either-or, and a Bag
// preserves insertion order so report order equals discovery order.
package diag

import (
	"fmt"
	"strings"
)

// Record is one diagnostic: a 1-based source position, an optional
// context string (e.g. the enclosing function, used by semantic
// errors only), and a human-readable message.
type Record struct {
	Line    int
	Column  int
	Context string
	Message string
}

func (r Record) String() string {
	if r.Context != "" {
		return fmt.Sprintf("line %d, column %d in %s: %s", r.Line, r.Column, r.Context, r.Message)
	}
	return fmt.Sprintf("line %d, column %d: %s", r.Line, r.Column, r.Message)
}

// Bag accumulates Records in discovery order.
type Bag struct {
	records []Record
}

// Add appends a record with no context (used by the parser).
func (b *Bag) Add(line, column int, message string) {
	b.records = append(b.records, Record{Line: line, Column: column, Message: message})
}

// Addf appends a formatted record with no context.
func (b *Bag) Addf(line, column int, format string, args ...interface{}) {
	b.Add(line, column, fmt.Sprintf(format, args...))
}

// AddContext appends a record carrying a context string (used by the
// semantic analyzer).
func (b *Bag) AddContext(line, column int, context, message string) {
	b.records = append(b.records, Record{Line: line, Column: column, Context: context, Message: message})
}

// AddContextf appends a formatted, contextual record.
func (b *Bag) AddContextf(line, column int, context, format string, args ...interface{}) {
	b.AddContext(line, column, context, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any record has been added.
func (b *Bag) HasErrors() bool { return len(b.records) > 0 }

// Count returns the number of accumulated records.
func (b *Bag) Count() int { return len(b.records) }

// Records returns every accumulated record, in discovery order.
func (b *Bag) Records() []Record { return b.records }

// String joins every record's rendering with newlines.
func (b *Bag) String() string {
	lines := make([]string, len(b.records))
	for i, r := range b.records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
