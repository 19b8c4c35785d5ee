/*
File    : tiny-c-compiler/internal/ast/types.go
Author  : Ryan Tobin
*/
package ast

// DataType is the closed set of data types tinyc understands. There are
// no implicit conversions between them except that any numeric type
// (Int or Char) is acceptable in a boolean context.
type DataType int

const (
	// Unknown marks a type that has not been inferred yet (before
	// semantic analysis runs) or that could not be determined after an
	// error.
	Unknown DataType = iota
	Int              // 32-bit signed
	Char             // 8-bit
	Void
	CharPtr // pointer to 8-bit data; produced by string literals and "char *"
)

// String renders a data type the way it appears in diagnostics and
// generated comments.
func (d DataType) String() string {
	switch d {
	case Int:
		return "int"
	case Char:
		return "char"
	case Void:
		return "void"
	case CharPtr:
		return "char*"
	default:
		return "<unknown>"
	}
}

// IsNumeric reports whether d is acceptable in a boolean context.
func (d DataType) IsNumeric() bool {
	return d == Int || d == Char
}

// Size returns the storage size in bytes tinyc uses for a value of this
// type when laying out a stack frame (int=4, char=1, char*=8, void=0).
func (d DataType) Size() int {
	switch d {
	case Int:
		return 4
	case Char:
		return 1
	case CharPtr:
		return 8
	default:
		return 0
	}
}
