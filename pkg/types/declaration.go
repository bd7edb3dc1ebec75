package types

import "errors"

// DeclKind represents the kind of documentable Python declaration
type DeclKind string

const (
	KindFunction      DeclKind = "function"
	KindAsyncFunction DeclKind = "async_function"
	KindMethod        DeclKind = "method"
	KindClass         DeclKind = "class"
)

// DocStyle selects the prose convention used for generated docstrings.
// Google style is the default; NumPy style is the alternate. Anything else
// normalizes to Google.
type DocStyle string

const (
	StyleGoogle DocStyle = "google"
	StyleNumPy  DocStyle = "numpy"
)

// Normalize maps unrecognized style values to the default style
func (s DocStyle) Normalize() DocStyle {
	switch s {
	case StyleGoogle, StyleNumPy:
		return s
	default:
		return StyleGoogle
	}
}

// Declaration is a function, async function, method, or class definition
// discovered by structural parsing. Line numbers are 1-based and inclusive,
// relative to the original text. Declarations are produced in the order
// their defining keyword appears in the source.
//
// A def whose immediately enclosing suite is a class body is reported with
// KindMethod; the distinction only affects generator wording, never
// insertion mechanics.
type Declaration struct {
	Name string
	Kind DeclKind

	StartLine int // header line of the defining keyword
	EndLine   int // last line of the declaration's body

	Params  []string // parameter names, in order (functions and methods)
	Members []string // direct member def names (classes only)

	// HasDocstring is true when the first statement of the body is a bare
	// string literal expression.
	HasDocstring bool

	// Snippet is the declaration's source text, header through end line.
	Snippet string
}

// Validate performs basic consistency checks on the declaration
func (d *Declaration) Validate() error {
	if d.Name == "" {
		return errors.New("declaration name is required")
	}
	switch d.Kind {
	case KindFunction, KindAsyncFunction, KindMethod, KindClass:
	default:
		return errors.New("invalid declaration kind")
	}
	if d.StartLine <= 0 || d.EndLine <= 0 {
		return errors.New("line numbers must be positive")
	}
	if d.StartLine > d.EndLine {
		return errors.New("start line must not be after end line")
	}
	if d.Kind == KindClass && len(d.Params) > 0 {
		return errors.New("classes do not carry parameters")
	}
	if d.Kind != KindClass && len(d.Members) > 0 {
		return errors.New("only classes carry member names")
	}
	return nil
}

// IsCallable reports whether the declaration takes parameters
func (d *Declaration) IsCallable() bool {
	return d.Kind != KindClass
}
