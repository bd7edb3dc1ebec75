// Package pyast performs a structural parse of Python source text into a
// block tree with exact line positions.
//
// The parse is two-phase. A scanner first folds physical lines into logical
// lines, tracking string literals (single, triple-quoted, prefixed),
// bracket nesting, backslash continuations, and comments, so that a
// statement spanning several physical lines is seen as one unit. A parser
// then builds the suite tree from indentation: a logical line whose code
// ends with ":" opens a suite, and every deeper-indented run of statements
// becomes its body.
//
// This is deliberately not a full Python grammar. The engine downstream
// needs only the block structure, statement positions, and statement text -
// enough to locate def / async def / class headers, their bodies, and
// leading string literals. Anything the scanner cannot reconcile
// structurally (unterminated strings, unclosed brackets, impossible
// indentation, a header with no indented block) fails with a
// *types.ParseError carrying the offending line.
//
// # Usage
//
//	mod, err := pyast.Parse(source)
//	if err != nil {
//	    var pe *types.ParseError
//	    errors.As(err, &pe) // location info
//	}
//	pyast.Walk(mod, func(s, parent *pyast.Stmt) { ... })
package pyast
