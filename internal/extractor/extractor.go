// Package extractor builds the ordered declaration inventory for a Python
// source file. It walks the pyast block tree and reports every def, async
// def, and class with its position, parameter or member names, and whether
// a docstring is already present.
//
// A def whose enclosing suite is a class body is reported as a method.
// That classification feeds the generator's wording only; insertion
// mechanics never depend on it.
package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/pydocgen-mcp/internal/pyast"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// Extract parses source and returns its declarations in the order their
// defining keyword appears. On a structural parse failure the error is a
// *types.ParseError and no partial inventory is returned.
func Extract(source string) ([]types.Declaration, error) {
	mod, err := pyast.Parse(source)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(source, "\n")
	decls := make([]types.Declaration, 0)

	pyast.Walk(mod, func(s, parent *pyast.Stmt) {
		kind, name, ok := classify(s, parent)
		if !ok {
			return
		}

		decl := types.Declaration{
			Name:         name,
			Kind:         kind,
			StartLine:    s.Start,
			EndLine:      s.SpanEnd(),
			HasDocstring: hasDocstring(s),
			Snippet:      snippet(lines, s.Start, s.SpanEnd()),
		}

		if kind == types.KindClass {
			decl.Members = memberNames(s)
		} else {
			decl.Params = parseParams(s.Code)
		}

		decls = append(decls, decl)
	})

	return decls, nil
}

// classify identifies declaration headers and their kind. Methods are defs
// whose immediately enclosing suite belongs to a class.
func classify(s, parent *pyast.Stmt) (types.DeclKind, string, bool) {
	code := s.Code
	switch {
	case strings.HasPrefix(code, "class "):
		name := identifierAfter(code, "class")
		if name == "" {
			return "", "", false
		}
		return types.KindClass, name, true

	case strings.HasPrefix(code, "def "):
		name := identifierAfter(code, "def")
		if name == "" {
			return "", "", false
		}
		if parent != nil && isClassHeader(parent) {
			return types.KindMethod, name, true
		}
		return types.KindFunction, name, true

	case strings.HasPrefix(code, "async def "):
		name := identifierAfter(code[len("async "):], "def")
		if name == "" {
			return "", "", false
		}
		if parent != nil && isClassHeader(parent) {
			return types.KindMethod, name, true
		}
		return types.KindAsyncFunction, name, true
	}
	return "", "", false
}

func isClassHeader(s *pyast.Stmt) bool {
	return strings.HasPrefix(s.Code, "class ")
}

func isDefHeader(s *pyast.Stmt) bool {
	return strings.HasPrefix(s.Code, "def ") || strings.HasPrefix(s.Code, "async def ")
}

// identifierAfter returns the identifier following keyword in code, or ""
// when none is present.
func identifierAfter(code, keyword string) string {
	rest := strings.TrimPrefix(code, keyword)
	rest = strings.TrimLeft(rest, " \t")
	end := len(rest)
	for i, r := range rest {
		if !isIdentRune(r, i == 0) {
			end = i
			break
		}
	}
	return rest[:end]
}

// isIdentRune follows Python's identifier rules closely enough for
// declaration names, letters and underscore anywhere, digits after the
// first rune.
func isIdentRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

// hasDocstring reports whether the first statement of the suite is a bare
// string literal expression.
func hasDocstring(s *pyast.Stmt) bool {
	if len(s.Body) == 0 {
		return false
	}
	return isStringLiteral(s.Body[0].Code)
}

// isStringLiteral checks for an optional one- or two-letter string prefix
// (r, b, u, f and case/pair variants) followed by a quote.
func isStringLiteral(code string) bool {
	i := 0
	for i < len(code) && i < 2 && strings.ContainsRune("rbufRBUF", rune(code[i])) {
		i++
	}
	return i < len(code) && (code[i] == '\'' || code[i] == '"')
}

// memberNames collects the names of a class's direct def members
func memberNames(class *pyast.Stmt) []string {
	var names []string
	for _, child := range class.Body {
		if !isDefHeader(child) {
			continue
		}
		code := child.Code
		if strings.HasPrefix(code, "async def ") {
			code = code[len("async "):]
		}
		if name := identifierAfter(code, "def"); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parseParams extracts parameter names from a def header. Annotations,
// defaults, and leading * / ** markers are stripped; the bare "*" and "/"
// separators are dropped.
func parseParams(header string) []string {
	open := strings.IndexByte(header, '(')
	if open < 0 {
		return nil
	}
	inner, ok := innerParens(header[open:])
	if !ok {
		return nil
	}

	var params []string
	for _, piece := range splitTopLevel(inner) {
		name := paramName(piece)
		if name != "" {
			params = append(params, name)
		}
	}
	return params
}

// innerParens returns the text between s's leading '(' and its matching
// ')', skipping nested brackets and string literals in defaults.
func innerParens(s string) (string, bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return s[1:i], true
			}
		}
	}
	return "", false
}

// splitTopLevel splits s on commas outside brackets and string literals
func splitTopLevel(s string) []string {
	var pieces []string
	depth := 0
	var quote byte
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				pieces = append(pieces, s[last:i])
				last = i + 1
			}
		}
	}
	pieces = append(pieces, s[last:])
	return pieces
}

// paramName reduces one parameter piece to its bare name, or "" for the
// positional-only and keyword-only separators.
func paramName(piece string) string {
	p := strings.TrimSpace(piece)
	p = strings.TrimLeft(p, "*")
	if p == "" || p == "/" {
		return ""
	}
	if cut := strings.IndexAny(p, ":="); cut >= 0 {
		p = p[:cut]
	}
	p = strings.TrimSpace(p)
	first, _ := utf8.DecodeRuneInString(p)
	if p == "" || !isIdentRune(first, true) {
		return ""
	}
	return p
}

// ParamsFromSnippet re-derives the parameter list from a declaration
// snippet, tolerating leading indentation (method snippets keep their
// class-body indent). Returns nil when the snippet does not parse to a
// callable declaration.
func ParamsFromSnippet(code string) []string {
	decls, err := Extract(dedent(code))
	if err != nil {
		return nil
	}
	for _, d := range decls {
		if d.Kind != types.KindClass {
			return d.Params
		}
	}
	return nil
}

// dedent strips the common leading whitespace shared by all non-blank lines
func dedent(code string) string {
	lines := strings.Split(code, "\n")
	common := -1
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		lead := len(l) - len(trimmed)
		if common < 0 || lead < common {
			common = lead
		}
	}
	if common <= 0 {
		return code
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= common && strings.TrimLeft(l, " \t") != "" {
			out[i] = l[common:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return strings.Join(out, "\n")
}

// snippet returns the physical lines from start through end joined back
// into one text.
func snippet(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}
