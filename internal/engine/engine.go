package engine

import (
	"context"
	"strings"

	"github.com/dshills/pydocgen-mcp/internal/extractor"
	"github.com/dshills/pydocgen-mcp/internal/generator"
	"github.com/dshills/pydocgen-mcp/internal/planner"
	"github.com/dshills/pydocgen-mcp/internal/splicer"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// Engine runs the single-file pipeline: extract declarations, plan
// insertions, generate blocks, splice. It operates purely on in-memory
// text; file and network I/O live at the batch boundary and inside the
// injected generator capability.
type Engine struct {
	gen        *generator.Generator
	style      types.DocStyle
	indentUnit int
}

// Option configures an Engine
type Option func(*Engine)

// WithStyle sets the docstring style for generated blocks
func WithStyle(style types.DocStyle) Option {
	return func(e *Engine) { e.style = style.Normalize() }
}

// WithIndentUnit sets the indent size added below declaration headers
func WithIndentUnit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.indentUnit = n
		}
	}
}

// New creates an Engine around gen. Defaults: Google style, 4-space indent.
func New(gen *generator.Generator, opts ...Option) *Engine {
	e := &Engine{
		gen:        gen,
		style:      types.StyleGoogle,
		indentUnit: planner.DefaultIndentUnit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Style returns the engine's configured docstring style
func (e *Engine) Style() types.DocStyle { return e.style }

// DocumentSource returns source with a docstring spliced in after every
// undocumented declaration, along with the number of insertions. Running
// it again on its own output changes nothing: every declaration it
// documented now has a docstring and is filtered out. Empty source is
// valid Python (an empty __init__.py) and passes through unchanged.
//
// Errors are MalformedSource (with location) for unparseable input and
// context cancellation; delegated generation failures are absorbed by the
// generator's fallback.
func (e *Engine) DocumentSource(ctx context.Context, source string) (string, int, error) {
	decls, err := extractor.Extract(source)
	if err != nil {
		return "", 0, err
	}

	lines := strings.Split(source, "\n")
	var insertions []splicer.Insertion

	for _, decl := range decls {
		if decl.HasDocstring {
			continue
		}

		plan := planner.Plan(decl, headerLine(lines, decl.StartLine), e.indentUnit)
		if !plan.Eligible() {
			continue
		}

		block, err := e.gen.Generate(ctx, generator.Request{
			Code:    decl.Snippet,
			Kind:    decl.Kind,
			Name:    decl.Name,
			Style:   e.style,
			Params:  decl.Params,
			Members: decl.Members,
		})
		if err != nil {
			return "", 0, err
		}

		insertions = append(insertions, splicer.Insertion{Plan: plan, Block: *block})
	}

	if len(insertions) == 0 {
		return source, 0, nil
	}
	return splicer.Apply(lines, insertions), len(insertions), nil
}

func headerLine(lines []string, lineno int) string {
	if lineno < 1 || lineno > len(lines) {
		return ""
	}
	return lines[lineno-1]
}
