// Package planner decides whether and where a documentation block may be
// safely inserted for an undocumented declaration.
//
// A plan targets the line immediately after the declaration's header. The
// one safety gate: the header line, right-trimmed, must end with the
// block-opening colon. Single-line definitions ("def f(): pass") and
// headers whose signature continues onto further lines fail that check and
// are skipped rather than risk corrupting the body. A declaration with an
// empty body still gets a plan; the block simply lands right after the
// header.
package planner

import (
	"strings"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// DefaultIndentUnit is the indent size added below the header when the
// engine does not configure one.
const DefaultIndentUnit = 4

// blockOpener terminates every header that safely accepts an insertion
const blockOpener = ":"

// Plan computes the insertion plan for decl given the raw text of its
// header line. indentUnit <= 0 uses the default.
func Plan(decl types.Declaration, headerLine string, indentUnit int) types.InsertionPlan {
	if indentUnit <= 0 {
		indentUnit = DefaultIndentUnit
	}

	plan := types.InsertionPlan{
		Decl:            decl,
		InsertAfterLine: decl.StartLine,
	}

	if !strings.HasSuffix(strings.TrimRight(headerLine, " \t\r"), blockOpener) {
		plan.SkipReason = types.SkipNonBlockHeader
		return plan
	}

	plan.IndentWidth = leadingWhitespace(headerLine) + indentUnit
	return plan
}

// leadingWhitespace counts the header's leading whitespace characters,
// matching how the inserted block's indentation is measured.
func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
