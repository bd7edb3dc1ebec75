// Package splicer applies planned documentation blocks to a line buffer
// without invalidating pending insertion points.
//
// All eligible plans are sorted by insertion line in descending order and
// applied highest-first. An insertion only shifts lines below itself, so
// every lower-numbered insertion point is still valid when its turn comes.
// That ordering is the engine's single correctness-critical algorithmic
// decision; planning and splicing are never interleaved.
package splicer

import (
	"sort"
	"strings"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// delimiter opens and closes every inserted documentation block
const delimiter = `"""`

// Insertion pairs a plan with the block to splice in
type Insertion struct {
	Plan  types.InsertionPlan
	Block types.DocBlock
}

// Apply splices all eligible insertions into lines and returns the final
// text. Plans carrying a skip reason or an empty block are omitted. The
// input slice is not modified.
func Apply(lines []string, insertions []Insertion) string {
	eligible := make([]Insertion, 0, len(insertions))
	for _, ins := range insertions {
		if ins.Plan.Eligible() && len(ins.Block.Lines) > 0 {
			eligible = append(eligible, ins)
		}
	}

	// Highest insertion point first: see package comment.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Plan.InsertAfterLine > eligible[j].Plan.InsertAfterLine
	})

	out := make([]string, len(lines))
	copy(out, lines)

	for _, ins := range eligible {
		out = splice(out, ins)
	}
	return strings.Join(out, "\n")
}

func splice(lines []string, ins Insertion) []string {
	indent := strings.Repeat(" ", ins.Plan.IndentWidth)

	block := make([]string, 0, len(ins.Block.Lines)+2)
	block = append(block, indent+delimiter)
	for _, content := range ins.Block.Lines {
		block = append(block, indent+content)
	}
	block = append(block, indent+delimiter)

	at := ins.Plan.InsertAfterLine // 1-based header line; insert just below
	if at > len(lines) {
		at = len(lines)
	}
	if at < 0 {
		at = 0
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	out = append(out, lines[at:]...)
	return out
}
