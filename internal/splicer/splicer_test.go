package splicer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

func plan(after, indent int) types.InsertionPlan {
	return types.InsertionPlan{InsertAfterLine: after, IndentWidth: indent}
}

func block(lines ...string) types.DocBlock {
	return types.DocBlock{Lines: lines}
}

func TestApply_SingleInsertion(t *testing.T) {
	lines := []string{"def add(a, b):", "    return a + b"}

	out := Apply(lines, []Insertion{
		{Plan: plan(1, 4), Block: block("Adds a and b.")},
	})

	assert.Equal(t, strings.Join([]string{
		"def add(a, b):",
		`    """`,
		"    Adds a and b.",
		`    """`,
		"    return a + b",
	}, "\n"), out)
}

func TestApply_EmptyContentLineStillIndented(t *testing.T) {
	lines := []string{"def f():", "    pass"}

	out := Apply(lines, []Insertion{
		{Plan: plan(1, 4), Block: block("Top.", "", "Bottom.")},
	})

	assert.Contains(t, strings.Split(out, "\n"), "    ")
}

func TestApply_MultipleInsertionsKeepLowerPointsValid(t *testing.T) {
	lines := []string{
		"def first():",
		"    return 1",
		"",
		"def second():",
		"    return 2",
	}

	out := Apply(lines, []Insertion{
		{Plan: plan(1, 4), Block: block("First.")},
		{Plan: plan(4, 4), Block: block("Second.")},
	})

	got := strings.Split(out, "\n")
	require.Len(t, got, 11)
	assert.Equal(t, "def first():", got[0])
	assert.Equal(t, "    First.", got[2])
	assert.Equal(t, "def second():", got[6])
	assert.Equal(t, "    Second.", got[8])
}

func TestApply_InputOrderDoesNotMatter(t *testing.T) {
	lines := []string{"def a():", "    pass", "def b():", "    pass"}
	forward := []Insertion{
		{Plan: plan(1, 4), Block: block("A.")},
		{Plan: plan(3, 4), Block: block("B.")},
	}
	backward := []Insertion{forward[1], forward[0]}

	assert.Equal(t, Apply(lines, forward), Apply(lines, backward))
}

func TestApply_LineCountInvariant(t *testing.T) {
	lines := []string{"def a():", "    pass", "def b():", "    pass"}
	insertions := []Insertion{
		{Plan: plan(1, 4), Block: block("A.", "More.")},
		{Plan: plan(3, 4), Block: block("B.")},
	}

	out := strings.Split(Apply(lines, insertions), "\n")

	// Every original line survives in order; only block lines are added.
	want := len(lines) + (2 + 2) + (1 + 2)
	assert.Len(t, out, want)
	idx := 0
	for _, l := range out {
		if idx < len(lines) && l == lines[idx] {
			idx++
		}
	}
	assert.Equal(t, len(lines), idx)
}

func TestApply_SkipsIneligibleAndEmpty(t *testing.T) {
	lines := []string{"def f(): pass"}

	skipped := types.InsertionPlan{InsertAfterLine: 1, SkipReason: types.SkipNonBlockHeader}
	out := Apply(lines, []Insertion{
		{Plan: skipped, Block: block("Never inserted.")},
		{Plan: plan(1, 4), Block: block()},
	})

	assert.Equal(t, "def f(): pass", out)
}

func TestApply_NoInsertions(t *testing.T) {
	lines := []string{"x = 1", "y = 2"}
	assert.Equal(t, "x = 1\ny = 2", Apply(lines, nil))
}

func TestApply_InputSliceUntouched(t *testing.T) {
	lines := []string{"def f():", "    pass"}
	want := []string{"def f():", "    pass"}

	Apply(lines, []Insertion{{Plan: plan(1, 4), Block: block("Doc.")}})

	assert.Equal(t, want, lines)
}

func TestApply_InsertionPointClampedToBounds(t *testing.T) {
	lines := []string{"x = 1"}

	out := Apply(lines, []Insertion{{Plan: plan(99, 0), Block: block("End.")}})
	assert.Equal(t, "x = 1\n\"\"\"\nEnd.\n\"\"\"", out)
}
