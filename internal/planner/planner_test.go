package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

func decl(start int) types.Declaration {
	return types.Declaration{
		Name:      "f",
		Kind:      types.KindFunction,
		StartLine: start,
		EndLine:   start + 1,
	}
}

func TestPlan_TopLevelFunction(t *testing.T) {
	plan := Plan(decl(3), "def f(a, b):", 4)

	assert.True(t, plan.Eligible())
	assert.Equal(t, 3, plan.InsertAfterLine)
	assert.Equal(t, 4, plan.IndentWidth)
}

func TestPlan_IndentedMethod(t *testing.T) {
	plan := Plan(decl(7), "    def m(self):", 4)

	assert.True(t, plan.Eligible())
	assert.Equal(t, 8, plan.IndentWidth)
}

func TestPlan_TrailingWhitespaceTolerated(t *testing.T) {
	plan := Plan(decl(1), "def f():  \t\r", 4)
	assert.True(t, plan.Eligible())
}

func TestPlan_SingleLineDefSkipped(t *testing.T) {
	plan := Plan(decl(1), "def f(): pass", 4)

	assert.False(t, plan.Eligible())
	assert.Equal(t, types.SkipNonBlockHeader, plan.SkipReason)
	assert.Equal(t, 1, plan.InsertAfterLine)
}

func TestPlan_MultiLineSignatureHeaderSkipped(t *testing.T) {
	// The header's first physical line ends mid-signature.
	plan := Plan(decl(1), "def f(", 4)
	assert.False(t, plan.Eligible())
}

func TestPlan_CustomIndentUnit(t *testing.T) {
	plan := Plan(decl(1), "  def f():", 2)
	assert.Equal(t, 4, plan.IndentWidth)
}

func TestPlan_NonPositiveIndentUnitUsesDefault(t *testing.T) {
	plan := Plan(decl(1), "def f():", 0)
	assert.Equal(t, DefaultIndentUnit, plan.IndentWidth)
}

func TestPlan_TabIndentedHeader(t *testing.T) {
	plan := Plan(decl(1), "\tdef m(self):", 4)
	assert.True(t, plan.Eligible())
	assert.Equal(t, 5, plan.IndentWidth)
}
