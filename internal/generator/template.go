package generator

import (
	"fmt"

	"github.com/dshills/pydocgen-mcp/internal/extractor"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// Template builds the deterministic fallback block for a request. It uses
// only the declaration's parameter or member list (re-derived from the
// snippet when the request does not carry one) and fixed prose skeletons
// per style, so identical input always yields identical output.
func Template(req Request, style types.DocStyle) *types.DocBlock {
	if req.Kind == types.KindClass {
		return classTemplate(req.Name, req.Members, style)
	}

	params := req.Params
	if params == nil {
		params = extractor.ParamsFromSnippet(req.Code)
	}
	return callableTemplate(req.Name, params, style)
}

func callableTemplate(name string, params []string, style types.DocStyle) *types.DocBlock {
	if style.Normalize() == types.StyleNumPy {
		lines := []string{name + ".", ""}
		if len(params) > 0 {
			lines = append(lines, "Parameters", "----------")
			for _, p := range params {
				lines = append(lines, p+" : Any", "    Description.")
			}
			lines = append(lines, "")
		}
		lines = append(lines, "Returns", "-------", "Any", "    Description.")
		return &types.DocBlock{Lines: lines}
	}

	lines := []string{fmt.Sprintf("Brief description of %s.", name), ""}
	if len(params) > 0 {
		lines = append(lines, "Args:")
		for _, p := range params {
			lines = append(lines, fmt.Sprintf("    %s (Any): Description of %s.", p, p))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "Returns:", "    Any: Description of return value.")
	return &types.DocBlock{Lines: lines}
}

func classTemplate(name string, members []string, style types.DocStyle) *types.DocBlock {
	if style.Normalize() == types.StyleNumPy {
		lines := []string{name + "."}
		if len(members) > 0 {
			lines = append(lines, "", "Methods", "-------")
			for _, m := range members {
				lines = append(lines, m, "    Description.")
			}
		}
		return &types.DocBlock{Lines: lines}
	}

	lines := []string{fmt.Sprintf("Brief description of %s.", name)}
	if len(members) > 0 {
		lines = append(lines, "", "Methods:")
		for _, m := range members {
			lines = append(lines, fmt.Sprintf("    %s: Description of %s.", m, m))
		}
	}
	return &types.DocBlock{Lines: lines}
}
