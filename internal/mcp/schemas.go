package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// documentFileTool returns the tool definition for document_file
func documentFileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "document_file",
		Description: "Generate and insert docstrings for every undocumented function, method, and class in a Python file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a Python source file",
				},
				"style": map[string]interface{}{
					"type":        "string",
					"description": "Docstring style to generate",
					"enum":        []string{"google", "numpy"},
					"default":     "google",
				},
				"write": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, write the result back to the file instead of returning the text",
					"default":     false,
				},
			},
			Required: []string{"path"},
		},
	}
}

// documentTreeTool returns the tool definition for document_tree
func documentTreeTool() mcp.Tool {
	return mcp.Tool{
		Name:        "document_tree",
		Description: "Document every Python file under a directory, writing results to a mirrored output tree",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the directory to process",
				},
				"style": map[string]interface{}{
					"type":        "string",
					"description": "Docstring style to generate",
					"enum":        []string{"google", "numpy"},
					"default":     "google",
				},
				"output_root": map[string]interface{}{
					"type":        "string",
					"description": "Directory receiving transformed files at mirrored relative paths (default: output_docs under path)",
				},
				"concurrency": map[string]interface{}{
					"type":        "integer",
					"description": "Worker pool size (0 uses the CPU count)",
					"default":     0,
					"minimum":     0,
				},
			},
			Required: []string{"path"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report the active generation provider, cache size, and storage build information",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
