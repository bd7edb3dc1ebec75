package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/pydocgen-mcp/internal/engine"
	"github.com/dshills/pydocgen-mcp/internal/store"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams  = -32602 // Invalid method parameters
	ErrorCodeInternalError  = -32603 // Internal JSON-RPC error
	ErrorCodeFileNotFound   = -32001 // Specified file does not exist
	ErrorCodeMalformedInput = -32002 // Source could not be parsed
)

// handleDocumentFile handles the document_file tool invocation
func (s *Server) handleDocumentFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validateFilePath(path); err != nil {
		return nil, newMCPError(ErrorCodeFileNotFound, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	style := types.DocStyle(getStringDefault(args, "style", string(types.StyleGoogle)))
	write := getBoolDefault(args, "write", false)

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read file", map[string]interface{}{
			"error": err.Error(),
		})
	}

	eng := engine.New(s.gen, engine.WithStyle(style))
	output, inserted, err := eng.DocumentSource(ctx, string(source))
	if err != nil {
		code := ErrorCodeInternalError
		if errors.Is(err, types.ErrMalformedSource) {
			code = ErrorCodeMalformedInput
		}
		return nil, newMCPError(code, "documentation failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	if write && inserted > 0 {
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to write file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}

	response := map[string]interface{}{
		"path":     path,
		"inserted": inserted,
		"written":  write && inserted > 0,
	}
	if !write {
		response["output"] = output
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleDocumentTree handles the document_tree tool invocation
func (s *Server) handleDocumentTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validateTreePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	style := types.DocStyle(getStringDefault(args, "style", string(types.StyleGoogle)))
	outputRoot := getStringDefault(args, "output_root", "")
	concurrency := getIntDefault(args, "concurrency", 0)

	if outputRoot == "" {
		outputRoot = filepath.Join(path, "output_docs")
	}

	eng := engine.New(s.gen, engine.WithStyle(style))
	result, err := eng.ProcessTree(ctx, path, engine.Options{
		Concurrency: concurrency,
		OutputRoot:  outputRoot,
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "batch processing failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"run_id":          result.RunID,
		"root":            result.Root,
		"output_root":     outputRoot,
		"files_processed": result.Stats.FilesProcessed,
		"files_failed":    result.Stats.FilesFailed,
		"inserted":        result.Stats.Inserted,
		"duration_ms":     result.Stats.Duration.Milliseconds(),
	}
	if failures := result.Errors(); len(failures) > 0 {
		response["failures"] = failures
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cached, err := s.cache.Len(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read cache stats", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server":            ServerName,
		"version":           ServerVersion,
		"provider":          s.gen.Provider(),
		"cache_entries":     cached,
		"storage_driver":    store.DriverName,
		"storage_buildmode": store.BuildMode,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validateFilePath checks that a path names a readable Python source file
func validateFilePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if info.IsDir() {
		return ErrNotFile
	}
	if !strings.HasSuffix(path, ".py") {
		return ErrNotPythonFile
	}
	return nil
}

// validateTreePath checks that a path names a readable directory containing
// at least one Python file
func validateTreePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	hasPyFiles := false
	_ = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(p, ".py") {
			hasPyFiles = true
		}
		return nil
	})
	if !hasPyFiles {
		return ErrNoPythonFiles
	}
	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrNotFile         = errors.New("path is a directory, not a file")
	ErrNotPythonFile   = errors.New("path is not a Python source file")
	ErrNoPythonFiles   = errors.New("directory does not contain Python files")
)
