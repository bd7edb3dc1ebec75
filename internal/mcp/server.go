package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/pydocgen-mcp/internal/generator"
	"github.com/dshills/pydocgen-mcp/internal/store"
)

const (
	// ServerName is the MCP server name
	ServerName = "pydocgen-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultCachePath is the default location of the docstring cache
	DefaultCachePath = "~/.pydocgen/cache.db"
)

// Server wraps the MCP server with the generation dependencies shared by
// all tool handlers. Engines are built per call, since style and indent
// arrive as tool arguments.
type Server struct {
	mcp   *server.MCPServer
	gen   *generator.Generator
	cache *store.Store
}

// NewServer creates an MCP server instance. cachePath == "" uses the
// default under the user's home directory.
func NewServer(cachePath string) (*Server, error) {
	if cachePath == "" {
		cachePath = DefaultCachePath
	}
	if cachePath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cachePath = filepath.Join(home, cachePath[1:])
	}

	cache, err := store.Open(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open docstring cache: %w", err)
	}

	gen, err := generator.NewFromEnv(generator.WithStore(cache))
	if err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	s := &Server{
		mcp:   server.NewMCPServer(ServerName, ServerVersion),
		gen:   gen,
		cache: cache,
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.cache.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(documentFileTool(), s.handleDocumentFile)
	s.mcp.AddTool(documentTreeTool(), s.handleDocumentTree)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
