package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/pydocgen-mcp/internal/mcp"
)

// newMCPCmd creates the mcp command for stdio serving
func newMCPCmd() *cobra.Command {
	var cachePath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `MCP starts a Model Context Protocol server that exposes the
document_file, document_tree, and get_status tools over stdio. Logs go to
stderr; stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			srv, err := mcp.NewServer(cachePath)
			if err != nil {
				return err
			}
			logger.Info("MCP server started")
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cachePath, "cache", "", "docstring cache path (default: "+mcp.DefaultCachePath+")")

	return cmd
}
