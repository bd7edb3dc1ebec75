// Package mcp implements the Model Context Protocol (MCP) server for pydocgen.
//
// The MCP server exposes three tools to AI coding assistants:
//   - document_file: Insert docstrings into a single Python file
//   - document_tree: Document every Python file under a directory
//   - get_status: Report provider, cache, and storage information
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Tool: document_file
//
// Document one file:
//
//	Request:
//	{
//	  "name": "document_file",
//	  "arguments": {
//	    "path": "/path/to/module.py",
//	    "style": "google",
//	    "write": false
//	  }
//	}
//
//	Response:
//	{
//	  "path": "/path/to/module.py",
//	  "inserted": 3,
//	  "written": false,
//	  "output": "def add(a, b):\n    \"\"\"..."
//	}
//
// # Tool: document_tree
//
// Document a directory into a mirrored output tree:
//
//	Request:
//	{
//	  "name": "document_tree",
//	  "arguments": {
//	    "path": "/path/to/project",
//	    "style": "numpy",
//	    "output_root": "/path/to/project/output_docs",
//	    "concurrency": 4
//	  }
//	}
//
//	Response:
//	{
//	  "run_id": "9f2c...",
//	  "files_processed": 42,
//	  "files_failed": 1,
//	  "inserted": 117,
//	  "duration_ms": 5183,
//	  "failures": ["/path/to/project/broken.py: 3:7: '(' was never closed"]
//	}
//
// Per-file failures become error entries in the response; they never
// abort the run.
//
// # MCP Client Configuration
//
// Configure in an assistant's MCP settings:
//
//	{
//	  "mcpServers": {
//	    "pydocgen": {
//	      "command": "/usr/local/bin/pydocgen",
//	      "args": ["mcp"],
//	      "env": {
//	        "ANTHROPIC_API_KEY": "your-api-key"
//	      }
//	    }
//	  }
//	}
//
// # Error Handling
//
// The server returns standard JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "Invalid params",
//	    "data": {
//	      "param": "path",
//	      "reason": "path does not exist"
//	    }
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (generation, filesystem, etc.)
//   - -32001: File not found
//   - -32002: Source could not be parsed
//
// Logging goes to stderr; stdout is reserved for the MCP protocol.
package mcp
