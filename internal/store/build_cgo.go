//go:build cgo_sqlite
// +build cgo_sqlite

package store

// Compiled with the cgo_sqlite tag. Uses the C SQLite bindings, which are
// faster for large caches at the cost of requiring a C compiler.
//
// Build command:
//   CGO_ENABLED=1 go build -tags cgo_sqlite ./...

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration
	BuildMode = "cgo"
)
