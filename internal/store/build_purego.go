//go:build !cgo_sqlite
// +build !cgo_sqlite

package store

// Compiled by default and when CGO is unavailable. Uses the pure Go SQLite
// implementation, so cross-compiled binaries need no C toolchain.
//
// Build command:
//   CGO_ENABLED=0 go build ./...

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)
