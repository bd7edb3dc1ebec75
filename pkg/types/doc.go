// Package types defines the shared value objects used across the pydocgen
// pipeline: declarations extracted from Python source, documentation blocks,
// insertion plans, and batch results.
//
// All types in this package are plain values created fresh per run. Nothing
// here holds shared mutable state; the batch coordinator owns the only
// structure written to from multiple goroutines (BatchResult.Files) and
// guards it itself.
//
// # Core Types
//
//	Declaration   - a def / async def / class found by structural parsing
//	DocBlock      - the content lines of a docstring (no quotes, no indent)
//	InsertionPlan - where and how a DocBlock may be spliced into the source
//	BatchResult   - per-file outcome of a directory run
//	ParseError    - structural parse failure with source location
//
// # Error Taxonomy
//
// Sentinel errors follow the engine's recovery contract:
//
//	ErrMalformedSource  - parse failure; aborts that file only
//	ErrGenerationFailed - delegated generation failed; recovered by fallback
//	ErrUnsafeInsertion  - header is not a block opener; declaration skipped
//	ErrEmptySource      - a request that requires code carried none
package types
