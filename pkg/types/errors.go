package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the documentation pipeline
var (
	// ErrMalformedSource indicates the source text failed structural parsing.
	// Surfaced to the caller with location info; aborts that file only.
	ErrMalformedSource = errors.New("malformed source")

	// ErrGenerationFailed indicates a delegated generation call failed.
	// Always recovered locally by falling back to the template generator.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnsafeInsertion indicates a declaration header does not terminate
	// with a block-opening colon, so no docstring may be spliced after it.
	ErrUnsafeInsertion = errors.New("unsafe insertion point")

	// ErrEmptySource indicates a request carried no source text. Only API
	// surfaces that require code use it; the engine itself treats empty
	// source as a successful no-op.
	ErrEmptySource = errors.New("source cannot be empty")
)

// ParseError is a structural parse failure with source location information.
// It satisfies errors.Is(err, ErrMalformedSource).
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	pos := fmt.Sprintf("%d:%d", pe.Line, pe.Column)
	if pe.File != "" {
		pos = pe.File + ":" + pos
	}
	return pos + ": " + pe.Message
}

// Unwrap makes ParseError match ErrMalformedSource
func (pe *ParseError) Unwrap() error {
	return ErrMalformedSource
}
