package types

import "errors"

// DocBlock is the content of a documentation block: ordered lines with no
// quote delimiters and no indentation applied. Synthesized blocks are
// deterministic for identical (code, kind, name, style) input in fallback
// mode.
type DocBlock struct {
	Lines []string
}

// Validate checks the block invariant: at least one content line
func (b *DocBlock) Validate() error {
	if b == nil || len(b.Lines) == 0 {
		return errors.New("documentation block cannot be empty")
	}
	return nil
}

// Clone returns an independent copy of the block
func (b *DocBlock) Clone() *DocBlock {
	if b == nil {
		return nil
	}
	lines := make([]string, len(b.Lines))
	copy(lines, b.Lines)
	return &DocBlock{Lines: lines}
}
