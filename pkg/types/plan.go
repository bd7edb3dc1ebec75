package types

// SkipNonBlockHeader is the skip reason set when a declaration's header line
// does not terminate with a block-opening colon (e.g. "def f(): pass").
const SkipNonBlockHeader = "non-block header"

// InsertionPlan decides whether and where a documentation block may be
// spliced in for one declaration.
type InsertionPlan struct {
	Decl Declaration

	// InsertAfterLine is the original 1-based line number of the
	// declaration's header; the block is inserted immediately after it.
	InsertAfterLine int

	// IndentWidth is the number of leading spaces applied to every inserted
	// line: the header's indentation plus one indent unit.
	IndentWidth int

	// SkipReason is non-empty when no insertion may occur. The splicer must
	// omit plans with a skip reason.
	SkipReason string
}

// Eligible reports whether the plan may be applied
func (p *InsertionPlan) Eligible() bool {
	return p.SkipReason == ""
}
