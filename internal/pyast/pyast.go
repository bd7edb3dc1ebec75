package pyast

import "strings"

// Stmt is one logical statement. Code is the statement's source with
// comments stripped and physical lines joined; Start and End are the
// 1-based physical lines it spans (header only, for compound statements).
// Body holds the statement's suite when its code ends with a block-opening
// colon.
type Stmt struct {
	Code   string
	Start  int
	End    int
	Indent int
	Body   []*Stmt
}

// Module is the parsed block tree of a source file
type Module struct {
	Body []*Stmt
}

// OpensSuite reports whether the statement's code terminates with the
// block-opening marker. One-line compounds like "def f(): pass" do not.
func (s *Stmt) OpensSuite() bool {
	return strings.HasSuffix(s.Code, ":")
}

// SpanEnd returns the last physical line covered by the statement,
// including its suite.
func (s *Stmt) SpanEnd() int {
	if len(s.Body) > 0 {
		return s.Body[len(s.Body)-1].SpanEnd()
	}
	return s.End
}

// Parse builds the block tree for source. On a structural failure it
// returns a *types.ParseError with the offending line; no partial tree is
// returned.
func Parse(source string) (*Module, error) {
	lls, err := scan(source)
	if err != nil {
		return nil, err
	}
	if len(lls) > 0 && lls[0].indent != 0 {
		return nil, scanErr(lls[0].start, "unexpected indent")
	}

	pos := 0
	body, err := parseSuite(lls, &pos, 0)
	if err != nil {
		return nil, err
	}
	if pos < len(lls) {
		return nil, scanErr(lls[pos].start, "unexpected indent")
	}
	return &Module{Body: body}, nil
}

// parseSuite collects consecutive statements sharing the indentation of the
// first one, recursing for each suite opener. It stops at a dedent and
// leaves the dedented line for an enclosing call.
func parseSuite(lls []logicalLine, pos *int, minIndent int) ([]*Stmt, error) {
	if *pos >= len(lls) {
		return nil, nil
	}
	suiteIndent := lls[*pos].indent
	if suiteIndent < minIndent {
		return nil, scanErr(lls[*pos].start, "expected an indented block")
	}

	var stmts []*Stmt
	for *pos < len(lls) {
		ll := lls[*pos]
		if ll.indent < suiteIndent {
			break
		}
		if ll.indent > suiteIndent {
			// After a suite opener the block was already consumed, so a
			// deeper line here is a dedent to an unaligned level. After a
			// simple statement it is a stray indent.
			if len(stmts) > 0 && stmts[len(stmts)-1].OpensSuite() {
				return nil, scanErr(ll.start, "unindent does not match any outer indentation level")
			}
			return nil, scanErr(ll.start, "unexpected indent")
		}

		stmt := &Stmt{
			Code:   ll.code,
			Start:  ll.start,
			End:    ll.end,
			Indent: ll.indent,
		}
		*pos++

		if stmt.OpensSuite() {
			if *pos >= len(lls) || lls[*pos].indent <= suiteIndent {
				return nil, scanErr(ll.start, "expected an indented block after line %d", ll.end)
			}
			body, err := parseSuite(lls, pos, suiteIndent+1)
			if err != nil {
				return nil, err
			}
			stmt.Body = body
		}

		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Walk visits every statement in document order, passing its enclosing
// statement (nil at module level).
func Walk(m *Module, fn func(s, parent *Stmt)) {
	var walk func(stmts []*Stmt, parent *Stmt)
	walk = func(stmts []*Stmt, parent *Stmt) {
		for _, s := range stmts {
			fn(s, parent)
			walk(s.Body, s)
		}
	}
	walk(m.Body, nil)
}
