package pyast

import (
	"fmt"
	"strings"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// tabWidth is the column multiple leading tabs expand to, matching
// CPython's tokenizer.
const tabWidth = 8

// logicalLine is one statement's worth of source: physical lines joined
// across brackets, strings, and backslash continuations, with comments
// stripped and trailing whitespace removed.
type logicalLine struct {
	code   string
	start  int // 1-based first physical line
	end    int // 1-based last physical line
	indent int // expanded column width of leading whitespace
}

type openBracket struct {
	ch   rune
	line int
}

func matchingOpen(close rune) rune {
	switch close {
	case ')':
		return '('
	case ']':
		return '['
	default:
		return '{'
	}
}

func scanErr(line int, format string, args ...interface{}) error {
	return &types.ParseError{
		Line:    line,
		Column:  1,
		Message: fmt.Sprintf(format, args...),
	}
}

// scan folds source text into logical lines. Blank and comment-only lines
// produce nothing; they carry no block structure.
func scan(source string) ([]logicalLine, error) {
	runes := []rune(source)
	var lls []logicalLine

	i := 0
	line := 1
	for i < len(runes) {
		// Measure leading whitespace of the physical line.
		col := 0
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
			if runes[i] == '\t' {
				col = col - col%tabWidth + tabWidth
			} else {
				col++
			}
			i++
		}
		if i >= len(runes) {
			break
		}
		switch runes[i] {
		case '\n':
			i++
			line++
			continue
		case '\r':
			i++
			continue
		case '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			continue
		}

		ll, next, nextLine, err := scanLogical(runes, i, line, col)
		if err != nil {
			return nil, err
		}
		i, line = next, nextLine
		if ll.code != "" {
			lls = append(lls, ll)
		}
	}

	return lls, nil
}

// scanLogical consumes one logical line starting at runes[i] (first
// non-whitespace character of a physical line). It returns the logical
// line, the next rune index, and the next physical line number.
func scanLogical(runes []rune, i, line, indent int) (logicalLine, int, int, error) {
	ll := logicalLine{start: line, indent: indent}
	var b strings.Builder
	var brackets []openBracket

	for i < len(runes) {
		c := runes[i]
		switch c {
		case '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}

		case '\'', '"':
			var err error
			i, line, err = scanString(runes, i, line, &b)
			if err != nil {
				return ll, i, line, err
			}

		case '(', '[', '{':
			brackets = append(brackets, openBracket{ch: c, line: line})
			b.WriteRune(c)
			i++

		case ')', ']', '}':
			if len(brackets) == 0 {
				return ll, i, line, scanErr(line, "unmatched %q", string(c))
			}
			top := brackets[len(brackets)-1]
			if top.ch != matchingOpen(c) {
				return ll, i, line, scanErr(line, "closing %q does not match opening %q on line %d", string(c), string(top.ch), top.line)
			}
			brackets = brackets[:len(brackets)-1]
			b.WriteRune(c)
			i++

		case '\\':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i += 2
				line++
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c)
			i++

		case '\r':
			i++

		case '\n':
			if len(brackets) > 0 {
				i++
				line++
				b.WriteRune(' ')
				continue
			}
			ll.end = line
			ll.code = strings.TrimRight(b.String(), " \t")
			return ll, i + 1, line + 1, nil

		default:
			b.WriteRune(c)
			i++
		}
	}

	// End of input without a trailing newline.
	if len(brackets) > 0 {
		top := brackets[len(brackets)-1]
		return ll, i, line, scanErr(top.line, "%q was never closed", string(top.ch))
	}
	ll.end = line
	ll.code = strings.TrimRight(b.String(), " \t")
	return ll, i, line, nil
}

// scanString consumes a string literal starting at the opening quote,
// appending its source to b. Newlines inside the literal are folded to
// spaces so the logical line stays a single text. Backslash always escapes
// the following character for termination purposes; this matches CPython,
// where even a raw string cannot end in a lone backslash.
func scanString(runes []rune, i, line int, b *strings.Builder) (int, int, error) {
	q := runes[i]
	startLine := line
	triple := i+2 < len(runes) && runes[i+1] == q && runes[i+2] == q

	b.WriteRune(q)
	i++
	if triple {
		b.WriteRune(q)
		b.WriteRune(q)
		i += 2
	}

	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '\\':
			b.WriteRune(c)
			i++
			if i < len(runes) {
				if runes[i] == '\n' {
					line++
					b.WriteRune(' ')
				} else {
					b.WriteRune(runes[i])
				}
				i++
			}

		case c == '\n':
			if !triple {
				return i, line, scanErr(startLine, "unterminated string literal")
			}
			line++
			b.WriteRune(' ')
			i++

		case c == q:
			if !triple {
				b.WriteRune(q)
				return i + 1, line, nil
			}
			if i+2 < len(runes) && runes[i+1] == q && runes[i+2] == q {
				b.WriteRune(q)
				b.WriteRune(q)
				b.WriteRune(q)
				return i + 3, line, nil
			}
			b.WriteRune(q)
			i++

		default:
			b.WriteRune(c)
			i++
		}
	}

	if triple {
		return i, line, scanErr(startLine, "unterminated triple-quoted string literal")
	}
	return i, line, scanErr(startLine, "unterminated string literal")
}
