package model

import "fmt"

// Position identifies a line by page number and intra-page line index.
type Position struct {
	Page int // 1-indexed page number
	Line int // 0-indexed line within the page
}

// String returns the position in page/line form, e.g. "page3:line12".
func (p Position) String() string {
	return fmt.Sprintf("page%d:line%d", p.Page, p.Line)
}

// Before reports whether p orders strictly before other in page-major,
// line-minor order.
func (p Position) Before(other Position) bool {
	if p.Page != other.Page {
		return p.Page < other.Page
	}
	return p.Line < other.Line
}

// LineRecord is one rendered text line extracted from a document. Records are
// immutable facts: created once during extraction and never mutated.
type LineRecord struct {
	// Page is the 1-indexed page the line was rendered on.
	Page int

	// LineIndex is the 0-indexed position of the line within its page,
	// assigned in rendering order. Unique per page, not globally.
	LineIndex int

	// Text is the rendered text with any trailing newline stripped. Internal
	// whitespace runs are preserved.
	Text string

	// Size is the representative font size in points: the median of the sizes
	// of the glyph runs composing the line.
	Size float64
}

// Position returns the record's (page, line index) position.
func (r LineRecord) Position() Position {
	return Position{Page: r.Page, Line: r.LineIndex}
}
