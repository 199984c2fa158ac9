package model

// PrefaceHeader is the placeholder header text for the preface section: the
// run of lines, if any, that precedes the first header line in a document.
const PrefaceHeader = "(preface)"

// Section is a contiguous run of lines sharing one semantic unit, anchored by
// a header line (or by the start of the document for the preface section).
type Section struct {
	// ID is 0 for the preface section, otherwise 1..N in discovery order.
	ID int

	// Start is the position of the section's first line.
	Start Position

	// End is exclusive: the position one line past the section's last line,
	// which is also the next section's header position when one follows.
	End Position

	// HeaderText is the trimmed text of the header line that opened the
	// section, or PrefaceHeader for the preface section.
	HeaderText string

	// HeaderSize is the rounded size bucket that triggered the section start.
	// For the preface section it is the bucket of the section's first line.
	HeaderSize float64

	// Lines holds every record belonging to the section, in rendering order,
	// including the header line itself.
	Lines []LineRecord
}

// IsPreface reports whether the section is the preface section.
func (s Section) IsPreface() bool {
	return s.ID == 0
}

// LineCount returns the number of lines in the section.
func (s Section) LineCount() int {
	return len(s.Lines)
}

// Preview returns up to n leading lines of the section.
func (s Section) Preview(n int) []LineRecord {
	if n < 0 {
		n = 0
	}
	if n > len(s.Lines) {
		n = len(s.Lines)
	}
	return s.Lines[:n]
}
