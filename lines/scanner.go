// Package lines turns decoded pages into the flat, ordered stream of line
// records the classifier and section builder consume. Extraction is lazy: the
// Scanner decodes one page per step and never seeks backward, so memory stays
// bounded by a single page regardless of document length.
package lines

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/reader"
)

// DefaultMaxPages is the default hard cap on how many pages are scanned,
// keeping quick looks at large documents cheap. Use 0 to scan everything.
const DefaultMaxPages = 20

// PageSource decodes pages on demand. *reader.Reader satisfies it; tests
// supply fakes.
type PageSource interface {
	NumPages() int
	DecodePage(n int) (*reader.Page, error)
}

// Scanner streams model.LineRecord values from a PageSource in rendering
// order (page-major, then line-major). Usage follows bufio.Scanner:
//
//	s := lines.NewScanner(src, lines.DefaultMaxPages)
//	for s.Next() {
//	    rec := s.Line()
//	    // ...
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	src      PageSource
	maxPages int

	page    int // last page requested from src
	pending []model.LineRecord
	cur     model.LineRecord
	err     error
	done    bool
}

// NewScanner creates a Scanner over src. maxPages caps how many pages are
// decoded; 0 or a negative value disables the cap.
func NewScanner(src PageSource, maxPages int) *Scanner {
	return &Scanner{src: src, maxPages: maxPages}
}

// Next advances to the next line record. It returns false when the stream is
// exhausted or a decode error occurred; Err distinguishes the two.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	for len(s.pending) == 0 {
		if !s.nextPage() {
			s.done = true
			return false
		}
	}
	s.cur = s.pending[0]
	s.pending = s.pending[1:]
	return true
}

// Line returns the record produced by the last successful call to Next.
func (s *Scanner) Line() model.LineRecord {
	return s.cur
}

// Err returns the first decode error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// ReadAll drains the remainder of the stream into a slice.
func (s *Scanner) ReadAll() ([]model.LineRecord, error) {
	var out []model.LineRecord
	for s.Next() {
		out = append(out, s.Line())
	}
	return out, s.Err()
}

// nextPage decodes the next page and fills pending with its line records.
// Returns false at end of document, past the page cap, or on error.
func (s *Scanner) nextPage() bool {
	if s.page >= s.src.NumPages() {
		return false
	}
	if s.maxPages > 0 && s.page >= s.maxPages {
		return false
	}
	s.page++

	page, err := s.src.DecodePage(s.page)
	if err != nil {
		s.err = err
		return false
	}
	s.pending = extractPage(page)
	return true
}

// extractPage converts one decoded page into line records. Lines with no
// glyph runs or with blank text are skipped and do not consume an index.
func extractPage(page *reader.Page) []model.LineRecord {
	var records []model.LineRecord
	idx := 0
	for _, line := range page.Lines {
		sizes := line.RunSizes()
		if len(sizes) == 0 {
			continue
		}
		text := normalizeText(line.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		records = append(records, model.LineRecord{
			Page:      page.Number,
			LineIndex: idx,
			Text:      text,
			Size:      median(sizes),
		})
		idx++
	}
	return records
}

// normalizeText strips a trailing newline and applies Unicode NFC so that
// decoders emitting combining sequences produce stable, greppable text.
func normalizeText(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return norm.NFC.String(text)
}

// median returns the median of sizes: the middle value for odd counts, the
// mean of the two middle values for even counts. Median is more stable than
// max or min across mixed-size spans such as inline superscripts.
func median(sizes []float64) float64 {
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
