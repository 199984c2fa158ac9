package reader

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Reader decodes pages of a PDF file into line/glyph-run structures.
type Reader struct {
	file *os.File
	pdf  *pdflib.Reader

	// Assembly tolerances, in points.
	yTol float64 // max baseline distance for items on the same line
	xGap float64 // min horizontal gap that becomes a space
}

const (
	defaultYTolerance = 2.0
	defaultXGap       = 1.0
)

// Open opens a PDF file for page-at-a-time decoding. The returned Reader must
// be closed when done.
func Open(path string) (*Reader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{
		file: f,
		pdf:  r,
		yTol: defaultYTolerance,
		xGap: defaultXGap,
	}, nil
}

// NumPages returns the number of pages in the document.
func (r *Reader) NumPages() int {
	return r.pdf.NumPage()
}

// DecodePage decodes page n (1-indexed) into assembled lines. Pages that are
// null or carry no text decode to a page with zero lines. The underlying
// decoder panics on malformed content streams; DecodePage converts those
// panics into errors so a bad page surfaces as a failure, not a crash.
func (r *Reader) DecodePage(n int) (page *Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = fmt.Errorf("decode page %d: %v", n, rec)
		}
	}()

	if n < 1 || n > r.pdf.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", n, r.pdf.NumPage())
	}

	p := r.pdf.Page(n)
	if p.V.IsNull() {
		return &Page{Number: n}, nil
	}

	content := p.Content()
	return &Page{
		Number: n,
		Lines:  assembleLines(content.Text, r.yTol, r.xGap),
	}, nil
}

// Close releases the underlying file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
