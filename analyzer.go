package folio

import (
	"fmt"

	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/lines"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/reader"
	"github.com/tsawler/folio/sections"
)

// Analysis is the combined result of one full pass over a document: the
// extracted lines, their size histogram, the body/header verdict, and the
// section partition (empty when no header sizes were detected).
type Analysis struct {
	Lines     []model.LineRecord
	Histogram *model.Histogram
	Layout    classify.Result
	Sections  []model.Section
}

// Analyzer provides a fluent interface for extracting and analyzing line
// sizes from a PDF. Each configuration method returns a new Analyzer
// instance, making it safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source
	filename string

	// Reader
	reader       *reader.Reader
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if the reader has been opened

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Analyzer with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename:     a.filename,
		reader:       a.reader,
		ownsReader:   a.ownsReader,
		readerOpened: a.readerOpened,
		options:      a.options.clone(),
		err:          a.err,
	}
}

// ensureReader opens the reader if not already open.
func (a *Analyzer) ensureReader() error {
	if a.readerOpened {
		return nil
	}
	if a.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	if err := format.Verify(a.filename, format.PDF); err != nil {
		return err
	}

	r, err := reader.Open(a.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	a.reader = r
	a.ownsReader = true
	a.readerOpened = true
	return nil
}

// Close releases resources associated with the Analyzer. It is safe to call
// Close multiple times.
func (a *Analyzer) Close() error {
	if a.ownsReader && a.reader != nil {
		err := a.reader.Close()
		a.reader = nil
		a.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// MaxPages caps how many pages are scanned. The default is 20; pass 0 to
// scan the whole document.
//
// Example:
//
//	analysis, err := folio.Open("doc.pdf").MaxPages(0).Analyze()
func (a *Analyzer) MaxPages(n int) *Analyzer {
	newA := a.clone()
	newA.options.maxPages = n
	return newA
}

// Step sets the size-bucket width in points (default 0.5).
func (a *Analyzer) Step(step float64) *Analyzer {
	newA := a.clone()
	if step <= 0 {
		newA.err = fmt.Errorf("step must be positive, got %v", step)
		return newA
	}
	newA.options.step = step
	return newA
}

// OutlierGap sets how far above the body size a bucket must sit to qualify
// as a header regardless of frequency (default 2pt).
func (a *Analyzer) OutlierGap(gap float64) *Analyzer {
	newA := a.clone()
	if gap <= 0 {
		newA.err = fmt.Errorf("outlier gap must be positive, got %v", gap)
		return newA
	}
	newA.options.outlierGap = gap
	return newA
}

// MinHeaderCount sets the floor of the header recurrence threshold
// (default 2).
func (a *Analyzer) MinHeaderCount(n int) *Analyzer {
	newA := a.clone()
	if n < 1 {
		newA.err = fmt.Errorf("min header count must be at least 1, got %d", n)
		return newA
	}
	newA.options.minHeaderCount = n
	return newA
}

// MinHeaderFrac sets the fraction of total lines a bucket must reach to
// qualify as a recurring header style (default 0.01).
func (a *Analyzer) MinHeaderFrac(frac float64) *Analyzer {
	newA := a.clone()
	if frac <= 0 || frac >= 1 {
		newA.err = fmt.Errorf("min header fraction must be in (0, 1), got %v", frac)
		return newA
	}
	newA.options.minHeaderFrac = frac
	return newA
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document, ignoring the page
// cap. The reader stays open for further operations.
func (a *Analyzer) PageCount() (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	if err := a.ensureReader(); err != nil {
		return 0, err
	}
	return a.reader.NumPages(), nil
}

// Scan returns a lazy line scanner over the document. The caller is
// responsible for closing the Analyzer after draining the scanner.
func (a *Analyzer) Scan() (*lines.Scanner, error) {
	if a.err != nil {
		return nil, a.err
	}
	if err := a.ensureReader(); err != nil {
		return nil, err
	}
	return lines.NewScanner(a.reader, a.options.maxPages), nil
}

// Lines extracts every line record within the page cap. If the Analyzer
// opened the reader itself, it is closed before returning.
func (a *Analyzer) Lines() ([]model.LineRecord, error) {
	s, err := a.Scan()
	if err != nil {
		return nil, err
	}
	defer a.Close()
	return s.ReadAll()
}

// Analyze runs the full pipeline: extraction, size histogram, body/header
// classification, and (when headers were detected) section building.
func (a *Analyzer) Analyze() (*Analysis, error) {
	records, err := a.Lines()
	if err != nil {
		return nil, err
	}

	hist := model.NewHistogram(a.options.step)
	for _, rec := range records {
		hist.Add(rec.Size)
	}

	layout := classify.WithConfig(a.options.classifierConfig()).ClassifyHistogram(hist)

	var secs []model.Section
	if layout.HasHeaders() {
		secs = sections.BuildWithStep(records, layout.Headers, a.options.step)
	}

	return &Analysis{
		Lines:     records,
		Histogram: hist,
		Layout:    layout,
		Sections:  secs,
	}, nil
}

// Sections runs the full pipeline and returns just the section partition.
// The result is nil when no header sizes were detected.
func (a *Analyzer) Sections() ([]model.Section, error) {
	analysis, err := a.Analyze()
	if err != nil {
		return nil, err
	}
	return analysis.Sections, nil
}
