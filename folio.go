// Package folio provides a fluent API for extracting per-line font sizes from
// PDF files, guessing which sizes are body text versus headers, and splitting
// the document into header-delimited sections.
//
// Basic usage:
//
//	analysis, err := folio.Open("document.pdf").Analyze()
//	if err != nil {
//	    // handle error
//	}
//	for _, sec := range analysis.Sections {
//	    fmt.Println(sec.ID, sec.HeaderText)
//	}
//
// With options:
//
//	lines, err := folio.Open("report.pdf").
//	    MaxPages(0). // scan every page
//	    Step(1.0).
//	    Lines()
//
// For advanced use cases, the lower-level reader, lines, classify, and
// sections packages are also available.
package folio

import (
	"github.com/tsawler/folio/reader"
)

// Open prepares a PDF file for analysis and returns an Analyzer for fluent
// configuration. The returned Analyzer must be closed when done, either
// explicitly via Close() or implicitly by a terminal operation such as
// Analyze().
//
// Example:
//
//	analysis, err := folio.Open("document.pdf").Analyze()
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Analyzer from an already-opened reader.Reader. This
// is useful when you need more control over the reader lifecycle. The caller
// remains responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	analysis, err := folio.FromReader(r).Analyze()
func FromReader(r *reader.Reader) *Analyzer {
	return &Analyzer{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	analysis := folio.Must(folio.Open("document.pdf").Analyze())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
