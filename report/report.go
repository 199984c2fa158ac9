// Package report formats extraction results for human and greppable
// consumption. The line listing goes to a primary stream in a stable
// "<size> <text>" form suited to grep and awk; histograms, layout guesses,
// and section candidates go to a diagnostic stream.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/model"
)

// PreviewLines is how many leading lines of each section the section listing
// shows.
const PreviewLines = 3

// Reporter writes analysis results to two streams.
type Reporter struct {
	// Out receives the greppable per-line listing.
	Out io.Writer

	// Diag receives summaries: histogram, layout guess, section candidates.
	Diag io.Writer
}

// New creates a Reporter writing to the given primary and diagnostic streams.
func New(out, diag io.Writer) *Reporter {
	return &Reporter{Out: out, Diag: diag}
}

// Lines prints one "<size> <text>" row per record to the primary stream,
// sizes with two decimals and internal whitespace collapsed to single spaces
// for consistent grepping.
func (r *Reporter) Lines(records []model.LineRecord) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(r.Out, "%.2f %s\n", rec.Size, collapse(rec.Text)); err != nil {
			return err
		}
	}
	return nil
}

// Histogram prints the size summary: one row per bucket, most frequent first,
// larger buckets first among equals.
func (r *Reporter) Histogram(hist *model.Histogram) error {
	if _, err := fmt.Fprintln(r.Diag, "\n--- SIZE SUMMARY ---"); err != nil {
		return err
	}
	for _, bucket := range hist.Buckets() {
		if _, err := fmt.Fprintf(r.Diag, "%5d lines @ %.1fpt\n", bucket.Count, bucket.Size); err != nil {
			return err
		}
	}
	return nil
}

// LayoutGuess prints the classifier's verdict: the body size guess and the
// detected header sizes, or a note that nothing qualified.
func (r *Reporter) LayoutGuess(res classify.Result) error {
	if _, err := fmt.Fprintln(r.Diag, "\n--- LAYOUT GUESS ---"); err != nil {
		return err
	}
	if !res.Detected {
		_, err := fmt.Fprintln(r.Diag, "No text detected.")
		return err
	}
	if _, err := fmt.Fprintf(r.Diag, "Body size guess: %.1fpt\n", res.Body); err != nil {
		return err
	}
	if !res.HasHeaders() {
		_, err := fmt.Fprintln(r.Diag, "No clear header sizes detected above body.")
		return err
	}

	parts := make([]string, len(res.Headers))
	for i, h := range res.Headers {
		parts[i] = fmt.Sprintf("%.1fpt", h)
	}
	_, err := fmt.Fprintf(r.Diag, "Header sizes (desc): %s\n", strings.Join(parts, ", "))
	return err
}

// Sections prints the section candidates with their spans and up to
// PreviewLines leading lines each.
func (r *Reporter) Sections(secs []model.Section) error {
	if _, err := fmt.Fprintln(r.Diag, "\n--- SECTION CANDIDATES (by header lines) ---"); err != nil {
		return err
	}
	for _, sec := range secs {
		_, err := fmt.Fprintf(r.Diag, "[Section %02d] start=%s end=%s  header='%s'  size=%.1fpt\n",
			sec.ID, sec.Start, sec.End, collapse(sec.HeaderText), sec.HeaderSize)
		if err != nil {
			return err
		}
		for _, rec := range sec.Preview(PreviewLines) {
			if _, err := fmt.Fprintf(r.Diag, "    %.2f %s\n", rec.Size, collapse(rec.Text)); err != nil {
				return err
			}
		}
	}
	return nil
}

// collapse squeezes whitespace runs down to single spaces and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
