package reader

import (
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// GlyphRun is a span of rendered characters sharing one font name and size,
// as reported by the decoder.
type GlyphRun struct {
	Font string
	Size float64
	Text string
}

// Line is a rendering-order sequence of glyph runs judged to lie on the same
// visual text line.
type Line struct {
	Y    float64    // representative baseline, in PDF coordinates
	Runs []GlyphRun // ordered left to right
	Text string     // rendered text of the whole line
}

// RunSizes returns the font size of each glyph run on the line, in order.
func (l Line) RunSizes() []float64 {
	sizes := make([]float64, len(l.Runs))
	for i, run := range l.Runs {
		sizes[i] = run.Size
	}
	return sizes
}

// Page is one decoded page: its number and assembled lines in reading order.
type Page struct {
	Number int
	Lines  []Line
}

// assembleLines groups positioned text items into visual lines and glyph
// runs. Items whose baselines lie within yTol of the line's first item belong
// to the same line; lines order top to bottom (descending Y in PDF
// coordinates) and items within a line left to right. A horizontal gap wider
// than xGap between adjacent items renders as a single space.
func assembleLines(items []pdflib.Text, yTol, xGap float64) []Line {
	if len(items) == 0 {
		return nil
	}

	// Strict reading order first: top to bottom, then left to right. Grouping
	// with tolerance happens on the sorted sequence.
	sorted := make([]pdflib.Text, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	var group []pdflib.Text
	baseline := sorted[0].Y

	flush := func() {
		if len(group) > 0 {
			lines = append(lines, buildLine(group, xGap))
			group = group[:0]
		}
	}

	for _, item := range sorted {
		if baseline-item.Y > yTol {
			flush()
			baseline = item.Y
		}
		group = append(group, item)
	}
	flush()

	return lines
}

// buildLine turns one line's worth of items into a Line with glyph runs and
// rendered text. The items arrive sorted by Y; they are re-sorted by X so
// sub-point baseline jitter cannot scramble the character order.
func buildLine(items []pdflib.Text, xGap float64) Line {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].X < items[j].X
	})

	var (
		text strings.Builder
		runs []GlyphRun
		run  *GlyphRun
		endX float64
	)

	for i, item := range items {
		spaced := false
		if i > 0 && item.X-endX > xGap && !strings.HasPrefix(item.S, " ") {
			text.WriteString(" ")
			spaced = true
		}
		text.WriteString(item.S)
		endX = item.X + item.W

		if run == nil || run.Font != item.Font || run.Size != item.FontSize {
			runs = append(runs, GlyphRun{Font: item.Font, Size: item.FontSize})
			run = &runs[len(runs)-1]
		}
		if spaced {
			run.Text += " "
		}
		run.Text += item.S
	}

	return Line{
		Y:    items[0].Y,
		Runs: runs,
		Text: text.String(),
	}
}
