// Package model provides the intermediate representation (IR) for extracted
// line and section data.
//
// This package defines the user-facing data structures that the extraction,
// classification, and segmentation stages produce and consume, making them the
// primary API for working with analysis results.
//
// # Lines
//
// The [LineRecord] type is the atomic fact of the system: one rendered text
// line with its page, intra-page index, text, and representative font size:
//
//	rec := model.LineRecord{Page: 1, LineIndex: 0, Text: "Introduction", Size: 18}
//
// A [Position] identifies a line by (page, line index). Positions order
// page-major, then line-major within a page.
//
// # Size buckets
//
// Font sizes are grouped into buckets by rounding to a fixed step (0.5pt by
// default) so that visually indistinguishable sizes count together:
//
//	bucket := model.RoundSize(10.2, model.DefaultStep) // 10.0
//
// A [Histogram] counts line occurrences per bucket and answers modal-bucket
// queries with a deterministic tie-break (largest bucket wins).
//
// # Sections
//
// A [Section] is a contiguous run of lines anchored by one header line. The
// section list produced by the section builder is a gapless, non-overlapping
// partition of the input line sequence; a preface section with ID 0 covers any
// content that precedes the first header line.
package model
