// Package sections partitions an ordered line stream into contiguous sections
// delimited by header lines. A line whose rounded size bucket matches one of
// the detected header sizes opens a new section; content appearing before the
// first header collects into a preface section with ID 0.
package sections

import (
	"strings"

	"github.com/tsawler/folio/model"
)

// Build partitions lin into sections using the default bucket step. The
// headers slice holds the size buckets that mark header lines; when it is
// empty no segmentation is attempted and Build returns nil.
func Build(lin []model.LineRecord, headers []float64) []model.Section {
	return BuildWithStep(lin, headers, model.DefaultStep)
}

// BuildWithStep is Build with an explicit bucket step, which must match the
// step used to derive the header sizes.
//
// The returned sections form a gapless, non-overlapping partition of the
// input: every record belongs to exactly one section, order preserved. Each
// section's End is exclusive, equal to the next section's header position or,
// for the final section, one past its last line.
func BuildWithStep(lin []model.LineRecord, headers []float64, step float64) []model.Section {
	if len(headers) == 0 {
		return nil
	}

	headerSet := make(map[float64]struct{}, len(headers))
	for _, h := range headers {
		headerSet[h] = struct{}{}
	}

	var (
		finalized []model.Section
		current   *model.Section
	)

	finalize := func(end model.Position) {
		if current != nil {
			current.End = end
			finalized = append(finalized, *current)
			current = nil
		}
	}

	for _, rec := range lin {
		bucket := model.RoundSize(rec.Size, step)
		if _, isHeader := headerSet[bucket]; isHeader {
			// Close the running section at this header's start, then open a
			// new one. The id counts previously finalized sections, computed
			// before the new section joins the accumulator, so the preface
			// (once finalized) shifts later ids by one, exactly as intended.
			finalize(rec.Position())
			current = &model.Section{
				ID:         len(finalized) + 1,
				Start:      rec.Position(),
				HeaderText: strings.TrimSpace(rec.Text),
				HeaderSize: bucket,
			}
		} else if current == nil {
			// Content before the first header opens the preface section.
			current = &model.Section{
				ID:         0,
				Start:      rec.Position(),
				HeaderText: model.PrefaceHeader,
				HeaderSize: bucket,
			}
		}
		current.Lines = append(current.Lines, rec)
	}

	// Close the last section one line past the end of the stream.
	if current != nil {
		last := current.Lines[len(current.Lines)-1]
		finalize(model.Position{Page: last.Page, Line: last.LineIndex + 1})
	}

	return finalized
}
