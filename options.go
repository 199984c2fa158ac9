package folio

import (
	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/model"
)

// AnalyzeOptions holds configuration for extraction and classification.
type AnalyzeOptions struct {
	// Page cap. The default of 20 pages keeps quick scans cheap;
	// 0 disables the cap.
	maxPages int

	// Size bucketing
	step float64

	// Header heuristics
	outlierGap     float64
	minHeaderCount int
	minHeaderFrac  float64
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		maxPages:       20,
		step:           model.DefaultStep,
		outlierGap:     2.0,
		minHeaderCount: 2,
		minHeaderFrac:  0.01,
	}
}

// clone creates a copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return AnalyzeOptions{
		maxPages:       o.maxPages,
		step:           o.step,
		outlierGap:     o.outlierGap,
		minHeaderCount: o.minHeaderCount,
		minHeaderFrac:  o.minHeaderFrac,
	}
}

// classifierConfig maps the options onto a classifier configuration.
func (o AnalyzeOptions) classifierConfig() classify.Config {
	return classify.Config{
		Step:           o.step,
		OutlierGap:     o.outlierGap,
		MinHeaderCount: o.minHeaderCount,
		MinHeaderFrac:  o.minHeaderFrac,
	}
}
