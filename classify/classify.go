// Package classify infers which font sizes carry body text and which carry
// headings, given the multiset of per-line sizes observed in a document.
//
// The heuristic: group sizes into 0.5pt buckets and take the most frequent
// bucket as the body size. Buckets strictly larger than the body qualify as
// header sizes when they are clear outliers (at least 2pt above the body) or
// recur often enough to be a deliberate style choice.
package classify

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// Config holds the classifier thresholds.
type Config struct {
	// Step is the bucket width in points.
	Step float64

	// OutlierGap qualifies any bucket at least this far above the body size
	// as a header, regardless of frequency.
	OutlierGap float64

	// MinHeaderCount is the floor of the recurrence threshold.
	MinHeaderCount int

	// MinHeaderFrac scales the recurrence threshold with document length:
	// a bucket recurs "often enough" when its count reaches
	// max(MinHeaderCount, total*MinHeaderFrac).
	MinHeaderFrac float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		Step:           model.DefaultStep,
		OutlierGap:     2.0,
		MinHeaderCount: 2,
		MinHeaderFrac:  0.01,
	}
}

// Result is the classifier's verdict on a size multiset.
type Result struct {
	// Body is the modal size bucket, valid only when Detected is true.
	Body float64

	// Detected is false when the input multiset was empty.
	Detected bool

	// Headers holds the qualifying header buckets, sorted descending.
	// Empty when no bucket above the body qualifies.
	Headers []float64
}

// HasHeaders reports whether any header sizes were detected.
func (r Result) HasHeaders() bool {
	return len(r.Headers) > 0
}

// Classify runs the heuristic with default thresholds.
func Classify(sizes []float64) Result {
	return WithConfig(DefaultConfig()).Classify(sizes)
}

// Classifier applies a fixed Config to size multisets.
type Classifier struct {
	cfg Config
}

// WithConfig creates a Classifier using cfg. Zero or negative fields fall
// back to their defaults.
func WithConfig(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.OutlierGap <= 0 {
		cfg.OutlierGap = def.OutlierGap
	}
	if cfg.MinHeaderCount <= 0 {
		cfg.MinHeaderCount = def.MinHeaderCount
	}
	if cfg.MinHeaderFrac <= 0 {
		cfg.MinHeaderFrac = def.MinHeaderFrac
	}
	return &Classifier{cfg: cfg}
}

// Classify returns the body and header buckets for the given size multiset.
// Input order is irrelevant and the result is deterministic: when several
// buckets tie for the modal count, the largest bucket wins.
func (c *Classifier) Classify(sizes []float64) Result {
	hist := model.BuildHistogram(sizes, c.cfg.Step)
	return c.ClassifyHistogram(hist)
}

// ClassifyHistogram classifies an already-built histogram. Useful when the
// caller also reports the histogram and wants to count sizes only once.
func (c *Classifier) ClassifyHistogram(hist *model.Histogram) Result {
	body, ok := hist.Modal()
	if !ok {
		return Result{}
	}

	// Recurrence threshold scales with document length but never drops
	// below the configured floor. Compared as a float, so e.g. a count of 3
	// fails a threshold of 3.2.
	threshold := float64(c.cfg.MinHeaderCount)
	if scaled := float64(hist.Total()) * c.cfg.MinHeaderFrac; scaled > threshold {
		threshold = scaled
	}

	var headers []float64
	for _, bucket := range hist.Buckets() {
		if bucket.Size <= body {
			continue
		}
		if bucket.Size >= body+c.cfg.OutlierGap || float64(bucket.Count) >= threshold {
			headers = append(headers, bucket.Size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(headers)))

	return Result{Body: body, Detected: true, Headers: headers}
}
