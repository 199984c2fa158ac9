package model

import (
	"math"
	"sort"
)

// DefaultStep is the bucket width used to group font sizes. Half a point is
// fine enough to separate deliberate style choices and coarse enough to merge
// rendering jitter.
const DefaultStep = 0.5

// RoundSize rounds a font size to the nearest multiple of step. Ties round
// half away from zero. A non-positive step falls back to DefaultStep.
func RoundSize(size, step float64) float64 {
	if step <= 0 {
		step = DefaultStep
	}
	return math.Round(size/step) * step
}

// SizeCount is one histogram entry: a size bucket and its occurrence count.
type SizeCount struct {
	Size  float64
	Count int
}

// Histogram counts line occurrences per rounded size bucket.
type Histogram struct {
	step   float64
	counts map[float64]int
	total  int
}

// NewHistogram creates an empty histogram with the given bucket step.
func NewHistogram(step float64) *Histogram {
	if step <= 0 {
		step = DefaultStep
	}
	return &Histogram{
		step:   step,
		counts: make(map[float64]int),
	}
}

// BuildHistogram counts the given sizes into a new histogram.
func BuildHistogram(sizes []float64, step float64) *Histogram {
	h := NewHistogram(step)
	for _, s := range sizes {
		h.Add(s)
	}
	return h
}

// Step returns the bucket width.
func (h *Histogram) Step() float64 {
	return h.step
}

// Add rounds size to its bucket and increments that bucket's count.
func (h *Histogram) Add(size float64) {
	h.counts[RoundSize(size, h.step)]++
	h.total++
}

// Total returns the number of sizes counted.
func (h *Histogram) Total() int {
	return h.total
}

// Count returns the occurrence count for the bucket containing size.
func (h *Histogram) Count(size float64) int {
	return h.counts[RoundSize(size, h.step)]
}

// Buckets returns all non-empty buckets sorted by descending count, then
// descending size. This is the display order for size summaries.
func (h *Histogram) Buckets() []SizeCount {
	out := make([]SizeCount, 0, len(h.counts))
	for sz, cnt := range h.counts {
		out = append(out, SizeCount{Size: sz, Count: cnt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Size > out[j].Size
	})
	return out
}

// Modal returns the bucket with the highest count. When several buckets share
// the maximum count the largest bucket wins, so the result is deterministic
// regardless of map iteration order. The second return is false when the
// histogram is empty.
func (h *Histogram) Modal() (float64, bool) {
	if h.total == 0 {
		return 0, false
	}
	var best float64
	bestCount := -1
	for sz, cnt := range h.counts {
		if cnt > bestCount || (cnt == bestCount && sz > best) {
			best = sz
			bestCount = cnt
		}
	}
	return best, true
}
