package classify

import (
	"math"
	"reflect"
	"testing"
)

func repeat(size float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = size
	}
	return out
}

// ============================================================================
// Basic Classification
// ============================================================================

func TestClassifyEmpty(t *testing.T) {
	res := Classify(nil)
	if res.Detected {
		t.Error("Detected = true for empty input, want false")
	}
	if len(res.Headers) != 0 {
		t.Errorf("Headers = %v for empty input, want none", res.Headers)
	}
	if res.HasHeaders() {
		t.Error("HasHeaders() = true for empty input")
	}
}

// Sizes [10 10 10 10 18 10 10]: bucket 18 appears once, below the recurrence
// floor of 2, but sits 8pt above the body so it qualifies as an outlier.
func TestClassifySingleOutlierHeader(t *testing.T) {
	sizes := []float64{10, 10, 10, 10, 18, 10, 10}

	res := Classify(sizes)
	if !res.Detected || res.Body != 10.0 {
		t.Fatalf("Body = %v (detected=%v), want 10.0", res.Body, res.Detected)
	}
	if !reflect.DeepEqual(res.Headers, []float64{18.0}) {
		t.Errorf("Headers = %v, want [18]", res.Headers)
	}
}

func TestClassifyBodyOnly(t *testing.T) {
	res := Classify(repeat(10, 50))
	if res.Body != 10.0 {
		t.Fatalf("Body = %v, want 10.0", res.Body)
	}
	if res.HasHeaders() {
		t.Errorf("Headers = %v, want none", res.Headers)
	}
}

func TestClassifyHeadersSortedDescending(t *testing.T) {
	sizes := append(repeat(10, 40), 14, 14, 18, 18, 16, 16)

	res := Classify(sizes)
	want := []float64{18, 16, 14}
	if !reflect.DeepEqual(res.Headers, want) {
		t.Errorf("Headers = %v, want %v", res.Headers, want)
	}
}

func TestClassifyIgnoresSizesBelowBody(t *testing.T) {
	sizes := append(repeat(10, 40), 8, 8, 8, 8, 8)

	res := Classify(sizes)
	if res.Body != 10.0 {
		t.Fatalf("Body = %v, want 10.0", res.Body)
	}
	if res.HasHeaders() {
		t.Errorf("Headers = %v, want none; sizes below body never qualify", res.Headers)
	}
}

func TestClassifyRoundsIntoBuckets(t *testing.T) {
	// 10.2 and 9.9 both land in the 10.0 bucket.
	sizes := []float64{10.2, 9.9, 10.0, 10.1, 17.8}

	res := Classify(sizes)
	if res.Body != 10.0 {
		t.Errorf("Body = %v, want 10.0", res.Body)
	}
	if !reflect.DeepEqual(res.Headers, []float64{18.0}) {
		t.Errorf("Headers = %v, want [18] (17.8 rounds to 18)", res.Headers)
	}
}

// ============================================================================
// Threshold Boundaries
// ============================================================================

// A bucket exactly at body+2.0 is always a header; a bucket just below the
// gap needs to recur.
func TestClassifyOutlierGapBoundary(t *testing.T) {
	tests := []struct {
		name     string
		header   float64
		count    int
		expected bool
	}{
		{"exactly at gap, rare", 12.0, 1, true},
		{"just below gap, rare", 11.5, 1, false},
		{"just below gap, recurring", 11.5, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := append(repeat(10, 60), repeat(tt.header, tt.count)...)
			res := Classify(sizes)
			got := len(res.Headers) == 1 && res.Headers[0] == tt.header
			if got != tt.expected {
				t.Errorf("header %v with count %d: qualified=%v, want %v",
					tt.header, tt.count, got, tt.expected)
			}
		})
	}
}

// With 300 body lines the scaled threshold (3.0) overtakes the floor of 2.
func TestClassifyFractionalThresholdScales(t *testing.T) {
	sizes := append(repeat(10, 300), 11.5, 11.5)

	res := Classify(sizes)
	if res.HasHeaders() {
		t.Errorf("Headers = %v; count 2 < total*0.01 (3.02) must not qualify", res.Headers)
	}

	sizes = append(sizes, 11.5, 11.5)
	res = Classify(sizes)
	if !reflect.DeepEqual(res.Headers, []float64{11.5}) {
		t.Errorf("Headers = %v, want [11.5] once the count reaches the scaled threshold", res.Headers)
	}
}

// ============================================================================
// Determinism
// ============================================================================

func TestClassifyIdempotent(t *testing.T) {
	sizes := append(repeat(10, 40), 14, 14, 18, 9, 9, 9)

	first := Classify(sizes)
	second := Classify(sizes)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across runs: %+v vs %+v", first, second)
	}
}

func TestClassifyModalTieBreakLargestWins(t *testing.T) {
	// 10 and 12 tie at four occurrences each; the larger bucket is the body.
	sizes := []float64{10, 10, 10, 10, 12, 12, 12, 12}

	for i := 0; i < 20; i++ {
		res := Classify(sizes)
		if res.Body != 12.0 {
			t.Fatalf("Body = %v on run %d, want 12.0 (largest tied bucket)", res.Body, i)
		}
	}
}

// ============================================================================
// Configuration
// ============================================================================

func TestWithConfigOverrides(t *testing.T) {
	// Widen the outlier gap to 5pt: 13 no longer qualifies as an outlier.
	c := WithConfig(Config{OutlierGap: 5.0})
	sizes := append(repeat(10, 60), 13)

	res := c.Classify(sizes)
	if res.HasHeaders() {
		t.Errorf("Headers = %v, want none with a 5pt gap", res.Headers)
	}

	sizes = append(repeat(10, 60), 15)
	res = c.Classify(sizes)
	if !reflect.DeepEqual(res.Headers, []float64{15.0}) {
		t.Errorf("Headers = %v, want [15]", res.Headers)
	}
}

func TestWithConfigZeroValuesFallBack(t *testing.T) {
	c := WithConfig(Config{})
	res := c.Classify([]float64{10, 10, 10, 10, 18, 10, 10})
	if res.Body != 10.0 || !reflect.DeepEqual(res.Headers, []float64{18.0}) {
		t.Errorf("zero config: Body=%v Headers=%v, want defaults applied", res.Body, res.Headers)
	}
}

func TestClassifyCustomStep(t *testing.T) {
	// A 1pt step merges 10.4 into the 10 bucket that 0.5pt would split off.
	c := WithConfig(Config{Step: 1.0})
	res := c.Classify([]float64{10.4, 10.0, 10.0, 14.0})
	if math.Abs(res.Body-10.0) > 1e-9 {
		t.Errorf("Body = %v, want 10.0", res.Body)
	}
	if !reflect.DeepEqual(res.Headers, []float64{14.0}) {
		t.Errorf("Headers = %v, want [14]", res.Headers)
	}
}
