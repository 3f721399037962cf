package trace

import (
	"errors"
	"testing"
)

func buildResult(faults ...bool) *Result {
	r := NewResult("FIFO", 3, len(faults))
	for i, f := range faults {
		r.Record(Step{Index: i + 1, Page: i, Fault: f})
	}
	return r
}

func TestSummarize_EmptyResult_ReturnsError(t *testing.T) {
	// GIVEN an empty result and a nil result
	empty := NewResult("FIFO", 3, 0)

	// WHEN summarized
	_, errEmpty := Summarize(empty)
	_, errNil := Summarize(nil)

	// THEN both report ErrNoReferences
	if !errors.Is(errEmpty, ErrNoReferences) {
		t.Errorf("expected ErrNoReferences for empty result, got %v", errEmpty)
	}
	if !errors.Is(errNil, ErrNoReferences) {
		t.Errorf("expected ErrNoReferences for nil result, got %v", errNil)
	}
}

func TestSummarize_PopulatedResult_CorrectCounts(t *testing.T) {
	// GIVEN a result with 4 faults and 2 hits
	r := buildResult(true, true, true, false, false, true)

	// WHEN summarized
	stats, err := Summarize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN counts and ratios match
	if stats.FaultCount != 4 || stats.HitCount != 2 || stats.ReferenceCount != 6 {
		t.Errorf("expected 4 faults / 2 hits / 6 refs, got %d / %d / %d",
			stats.FaultCount, stats.HitCount, stats.ReferenceCount)
	}
	if stats.HitRatio < 2.0/6-1e-9 || stats.HitRatio > 2.0/6+1e-9 {
		t.Errorf("expected hit ratio ~0.3333, got %.4f", stats.HitRatio)
	}
	if stats.HitRatio+stats.FaultRatio < 1-1e-9 || stats.HitRatio+stats.FaultRatio > 1+1e-9 {
		t.Errorf("hit ratio + fault ratio must be 1, got %.4f", stats.HitRatio+stats.FaultRatio)
	}
}

func TestSummarize_CumulativeFaults_MonotonicAndEndsAtTotal(t *testing.T) {
	// GIVEN a mixed result
	r := buildResult(true, false, true, true, false, false, true)

	// WHEN summarized
	stats, err := Summarize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN the series has one entry per step, never decreases, and ends at FaultCount
	want := []int{1, 1, 2, 3, 3, 3, 4}
	if len(stats.CumulativeFaults) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(stats.CumulativeFaults))
	}
	for i := range want {
		if stats.CumulativeFaults[i] != want[i] {
			t.Errorf("CumulativeFaults[%d] = %d, want %d", i, stats.CumulativeFaults[i], want[i])
		}
		if i > 0 && stats.CumulativeFaults[i] < stats.CumulativeFaults[i-1] {
			t.Errorf("series decreased at %d", i)
		}
	}
	if stats.CumulativeFaults[len(want)-1] != stats.FaultCount {
		t.Errorf("last cumulative value %d != fault count %d", stats.CumulativeFaults[len(want)-1], stats.FaultCount)
	}
}
